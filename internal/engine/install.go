package engine

import (
	"context"

	"github.com/provkit/provision/internal/core"
)

// InstallOutcome describes what happened to one tool during an install run.
type InstallOutcome string

const (
	// OutcomeInstalled: the manager's install command succeeded.
	OutcomeInstalled InstallOutcome = "installed"

	// OutcomeFailed: the install command reported failure.
	OutcomeFailed InstallOutcome = "failed"

	// OutcomeExcluded: the tool was named in the exclusion list.
	OutcomeExcluded InstallOutcome = "excluded"

	// OutcomeAlreadyInstalled: a version was already present; install was
	// never invoked.
	OutcomeAlreadyInstalled InstallOutcome = "already-installed"

	// OutcomeNoManager: the tool's manager key has no registered backend.
	OutcomeNoManager InstallOutcome = "no-manager"
)

// InstallResult is the per-tool outcome of an install run.
type InstallResult struct {
	Tool    core.Tool
	Outcome InstallOutcome

	// Version is the installed version that caused a skip, when known.
	Version string
}

// Install walks tools in registry order and installs the ones that are
// missing, skipping names in exclude.
//
// The walk is deliberately sequential: installs may prompt for credentials
// and several backends contend over an exclusive package database lock, so
// concurrent installs would interleave prompts and deadlock on the lock.
// Installed state is re-probed immediately before each attempt rather than
// reusing results from an earlier status run. A failed install does not stop
// the walk; there is no rollback.
//
// notify, when non-nil, is called synchronously with each result as it is
// produced.
func (e *Engine) Install(ctx context.Context, tools []core.Tool, exclude []string, notify func(InstallResult)) []InstallResult {
	excluded := make(map[string]struct{}, len(exclude))
	for _, name := range exclude {
		excluded[name] = struct{}{}
	}

	results := make([]InstallResult, 0, len(tools))
	emit := func(r InstallResult) {
		results = append(results, r)
		if notify != nil {
			notify(r)
		}
	}

	for _, tool := range tools {
		if _, skip := excluded[tool.Name]; skip {
			emit(InstallResult{Tool: tool, Outcome: OutcomeExcluded})
			continue
		}

		mgr, ok := e.table.Lookup(tool.Manager)
		if !ok {
			emit(InstallResult{Tool: tool, Outcome: OutcomeNoManager})
			continue
		}

		if version, installed := mgr.InstalledVersion(ctx, tool.Name, tool.BinaryName()); installed {
			emit(InstallResult{Tool: tool, Outcome: OutcomeAlreadyInstalled, Version: version})
			continue
		}

		if mgr.Install(ctx, tool.Name) {
			emit(InstallResult{Tool: tool, Outcome: OutcomeInstalled})
		} else {
			emit(InstallResult{Tool: tool, Outcome: OutcomeFailed})
		}
	}

	return results
}
