// Package engine implements status reconciliation and install orchestration
// over the manager table.
package engine

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/provkit/provision/internal/core"
)

// probeWorkers bounds the number of concurrent probes. Probes are I/O bound
// (subprocesses and registry HTTP calls), so a moderate fan-out cuts a full
// catalog check from minutes to seconds without hammering any registry.
const probeWorkers = 10

// Engine reconciles installed versions against registry versions for a tool
// list. The manager table is read-only configuration shared by all workers.
type Engine struct {
	table core.Table
}

func New(table core.Table) *Engine {
	return &Engine{table: table}
}

// Reconcile probes every tool concurrently and returns one result per input
// tool, index-aligned with the input. Completion order among workers is
// arbitrary; callers may rely only on output[i] corresponding to tools[i].
func (e *Engine) Reconcile(ctx context.Context, tools []core.Tool) []core.ProbeResult {
	results := make([]core.ProbeResult, len(tools))

	var g errgroup.Group
	g.SetLimit(probeWorkers)
	for i, tool := range tools {
		i, tool := i, tool
		g.Go(func() error {
			results[i] = e.Probe(ctx, tool)
			return nil
		})
	}
	// Probes never return errors; failures degrade inside the managers.
	_ = g.Wait()

	return results
}

// Probe checks one tool and classifies the outcome. A tool whose manager key
// has no registered backend yields StatusError rather than failing the batch.
func (e *Engine) Probe(ctx context.Context, tool core.Tool) core.ProbeResult {
	mgr, ok := e.table.Lookup(tool.Manager)
	if !ok {
		return core.ProbeResult{Tool: tool, Status: core.StatusError}
	}

	installed, haveInstalled := mgr.InstalledVersion(ctx, tool.Name, tool.BinaryName())
	latest, haveLatest := mgr.LatestVersion(ctx, tool.Name)

	return core.ProbeResult{
		Tool:      tool,
		Installed: installed,
		Latest:    latest,
		Status:    Classify(installed, haveInstalled, latest, haveLatest),
	}
}

// Classify maps a pair of version observations to a status.
//
// Comparison is byte-for-byte string equality: "1.2.0" and "1.2" count as
// different versions. Registries and local databases report versions in the
// same format in practice, and equality keeps the ten backends honest about
// what they parsed. An unknown latest version is treated as "assume
// current".
func Classify(installed string, haveInstalled bool, latest string, haveLatest bool) core.Status {
	switch {
	case !haveInstalled:
		return core.StatusNotInstalled
	case !haveLatest:
		return core.StatusUpToDate
	case installed == latest:
		return core.StatusUpToDate
	default:
		return core.StatusUpdateAvailable
	}
}
