// Package snap manages snapd packages through the snap CLI.
package snap

import (
	"context"
	"strings"

	"github.com/provkit/provision/internal/client"
	"github.com/provkit/provision/internal/core"
	"github.com/provkit/provision/internal/shell"
)

const managerKey = "snap"

func init() {
	core.Register(managerKey, "", func(_ string, _ *client.Client) core.Manager {
		return New()
	})
}

// Manager parses the fixed-column output of "snap list" and "snap info".
type Manager struct{}

func New() *Manager {
	return &Manager{}
}

var (
	run            = shell.Run
	runInteractive = shell.RunInteractive
)

func (m *Manager) Key() string { return managerKey }

func (m *Manager) InstalledVersion(ctx context.Context, pkg, binary string) (string, bool) {
	res, err := run(ctx, "snap", "list", pkg)
	if err != nil || res.ExitCode != 0 {
		return "", false
	}
	// First line is the column header; the snap's row follows.
	lines := strings.Split(strings.TrimSpace(res.Stdout), "\n")
	if len(lines) < 2 {
		return "", false
	}
	fields := strings.Fields(lines[1])
	if len(fields) < 2 {
		return "", false
	}
	return fields[1], true
}

func (m *Manager) LatestVersion(ctx context.Context, pkg string) (string, bool) {
	res, err := run(ctx, "snap", "info", pkg)
	if err != nil || res.ExitCode != 0 {
		return "", false
	}
	for _, line := range strings.Split(res.Stdout, "\n") {
		// "  latest/stable:    1.2.3  2023-01-01 (123) 50MB -"
		if !strings.Contains(line, "latest/stable:") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) >= 2 && fields[1] != "--" {
			return fields[1], true
		}
		return "", false
	}
	return "", false
}

func (m *Manager) Install(ctx context.Context, pkg string) bool {
	code, err := runInteractive(ctx, "sudo", "snap", "install", pkg)
	return err == nil && code == 0
}
