// Package luarocks manages Lua rocks through the luarocks CLI.
package luarocks

import (
	"context"
	"strings"

	"github.com/provkit/provision/internal/client"
	"github.com/provkit/provision/internal/core"
	"github.com/provkit/provision/internal/shell"
)

const managerKey = "luarocks"

func init() {
	core.Register(managerKey, "", func(_ string, _ *client.Client) core.Manager {
		return New()
	})
}

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
	res, err := run(ctx, "luarocks", "list", pkg)
	if err != nil {
		return "", false
	}
	for _, line := range strings.Split(res.Stdout, "\n") {
		// "   1.0.0-1 (installed) - /usr/local/lib/luarocks/..."
		if !strings.Contains(line, "(installed)") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) > 0 {
			return fields[0], true
		}
	}
	return "", false
}

func (m *Manager) LatestVersion(ctx context.Context, pkg string) (string, bool) {
	// --porcelain prints "name\tversion\tstatus\tpath" per line.
	res, err := run(ctx, "luarocks", "search", "--porcelain", pkg)
	if err != nil || res.ExitCode != 0 {
		return "", false
	}
	for _, line := range strings.Split(res.Stdout, "\n") {
		parts := strings.Split(line, "\t")
		if len(parts) >= 2 && parts[0] == pkg {
			// Search lists the newest rockspec first.
			return parts[1], true
		}
	}
	return "", false
}

func (m *Manager) Install(ctx context.Context, pkg string) bool {
	code, err := runInteractive(ctx, "sudo", "luarocks", "install", pkg)
	return err == nil && code == 0
}
