// Package apt manages Debian packages through dpkg and apt.
package apt

import (
	"context"
	"strings"

	"github.com/provkit/provision/internal/client"
	"github.com/provkit/provision/internal/core"
	"github.com/provkit/provision/internal/shell"
)

const managerKey = "apt"

func init() {
	core.Register(managerKey, "", func(_ string, _ *client.Client) core.Manager {
		return New()
	})
}

// Manager queries the local dpkg database for installed versions and the
// apt repository metadata for candidate versions.
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
	// dpkg reports the exact installed version, unlike apt-cache.
	res, err := run(ctx, "dpkg-query", "-W", "-f=${Version}", pkg)
	if err != nil || res.ExitCode != 0 {
		return "", false
	}
	version := strings.TrimSpace(res.Stdout)
	if version == "" {
		return "", false
	}
	return version, true
}

func (m *Manager) LatestVersion(ctx context.Context, pkg string) (string, bool) {
	res, err := run(ctx, "apt-cache", "policy", pkg)
	if err != nil || res.ExitCode != 0 {
		return "", false
	}
	for _, line := range strings.Split(res.Stdout, "\n") {
		if _, after, found := strings.Cut(line, "Candidate:"); found {
			candidate := strings.TrimSpace(after)
			if candidate == "" || candidate == "(none)" {
				return "", false
			}
			return candidate, true
		}
	}
	return "", false
}

func (m *Manager) Install(ctx context.Context, pkg string) bool {
	code, err := runInteractive(ctx, "sudo", "apt", "install", "-y", pkg)
	return err == nil && code == 0
}
