// Package npm manages global npm packages.
//
// Both version queries go through the npm CLI itself: "npm list -g --json"
// for the installed tree and "npm view" for the registry, so the backend
// honors whatever registry npm is configured against.
package npm

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/provkit/provision/internal/client"
	"github.com/provkit/provision/internal/core"
	"github.com/provkit/provision/internal/shell"
)

const managerKey = "npm"

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

type globalList struct {
	Dependencies map[string]struct {
		Version string `json:"version"`
	} `json:"dependencies"`
}

func (m *Manager) InstalledVersion(ctx context.Context, pkg, binary string) (string, bool) {
	res, err := run(ctx, "npm", "list", "-g", "--depth=0", "--json", pkg)
	if err != nil {
		return "", false
	}
	// npm exits non-zero when the package is missing or the tree is broken
	// but still prints JSON; parse whatever came out.
	var list globalList
	if json.Unmarshal([]byte(res.Stdout), &list) != nil {
		return "", false
	}
	dep, ok := list.Dependencies[pkg]
	if !ok || dep.Version == "" {
		return "", false
	}
	return dep.Version, true
}

func (m *Manager) LatestVersion(ctx context.Context, pkg string) (string, bool) {
	res, err := run(ctx, "npm", "view", pkg, "version")
	if err != nil || res.ExitCode != 0 {
		return "", false
	}
	version := strings.TrimSpace(res.Stdout)
	if i := strings.IndexByte(version, '\n'); i >= 0 {
		version = version[:i]
	}
	version = strings.Trim(version, `"`)
	if version == "" {
		return "", false
	}
	return version, true
}

func (m *Manager) Install(ctx context.Context, pkg string) bool {
	code, err := runInteractive(ctx, "sudo", "npm", "install", "-g", pkg)
	return err == nil && code == 0
}
