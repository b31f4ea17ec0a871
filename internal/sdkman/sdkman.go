// Package sdkman manages JVM candidates (java, maven, gradle) through
// SDKMAN!.
//
// SDKMAN is a shell function, not a binary, so installs run through a bash
// line that sources sdkman-init.sh first. The installed version is read
// straight off the candidate's "current" symlink, which is much cheaper
// than spawning a sourced shell per probe.
package sdkman

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/provkit/provision/internal/client"
	"github.com/provkit/provision/internal/core"
	"github.com/provkit/provision/internal/shell"
)

const (
	DefaultURL = "https://api.sdkman.io"
	managerKey = "sdk"
)

func init() {
	core.Register(managerKey, DefaultURL, func(baseURL string, c *client.Client) core.Manager {
		return New(baseURL, c)
	})
}

type Manager struct {
	baseURL string
	client  *client.Client
}

func New(baseURL string, c *client.Client) *Manager {
	if baseURL == "" {
		baseURL = DefaultURL
	}
	return &Manager{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  c,
	}
}

var runScriptInteractive = shell.RunScriptInteractive

func (m *Manager) Key() string { return managerKey }

func (m *Manager) InstalledVersion(ctx context.Context, pkg, binary string) (string, bool) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", false
	}
	// ~/.sdkman/candidates/<candidate>/current -> <version dir>
	link := filepath.Join(home, ".sdkman", "candidates", pkg, "current")
	target, err := os.Readlink(link)
	if err != nil {
		return "", false
	}
	version := filepath.Base(target)
	if version == "" || version == "." {
		return "", false
	}
	return version, true
}

func (m *Manager) LatestVersion(ctx context.Context, pkg string) (string, bool) {
	// Undocumented but stable endpoint; returns the default version as
	// plain text.
	url := m.baseURL + "/2/candidates/" + pkg + "/default"

	body, err := m.client.GetText(ctx, url)
	if err != nil {
		return "", false
	}
	version := strings.TrimSpace(body)
	if version == "" {
		return "", false
	}
	return version, true
}

func (m *Manager) Install(ctx context.Context, pkg string) bool {
	script := fmt.Sprintf(`source "$HOME/.sdkman/bin/sdkman-init.sh" && sdk install %s`, pkg)
	code, err := runScriptInteractive(ctx, script)
	return err == nil && code == 0
}
