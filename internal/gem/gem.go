// Package gem manages Ruby gems, resolving latest versions against
// rubygems.org.
package gem

import (
	"context"
	"regexp"
	"strings"

	"github.com/provkit/provision/internal/client"
	"github.com/provkit/provision/internal/core"
	"github.com/provkit/provision/internal/shell"
)

const (
	DefaultURL = "https://rubygems.org"
	managerKey = "gem"
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

var (
	run            = shell.Run
	runInteractive = shell.RunInteractive
)

// "rails (7.1.2)" -> 7.1.2
var installedRe = regexp.MustCompile(`\(([\d.]+)\)`)

func (m *Manager) Key() string { return managerKey }

func (m *Manager) InstalledVersion(ctx context.Context, pkg, binary string) (string, bool) {
	// -e matches the gem name exactly instead of as a pattern.
	res, err := run(ctx, "gem", "list", "-e", pkg)
	if err != nil || res.ExitCode != 0 {
		return "", false
	}
	if !strings.Contains(res.Stdout, pkg) {
		return "", false
	}
	if match := installedRe.FindStringSubmatch(res.Stdout); match != nil {
		return match[1], true
	}
	return "", false
}

type gemResponse struct {
	Version string `json:"version"`
}

func (m *Manager) LatestVersion(ctx context.Context, pkg string) (string, bool) {
	url := m.baseURL + "/api/v1/gems/" + pkg + ".json"

	var resp gemResponse
	if err := m.client.GetJSON(ctx, url, &resp); err != nil {
		return "", false
	}
	if resp.Version == "" {
		return "", false
	}
	return resp.Version, true
}

func (m *Manager) Install(ctx context.Context, pkg string) bool {
	code, err := runInteractive(ctx, "sudo", "gem", "install", pkg)
	return err == nil && code == 0
}
