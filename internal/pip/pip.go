// Package pip manages Python packages installed with pip, resolving latest
// versions against pypi.org.
package pip

import (
	"context"
	"strings"

	"github.com/provkit/provision/internal/client"
	"github.com/provkit/provision/internal/core"
	"github.com/provkit/provision/internal/shell"
)

const (
	DefaultURL = "https://pypi.org"
	managerKey = "pip"
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

func (m *Manager) Key() string { return managerKey }

func (m *Manager) InstalledVersion(ctx context.Context, pkg, binary string) (string, bool) {
	// pip show is interpreter-scoped, which matches what "installed" means
	// for Python packages.
	res, err := run(ctx, "python3", "-m", "pip", "show", pkg)
	if err != nil || res.ExitCode != 0 {
		return "", false
	}
	for _, line := range strings.Split(res.Stdout, "\n") {
		if after, found := strings.CutPrefix(line, "Version:"); found {
			version := strings.TrimSpace(after)
			if version == "" {
				return "", false
			}
			return version, true
		}
	}
	return "", false
}

type projectResponse struct {
	Info struct {
		Version string `json:"version"`
	} `json:"info"`
}

func (m *Manager) LatestVersion(ctx context.Context, pkg string) (string, bool) {
	url := m.baseURL + "/pypi/" + pkg + "/json"

	var resp projectResponse
	if err := m.client.GetJSON(ctx, url, &resp); err != nil {
		return "", false
	}
	if resp.Info.Version == "" {
		return "", false
	}
	return resp.Info.Version, true
}

func (m *Manager) Install(ctx context.Context, pkg string) bool {
	code, err := runInteractive(ctx, "python3", "-m", "pip", "install", pkg)
	return err == nil && code == 0
}
