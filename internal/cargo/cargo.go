// Package cargo manages Rust binaries installed with cargo install,
// resolving latest versions against crates.io.
package cargo

import (
	"context"
	"regexp"
	"strings"

	"github.com/provkit/provision/internal/client"
	"github.com/provkit/provision/internal/core"
	"github.com/provkit/provision/internal/shell"
)

const (
	DefaultURL = "https://crates.io"
	managerKey = "cargo"
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

// "ripgrep v13.0.0:" -> 13.0.0
var installedRe = regexp.MustCompile(`v([\d.]+)`)

func (m *Manager) Key() string { return managerKey }

func (m *Manager) InstalledVersion(ctx context.Context, pkg, binary string) (string, bool) {
	res, err := run(ctx, "cargo", "install", "--list")
	if err != nil || res.ExitCode != 0 {
		return "", false
	}
	for _, line := range strings.Split(res.Stdout, "\n") {
		if !strings.HasPrefix(line, pkg+" ") {
			continue
		}
		if match := installedRe.FindStringSubmatch(line); match != nil {
			return match[1], true
		}
	}
	return "", false
}

type crateResponse struct {
	Crate struct {
		MaxVersion string `json:"max_version"`
	} `json:"crate"`
}

func (m *Manager) LatestVersion(ctx context.Context, pkg string) (string, bool) {
	url := m.baseURL + "/api/v1/crates/" + pkg

	var resp crateResponse
	if err := m.client.GetJSON(ctx, url, &resp); err != nil {
		return "", false
	}
	if resp.Crate.MaxVersion == "" {
		return "", false
	}
	return resp.Crate.MaxVersion, true
}

func (m *Manager) Install(ctx context.Context, pkg string) bool {
	code, err := runInteractive(ctx, "cargo", "install", pkg)
	return err == nil && code == 0
}
