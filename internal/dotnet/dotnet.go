// Package dotnet manages .NET global tools, resolving latest versions
// against the NuGet flat-container API.
package dotnet

import (
	"context"
	"strings"

	"github.com/provkit/provision/internal/client"
	"github.com/provkit/provision/internal/core"
	"github.com/provkit/provision/internal/shell"
)

const (
	DefaultURL = "https://api.nuget.org"
	managerKey = "dotnet"
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
	res, err := run(ctx, "dotnet", "tool", "list", "-g")
	if err != nil || res.ExitCode != 0 {
		return "", false
	}
	// "Package Id      Version      Commands" plus a ---- separator row,
	// then one row per tool. NuGet package ids are case-insensitive.
	for _, line := range strings.Split(res.Stdout, "\n") {
		fields := strings.Fields(line)
		if len(fields) >= 2 && strings.EqualFold(fields[0], pkg) {
			return fields[1], true
		}
	}
	return "", false
}

type flatContainerIndex struct {
	Versions []string `json:"versions"`
}

func (m *Manager) LatestVersion(ctx context.Context, pkg string) (string, bool) {
	url := m.baseURL + "/v3-flatcontainer/" + strings.ToLower(pkg) + "/index.json"

	var resp flatContainerIndex
	if err := m.client.GetJSON(ctx, url, &resp); err != nil {
		return "", false
	}
	if len(resp.Versions) == 0 {
		return "", false
	}
	// The flat container sorts versions chronologically.
	return resp.Versions[len(resp.Versions)-1], true
}

func (m *Manager) Install(ctx context.Context, pkg string) bool {
	code, err := runInteractive(ctx, "dotnet", "tool", "install", "-g", pkg)
	return err == nil && code == 0
}
