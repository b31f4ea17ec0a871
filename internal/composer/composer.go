// Package composer manages global Composer packages, resolving latest
// versions against packagist.org.
package composer

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/provkit/provision/internal/client"
	"github.com/provkit/provision/internal/core"
	"github.com/provkit/provision/internal/shell"
)

const (
	DefaultURL = "https://packagist.org"
	managerKey = "composer"
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
	res, err := run(ctx, "composer", "global", "show", pkg)
	if err != nil || res.ExitCode != 0 {
		return "", false
	}
	for _, line := range strings.Split(res.Stdout, "\n") {
		// "versions : * 2.5.5"
		if !strings.HasPrefix(strings.TrimSpace(line), "versions") {
			continue
		}
		_, after, found := strings.Cut(line, ":")
		if !found {
			return "", false
		}
		version := strings.TrimSpace(strings.ReplaceAll(after, "*", ""))
		if version == "" {
			return "", false
		}
		return version, true
	}
	return "", false
}

type packageResponse struct {
	Package struct {
		Versions map[string]json.RawMessage `json:"versions"`
	} `json:"package"`
}

// LatestVersion returns the highest stable tag Packagist knows for pkg.
// Packagist lists every branch and prerelease in one map, so dev/alpha/beta
// tags are filtered out and the remainder is ordered numerically rather than
// trusting map iteration order.
func (m *Manager) LatestVersion(ctx context.Context, pkg string) (string, bool) {
	url := m.baseURL + "/packages/" + pkg + ".json"

	var resp packageResponse
	if err := m.client.GetJSON(ctx, url, &resp); err != nil {
		return "", false
	}

	best := ""
	for tag := range resp.Package.Versions {
		if !stable(tag) {
			continue
		}
		if best == "" || versionLess(best, tag) {
			best = tag
		}
	}
	if best == "" {
		return "", false
	}
	return best, true
}

func (m *Manager) Install(ctx context.Context, pkg string) bool {
	code, err := runInteractive(ctx, "composer", "global", "require", pkg)
	return err == nil && code == 0
}

func stable(tag string) bool {
	lower := strings.ToLower(tag)
	for _, marker := range []string{"dev", "alpha", "beta", "rc"} {
		if strings.Contains(lower, marker) {
			return false
		}
	}
	return true
}

// versionLess is a best-effort numeric ordering of dotted version tags.
// Good enough to pick the highest stable tag out of Packagist's version map;
// it is not a full semver comparison and is not used for status
// classification, which compares raw strings.
func versionLess(a, b string) bool {
	as := strings.Split(strings.TrimPrefix(a, "v"), ".")
	bs := strings.Split(strings.TrimPrefix(b, "v"), ".")
	for i := 0; i < len(as) || i < len(bs); i++ {
		av, bv := 0, 0
		if i < len(as) {
			av = numericPrefix(as[i])
		}
		if i < len(bs) {
			bv = numericPrefix(bs[i])
		}
		if av != bv {
			return av < bv
		}
	}
	return false
}

func numericPrefix(s string) int {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	n, _ := strconv.Atoi(s[:end])
	return n
}
