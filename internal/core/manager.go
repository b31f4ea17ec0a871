// Package core defines the package-manager capability contract shared by
// every backend, the manager registration table, and the tool/result types.
package core

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/provkit/provision/internal/client"
)

// Manager is the interface implemented by all package ecosystem backends.
//
// The three operations are non-throwing by contract: a missing inspection
// binary, a non-zero exit, malformed output, or an unreachable registry all
// degrade to ("", false) rather than surfacing an error. Install is the one
// exception, reporting success as a boolean.
type Manager interface {
	// Key returns the manager key this backend is registered under
	// (e.g. "apt", "pip", "cargo").
	Key() string

	// InstalledVersion returns the locally installed version of pkg, or
	// ok=false when it is not installed or the check could not run. binary
	// is the on-disk executable name when it differs from pkg.
	InstalledVersion(ctx context.Context, pkg, binary string) (version string, ok bool)

	// LatestVersion returns the newest version the ecosystem's registry
	// reports for pkg, or ok=false when it cannot be determined.
	LatestVersion(ctx context.Context, pkg string) (version string, ok bool)

	// Install installs pkg through the ecosystem's canonical install
	// command and reports whether it exited successfully. Some backends
	// escalate privileges or prompt interactively.
	Install(ctx context.Context, pkg string) bool
}

// Factory creates a manager instance. baseURL overrides the backend's
// default registry endpoint; backends without a registry API ignore it.
type Factory func(baseURL string, c *client.Client) Manager

var (
	factories = make(map[string]Factory)
	defaults  = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a manager factory under the given key. Called from each
// backend package's init; blank-import internal/all to register everything.
// defaultURL is the backend's default registry endpoint ("" for managers
// that only shell out).
func Register(key string, defaultURL string, factory Factory) {
	mu.Lock()
	defer mu.Unlock()
	factories[key] = factory
	defaults[key] = defaultURL
}

// New creates a single manager for the given key.
// If baseURL is empty, the backend's default registry URL is used.
func New(key string, baseURL string, c *client.Client) (Manager, error) {
	mu.RLock()
	factory, ok := factories[key]
	defaultURL := defaults[key]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("unknown manager: %s", key)
	}

	if baseURL == "" {
		baseURL = defaultURL
	}
	if c == nil {
		c = client.DefaultClient()
	}

	return factory(baseURL, c), nil
}

// Table is an immutable key→Manager mapping. It is built once at startup
// and shared read-only across all concurrent probes.
type Table struct {
	managers map[string]Manager
}

// NewTable instantiates every registered manager with its default registry
// URL and the given client.
func NewTable(c *client.Client) Table {
	if c == nil {
		c = client.DefaultClient()
	}

	mu.RLock()
	defer mu.RUnlock()

	managers := make(map[string]Manager, len(factories))
	for key, factory := range factories {
		managers[key] = factory(defaults[key], c)
	}
	return Table{managers: managers}
}

// TableOf builds a Table from explicit managers. Tests use this to
// substitute fakes.
func TableOf(managers ...Manager) Table {
	m := make(map[string]Manager, len(managers))
	for _, mgr := range managers {
		m[mgr.Key()] = mgr
	}
	return Table{managers: m}
}

// Lookup resolves a manager key.
func (t Table) Lookup(key string) (Manager, bool) {
	mgr, ok := t.managers[key]
	return mgr, ok
}

// Keys returns all manager keys in sorted order.
func (t Table) Keys() []string {
	keys := make([]string, 0, len(t.managers))
	for key := range t.managers {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// DefaultURL returns the default registry URL for a manager key.
func DefaultURL(key string) string {
	mu.RLock()
	defer mu.RUnlock()
	return defaults[key]
}
