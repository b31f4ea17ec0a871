package dotnet

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/provkit/provision/internal/client"
	"github.com/provkit/provision/internal/shell"
)

func stub(t *testing.T, res shell.Result, err error) {
	t.Helper()
	orig := run
	t.Cleanup(func() { run = orig })
	run = func(ctx context.Context, name string, args ...string) (shell.Result, error) {
		return res, err
	}
}

func TestInstalledVersion(t *testing.T) {
	out := "Package Id               Version      Commands\n" +
		"---------------------------------------------\n" +
		"dotnet-ef                8.0.8        dotnet-ef\n"
	stub(t, shell.Result{Stdout: out}, nil)

	m := New("", nil)
	v, ok := m.InstalledVersion(context.Background(), "dotnet-ef", "dotnet-ef")
	if !ok || v != "8.0.8" {
		t.Errorf("got (%q, %v), want (8.0.8, true)", v, ok)
	}
}

func TestInstalledVersionCaseInsensitive(t *testing.T) {
	out := "Package Id   Version   Commands\n----\nPowerShell   7.4.5     pwsh\n"
	stub(t, shell.Result{Stdout: out}, nil)

	m := New("", nil)
	v, ok := m.InstalledVersion(context.Background(), "powershell", "pwsh")
	if !ok || v != "7.4.5" {
		t.Errorf("got (%q, %v), want case-insensitive match", v, ok)
	}
}

func TestLatestVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v3-flatcontainer/powershell/index.json" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"versions": ["7.4.3", "7.4.4", "7.4.5"]}`))
	}))
	defer srv.Close()

	m := New(srv.URL, client.NewClient(client.WithMaxRetries(0)))
	v, ok := m.LatestVersion(context.Background(), "PowerShell")
	if !ok || v != "7.4.5" {
		t.Errorf("got (%q, %v), want last listed version", v, ok)
	}
}

func TestLatestVersionEmptyIndex(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"versions": []}`))
	}))
	defer srv.Close()

	m := New(srv.URL, client.NewClient(client.WithMaxRetries(0)))
	if _, ok := m.LatestVersion(context.Background(), "ghost-tool"); ok {
		t.Error("expected degradation on empty version list")
	}
}
