package gem

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
	stub(t, shell.Result{Stdout: "\n*** LOCAL GEMS ***\n\ncolorls (1.4.6)\n"}, nil)

	m := New("", nil)
	v, ok := m.InstalledVersion(context.Background(), "colorls", "colorls")
	if !ok || v != "1.4.6" {
		t.Errorf("got (%q, %v), want (1.4.6, true)", v, ok)
	}
}

func TestInstalledVersionMissing(t *testing.T) {
	stub(t, shell.Result{Stdout: "\n*** LOCAL GEMS ***\n\n"}, nil)

	if _, ok := New("", nil).InstalledVersion(context.Background(), "colorls", "colorls"); ok {
		t.Error("expected not installed")
	}
}

func TestLatestVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/gems/colorls.json" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"name": "colorls", "version": "1.5.0"}`))
	}))
	defer srv.Close()

	m := New(srv.URL, client.NewClient(client.WithMaxRetries(0)))
	v, ok := m.LatestVersion(context.Background(), "colorls")
	if !ok || v != "1.5.0" {
		t.Errorf("got (%q, %v), want (1.5.0, true)", v, ok)
	}
}

func TestLatestVersionUnknownGem(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	m := New(srv.URL, client.NewClient(client.WithMaxRetries(0)))
	if _, ok := m.LatestVersion(context.Background(), "no-such-gem"); ok {
		t.Error("expected degradation on 404")
	}
}
