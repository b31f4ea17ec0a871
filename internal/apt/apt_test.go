package apt

import (
	"context"
	"os/exec"
	"strings"
	"testing"

	"github.com/provkit/provision/internal/shell"
)

func fakeRun(t *testing.T, outputs map[string]shell.Result, errs map[string]error) {
	t.Helper()
	orig := run
	t.Cleanup(func() { run = orig })
	run = func(ctx context.Context, name string, args ...string) (shell.Result, error) {
		if err, ok := errs[name]; ok {
			return shell.Result{}, err
		}
		res, ok := outputs[name]
		if !ok {
			t.Fatalf("unexpected command %q", name)
		}
		return res, nil
	}
}

func TestInstalledVersion(t *testing.T) {
	fakeRun(t, map[string]shell.Result{
		"dpkg-query": {Stdout: "14.1.0-1\n"},
	}, nil)

	v, ok := New().InstalledVersion(context.Background(), "ripgrep", "rg")
	if !ok || v != "14.1.0-1" {
		t.Errorf("got (%q, %v), want (14.1.0-1, true)", v, ok)
	}
}

func TestInstalledVersionNotInstalled(t *testing.T) {
	fakeRun(t, map[string]shell.Result{
		"dpkg-query": {Stdout: "dpkg-query: no packages found matching ripgrep\n", ExitCode: 1},
	}, nil)

	if _, ok := New().InstalledVersion(context.Background(), "ripgrep", "rg"); ok {
		t.Error("expected not installed")
	}
}

func TestInstalledVersionToolMissing(t *testing.T) {
	fakeRun(t, nil, map[string]error{"dpkg-query": exec.ErrNotFound})

	if _, ok := New().InstalledVersion(context.Background(), "ripgrep", "rg"); ok {
		t.Error("expected degradation when dpkg-query is absent")
	}
}

func TestLatestVersion(t *testing.T) {
	policy := "ripgrep:\n  Installed: 14.1.0-1\n  Candidate: 14.1.1-1\n  Version table:\n"
	fakeRun(t, map[string]shell.Result{
		"apt-cache": {Stdout: policy},
	}, nil)

	v, ok := New().LatestVersion(context.Background(), "ripgrep")
	if !ok || v != "14.1.1-1" {
		t.Errorf("got (%q, %v), want (14.1.1-1, true)", v, ok)
	}
}

func TestLatestVersionNoCandidate(t *testing.T) {
	policy := "obscure:\n  Installed: (none)\n  Candidate: (none)\n"
	fakeRun(t, map[string]shell.Result{
		"apt-cache": {Stdout: policy},
	}, nil)

	if _, ok := New().LatestVersion(context.Background(), "obscure"); ok {
		t.Error("expected no candidate")
	}
}

func TestInstall(t *testing.T) {
	orig := runInteractive
	t.Cleanup(func() { runInteractive = orig })

	var got []string
	runInteractive = func(ctx context.Context, name string, args ...string) (int, error) {
		got = append([]string{name}, args...)
		return 0, nil
	}

	if !New().Install(context.Background(), "ripgrep") {
		t.Fatal("install should succeed")
	}
	want := "sudo apt install -y ripgrep"
	if joined := strings.Join(got, " "); joined != want {
		t.Errorf("command = %q, want %q", joined, want)
	}
}
