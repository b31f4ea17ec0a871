// Package repo wraps the local git operations behind the repository
// lifecycle commands.
package repo

import (
	"context"
	"fmt"
	"strings"

	"github.com/provkit/provision/internal/shell"
)

var (
	run            = shell.Run
	runInteractive = shell.RunInteractive
)

// gitError wraps a start failure. A missing git binary gets a direct
// message instead of the raw exec error.
func gitError(op string, err error) error {
	if shell.IsNotFound(err) {
		return fmt.Errorf("%s: git is not installed", op)
	}
	return fmt.Errorf("running %s: %w", op, err)
}

// RemoteURL builds the SSH remote URL for owner/name.
func RemoteURL(owner, name string) string {
	return fmt.Sprintf("git@github.com:%s/%s.git", owner, name)
}

// Clone clones remoteURL into dir. Runs interactively so SSH key prompts
// reach the user.
func Clone(ctx context.Context, remoteURL, dir string) error {
	args := []string{"clone", remoteURL}
	if dir != "" {
		args = append(args, dir)
	}
	code, err := runInteractive(ctx, "git", args...)
	if err != nil {
		return gitError("git clone", err)
	}
	if code != 0 {
		return fmt.Errorf("git clone exited with status %d", code)
	}
	return nil
}

// OriginURL returns the origin remote URL of the repository at dir.
func OriginURL(ctx context.Context, dir string) (string, error) {
	res, err := run(ctx, "git", "-C", dir, "remote", "get-url", "origin")
	if err != nil {
		return "", gitError("git remote", err)
	}
	if res.ExitCode != 0 {
		return "", fmt.Errorf("no origin remote in %s", dir)
	}
	return strings.TrimSpace(res.Stdout), nil
}

// SetOriginURL repoints the origin remote of the repository at dir.
func SetOriginURL(ctx context.Context, dir, remoteURL string) error {
	res, err := run(ctx, "git", "-C", dir, "remote", "set-url", "origin", remoteURL)
	if err != nil {
		return gitError("git remote set-url", err)
	}
	if res.ExitCode != 0 {
		return fmt.Errorf("git remote set-url exited with status %d", res.ExitCode)
	}
	return nil
}

// AddOrigin adds an origin remote to the repository at dir.
func AddOrigin(ctx context.Context, dir, remoteURL string) error {
	res, err := run(ctx, "git", "-C", dir, "remote", "add", "origin", remoteURL)
	if err != nil {
		return gitError("git remote add", err)
	}
	if res.ExitCode != 0 {
		return fmt.Errorf("git remote add exited with status %d: %s", res.ExitCode, strings.TrimSpace(res.Stdout))
	}
	return nil
}

// HasOrigin reports whether the repository at dir already has an origin
// remote.
func HasOrigin(ctx context.Context, dir string) bool {
	res, err := run(ctx, "git", "-C", dir, "remote")
	if err != nil || res.ExitCode != 0 {
		return false
	}
	for _, remote := range strings.Fields(res.Stdout) {
		if remote == "origin" {
			return true
		}
	}
	return false
}

// IsRepository reports whether dir is inside a git work tree.
func IsRepository(ctx context.Context, dir string) bool {
	res, err := run(ctx, "git", "-C", dir, "rev-parse", "--is-inside-work-tree")
	return err == nil && res.ExitCode == 0
}

// Push pushes the current branch of dir to origin, setting upstream.
// Interactive: pushing may require SSH authentication.
func Push(ctx context.Context, dir string) error {
	code, err := runInteractive(ctx, "git", "-C", dir, "push", "-u", "origin", "HEAD")
	if err != nil {
		return gitError("git push", err)
	}
	if code != 0 {
		return fmt.Errorf("git push exited with status %d", code)
	}
	return nil
}

// CommitAll stages everything in dir and commits with message. Committing
// nothing is not an error; the push that follows decides whether there is
// anything to upload.
func CommitAll(ctx context.Context, dir, message string) error {
	res, err := run(ctx, "git", "-C", dir, "add", "-A")
	if err != nil {
		return gitError("git add", err)
	}
	if res.ExitCode != 0 {
		return fmt.Errorf("git add exited with status %d", res.ExitCode)
	}

	status, err := run(ctx, "git", "-C", dir, "status", "--porcelain")
	if err != nil {
		return gitError("git status", err)
	}
	if strings.TrimSpace(status.Stdout) == "" {
		return nil
	}

	commit, err := run(ctx, "git", "-C", dir, "commit", "-m", message)
	if err != nil {
		return gitError("git commit", err)
	}
	if commit.ExitCode != 0 {
		return fmt.Errorf("git commit exited with status %d: %s", commit.ExitCode, strings.TrimSpace(commit.Stdout))
	}
	return nil
}
