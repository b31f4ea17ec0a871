// Package shell runs external package-manager commands.
//
// Two modes are provided: captured runs for version queries, where output is
// parsed and the command must never touch the terminal, and interactive runs
// for installs, which may prompt for credentials and therefore get the
// process's stdio.
package shell

import (
	"context"
	"errors"
	"os"
	"os/exec"
)

// Result holds the outcome of a captured command invocation.
type Result struct {
	// Stdout is the combined stdout+stderr of the command. It may be
	// non-empty even when the command exited non-zero; npm in particular
	// emits parseable JSON alongside a failure exit.
	Stdout string

	// ExitCode is the command's exit status.
	ExitCode int
}

// Run executes a command and captures its combined output.
//
// A non-zero exit status is reported through Result.ExitCode, not as an
// error. The returned error is non-nil only when the command could not be
// started (binary missing) or the context ended first.
func Run(ctx context.Context, name string, args ...string) (Result, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	// Keep output machine-readable: no pagers, no ANSI colors.
	cmd.Env = append(os.Environ(), "NO_COLOR=1")
	out, err := cmd.CombinedOutput()
	return result(out, err, ctx)
}

// RunInteractive executes a command with the process's stdio attached,
// returning its exit code. Install commands run this way because they may
// prompt (sudo passwords, confirmation questions).
func RunInteractive(ctx context.Context, name string, args ...string) (int, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return exitCode(cmd.Run(), ctx)
}

// RunScriptInteractive is RunInteractive for a bash script line.
func RunScriptInteractive(ctx context.Context, script string) (int, error) {
	cmd := exec.CommandContext(ctx, "/bin/bash", "-c", script)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return exitCode(cmd.Run(), ctx)
}

// IsNotFound reports whether err means the external binary itself is absent.
// Callers treat this the same as "package not installed".
func IsNotFound(err error) bool {
	return errors.Is(err, exec.ErrNotFound)
}

func result(out []byte, err error, ctx context.Context) (Result, error) {
	if ctx.Err() != nil {
		return Result{}, ctx.Err()
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return Result{Stdout: string(out), ExitCode: exitErr.ExitCode()}, nil
		}
		return Result{}, err
	}
	return Result{Stdout: string(out)}, nil
}

func exitCode(err error, ctx context.Context) (int, error) {
	if ctx.Err() != nil {
		return -1, ctx.Err()
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return -1, err
	}
	return 0, nil
}
