package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/provkit/provision/internal/github"
)

var repoOwner string

func init() {
	rootCmd.AddCommand(repoCmd)
	repoCmd.PersistentFlags().StringVar(&repoOwner, "owner", "", "repository owner (defaults to $GITHUB_OWNER)")
}

var repoCmd = &cobra.Command{
	Use:   "repo",
	Short: "Manage GitHub repositories",
}

// githubClient builds an authenticated client from $GITHUB_TOKEN.
// Repository commands cannot do anything useful without it.
func githubClient() (*github.Client, error) {
	token := os.Getenv("GITHUB_TOKEN")
	if token == "" {
		return nil, errors.New("GITHUB_TOKEN is not set")
	}
	return github.New(token), nil
}

// owner resolves the --owner flag, falling back to $GITHUB_OWNER.
func owner() (string, error) {
	if repoOwner != "" {
		return repoOwner, nil
	}
	if o := os.Getenv("GITHUB_OWNER"); o != "" {
		return o, nil
	}
	return "", errors.New("owner not set: pass --owner or set GITHUB_OWNER")
}
