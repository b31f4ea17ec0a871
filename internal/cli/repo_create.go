package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/provkit/provision/internal/github"
	"github.com/provkit/provision/internal/repo"
	"github.com/provkit/provision/internal/system"
)

var createPrivate bool

func init() {
	repoCmd.AddCommand(repoCreateCmd)
	repoCreateCmd.Flags().BoolVar(&createPrivate, "private", false, "create a private repository")
}

var repoCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a repository under the authenticated user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		if err := repo.ValidateName(name); err != nil {
			return err
		}
		gh, err := githubClient()
		if err != nil {
			return err
		}
		err = gh.CreateRepo(cmd.Context(), name, createPrivate)
		switch {
		case errors.Is(err, github.ErrRepoExists):
			system.Logger.Warn("repository already exists", "name", name)
		case err != nil:
			return err
		default:
			system.Logger.Info("repository created", "name", name, "private", createPrivate)
		}

		o, err := owner()
		if err != nil {
			return err
		}
		return repo.Clone(cmd.Context(), repo.RemoteURL(o, name), "")
	},
}
