package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/provkit/provision/internal/repo"
	"github.com/provkit/provision/internal/system"
)

var deleteConfirmed bool

func init() {
	repoCmd.AddCommand(repoDeleteCmd)
	repoDeleteCmd.Flags().BoolVar(&deleteConfirmed, "yes", false, "confirm deletion")
}

var repoDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a repository",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		if err := repo.ValidateName(name); err != nil {
			return err
		}
		if !deleteConfirmed {
			return errors.New("refusing to delete without --yes")
		}
		o, err := owner()
		if err != nil {
			return err
		}
		gh, err := githubClient()
		if err != nil {
			return err
		}
		if err := gh.DeleteRepo(cmd.Context(), o, name); err != nil {
			return err
		}
		system.Logger.Info("repository deleted", "owner", o, "name", name)
		return nil
	},
}
