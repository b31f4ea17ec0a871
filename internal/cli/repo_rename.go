package cli

import (
	"github.com/spf13/cobra"

	"github.com/provkit/provision/internal/repo"
	"github.com/provkit/provision/internal/system"
)

func init() {
	repoCmd.AddCommand(repoRenameCmd)
}

var repoRenameCmd = &cobra.Command{
	Use:   "rename <old> <new>",
	Short: "Rename a repository",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		oldName, newName := args[0], args[1]
		if err := repo.ValidateName(oldName); err != nil {
			return err
		}
		if err := repo.ValidateName(newName); err != nil {
			return err
		}
		o, err := owner()
		if err != nil {
			return err
		}
		gh, err := githubClient()
		if err != nil {
			return err
		}
		if err := gh.RenameRepo(cmd.Context(), o, oldName, newName); err != nil {
			return err
		}
		system.Logger.Info("repository renamed", "owner", o, "old", oldName, "new", newName)

		// If the current directory tracks the old remote, repoint it.
		ctx := cmd.Context()
		if repo.IsRepository(ctx, ".") {
			origin, err := repo.OriginURL(ctx, ".")
			if err == nil {
				if remoteOwner, remoteName, ok := repo.ParseRemote(origin); ok && remoteOwner == o && remoteName == oldName {
					if err := repo.SetOriginURL(ctx, ".", repo.RemoteURL(o, newName)); err != nil {
						return err
					}
					system.Logger.Info("origin updated", "url", repo.RemoteURL(o, newName))
				}
			}
		}
		return nil
	},
}
