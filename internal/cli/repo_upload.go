package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/provkit/provision/internal/github"
	"github.com/provkit/provision/internal/repo"
	"github.com/provkit/provision/internal/system"
)

var (
	uploadMessage string
	uploadPrivate bool
)

func init() {
	repoCmd.AddCommand(repoUploadCmd)
	repoUploadCmd.Flags().StringVarP(&uploadMessage, "message", "m", "Initial commit", "commit message")
	repoUploadCmd.Flags().BoolVar(&uploadPrivate, "private", false, "create the repository as private")
}

var repoUploadCmd = &cobra.Command{
	Use:   "upload <name> [dir]",
	Short: "Create a repository and push a local directory to it",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		if err := repo.ValidateName(name); err != nil {
			return err
		}
		dir := "."
		if len(args) == 2 {
			dir = args[1]
		}
		ctx := cmd.Context()
		if !repo.IsRepository(ctx, dir) {
			return fmt.Errorf("%s is not a git repository", dir)
		}
		o, err := owner()
		if err != nil {
			return err
		}
		gh, err := githubClient()
		if err != nil {
			return err
		}

		err = gh.CreateRepo(ctx, name, uploadPrivate)
		switch {
		case errors.Is(err, github.ErrRepoExists):
			system.Logger.Warn("repository already exists, pushing anyway", "name", name)
		case err != nil:
			return err
		default:
			system.Logger.Info("repository created", "name", name)
		}

		remote := repo.RemoteURL(o, name)
		if repo.HasOrigin(ctx, dir) {
			if err := repo.SetOriginURL(ctx, dir, remote); err != nil {
				return err
			}
		} else {
			if err := repo.AddOrigin(ctx, dir, remote); err != nil {
				return err
			}
		}

		if err := repo.CommitAll(ctx, dir, uploadMessage); err != nil {
			return err
		}
		if err := repo.Push(ctx, dir); err != nil {
			return err
		}
		system.Logger.Info("uploaded", "remote", remote)
		return nil
	},
}
