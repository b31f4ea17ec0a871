package cli

import (
	"github.com/spf13/cobra"

	"github.com/provkit/provision/internal/repo"
)

func init() {
	repoCmd.AddCommand(repoCloneCmd)
}

var repoCloneCmd = &cobra.Command{
	Use:   "clone <name> [dir]",
	Short: "Clone a repository over SSH",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		if err := repo.ValidateName(name); err != nil {
			return err
		}
		dir := ""
		if len(args) == 2 {
			dir = args[1]
		}
		o, err := owner()
		if err != nil {
			return err
		}
		return repo.Clone(cmd.Context(), repo.RemoteURL(o, name), dir)
	},
}
