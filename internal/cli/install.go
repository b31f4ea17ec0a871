package cli

import (
	"github.com/spf13/cobra"

	"github.com/provkit/provision/internal/catalog"
	"github.com/provkit/provision/internal/engine"
	"github.com/provkit/provision/internal/system"
)

var installExclude []string

func init() {
	rootCmd.AddCommand(installCmd)
	installCmd.Flags().StringSliceVar(&installExclude, "exclude", nil, "tool names to skip")
}

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install missing tools in registry order",
	RunE: func(cmd *cobra.Command, args []string) error {
		tools := catalog.Tools()
		eng := engine.New(managerTable())

		system.Logger.Info("starting installation", "tools", len(tools), "excluded", len(installExclude))

		results := eng.Install(cmd.Context(), tools, installExclude, func(r engine.InstallResult) {
			switch r.Outcome {
			case engine.OutcomeExcluded:
				system.Logger.Debug("excluded", "tool", r.Tool.Name)
			case engine.OutcomeAlreadyInstalled:
				system.Logger.Info("already installed", "tool", r.Tool.Name, "version", r.Version)
			case engine.OutcomeNoManager:
				system.Logger.Error("no manager registered", "tool", r.Tool.Name, "manager", r.Tool.Manager)
			case engine.OutcomeInstalled:
				system.Logger.Info("installed", "tool", r.Tool.Name, "manager", r.Tool.Manager)
			case engine.OutcomeFailed:
				system.Logger.Error("install failed", "tool", r.Tool.Name, "manager", r.Tool.Manager)
			}
		})

		installed, failed := 0, 0
		for _, r := range results {
			switch r.Outcome {
			case engine.OutcomeInstalled:
				installed++
			case engine.OutcomeFailed, engine.OutcomeNoManager:
				failed++
			}
		}
		system.Logger.Info("installation finished", "installed", installed, "failed", failed)

		// Individual failures are reported per tool; the run itself
		// completes.
		return nil
	},
}
