// Package cli wires the provision subcommands.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	_ "github.com/provkit/provision/internal/all"
	"github.com/provkit/provision/internal/client"
	"github.com/provkit/provision/internal/core"
)

var rootCmd = &cobra.Command{
	Use:   "provision",
	Short: "provision – manage the machine's curated software ecosystem",
	Long: "provision checks, installs, and documents the curated set of tools\n" +
		"this machine is expected to carry, across ten package ecosystems.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// managerTable builds the process-wide manager table. Constructed once per
// command invocation and passed explicitly into the engine.
func managerTable() core.Table {
	return core.NewTable(client.DefaultClient())
}
