package cli

import (
	"github.com/spf13/cobra"

	"github.com/provkit/provision/internal/catalog"
	"github.com/provkit/provision/internal/docs"
	"github.com/provkit/provision/internal/system"
)

var docsOutput string

func init() {
	rootCmd.AddCommand(docsCmd)
	docsCmd.Flags().StringVarP(&docsOutput, "output", "o", docs.DefaultPath, "output file")
}

var docsCmd = &cobra.Command{
	Use:   "generate-docs",
	Short: "Generate the provisioning manifest",
	RunE: func(cmd *cobra.Command, args []string) error {
		tools := catalog.Tools()
		if err := docs.Generate(docsOutput, tools); err != nil {
			return err
		}
		system.Logger.Info("manifest written", "path", docsOutput, "tools", len(tools))
		return nil
	},
}
