package cli

import (
	"github.com/GuySartorelli/local-dev/internal/workflow"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Provision the local dev environment",
	Long: `Provision the local dev environment. Only needs to run once.

Creates the Apache config, log and database directories under the toolkit
root, links <root>/www to your web root and saves your answers for later
runs. Existing directories and links are left alone.

Examples:
  localdev setup`,
	Args: cobra.NoArgs,
	RunE: runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	_, err = workflow.NewSetup(settings, deps.FileSystem, newPrompter()).Run(cmd.Context())
	return err
}
