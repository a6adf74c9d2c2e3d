package cli

import (
	"github.com/GuySartorelli/local-dev/internal/ssl"
	"github.com/GuySartorelli/local-dev/internal/workflow"
	"github.com/spf13/cobra"
)

var addSiteCmd = &cobra.Command{
	Use:     "add-site",
	Aliases: []string{"add"},
	Short:   "Create a virtual host for a new dev site",
	Long: `Create an Apache virtual host interactively.

Asks for the domain, admin email, PHP environment and whether to serve the
site over https. Creates the document root, writes the config into
sites-available and links it into sites-enabled. With https a self-signed
certificate is generated with openssl first.

Examples:
  localdev add-site
  localdev add`,
	Args: cobra.NoArgs,
	RunE: runAddSite,
}

func init() {
	rootCmd.AddCommand(addSiteCmd)
}

func runAddSite(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	drv := deps.DriverFactory.Create(deps.FileSystem, settings)
	certs := ssl.NewGenerator(deps.Executor, settings.SSLDir()).WithBinary(settings.OpenSSLBinary)

	run := workflow.NewAddSite(settings, deps.FileSystem, newPrompter(), drv, certs)
	_, err = run.Run(cmd.Context())
	return err
}
