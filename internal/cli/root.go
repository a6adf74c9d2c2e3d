package cli

import (
	"context"
	"os"
	"os/signal"

	"github.com/GuySartorelli/local-dev/internal/logger"
	"github.com/GuySartorelli/local-dev/internal/output"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	version = "dev"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "localdev",
	Short: "Local PHP development environment tooling",
	Long: `localdev provisions a local PHP development environment.

Run 'localdev setup' once to create the directory skeleton, then
'localdev add-site' to create an Apache virtual host for each site.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() {
	// Initialize logger based on verbose flag (parsed by cobra)
	cobra.OnInitialize(func() {
		logger.Init(verbose)
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		output.Error("%v", err)
		stop()
		os.Exit(1)
	}
}

// SetVersion sets the version string for the CLI
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging for debugging")
}
