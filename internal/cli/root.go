package cli

import (
	"os"

	apperrors "github.com/sitectl/sitectl/internal/errors"
	"github.com/sitectl/sitectl/internal/logger"
	"github.com/spf13/cobra"
)

var (
	jsonOutput bool
	verbose    bool
	serverFlag string
	noReload   bool
	editorFlag string
	version    = "dev"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "sitectl",
	Short: "Manage sites-available and sites-enabled",
	Long: `sitectl manages web server virtual host configuration files using
the sites-available/sites-enabled convention.

The configuration directories are discovered from the installed web
server's compiled-in configuration path. Commands are provided to
create, edit, enable, disable, list, and remove site configuration
files; mutations are followed by the server's own configuration test
and reload.`,
}

// Execute runs the root command and exits with the code mapped from
// the returned error: 0 success, 1 general error, 2 conflict or
// cancellation, 3 failed configuration test.
func Execute() {
	// Initialize logger based on verbose flag (parsed by cobra)
	cobra.OnInitialize(func() {
		logger.Init(verbose)
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(apperrors.ExitCode(err))
	}
}

// SetVersion sets the version string for the CLI
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging for debugging")
	rootCmd.PersistentFlags().StringVar(&serverFlag, "server", "", "Web server to manage (nginx, apache); overrides config")
}
