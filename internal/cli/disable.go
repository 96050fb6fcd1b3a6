package cli

import (
	"fmt"

	"github.com/sitectl/sitectl/internal/output"
	"github.com/spf13/cobra"
)

var disableCmd = &cobra.Command{
	Use:   "disable <site>",
	Short: "Disable a site",
	Long: `Disable a site by removing its symlink from sites-enabled.

Disabling a site that is not enabled is not an error.

Examples:
  sitectl disable example.com`,
	Args: cobra.ExactArgs(1),
	RunE: runDisable,
}

func init() {
	disableCmd.Flags().BoolVar(&noReload, "no-reload", false, "Don't reload the web server")

	rootCmd.AddCommand(disableCmd)
}

func runDisable(cmd *cobra.Command, args []string) error {
	site := args[0]

	if err := validateSiteName(site); err != nil {
		return err
	}

	cfg, drv, err := resolveDriver()
	if err != nil {
		return err
	}

	enabled, err := drv.IsEnabled(site)
	if err != nil {
		return err
	}
	if !enabled {
		return outputResult(
			map[string]interface{}{
				"success": true,
				"site":    site,
				"changed": false,
			},
			"Site %s is not enabled, nothing to do", site,
		)
	}

	if err := requireRoot(); err != nil {
		return err
	}

	output.Info("Disabling site...")
	if err := drv.Disable(site); err != nil {
		return fmt.Errorf("failed to disable site: %w", err)
	}

	if shouldReload(cfg) {
		output.Info("Reloading %s...", drv.Name())
		if err := drv.Reload(); err != nil {
			// The site is already disabled; a reload failure here
			// should not fail the command.
			output.Warn("Reload failed: %v", err)
		}
	}

	return outputResult(
		map[string]interface{}{
			"success":  true,
			"site":     site,
			"disabled": true,
		},
		"Site %s disabled", site,
	)
}
