package cli

import (
	"fmt"

	apperrors "github.com/sitectl/sitectl/internal/errors"
	"github.com/sitectl/sitectl/internal/output"
	"github.com/spf13/cobra"
)

var enableCmd = &cobra.Command{
	Use:   "enable <site>",
	Short: "Enable a site",
	Long: `Enable a site by creating a symlink in sites-enabled.

The server's configuration test runs after the link is created. If the
test fails, the link is removed again and the command exits with code 3.

Examples:
  sitectl enable example.com`,
	Args: cobra.ExactArgs(1),
	RunE: runEnable,
}

func init() {
	enableCmd.Flags().BoolVar(&noReload, "no-reload", false, "Don't reload the web server")

	rootCmd.AddCommand(enableCmd)
}

func runEnable(cmd *cobra.Command, args []string) error {
	site := args[0]

	if err := validateSiteName(site); err != nil {
		return err
	}

	cfg, drv, err := resolveDriver()
	if err != nil {
		return err
	}

	// State checks precede the privilege check, so "already enabled"
	// is reported even in an unelevated run.
	exists, err := drv.Exists(site)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.NotFound(site)
	}

	enabled, err := drv.IsEnabled(site)
	if err != nil {
		return err
	}
	if enabled {
		return apperrors.AlreadyEnabled(site)
	}

	if err := requireRoot(); err != nil {
		return err
	}

	output.Info("Enabling site...")
	if err := drv.Enable(site); err != nil {
		return fmt.Errorf("failed to enable site: %w", err)
	}

	output.Info("Testing configuration...")
	if err := drv.Test(); err != nil {
		// Roll the new link back so the configuration is no worse
		// than before this call.
		if rbErr := drv.Disable(site); rbErr != nil {
			output.Warn("Rollback failed: %v", rbErr)
		}
		return apperrors.TestFailed(site, err)
	}

	if shouldReload(cfg) {
		output.Info("Reloading %s...", drv.Name())
		if err := drv.Reload(); err != nil {
			return fmt.Errorf("failed to reload %s: %w", drv.Name(), err)
		}
	}

	return outputResult(
		map[string]interface{}{
			"success": true,
			"site":    site,
			"enabled": true,
		},
		"Site %s enabled", site,
	)
}
