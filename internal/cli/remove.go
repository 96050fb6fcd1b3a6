package cli

import (
	"fmt"
	"strings"

	apperrors "github.com/sitectl/sitectl/internal/errors"
	"github.com/sitectl/sitectl/internal/output"
	"github.com/spf13/cobra"
)

var (
	forceRemove bool
)

var removeCmd = &cobra.Command{
	Use:     "remove <site>",
	Aliases: []string{"rm", "delete"},
	Short:   "Remove a site configuration",
	Long: `Remove a site's sites-enabled entry and sites-available file.

Both locations are handled independently, so a dangling enabled link
can be removed even when the available file is already gone. The
operator must type the literal word "yes" to confirm; anything else
cancels with exit code 2.

Examples:
  sitectl remove example.com
  sitectl rm example.com --force`,
	Args: cobra.ExactArgs(1),
	RunE: runRemove,
}

func init() {
	removeCmd.Flags().BoolVarP(&forceRemove, "force", "f", false, "Force removal without confirmation")

	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	site := args[0]

	if err := validateSiteName(site); err != nil {
		return err
	}

	_, drv, err := resolveDriver()
	if err != nil {
		return err
	}

	exists, err := drv.Exists(site)
	if err != nil {
		return err
	}
	enabled, err := drv.IsEnabled(site)
	if err != nil {
		return err
	}
	if !exists && !enabled {
		return apperrors.NotFound(site)
	}

	if err := requireRoot(); err != nil {
		return err
	}

	if !forceRemove {
		output.Println("About to remove site %s", site)
		output.Print("Type \"yes\" to confirm: ")
		answer, _ := deps.StdinReader.ReadString('\n')
		if strings.TrimSpace(answer) != "yes" {
			output.Info("Removal cancelled")
			return apperrors.Cancelled(site)
		}
	}

	removed := map[string]interface{}{
		"success": true,
		"site":    site,
	}

	if enabled {
		if err := drv.Disable(site); err != nil {
			return fmt.Errorf("failed to remove enabled entry: %w", err)
		}
		removed["enabled_removed"] = true
		if !jsonOutput {
			output.Success("Removed enabled entry %s", drv.EnabledPath(site))
		}
	}

	if exists {
		if err := drv.RemoveAvailable(site); err != nil {
			return fmt.Errorf("failed to remove site file: %w", err)
		}
		removed["available_removed"] = true
		if !jsonOutput {
			output.Success("Removed site file %s", drv.AvailablePath(site))
		}
	}

	if jsonOutput {
		return output.JSON(removed)
	}
	return nil
}
