package cli

import (
	"fmt"
	"unicode"

	"github.com/sitectl/sitectl/internal/output"
	"github.com/spf13/cobra"
)

var createCmd = &cobra.Command{
	Use:   "create <site>",
	Short: "Create a new site configuration file",
	Long: `Create an empty site configuration file in sites-available.

After creating the file, a single-keypress prompt offers to open it in
the configured editor. Creating a site that already exists is not an
error and changes nothing.

Examples:
  sitectl create example.com
  sitectl create example.com --editor nano`,
	Args: cobra.ExactArgs(1),
	RunE: runCreate,
}

func init() {
	createCmd.Flags().StringVar(&editorFlag, "editor", "", "Editor command to use")

	rootCmd.AddCommand(createCmd)
}

func runCreate(cmd *cobra.Command, args []string) error {
	site := args[0]

	if err := validateSiteName(site); err != nil {
		return err
	}

	cfg, drv, err := resolveDriver()
	if err != nil {
		return err
	}

	exists, err := drv.Exists(site)
	if err != nil {
		return err
	}
	if exists {
		return outputResult(
			map[string]interface{}{
				"success": true,
				"site":    site,
				"created": false,
			},
			"Site %s already exists at %s", site, drv.AvailablePath(site),
		)
	}

	if err := requireRoot(); err != nil {
		return err
	}

	if err := drv.Create(site); err != nil {
		return fmt.Errorf("failed to create site: %w", err)
	}
	output.Success("Created %s", drv.AvailablePath(site))

	if jsonOutput {
		// No interactive prompt in machine-output mode.
		return output.JSON(map[string]interface{}{
			"success": true,
			"site":    site,
			"created": true,
		})
	}

	output.Print("Open it in the editor now? [y/N] ")
	key, err := deps.KeyReader.ReadKey()
	output.Println("")
	if err != nil {
		// Treat unreadable input as a declined prompt.
		return nil
	}

	if unicode.ToLower(key) == 'y' {
		return openInEditor(cfg, drv, site)
	}

	return nil
}
