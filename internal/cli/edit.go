package cli

import (
	apperrors "github.com/sitectl/sitectl/internal/errors"
	"github.com/sitectl/sitectl/internal/output"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit <site>",
	Short: "Edit a site configuration file",
	Long: `Open the site's configuration file in an editor.

The editor is taken from --editor, then $EDITOR, then the configured
default (vi).

Examples:
  sitectl edit example.com
  sitectl edit example.com --editor nano
  EDITOR=nano sitectl edit example.com`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	editCmd.Flags().StringVar(&editorFlag, "editor", "", "Editor command to use")

	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
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
	if !exists {
		return apperrors.NotFound(site)
	}

	if err := openInEditor(cfg, drv, site); err != nil {
		return err
	}

	output.Success("Editor closed")
	output.Info("Reload the web server to apply changes")

	return nil
}
