package cli

import (
	"sort"

	"github.com/sitectl/sitectl/internal/output"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List available and enabled sites",
	Long: `List all sites, partitioned into those currently enabled and those
only present in sites-available.

Examples:
  sitectl list
  sitectl ls
  sitectl list --json`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

// siteListing is the JSON shape of the list output
type siteListing struct {
	Enabled   []string `json:"enabled"`
	Available []string `json:"available"`
}

func runList(cmd *cobra.Command, args []string) error {
	_, drv, err := resolveDriver()
	if err != nil {
		return err
	}

	enabled, err := drv.ListEnabled()
	if err != nil {
		return err
	}

	available, err := drv.List()
	if err != nil {
		return err
	}

	// Partition: anything present in enabled is listed there only.
	enabledSet := make(map[string]bool, len(enabled))
	for _, site := range enabled {
		enabledSet[site] = true
	}

	notEnabled := make([]string, 0, len(available))
	for _, site := range available {
		if !enabledSet[site] {
			notEnabled = append(notEnabled, site)
		}
	}

	sort.Strings(enabled)
	sort.Strings(notEnabled)

	if jsonOutput {
		return output.JSON(siteListing{
			Enabled:   enabled,
			Available: notEnabled,
		})
	}

	output.Header("Enabled:")
	if len(enabled) == 0 {
		output.Item("(none)")
	}
	for _, site := range enabled {
		output.Item(site)
	}

	output.Header("Available (not enabled):")
	if len(notEnabled) == 0 {
		output.Item("(none)")
	}
	for _, site := range notEnabled {
		output.Item(site)
	}

	return nil
}
