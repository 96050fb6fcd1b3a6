package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/sitectl/sitectl/internal/config"
	"github.com/sitectl/sitectl/internal/driver"
	apperrors "github.com/sitectl/sitectl/internal/errors"
	"github.com/sitectl/sitectl/internal/logger"
	"github.com/sitectl/sitectl/internal/output"
)

// validateSiteName checks that a site name is usable as a file name
// in the configuration directories.
func validateSiteName(name string) error {
	if strings.TrimSpace(name) == "" {
		return apperrors.Validation("site name cannot be empty")
	}
	if strings.ContainsRune(name, os.PathSeparator) {
		return apperrors.Validation("site name cannot contain a path separator")
	}
	if strings.HasPrefix(name, ".") {
		return apperrors.Validation("site name cannot start with a dot")
	}
	return nil
}

// resolveDriver loads config, resolves the server's configuration
// directories and returns the matching driver.
func resolveDriver() (*config.Config, driver.Driver, error) {
	cfg, err := deps.ConfigLoader.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	server := cfg.Server
	if serverFlag != "" {
		server = serverFlag
	}

	paths, err := deps.PathResolver.Resolve(server)
	if err != nil {
		return nil, nil, err
	}

	drv, err := deps.DriverFactory.Create(server, driver.Paths{
		Available: paths.Available,
		Enabled:   paths.Enabled,
	})
	if err != nil {
		return nil, nil, err
	}

	logger.Debug("using %s driver", drv.Name())
	return cfg, drv, nil
}

// requireRoot checks the process is running with elevated privileges.
func requireRoot() error {
	return deps.RootChecker.RequireRoot()
}

// getEditor resolves the editor to use: --editor flag, then $EDITOR,
// then the configured default.
func getEditor(cfg *config.Config) string {
	if editorFlag != "" {
		return editorFlag
	}
	if env := os.Getenv("EDITOR"); env != "" {
		return env
	}
	if cfg.Editor != "" {
		return cfg.Editor
	}
	return "vi"
}

// openInEditor launches the resolved editor on the site's available
// file as a foreground process.
func openInEditor(cfg *config.Config, drv driver.Driver, site string) error {
	editor := getEditor(cfg)

	editorPath, err := deps.Runner.LookPath(editor)
	if err != nil {
		return fmt.Errorf("editor not found: %s", editor)
	}

	path := drv.AvailablePath(site)
	output.Info("Opening %s with %s...", path, editor)

	if err := deps.Runner.RunInteractive(editorPath, path); err != nil {
		return fmt.Errorf("editor exited with error: %w", err)
	}

	return nil
}

// outputResult handles JSON or human-readable output
func outputResult(data interface{}, successMsg string, args ...interface{}) error {
	if jsonOutput {
		return output.JSON(data)
	}
	output.Success(successMsg, args...)
	return nil
}

// shouldReload reports whether the server should be reloaded after a
// change, honoring both the config default and the --no-reload flag.
func shouldReload(cfg *config.Config) bool {
	return cfg.Reload && !noReload
}
