package driver

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	apperrors "github.com/sitectl/sitectl/internal/errors"
	"github.com/sitectl/sitectl/internal/executor"
)

// ApacheDriver implements the Driver interface for Apache.
// Apache site files carry the .conf suffix; site names do not.
type ApacheDriver struct {
	paths Paths
	exec  executor.CommandExecutor
}

// NewApacheWithPaths creates a new Apache driver with the given paths
func NewApacheWithPaths(available, enabled string) *ApacheDriver {
	return NewApacheWithExecutor(available, enabled, executor.NewSystemExecutor())
}

// NewApacheWithExecutor creates a new Apache driver with a custom executor (for testing)
func NewApacheWithExecutor(available, enabled string, exec executor.CommandExecutor) *ApacheDriver {
	return &ApacheDriver{
		paths: Paths{
			Available: available,
			Enabled:   enabled,
		},
		exec: exec,
	}
}

// Name returns the driver name
func (a *ApacheDriver) Name() string {
	return "apache"
}

// Paths returns the config paths
func (a *ApacheDriver) Paths() Paths {
	return a.paths
}

// fileName maps a site name to its on-disk file name
func (a *ApacheDriver) fileName(site string) string {
	if strings.HasSuffix(site, ".conf") {
		return site
	}
	return site + ".conf"
}

// AvailablePath returns the site's file path in sites-available
func (a *ApacheDriver) AvailablePath(site string) string {
	return filepath.Join(a.paths.Available, a.fileName(site))
}

// EnabledPath returns the site's entry path in sites-enabled
func (a *ApacheDriver) EnabledPath(site string) string {
	return filepath.Join(a.paths.Enabled, a.fileName(site))
}

// Exists reports whether the site file is present in sites-available
func (a *ApacheDriver) Exists(site string) (bool, error) {
	_, err := os.Lstat(a.AvailablePath(site))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check site: %w", err)
	}
	return true, nil
}

// IsEnabled reports whether the site entry is present in sites-enabled
func (a *ApacheDriver) IsEnabled(site string) (bool, error) {
	_, err := os.Lstat(a.EnabledPath(site))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check site status: %w", err)
	}
	return true, nil
}

// Enable activates a site by creating a symlink in sites-enabled
func (a *ApacheDriver) Enable(site string) error {
	if exists, err := a.Exists(site); err != nil {
		return err
	} else if !exists {
		return apperrors.NotFound(site)
	}

	if enabled, err := a.IsEnabled(site); err != nil {
		return err
	} else if enabled {
		return apperrors.AlreadyEnabled(site)
	}

	if err := os.Symlink(a.AvailablePath(site), a.EnabledPath(site)); err != nil {
		return fmt.Errorf("failed to enable site: %w", err)
	}

	return nil
}

// Disable deactivates a site by removing its symlink
func (a *ApacheDriver) Disable(site string) error {
	target := a.EnabledPath(site)

	info, err := os.Lstat(target)
	if os.IsNotExist(err) {
		return apperrors.NotFound(site)
	}
	if err != nil {
		return fmt.Errorf("failed to check site status: %w", err)
	}

	if info.Mode()&os.ModeSymlink == 0 {
		return fmt.Errorf("site %s is not a symlink, refusing to remove", site)
	}

	if err := os.Remove(target); err != nil {
		return fmt.Errorf("failed to disable site: %w", err)
	}

	return nil
}

// Create writes an empty site file into sites-available
func (a *ApacheDriver) Create(site string) error {
	f, err := os.OpenFile(a.AvailablePath(site), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return fmt.Errorf("failed to create site file: %w", err)
	}
	return f.Close()
}

// RemoveAvailable deletes the site's file from sites-available
func (a *ApacheDriver) RemoveAvailable(site string) error {
	if err := os.Remove(a.AvailablePath(site)); err != nil {
		if os.IsNotExist(err) {
			return apperrors.NotFound(site)
		}
		return fmt.Errorf("failed to remove site file: %w", err)
	}
	return nil
}

// List returns all site names from sites-available, suffix stripped
func (a *ApacheDriver) List() ([]string, error) {
	return a.stripSuffixes(listDir(a.paths.Available))
}

// ListEnabled returns all site names from sites-enabled, suffix stripped
func (a *ApacheDriver) ListEnabled() ([]string, error) {
	return a.stripSuffixes(listDir(a.paths.Enabled))
}

// stripSuffixes converts file names back into site names
func (a *ApacheDriver) stripSuffixes(names []string, err error) ([]string, error) {
	if err != nil {
		return nil, err
	}
	sites := make([]string, 0, len(names))
	for _, name := range names {
		sites = append(sites, strings.TrimSuffix(name, ".conf"))
	}
	return sites, nil
}

// Test validates the apache config syntax
func (a *ApacheDriver) Test() error {
	output, err := a.exec.Execute("apache2ctl", "configtest")
	if err != nil {
		// Fall back to apachectl on non-Debian systems
		output, err = a.exec.Execute("apachectl", "configtest")
		if err != nil {
			return fmt.Errorf("apache config test failed: %s", string(output))
		}
	}
	return nil
}

// Reload reloads apache to apply changes
func (a *ApacheDriver) Reload() error {
	output, err := a.exec.Execute("systemctl", "reload", "apache2")
	if err != nil {
		output, err = a.exec.Execute("apachectl", "graceful")
		if err != nil {
			return fmt.Errorf("failed to reload apache: %s", string(output))
		}
	}
	return nil
}
