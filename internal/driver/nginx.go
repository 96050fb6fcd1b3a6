package driver

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	apperrors "github.com/sitectl/sitectl/internal/errors"
	"github.com/sitectl/sitectl/internal/executor"
)

// NginxDriver implements the Driver interface for Nginx
type NginxDriver struct {
	paths Paths
	exec  executor.CommandExecutor
}

// NewNginxWithPaths creates a new Nginx driver with the given paths
func NewNginxWithPaths(available, enabled string) *NginxDriver {
	return NewNginxWithExecutor(available, enabled, executor.NewSystemExecutor())
}

// NewNginxWithExecutor creates a new Nginx driver with a custom executor (for testing)
func NewNginxWithExecutor(available, enabled string, exec executor.CommandExecutor) *NginxDriver {
	return &NginxDriver{
		paths: Paths{
			Available: available,
			Enabled:   enabled,
		},
		exec: exec,
	}
}

// Name returns the driver name
func (n *NginxDriver) Name() string {
	return "nginx"
}

// Paths returns the config paths
func (n *NginxDriver) Paths() Paths {
	return n.paths
}

// AvailablePath returns the site's file path in sites-available
func (n *NginxDriver) AvailablePath(site string) string {
	return filepath.Join(n.paths.Available, site)
}

// EnabledPath returns the site's entry path in sites-enabled
func (n *NginxDriver) EnabledPath(site string) string {
	return filepath.Join(n.paths.Enabled, site)
}

// Exists reports whether the site file is present in sites-available.
// A symlink counts, even a dangling one.
func (n *NginxDriver) Exists(site string) (bool, error) {
	_, err := os.Lstat(n.AvailablePath(site))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check site: %w", err)
	}
	return true, nil
}

// IsEnabled reports whether the site entry is present in sites-enabled,
// valid link or not.
func (n *NginxDriver) IsEnabled(site string) (bool, error) {
	_, err := os.Lstat(n.EnabledPath(site))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check site status: %w", err)
	}
	return true, nil
}

// Enable activates a site by creating a symlink in sites-enabled
func (n *NginxDriver) Enable(site string) error {
	source := n.AvailablePath(site)
	target := n.EnabledPath(site)

	if exists, err := n.Exists(site); err != nil {
		return err
	} else if !exists {
		return apperrors.NotFound(site)
	}

	if enabled, err := n.IsEnabled(site); err != nil {
		return err
	} else if enabled {
		return apperrors.AlreadyEnabled(site)
	}

	if err := os.Symlink(source, target); err != nil {
		return fmt.Errorf("failed to enable site: %w", err)
	}

	return nil
}

// Disable deactivates a site by removing its symlink
func (n *NginxDriver) Disable(site string) error {
	target := n.EnabledPath(site)

	info, err := os.Lstat(target)
	if os.IsNotExist(err) {
		return apperrors.NotFound(site)
	}
	if err != nil {
		return fmt.Errorf("failed to check site status: %w", err)
	}

	// Refuse to remove anything that is not a symlink
	if info.Mode()&os.ModeSymlink == 0 {
		return fmt.Errorf("site %s is not a symlink, refusing to remove", site)
	}

	if err := os.Remove(target); err != nil {
		return fmt.Errorf("failed to disable site: %w", err)
	}

	return nil
}

// Create writes an empty site file into sites-available
func (n *NginxDriver) Create(site string) error {
	f, err := os.OpenFile(n.AvailablePath(site), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return fmt.Errorf("failed to create site file: %w", err)
	}
	return f.Close()
}

// RemoveAvailable deletes the site's file from sites-available
func (n *NginxDriver) RemoveAvailable(site string) error {
	if err := os.Remove(n.AvailablePath(site)); err != nil {
		if os.IsNotExist(err) {
			return apperrors.NotFound(site)
		}
		return fmt.Errorf("failed to remove site file: %w", err)
	}
	return nil
}

// List returns all site names from sites-available
func (n *NginxDriver) List() ([]string, error) {
	return listDir(n.paths.Available)
}

// ListEnabled returns all site names from sites-enabled
func (n *NginxDriver) ListEnabled() ([]string, error) {
	return listDir(n.paths.Enabled)
}

// listDir enumerates non-hidden, non-directory entries in dir.
func listDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", dir, err)
	}

	sites := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() && !strings.HasPrefix(entry.Name(), ".") {
			sites = append(sites, entry.Name())
		}
	}

	return sites, nil
}

// Test validates the nginx config syntax
func (n *NginxDriver) Test() error {
	output, err := n.exec.Execute("nginx", "-t")
	if err != nil {
		return fmt.Errorf("nginx config test failed: %s", string(output))
	}
	return nil
}

// Reload reloads nginx to apply changes
func (n *NginxDriver) Reload() error {
	output, err := n.exec.Execute("systemctl", "reload", "nginx")
	if err != nil {
		// Try nginx -s reload as fallback
		output, err = n.exec.Execute("nginx", "-s", "reload")
		if err != nil {
			return fmt.Errorf("failed to reload nginx: %s", string(output))
		}
	}
	return nil
}
