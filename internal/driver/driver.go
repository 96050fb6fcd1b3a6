package driver

import (
	"fmt"
	"sort"

	"github.com/sitectl/sitectl/internal/executor"
)

// Driver is the interface that all web server drivers must implement.
// All site state lives on the filesystem; drivers hold no state beyond
// their resolved paths.
type Driver interface {
	// Name returns the driver name (nginx, apache)
	Name() string

	// Paths returns the driver's config directory paths
	Paths() Paths

	// AvailablePath returns the full path of a site's file in sites-available
	AvailablePath(site string) string

	// EnabledPath returns the full path of a site's entry in sites-enabled
	EnabledPath(site string) string

	// Exists reports whether a site file is present in sites-available
	Exists(site string) (bool, error)

	// IsEnabled reports whether a site entry is present in sites-enabled,
	// whether or not it is a valid link
	IsEnabled(site string) (bool, error)

	// Enable activates a site by symlinking it into sites-enabled
	Enable(site string) error

	// Disable deactivates a site by removing its sites-enabled entry
	Disable(site string) error

	// Create writes an empty site file into sites-available
	Create(site string) error

	// RemoveAvailable deletes a site's file from sites-available
	RemoveAvailable(site string) error

	// List returns all site names found in sites-available
	List() ([]string, error)

	// ListEnabled returns all site names found in sites-enabled
	ListEnabled() ([]string, error)

	// Test validates the web server config syntax
	Test() error

	// Reload reloads the web server
	Reload() error
}

// Paths contains the web server config directory paths
type Paths struct {
	Available string // sites-available directory
	Enabled   string // sites-enabled directory
}

// New creates a driver for the named server with the given paths.
func New(name string, paths Paths, exec executor.CommandExecutor) (Driver, error) {
	switch name {
	case "nginx":
		return NewNginxWithExecutor(paths.Available, paths.Enabled, exec), nil
	case "apache":
		return NewApacheWithExecutor(paths.Available, paths.Enabled, exec), nil
	default:
		return nil, fmt.Errorf("unknown server %q (available: %s)", name, "nginx, apache")
	}
}

// Supported returns the names of all supported servers.
func Supported() []string {
	names := []string{"nginx", "apache"}
	sort.Strings(names)
	return names
}
