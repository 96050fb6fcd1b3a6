//go:build integration

package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sitectl/sitectl/internal/driver"
	"github.com/sitectl/sitectl/internal/executor"
)

// testDirs holds paths to test directories, created fresh for each test
type testDirs struct {
	sitesAvailable string
	sitesEnabled   string
}

// setupTestDirs creates temporary directories for testing
func setupTestDirs(t *testing.T) *testDirs {
	t.Helper()
	baseDir := t.TempDir() // Automatically cleaned up after test

	dirs := &testDirs{
		sitesAvailable: filepath.Join(baseDir, "sites-available"),
		sitesEnabled:   filepath.Join(baseDir, "sites-enabled"),
	}

	if err := os.MkdirAll(dirs.sitesAvailable, 0755); err != nil {
		t.Fatalf("Failed to create sites-available directory: %v", err)
	}
	if err := os.MkdirAll(dirs.sitesEnabled, 0755); err != nil {
		t.Fatalf("Failed to create sites-enabled directory: %v", err)
	}

	return dirs
}

func TestNginxDriverIntegration(t *testing.T) {
	dirs := setupTestDirs(t)

	exec := &executor.MockExecutor{}
	drv := driver.NewNginxWithExecutor(dirs.sitesAvailable, dirs.sitesEnabled, exec)

	t.Run("Create site", func(t *testing.T) {
		if err := drv.Create("test.local"); err != nil {
			t.Fatalf("Failed to create site: %v", err)
		}

		configPath := filepath.Join(dirs.sitesAvailable, "test.local")
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			t.Error("Site file was not created")
		}

		exists, err := drv.Exists("test.local")
		if err != nil {
			t.Fatalf("Exists() error: %v", err)
		}
		if !exists {
			t.Error("Exists() = false for created site")
		}
	})

	t.Run("Enable site", func(t *testing.T) {
		if err := drv.Enable("test.local"); err != nil {
			t.Fatalf("Failed to enable site: %v", err)
		}

		linkPath := filepath.Join(dirs.sitesEnabled, "test.local")
		info, err := os.Lstat(linkPath)
		if err != nil {
			t.Fatalf("Symlink was not created: %v", err)
		}
		if info.Mode()&os.ModeSymlink == 0 {
			t.Error("Enabled entry is not a symlink")
		}

		target, err := os.Readlink(linkPath)
		if err != nil {
			t.Fatalf("Failed to read symlink: %v", err)
		}
		if target != filepath.Join(dirs.sitesAvailable, "test.local") {
			t.Errorf("Symlink target = %q, want sites-available path", target)
		}

		enabled, err := drv.IsEnabled("test.local")
		if err != nil {
			t.Fatalf("IsEnabled() error: %v", err)
		}
		if !enabled {
			t.Error("IsEnabled() = false for enabled site")
		}
	})

	t.Run("Enable already-enabled site fails", func(t *testing.T) {
		if err := drv.Enable("test.local"); err == nil {
			t.Error("Expected error enabling an already-enabled site")
		}
	})

	t.Run("List sites", func(t *testing.T) {
		available, err := drv.List()
		if err != nil {
			t.Fatalf("List() error: %v", err)
		}
		if len(available) != 1 || available[0] != "test.local" {
			t.Errorf("List() = %v, want [test.local]", available)
		}

		enabled, err := drv.ListEnabled()
		if err != nil {
			t.Fatalf("ListEnabled() error: %v", err)
		}
		if len(enabled) != 1 || enabled[0] != "test.local" {
			t.Errorf("ListEnabled() = %v, want [test.local]", enabled)
		}
	})

	t.Run("Disable site", func(t *testing.T) {
		if err := drv.Disable("test.local"); err != nil {
			t.Fatalf("Failed to disable site: %v", err)
		}

		linkPath := filepath.Join(dirs.sitesEnabled, "test.local")
		if _, err := os.Lstat(linkPath); !os.IsNotExist(err) {
			t.Error("Symlink still exists after disable")
		}

		// Available file must survive a disable
		if _, err := os.Stat(filepath.Join(dirs.sitesAvailable, "test.local")); err != nil {
			t.Errorf("Available file was removed by disable: %v", err)
		}
	})

	t.Run("Disable dangling symlink", func(t *testing.T) {
		linkPath := filepath.Join(dirs.sitesEnabled, "gone.local")
		if err := os.Symlink(filepath.Join(dirs.sitesAvailable, "gone.local"), linkPath); err != nil {
			t.Fatalf("Failed to create dangling symlink: %v", err)
		}

		if err := drv.Disable("gone.local"); err != nil {
			t.Fatalf("Failed to disable dangling symlink: %v", err)
		}
		if _, err := os.Lstat(linkPath); !os.IsNotExist(err) {
			t.Error("Dangling symlink still exists after disable")
		}
	})

	t.Run("Remove site", func(t *testing.T) {
		if err := drv.RemoveAvailable("test.local"); err != nil {
			t.Fatalf("Failed to remove site: %v", err)
		}
		if _, err := os.Stat(filepath.Join(dirs.sitesAvailable, "test.local")); !os.IsNotExist(err) {
			t.Error("Available file still exists after remove")
		}
	})
}

func TestApacheDriverIntegration(t *testing.T) {
	dirs := setupTestDirs(t)

	exec := &executor.MockExecutor{}
	drv := driver.NewApacheWithExecutor(dirs.sitesAvailable, dirs.sitesEnabled, exec)

	t.Run("Site names map to conf files", func(t *testing.T) {
		if err := drv.Create("blog.example.org"); err != nil {
			t.Fatalf("Failed to create site: %v", err)
		}

		confPath := filepath.Join(dirs.sitesAvailable, "blog.example.org.conf")
		if _, err := os.Stat(confPath); os.IsNotExist(err) {
			t.Error("Site .conf file was not created")
		}

		if err := drv.Enable("blog.example.org"); err != nil {
			t.Fatalf("Failed to enable site: %v", err)
		}
		linkPath := filepath.Join(dirs.sitesEnabled, "blog.example.org.conf")
		if _, err := os.Lstat(linkPath); err != nil {
			t.Fatalf("Symlink was not created: %v", err)
		}
	})

	t.Run("List strips conf suffix", func(t *testing.T) {
		available, err := drv.List()
		if err != nil {
			t.Fatalf("List() error: %v", err)
		}
		if len(available) != 1 || available[0] != "blog.example.org" {
			t.Errorf("List() = %v, want [blog.example.org]", available)
		}
	})

	t.Run("Full lifecycle", func(t *testing.T) {
		if err := drv.Disable("blog.example.org"); err != nil {
			t.Fatalf("Failed to disable site: %v", err)
		}
		if err := drv.RemoveAvailable("blog.example.org"); err != nil {
			t.Fatalf("Failed to remove site: %v", err)
		}

		available, err := drv.List()
		if err != nil {
			t.Fatalf("List() error: %v", err)
		}
		if len(available) != 0 {
			t.Errorf("List() = %v, want empty", available)
		}
	})
}
