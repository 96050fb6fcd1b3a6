// Package platform resolves the sites-available and sites-enabled
// directories from the installed web server's compiled-in configuration.
//
// Rather than assuming distribution defaults, the resolver asks the
// server binary itself: nginx reports its configure arguments via
// `nginx -V` (including --conf-path), and apache reports HTTPD_ROOT and
// SERVER_CONFIG_FILE via `apache2ctl -V`. The directory holding the
// main configuration file is taken as the configuration root, and the
// sites-available/sites-enabled siblings are located underneath it.
package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/sitectl/sitectl/internal/errors"
	"github.com/sitectl/sitectl/internal/executor"
	"github.com/sitectl/sitectl/internal/logger"
)

// PathConfig contains the resolved directories for a web server.
type PathConfig struct {
	Available string
	Enabled   string
}

// Resolver discovers configuration paths by querying the server binary.
type Resolver struct {
	exec executor.CommandExecutor
}

// NewResolver creates a Resolver using the given command executor.
func NewResolver(exec executor.CommandExecutor) *Resolver {
	return &Resolver{exec: exec}
}

var (
	nginxConfPathRe  = regexp.MustCompile(`--conf-path=(\S+)`)
	apacheRootRe     = regexp.MustCompile(`HTTPD_ROOT="([^"]+)"`)
	apacheConfFileRe = regexp.MustCompile(`SERVER_CONFIG_FILE="([^"]+)"`)
)

// apacheBinaries are tried in order; Debian installs apache2ctl,
// other distributions apachectl.
var apacheBinaries = []string{"apache2ctl", "apachectl"}

// Resolve returns the sites-available/sites-enabled paths for the named
// server (nginx or apache).
func (r *Resolver) Resolve(server string) (PathConfig, error) {
	switch server {
	case "nginx":
		return r.resolveNginx()
	case "apache":
		return r.resolveApache()
	default:
		return PathConfig{}, errors.Wrap(errors.ErrCodeServer,
			fmt.Sprintf("unsupported server %q (available: nginx, apache)", server), nil)
	}
}

// resolveNginx parses --conf-path from the nginx build configuration.
func (r *Resolver) resolveNginx() (PathConfig, error) {
	if _, err := r.exec.LookPath("nginx"); err != nil {
		return PathConfig{}, errors.Wrap(errors.ErrCodeServer, "nginx binary not found in PATH", err)
	}

	// nginx -V prints the configure arguments to stderr.
	out, err := r.exec.Execute("nginx", "-V")
	if err != nil {
		return PathConfig{}, errors.Wrap(errors.ErrCodeServer, "failed to query nginx build configuration", err)
	}

	matches := nginxConfPathRe.FindSubmatch(out)
	if matches == nil {
		return PathConfig{}, errors.Wrap(errors.ErrCodeServer,
			"could not find --conf-path in nginx -V output", nil)
	}

	confPath := string(matches[1])
	return r.siblingDirs(filepath.Dir(confPath))
}

// resolveApache parses HTTPD_ROOT and SERVER_CONFIG_FILE from the
// apache build configuration.
func (r *Resolver) resolveApache() (PathConfig, error) {
	var binary string
	for _, b := range apacheBinaries {
		if _, err := r.exec.LookPath(b); err == nil {
			binary = b
			break
		}
	}
	if binary == "" {
		return PathConfig{}, errors.Wrap(errors.ErrCodeServer,
			fmt.Sprintf("apache control binary not found in PATH (tried %s)", strings.Join(apacheBinaries, ", ")), nil)
	}

	out, err := r.exec.Execute(binary, "-V")
	if err != nil {
		return PathConfig{}, errors.Wrap(errors.ErrCodeServer, "failed to query apache build configuration", err)
	}

	rootMatch := apacheRootRe.FindSubmatch(out)
	confMatch := apacheConfFileRe.FindSubmatch(out)
	if rootMatch == nil || confMatch == nil {
		return PathConfig{}, errors.Wrap(errors.ErrCodeServer,
			fmt.Sprintf("could not find HTTPD_ROOT/SERVER_CONFIG_FILE in %s -V output", binary), nil)
	}

	confPath := string(confMatch[1])
	if !filepath.IsAbs(confPath) {
		confPath = filepath.Join(string(rootMatch[1]), confPath)
	}
	return r.siblingDirs(filepath.Dir(confPath))
}

// siblingDirs locates sites-available and sites-enabled under root and
// verifies both exist.
func (r *Resolver) siblingDirs(root string) (PathConfig, error) {
	paths := PathConfig{
		Available: filepath.Join(root, "sites-available"),
		Enabled:   filepath.Join(root, "sites-enabled"),
	}

	for _, dir := range []string{paths.Available, paths.Enabled} {
		info, err := os.Stat(dir)
		if err != nil {
			return PathConfig{}, errors.Wrap(errors.ErrCodeServer,
				fmt.Sprintf("directory %s not found", dir), err)
		}
		if !info.IsDir() {
			return PathConfig{}, errors.Wrap(errors.ErrCodeServer,
				fmt.Sprintf("%s is not a directory", dir), nil)
		}
	}

	logger.DebugFields("paths resolved", map[string]interface{}{
		"available": paths.Available,
		"enabled":   paths.Enabled,
	})

	return paths, nil
}
