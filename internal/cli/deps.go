package cli

import (
	"os"

	"github.com/sitectl/sitectl/internal/config"
	"github.com/sitectl/sitectl/internal/driver"
	apperrors "github.com/sitectl/sitectl/internal/errors"
	"github.com/sitectl/sitectl/internal/executor"
	"github.com/sitectl/sitectl/internal/input"
	"github.com/sitectl/sitectl/internal/platform"
)

// Dependencies aggregates all CLI external dependencies for testability
type Dependencies struct {
	ConfigLoader  ConfigLoader
	PathResolver  PathResolver
	DriverFactory DriverFactory
	RootChecker   RootChecker
	StdinReader   StdinReader
	KeyReader     KeyReader
	Runner        Runner
	Exec          executor.CommandExecutor
}

// ConfigLoader handles configuration loading and saving
type ConfigLoader interface {
	Load() (*config.Config, error)
	Save(cfg *config.Config) error
}

// PathResolver discovers the sites-available/sites-enabled directories
// from the server's compiled-in configuration
type PathResolver interface {
	Resolve(server string) (platform.PathConfig, error)
}

// DriverFactory creates driver instances
type DriverFactory interface {
	Create(name string, paths driver.Paths) (driver.Driver, error)
}

// RootChecker checks root privileges
type RootChecker interface {
	RequireRoot() error
}

// StdinReader reads line-oriented input from stdin
type StdinReader interface {
	ReadString(delim byte) (string, error)
}

// KeyReader reads a single keystroke for quick confirmations
type KeyReader interface {
	ReadKey() (rune, error)
}

// Runner launches foreground programs such as the editor
type Runner interface {
	RunInteractive(name string, args ...string) error
	LookPath(file string) (string, error)
}

// Package-level dependencies (can be overridden for testing)
var deps = &Dependencies{
	ConfigLoader:  &realConfigLoader{},
	PathResolver:  &realPathResolver{},
	DriverFactory: &realDriverFactory{},
	RootChecker:   &realRootChecker{},
	StdinReader:   &realStdinReader{},
	KeyReader:     &realKeyReader{},
	Runner:        &realRunner{},
	Exec:          executor.NewSystemExecutor(),
}

// SetDeps replaces the package dependencies (for testing)
func SetDeps(d *Dependencies) {
	deps = d
}

// GetDeps returns the current dependencies (for testing)
func GetDeps() *Dependencies {
	return deps
}

// Real implementations that delegate to the underlying packages

type realConfigLoader struct{}

func (r *realConfigLoader) Load() (*config.Config, error) {
	return config.Load()
}

func (r *realConfigLoader) Save(cfg *config.Config) error {
	return cfg.Save()
}

type realPathResolver struct{}

func (r *realPathResolver) Resolve(server string) (platform.PathConfig, error) {
	return platform.NewResolver(executor.NewSystemExecutor()).Resolve(server)
}

type realDriverFactory struct{}

func (r *realDriverFactory) Create(name string, paths driver.Paths) (driver.Driver, error) {
	return driver.New(name, paths, executor.NewSystemExecutor())
}

type realRootChecker struct{}

func (r *realRootChecker) RequireRoot() error {
	if os.Geteuid() != 0 {
		return apperrors.ErrRootRequired
	}
	return nil
}

type realStdinReader struct {
	reader *input.StdinReader
}

func (r *realStdinReader) ReadString(delim byte) (string, error) {
	if r.reader == nil {
		r.reader = input.NewStdinReader()
	}
	return r.reader.ReadString(delim)
}

type realKeyReader struct {
	reader *input.TerminalKeyReader
}

func (r *realKeyReader) ReadKey() (rune, error) {
	if r.reader == nil {
		r.reader = input.NewTerminalKeyReader()
	}
	return r.reader.ReadKey()
}

type realRunner struct {
	exec *executor.SystemExecutor
}

func (r *realRunner) RunInteractive(name string, args ...string) error {
	if r.exec == nil {
		r.exec = executor.NewSystemExecutor()
	}
	return r.exec.ExecuteInteractive(name, args...)
}

func (r *realRunner) LookPath(file string) (string, error) {
	if r.exec == nil {
		r.exec = executor.NewSystemExecutor()
	}
	return r.exec.LookPath(file)
}
