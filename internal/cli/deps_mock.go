package cli

import (
	"github.com/sitectl/sitectl/internal/config"
	"github.com/sitectl/sitectl/internal/driver"
	apperrors "github.com/sitectl/sitectl/internal/errors"
	"github.com/sitectl/sitectl/internal/executor"
	"github.com/sitectl/sitectl/internal/input"
	"github.com/sitectl/sitectl/internal/platform"
)

// MockConfigLoader is a test double for ConfigLoader
type MockConfigLoader struct {
	Cfg       *config.Config
	LoadErr   error
	SaveErr   error
	SaveCalls int
}

func (m *MockConfigLoader) Load() (*config.Config, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if m.Cfg == nil {
		m.Cfg = config.New()
	}
	return m.Cfg, nil
}

func (m *MockConfigLoader) Save(cfg *config.Config) error {
	m.SaveCalls++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Cfg = cfg
	return nil
}

// MockPathResolver is a test double for PathResolver
type MockPathResolver struct {
	Paths platform.PathConfig
	Err   error
}

func (m *MockPathResolver) Resolve(server string) (platform.PathConfig, error) {
	if m.Err != nil {
		return platform.PathConfig{}, m.Err
	}
	if m.Paths.Available != "" {
		return m.Paths, nil
	}
	return platform.PathConfig{
		Available: "/etc/nginx/sites-available",
		Enabled:   "/etc/nginx/sites-enabled",
	}, nil
}

// MockDriverFactory is a test double for DriverFactory
type MockDriverFactory struct {
	Driver driver.Driver
	Err    error
}

func (m *MockDriverFactory) Create(name string, paths driver.Paths) (driver.Driver, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Driver != nil {
		return m.Driver, nil
	}
	return driver.New(name, paths, &executor.MockExecutor{})
}

// MockRootChecker is a test double for RootChecker
type MockRootChecker struct {
	IsRoot bool
}

func (m *MockRootChecker) RequireRoot() error {
	if !m.IsRoot {
		return apperrors.ErrRootRequired
	}
	return nil
}

// MockRunner is a test double for Runner
type MockRunner struct {
	RunErr       error
	LookPathErr  error
	RunCalls     []executor.CommandCall
	LookPathArgs []string
}

func (m *MockRunner) RunInteractive(name string, args ...string) error {
	m.RunCalls = append(m.RunCalls, executor.CommandCall{Name: name, Args: args})
	return m.RunErr
}

func (m *MockRunner) LookPath(file string) (string, error) {
	m.LookPathArgs = append(m.LookPathArgs, file)
	if m.LookPathErr != nil {
		return "", m.LookPathErr
	}
	return "/usr/bin/" + file, nil
}

// MockDepsBuilder builds a Dependencies value for tests
type MockDepsBuilder struct {
	deps *Dependencies
}

// NewMockDeps creates a builder with safe defaults: default config,
// default paths, a recording mock driver, root access, and empty input.
func NewMockDeps() *MockDepsBuilder {
	return &MockDepsBuilder{
		deps: &Dependencies{
			ConfigLoader:  &MockConfigLoader{},
			PathResolver:  &MockPathResolver{},
			DriverFactory: &MockDriverFactory{Driver: driver.NewMockDriver("nginx", "/etc/nginx/sites-available", "/etc/nginx/sites-enabled")},
			RootChecker:   &MockRootChecker{IsRoot: true},
			StdinReader:   input.NewStringReader(),
			KeyReader:     input.NewStringKeyReader(),
			Runner:        &MockRunner{},
			Exec:          &executor.MockExecutor{},
		},
	}
}

// WithConfig sets the config returned by the loader
func (b *MockDepsBuilder) WithConfig(cfg *config.Config) *MockDepsBuilder {
	b.deps.ConfigLoader = &MockConfigLoader{Cfg: cfg}
	return b
}

// WithConfigError makes config loading fail
func (b *MockDepsBuilder) WithConfigError(err error) *MockDepsBuilder {
	b.deps.ConfigLoader = &MockConfigLoader{LoadErr: err}
	return b
}

// WithDriver sets the driver returned by the factory
func (b *MockDepsBuilder) WithDriver(drv driver.Driver) *MockDepsBuilder {
	b.deps.DriverFactory = &MockDriverFactory{Driver: drv}
	return b
}

// WithPaths sets the resolved directory paths
func (b *MockDepsBuilder) WithPaths(available, enabled string) *MockDepsBuilder {
	b.deps.PathResolver = &MockPathResolver{
		Paths: platform.PathConfig{Available: available, Enabled: enabled},
	}
	return b
}

// WithPathsError makes path resolution fail
func (b *MockDepsBuilder) WithPathsError(err error) *MockDepsBuilder {
	b.deps.PathResolver = &MockPathResolver{Err: err}
	return b
}

// WithRootAccess controls whether the root check succeeds
func (b *MockDepsBuilder) WithRootAccess(isRoot bool) *MockDepsBuilder {
	b.deps.RootChecker = &MockRootChecker{IsRoot: isRoot}
	return b
}

// WithStdin supplies canned line input (each line including "\n")
func (b *MockDepsBuilder) WithStdin(lines ...string) *MockDepsBuilder {
	b.deps.StdinReader = input.NewStringReader(lines...)
	return b
}

// WithKeys supplies canned single keystrokes
func (b *MockDepsBuilder) WithKeys(keys ...rune) *MockDepsBuilder {
	b.deps.KeyReader = input.NewStringKeyReader(keys...)
	return b
}

// WithRunner sets the interactive command runner
func (b *MockDepsBuilder) WithRunner(r Runner) *MockDepsBuilder {
	b.deps.Runner = r
	return b
}

// WithExec sets the command executor
func (b *MockDepsBuilder) WithExec(e executor.CommandExecutor) *MockDepsBuilder {
	b.deps.Exec = e
	return b
}

// Build returns the assembled Dependencies
func (b *MockDepsBuilder) Build() *Dependencies {
	return b.deps
}
