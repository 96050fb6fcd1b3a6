package driver

import "path/filepath"

// MockDriver is a test double for Driver interface
type MockDriver struct {
	name  string
	paths Paths

	// Function mocks - set these to customize behavior
	ExistsFunc          func(site string) (bool, error)
	IsEnabledFunc       func(site string) (bool, error)
	EnableFunc          func(site string) error
	DisableFunc         func(site string) error
	CreateFunc          func(site string) error
	RemoveAvailableFunc func(site string) error
	ListFunc            func() ([]string, error)
	ListEnabledFunc     func() ([]string, error)
	TestFunc            func() error
	ReloadFunc          func() error

	// Call tracking - check these to verify interactions
	ExistsCalls          []string
	IsEnabledCalls       []string
	EnableCalls          []string
	DisableCalls         []string
	CreateCalls          []string
	RemoveAvailableCalls []string
	ListCalls            int
	ListEnabledCalls     int
	TestCalls            int
	ReloadCalls          int
}

// NewMockDriver creates a new MockDriver with default no-op implementations
func NewMockDriver(name, availableDir, enabledDir string) *MockDriver {
	return &MockDriver{
		name: name,
		paths: Paths{
			Available: availableDir,
			Enabled:   enabledDir,
		},
	}
}

// Name returns the driver name
func (m *MockDriver) Name() string {
	return m.name
}

// Paths returns the configured paths
func (m *MockDriver) Paths() Paths {
	return m.paths
}

// AvailablePath returns the site's path under the available directory
func (m *MockDriver) AvailablePath(site string) string {
	return filepath.Join(m.paths.Available, site)
}

// EnabledPath returns the site's path under the enabled directory
func (m *MockDriver) EnabledPath(site string) string {
	return filepath.Join(m.paths.Enabled, site)
}

// Exists records the call and invokes the mock function if set
func (m *MockDriver) Exists(site string) (bool, error) {
	m.ExistsCalls = append(m.ExistsCalls, site)
	if m.ExistsFunc != nil {
		return m.ExistsFunc(site)
	}
	return true, nil
}

// IsEnabled records the call and invokes the mock function if set
func (m *MockDriver) IsEnabled(site string) (bool, error) {
	m.IsEnabledCalls = append(m.IsEnabledCalls, site)
	if m.IsEnabledFunc != nil {
		return m.IsEnabledFunc(site)
	}
	return false, nil
}

// Enable records the call and invokes the mock function if set
func (m *MockDriver) Enable(site string) error {
	m.EnableCalls = append(m.EnableCalls, site)
	if m.EnableFunc != nil {
		return m.EnableFunc(site)
	}
	return nil
}

// Disable records the call and invokes the mock function if set
func (m *MockDriver) Disable(site string) error {
	m.DisableCalls = append(m.DisableCalls, site)
	if m.DisableFunc != nil {
		return m.DisableFunc(site)
	}
	return nil
}

// Create records the call and invokes the mock function if set
func (m *MockDriver) Create(site string) error {
	m.CreateCalls = append(m.CreateCalls, site)
	if m.CreateFunc != nil {
		return m.CreateFunc(site)
	}
	return nil
}

// RemoveAvailable records the call and invokes the mock function if set
func (m *MockDriver) RemoveAvailable(site string) error {
	m.RemoveAvailableCalls = append(m.RemoveAvailableCalls, site)
	if m.RemoveAvailableFunc != nil {
		return m.RemoveAvailableFunc(site)
	}
	return nil
}

// List records the call and invokes the mock function if set
func (m *MockDriver) List() ([]string, error) {
	m.ListCalls++
	if m.ListFunc != nil {
		return m.ListFunc()
	}
	return []string{}, nil
}

// ListEnabled records the call and invokes the mock function if set
func (m *MockDriver) ListEnabled() ([]string, error) {
	m.ListEnabledCalls++
	if m.ListEnabledFunc != nil {
		return m.ListEnabledFunc()
	}
	return []string{}, nil
}

// Test records the call and invokes the mock function if set
func (m *MockDriver) Test() error {
	m.TestCalls++
	if m.TestFunc != nil {
		return m.TestFunc()
	}
	return nil
}

// Reload records the call and invokes the mock function if set
func (m *MockDriver) Reload() error {
	m.ReloadCalls++
	if m.ReloadFunc != nil {
		return m.ReloadFunc()
	}
	return nil
}
