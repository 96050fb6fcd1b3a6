// Package executor abstracts external command execution behind an
// interface so the web server and editor invocations can be mocked
// in tests.
package executor

import (
	"os"
	"os/exec"
)

// CommandExecutor is an interface for executing system commands
type CommandExecutor interface {
	// Execute runs a command with the given name and arguments,
	// returning its combined stdout and stderr
	Execute(name string, args ...string) ([]byte, error)

	// ExecuteInteractive runs a command attached to the process's
	// stdin, stdout and stderr, blocking until it exits. Used for
	// foreground editor sessions.
	ExecuteInteractive(name string, args ...string) error

	// LookPath searches for an executable in the directories named by the PATH
	LookPath(file string) (string, error)
}

// SystemExecutor implements CommandExecutor using os/exec
type SystemExecutor struct{}

// NewSystemExecutor creates a new SystemExecutor
func NewSystemExecutor() *SystemExecutor {
	return &SystemExecutor{}
}

// Execute runs a command and returns combined output
func (e *SystemExecutor) Execute(name string, args ...string) ([]byte, error) {
	cmd := exec.Command(name, args...)
	return cmd.CombinedOutput()
}

// ExecuteInteractive runs a command in the foreground with inherited stdio
func (e *SystemExecutor) ExecuteInteractive(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// LookPath searches for an executable
func (e *SystemExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// MockExecutor is a mock implementation for testing
type MockExecutor struct {
	ExecuteFunc     func(name string, args ...string) ([]byte, error)
	InteractiveFunc func(name string, args ...string) error
	LookPathFunc    func(file string) (string, error)
	Calls           []CommandCall
	InteractiveRuns []CommandCall
}

// CommandCall records a command execution for verification
type CommandCall struct {
	Name string
	Args []string
}

// Execute calls the mock function
func (m *MockExecutor) Execute(name string, args ...string) ([]byte, error) {
	m.Calls = append(m.Calls, CommandCall{Name: name, Args: args})
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(name, args...)
	}
	return []byte(""), nil
}

// ExecuteInteractive calls the mock function
func (m *MockExecutor) ExecuteInteractive(name string, args ...string) error {
	m.InteractiveRuns = append(m.InteractiveRuns, CommandCall{Name: name, Args: args})
	if m.InteractiveFunc != nil {
		return m.InteractiveFunc(name, args...)
	}
	return nil
}

// LookPath calls the mock function
func (m *MockExecutor) LookPath(file string) (string, error) {
	if m.LookPathFunc != nil {
		return m.LookPathFunc(file)
	}
	return "/usr/bin/" + file, nil
}
