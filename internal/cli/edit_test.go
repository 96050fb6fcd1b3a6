package cli

import (
	"errors"
	"testing"

	"github.com/sitectl/sitectl/internal/config"
	"github.com/sitectl/sitectl/internal/driver"
	apperrors "github.com/sitectl/sitectl/internal/errors"
)

func TestRunEdit(t *testing.T) {
	tests := []struct {
		name     string
		site     string
		setup    func(*driver.MockDriver, *MockRunner) *Dependencies
		wantErr  bool
		validate func(*testing.T, *MockRunner)
	}{
		{
			name: "edit launches editor on the available file",
			site: "test.com",
			setup: func(mockDrv *driver.MockDriver, runner *MockRunner) *Dependencies {
				return NewMockDeps().WithDriver(mockDrv).WithRunner(runner).Build()
			},
			wantErr: false,
			validate: func(t *testing.T, runner *MockRunner) {
				if len(runner.RunCalls) != 1 {
					t.Fatalf("expected 1 editor run, got %d", len(runner.RunCalls))
				}
				call := runner.RunCalls[0]
				if call.Args[0] != "/a/test.com" {
					t.Errorf("editor target = %q, want /a/test.com", call.Args[0])
				}
			},
		},
		{
			name: "missing site fails before the editor",
			site: "ghost.com",
			setup: func(mockDrv *driver.MockDriver, runner *MockRunner) *Dependencies {
				mockDrv.ExistsFunc = func(site string) (bool, error) { return false, nil }
				return NewMockDeps().WithDriver(mockDrv).WithRunner(runner).Build()
			},
			wantErr: true,
			validate: func(t *testing.T, runner *MockRunner) {
				if len(runner.RunCalls) != 0 {
					t.Error("editor must not run for a missing site")
				}
			},
		},
		{
			name: "unresolvable editor fails",
			site: "test.com",
			setup: func(mockDrv *driver.MockDriver, runner *MockRunner) *Dependencies {
				runner.LookPathErr = errors.New("not found")
				return NewMockDeps().WithDriver(mockDrv).WithRunner(runner).Build()
			},
			wantErr: true,
			validate: func(t *testing.T, runner *MockRunner) {
				if len(runner.RunCalls) != 0 {
					t.Error("editor must not run when it cannot be resolved")
				}
			},
		},
		{
			name: "editor error is propagated",
			site: "test.com",
			setup: func(mockDrv *driver.MockDriver, runner *MockRunner) *Dependencies {
				runner.RunErr = errors.New("editor crashed")
				return NewMockDeps().WithDriver(mockDrv).WithRunner(runner).Build()
			},
			wantErr: true,
		},
		{
			name: "whitespace name rejected",
			site: "\t ",
			setup: func(mockDrv *driver.MockDriver, runner *MockRunner) *Dependencies {
				return NewMockDeps().WithDriver(mockDrv).WithRunner(runner).Build()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags(t)
			captureOutput(t)
			t.Setenv("EDITOR", "")

			mockDrv := driver.NewMockDriver("nginx", "/a", "/e")
			runner := &MockRunner{}
			withDeps(t, tt.setup(mockDrv, runner))

			err := runEdit(nil, []string{tt.site})
			if (err != nil) != tt.wantErr {
				t.Fatalf("runEdit() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && apperrors.ExitCode(err) != 1 {
				t.Errorf("ExitCode = %d, want 1", apperrors.ExitCode(err))
			}
			if tt.validate != nil {
				tt.validate(t, runner)
			}
		})
	}
}

func TestRunEditDoesNotRequireRoot(t *testing.T) {
	resetFlags(t)
	captureOutput(t)
	t.Setenv("EDITOR", "")

	mockDrv := driver.NewMockDriver("nginx", "/a", "/e")
	runner := &MockRunner{}
	withDeps(t, NewMockDeps().WithDriver(mockDrv).WithRunner(runner).WithRootAccess(false).Build())

	if err := runEdit(nil, []string{"test.com"}); err != nil {
		t.Fatalf("runEdit() should not require root, error = %v", err)
	}
}

func TestRunEditUsesEditorFlag(t *testing.T) {
	resetFlags(t)
	captureOutput(t)
	t.Setenv("EDITOR", "emacs")
	editorFlag = "nano"

	cfg := config.New()
	mockDrv := driver.NewMockDriver("nginx", "/a", "/e")
	runner := &MockRunner{}
	withDeps(t, NewMockDeps().WithConfig(cfg).WithDriver(mockDrv).WithRunner(runner).Build())

	if err := runEdit(nil, []string{"test.com"}); err != nil {
		t.Fatalf("runEdit() error = %v", err)
	}
	if len(runner.LookPathArgs) != 1 || runner.LookPathArgs[0] != "nano" {
		t.Errorf("LookPath args = %v, want [nano]", runner.LookPathArgs)
	}
}
