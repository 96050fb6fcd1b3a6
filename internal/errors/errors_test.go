package errors

import (
	"fmt"
	"testing"
)

func TestSiteErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *SiteError
		want string
	}{
		{
			name: "message only",
			err:  &SiteError{Code: ErrCodeValidation, Message: "site name cannot be empty"},
			want: "site name cannot be empty",
		},
		{
			name: "with site",
			err:  &SiteError{Code: ErrCodeNotFound, Message: "site not found", Site: "example.com"},
			want: "site example.com: site not found",
		},
		{
			name: "with underlying error",
			err: &SiteError{
				Code:    ErrCodeServer,
				Message: "failed to query server",
				Err:     fmt.Errorf("exec: not found"),
			},
			want: "failed to query server: exec: not found",
		},
		{
			name: "with site and underlying error",
			err: &SiteError{
				Code:    ErrCodeTestFailed,
				Message: "configuration test failed",
				Site:    "example.com",
				Err:     fmt.Errorf("nginx: [emerg]"),
			},
			want: "site example.com: configuration test failed: nginx: [emerg]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSentinelMatching(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		want     bool
	}{
		{"not found matches", NotFound("a.com"), ErrSiteNotFound, true},
		{"already enabled matches", AlreadyEnabled("a.com"), ErrSiteEnabled, true},
		{"cancelled matches", Cancelled("a.com"), ErrCancelled, true},
		{"test failed matches", TestFailed("a.com", nil), ErrTestFailed, true},
		{"validation matches", Validation("bad name"), ErrInvalidName, true},
		{"different codes don't match", NotFound("a.com"), ErrSiteEnabled, false},
		{"root required is a permission error", ErrRootRequired, ErrPermissionDenied, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.sentinel); got != tt.want {
				t.Errorf("Is(%v, %v) = %v, want %v", tt.err, tt.sentinel, got, tt.want)
			}
		})
	}
}

func TestWrappedSentinelMatching(t *testing.T) {
	// Errors wrapped with %w must still match by code.
	err := fmt.Errorf("failed to enable site: %w", AlreadyEnabled("example.com"))
	if !Is(err, ErrSiteEnabled) {
		t.Error("wrapped already-enabled error should match sentinel")
	}

	var siteErr *SiteError
	if !As(err, &siteErr) {
		t.Fatal("As should find SiteError in chain")
	}
	if siteErr.Site != "example.com" {
		t.Errorf("Site = %q, want example.com", siteErr.Site)
	}
}

func TestUnwrap(t *testing.T) {
	inner := fmt.Errorf("symlink failed")
	err := Wrap(ErrCodeInternal, "failed to enable", inner)

	var siteErr *SiteError
	if !As(err, &siteErr) {
		t.Fatal("As should find SiteError")
	}
	if siteErr.Unwrap() != inner {
		t.Error("Unwrap should return the underlying error")
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, 0},
		{"not found", NotFound("a.com"), 1},
		{"validation", Validation("empty"), 1},
		{"permission", ErrRootRequired, 1},
		{"server", ErrServerNotFound, 1},
		{"already enabled", AlreadyEnabled("a.com"), 2},
		{"cancelled", Cancelled("a.com"), 2},
		{"test failed", TestFailed("a.com", fmt.Errorf("bad config")), 3},
		{"plain error", fmt.Errorf("something broke"), 1},
		{"wrapped cancelled", fmt.Errorf("remove: %w", Cancelled("a.com")), 2},
		{"wrapped test failure", fmt.Errorf("enable: %w", TestFailed("a.com", nil)), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
