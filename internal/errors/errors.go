// Package errors provides standardized error types for the sitectl CLI tool.
//
// The errors package defines domain-specific error types that enable
// structured error handling and consistent error messages throughout
// the application.
//
// # Error Types
//
// SiteError is the primary error type, containing:
//   - Code: Categorizes the error (NOT_FOUND, ALREADY_ENABLED, etc.)
//   - Message: Human-readable error description
//   - Site: The site name involved (if applicable)
//   - Err: The underlying wrapped error (if any)
//
// # Exit Codes
//
// Error codes map onto process exit codes via ExitCode:
//
//	nil                      -> 0
//	ALREADY_ENABLED          -> 2
//	CANCELLED                -> 2
//	TEST_FAILED              -> 3
//	everything else          -> 1
//
// # Usage
//
// Creating domain-specific errors:
//
//	// Site not found
//	return errors.NotFound("example.com")
//
//	// Site already enabled
//	return errors.AlreadyEnabled("example.com")
//
//	// Validation error
//	return errors.Validation("site name cannot be empty")
//
//	// Wrapping an underlying error
//	return errors.Wrap(errors.ErrCodeServer, "failed to query server", err)
//
// # Error Checking
//
// Use errors.Is for sentinel error comparison:
//
//	if errors.Is(err, errors.ErrSiteNotFound) {
//	    // Handle not found case
//	}
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes errors for programmatic handling.
type ErrorCode string

// Error codes for different error categories.
const (
	ErrCodeNotFound       ErrorCode = "NOT_FOUND"       // Site not found
	ErrCodeAlreadyEnabled ErrorCode = "ALREADY_ENABLED" // Site is already enabled
	ErrCodeValidation     ErrorCode = "VALIDATION"      // Input validation failed
	ErrCodePermission     ErrorCode = "PERMISSION"      // Permission denied
	ErrCodeConfig         ErrorCode = "CONFIG"          // Configuration error
	ErrCodeServer         ErrorCode = "SERVER"          // Web server interaction error
	ErrCodeTestFailed     ErrorCode = "TEST_FAILED"     // Server config test failed
	ErrCodeCancelled      ErrorCode = "CANCELLED"       // User declined a confirmation
	ErrCodeInternal       ErrorCode = "INTERNAL"        // Internal/unexpected error
)

// SiteError represents a structured error with context about the operation.
type SiteError struct {
	Code    ErrorCode // Error category
	Message string    // Human-readable message
	Site    string    // Site name (if applicable)
	Err     error     // Underlying error (if any)
}

// Error implements the error interface.
func (e *SiteError) Error() string {
	if e.Site != "" && e.Err != nil {
		return fmt.Sprintf("site %s: %s: %v", e.Site, e.Message, e.Err)
	}
	if e.Site != "" {
		return fmt.Sprintf("site %s: %s", e.Site, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for error chain traversal.
func (e *SiteError) Unwrap() error {
	return e.Err
}

// Is reports whether target matches this error.
// Comparison is based on error code.
func (e *SiteError) Is(target error) bool {
	t, ok := target.(*SiteError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Sentinel errors for common error scenarios.
// Use these with errors.Is() for error checking.
var (
	// ErrSiteNotFound indicates the requested site does not exist.
	ErrSiteNotFound = &SiteError{Code: ErrCodeNotFound, Message: "site not found"}

	// ErrSiteEnabled indicates the site is already enabled.
	ErrSiteEnabled = &SiteError{Code: ErrCodeAlreadyEnabled, Message: "site already enabled"}

	// ErrInvalidName indicates the site name is not valid.
	ErrInvalidName = &SiteError{Code: ErrCodeValidation, Message: "invalid site name"}

	// ErrPermissionDenied indicates insufficient privileges for the operation.
	ErrPermissionDenied = &SiteError{Code: ErrCodePermission, Message: "permission denied"}

	// ErrConfigInvalid indicates the configuration is invalid or corrupt.
	ErrConfigInvalid = &SiteError{Code: ErrCodeConfig, Message: "invalid configuration"}

	// ErrServerNotFound indicates the web server binary is not installed.
	ErrServerNotFound = &SiteError{Code: ErrCodeServer, Message: "web server not found"}

	// ErrTestFailed indicates the server rejected its configuration.
	ErrTestFailed = &SiteError{Code: ErrCodeTestFailed, Message: "configuration test failed"}

	// ErrCancelled indicates the operator declined a destructive confirmation.
	ErrCancelled = &SiteError{Code: ErrCodeCancelled, Message: "cancelled by user"}

	// ErrRootRequired indicates root privileges are required.
	ErrRootRequired = &SiteError{
		Code:    ErrCodePermission,
		Message: "this operation requires root privileges, run with sudo",
	}
)

// NotFound creates an error for a site that doesn't exist.
func NotFound(site string) error {
	return &SiteError{
		Code:    ErrCodeNotFound,
		Message: "site not found",
		Site:    site,
	}
}

// AlreadyEnabled creates an error for a site that is already enabled.
func AlreadyEnabled(site string) error {
	return &SiteError{
		Code:    ErrCodeAlreadyEnabled,
		Message: "site already enabled",
		Site:    site,
	}
}

// Validation creates a validation error with a custom message.
func Validation(msg string) error {
	return &SiteError{
		Code:    ErrCodeValidation,
		Message: msg,
	}
}

// Cancelled creates a cancellation error for a declined confirmation.
func Cancelled(site string) error {
	return &SiteError{
		Code:    ErrCodeCancelled,
		Message: "cancelled by user",
		Site:    site,
	}
}

// TestFailed creates an error for a failed server configuration test.
func TestFailed(site string, err error) error {
	return &SiteError{
		Code:    ErrCodeTestFailed,
		Message: "configuration test failed",
		Site:    site,
		Err:     err,
	}
}

// Wrap creates an error with the specified code, message, and underlying error.
func Wrap(code ErrorCode, msg string, err error) error {
	return &SiteError{
		Code:    code,
		Message: msg,
		Err:     err,
	}
}

// ExitCode maps an error to the process exit code contract of the CLI.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var siteErr *SiteError
	if errors.As(err, &siteErr) {
		switch siteErr.Code {
		case ErrCodeAlreadyEnabled, ErrCodeCancelled:
			return 2
		case ErrCodeTestFailed:
			return 3
		}
	}
	return 1
}

// Is reports whether any error in err's chain matches target.
// This is a re-export of errors.Is for convenience.
var Is = errors.Is

// As finds the first error in err's chain that matches target.
// This is a re-export of errors.As for convenience.
var As = errors.As
