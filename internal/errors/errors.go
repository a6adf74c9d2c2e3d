// Package errors provides standardized error types for the localdev toolkit.
//
// The errors package defines domain-specific error types that enable
// structured error handling and consistent error messages across the setup
// routine and the site provisioning workflow.
//
// # Error Types
//
// SiteError is the primary error type, containing:
//   - Code: Categorizes the error (PREREQUISITE, CERTIFICATE, etc.)
//   - Message: Human-readable error description
//   - Domain: The domain being provisioned (if applicable)
//   - Err: The underlying wrapped error (if any)
//
// # Sentinel Errors
//
// Common failure scenarios have pre-defined sentinel errors:
//
//	errors.ErrSetupRequired       // one-time setup has not been run
//	errors.ErrOpenSSLNotInstalled // openssl binary missing
//	errors.ErrCertificate         // certificate command failed
//	errors.ErrInputClosed         // operator input ended mid-prompt
//
// # Error Checking
//
// Use errors.Is for sentinel comparison. Matching is by code, so any
// CERTIFICATE error matches ErrCertificate:
//
//	if errors.Is(err, errors.ErrCertificate) {
//	    // the TLS branch was aborted
//	}
//
// Use errors.As to get at the fields:
//
//	var siteErr *errors.SiteError
//	if errors.As(err, &siteErr) {
//	    fmt.Printf("code=%s domain=%s\n", siteErr.Code, siteErr.Domain)
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
	ErrCodeValidation   ErrorCode = "VALIDATION"   // Input validation failed
	ErrCodePrerequisite ErrorCode = "PREREQUISITE" // Setup has not been completed
	ErrCodeFilesystem   ErrorCode = "FILESYSTEM"   // Directory, file or link operation failed
	ErrCodeCertificate  ErrorCode = "CERTIFICATE"  // Certificate generation failed
	ErrCodeConfig       ErrorCode = "CONFIG"       // Toolkit configuration error
	ErrCodeInput        ErrorCode = "INPUT"        // Operator input unavailable
	ErrCodeInternal     ErrorCode = "INTERNAL"     // Internal/unexpected error
)

// SiteError represents a structured error with context about the operation.
type SiteError struct {
	Code    ErrorCode // Error category
	Message string    // Human-readable message
	Domain  string    // Domain name (if applicable)
	Err     error     // Underlying error (if any)
}

// Error implements the error interface.
func (e *SiteError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = string(e.Code)
	}
	if e.Domain != "" && e.Err != nil {
		return fmt.Sprintf("site %s: %s: %v", e.Domain, msg, e.Err)
	}
	if e.Domain != "" {
		return fmt.Sprintf("site %s: %s", e.Domain, msg)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
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
	// ErrSetupRequired indicates the one-time setup routine has not been run.
	ErrSetupRequired = &SiteError{Code: ErrCodePrerequisite, Message: "environment not provisioned"}

	// ErrOpenSSLNotInstalled indicates the openssl binary cannot be found.
	ErrOpenSSLNotInstalled = &SiteError{Code: ErrCodeCertificate, Message: "openssl not installed"}

	// ErrCertificate indicates the certificate command did not succeed.
	ErrCertificate = &SiteError{Code: ErrCodeCertificate, Message: "certificate generation failed"}

	// ErrSymlinkUnsupported indicates the filesystem cannot create symbolic links.
	ErrSymlinkUnsupported = &SiteError{Code: ErrCodeFilesystem, Message: "filesystem does not support symlinks"}

	// ErrInputClosed indicates operator input ended before a prompt was answered.
	ErrInputClosed = &SiteError{Code: ErrCodeInput, Message: "input closed"}

	// ErrConfigInvalid indicates the toolkit configuration is invalid or corrupt.
	ErrConfigInvalid = &SiteError{Code: ErrCodeConfig, Message: "invalid configuration"}
)

// Validation creates a validation error with a custom message.
func Validation(msg string) error {
	return &SiteError{
		Code:    ErrCodeValidation,
		Message: msg,
	}
}

// Prerequisite creates an error for a missing precondition.
func Prerequisite(msg string) error {
	return &SiteError{
		Code:    ErrCodePrerequisite,
		Message: msg,
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

// WrapDomain creates an error with domain context and underlying error.
func WrapDomain(code ErrorCode, domain, msg string, err error) error {
	return &SiteError{
		Code:    code,
		Message: msg,
		Domain:  domain,
		Err:     err,
	}
}

// Is reports whether any error in err's chain matches target.
// This is a re-export of errors.Is for convenience.
var Is = errors.Is

// As finds the first error in err's chain that matches target.
// This is a re-export of errors.As for convenience.
var As = errors.As

// New is a re-export of errors.New for convenience.
var New = errors.New
