package apperrors

import (
	"errors"
	"fmt"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// Remote source errors
	ErrorTypeAuthentication ErrorType = "AUTHENTICATION"
	ErrorTypeQuotaExceeded  ErrorType = "QUOTA_EXCEEDED"
	ErrorTypeNetwork        ErrorType = "NETWORK"

	// Local file errors
	ErrorTypeCacheCorrupt ErrorType = "CACHE_CORRUPT"
	ErrorTypeExport       ErrorType = "EXPORT"
)

// AppError represents an error surfaced to the presentation layer.
// None of them are fatal; the catalog is left as it was.
type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
}

// Sentinels for errors.Is. Matching is by Type only.
var (
	ErrAuthentication = &AppError{Type: ErrorTypeAuthentication}
	ErrQuotaExceeded  = &AppError{Type: ErrorTypeQuotaExceeded}
	ErrNetwork        = &AppError{Type: ErrorTypeNetwork}
	ErrCacheCorrupt   = &AppError{Type: ErrorTypeCacheCorrupt}
	ErrExport         = &AppError{Type: ErrorTypeExport}
)

// Error implements the error interface
func (e *AppError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = string(e.Type)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an AppError of the same type
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Type == e.Type
}

// NewAuthenticationError creates an error for a missing or rejected credential
func NewAuthenticationError(message string, cause error) *AppError {
	return &AppError{Type: ErrorTypeAuthentication, Message: message, Cause: cause}
}

// NewQuotaExceededError creates an error for an API quota or rate limit rejection
func NewQuotaExceededError(message string, cause error) *AppError {
	return &AppError{Type: ErrorTypeQuotaExceeded, Message: message, Cause: cause}
}

// NewNetworkError creates an error for a transport or remote server failure
func NewNetworkError(message string, cause error) *AppError {
	return &AppError{Type: ErrorTypeNetwork, Message: message, Cause: cause}
}

// NewCacheCorruptError creates an error for an unreadable cache file
func NewCacheCorruptError(path string, cause error) *AppError {
	return &AppError{Type: ErrorTypeCacheCorrupt, Message: fmt.Sprintf("cache file %s is unreadable", path), Cause: cause}
}

// NewExportError creates an error for a failed export write
func NewExportError(message string, cause error) *AppError {
	return &AppError{Type: ErrorTypeExport, Message: message, Cause: cause}
}

// TypeOf returns the ErrorType carried by err, or "" if err is not an AppError
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type
	}
	return ""
}

// UserMessage returns a message for err with a hint on what the user can do
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	switch TypeOf(err) {
	case ErrorTypeAuthentication:
		return fmt.Sprintf("Authentication failed: %v. Please authenticate again.", err)
	case ErrorTypeQuotaExceeded:
		return fmt.Sprintf("YouTube API quota exceeded: %v. Wait for the quota to reset (usually 24 hours) and try again.", err)
	case ErrorTypeNetwork:
		return fmt.Sprintf("Could not reach YouTube: %v. Check your connection and try again.", err)
	case ErrorTypeCacheCorrupt:
		return fmt.Sprintf("Local cache ignored: %v.", err)
	case ErrorTypeExport:
		return fmt.Sprintf("Export failed: %v.", err)
	default:
		return err.Error()
	}
}
