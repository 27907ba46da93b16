// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: seb3773

package splash

import (
	"errors"
	"fmt"
)

// ErrorCode represents specific error categories for splash operations.
type ErrorCode int

const (
	// ErrEncoding indicates a frame encode/decode error.
	ErrEncoding ErrorCode = iota
	// ErrValidation indicates input validation failure.
	ErrValidation
	// ErrConfiguration indicates a configuration error.
	ErrConfiguration
	// ErrResource indicates a display-resource error (surface unavailable).
	ErrResource
	// ErrUnsupported indicates an unsupported method or operation.
	ErrUnsupported
)

// String returns the string representation of the error code.
func (e ErrorCode) String() string {
	switch e {
	case ErrEncoding:
		return "encoding"
	case ErrValidation:
		return "validation"
	case ErrConfiguration:
		return "configuration"
	case ErrResource:
		return "resource"
	case ErrUnsupported:
		return "unsupported"
	default:
		return "unknown"
	}
}

// SplashError provides structured error information with operation context,
// error codes, and message wrapping.
type SplashError struct {
	Op      string
	Code    ErrorCode
	Message string
	Err     error
}

// Error returns the formatted error message.
func (e *SplashError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("splash %s: %s: %s: %v", e.Code.String(), e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("splash %s: %s: %s", e.Code.String(), e.Op, e.Message)
}

// Unwrap returns the underlying error for error chain unwrapping.
func (e *SplashError) Unwrap() error {
	return e.Err
}

// Is reports whether this error matches the target error.
func (e *SplashError) Is(target error) bool {
	var splashErr *SplashError
	if errors.As(target, &splashErr) {
		return e.Code == splashErr.Code && e.Op == splashErr.Op
	}
	return false
}

// NewSplashError creates a new SplashError with the specified parameters.
func NewSplashError(op string, code ErrorCode, message string, err error) *SplashError {
	return &SplashError{
		Op:      op,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsSplashError checks if an error is a SplashError and optionally matches
// specific error codes. If no codes are provided, returns true for any
// SplashError.
func IsSplashError(err error, code ...ErrorCode) bool {
	var splashErr *SplashError
	if !errors.As(err, &splashErr) {
		return false
	}

	if len(code) == 0 {
		return true
	}

	for _, c := range code {
		if splashErr.Code == c {
			return true
		}
	}
	return false
}

// GetErrorCode extracts the error code from a SplashError.
// Returns the error code if the error is a SplashError, otherwise returns -1.
func GetErrorCode(err error) ErrorCode {
	var splashErr *SplashError
	if errors.As(err, &splashErr) {
		return splashErr.Code
	}
	return ErrorCode(-1)
}

// encodingError creates a new encoding error.
func encodingError(op, message string, err error) error {
	return NewSplashError(op, ErrEncoding, message, err)
}

// validationError creates a new validation error.
func validationError(op, message string, err error) error {
	return NewSplashError(op, ErrValidation, message, err)
}

// configurationError creates a new configuration error.
func configurationError(op, message string, err error) error {
	return NewSplashError(op, ErrConfiguration, message, err)
}

// resourceError creates a new display-resource error.
func resourceError(op, message string, err error) error {
	return NewSplashError(op, ErrResource, message, err)
}

// unsupportedError creates a new unsupported operation error.
func unsupportedError(op, message string, err error) error {
	return NewSplashError(op, ErrUnsupported, message, err)
}
