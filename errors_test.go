// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: seb3773

package splash

import (
	"errors"
	"fmt"
	"testing"
)

func TestSplashError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *SplashError
		want string
	}{
		{
			name: "without wrapped error",
			err:  NewSplashError("Encode", ErrEncoding, "run too long", nil),
			want: "splash encoding: Encode: run too long",
		},
		{
			name: "with wrapped error",
			err:  NewSplashError("Run", ErrResource, "present failed", errors.New("device busy")),
			want: "splash resource: Run: present failed: device busy",
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

func TestSplashError_Unwrap(t *testing.T) {
	inner := errors.New("inner")
	err := NewSplashError("op", ErrEncoding, "msg", inner)
	if !errors.Is(err, inner) {
		t.Error("errors.Is() did not find the wrapped error")
	}
}

func TestErrorCode_String(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want string
	}{
		{ErrEncoding, "encoding"},
		{ErrValidation, "validation"},
		{ErrConfiguration, "configuration"},
		{ErrResource, "resource"},
		{ErrUnsupported, "unsupported"},
		{ErrorCode(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.code.String(); got != tt.want {
			t.Errorf("ErrorCode(%d).String() = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestIsSplashError(t *testing.T) {
	encErr := encodingError("op", "msg", nil)
	wrapped := fmt.Errorf("outer: %w", encErr)

	tests := []struct {
		name  string
		err   error
		codes []ErrorCode
		want  bool
	}{
		{name: "nil error", err: nil, want: false},
		{name: "plain error", err: errors.New("plain"), want: false},
		{name: "any splash error", err: encErr, want: true},
		{name: "matching code", err: encErr, codes: []ErrorCode{ErrEncoding}, want: true},
		{name: "non-matching code", err: encErr, codes: []ErrorCode{ErrResource}, want: false},
		{name: "one of several codes", err: encErr, codes: []ErrorCode{ErrResource, ErrEncoding}, want: true},
		{name: "wrapped splash error", err: wrapped, codes: []ErrorCode{ErrEncoding}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSplashError(tt.err, tt.codes...); got != tt.want {
				t.Errorf("IsSplashError() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	if got := GetErrorCode(validationError("op", "msg", nil)); got != ErrValidation {
		t.Errorf("GetErrorCode() = %v, want validation", got)
	}
	if got := GetErrorCode(errors.New("plain")); got != ErrorCode(-1) {
		t.Errorf("GetErrorCode() = %v, want -1", got)
	}
}

func TestErrorConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code ErrorCode
	}{
		{name: "encoding", err: encodingError("op", "m", nil), code: ErrEncoding},
		{name: "validation", err: validationError("op", "m", nil), code: ErrValidation},
		{name: "configuration", err: configurationError("op", "m", nil), code: ErrConfiguration},
		{name: "resource", err: resourceError("op", "m", nil), code: ErrResource},
		{name: "unsupported", err: unsupportedError("op", "m", nil), code: ErrUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetErrorCode(tt.err); got != tt.code {
				t.Errorf("GetErrorCode() = %v, want %v", got, tt.code)
			}
		})
	}
}
