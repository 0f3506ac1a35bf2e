// Copyright 2025 The Sigstore Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package digests

import (
	"errors"
	"fmt"
)

// ErrorType represents the category of a hashing error.
type ErrorType int

const (
	// ErrTypeUnknown indicates an unclassified error.
	ErrTypeUnknown ErrorType = iota

	// ErrTypeUnsupportedAlgorithm indicates no implementation is available
	// for the requested hash algorithm.
	ErrTypeUnsupportedAlgorithm

	// ErrTypeInvalidRange indicates an offset/length pair outside the
	// bounds of the supplied buffer.
	ErrTypeInvalidRange

	// ErrTypeInvalidState indicates an update or finalize call on an engine
	// that has already been finalized.
	ErrTypeInvalidState

	// ErrTypeIO indicates a file or stream could not be opened or read.
	ErrTypeIO

	// ErrTypeMalformedHex indicates text that is not a valid hex encoding.
	ErrTypeMalformedHex
)

// String returns a human-readable name for the error type.
func (e ErrorType) String() string {
	switch e {
	case ErrTypeUnsupportedAlgorithm:
		return "UnsupportedAlgorithm"
	case ErrTypeInvalidRange:
		return "InvalidRange"
	case ErrTypeInvalidState:
		return "InvalidState"
	case ErrTypeIO:
		return "IOFailure"
	case ErrTypeMalformedHex:
		return "MalformedHex"
	default:
		return "UnknownError"
	}
}

// Error is the structured error returned by the hashing packages.
//
// Callers that need to branch on the failure kind should use IsType or
// errors.As rather than matching on the message:
//
//	if digests.IsType(err, digests.ErrTypeIO) {
//	    // the file disappeared, retry or report
//	}
type Error struct {
	// Type categorizes the error for programmatic handling.
	Type ErrorType

	// Path is the file path involved, if any.
	Path string

	// Message is a human-readable description of what went wrong.
	Message string

	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Path != "" && e.Cause != nil {
		return fmt.Sprintf("%s: %s (path: %s): %v", e.Type, e.Message, e.Path, e.Cause)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %s (path: %s)", e.Type, e.Message, e.Path)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying cause for error chain unwrapping.
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a new hashing error.
func NewError(errType ErrorType, message string, cause error) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// NewErrorWithPath creates a new hashing error that refers to a file.
func NewErrorWithPath(errType ErrorType, path, message string, cause error) *Error {
	return &Error{
		Type:    errType,
		Path:    path,
		Message: message,
		Cause:   cause,
	}
}

// IsType reports whether any error in err's chain is an *Error of the given type.
func IsType(err error, errType ErrorType) bool {
	var hashErr *Error
	if errors.As(err, &hashErr) {
		return hashErr.Type == errType
	}
	return false
}
