package generator

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrLoad indicates the OpenAPI document could not be read, parsed or validated.
	ErrLoad = errors.New("load error")

	// ErrWrite indicates a generated unit could not be written.
	ErrWrite = errors.New("write error")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// LoadError represents a failure to load the OpenAPI document
type LoadError struct {
	// Source is the file path or URL of the document
	Source string
	// Cause is the underlying error
	Cause error
}

// Error returns a human-readable error message.
func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load %s: %v", e.Source, e.Cause)
}

// Unwrap returns the underlying cause for error chaining.
func (e *LoadError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *LoadError) Is(target error) bool {
	return target == ErrLoad
}

// WriteError represents a failure to persist a generated unit or to create
// its directory. Units written before the failure are left in place.
type WriteError struct {
	// Path is the target file or directory
	Path string
	// Cause is the underlying error
	Cause error
}

// Error returns a human-readable error message.
func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Cause)
}

// Unwrap returns the underlying cause for error chaining.
func (e *WriteError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *WriteError) Is(target error) bool {
	return target == ErrWrite
}
