// Package errors provides viewer-specific error types for better error handling
package errors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	ErrNoValue = errors.New("dcmview: element has no value")
)

// ReadError reports a failure to open or parse a DICOM file. Its message is
// what both front-ends surface to the user.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("Failed to read DICOM file: %v", e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// NewReadError creates a new read error
func NewReadError(path string, err error) *ReadError {
	return &ReadError{
		Path: path,
		Err:  err,
	}
}

// RenderError reports a failure to render a single element value as text.
// It is always consumed locally - either the element is suppressed or an
// inline placeholder is emitted - and never aborts a traversal.
type RenderError struct {
	Err error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("dcmview: value render failed: %v", e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// NewRenderError creates a new render error
func NewRenderError(err error) *RenderError {
	return &RenderError{
		Err: err,
	}
}
