package errors

import (
	"errors"
	"io/fs"
	"testing"
)

func TestReadError(t *testing.T) {
	cause := fs.ErrNotExist
	err := NewReadError("/data/study.dcm", cause)

	if err.Path != "/data/study.dcm" {
		t.Errorf("Path = %q, want %q", err.Path, "/data/study.dcm")
	}

	msg := err.Error()
	if msg != "Failed to read DICOM file: file does not exist" {
		t.Errorf("Error() = %q, want the user-facing read-failure message", msg)
	}

	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("errors.Is should unwrap to the underlying cause")
	}
}

func TestRenderError(t *testing.T) {
	cause := errors.New("boom")
	err := NewRenderError(cause)

	if err.Error() == "" {
		t.Error("Error message should not be empty")
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is should unwrap to the underlying cause")
	}
}

func TestSentinels(t *testing.T) {
	if ErrNoValue.Error() == "" {
		t.Error("Error message should not be empty")
	}
}
