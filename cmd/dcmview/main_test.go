package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRun_MissingFile(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{filepath.Join(t.TempDir(), "missing.dcm")}, &stdout, &stderr)

	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "Error: Failed to read DICOM file:") {
		t.Errorf("stderr = %q, want the read-failure message", stderr.String())
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout should be empty on failure, got %q", stdout.String())
	}
}

func TestRun_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.dcm")
	if err := os.WriteFile(path, []byte("not a dicom file"), 0o644); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	code := run([]string{path}, &stdout, &stderr)

	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "Error: Failed to read DICOM file:") {
		t.Errorf("stderr = %q, want the read-failure message", stderr.String())
	}
}

func TestRun_Usage(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no arguments", nil},
		{"too many arguments", []string{"a.dcm", "b.dcm"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer

			code := run(tt.args, &stdout, &stderr)

			if code != 1 {
				t.Errorf("exit code = %d, want 1", code)
			}
			if !strings.Contains(stderr.String(), "Usage:") {
				t.Errorf("stderr = %q, want a usage line", stderr.String())
			}
		})
	}
}
