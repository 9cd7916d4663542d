// Package integration contains end-to-end tests for buildreport that run
// against the report and config fixtures in test/fixtures.
package integration

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"testing"

	"github.com/AndreyAkinshin/buildreport/internal/model"
	"github.com/AndreyAkinshin/buildreport/internal/output"
	"github.com/AndreyAkinshin/buildreport/internal/report"
)

var (
	fixturesDirOnce sync.Once
	fixturesDirPath string
)

// fixturesDir returns the path to the test fixtures directory.
func fixturesDir() string {
	fixturesDirOnce.Do(func() {
		_, filename, _, _ := runtime.Caller(0)
		fixturesDirPath = filepath.Join(filepath.Dir(filename), "..", "fixtures")
	})
	return fixturesDirPath
}

func fixture(parts ...string) string {
	return filepath.Join(append([]string{fixturesDir()}, parts...)...)
}

func readGolden(t *testing.T, parts ...string) string {
	t.Helper()
	data, err := os.ReadFile(fixture(parts...))
	if err != nil {
		t.Fatalf("failed to read golden file: %v", err)
	}
	return string(data)
}

// render prints r through a colorless terminal writer and returns stdout.
func render(t *testing.T, r *model.Report, opts report.PrinterOptions) string {
	t.Helper()
	var stdout, stderr bytes.Buffer
	w := output.NewWithWriters(&stdout, &stderr, false)
	if err := report.NewPrinter(w, opts).Write(r); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if stderr.Len() != 0 {
		t.Errorf("unexpected stderr output: %q", stderr.String())
	}
	return stdout.String()
}
