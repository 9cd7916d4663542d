// Package testparser turns Go test runner output into build reports, one
// entry per top-level test, so test timings print like any other build run.
package testparser

import (
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/AndreyAkinshin/buildreport/internal/errors"
	"github.com/AndreyAkinshin/buildreport/internal/model"
)

// maxReasonLen caps failure reasons so they fit one terminal line.
const maxReasonLen = 100

// maxLineSize bounds a single line of test output.
const maxLineSize = 1024 * 1024

// FailedTest holds information about a single failed test.
type FailedTest struct {
	Name   string // Test name (e.g., "TestFoo")
	Reason string // First error message of the test, if any
}

// TestCounts holds top-level test result counts.
// Subtests are folded into their parent and not counted.
type TestCounts struct {
	Passed      int
	Failed      int
	Skipped     int
	Total       int
	FailedTests []FailedTest
}

// Result is a parsed test run.
type Result struct {
	Report *model.Report
	Counts TestCounts
}

// Parsed reports whether any test result was found.
func (r Result) Parsed() bool {
	return r.Counts.Total > 0
}

// Parser converts the output of a test runner into a Result.
type Parser interface {
	// Parse reads test runner output until EOF.
	Parse(r io.Reader) (Result, error)
	// Name returns the input format name of the parser.
	Name() string
}

func newResult() Result {
	return Result{Report: model.NewReport()}
}

// record adds one finished top-level test. Failed tests still ran,
// so they are reported as executed with their elapsed time.
func (r *Result) record(name, action string, elapsed time.Duration, output []string) error {
	var err error
	switch strings.ToLower(action) {
	case "pass":
		r.Counts.Passed++
		err = r.Report.Add(name, model.CategoryTask, elapsed)
	case "fail":
		r.Counts.Failed++
		r.Counts.FailedTests = append(r.Counts.FailedTests, FailedTest{
			Name:   name,
			Reason: failureReason(output),
		})
		err = r.Report.Add(name, model.CategoryTask, elapsed)
	case "skip":
		r.Counts.Skipped++
		err = r.Report.AddSkipped(name, model.CategoryTask)
	default:
		return nil
	}
	if err != nil {
		return errors.Validationf("test %q: %v", name, err)
	}
	r.Counts.Total++
	return nil
}

// parseSeconds converts a decimal seconds value like "0.57" without float rounding.
func parseSeconds(s string) (time.Duration, error) {
	return time.ParseDuration(s + "s")
}

// failureReason extracts the most relevant failure message from test output:
// the first "file.go:N: message" line, else the first non-boilerplate line.
func failureReason(output []string) string {
	for _, line := range output {
		if m := goErrorLine.FindStringSubmatch(line); m != nil {
			return truncate(strings.TrimSpace(m[1]))
		}
	}
	for _, line := range output {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" && !isTestBoundary(trimmed) && trimmed != "PASS" && trimmed != "FAIL" {
			return truncate(trimmed)
		}
	}
	return ""
}

func truncate(s string) string {
	if utf8.RuneCountInString(s) <= maxReasonLen {
		return s
	}
	return string([]rune(s)[:maxReasonLen-3]) + "..."
}

// isTestBoundary returns true if the line starts or finishes a test.
func isTestBoundary(line string) bool {
	return strings.HasPrefix(line, "=== ") ||
		strings.HasPrefix(line, "--- PASS:") ||
		strings.HasPrefix(line, "--- FAIL:") ||
		strings.HasPrefix(line, "--- SKIP:")
}
