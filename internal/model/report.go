// Package model provides shared data types used across multiple internal packages.
// This package exists to break import cycles between packages like report and output
// that need to share type definitions.
package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/AndreyAkinshin/buildreport/internal/errors"
)

// ExecutionStatus describes what happened to a task during a run.
type ExecutionStatus int

const (
	// StatusExecuted means the task body ran.
	StatusExecuted ExecutionStatus = iota
	// StatusSkipped means the task was not run because a criteria failed.
	StatusSkipped
	// StatusDelegated means the task had no actions of its own and only
	// delegated to its dependencies.
	StatusDelegated
)

var statusNames = []string{"executed", "skipped", "delegated"}

func (s ExecutionStatus) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return fmt.Sprintf("ExecutionStatus(%d)", int(s))
	}
	return statusNames[s]
}

// Valid reports whether s is a known status.
func (s ExecutionStatus) Valid() bool {
	return s >= StatusExecuted && s <= StatusDelegated
}

// ParseExecutionStatus parses a status name case-insensitively.
func ParseExecutionStatus(s string) (ExecutionStatus, bool) {
	i := lo.IndexOf(statusNames, strings.ToLower(strings.TrimSpace(s)))
	if i < 0 {
		return 0, false
	}
	return ExecutionStatus(i), true
}

// Category classifies an entry as a regular task or a lifecycle hook.
type Category int

const (
	CategoryTask Category = iota
	CategorySetup
	CategoryTeardown
)

var categoryNames = []string{"task", "setup", "teardown"}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	return c >= CategoryTask && c <= CategoryTeardown
}

// IsLifecycle reports whether the category is setup or teardown.
func (c Category) IsLifecycle() bool {
	return c == CategorySetup || c == CategoryTeardown
}

// ParseCategory parses a category name case-insensitively.
func ParseCategory(s string) (Category, bool) {
	i := lo.IndexOf(categoryNames, strings.ToLower(strings.TrimSpace(s)))
	if i < 0 {
		return 0, false
	}
	return Category(i), true
}

// ReportEntry tracks the outcome of a single task.
type ReportEntry struct {
	TaskName        string
	Duration        time.Duration
	ExecutionStatus ExecutionStatus
	Category        Category
}

// Validate checks the entry invariants.
func (e ReportEntry) Validate() error {
	if strings.TrimSpace(e.TaskName) == "" {
		return errors.Validation("task name must not be empty")
	}
	if e.Duration < 0 {
		return errors.Validationf("task %q: duration must not be negative (got %s)", e.TaskName, e.Duration)
	}
	if !e.ExecutionStatus.Valid() {
		return errors.Validationf("task %q: unknown execution status %d", e.TaskName, int(e.ExecutionStatus))
	}
	if !e.Category.Valid() {
		return errors.Validationf("task %q: unknown category %d", e.TaskName, int(e.Category))
	}
	return nil
}

// Report is the ordered list of entries produced by a build run.
// The zero value is an empty report ready to use.
type Report struct {
	entries []ReportEntry
}

// NewReport creates an empty report.
func NewReport() *Report {
	return &Report{}
}

// Add records an executed task.
func (r *Report) Add(taskName string, category Category, duration time.Duration) error {
	return r.Append(ReportEntry{
		TaskName:        taskName,
		Duration:        duration,
		ExecutionStatus: StatusExecuted,
		Category:        category,
	})
}

// AddSkipped records a skipped task. Skipped tasks have zero duration.
func (r *Report) AddSkipped(taskName string, category Category) error {
	return r.Append(ReportEntry{
		TaskName:        taskName,
		ExecutionStatus: StatusSkipped,
		Category:        category,
	})
}

// AddDelegated records a task that only delegated to its dependencies.
func (r *Report) AddDelegated(taskName string, duration time.Duration) error {
	return r.Append(ReportEntry{
		TaskName:        taskName,
		Duration:        duration,
		ExecutionStatus: StatusDelegated,
		Category:        CategoryTask,
	})
}

// Append validates and records an entry. An invalid entry leaves the report unchanged.
func (r *Report) Append(e ReportEntry) error {
	if err := e.Validate(); err != nil {
		return errors.InvalidArgumentWrap("entry", err)
	}
	r.entries = append(r.entries, e)
	return nil
}

// Entries returns a copy of the entries in insertion order.
func (r *Report) Entries() []ReportEntry {
	out := make([]ReportEntry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Len returns the number of entries.
func (r *Report) Len() int {
	return len(r.entries)
}

// IsEmpty reports whether the report has no entries.
func (r *Report) IsEmpty() bool {
	return len(r.entries) == 0
}

// TotalDuration sums the durations of every entry, whatever its status.
func (r *Report) TotalDuration() time.Duration {
	return lo.SumBy(r.entries, func(e ReportEntry) time.Duration {
		return e.Duration
	})
}
