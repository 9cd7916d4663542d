package model

import (
	"testing"
	"time"

	"github.com/AndreyAkinshin/buildreport/internal/errors"
)

func TestReport_Add(t *testing.T) {
	r := NewReport()
	if !r.IsEmpty() {
		t.Fatal("NewReport() is not empty")
	}

	if err := r.Add("Build", CategoryTask, 2*time.Second); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if err := r.AddSkipped("Publish", CategoryTask); err != nil {
		t.Fatalf("AddSkipped() error = %v", err)
	}
	if err := r.AddDelegated("Default", 5*time.Millisecond); err != nil {
		t.Fatalf("AddDelegated() error = %v", err)
	}

	entries := r.Entries()
	if len(entries) != 3 || r.Len() != 3 {
		t.Fatalf("len(Entries()) = %d, Len() = %d, want 3", len(entries), r.Len())
	}

	want := []ReportEntry{
		{TaskName: "Build", Duration: 2 * time.Second, ExecutionStatus: StatusExecuted, Category: CategoryTask},
		{TaskName: "Publish", ExecutionStatus: StatusSkipped, Category: CategoryTask},
		{TaskName: "Default", Duration: 5 * time.Millisecond, ExecutionStatus: StatusDelegated, Category: CategoryTask},
	}
	for i := range want {
		if entries[i] != want[i] {
			t.Errorf("Entries()[%d] = %+v, want %+v", i, entries[i], want[i])
		}
	}
}

func TestReport_EntriesIsCopy(t *testing.T) {
	r := NewReport()
	_ = r.Add("Build", CategoryTask, time.Second)

	entries := r.Entries()
	entries[0].TaskName = "Mutated"

	if got := r.Entries()[0].TaskName; got != "Build" {
		t.Errorf("report entry mutated through copy: %q", got)
	}
}

func TestReport_AppendRejectsInvalid(t *testing.T) {
	tests := []struct {
		name  string
		entry ReportEntry
	}{
		{"empty name", ReportEntry{TaskName: ""}},
		{"blank name", ReportEntry{TaskName: "   "}},
		{"negative duration", ReportEntry{TaskName: "Build", Duration: -time.Second}},
		{"unknown status", ReportEntry{TaskName: "Build", ExecutionStatus: ExecutionStatus(9)}},
		{"unknown category", ReportEntry{TaskName: "Build", Category: Category(-1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewReport()
			err := r.Append(tt.entry)
			if err == nil {
				t.Fatal("Append() error = nil, want error")
			}
			if !errors.IsKind(err, errors.KindInvalidArgument) {
				t.Errorf("Append() error kind mismatch: %v", err)
			}
			if !r.IsEmpty() {
				t.Error("report changed after rejected Append()")
			}
		})
	}
}

func TestReport_TotalDuration(t *testing.T) {
	r := NewReport()
	_ = r.Add("A", CategoryTask, time.Second)
	_ = r.Add("B", CategoryTask, 2*time.Second)
	_ = r.AddSkipped("C", CategoryTask)
	_ = r.AddDelegated("D", 250*time.Millisecond)

	if got, want := r.TotalDuration(), 3250*time.Millisecond; got != want {
		t.Errorf("TotalDuration() = %v, want %v", got, want)
	}
}

func TestReport_TotalDurationIncludesSkippedEntries(t *testing.T) {
	var r Report
	_ = r.Append(ReportEntry{TaskName: "Skipped but timed", Duration: time.Second, ExecutionStatus: StatusSkipped})

	if got := r.TotalDuration(); got != time.Second {
		t.Errorf("TotalDuration() = %v, want 1s", got)
	}
}

func TestReport_TotalDurationEmpty(t *testing.T) {
	if got := NewReport().TotalDuration(); got != 0 {
		t.Errorf("TotalDuration() = %v, want 0", got)
	}
}

func TestParseExecutionStatus(t *testing.T) {
	tests := []struct {
		in     string
		want   ExecutionStatus
		wantOK bool
	}{
		{"executed", StatusExecuted, true},
		{"Skipped", StatusSkipped, true},
		{" DELEGATED ", StatusDelegated, true},
		{"failed", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseExecutionStatus(tt.in)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ParseExecutionStatus(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in     string
		want   Category
		wantOK bool
	}{
		{"task", CategoryTask, true},
		{"Setup", CategorySetup, true},
		{"TEARDOWN", CategoryTeardown, true},
		{"hook", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseCategory(tt.in)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ParseCategory(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestCategory_IsLifecycle(t *testing.T) {
	if CategoryTask.IsLifecycle() {
		t.Error("CategoryTask.IsLifecycle() = true")
	}
	if !CategorySetup.IsLifecycle() || !CategoryTeardown.IsLifecycle() {
		t.Error("setup/teardown should be lifecycle categories")
	}
}

func TestStringers(t *testing.T) {
	if got := StatusDelegated.String(); got != "delegated" {
		t.Errorf("StatusDelegated.String() = %q", got)
	}
	if got := ExecutionStatus(7).String(); got != "ExecutionStatus(7)" {
		t.Errorf("ExecutionStatus(7).String() = %q", got)
	}
	if got := CategoryTeardown.String(); got != "teardown" {
		t.Errorf("CategoryTeardown.String() = %q", got)
	}
}

func TestParseVerbosity(t *testing.T) {
	tests := []struct {
		in     string
		want   Verbosity
		wantOK bool
	}{
		{"quiet", VerbosityQuiet, true},
		{"Normal", VerbosityNormal, true},
		{"VERBOSE", VerbosityVerbose, true},
		{"diagnostic", VerbosityDiagnostic, true},
		{"loud", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseVerbosity(tt.in)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ParseVerbosity(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestVerbosity_Ordering(t *testing.T) {
	if !(VerbosityQuiet < VerbosityMinimal && VerbosityMinimal < VerbosityNormal &&
		VerbosityNormal < VerbosityVerbose && VerbosityVerbose < VerbosityDiagnostic) {
		t.Error("verbosity levels are not ordered")
	}
	if DefaultVerbosity != VerbosityNormal {
		t.Errorf("DefaultVerbosity = %v, want normal", DefaultVerbosity)
	}
}
