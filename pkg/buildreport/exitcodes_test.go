package buildreport_test

import (
	"testing"

	"github.com/AndreyAkinshin/buildreport/internal/errors"
	"github.com/AndreyAkinshin/buildreport/pkg/buildreport"
)

// TestExitCodeConsistency keeps the public constants in sync with the
// codes the CLI actually returns.
func TestExitCodeConsistency(t *testing.T) {
	tests := []struct {
		name     string
		public   int
		internal int
		want     int
	}{
		{"Success", buildreport.ExitSuccess, errors.ExitSuccess, 0},
		{"Failure", buildreport.ExitFailure, errors.ExitRuntimeError, 1},
		{"ConfigError", buildreport.ExitConfigError, errors.ExitConfigError, 2},
		{"InputError", buildreport.ExitInputError, errors.ExitInputError, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.public != tt.internal {
				t.Errorf("public = %d, internal = %d", tt.public, tt.internal)
			}
			if tt.public != tt.want {
				t.Errorf("buildreport.Exit%s = %d, want %d", tt.name, tt.public, tt.want)
			}
		})
	}
}

func TestExitCodesMatchErrorKinds(t *testing.T) {
	tests := []struct {
		kind errors.ErrorKind
		want int
	}{
		{errors.KindRuntime, buildreport.ExitFailure},
		{errors.KindNotFound, buildreport.ExitFailure},
		{errors.KindConfig, buildreport.ExitConfigError},
		{errors.KindValidation, buildreport.ExitConfigError},
		{errors.KindInvalidArgument, buildreport.ExitInputError},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			err := &errors.Error{Kind: tt.kind, Message: "x"}
			if got := errors.GetExitCode(err); got != tt.want {
				t.Errorf("GetExitCode(%v) = %d, want %d", tt.kind, got, tt.want)
			}
		})
	}
}
