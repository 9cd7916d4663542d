package model

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Verbosity is the ordered output detail level of a run.
type Verbosity int

const (
	VerbosityQuiet Verbosity = iota
	VerbosityMinimal
	VerbosityNormal
	VerbosityVerbose
	VerbosityDiagnostic
)

// DefaultVerbosity is used when nothing is configured.
const DefaultVerbosity = VerbosityNormal

var verbosityNames = []string{"quiet", "minimal", "normal", "verbose", "diagnostic"}

func (v Verbosity) String() string {
	if v < 0 || int(v) >= len(verbosityNames) {
		return fmt.Sprintf("Verbosity(%d)", int(v))
	}
	return verbosityNames[v]
}

// ParseVerbosity parses a verbosity name case-insensitively.
func ParseVerbosity(s string) (Verbosity, bool) {
	i := lo.IndexOf(verbosityNames, strings.ToLower(strings.TrimSpace(s)))
	if i < 0 {
		return 0, false
	}
	return Verbosity(i), true
}

// VerbosityNames returns the accepted verbosity names in ascending order.
func VerbosityNames() []string {
	return append([]string(nil), verbosityNames...)
}
