// Package buildreport provides public constants for tools that run the
// buildreport CLI and inspect its exit status.
package buildreport

// Exit codes returned by the buildreport CLI.
const (
	// ExitSuccess indicates the report was printed.
	ExitSuccess = 0

	// ExitFailure indicates a runtime failure (missing file, write failed, etc.).
	ExitFailure = 1

	// ExitConfigError indicates an invalid config file or report document.
	ExitConfigError = 2

	// ExitInputError indicates an invalid command-line argument or flag value.
	ExitInputError = 3
)
