package config

import (
	"fmt"
	"strings"

	"github.com/AndreyAkinshin/buildreport/internal/locale"
	"github.com/AndreyAkinshin/buildreport/internal/model"
	"github.com/AndreyAkinshin/buildreport/internal/output"
)

// ValidFormats lists the accepted output formats.
var ValidFormats = []string{FormatConsole, FormatMarkdown, FormatXLSX}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks a configuration for errors and returns warnings for non-fatal issues.
func Validate(cfg *Config) (warnings []string, err error) {
	if _, ok := model.ParseVerbosity(cfg.Verbosity); !ok {
		return nil, &ValidationError{
			Field:   "verbosity",
			Message: fmt.Sprintf("must be one of %s, got %q", strings.Join(model.VerbosityNames(), ", "), cfg.Verbosity),
		}
	}

	if _, ok := output.ParseColorMode(cfg.Color); !ok {
		return nil, &ValidationError{
			Field:   "color",
			Message: fmt.Sprintf(`must be "auto", "always" or "never", got %q`, cfg.Color),
		}
	}

	if err := ValidateFormat(cfg.Format); err != nil {
		return nil, err
	}

	if !locale.Recognized(cfg.Locale) {
		warnings = append(warnings, fmt.Sprintf("locale %q has no translation; using %s", cfg.Locale, cfg.Language()))
	}

	return warnings, nil
}

// ValidateFormat checks an output format name.
func ValidateFormat(format string) error {
	for _, f := range ValidFormats {
		if format == f {
			return nil
		}
	}
	return &ValidationError{
		Field:   "format",
		Message: fmt.Sprintf("must be one of %s, got %q", strings.Join(ValidFormats, ", "), format),
	}
}
