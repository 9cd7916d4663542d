package config

// Default configuration values.
const (
	DefaultVerbosity = "normal"
	DefaultColor     = "auto"
	DefaultLocale    = "en"
	DefaultFormat    = FormatConsole
)

// applyDefaults fills in default values for unset configuration fields.
func applyDefaults(cfg *Config) {
	if cfg.Verbosity == "" {
		cfg.Verbosity = DefaultVerbosity
	}
	if cfg.Color == "" {
		cfg.Color = DefaultColor
	}
	if cfg.Locale == "" {
		cfg.Locale = DefaultLocale
	}
	if cfg.Format == "" {
		cfg.Format = DefaultFormat
	}
}
