package config

import (
	"encoding/json"
	stderrors "errors"
	"io/fs"
	"os"

	"github.com/AndreyAkinshin/buildreport/internal/errors"
	"github.com/AndreyAkinshin/buildreport/internal/schema"
)

// Load reads and parses a config.json configuration file.
func Load(path string) (*Config, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Configf("failed to parse config file %s: %v", path, err)
	}
	return &cfg, nil
}

// LoadAndValidate reads a config file, checks it against the JSON schema,
// applies defaults, validates, and returns warnings.
func LoadAndValidate(path string) (*Config, []string, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, nil, err
	}
	return Parse(path, data)
}

// Parse validates and decodes config data read from path.
// The path is only used in error messages.
func Parse(path string, data []byte) (*Config, []string, error) {
	if err := schema.ValidateConfig(data); err != nil {
		return nil, nil, errors.Configf("%s: %v", path, err)
	}

	cfg, unknownWarnings, err := LoadWithWarnings(path, data)
	if err != nil {
		return nil, nil, err
	}

	applyDefaults(cfg)

	validationWarnings, err := Validate(cfg)

	allWarnings := make([]string, 0, len(unknownWarnings)+len(validationWarnings))
	allWarnings = append(allWarnings, unknownWarnings...)
	allWarnings = append(allWarnings, validationWarnings...)

	if err != nil {
		return nil, allWarnings, &errors.Error{
			Kind:    errors.KindConfig,
			Message: path + ": " + err.Error(),
			Cause:   err,
		}
	}
	return cfg, allWarnings, nil
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.NotFound("config file", path)
		}
		return nil, errors.Configf("failed to read config file: %v", err)
	}
	return data, nil
}
