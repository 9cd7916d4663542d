package config

import (
	stderrors "errors"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// AppName names the per-user configuration directory.
const AppName = "buildreport"

// ConfigDirName is the name of the project configuration directory.
const ConfigDirName = ".buildreport"

// ConfigFileName is the name of the configuration file.
const ConfigFileName = "config.json"

// ErrNoConfig is returned when no configuration file is found.
var ErrNoConfig = stderrors.New(".buildreport/config.json not found in this directory or any parent")

// userConfigHome overrides xdg.ConfigHome in tests.
var userConfigHome string

// FindConfigFrom walks up from startDir until it finds .buildreport/config.json
// and returns the path of that file.
func FindConfigFrom(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		configPath := filepath.Join(dir, ConfigDirName, ConfigFileName)
		if info, err := os.Stat(configPath); err == nil && !info.IsDir() {
			return configPath, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNoConfig
		}
		dir = parent
	}
}

// UserConfigPath returns the per-user config file location,
// $XDG_CONFIG_HOME/buildreport/config.json on Linux.
func UserConfigPath() string {
	home := userConfigHome
	if home == "" {
		home = xdg.ConfigHome
	}
	return filepath.Join(home, AppName, ConfigFileName)
}

// Discover returns the config file that applies to startDir: the nearest
// project config, else the per-user config. ok is false if neither exists.
func Discover(startDir string) (path string, ok bool) {
	if path, err := FindConfigFrom(startDir); err == nil {
		return path, true
	}
	path = UserConfigPath()
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		return path, true
	}
	return "", false
}

// Resolve loads the configuration for a run. An explicit path must exist;
// otherwise the discovered file is used, and defaults apply when none is found.
// It returns the loaded path ("" for defaults) and any warnings.
func Resolve(explicit, startDir string) (*Config, string, []string, error) {
	path := explicit
	if path == "" {
		var ok bool
		if path, ok = Discover(startDir); !ok {
			return Default(), "", nil, nil
		}
	}

	cfg, warnings, err := LoadAndValidate(path)
	if err != nil {
		return nil, path, warnings, err
	}
	return cfg, path, warnings, nil
}
