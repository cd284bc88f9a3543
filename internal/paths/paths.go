// Package paths resolves the farmstock configuration and data directories.
//
// Precedence, highest first:
//
//	config: --config-dir flag, FARMSTOCK_CONFIG_DIR, platform config dir
//	data:   --data-dir flag, data_dir in config.yaml, FARMSTOCK_DATA_DIR, $(CWD)/.farmstock-db
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// AppName is the directory name used under platform config and data roots.
const AppName = "farmstock"

// DefaultDataDirName is the CWD-relative data directory used when nothing
// else is configured.
const DefaultDataDirName = ".farmstock-db"

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "FARMSTOCK_CONFIG_DIR"
	EnvDataDir   = "FARMSTOCK_DATA_DIR"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// xdgDir returns $<xdgVar>/farmstock on Linux, falling back to
// ~/<fallback...>/farmstock. Other platforms use os.UserConfigDir.
func xdgDir(xdgVar string, fallback ...string) (string, error) {
	if runtime.GOOS != "linux" {
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, AppName), nil
	}
	if xdg := os.Getenv(xdgVar); xdg != "" {
		return filepath.Join(xdg, AppName), nil
	}
	home, err := platformDir.homeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(append(append([]string{home}, fallback...), AppName)...), nil
}

// DefaultConfigDir returns the platform configuration directory:
// $XDG_CONFIG_HOME/farmstock (~/.config/farmstock) on Linux.
func DefaultConfigDir() (string, error) {
	return xdgDir("XDG_CONFIG_HOME", ".config")
}

// firstAbs returns the absolute form of the first non-empty candidate.
func firstAbs(candidates ...string) (string, bool, error) {
	for _, c := range candidates {
		if c != "" {
			abs, err := filepath.Abs(c)
			return abs, true, err
		}
	}
	return "", false, nil
}

// ResolveConfigDir returns the configuration directory: flag, then
// FARMSTOCK_CONFIG_DIR, then DefaultConfigDir.
func ResolveConfigDir(flag string) (string, error) {
	if dir, ok, err := firstAbs(flag, os.Getenv(EnvConfigDir)); ok {
		return dir, err
	}
	return DefaultConfigDir()
}

// ResolveDataDir returns the data directory: flag, then the config.yaml
// value, then FARMSTOCK_DATA_DIR, then $(CWD)/.farmstock-db.
func ResolveDataDir(flag, configYAMLValue string) (string, error) {
	if dir, ok, err := firstAbs(flag, configYAMLValue, os.Getenv(EnvDataDir)); ok {
		return dir, err
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultDataDirName), nil
}
