// Package paths resolves configuration and data directory locations for
// the satchel CLI. Precedence is flag > config value > environment
// variable > platform default.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// CWD-relative data directory used when no override is active.
const DefaultDataDirName = ".satchel-db"

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "SATCHEL_CONFIG_DIR"
	EnvDataDir   = "SATCHEL_DATA_DIR"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/satchel (fallback ~/.config/satchel)
// macOS:   ~/Library/Application Support/satchel
// Windows: %APPDATA%/satchel
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "satchel"), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", "satchel"), nil
	default:
		// macOS and Windows use os.UserConfigDir which returns
		// ~/Library/Application Support on macOS and %APPDATA% on Windows.
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "satchel"), nil
	}
}

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > SATCHEL_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveDataDir returns the directory holding the store databases,
// following the precedence chain: flag > config value > SATCHEL_DATA_DIR
// env > $(CWD)/.satchel-db.
//
// The CWD-relative default keeps a project-local layout: each working
// directory gets its own stores unless the user points elsewhere.
func ResolveDataDir(flag, configValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configValue != "" {
		return filepath.Abs(configValue)
	}
	if env := os.Getenv(EnvDataDir); env != "" {
		return filepath.Abs(env)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultDataDirName), nil
}
