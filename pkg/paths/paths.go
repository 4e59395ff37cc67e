// Package paths resolves the on-disk locations used by gestures.
//
// Locations follow the XDG Base Directory specification and can be
// overridden with environment variables:
//
//   - GESTURES_CONFIG_DIR: configuration directory (default: $XDG_CONFIG_HOME/gestures)
//   - GESTURES_STATE_DIR: state directory holding the log file (default: $XDG_STATE_HOME/gestures)
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for gestures
	EnvConfigDir = "GESTURES_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for gestures
	EnvStateDir = "GESTURES_STATE_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default file and directory names
const (
	// AppDirName is the directory name under the XDG base directories
	AppDirName = "gestures"

	// ConfigFileName is the name of the user configuration file
	ConfigFileName = "gestures.toml"

	// LogFileName is the name of the log file
	LogFileName = "gestures.log"
)

// Paths holds the resolved directories.
type Paths struct {
	configDir string
	stateDir  string
}

// New resolves directories from the current environment.
func New() *Paths {
	// xdg snapshots the environment at init.
	xdg.Reload()

	p := &Paths{
		configDir: filepath.Join(xdg.ConfigHome, AppDirName),
		stateDir:  filepath.Join(xdg.StateHome, AppDirName),
	}
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		p.configDir = expandHome(dir)
	}
	if dir := os.Getenv(EnvStateDir); dir != "" {
		p.stateDir = expandHome(dir)
	}
	return p
}

// ConfigDir returns the configuration directory.
func (p *Paths) ConfigDir() string {
	return p.configDir
}

// StateDir returns the state directory.
func (p *Paths) StateDir() string {
	return p.stateDir
}

// ConfigFilePath returns the default configuration file path.
func (p *Paths) ConfigFilePath() string {
	return filepath.Join(p.configDir, ConfigFileName)
}

// LogFilePath returns the log file path.
func (p *Paths) LogFilePath() string {
	return filepath.Join(p.stateDir, LogFileName)
}

// expandHome expands a leading ~ to the user's home directory
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to HOME env var
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}
	return filepath.Join(homeDir, path[1:])
}
