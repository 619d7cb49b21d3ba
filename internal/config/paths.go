// ABOUTME: Standard filesystem paths for gridtui configuration and logs
// ABOUTME: Global files live under the user config dir; the project file sits in the working tree

package config

import (
	"os"
	"path/filepath"
)

const (
	appName         = "gridtui"
	projectFileName = ".gridtui.yaml"
)

// GlobalDir returns the user-global config directory (~/.config/gridtui).
func GlobalDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", "."+appName)
	}
	return filepath.Join(dir, appName)
}

// GlobalConfigFile returns the path to the global settings file.
func GlobalConfigFile() string {
	return filepath.Join(GlobalDir(), "settings.yaml")
}

// ProjectConfigFile returns the path to the project-local settings file.
func ProjectConfigFile(projectRoot string) string {
	return filepath.Join(projectRoot, projectFileName)
}

// ThemesDir returns the directory searched for named theme files.
func ThemesDir() string {
	return filepath.Join(GlobalDir(), "themes")
}

// DefaultLogFile returns $XDG_STATE_HOME/gridtui/gridtui.log, falling back
// to ~/.local/state.
func DefaultLogFile() string {
	state := os.Getenv("XDG_STATE_HOME")
	if state == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(os.TempDir(), appName+".log")
		}
		state = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(state, appName, appName+".log")
}

// EnsureDir creates a directory and all parents if they don't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0o700)
}
