// ABOUTME: Environment overrides (GRIDTUI_*) and ${VAR} expansion in path fields
// ABOUTME: Unset variables leave settings untouched; bad values are reported as errors

package config

import (
	"fmt"
	"os"
	"regexp"
	"time"
)

// Environment variables consulted by ApplyEnv.
const (
	EnvLogLevel = "GRIDTUI_LOG_LEVEL"
	EnvTick     = "GRIDTUI_TICK"
	EnvTheme    = "GRIDTUI_THEME"
	EnvColor    = "GRIDTUI_COLOR"
)

var envVarPattern = regexp.MustCompile(`\$\{(\w+)\}`)

// ApplyEnv overrides s from GRIDTUI_* variables and expands ${VAR}
// references in the theme and log file paths.
func ApplyEnv(s *Settings) error {
	if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" {
		s.Log.Level = v
	}
	if v, ok := os.LookupEnv(EnvTick); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTick, err)
		}
		s.TickInterval = d
	}
	if v, ok := os.LookupEnv(EnvTheme); ok && v != "" {
		s.Theme = v
	}
	if v, ok := os.LookupEnv(EnvColor); ok && v != "" {
		s.ColorProfile = v
	}

	s.Theme = expandEnv(s.Theme)
	s.Log.File = expandEnv(s.Log.File)
	return nil
}

// expandEnv replaces ${VAR} with os.Getenv(VAR). Unset vars become "".
func expandEnv(s string) string {
	if s == "" {
		return s
	}
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		return os.Getenv(varName)
	})
}
