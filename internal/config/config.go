// ABOUTME: Settings loading with global + project config merge
// ABOUTME: YAML files via gopkg.in/yaml.v3; environment overrides are applied last

package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults applied to zero fields after merging.
const (
	DefaultTickInterval   = 10 * time.Millisecond
	DefaultHandlerWorkers = 4
	DefaultTheme          = "default"
)

// LogSettings configures the process logger.
type LogSettings struct {
	Level string `yaml:"level,omitempty" validate:"omitempty,oneof=debug info warn error"`
	File  string `yaml:"file,omitempty"`
	Human bool   `yaml:"human,omitempty"`
}

// Settings holds the merged configuration.
type Settings struct {
	TickInterval   time.Duration       `yaml:"tick_interval,omitempty" validate:"min=1ms,max=1s"`
	HandlerWorkers int                 `yaml:"handler_workers,omitempty" validate:"min=1,max=64"`
	Theme          string              `yaml:"theme,omitempty" validate:"required"`
	ColorProfile   string              `yaml:"color_profile,omitempty" validate:"omitempty,oneof=truecolor 256 16 none"`
	Log            LogSettings         `yaml:"log,omitempty"`
	Keybindings    map[string][]string `yaml:"keybindings,omitempty" validate:"dive,keys,action,endkeys,dive,keyname"`
}

// Load reads and merges global and project-local settings, applies
// environment overrides and defaults, then validates the result.
// Project settings override global settings.
func Load(projectRoot string) (*Settings, error) {
	return LoadFiles(GlobalConfigFile(), ProjectConfigFile(projectRoot))
}

// LoadFiles is Load with explicit paths. Empty or missing paths are skipped.
func LoadFiles(globalPath, projectPath string) (*Settings, error) {
	global, err := loadFile(globalPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading global config: %w", err)
	}

	project, err := loadFile(projectPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	merged := merge(global, project)
	if err := ApplyEnv(merged); err != nil {
		return nil, err
	}
	merged.applyDefaults()
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return merged, nil
}

// Default returns validated settings with every default filled in.
func Default() *Settings {
	s := &Settings{}
	s.applyDefaults()
	return s
}

// loadFile reads Settings from a YAML file. Returns zero Settings if the
// file does not exist.
func loadFile(path string) (*Settings, error) {
	if path == "" {
		return &Settings{}, os.ErrNotExist
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return &Settings{}, err
	}
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &s, nil
}

// merge overlays project settings onto global settings.
// Non-zero project values override global values.
func merge(global, project *Settings) *Settings {
	if global == nil {
		global = &Settings{}
	}
	if project == nil {
		return global
	}

	result := *global

	if project.TickInterval != 0 {
		result.TickInterval = project.TickInterval
	}
	if project.HandlerWorkers != 0 {
		result.HandlerWorkers = project.HandlerWorkers
	}
	if project.Theme != "" {
		result.Theme = project.Theme
	}
	if project.ColorProfile != "" {
		result.ColorProfile = project.ColorProfile
	}
	if project.Log.Level != "" {
		result.Log.Level = project.Log.Level
	}
	if project.Log.File != "" {
		result.Log.File = project.Log.File
	}
	if project.Log.Human {
		result.Log.Human = true
	}

	// Keybindings merge per action
	if len(project.Keybindings) > 0 {
		kb := make(map[string][]string, len(global.Keybindings)+len(project.Keybindings))
		for k, v := range global.Keybindings {
			kb[k] = v
		}
		for k, v := range project.Keybindings {
			kb[k] = v
		}
		result.Keybindings = kb
	}

	return &result
}

func (s *Settings) applyDefaults() {
	if s.TickInterval == 0 {
		s.TickInterval = DefaultTickInterval
	}
	if s.HandlerWorkers == 0 {
		s.HandlerWorkers = DefaultHandlerWorkers
	}
	if s.Theme == "" {
		s.Theme = DefaultTheme
	}
}
