// ABOUTME: Tests for settings loading, merging, defaults and validation
// ABOUTME: Uses temp directories for isolated file-based tests

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestMerge(t *testing.T) {
	t.Parallel()

	global := &Settings{Theme: "dark", HandlerWorkers: 8}
	project := &Settings{Theme: "light"}

	result := merge(global, project)

	if result.Theme != "light" {
		t.Errorf("Theme = %q, want %q", result.Theme, "light")
	}
	if result.HandlerWorkers != 8 {
		t.Errorf("HandlerWorkers = %d, want 8", result.HandlerWorkers)
	}
}

func TestMerge_Nil(t *testing.T) {
	t.Parallel()

	result := merge(nil, nil)
	if result == nil {
		t.Fatal("merge(nil, nil) should return non-nil")
	}
}

func TestMerge_Keybindings(t *testing.T) {
	t.Parallel()

	global := &Settings{Keybindings: map[string][]string{"click": {"space"}, "exit": {"ctrl+q"}}}
	project := &Settings{Keybindings: map[string][]string{"exit": {"ctrl+x"}}}

	result := merge(global, project)

	if got := result.Keybindings["click"]; len(got) != 1 || got[0] != "space" {
		t.Errorf("click = %v, want [space] from global", got)
	}
	if got := result.Keybindings["exit"]; len(got) != 1 || got[0] != "ctrl+x" {
		t.Errorf("exit = %v, want [ctrl+x] from project", got)
	}
	if len(global.Keybindings["exit"]) != 1 || global.Keybindings["exit"][0] != "ctrl+q" {
		t.Error("merge mutated the global map")
	}
}

func TestLoadFile_NotExist(t *testing.T) {
	t.Parallel()

	s, err := loadFile("/nonexistent/path/settings.yaml")
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not exist error, got %v", err)
	}
	if s == nil {
		t.Error("expected non-nil default settings")
	}
}

func TestLoadFile_Invalid(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "settings.yaml", "tick_interval: [1\n")
	if _, err := loadFile(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoadFiles(t *testing.T) {
	dir := t.TempDir()
	global := writeFile(t, dir, "global.yaml", "tick_interval: 20ms\ntheme: dark\nlog:\n  level: debug\n")
	project := writeFile(t, dir, "project.yaml", "theme: mono\nhandler_workers: 2\n")

	s, err := LoadFiles(global, project)
	if err != nil {
		t.Fatalf("LoadFiles: %v", err)
	}
	if s.TickInterval != 20*time.Millisecond {
		t.Errorf("TickInterval = %v", s.TickInterval)
	}
	if s.Theme != "mono" {
		t.Errorf("Theme = %q, want mono", s.Theme)
	}
	if s.HandlerWorkers != 2 {
		t.Errorf("HandlerWorkers = %d", s.HandlerWorkers)
	}
	if s.Log.Level != "debug" {
		t.Errorf("Log.Level = %q", s.Log.Level)
	}
}

func TestLoadFiles_Defaults(t *testing.T) {
	s, err := LoadFiles("", filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadFiles: %v", err)
	}
	want := Default()
	if s.TickInterval != want.TickInterval || s.HandlerWorkers != want.HandlerWorkers || s.Theme != want.Theme {
		t.Errorf("got %+v, want defaults %+v", s, want)
	}
}

func TestLoadFiles_ValidationError(t *testing.T) {
	project := writeFile(t, t.TempDir(), "p.yaml", "handler_workers: 500\n")

	_, err := LoadFiles("", project)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("err = %v, want *ValidationError", err)
	}
	if ve.Field != "handler_workers" {
		t.Errorf("Field = %q", ve.Field)
	}
}
