package config

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		edit  func(*Settings)
		field string
	}{
		{"defaults", func(*Settings) {}, ""},
		{"tick too small", func(s *Settings) { s.TickInterval = time.Microsecond }, "tick_interval"},
		{"tick too large", func(s *Settings) { s.TickInterval = 2 * time.Second }, "tick_interval"},
		{"workers", func(s *Settings) { s.HandlerWorkers = 65 }, "handler_workers"},
		{"profile", func(s *Settings) { s.ColorProfile = "sepia" }, "color_profile"},
		{"profile ok", func(s *Settings) { s.ColorProfile = "256" }, ""},
		{"log level", func(s *Settings) { s.Log.Level = "trace" }, "log.level"},
		{"unknown action", func(s *Settings) { s.Keybindings = map[string][]string{"fly": {"f"}} }, "keybindings"},
		{"bad key", func(s *Settings) { s.Keybindings = map[string][]string{"click": {"hyper+q"}} }, "keybindings"},
		{"good key", func(s *Settings) { s.Keybindings = map[string][]string{"click": {"space", "ctrl+o"}} }, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := Default()
			tt.edit(s)
			err := s.Validate()
			if tt.field == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("Validate() = %v, want *ValidationError", err)
			}
			if !strings.HasPrefix(ve.Field, tt.field) {
				t.Errorf("Field = %q, want prefix %q", ve.Field, tt.field)
			}
			if !strings.Contains(ve.Error(), "invalid config") {
				t.Errorf("Error() = %q", ve.Error())
			}
		})
	}
}
