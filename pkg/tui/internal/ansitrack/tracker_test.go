// ABOUTME: Tests for the SGR state machine tracker
// ABOUTME: Covers attributes, extended colors, partial resets and escape runs

package ansitrack

import "testing"

func TestTracker_Process(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		seqs []string
		want string
	}{
		{"bold", []string{"\x1b[1m"}, "\x1b[1m"},
		{"fg", []string{"\x1b[31m"}, "\x1b[31m"},
		{"combined", []string{"\x1b[1;4;32;44m"}, "\x1b[1;4;32;44m"},
		{"reset", []string{"\x1b[31m", "\x1b[0m"}, ""},
		{"bare reset", []string{"\x1b[1m", "\x1b[m"}, ""},
		{"truecolor then bold", []string{"\x1b[38;2;1;2;3;1m"}, "\x1b[1;38;2;1;2;3m"},
		{"256 bg", []string{"\x1b[48;5;196m"}, "\x1b[48;5;196m"},
		{"default fg", []string{"\x1b[31;44m", "\x1b[39m"}, "\x1b[44m"},
		{"bold off", []string{"\x1b[1;3m", "\x1b[22m"}, "\x1b[3m"},
		{"underline off", []string{"\x1b[4m", "\x1b[24m"}, ""},
		{"non sgr ignored", []string{"\x1b[2J", "\x1b[H"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var tr Tracker
			for _, s := range tt.seqs {
				tr.Process(s)
			}
			if got := tr.Restore(); got != tt.want {
				t.Errorf("Restore() = %q, want %q", got, tt.want)
			}
			if tr.IsActive() != (tt.want != "") {
				t.Errorf("IsActive() = %v, want %v", tr.IsActive(), tt.want != "")
			}
		})
	}
}

func TestTracker_ProcessRun(t *testing.T) {
	t.Parallel()

	var tr Tracker
	tr.ProcessRun("\x1b[31m\x1b]8;;x\x07\x1b[1m")
	if got := tr.Restore(); got != "\x1b[1;31m" {
		t.Errorf("Restore() = %q, want %q", got, "\x1b[1;31m")
	}
	tr.ProcessRun("\x1b[0m")
	if tr.IsActive() {
		t.Error("expected inactive after reset run")
	}
}

func TestTracker_CopyIsSnapshot(t *testing.T) {
	t.Parallel()

	var tr Tracker
	tr.Process("\x1b[32m")
	snap := tr
	tr.Process("\x1b[0m")
	if snap.Restore() != "\x1b[32m" {
		t.Errorf("snapshot changed: %q", snap.Restore())
	}
}
