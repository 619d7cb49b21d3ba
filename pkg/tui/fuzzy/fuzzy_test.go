// ABOUTME: Tests for the fuzzy matching wrapper
// ABOUTME: Verifies ranking, misses and the identity filter for empty patterns

package fuzzy

import "testing"

func TestFind_BasicMatch(t *testing.T) {
	t.Parallel()

	matches := Find("app", []string{"apple", "banana", "application"})
	if len(matches) != 2 {
		t.Fatalf("Find(app) = %d matches; want 2", len(matches))
	}
	for _, m := range matches {
		if m.Str == "banana" {
			t.Error("banana should not match app")
		}
	}
}

func TestFilter(t *testing.T) {
	t.Parallel()

	items := []string{"counter", "todo", "login", "tabs"}
	tests := []struct {
		pattern string
		want    []int
	}{
		{"", []int{0, 1, 2, 3}},
		{"zzz", []int{}},
		{"lgn", []int{2}},
	}
	for _, tt := range tests {
		got := Filter(tt.pattern, items)
		if len(got) != len(tt.want) {
			t.Errorf("Filter(%q) = %v; want %v", tt.pattern, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("Filter(%q) = %v; want %v", tt.pattern, got, tt.want)
			}
		}
	}
}
