// ABOUTME: Tests for Compress: escape anchoring, grapheme cells and exact round trip
// ABOUTME: Round trip must hold for arbitrary interleavings of escapes and text

package width

import (
	"math/rand"
	"strings"
	"testing"
)

func TestCompress_AnchorsRuns(t *testing.T) {
	t.Parallel()
	c := Compress("\x1b[31m\x1b[1mab\x1b[0m")
	if got := c.Plain(); got != "ab" {
		t.Errorf("Plain() = %q; want %q", got, "ab")
	}
	if got := c.Escape(0); got != "\x1b[31m\x1b[1m" {
		t.Errorf("Escape(0) = %q; want merged run", got)
	}
	if got := c.Trailing(); got != "\x1b[0m" {
		t.Errorf("Trailing() = %q; want reset", got)
	}
	if _, ok := c.Escapes[1]; ok {
		t.Error("no run should be anchored at 1")
	}
}

func TestCompress_GraphemeCells(t *testing.T) {
	t.Parallel()
	c := Compress("éx👍🏽")
	if c.Len() != 3 {
		t.Fatalf("Len() = %d; want 3 (%q)", c.Len(), c.Cells)
	}
	if c.Cells[0] != "é" {
		t.Errorf("Cells[0] = %q; want combined cluster", c.Cells[0])
	}
}

func TestCompress_RoundTrip(t *testing.T) {
	t.Parallel()
	fixed := []string{
		"",
		"plain",
		"\x1b[0m",
		"a\x1b[31mb\x1b[0m",
		"\x1b]8;;http://x\x1b\\link\x1b]8;;\x1b\\",
		"\t\x1b[4m\t\x1b[24m",
		"日本\x1b[7m語\x1b[27m",
	}
	for _, s := range fixed {
		if got := Compress(s).String(); got != s {
			t.Errorf("round trip %q = %q", s, got)
		}
	}

	r := rand.New(rand.NewSource(7))
	parts := []string{"a", "Z", " ", "\t", "é", "界", "\x1b[31m", "\x1b[0m", "\x1b[38;2;1;2;3m", "\x1b[1;4m", "\x1b7"}
	for n := 0; n < 200; n++ {
		var b strings.Builder
		for k := r.Intn(20); k > 0; k-- {
			b.WriteString(parts[r.Intn(len(parts))])
		}
		s := b.String()
		c := Compress(s)
		if got := c.String(); got != s {
			t.Fatalf("round trip %q = %q", s, got)
		}
		if c.Plain() != StripANSI(s) {
			t.Fatalf("Plain(%q) = %q; want %q", s, c.Plain(), StripANSI(s))
		}
	}
}
