// ABOUTME: Tests for the tcell backend against tcell's simulation screen
// ABOUTME: Covers key and paste conversion, SGR to cell style translation and painting

package tcell

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mauromedda/gridtui/pkg/tui"
	"github.com/mauromedda/gridtui/pkg/tui/internal/ansitrack"
	"github.com/mauromedda/gridtui/pkg/tui/key"
)

func newSim(t *testing.T, w, h int) (*Screen, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	s := NewWithScreen(sim)
	require.NoError(t, s.Init())
	sim.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s, sim
}

func poll(t *testing.T, s *Screen) tui.Event {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	for {
		ev, err := s.Poll(ctx)
		require.NoError(t, err)
		if _, ok := ev.(tui.ResizeEvent); ok {
			continue
		}
		return ev
	}
}

func TestColor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want tcell.Color
	}{
		{"", tcell.ColorDefault},
		{"31", tcell.PaletteColor(1)},
		{"44", tcell.PaletteColor(4)},
		{"97", tcell.PaletteColor(15)},
		{"38;5;200", tcell.PaletteColor(200)},
		{"48;2;1;2;3", tcell.NewRGBColor(1, 2, 3)},
		{"bogus", tcell.ColorDefault},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Color(tt.in), "Color(%q)", tt.in)
	}
}

func TestStyle_Attributes(t *testing.T) {
	t.Parallel()

	var tr ansitrack.Tracker
	tr.Process("\x1b[1;4;31m")
	fg, _, attrs := Style(&tr).Decompose()
	assert.Equal(t, tcell.PaletteColor(1), fg)
	assert.NotZero(t, attrs&tcell.AttrBold)
	assert.Zero(t, attrs&tcell.AttrItalic)
}

func TestPaint_CellsAndStyles(t *testing.T) {
	t.Parallel()

	s, sim := newSim(t, 6, 2)
	require.NoError(t, s.Paint([]string{"a\x1b[31mbc\x1b[0md"}))

	var got []rune
	for x := range 6 {
		r, _, _, _ := sim.GetContent(x, 0)
		got = append(got, r)
	}
	assert.Equal(t, "abcd  ", string(got))

	_, _, st, _ := sim.GetContent(1, 0)
	fg, _, _ := st.Decompose()
	assert.Equal(t, tcell.PaletteColor(1), fg)

	_, _, st, _ = sim.GetContent(3, 0)
	fg, _, _ = st.Decompose()
	assert.Equal(t, tcell.ColorDefault, fg, "reset ends the color")

	r, _, _, _ := sim.GetContent(0, 1)
	assert.Equal(t, ' ', r, "missing rows are blanked")
}

func TestPoll_Keys(t *testing.T) {
	t.Parallel()

	s, sim := newSim(t, 4, 1)
	sim.InjectKey(tcell.KeyUp, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'x', tcell.ModAlt)
	sim.InjectKey(tcell.KeyCtrlK, 0, tcell.ModCtrl)
	sim.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)

	want := []string{"up", "alt+x", "ctrl+k", "enter"}
	for _, w := range want {
		ev := poll(t, s)
		ke, ok := ev.(tui.KeyEvent)
		require.True(t, ok, "got %T", ev)
		assert.Equal(t, w, ke.Key.Name())
	}
}

func TestConvert_PasteRun(t *testing.T) {
	t.Parallel()

	s := NewWithScreen(tcell.NewSimulationScreen("UTF-8"))
	assert.Nil(t, s.convert(tcell.NewEventPaste(true)))
	assert.Nil(t, s.convert(tcell.NewEventKey(tcell.KeyRune, 'h', tcell.ModNone)))
	assert.Nil(t, s.convert(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)))
	assert.Nil(t, s.convert(tcell.NewEventKey(tcell.KeyRune, 'i', tcell.ModNone)))
	ev := s.convert(tcell.NewEventPaste(false))
	assert.Equal(t, tui.PasteEvent{Text: "h\ni"}, ev)

	k := s.convert(tcell.NewEventKey(tcell.KeyBacktab, 0, tcell.ModShift))
	assert.Equal(t, tui.KeyEvent{Key: key.Key{Type: key.KeyBackTab, Shift: true}}, k)
}

func TestPoll_EOFAfterFini(t *testing.T) {
	t.Parallel()

	sim := tcell.NewSimulationScreen("UTF-8")
	s := NewWithScreen(sim)
	require.NoError(t, s.Init())
	s.Fini()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	for {
		_, err := s.Poll(ctx)
		if err != nil {
			assert.ErrorIs(t, err, io.EOF)
			return
		}
	}
}
