// ABOUTME: tcell backend: a tui.Source over tcell events and a tui.Sink painting frames as cells
// ABOUTME: ANSI styling in composed lines is translated into tcell styles cell by cell

package tcell

import (
	"context"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/mauromedda/gridtui/pkg/tui"
	"github.com/mauromedda/gridtui/pkg/tui/internal/ansitrack"
	"github.com/mauromedda/gridtui/pkg/tui/key"
	"github.com/mauromedda/gridtui/pkg/tui/width"
)

// Screen adapts a tcell.Screen to the runtime.
type Screen struct {
	screen tcell.Screen
	events chan tcell.Event
	quit   chan struct{}
	start  sync.Once
	stop   sync.Once

	invalid bool
	inPaste bool
	paste   strings.Builder
}

// New creates a backend on the default terminal screen.
func New() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewWithScreen(s), nil
}

// NewWithScreen wraps an existing screen, such as a simulation screen.
func NewWithScreen(s tcell.Screen) *Screen {
	return &Screen{
		screen: s,
		events: make(chan tcell.Event, 32),
		quit:   make(chan struct{}),
	}
}

// Init initializes the screen and enables bracketed paste.
func (s *Screen) Init() error {
	if err := s.screen.Init(); err != nil {
		return err
	}
	s.screen.EnablePaste()
	s.screen.HideCursor()
	return nil
}

// Fini restores the terminal. Pending Polls return io.EOF.
func (s *Screen) Fini() {
	s.stop.Do(func() {
		close(s.quit)
		s.screen.Fini()
	})
}

// Size returns the screen size in cells.
func (s *Screen) Size() (int, int) {
	return s.screen.Size()
}

// Poll implements tui.Source.
func (s *Screen) Poll(ctx context.Context) (tui.Event, error) {
	s.start.Do(func() { go s.pump() })
	for {
		select {
		case ev, ok := <-s.events:
			if !ok {
				return nil, io.EOF
			}
			if out := s.convert(ev); out != nil {
				return out, nil
			}
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

func (s *Screen) pump() {
	defer close(s.events)
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case s.events <- ev:
		case <-s.quit:
			return
		}
	}
}

// convert maps one tcell event, folding paste key runs into a single
// PasteEvent. It returns nil for events the runtime does not use.
func (s *Screen) convert(ev tcell.Event) tui.Event {
	switch e := ev.(type) {
	case *tcell.EventPaste:
		if e.Start() {
			s.inPaste = true
			s.paste.Reset()
			return nil
		}
		s.inPaste = false
		text := s.paste.String()
		s.paste.Reset()
		if text == "" {
			return nil
		}
		return tui.PasteEvent{Text: text}
	case *tcell.EventKey:
		if s.inPaste {
			switch e.Key() {
			case tcell.KeyRune:
				s.paste.WriteRune(e.Rune())
			case tcell.KeyEnter:
				s.paste.WriteByte('\n')
			case tcell.KeyTab:
				s.paste.WriteByte('\t')
			}
			return nil
		}
		k := convertKey(e)
		if k.Type == key.KeyUnknown {
			return nil
		}
		return tui.KeyEvent{Key: k}
	case *tcell.EventResize:
		w, h := e.Size()
		return tui.ResizeEvent{Width: w, Height: h}
	}
	return nil
}

var namedKeys = map[tcell.Key]key.KeyType{
	tcell.KeyUp:      key.KeyUp,
	tcell.KeyDown:    key.KeyDown,
	tcell.KeyLeft:    key.KeyLeft,
	tcell.KeyRight:   key.KeyRight,
	tcell.KeyHome:    key.KeyHome,
	tcell.KeyEnd:     key.KeyEnd,
	tcell.KeyPgUp:    key.KeyPageUp,
	tcell.KeyPgDn:    key.KeyPageDown,
	tcell.KeyDelete:  key.KeyDelete,
	tcell.KeyBacktab: key.KeyBackTab,
}

func convertKey(e *tcell.EventKey) key.Key {
	mods := e.Modifiers()
	switch k := e.Key(); {
	case k == tcell.KeyRune:
		return key.Key{
			Type: key.KeyRune,
			Rune: e.Rune(),
			Alt:  mods&tcell.ModAlt != 0,
			Ctrl: mods&tcell.ModCtrl != 0,
		}
	case k == tcell.KeyBacktab:
		return key.Key{Type: key.KeyBackTab, Shift: true}
	case k <= tcell.KeyDEL:
		// Control keys share their ASCII codes.
		out := key.ParseKey(string([]byte{byte(k)}))
		out.Alt = mods&tcell.ModAlt != 0
		return out
	default:
		t, ok := namedKeys[k]
		if !ok {
			return key.Key{Type: key.KeyUnknown}
		}
		return key.Key{Type: t, Shift: mods&tcell.ModShift != 0, Alt: mods&tcell.ModAlt != 0}
	}
}

// Invalidate implements tui.Sink.
func (s *Screen) Invalidate() {
	s.invalid = true
}

// Paint implements tui.Sink: every line is decoded into styled cells and
// the screen is shown, or fully synced after Invalidate.
func (s *Screen) Paint(lines []string) error {
	w, h := s.screen.Size()
	for y := range h {
		x := 0
		if y < len(lines) {
			x = s.paintLine(y, w, lines[y])
		}
		for ; x < w; x++ {
			s.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault)
		}
	}
	if s.invalid {
		s.invalid = false
		s.screen.Sync()
		return nil
	}
	s.screen.Show()
	return nil
}

// paintLine writes one line and returns the first column it left unset.
func (s *Screen) paintLine(y, w int, line string) int {
	c := width.Compress(line)
	var t ansitrack.Tracker
	x := 0
	for i, cell := range c.Cells {
		if x >= w {
			break
		}
		t.ProcessRun(c.Escape(i))
		st := Style(&t)
		rs := []rune(cell)
		if rs[0] == '\t' {
			rs = []rune{' '}
		}
		s.screen.SetContent(x, y, rs[0], rs[1:], st)
		x += max(runewidth.StringWidth(cell), 1)
	}
	return min(x, w)
}

// Style converts tracked SGR state into a tcell style.
func Style(t *ansitrack.Tracker) tcell.Style {
	return tcell.StyleDefault.
		Foreground(Color(t.Foreground())).
		Background(Color(t.Background())).
		Bold(t.Has(ansitrack.Bold)).
		Dim(t.Has(ansitrack.Dim)).
		Italic(t.Has(ansitrack.Italic)).
		Underline(t.Has(ansitrack.Underline)).
		Blink(t.Has(ansitrack.Blink)).
		Reverse(t.Has(ansitrack.Reverse)).
		StrikeThrough(t.Has(ansitrack.Strike))
}

// Color converts SGR color parameters ("31", "97", "38;5;200",
// "48;2;1;2;3") into a tcell color.
func Color(params string) tcell.Color {
	if params == "" {
		return tcell.ColorDefault
	}
	parts := strings.Split(params, ";")
	nums := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return tcell.ColorDefault
		}
		nums[i] = n
	}
	switch n := nums[0]; {
	case n >= 30 && n <= 37:
		return tcell.PaletteColor(n - 30)
	case n >= 40 && n <= 47:
		return tcell.PaletteColor(n - 40)
	case n >= 90 && n <= 97:
		return tcell.PaletteColor(n - 90 + 8)
	case n >= 100 && n <= 107:
		return tcell.PaletteColor(n - 100 + 8)
	case (n == 38 || n == 48) && len(nums) == 3 && nums[1] == 5:
		return tcell.PaletteColor(nums[2])
	case (n == 38 || n == 48) && len(nums) == 5 && nums[1] == 2:
		return tcell.NewRGBColor(int32(nums[2]), int32(nums[3]), int32(nums[4]))
	}
	return tcell.ColorDefault
}

var (
	_ tui.Source = (*Screen)(nil)
	_ tui.Sink   = (*Screen)(nil)
)
