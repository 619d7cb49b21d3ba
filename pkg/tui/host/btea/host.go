// ABOUTME: Bubbletea host: runs a tui.Runtime inside a tea.Program instead of the built-in loop
// ABOUTME: Keys, resizes, ticks and client commands become messages; a lipgloss status line sits below

package btea

import (
	"strconv"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	_ "github.com/mauromedda/gridtui/internal/termfix"

	"github.com/mauromedda/gridtui/internal/eventbus"
	"github.com/mauromedda/gridtui/pkg/tui"
	"github.com/mauromedda/gridtui/pkg/tui/key"
	"github.com/mauromedda/gridtui/pkg/tui/style"
	"github.com/mauromedda/gridtui/pkg/tui/width"
)

type tickMsg time.Time

type commandMsg struct {
	cmd tui.Command
}

// Options configures the host model.
type Options struct {
	// Title is shown on the left of the status line. An empty title with
	// NoStatus set hides the line.
	Title    string
	NoStatus bool
	Notices  *eventbus.Bus[tui.Notice]
	// Bar and ErrorBar style the status line; nil keeps the defaults.
	Bar      *style.Attrs
	ErrorBar *style.Attrs
}

// status collects notices, which may arrive from handler goroutines.
type status struct {
	mu     sync.Mutex
	frames int
	err    error
}

func (s *status) record(n tui.Notice) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch n.Kind {
	case tui.NoticeRendered:
		s.frames = n.Frame
	case tui.NoticeFailed:
		s.err = n.Err
	}
}

func (s *status) read() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frames, s.err
}

// Model is a tea.Model driving rt. The runtime must not be driven by Run
// or Serve at the same time.
type Model struct {
	rt      *tui.Runtime
	opts    Options
	st      *status
	unsub   func()
	ticking bool
	cols    int
	bar     lipgloss.Style
	errBar  lipgloss.Style
}

// New wraps rt. When opts.Notices is set the model subscribes to it for
// the status line; the same bus must be given to the runtime.
func New(rt *tui.Runtime, opts Options) Model {
	m := Model{
		rt:     rt,
		opts:   opts,
		st:     &status{},
		bar:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236")),
		errBar: lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("124")),
	}
	if opts.Bar != nil {
		m.bar = opts.Bar.Lipgloss()
	}
	if opts.ErrorBar != nil {
		m.errBar = opts.ErrorBar.Lipgloss()
	}
	if opts.Notices != nil {
		m.unsub = opts.Notices.Subscribe(m.st.record)
	}
	return m
}

// Close unsubscribes from notices and stops the runtime.
func (m Model) Close() {
	if m.unsub != nil {
		m.unsub()
	}
	m.rt.Close()
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.waitCommand()
}

func (m Model) waitCommand() tea.Cmd {
	ch := m.rt.Commands()
	return func() tea.Msg {
		cmd, ok := <-ch
		if !ok {
			return nil
		}
		return commandMsg{cmd: cmd}
	}
}

func (m Model) statusRows() int {
	if m.opts.NoStatus {
		return 0
	}
	return 1
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.cols = msg.Width
		m.rt.Resize(msg.Width, max(msg.Height-m.statusRows(), 0))
	case tea.KeyMsg:
		for _, ev := range Events(msg) {
			m.rt.Dispatch(ev)
		}
	case tickMsg:
		m.ticking = false
		m.rt.Advance()
	case commandMsg:
		m.rt.Handle(msg.cmd)
		cmds = append(cmds, m.waitCommand())
	}
	m.rt.Drain()

	if m.rt.Exited() {
		return m, tea.Quit
	}
	if m.rt.Pending() && !m.ticking {
		m.ticking = true
		cmds = append(cmds, tea.Tick(m.rt.TickInterval(), func(t time.Time) tea.Msg { return tickMsg(t) }))
	}
	return m, tea.Batch(cmds...)
}

// View implements tea.Model.
func (m Model) View() string {
	if err := m.rt.Render(); err != nil {
		m.st.record(tui.Notice{Kind: tui.NoticeFailed, Err: err})
	}
	body := strings.Join(m.rt.Last(), "\n")
	if m.opts.NoStatus {
		return body
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, m.statusLine())
}

func (m Model) statusLine() string {
	frames, err := m.st.read()
	line, bar := m.opts.Title, m.bar
	if err != nil {
		line, bar = err.Error(), m.errBar
	}
	if m.cols <= 0 {
		return bar.Render(line)
	}
	right := m.focused()
	if frames > 0 {
		right = strings.TrimSpace(right + " #" + strconv.Itoa(frames))
	}
	if right != "" {
		if gap := m.cols - lipgloss.Width(line) - len(right); gap > 0 {
			line += strings.Repeat(" ", gap) + right
		}
	}
	return bar.Width(m.cols).Render(width.TruncateToWidth(line, m.cols))
}

// focused returns the id of the deepest element on the focus path that
// has one.
func (m Model) focused() string {
	path := m.rt.Document().FocusPath()
	for i := len(path) - 1; i >= 0; i-- {
		if id := path[i].Element().ID; id != "" {
			return id
		}
	}
	return ""
}

// Events converts a bubbletea key message into runtime events. A
// multi-rune message becomes one key per rune, or a single paste.
func Events(msg tea.KeyMsg) []tui.Event {
	if msg.Paste {
		return []tui.Event{tui.PasteEvent{Text: string(msg.Runes)}}
	}
	switch msg.Type {
	case tea.KeyRunes:
		out := make([]tui.Event, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			out = append(out, tui.KeyEvent{Key: key.Key{Type: key.KeyRune, Rune: r, Alt: msg.Alt}})
		}
		return out
	case tea.KeySpace:
		return []tui.Event{tui.KeyEvent{Key: key.Key{Type: key.KeyRune, Rune: ' ', Alt: msg.Alt}}}
	}
	name := msg.String()
	if rest, ok := strings.CutSuffix(name, "esc"); ok {
		name = rest + "escape"
	}
	k, ok := key.Parse(name)
	if !ok {
		return nil
	}
	return []tui.Event{tui.KeyEvent{Key: k}}
}
