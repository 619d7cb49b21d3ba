// ABOUTME: demo command: builds a demo tree and runs it on the chosen backend
// ABOUTME: Backends are the built-in terminal loop, tcell, or a bubbletea program

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mauromedda/gridtui/internal/config"
	"github.com/mauromedda/gridtui/internal/eventbus"
	"github.com/mauromedda/gridtui/internal/keybindings"
	"github.com/mauromedda/gridtui/internal/log"
	"github.com/mauromedda/gridtui/pkg/tui"
	tcellbackend "github.com/mauromedda/gridtui/pkg/tui/backend/tcell"
	"github.com/mauromedda/gridtui/pkg/tui/host/btea"
	"github.com/mauromedda/gridtui/pkg/tui/input"
	"github.com/mauromedda/gridtui/pkg/tui/style"
	"github.com/mauromedda/gridtui/pkg/tui/terminal"
	"github.com/mauromedda/gridtui/pkg/tui/theme"
)

const (
	backendTerm  = "term"
	backendTcell = "tcell"
	backendTea   = "bubbletea"
)

func newDemoCmd(flags *rootFlags) *cobra.Command {
	var backend string

	cmd := &cobra.Command{
		Use:       "demo <" + strings.Join(demoNames(), "|") + ">",
		Short:     "Run a demo widget tree",
		Args:      cobra.ExactArgs(1),
		ValidArgs: demoNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			build, ok := demos[args[0]]
			if !ok {
				return fmt.Errorf("unknown demo %q (available: %s)", args[0], strings.Join(demoNames(), ", "))
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runDemo(ctx, flags.settings, backend, args[0], build())
		},
	}

	cmd.Flags().StringVar(&backend, "backend", backendTerm, "Backend: term, tcell or bubbletea")
	return cmd
}

func runDemo(ctx context.Context, settings *config.Settings, backend, name string, root tui.Widget) error {
	notices := eventbus.New[tui.Notice]()
	unsub := notices.Subscribe(func(n tui.Notice) {
		if n.Kind == tui.NoticeFailed {
			log.Error("demo %s: %v", name, n.Err)
		}
	})
	defer unsub()

	opts := tui.Options{
		TickInterval:   settings.TickInterval,
		HandlerWorkers: settings.HandlerWorkers,
		Sheet:          theme.Current().Sheet,
		Notices:        notices,
	}
	keybindings.New(settings.Bindings()).Configure(&opts)
	rt := tui.New(root, opts)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go watchTheme(ctx, settings.Theme, rt.Client())

	log.Info("demo %s: starting on %s backend", name, backend)
	var err error
	switch backend {
	case backendTerm:
		pt := terminal.NewProcessTerminal()
		if !pt.IsTerminal() {
			return fmt.Errorf("demo %s: %w", name, terminal.ErrNotTerminal)
		}
		defer terminal.RestoreOnPanic(pt)
		src := input.NewReader(os.Stdin)
		defer src.Close()
		err = rt.Run(ctx, src, pt)
	case backendTcell:
		scr, nerr := tcellbackend.New()
		if nerr != nil {
			return fmt.Errorf("demo %s: opening screen: %w", name, nerr)
		}
		if nerr := scr.Init(); nerr != nil {
			return fmt.Errorf("demo %s: initializing screen: %w", name, nerr)
		}
		defer scr.Fini()
		rt.Resize(scr.Size())
		err = rt.Serve(ctx, scr, scr)
	case backendTea:
		m := btea.New(rt, btea.Options{
			Title:    "gridtui " + name,
			Notices:  notices,
			Bar:      classAttrs(theme.ClassStatus),
			ErrorBar: classAttrs(theme.ClassError),
		})
		defer m.Close()
		_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			err = nil
		}
	default:
		return fmt.Errorf("unknown backend %q", backend)
	}

	if errors.Is(err, context.Canceled) {
		err = nil
	}
	log.Info("demo %s: stopped", name)
	return err
}

// classAttrs resolves the active theme's base rule for class, or nil when
// the theme does not style it.
func classAttrs(class string) *style.Attrs {
	rule, ok := theme.Current().Sheet[class]
	if !ok {
		return nil
	}
	a := style.Style{Base: rule.Layer}.Resolve(style.Idle)
	return &a
}

// watchTheme reloads a file-based theme when it changes and pushes the
// new sheet to the runtime. Built-in themes are not watched.
func watchTheme(ctx context.Context, nameOrPath string, c *tui.Client) {
	if theme.Builtin(nameOrPath) != nil {
		return
	}
	w := config.NewWatcher([]string{nameOrPath}, func(changed []string) {
		t, err := theme.LoadFile(changed[0])
		if err != nil {
			log.Warn("theme reload: %v", err)
			return
		}
		theme.Set(t)
		if err := c.SetSheet(t.Sheet); err != nil && !errors.Is(err, tui.ErrChannelClosed) {
			log.Warn("theme reload: %v", err)
		}
	})
	w.Run(ctx)
}
