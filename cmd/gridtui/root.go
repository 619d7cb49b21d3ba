// ABOUTME: Root command: persistent flags, settings loading, logger, color profile and theme setup
// ABOUTME: Every subcommand runs after setup and reads the loaded settings from rootFlags

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/mauromedda/gridtui/internal/config"
	"github.com/mauromedda/gridtui/internal/log"
	"github.com/mauromedda/gridtui/internal/termfix"
	"github.com/mauromedda/gridtui/pkg/tui/style"
	"github.com/mauromedda/gridtui/pkg/tui/theme"
)

type rootFlags struct {
	configPath string
	logFile    string
	verbose    bool

	settings *config.Settings
	logOut   io.Closer
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "gridtui",
		Short:         "gridtui runs widget trees in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return flags.setup(cmd.ErrOrStderr())
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return flags.teardown()
		},
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Project settings file (default ./.gridtui.yaml)")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Log destination, - for stderr (default under the state directory)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(newDemoCmd(flags))
	cmd.AddCommand(newSheetCmd(flags))
	cmd.AddCommand(newKeysCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func (f *rootFlags) setup(stderr io.Writer) error {
	project := f.configPath
	if project == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("resolving working directory: %w", err)
		}
		project = config.ProjectConfigFile(cwd)
	}
	settings, err := config.LoadFiles(config.GlobalConfigFile(), project)
	if err != nil {
		return err
	}
	if f.verbose {
		settings.Log.Level = "debug"
	}
	if err := f.setupLog(settings.Log, stderr); err != nil {
		return err
	}

	style.SetProfile(colorProfile(settings.ColorProfile, os.Stdout))

	t, err := theme.Load(settings.Theme)
	if err != nil {
		return err
	}
	theme.Set(t)
	f.settings = settings
	log.Debug("gridtui: theme %s, profile %d", t.Name, style.Profile())
	return nil
}

func (f *rootFlags) setupLog(ls config.LogSettings, stderr io.Writer) error {
	path := f.logFile
	if path == "" {
		path = ls.File
	}
	if path == "" {
		path = config.DefaultLogFile()
	}
	if path == "-" {
		return log.Setup(log.Options{Level: ls.Level, Human: true, Writer: stderr})
	}
	if err := config.EnsureDir(filepath.Dir(path)); err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}
	out, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	f.logOut = out
	return log.Setup(log.Options{Level: ls.Level, Human: ls.Human, Writer: out})
}

func (f *rootFlags) teardown() error {
	if f.logOut == nil {
		return nil
	}
	err := f.logOut.Close()
	f.logOut = nil
	return err
}

// colorProfile maps a configured profile name to termenv, detecting it
// from w when unset.
func colorProfile(name string, w io.Writer) termenv.Profile {
	switch name {
	case "truecolor":
		return termenv.TrueColor
	case "256":
		return termenv.ANSI256
	case "16":
		return termenv.ANSI
	case "none":
		return termenv.Ascii
	}
	return termfix.Profile(w)
}
