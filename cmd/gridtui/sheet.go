// ABOUTME: sheet command: prints a theme's stylesheet as YAML or lists the built-in themes
// ABOUTME: Without an argument it prints the active theme chosen by settings

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mauromedda/gridtui/pkg/tui/theme"
)

func newSheetCmd(flags *rootFlags) *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:   "sheet [name|path]",
		Short: "Print a theme's stylesheet as YAML",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if list {
				fmt.Fprintln(out, strings.Join(theme.BuiltinNames(), "\n"))
				return nil
			}
			t := theme.Current()
			if len(args) == 1 {
				loaded, err := theme.Load(args[0])
				if err != nil {
					return err
				}
				t = loaded
			}
			data, err := theme.Marshal(t)
			if err != nil {
				return fmt.Errorf("encoding theme %s: %w", t.Name, err)
			}
			_, err = out.Write(data)
			return err
		},
	}

	cmd.Flags().BoolVar(&list, "list", false, "List the built-in themes")
	return cmd
}
