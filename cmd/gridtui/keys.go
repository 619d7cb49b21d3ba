// ABOUTME: keys command: shows the effective key bindings and any conflicts between them
// ABOUTME: --template prints the defaults as YAML ready to paste into settings

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mauromedda/gridtui/internal/keybindings"
)

func newKeysCmd(flags *rootFlags) *cobra.Command {
	var template bool

	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Show the effective key bindings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			kb := flags.settings.Bindings()
			if template {
				doc, err := kb.ExportTemplate()
				if err != nil {
					return err
				}
				fmt.Fprint(out, doc)
				return nil
			}

			m := keybindings.New(kb)
			fmt.Fprint(out, m.FormatAll())
			for _, c := range m.Conflicts() {
				fmt.Fprintf(out, "conflict %s\n", c)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&template, "template", false, "Print a settings template with the bindings")
	return cmd
}
