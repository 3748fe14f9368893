package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/oakmound/cssselect"
)

func (me *Handler) newExplainCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explain <selector>",
		Short: "describe each part of a selector",
		Args:  cobra.ExactArgs(1),
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		list, err := cssselect.Parse(args[0], me.parseOptions()...)
		if err != nil {
			return errors.Errorf("parsing %q: %w", args[0], err)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		for i, group := range list {
			fmt.Fprintf(w, "group %d\t%s\n", i, cssselect.Stringify(cssselect.SelectorList{group}))
			for _, tok := range group {
				text := strings.TrimSpace(cssselect.Stringify(cssselect.SelectorList{{tok}}))
				if text == "" {
					text = "' '"
				}
				meaning := "no Selectors Level 3 equivalent"
				if info, ok := cssselect.Describe(tok); ok {
					meaning = info.Described + ": " + info.Meaning
				}
				fmt.Fprintf(w, "  %s\t%s\t%s\n", text, tok.Type(), meaning)
			}
		}
		if err := w.Flush(); err != nil {
			return errors.Errorf("writing explanation: %w", err)
		}
		return nil
	}

	return cmd
}
