package main

import (
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/oakmound/cssselect"
)

func (me *Handler) newParseCommand() *cobra.Command {
	var indent bool

	cmd := &cobra.Command{
		Use:   "parse <selector>...",
		Short: "print the JSON form of each selector",
		Args:  cobra.MinimumNArgs(1),
	}

	cmd.Flags().BoolVar(&indent, "indent", false, "indent the JSON output")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		for _, arg := range args {
			list, err := cssselect.Parse(arg, me.parseOptions()...)
			if err != nil {
				return errors.Errorf("parsing %q: %w", arg, err)
			}
			var data []byte
			if indent {
				data, err = json.MarshalIndent(list, "", "  ")
			} else {
				data, err = json.Marshal(list)
			}
			if err != nil {
				return errors.Errorf("encoding %q: %w", arg, err)
			}
			zerolog.Ctx(cmd.Context()).Debug().Str("selector", arg).Int("groups", len(list)).Msg("parsed")
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
		}
		return nil
	}

	return cmd
}
