package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/oakmound/cssselect"
)

func (me *Handler) newStringifyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stringify [file]",
		Short: "print a JSON selector list as selector text",
		Long:  "Reads a JSON selector list from file, or from stdin when file is omitted or -.",
		Args:  cobra.MaximumNArgs(1),
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		var (
			data []byte
			err  error
		)
		if len(args) == 0 || args[0] == "-" {
			data, err = io.ReadAll(cmd.InOrStdin())
		} else {
			data, err = afero.ReadFile(me.fs, args[0])
		}
		if err != nil {
			return errors.Errorf("reading selector list: %w", err)
		}

		var list cssselect.SelectorList
		if err := json.Unmarshal(data, &list); err != nil {
			return errors.Errorf("decoding selector list: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), cssselect.Stringify(list))
		return nil
	}

	return cmd
}
