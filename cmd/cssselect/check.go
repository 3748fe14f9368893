package main

import (
	"fmt"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
	"go.uber.org/multierr"

	"github.com/oakmound/cssselect"
)

func (me *Handler) newCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <selector>...",
		Short: "verify that each selector survives printing and parsing again",
		Args:  cobra.MinimumNArgs(1),
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		var errs error
		for _, arg := range args {
			canonical, err := me.roundTrip(arg)
			if err != nil {
				zerolog.Ctx(cmd.Context()).Warn().Err(err).Str("selector", arg).Msg("check failed")
				errs = multierr.Append(errs, err)
				continue
			}
			fmt.Fprintln(cmd.OutOrStdout(), canonical)
		}
		if errs != nil {
			return errors.Errorf("%d of %d selectors failed: %w", len(multierr.Errors(errs)), len(args), errs)
		}
		return nil
	}

	return cmd
}

// roundTrip parses selector, prints it and parses the printed text, and
// returns the printed text if both parses agree.
func (me *Handler) roundTrip(selector string) (string, error) {
	list, err := cssselect.Parse(selector, me.parseOptions()...)
	if err != nil {
		return "", errors.Errorf("parsing %q: %w", selector, err)
	}
	canonical := cssselect.Stringify(list)
	again, err := cssselect.Parse(canonical, me.parseOptions()...)
	if err != nil {
		return "", errors.Errorf("reparsing %q as %q: %w", selector, canonical, err)
	}
	if diff := cmp.Diff(list, again); diff != "" {
		return "", errors.Errorf("%q printed as %q does not read back (-want +got):\n%s", selector, canonical, diff)
	}
	return canonical, nil
}
