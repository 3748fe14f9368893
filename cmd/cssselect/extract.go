package main

import (
	"fmt"
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
	"go.uber.org/multierr"

	"github.com/oakmound/cssselect"
)

func (me *Handler) newExtractCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract <glob>...",
		Short: "list the selectors of stylesheets and HTML documents",
		Long: "Expands each glob (** matches any number of directories) and prints every selector " +
			"found in .css files and in the <style> elements of .html files, one per line.",
		Args: cobra.MinimumNArgs(1),
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		logger := zerolog.Ctx(cmd.Context())
		fsys := afero.NewIOFS(me.fs)

		var errs error
		for _, pattern := range args {
			matches, err := doublestar.Glob(fsys, pattern)
			if err != nil {
				return errors.Errorf("expanding %q: %w", pattern, err)
			}
			if len(matches) == 0 {
				logger.Warn().Str("pattern", pattern).Msg("no files matched")
			}
			for _, file := range matches {
				sheet, err := me.extractFile(file)
				if err != nil {
					logger.Warn().Err(err).Str("file", file).Msg("selector errors")
					errs = multierr.Append(errs, errors.Errorf("%s: %w", file, err))
				}
				for _, group := range sheet.Selectors() {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", file, cssselect.Stringify(cssselect.SelectorList{group}))
				}
			}
		}
		return errs
	}

	return cmd
}

func (me *Handler) extractFile(file string) (cssselect.Stylesheet, error) {
	switch strings.ToLower(path.Ext(file)) {
	case ".css":
		data, err := afero.ReadFile(me.fs, file)
		if err != nil {
			return cssselect.Stylesheet{}, errors.Errorf("reading: %w", err)
		}
		return cssselect.ParseStylesheet(string(data), me.parseOptions()...)
	case ".html", ".htm":
		f, err := me.fs.Open(file)
		if err != nil {
			return cssselect.Stylesheet{}, errors.Errorf("opening: %w", err)
		}
		defer f.Close()
		return cssselect.ParseHTMLStylesheets(f, me.parseOptions()...)
	}
	return cssselect.Stylesheet{}, nil
}
