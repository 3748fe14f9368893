package main

import (
	"context"
	"os"
	"runtime/debug"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/oakmound/cssselect"
)

func main() {
	if err := run(); err != nil {
		println(err.Error())
		os.Exit(1)
	}
}

func run() error {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	ctx := logger.WithContext(context.Background())

	rootCmd := NewRootCommand(afero.NewOsFs())

	info, ok := debug.ReadBuildInfo()
	if !ok {
		rootCmd.Version = "unknown"
	} else {
		rootCmd.Version = info.Main.Version
	}

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		return errors.Errorf("failed to execute command: %w", err)
	}

	return nil
}

// Handler holds the state shared by every subcommand.
type Handler struct {
	fs       afero.Fs
	xml      bool
	logLevel string
}

func NewRootCommand(fs afero.Fs) *cobra.Command {
	me := &Handler{fs: fs}

	cmd := &cobra.Command{
		Use:           "cssselect",
		Short:         "parse, print and inspect CSS selectors",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVar(&me.xml, "xml", false, "keep tag and attribute names as written")
	cmd.PersistentFlags().StringVar(&me.logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		lvl, err := zerolog.ParseLevel(me.logLevel)
		if err != nil {
			return errors.Errorf("invalid log level %q: %w", me.logLevel, err)
		}
		logger := zerolog.Ctx(cmd.Context()).Level(lvl)
		cmd.SetContext(logger.WithContext(cmd.Context()))
		return nil
	}

	cmd.AddCommand(
		me.newParseCommand(),
		me.newStringifyCommand(),
		me.newCheckCommand(),
		me.newExplainCommand(),
		me.newExtractCommand(),
	)

	return cmd
}

func (me *Handler) parseOptions() []cssselect.ParseOption {
	return []cssselect.ParseOption{cssselect.WithXMLMode(me.xml)}
}
