package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/bjaus/moneyfmt"
)

type rootFlags struct {
	verbose bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	cmd := &cobra.Command{
		Use:          "moneyfmt",
		Short:        "Format monetary amounts",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "log formatter resolution to stderr")
	cmd.AddCommand(newFormatCmd(flags), newStylesCmd(flags))
	return cmd
}

func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).Level(level).With().Timestamp().Logger()
}

// newRegistry returns a registry holding the built-in factories.
func newRegistry(cmd *cobra.Command, flags *rootFlags) (*moneyfmt.Registry, error) {
	r := moneyfmt.NewRegistry(moneyfmt.WithLogger(newLogger(cmd.ErrOrStderr(), flags.verbose)))
	if err := moneyfmt.Register[moneyfmt.Amount](r, moneyfmt.NewAmountFactory(), moneyfmt.WithName("amount")); err != nil {
		return nil, fmt.Errorf("register amount factory: %w", err)
	}
	return r, nil
}

func loadProfile(path, name string) (*moneyfmt.Style, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer func() { _ = f.Close() }()
	styles, err := moneyfmt.LoadStyles(f)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	style, ok := styles[name]
	if !ok {
		return nil, fmt.Errorf("profile %q not found in %s", name, path)
	}
	return style, nil
}
