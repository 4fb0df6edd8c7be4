package main

import (
	"errors"
	"fmt"
	"maps"

	"github.com/spf13/cobra"

	"github.com/bjaus/moneyfmt"
)

type formatFlags struct {
	style   string
	locales []string
	attrs   map[string]string
	config  string
	profile string
}

func newFormatCmd(root *rootFlags) *cobra.Command {
	flags := &formatFlags{}
	cmd := &cobra.Command{
		Use:   "format AMOUNT CURRENCY",
		Short: "Format a decimal amount in an ISO 4217 currency",
		Example: `  moneyfmt format 1234.56 EUR --locale de-DE
  moneyfmt format -- -42 USD --style accounting --attr width=12
  moneyfmt format 99.90 CHF --config styles.yaml --profile invoice`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(cmd, root, flags, args)
		},
	}
	cmd.Flags().StringVarP(&flags.style, "style", "s", moneyfmt.StyleDefault, "style id")
	cmd.Flags().StringSliceVarP(&flags.locales, "locale", "l", nil, "locale tags, most preferred first")
	cmd.Flags().StringToStringVarP(&flags.attrs, "attr", "a", nil, "style attributes as key=value")
	cmd.Flags().StringVarP(&flags.config, "config", "c", "", "YAML file with named style profiles")
	cmd.Flags().StringVarP(&flags.profile, "profile", "p", "", "profile to use from --config")
	return cmd
}

func runFormat(cmd *cobra.Command, root *rootFlags, flags *formatFlags, args []string) error {
	style, err := buildStyle(cmd, flags)
	if err != nil {
		return err
	}
	amount, err := moneyfmt.ParseAmount(args[0], args[1])
	if err != nil {
		return err
	}
	r, err := newRegistry(cmd, root)
	if err != nil {
		return err
	}
	f, err := moneyfmt.Lookup[moneyfmt.Amount](r, style)
	if err != nil {
		return err
	}
	return moneyfmt.Write(cmd.OutOrStdout(), f, amount)
}

// buildStyle merges a profile with the command line. Flag locales are
// preferred over profile locales and flag attributes override profile ones.
func buildStyle(cmd *cobra.Command, flags *formatFlags) (*moneyfmt.Style, error) {
	id := flags.style
	locales := flags.locales
	attrs := map[string]string{}

	if flags.profile != "" {
		if flags.config == "" {
			return nil, errors.New("--profile requires --config")
		}
		base, err := loadProfile(flags.config, flags.profile)
		if err != nil {
			return nil, err
		}
		if !cmd.Flags().Changed("style") {
			id = base.ID()
		}
		locales = append(locales, base.Locales()...)
		attrs = base.Attributes()
	} else if flags.config != "" {
		return nil, fmt.Errorf("--config %s given without --profile", flags.config)
	}
	maps.Copy(attrs, flags.attrs)

	return moneyfmt.NewStyle(id, moneyfmt.WithLocales(locales...), moneyfmt.WithAttributes(attrs)), nil
}
