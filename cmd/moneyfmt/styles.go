package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bjaus/moneyfmt"
)

func newStylesCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "styles",
		Short: "List the style ids advertised for amounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := newRegistry(cmd, root)
			if err != nil {
				return err
			}
			for _, id := range moneyfmt.StyleIDs[moneyfmt.Amount](r) {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), id); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
