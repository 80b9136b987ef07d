package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/homeboxlabs/labelgen/domain/assetlist"
)

func expandCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "expand <assets>",
		Short: "Expand an asset selection without contacting the server",
		Long: `Expand parses an asset selection and prints every asset ID it denotes,
one per line, in selection order.

The selection is a comma-separated list of asset IDs ("013-005") and
inclusive ranges ("012-000--012-010").`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := assetlist.Parse(args[0])
			if err != nil {
				return err
			}
			if err := list.Validate(); err != nil {
				return err
			}
			for _, id := range list.Strings() {
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}
			return nil
		},
	}
}
