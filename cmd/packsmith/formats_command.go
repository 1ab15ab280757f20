package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"packsmith/internal/pack"
)

func newFormatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "formats",
		Short:       "List known pack formats and their game versions",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([][]string, 0)
			for _, info := range pack.KnownFormats() {
				rows = append(rows, []string{
					fmt.Sprintf("%d", info.Format),
					info.Label,
					schemaName(info.Format),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Format", "Versions", "Schema"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft},
			))
			return nil
		},
	}
}
