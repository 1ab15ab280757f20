package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"packsmith/internal/migrate"
)

func newConvertCommand(ctx *commandContext) *cobra.Command {
	var target int
	var outputPath string

	cmd := &cobra.Command{
		Use:   "convert <pack.zip>",
		Short: "Convert a pack to a different pack format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := ctx.loadPack(args[0])
			if err != nil {
				return err
			}

			result, err := migrate.Convert(p, target)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, warning := range result.Warnings {
				fmt.Fprintf(out, "warning: %s\n", warning)
			}
			for _, change := range result.Changes {
				fmt.Fprintln(out, change)
			}

			if len(result.Changes) == 0 {
				fmt.Fprintln(out, "Nothing to convert")
				return nil
			}

			targetPath, err := ctx.savePack(result.Package, args[0], outputPath)
			if err != nil {
				return err
			}

			ctx.recordEdit(cmd.Context(), p.Name, "convert",
				fmt.Sprintf("to format %d (%d changes)", target, len(result.Changes)))

			fmt.Fprintf(out, "Wrote %s\n", targetPath)
			return nil
		},
	}

	cmd.Flags().IntVar(&target, "to", 0, "Target pack_format")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write to this path instead of overwriting the input")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}
