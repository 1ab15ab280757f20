package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"packsmith/internal/pack"
)

func newSettingsCommand(ctx *commandContext) *cobra.Command {
	var format int
	var description string
	var outputPath string

	cmd := &cobra.Command{
		Use:   "settings <pack.zip>",
		Short: "Update pack.mcmeta format and description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := ctx.loadPack(args[0])
			if err != nil {
				return err
			}

			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			settings := pack.Settings{Format: format, Description: description}
			if !cmd.Flags().Changed("format") {
				if meta, ok := pack.ReadMetadata(p); ok {
					settings.Format = meta.Format
				} else {
					settings.Format = cfg.Editor.PackFormat
				}
			}
			if !cmd.Flags().Changed("description") {
				if meta, ok := pack.ReadMetadata(p); ok && meta.Description != "" {
					settings.Description = meta.Description
				} else {
					settings.Description = cfg.Editor.Description
				}
			}

			updated, err := pack.ApplySettings(p, settings)
			if err != nil {
				return err
			}

			target, err := ctx.savePack(updated, args[0], outputPath)
			if err != nil {
				return err
			}

			ctx.recordEdit(cmd.Context(), p.Name, "settings",
				fmt.Sprintf("format %d, description %q", settings.Format, settings.Description))

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (format %d)\n", target, settings.Format)
			return nil
		},
	}

	cmd.Flags().IntVar(&format, "format", 0, "pack_format to declare")
	cmd.Flags().StringVar(&description, "description", "", "Pack description")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write to this path instead of overwriting the input")
	return cmd
}
