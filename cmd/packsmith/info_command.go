package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"packsmith/internal/analyze"
	"packsmith/internal/pack"
)

func newInfoCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "info <pack.zip>",
		Short: "Show pack metadata and a content summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := ctx.loadPack(args[0])
			if err != nil {
				return err
			}

			meta, hasMeta := pack.ReadMetadata(p)
			stats := analyze.Collect(p)

			if jsonOutput {
				payload := map[string]any{
					"name":        p.Name,
					"total_files": stats.TotalFiles,
					"total_size":  stats.TotalSize,
				}
				if hasMeta {
					payload["pack_format"] = meta.Format
					payload["description"] = meta.Description
					payload["modern"] = pack.IsModern(meta.Format)
					if label, ok := pack.FormatLabel(meta.Format); ok {
						payload["game_versions"] = label
					}
				}
				return writeJSON(cmd, payload)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Name:        %s\n", p.Name)
			if hasMeta {
				fmt.Fprintf(out, "Format:      %d%s\n", meta.Format, formatSuffix(meta.Format))
				fmt.Fprintf(out, "Description: %s\n", meta.Description)
				fmt.Fprintf(out, "Schema:      %s\n", schemaName(meta.Format))
			} else {
				fmt.Fprintln(out, "Format:      missing pack.mcmeta")
			}
			fmt.Fprintf(out, "Files:       %d\n", stats.TotalFiles)
			fmt.Fprintf(out, "Size:        %s\n", humanize.IBytes(uint64(stats.TotalSize)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit machine-readable JSON")
	return cmd
}

func formatSuffix(format int) string {
	if label, ok := pack.FormatLabel(format); ok {
		return fmt.Sprintf(" (%s)", label)
	}
	return ""
}

func schemaName(format int) string {
	if pack.IsModern(format) {
		return "modern item definitions"
	}
	return "legacy model overrides"
}
