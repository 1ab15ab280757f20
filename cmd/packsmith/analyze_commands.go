package main

import (
	"fmt"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"packsmith/internal/analyze"
)

func newStatsCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "stats <pack.zip>",
		Short: "Show file counts, sizes, and largest assets",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := ctx.loadPack(args[0])
			if err != nil {
				return err
			}
			stats := analyze.Collect(p)

			if jsonOutput {
				return writeJSON(cmd, stats)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d files, %s total\n\n", stats.TotalFiles, humanize.IBytes(uint64(stats.TotalSize)))

			fmt.Fprintln(out, renderTable(
				[]string{"Extension", "Count"},
				countRows(stats.ByExtension),
				[]columnAlignment{alignLeft, alignRight},
			))
			fmt.Fprintln(out, renderTable(
				[]string{"Namespace", "Count"},
				countRows(stats.ByNamespace),
				[]columnAlignment{alignLeft, alignRight},
			))

			if len(stats.LargestFiles) > 0 {
				rows := make([][]string, 0, len(stats.LargestFiles))
				for _, file := range stats.LargestFiles {
					rows = append(rows, []string{file.Path, humanize.IBytes(uint64(file.Size))})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"Largest Files", "Size"},
					rows,
					[]columnAlignment{alignLeft, alignRight},
				))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit machine-readable JSON")
	return cmd
}

func countRows(counts map[string]int) [][]string {
	keys := make([]string, 0, len(counts))
	for key := range counts {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	rows := make([][]string, 0, len(keys))
	for _, key := range keys {
		rows = append(rows, []string{key, fmt.Sprintf("%d", counts[key])})
	}
	return rows
}

func newDuplicatesCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "duplicates <pack.zip>",
		Short: "List groups of byte-identical images",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := ctx.loadPack(args[0])
			if err != nil {
				return err
			}
			groups := analyze.Duplicates(p)
			out := cmd.OutOrStdout()
			if len(groups) == 0 {
				fmt.Fprintln(out, "No duplicate images found")
				return nil
			}
			for _, group := range groups {
				fmt.Fprintf(out, "%s each, %d copies:\n", humanize.IBytes(uint64(group.Size)), len(group.Paths))
				for _, path := range group.Paths {
					fmt.Fprintf(out, "  %s\n", path)
				}
			}
			return nil
		},
	}
}

func newUnusedCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "unused <pack.zip>",
		Short: "List assets no document references",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := ctx.loadPack(args[0])
			if err != nil {
				return err
			}
			unused := analyze.UnusedAssets(p)
			out := cmd.OutOrStdout()
			if len(unused) == 0 {
				fmt.Fprintln(out, "Every asset is referenced")
				return nil
			}
			for _, path := range unused {
				fmt.Fprintln(out, path)
			}
			return nil
		},
	}
}
