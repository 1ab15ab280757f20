package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"packsmith/internal/archive"
	"packsmith/internal/merge"
	"packsmith/internal/pack"
)

func newMergeCommand(ctx *commandContext) *cobra.Command {
	var outputPath string
	var showConflicts bool

	cmd := &cobra.Command{
		Use:   "merge <lowest.zip> <higher.zip>...",
		Short: "Merge packs, later arguments winning on conflicts",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			packs := make([]*pack.Package, 0, len(args))
			for _, path := range args {
				p, err := ctx.loadPack(path)
				if err != nil {
					return fmt.Errorf("load %s: %w", path, err)
				}
				packs = append(packs, p)
			}

			out := cmd.OutOrStdout()
			if showConflicts {
				conflicts := merge.Conflicts(packs)
				if len(conflicts) == 0 {
					fmt.Fprintln(out, "No overlapping paths")
				}
				for _, conflict := range conflicts {
					fmt.Fprintf(out, "%s: %s\n", conflict.Path, strings.Join(conflict.Packages, ", "))
				}
			}

			target := outputPath
			if target == "" {
				target = "merged.zip"
			}
			name := strings.TrimSuffix(filepath.Base(target), filepath.Ext(target))

			merged := merge.Merge(packs, name)
			if err := archive.Save(merged, target); err != nil {
				return err
			}

			ctx.recordEdit(cmd.Context(), name, "merge",
				fmt.Sprintf("%d packs, %d files", len(packs), merged.Store.Len()))

			fmt.Fprintf(out, "Merged %d packs into %s (%d files)\n", len(packs), target, merged.Store.Len())
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "merged.zip", "Path of the merged pack")
	cmd.Flags().BoolVar(&showConflicts, "show-conflicts", false, "Print paths written by more than one input")
	return cmd
}
