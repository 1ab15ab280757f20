package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"packsmith/internal/override"
)

func newVariantCommand(ctx *commandContext) *cobra.Command {
	variantCmd := &cobra.Command{
		Use:   "variant",
		Short: "Manage custom model data variants",
	}

	variantCmd.AddCommand(newVariantAddCommand(ctx))

	return variantCmd
}

func newVariantAddCommand(ctx *commandContext) *cobra.Command {
	var itemID string
	var tag int
	var namespace string
	var texturePath string
	var outputPath string

	cmd := &cobra.Command{
		Use:   "add <pack.zip>",
		Short: "Give an item a visual variant keyed by custom model data",
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

			ns := namespace
			if ns == "" {
				ns = cfg.General.DefaultNamespace
			}

			var texture []byte
			if texturePath != "" {
				texture, err = os.ReadFile(texturePath)
				if err != nil {
					return fmt.Errorf("read texture: %w", err)
				}
			}

			updated, err := override.Apply(p, override.Request{
				ItemID:     itemID,
				VariantTag: tag,
				Namespace:  ns,
				Texture:    texture,
			})
			if err != nil {
				return err
			}

			target, err := ctx.savePack(updated, args[0], outputPath)
			if err != nil {
				return err
			}

			ctx.recordEdit(cmd.Context(), p.Name, "variant add",
				fmt.Sprintf("%s tag %d in %s", itemID, tag, ns))

			fmt.Fprintf(cmd.OutOrStdout(), "Added variant %d for %s, wrote %s\n", tag, itemID, target)
			return nil
		},
	}

	cmd.Flags().StringVar(&itemID, "item", "", "Item id (e.g. minecraft:diamond_sword)")
	cmd.Flags().IntVar(&tag, "tag", 0, "Custom model data value")
	cmd.Flags().StringVar(&namespace, "namespace", "", "Namespace for generated assets (defaults to configuration)")
	cmd.Flags().StringVar(&texturePath, "texture", "", "PNG file copied in as the variant texture")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write to this path instead of overwriting the input")
	_ = cmd.MarkFlagRequired("item")
	_ = cmd.MarkFlagRequired("tag")
	return cmd
}
