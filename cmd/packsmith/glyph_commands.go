package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"golang.org/x/text/unicode/runenames"

	"packsmith/internal/document"
	"packsmith/internal/font"
	"packsmith/internal/pack"
	"packsmith/internal/resource"
)

func newGlyphCommand(ctx *commandContext) *cobra.Command {
	glyphCmd := &cobra.Command{
		Use:   "glyph",
		Short: "Manage font glyphs in the reserved private-use range",
	}

	glyphCmd.AddCommand(newGlyphAddCommand(ctx))
	glyphCmd.AddCommand(newGlyphListCommand(ctx))

	return glyphCmd
}

func newGlyphAddCommand(ctx *commandContext) *cobra.Command {
	var charFlag string
	var file string
	var height int
	var ascent int
	var fontKey string
	var namespace string
	var imagePath string
	var outputPath string

	cmd := &cobra.Command{
		Use:   "add <pack.zip>",
		Short: "Register a bitmap glyph, allocating a codepoint if needed",
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
			key := fontKey
			if key == "" {
				key = cfg.General.FontKey
			}

			char, err := resolveGlyphChar(charFlag, p, ns, key)
			if err != nil {
				return err
			}

			var data []byte
			if imagePath != "" {
				data, err = os.ReadFile(imagePath)
				if err != nil {
					return fmt.Errorf("read glyph image: %w", err)
				}
			}

			updated, err := font.AddGlyph(p, ns, key, font.Glyph{
				Char:   char,
				File:   file,
				Height: height,
				Ascent: ascent,
				Data:   data,
			})
			if err != nil {
				return err
			}

			target, err := ctx.savePack(updated, args[0], outputPath)
			if err != nil {
				return err
			}

			ctx.recordEdit(cmd.Context(), p.Name, "glyph add",
				fmt.Sprintf("U+%04X %s in font %s:%s", char, file, ns, key))

			fmt.Fprintf(cmd.OutOrStdout(), "Registered U+%04X (%s), wrote %s\n", char, runenames.Name(char), target)
			return nil
		},
	}

	cmd.Flags().StringVar(&charFlag, "char", "", "Codepoint to assign (U+E000 or a literal character); allocated automatically when omitted")
	cmd.Flags().StringVar(&file, "file", "", "Bitmap resource id with extension (e.g. mrwm:font/coin.png)")
	cmd.Flags().IntVar(&height, "height", 8, "Rendered glyph height")
	cmd.Flags().IntVar(&ascent, "ascent", 7, "Glyph ascent, at most the height")
	cmd.Flags().StringVar(&fontKey, "font", "", "Font document name (defaults to configuration)")
	cmd.Flags().StringVar(&namespace, "namespace", "", "Namespace for the font document (defaults to configuration)")
	cmd.Flags().StringVar(&imagePath, "image", "", "PNG file copied in as the glyph bitmap")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write to this path instead of overwriting the input")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

// resolveGlyphChar parses the --char flag, or allocates the next free
// codepoint from the font document when the flag is empty.
func resolveGlyphChar(flag string, p *pack.Package, ns, key string) (rune, error) {
	flag = strings.TrimSpace(flag)
	if flag == "" {
		doc, ok := document.ReadJSON(p.Store, resource.FontDocPath(ns, key))
		if !ok {
			doc = map[string]any{}
		}
		return font.Allocate(font.UsedCodepoints(doc))
	}

	upper := strings.ToUpper(flag)
	if strings.HasPrefix(upper, "U+") || strings.HasPrefix(upper, "0X") {
		value, err := strconv.ParseUint(upper[2:], 16, 32)
		if err != nil {
			return 0, fmt.Errorf("parse codepoint %q: %w", flag, err)
		}
		return rune(value), nil
	}

	char, size := utf8.DecodeRuneInString(flag)
	if char == utf8.RuneError || size != len(flag) {
		return 0, fmt.Errorf("codepoint flag %q must be U+XXXX or a single character", flag)
	}
	return char, nil
}

func newGlyphListCommand(ctx *commandContext) *cobra.Command {
	var fontKey string
	var namespace string

	cmd := &cobra.Command{
		Use:   "list <pack.zip>",
		Short: "List glyphs registered in a font document",
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
			key := fontKey
			if key == "" {
				key = cfg.General.FontKey
			}

			doc, ok := document.ReadJSON(p.Store, resource.FontDocPath(ns, key))
			if !ok {
				fmt.Fprintf(cmd.OutOrStdout(), "No font document at %s\n", resource.FontDocPath(ns, key))
				return nil
			}

			var rows [][]string
			for _, provider := range font.Providers(doc) {
				file, _ := provider["file"].(string)
				height, _ := provider["height"].(float64)
				ascent, _ := provider["ascent"].(float64)
				chars, _ := provider["chars"].([]any)
				for _, line := range chars {
					text, _ := line.(string)
					for _, char := range text {
						if char == 0 {
							continue
						}
						rows = append(rows, []string{
							fmt.Sprintf("U+%04X", char),
							runenames.Name(char),
							file,
							fmt.Sprintf("%d/%d", int(height), int(ascent)),
						})
					}
				}
			}
			if len(rows) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Font document has no bitmap glyphs")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Codepoint", "Name", "File", "Height/Ascent"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight},
			))
			return nil
		},
	}

	cmd.Flags().StringVar(&fontKey, "font", "", "Font document name (defaults to configuration)")
	cmd.Flags().StringVar(&namespace, "namespace", "", "Namespace of the font document (defaults to configuration)")
	return cmd
}
