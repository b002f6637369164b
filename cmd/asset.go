package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arcanaland/taki/internal/catalog"
	"github.com/arcanaland/taki/internal/config"
	"github.com/arcanaland/taki/internal/glyph"
)

// assetCmd represents the asset command group
var assetCmd = &cobra.Command{
	Use:   "asset",
	Short: "Manage card design files",
}

// assetListCmd represents the asset ls command
var assetListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List the sections of the active card design file",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, source, err := loadCatalog(loadSettings())
		if err != nil {
			return fmt.Errorf("error loading card designs: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s (%d sections)\n", source, cat.Len())
		for _, s := range cat.Sections() {
			fmt.Fprintf(out, "  %-10s %d lines\n", s.Name, len(catalog.SplitLines(s.Glyph)))
		}
		return nil
	},
}

// assetImportCmd represents the asset import command
var assetImportCmd = &cobra.Command{
	Use:   "import [name] [image]",
	Short: "Convert an image into a card design section",
	Long: `Import converts an image into plain text glyph art and stores it as the
named section of a card design file, replacing any section of that name
in place. A new section goes at the end of the file, and the text before
the first header is kept. The file is created when it does not exist.

Examples:
  taki asset import King king.png --out ./my_cards.txt
  taki asset import SuperTaki star.png --invert`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, imagePath := args[0], args[1]
		if !catalog.ValidName(name) {
			return fmt.Errorf("%w: %q cannot be used as a section name", catalog.ErrInvalidSection, name)
		}

		outPath, _ := cmd.Flags().GetString("out")
		if outPath == "" {
			outPath = config.GetAssetPath(assetsFlag, loadSettings())
		}
		if outPath == "" {
			outPath = config.GetDataAssetPath()
		}

		width, _ := cmd.Flags().GetInt("width")
		height, _ := cmd.Flags().GetInt("height")
		invert, _ := cmd.Flags().GetBool("invert")

		art, err := glyph.FromFile(imagePath, glyph.Options{Width: width, Height: height, Invert: invert})
		if err != nil {
			return err
		}

		var (
			preamble string
			sections []catalog.Section
			replaced bool
		)
		cat, err := catalog.Load(outPath)
		switch {
		case err == nil:
			preamble = cat.Preamble()
			for _, s := range cat.FileSections() {
				if s.Name == name {
					s.Glyph, replaced = art, true
				}
				sections = append(sections, s)
			}
		case errors.Is(err, fs.ErrNotExist):
			logger.Info("creating card design file", zap.String("path", outPath))
		default:
			return err
		}
		if !replaced {
			sections = append(sections, catalog.Section{Name: name, Glyph: art})
		}

		if err := writeCatalogFile(outPath, preamble, sections); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Imported [%s] into %s:\n%s", name, outPath, art)
		return nil
	},
}

// writeCatalogFile writes the preamble and sections to path, creating its
// directory. The file is left untouched if the sections cannot be encoded.
func writeCatalogFile(path, preamble string, sections []catalog.Section) error {
	var buf bytes.Buffer
	buf.WriteString(preamble)
	if err := catalog.Write(&buf, sections); err != nil {
		return fmt.Errorf("error encoding card designs: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("error writing card design file: %w", err)
	}
	return nil
}

func init() {
	RootCmd.AddCommand(assetCmd)
	assetCmd.AddCommand(assetListCmd)
	assetCmd.AddCommand(assetImportCmd)

	assetImportCmd.Flags().StringP("out", "o", "", "Card design file to write (default: active file, or the data directory)")
	assetImportCmd.Flags().Int("width", glyph.DefaultWidth, "Glyph width in columns")
	assetImportCmd.Flags().Int("height", glyph.DefaultHeight, "Glyph height in lines")
	assetImportCmd.Flags().Bool("invert", false, "Treat dark pixels as blank")
}
