package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcanaland/taki/internal/card"
	"github.com/arcanaland/taki/internal/render"
	"github.com/arcanaland/taki/internal/visual"
)

var showCmd = &cobra.Command{
	Use:   "show [card]",
	Short: "Draw a single card with its colors",
	Long: `Show resolves a card against the card designs and prints its glyph.
Cards are named by color and kind, or by wild name.

Wild cards get fresh colors on every draw, so showing the same wild card
twice gives two different looks.

Examples:
  taki show red-7
  taki show "blue taki"
  taki show supertaki
  taki show --assets ./my_cards.txt king`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := card.Parse(args[0])
		if err != nil {
			return err
		}

		cat, source, err := loadCatalog(loadSettings())
		if err != nil {
			return fmt.Errorf("error loading card designs: %w", err)
		}

		face, err := visual.Resolve(cat, c)
		if err != nil {
			return fmt.Errorf("error drawing card: %w", err)
		}

		force, _ := cmd.Flags().GetBool("color")
		displayCard(cmd.OutOrStdout(), c, face, source, force)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)

	showCmd.Flags().Bool("color", false, "Emit colors even when not writing to a terminal")
}

// terminalWidth returns the width of stdout, or 80 when it is not a terminal
// shortenLeft trims the start of s to fit in width cells, marking the cut
// with an ellipsis
func shortenLeft(s string, width int) string {
	over := runewidth.StringWidth(s) - width
	if over <= 0 {
		return s
	}
	return runewidth.TruncateLeft(s, over+1, "…")
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// styleSummary describes a style for the info panel
func styleSummary(s visual.Style) string {
	names := make([]string, len(s.Swatches))
	for i, sw := range s.Swatches {
		names[i] = sw.String()
	}
	summary := fmt.Sprintf("%s (%s)", s.Kind, strings.Join(names, " "))
	if s.Bold {
		summary += " bold"
	}
	if s.Background {
		summary += " fill"
	}
	return summary
}

// displayCard prints the glyph on the left and card info on the right
func displayCard(out io.Writer, c card.Card, face visual.Face, source string, force bool) {
	glyphLines := render.ANSI(face, force)
	maxGlyphWidth := 0
	for _, line := range glyphLines {
		if w := render.VisibleWidth(line); w > maxGlyphWidth {
			maxGlyphWidth = w
		}
	}

	label := colorize.New(colorize.FgCyan)
	value := colorize.New(colorize.FgHiWhite)
	if force {
		label.EnableColor()
		value.EnableColor()
	}

	infoLines := []string{
		label.Sprint("Card:  ") + value.Sprint(c.String()),
	}
	if col, ok := c.Color(); ok {
		infoLines = append(infoLines, label.Sprint("Color: ")+value.Sprint(col.String()))
	}
	if name, ok := c.AssetName(); ok {
		infoLines = append(infoLines, label.Sprint("Asset: ")+value.Sprint(name))
	}
	infoLines = append(infoLines, label.Sprint("Style: ")+value.Sprint(styleSummary(face.Style)))

	// Keep the source path from running past the terminal edge
	spacing := 4
	infoWidth := terminalWidth() - maxGlyphWidth - spacing - 2
	if infoWidth < 20 {
		infoWidth = 20
	}
	infoLines = append(infoLines, label.Sprint("From:  ")+value.Sprint(shortenLeft(source, infoWidth-7)))

	fmt.Fprintln(out)

	maxLines := max(len(glyphLines), len(infoLines))
	for i := 0; i < maxLines; i++ {
		fmt.Fprint(out, "  ")
		if i < len(glyphLines) {
			fmt.Fprint(out, glyphLines[i])
			fmt.Fprint(out, strings.Repeat(" ", maxGlyphWidth+spacing-render.VisibleWidth(glyphLines[i])))
		} else {
			fmt.Fprint(out, strings.Repeat(" ", maxGlyphWidth+spacing))
		}

		if i < len(infoLines) {
			fmt.Fprint(out, infoLines[i])
		}

		fmt.Fprintln(out)
	}

	fmt.Fprintln(out)
}
