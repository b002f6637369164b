package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arcanaland/taki/assets"
	"github.com/arcanaland/taki/internal/catalog"
	"github.com/arcanaland/taki/internal/validator"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a card design file",
	Long: `Validate checks that a card design file has glyph art for every card
in the standard deck, and warns about sections that will not fit a card.
Without a path, the bundled designs are checked.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var v *validator.Validator
		name := "bundled " + assets.DefaultFile

		if len(args) == 1 {
			name = args[0]

			// Check if path exists
			if _, err := os.Stat(name); os.IsNotExist(err) {
				return fmt.Errorf("card design file not found: %s", name)
			}
			v = validator.NewValidator(name)
		} else {
			cat, err := catalog.LoadFS(assets.FS(), assets.DefaultFile)
			if err != nil {
				return err
			}
			v = validator.NewCatalogValidator(name, cat)
		}

		results, err := v.Validate()
		if err != nil {
			return fmt.Errorf("validation error: %w", err)
		}

		// Display validation results
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Validation Results:")
		fmt.Fprintln(out, "-------------------")

		if results.Valid() {
			fmt.Fprintf(out, "✅ '%s' has designs for every card.\n", name)
		} else {
			fmt.Fprintf(out, "❌ '%s' has %d validation errors:\n", name, len(results.Errors))
			for i, err := range results.Errors {
				fmt.Fprintf(out, "%d. %s\n", i+1, err)
			}
		}

		if len(results.Warnings) > 0 {
			fmt.Fprintln(out, "\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Fprintf(out, "%d. %s\n", i+1, warn)
			}
		}

		if !results.Valid() {
			return fmt.Errorf("validation failed")
		}
		return nil
	},
}
