package cmd

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/arcanaland/taki/internal/catalog"
	"github.com/arcanaland/taki/internal/config"
	"github.com/arcanaland/taki/internal/validator"
)

// configCmd represents the config command group
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage taki settings",
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the config file with default settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := config.LoadConfig(); err != nil {
			return fmt.Errorf("error initializing config: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Config file initialized at:", config.GetConfigFilePath())
		fmt.Fprintln(out, "Custom card designs are picked up from:", config.GetDataAssetPath())
		return nil
	},
}

// configShowCmd represents the config show command
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "# %s\n", config.GetConfigFilePath())
		return toml.NewEncoder(out).Encode(cfg)
	},
}

// configSetAssetsCmd represents the config set-assets command
var configSetAssetsCmd = &cobra.Command{
	Use:   "set-assets [path]",
	Short: "Set the card design file used by default",
	Long:  `Set the card design file used by default. An empty path restores the bundled designs.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		if path != "" {
			// Try to load the file to make sure it's usable
			cat, err := catalog.Load(path)
			if err != nil {
				return fmt.Errorf("not a card design file: %w", err)
			}
			results, _ := validator.NewCatalogValidator(path, cat).Validate()
			if !results.Valid() {
				return fmt.Errorf("card design file is incomplete, run 'taki validate %s'", path)
			}
		}

		if err := config.SetAssets(path); err != nil {
			return fmt.Errorf("error setting card designs: %w", err)
		}

		if path == "" {
			fmt.Fprintln(cmd.OutOrStdout(), "Using bundled card designs")
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "Card designs set to: %s\n", path)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetAssetsCmd)
}
