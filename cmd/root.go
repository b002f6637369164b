package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arcanaland/taki/assets"
	"github.com/arcanaland/taki/internal/catalog"
	"github.com/arcanaland/taki/internal/config"
)

var (
	assetsFlag   string
	logLevelFlag string

	logger = zap.NewNop()
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "taki",
	Short: "Terminal Taki card table",
	Long: `Taki is a terminal version of the Taki card game.
It deals the standard 118 card deck and draws cards from a text asset file
of glyph art, with wild cards in shifting colors.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogger()
	},
}

func init() {
	RootCmd.PersistentFlags().StringVar(&assetsFlag, "assets", "", "Card design file (default: config, then bundled designs)")
	RootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level: debug, info, warn, error")

	RootCmd.AddCommand(validateCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

// setupLogger builds the command logger on stderr at the level chosen by
// flag, then config
func setupLogger() error {
	levelName := logLevelFlag
	if levelName == "" {
		if cfg, err := config.LoadConfig(); err == nil {
			levelName = cfg.LogLevel
		}
	}

	level, err := config.ParseLogLevel(levelName)
	if err != nil {
		return err
	}

	zcfg := zap.NewDevelopmentConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.DisableStacktrace = true
	zcfg.OutputPaths = []string{"stderr"}
	zcfg.ErrorOutputPaths = []string{"stderr"}

	built, err := zcfg.Build()
	if err != nil {
		return err
	}
	logger = built
	return nil
}

// loadSettings returns the config file, or defaults when it cannot be read
func loadSettings() *config.Config {
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Warn("using default settings", zap.Error(err))
		return config.Default()
	}
	return cfg
}

// loadCatalog loads the card designs chosen by flag, config, or the bundled file
func loadCatalog(cfg *config.Config) (*catalog.Catalog, string, error) {
	path := config.GetAssetPath(assetsFlag, cfg)
	if path == "" {
		logger.Debug("loading bundled card designs")
		cat, err := catalog.LoadFS(assets.FS(), assets.DefaultFile)
		return cat, "bundled " + assets.DefaultFile, err
	}

	logger.Debug("loading card designs", zap.String("path", path))
	cat, err := catalog.Load(path)
	return cat, path, err
}
