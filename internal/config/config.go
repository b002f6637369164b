package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap/zapcore"

	"github.com/arcanaland/taki/internal/game"
)

// Config represents the application configuration
type Config struct {
	Assets        string `toml:"assets"`
	ShuffleRounds int    `toml:"shuffle_rounds"`
	HandSize      int    `toml:"hand_size"`
	Players       int    `toml:"players"`
	LogLevel      string `toml:"log_level"`
}

// Default returns the configuration written on first run
func Default() *Config {
	return &Config{
		ShuffleRounds: game.DefaultShuffleRounds,
		HandSize:      game.DefaultHandSize,
		Players:       game.DefaultPlayers,
		LogLevel:      "warn",
	}
}

// GetXDGDataHome returns XDG_DATA_HOME or default path
func GetXDGDataHome() string {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return xdgData
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".local", "share")
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetDataAssetPath returns where a user-installed asset file is looked for
func GetDataAssetPath() string {
	return filepath.Join(GetXDGDataHome(), "taki", "cards_design.txt")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "taki", "config.toml")
}

// LoadConfig loads the config file, creating it with defaults if missing
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig()
	}

	config := Default()
	if _, err := toml.DecodeFile(configPath, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}
	config.fillDefaults()

	return config, nil
}

// fillDefaults replaces zero or negative numbers with defaults
func (c *Config) fillDefaults() {
	d := Default()
	if c.ShuffleRounds <= 0 {
		c.ShuffleRounds = d.ShuffleRounds
	}
	if c.HandSize <= 0 {
		c.HandSize = d.HandSize
	}
	if c.Players <= 0 {
		c.Players = d.Players
	}
	if c.LogLevel == "" {
		c.LogLevel = d.LogLevel
	}
}

// createDefaultConfig creates a default config file
func createDefaultConfig() (*Config, error) {
	config := Default()
	if err := SaveConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

// SaveConfig writes config to the config file
func SaveConfig(config *Config) error {
	configPath := GetConfigFilePath()

	// Ensure the config directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	return nil
}

// SetAssets stores the asset file path in the config
func SetAssets(path string) error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}

	if path != "" {
		abs, err := filepath.Abs(path)
		if err != nil {
			return fmt.Errorf("error resolving asset path: %w", err)
		}
		path = abs
	}
	config.Assets = path

	return SaveConfig(config)
}

// GetAssetPath picks the asset file to load: the flag value, then the
// config value, then a file in the data directory. An empty result means
// the bundled assets should be used.
func GetAssetPath(flagValue string, config *Config) string {
	if flagValue != "" {
		return flagValue
	}
	if config != nil && config.Assets != "" {
		return config.Assets
	}
	if _, err := os.Stat(GetDataAssetPath()); err == nil {
		return GetDataAssetPath()
	}
	return ""
}

// ParseLogLevel converts a level name to a zap level
func ParseLogLevel(s string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "info":
		return zapcore.InfoLevel, nil
	case "warn", "warning", "":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.WarnLevel, fmt.Errorf("unknown log level %q", s)
	}
}
