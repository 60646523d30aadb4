package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// Values are loaded by Viper from a config file and/or environment variables.
type Config struct {
	NexusAPIKey  string `mapstructure:"NEXUS_API_KEY"`
	UserAgent    string `mapstructure:"USERAGENT"`
	GameDomain   string `mapstructure:"GAME_DOMAIN"` // Default game domain for track/untrack/files
	DataDir      string `mapstructure:"DATA_DIR"`
	DatabasePath string `mapstructure:"-"` // Not from env, derived
}

// LoadConfig reads configuration from file and environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)   // Path to look for the config file in
	viper.SetConfigName(".env") // Name of config file (without extension)
	viper.SetConfigType("env")  // REQUIRED if the config file does not have the extension in the name

	vipErr := viper.ReadInConfig()
	if _, ok := vipErr.(viper.ConfigFileNotFoundError); ok {
		slog.Info("Config file (.env) not found, relying on environment variables.")
	} else if vipErr != nil {
		return Config{}, fmt.Errorf("fatal error config file: %w", vipErr)
	}

	// Bind environment variables automatically.
	// Viper will check for an environment variable matching the key name (e.g., NEXUS_API_KEY)
	viper.AutomaticEnv()

	for key, env := range map[string]string{
		"nexus_api_key": "NEXUS_API_KEY",
		"useragent":     "USERAGENT",
		"game_domain":   "GAME_DOMAIN",
		"data_dir":      "DATA_DIR",
	} {
		if bindErr := viper.BindEnv(key, env); bindErr != nil {
			slog.Warn("Unable to bind env var", "var", env, "error", bindErr)
		}
	}

	// Unmarshal the config
	if vipErr = viper.Unmarshal(&config); vipErr != nil {
		return Config{}, fmt.Errorf("unable to decode into struct, %w", vipErr)
	}

	processConfigDefaults(&config)

	if err := validateAndEnsureDirectories(&config); err != nil {
		return Config{}, err
	}

	// Derive DatabasePath (place it in the data dir for portability)
	config.DatabasePath = filepath.Join(config.DataDir, "tracker.db")

	return config, nil
}

// processConfigDefaults fills in defaults for optional values.
func processConfigDefaults(cfg *Config) {
	if cfg.UserAgent == "" {
		cfg.UserAgent = "nexus-mod-tracker/dev (unknown-user)"
		slog.Warn("USERAGENT not set in config or environment, using default.")
	}
	if cfg.DataDir == "" {
		cfg.DataDir = "."
	}
}

// validateAndEnsureDirectories checks required paths and creates the
// data directory when missing.
func validateAndEnsureDirectories(cfg *Config) error {
	if cfg.DataDir == "" {
		slog.Error("DATA_DIR is not set")
		return fmt.Errorf("DATA_DIR is required")
	}
	if _, err := os.Stat(cfg.DataDir); os.IsNotExist(err) {
		slog.Info("Data directory does not exist, creating it", "path", cfg.DataDir)
		if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
			slog.Error("Failed to create data directory", "path", cfg.DataDir, "error", err)
			return err
		}
	} else if err != nil {
		slog.Error("Failed to check data directory", "path", cfg.DataDir, "error", err)
		return err
	}
	return nil
}
