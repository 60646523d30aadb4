package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestProcessConfigDefaults(t *testing.T) {
	t.Run("default values", func(t *testing.T) {
		viper.Reset()
		cfg := Config{}
		processConfigDefaults(&cfg)

		if cfg.UserAgent == "" {
			t.Error("Expected UserAgent to have a default value")
		}
		if cfg.DataDir != "." {
			t.Errorf("Expected DataDir to default to the working directory, got %s", cfg.DataDir)
		}
	})

	t.Run("respects existing values", func(t *testing.T) {
		viper.Reset()
		cfg := Config{
			UserAgent: "custom-agent",
			DataDir:   "/tmp/tracker",
		}
		processConfigDefaults(&cfg)

		if cfg.UserAgent != "custom-agent" {
			t.Errorf("Expected UserAgent to stay custom-agent, got %s", cfg.UserAgent)
		}
		if cfg.DataDir != "/tmp/tracker" {
			t.Errorf("Expected DataDir to stay /tmp/tracker, got %s", cfg.DataDir)
		}
	})
}

func TestValidateAndEnsureDirectories(t *testing.T) {
	tmpDir := t.TempDir()

	t.Run("missing data dir", func(t *testing.T) {
		cfg := Config{DataDir: ""}
		err := validateAndEnsureDirectories(&cfg)
		if err == nil {
			t.Error("Expected error for missing DataDir")
		}
	})

	t.Run("creates data directory", func(t *testing.T) {
		dataDir := filepath.Join(tmpDir, "data")
		cfg := Config{DataDir: dataDir}
		err := validateAndEnsureDirectories(&cfg)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if _, err := os.Stat(dataDir); os.IsNotExist(err) {
			t.Error("Data directory was not created")
		}
	})
}
