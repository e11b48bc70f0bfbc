package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// maxPageSize is the largest page the NDB API serves.
const maxPageSize = 1500

// Load loads the configuration from file. A missing file is not an error
// as long as the API key arrives through the USDA_API_KEY environment
// variable.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	// The API key can come from the environment instead of a file
	v.SetEnvPrefix("usda")
	if err := v.BindEnv("datagov.api_key", "USDA_API_KEY"); err != nil {
		return nil, fmt.Errorf("error binding environment: %w", err)
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".go-usda"))
		}

		// Check /etc
		v.AddConfigPath("/etc/go-usda/")
	}

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
		if configPath != "" {
			return nil, fmt.Errorf("config file not found: %w", err)
		}
		// No file anywhere; defaults plus environment may still suffice.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Data.gov defaults
	v.SetDefault("datagov.api_key", "")
	v.SetDefault("datagov.base_url", "http://api.nal.usda.gov/")

	// Search defaults
	v.SetDefault("search.max_results", 50)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.DataGov.APIKey == "" || cfg.DataGov.APIKey == "your-api-key-here" {
		return fmt.Errorf("datagov.api_key must be set to a valid API key (or use USDA_API_KEY)")
	}

	if cfg.DataGov.BaseURL == "" {
		return fmt.Errorf("datagov.base_url is required")
	}

	if cfg.Search.MaxResults < 0 || cfg.Search.MaxResults > maxPageSize {
		return fmt.Errorf("search.max_results must be between 0 and %d", maxPageSize)
	}

	// Validate logging level
	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}
