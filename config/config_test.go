package config

import (
	"os"
	"path/filepath"
	"testing"
)

func validConfig() *Config {
	return &Config{
		DataGov: DataGovConfig{
			APIKey:  "valid-api-key",
			BaseURL: "http://api.nal.usda.gov/",
		},
		Search: SearchConfig{MaxResults: 50},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr bool
	}{
		{
			name:    "valid config",
			mutate:  func(cfg *Config) {},
			wantErr: false,
		},
		{
			name:    "missing API key",
			mutate:  func(cfg *Config) { cfg.DataGov.APIKey = "" },
			wantErr: true,
		},
		{
			name:    "placeholder API key",
			mutate:  func(cfg *Config) { cfg.DataGov.APIKey = "your-api-key-here" },
			wantErr: true,
		},
		{
			name:    "missing base URL",
			mutate:  func(cfg *Config) { cfg.DataGov.BaseURL = "" },
			wantErr: true,
		},
		{
			name:    "max results above API cap",
			mutate:  func(cfg *Config) { cfg.Search.MaxResults = 2000 },
			wantErr: true,
		},
		{
			name:    "invalid logging level",
			mutate:  func(cfg *Config) { cfg.Logging.Level = "verbose" },
			wantErr: true,
		},
		{
			name:    "invalid logging format",
			mutate:  func(cfg *Config) { cfg.Logging.Format = "xml" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
datagov:
  api_key: file-api-key
search:
  max_results: 100
filter:
  default: source == "SR"
  presets:
    dairy: contains(group, "dairy")
logging:
  level: debug
  format: json
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.DataGov.APIKey != "file-api-key" {
		t.Errorf("APIKey = %q, want %q", cfg.DataGov.APIKey, "file-api-key")
	}
	if cfg.DataGov.BaseURL != "http://api.nal.usda.gov/" {
		t.Errorf("BaseURL default not applied, got %q", cfg.DataGov.BaseURL)
	}
	if cfg.Search.MaxResults != 100 {
		t.Errorf("MaxResults = %d, want 100", cfg.Search.MaxResults)
	}
	if cfg.Filter.Presets["dairy"] != `contains(group, "dairy")` {
		t.Errorf("preset dairy = %q", cfg.Filter.Presets["dairy"])
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Errorf("logging = %+v", cfg.Logging)
	}
}

func TestLoadFromEnvWithoutFile(t *testing.T) {
	t.Setenv("USDA_API_KEY", "env-api-key")

	// Run from an empty directory so no config file is picked up.
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DataGov.APIKey != "env-api-key" {
		t.Errorf("APIKey = %q, want env value", cfg.DataGov.APIKey)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Load() expected error for missing explicit config file")
	}
}
