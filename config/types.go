package config

// Config represents the complete configuration structure
type Config struct {
	DataGov DataGovConfig `mapstructure:"datagov"`
	Search  SearchConfig  `mapstructure:"search"`
	Filter  FilterConfig  `mapstructure:"filter"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// DataGovConfig holds the Data.gov API credential and endpoint
type DataGovConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
}

// SearchConfig contains defaults applied to search requests
type SearchConfig struct {
	MaxResults int    `mapstructure:"max_results"`
	DataSource string `mapstructure:"data_source"`
}

// FilterConfig contains the default filter expression and named presets
type FilterConfig struct {
	Default string            `mapstructure:"default"`
	Presets map[string]string `mapstructure:"presets"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
