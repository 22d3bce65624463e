package types

import "time"

// HTTPConfig holds shared HTTP settings for components that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "catalog-export/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// CatalogConfig holds settings for the catalog client.
type CatalogConfig struct {
	HTTPConfig `yaml:",inline"`

	// APIKey is an optional catalog API key sent with every request.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// Limit caps the number of listing entries requested (0 = no cap).
	Limit int `json:"limit" yaml:"limit"`
}

// Format selects the export output format.
type Format string

const (
	FormatCSV    Format = "csv"
	FormatJSON   Format = "json"
	FormatYAML   Format = "yaml"
	FormatSQLite Format = "sqlite"
)

// ExportConfig holds settings for the export job.
type ExportConfig struct {
	// Output is the output file path. When empty, a default derived from
	// Format is used (dataset_descriptions.csv in the working directory).
	Output string `json:"output" yaml:"output"`

	// Format selects the output sink: csv, json, yaml, or sqlite.
	Format Format `json:"format" yaml:"format"`
}
