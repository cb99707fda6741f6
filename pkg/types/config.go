// Copyright Niklas Bubeck, 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings for components that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "scholar-page/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// ScholarConfig holds settings for the Semantic Scholar profile fetcher.
type ScholarConfig struct {
	HTTPConfig `yaml:",inline"`

	// AuthorID is the Semantic Scholar author identifier whose profile is fetched.
	AuthorID string `json:"author_id" yaml:"author_id"`

	// APIKey is an optional Semantic Scholar API key for higher rate limits.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// CacheTTL is how long a fetched snapshot stays valid (default 24h).
	CacheTTL time.Duration `json:"cache_ttl" yaml:"cache_ttl"`

	// RefreshInterval is the period of the forced background re-fetch (default 1h).
	RefreshInterval time.Duration `json:"refresh_interval" yaml:"refresh_interval"`
}

// ServerConfig holds settings for the HTTP server.
type ServerConfig struct {
	// Addr is the listen address (default ":8080").
	Addr string `json:"addr" yaml:"addr"`

	// PageSize is the number of publications shown per page (default 3).
	PageSize int `json:"page_size" yaml:"page_size"`
}

// SeedConfig holds settings for the offline fallback roster.
type SeedConfig struct {
	// HTMLPath is a static publications page to scrape when the API is unreachable.
	HTMLPath string `json:"html_path,omitempty" yaml:"html_path,omitempty"`

	// YAMLPath is a roster file to load when the API is unreachable.
	YAMLPath string `json:"yaml_path,omitempty" yaml:"yaml_path,omitempty"`
}

// Config is the root configuration for scholar-page.
type Config struct {
	Scholar ScholarConfig `json:"scholar" yaml:"scholar"`
	Server  ServerConfig  `json:"server" yaml:"server"`
	Seed    SeedConfig    `json:"seed" yaml:"seed"`
}

// Default values applied by DefaultConfig.
const (
	DefaultAuthorID        = "2372230806"
	DefaultTimeout         = 15 * time.Second
	DefaultUserAgent       = "scholar-page/0.1"
	DefaultCacheTTL        = 24 * time.Hour
	DefaultRefreshInterval = time.Hour
	DefaultAddr            = ":8080"
	DefaultPageSize        = 3
)

// DefaultConfig returns the configuration used when no config file is present.
func DefaultConfig() Config {
	return Config{
		Scholar: ScholarConfig{
			HTTPConfig: HTTPConfig{
				Timeout:   DefaultTimeout,
				UserAgent: DefaultUserAgent,
			},
			AuthorID:        DefaultAuthorID,
			CacheTTL:        DefaultCacheTTL,
			RefreshInterval: DefaultRefreshInterval,
		},
		Server: ServerConfig{
			Addr:     DefaultAddr,
			PageSize: DefaultPageSize,
		},
	}
}
