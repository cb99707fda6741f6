// Copyright Niklas Bubeck, 2026. All rights reserved.

// Package main is the entry point for the scholar-page CLI: a small
// self-hosted service that keeps an academic portfolio page in sync with a
// Semantic Scholar author profile.
package main

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nbubeck/scholar-page/internal/secrets"
	"github.com/nbubeck/scholar-page/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// secretsDir holds the API key files loaded at startup.
const secretsDir = ".secrets/"

var verbose bool

// rootCmd is the base command for the scholar-page CLI.
var rootCmd = &cobra.Command{
	Use:   "scholar-page",
	Short: "Serve an academic portfolio page backed by Semantic Scholar",
	Long: `scholar-page fetches a researcher's publication and citation data from the
Semantic Scholar API, derives summary statistics and coauthor rankings, and
serves a portfolio page with filterable, searchable, sortable, paginated
publications.

Fetched profiles are cached for 24 hours and refreshed hourly in the
background; when the API is unreachable the page keeps serving the last
successful snapshot.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./scholar-page.yaml or ~/.config/scholar-page/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("scholar-page")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "scholar-page"))
		}
	}

	viper.SetEnvPrefix("SCHOLAR_PAGE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		log := rootLogger()
		log.Debug().Str("file", viper.ConfigFileUsed()).Msg("using config file")
	}
}

// loadConfig resolves the effective configuration: defaults, then the config
// file and environment, then the API key from .secrets/.
func loadConfig() types.Config {
	cfg := types.DefaultConfig()

	if v := viper.GetString("scholar.author_id"); v != "" {
		cfg.Scholar.AuthorID = v
	}
	if v := viper.GetString("scholar.api_key"); v != "" {
		cfg.Scholar.APIKey = v
	}
	if v := viper.GetDuration("scholar.timeout"); v > 0 {
		cfg.Scholar.Timeout = v
	}
	if v := viper.GetDuration("scholar.cache_ttl"); v > 0 {
		cfg.Scholar.CacheTTL = v
	}
	if v := viper.GetDuration("scholar.refresh_interval"); v > 0 {
		cfg.Scholar.RefreshInterval = v
	}
	if v := viper.GetString("server.addr"); v != "" {
		cfg.Server.Addr = v
	}
	if v := viper.GetInt("server.page_size"); v > 0 {
		cfg.Server.PageSize = v
	}
	cfg.Seed.HTMLPath = viper.GetString("seed.html_path")
	cfg.Seed.YAMLPath = viper.GetString("seed.yaml_path")

	if cfg.Scholar.APIKey == "" {
		cfg.Scholar.APIKey = secrets.SemanticScholarKey(secretsDir)
	}

	return cfg
}

func rootLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
