// Copyright Niklas Bubeck, 2026. All rights reserved.

package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/nbubeck/scholar-page/internal/profile"
	"github.com/nbubeck/scholar-page/internal/scholar"
	"github.com/nbubeck/scholar-page/internal/seed"
	"github.com/nbubeck/scholar-page/internal/server"
	"github.com/nbubeck/scholar-page/pkg/types"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the portfolio page",
	Long: `Serve starts the HTTP server for the portfolio page. The author profile is
fetched on first use, cached for the configured TTL, and refreshed hourly in
the background. Refresh failures keep the previous snapshot on the page.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (overrides config)")
	serveCmd.Flags().Bool("offline", false, "serve from the seed roster only, no API fetches")
	rootCmd.AddCommand(serveCmd)
}

// offlineSource never fetches; the server falls through to its seed roster.
type offlineSource struct{}

func (offlineSource) Profile(context.Context) (types.ProfileSnapshot, error) {
	return types.ProfileSnapshot{}, errors.New("offline mode")
}

func (offlineSource) Stale() (types.ProfileSnapshot, bool) {
	return types.ProfileSnapshot{}, false
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := loadConfig()
	log := rootLogger()

	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		cfg.Server.Addr = addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var source server.ProfileSource
	if offline, _ := cmd.Flags().GetBool("offline"); offline {
		log.Info().Msg("offline mode, serving seed roster only")
		source = offlineSource{}
	} else {
		client := scholar.NewClient(cfg.Scholar)
		provider := profile.NewProvider(client, cfg.Scholar, log)
		provider.StartAutoRefresh(ctx)
		source = provider
	}

	srv := server.New(source, loadSeed(cfg.Seed, log), cfg.Server, log)

	err := srv.ListenAndServe(ctx, cfg.Server.Addr)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// loadSeed loads the fallback roster, if one is configured. Seed problems
// are logged and ignored; the page can run without a fallback.
func loadSeed(cfg types.SeedConfig, log zerolog.Logger) []types.PublicationRecord {
	switch {
	case cfg.YAMLPath != "":
		records, err := seed.FromYAML(cfg.YAMLPath)
		if err != nil {
			log.Warn().Err(err).Msg("loading seed roster")
			return nil
		}
		return records
	case cfg.HTMLPath != "":
		records, err := seed.FromHTMLFile(cfg.HTMLPath)
		if err != nil {
			log.Warn().Err(err).Msg("loading seed page")
			return nil
		}
		return records
	default:
		return nil
	}
}
