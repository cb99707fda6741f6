// Copyright Niklas Bubeck, 2026. All rights reserved.

// Package profile provides the cached author-profile source for the page:
// fetch-through TTL caching, a periodic forced refresh, and a
// stale-but-available policy when refreshes fail.
package profile

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/nbubeck/scholar-page/pkg/types"
)

// Fetcher fetches a normalized author profile. *scholar.Client implements it.
type Fetcher interface {
	FetchAuthor(ctx context.Context, authorID string) (types.ProfileSnapshot, error)
}

// Provider serves profile snapshots for one author, caching successful
// fetches for the configured TTL. Refresh failures never reach the render
// path: they are logged and the previous snapshot stays served.
type Provider struct {
	fetcher  Fetcher
	cache    *snapshotCache
	authorID string
	interval time.Duration
	log      zerolog.Logger
}

// NewProvider creates a Provider for cfg.AuthorID. The logger is the
// observability sink for swallowed fetch failures.
func NewProvider(fetcher Fetcher, cfg types.ScholarConfig, log zerolog.Logger) *Provider {
	interval := cfg.RefreshInterval
	if interval <= 0 {
		interval = types.DefaultRefreshInterval
	}
	return &Provider{
		fetcher:  fetcher,
		cache:    newSnapshotCache(cfg.CacheTTL),
		authorID: cfg.AuthorID,
		interval: interval,
		log:      log,
	}
}

// cacheKey supports multiple author IDs even though the page configures one.
func (p *Provider) cacheKey() string { return "profile_" + p.authorID }

// Profile returns the current snapshot: the cached one when it is within its
// TTL (no network access), otherwise the result of a fresh fetch. A fetch
// failure returns the error; callers that want the previous snapshot use
// Stale.
func (p *Provider) Profile(ctx context.Context) (types.ProfileSnapshot, error) {
	if snap, ok := p.cache.Get(p.cacheKey()); ok {
		p.log.Debug().Str("author_id", p.authorID).Msg("serving cached profile")
		return snap, nil
	}

	snap, err := p.fetcher.FetchAuthor(ctx, p.authorID)
	if err != nil {
		return types.ProfileSnapshot{}, err
	}

	p.cache.Put(p.cacheKey(), snap)
	p.log.Info().
		Str("author_id", p.authorID).
		Int("papers", len(snap.Publications)).
		Msg("fetched profile")
	return snap, nil
}

// Stale returns the most recent successful snapshot regardless of TTL.
func (p *Provider) Stale() (types.ProfileSnapshot, bool) {
	return p.cache.GetStale(p.cacheKey())
}

// Refresh forces a fetch regardless of TTL. On failure the previous snapshot
// is retained and the error is reported only to the log sink.
func (p *Provider) Refresh(ctx context.Context) {
	snap, err := p.fetcher.FetchAuthor(ctx, p.authorID)
	if err != nil {
		p.log.Warn().Err(err).Str("author_id", p.authorID).Msg("profile refresh failed, serving stale data")
		return
	}
	if p.cache.Put(p.cacheKey(), snap) {
		p.log.Info().Str("author_id", p.authorID).Msg("profile refreshed")
	}
}

// StartAutoRefresh launches the periodic forced refresh and returns
// immediately. The loop stops when ctx is cancelled. In-flight fetches are
// never cancelled by the next tick; the cache's timestamp rule resolves any
// overlap.
func (p *Provider) StartAutoRefresh(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				p.Refresh(ctx)
			}
		}
	}()
}
