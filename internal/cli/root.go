// Package cli implements the foodctl terminal client.
package cli

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"foodfinder/internal/adapters/foodapi"
	"foodfinder/internal/adapters/observability"
	redisad "foodfinder/internal/adapters/redis"
	"foodfinder/internal/app"
	"foodfinder/internal/domain"
	"foodfinder/internal/shared"
	"foodfinder/internal/storage/sqlite"
)

var rootCmd = &cobra.Command{
	Use:          "foodctl",
	Short:        "Terminal client for the food-establishment discovery service",
	Long:         `Search food establishments, read their details and reviews, and submit review requests against a configured backend (API_BASE_URL).`,
	SilenceUsage: true,
}

func Execute() {
	log.Logger = observability.NewLogger(shared.Load().AppEnv)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// deps is the per-invocation dependency set, built from the environment.
// Redis caching and the sqlite history store are optional: missing
// configuration degrades to pass-through behavior.
type deps struct {
	cfg     shared.Config
	client  *foodapi.Client
	queries *app.QueryService
	history domain.SearchHistory
	closers []func() error
}

func newDeps() (*deps, error) {
	cfg := shared.Load()
	client, err := foodapi.New(cfg.APIBaseURL)
	if err != nil {
		return nil, err
	}
	d := &deps{cfg: cfg, client: client}

	var cache domain.Cache
	if cfg.RedisAddr != "" {
		c := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		cache = c
		d.closers = append(d.closers, c.Close)
	}
	d.queries = app.NewQueryService(client, cache, cfg.CacheTTL)

	if repo, err := sqlite.Open(cfg.HistoryPath); err != nil {
		log.Warn().Err(err).Str("path", cfg.HistoryPath).Msg("search history disabled")
	} else {
		d.history = repo
		d.closers = append(d.closers, repo.Close)
	}
	return d, nil
}

func (d *deps) close() {
	for _, fn := range d.closers {
		_ = fn()
	}
}

func cmdCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 30*time.Second)
}
