package main

import (
	"net/http"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"foodfinder/internal/adapters/observability"
	"foodfinder/internal/mockapi"
	"foodfinder/internal/shared"
)

func main() {
	_ = godotenv.Load()
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	store := mockapi.NewStore(mockapi.DefaultFixtures())
	mockapi.SeedDefaultReviews(store)

	srv := mockapi.New(log.Logger, cfg.ThrottleRPS)
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(mockapi.NewHandlers(store))

	log.Info().Str("addr", cfg.HTTPAddr).Msg("mock places API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
