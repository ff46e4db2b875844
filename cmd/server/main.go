package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"CycleAnalyzer/internal/analysis"
	"CycleAnalyzer/internal/config"
	"CycleAnalyzer/internal/provider"
	"CycleAnalyzer/internal/scheduler"
	"CycleAnalyzer/internal/server"
	"CycleAnalyzer/internal/universe"
	"CycleAnalyzer/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	log := logger.New(logger.Config{Level: "info", Pretty: true})

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("config validation")
	}
	log = logger.New(logger.Config{Level: cfg.Log.Level, Pretty: cfg.Log.Pretty})
	log.Info().Msg("cycle analyzer starting")

	// Init fetcher
	var fetcher provider.Fetcher
	if cfg.DataSource.BaseURL != "" {
		fetcher = provider.NewRestFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy)
	} else {
		fetcher = provider.NewYahooFetcher(cfg.Proxy, log)
	}
	log.Info().Str("source", fetcher.Name()).Msg("data source selected")

	// Init symbol universe
	store := universe.NewStore(cfg.Universe.SQLitePath, log)
	if err := store.Reload(); err != nil {
		log.Warn().Err(err).Msg("initial universe load failed, symbol search degraded")
	}

	// Init analysis service
	svc := analysis.NewService(fetcher, log)

	// Init scheduler
	sched := scheduler.New(log)
	if err := sched.RegisterUniverseReload(cfg.Universe.ReloadCron, store); err != nil {
		log.Fatal().Err(err).Msg("register universe reload")
	}
	sched.Start()
	defer sched.Stop()

	// Init HTTP server
	srv := server.New(server.Config{
		Host:      cfg.Server.Host,
		Port:      cfg.Server.Port,
		StaticDir: cfg.StaticDir,
		Log:       log,
		Analysis:  svc,
		Universe:  store,
	})

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server")
		}
	}()
	log.Info().Int("port", cfg.Server.Port).Msg("cycle analyzer is running")

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("cycle analyzer stopped")
}
