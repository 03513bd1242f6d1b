package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"withbliss-api/config"
	"withbliss-api/database"
	"withbliss-api/handlers"
	"withbliss-api/logger"
	"withbliss-api/router"
)

func main() {
	configPath := flag.String("config", "", "path to the YAML config file (default $CONFIG_PATH or config.yaml)")
	seed := flag.Bool("seed", false, "drop and recreate all tables, insert the sample packages and exit")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := database.Open(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot open database")
	}
	defer store.Close()

	if *seed {
		n, err := store.Seed(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("seeding failed")
		}
		log.Info().Int("packages", n).Msg("successfully seeded packages")
		return
	}

	if err := store.Migrate(ctx); err != nil {
		log.Warn().Err(err).Msg("database init warning")
	}

	app := router.New(handlers.New(store, log), log, router.Options{Metrics: cfg.Metrics.Enabled})

	go func() {
		<-ctx.Done()
		log.Info().Msg("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown failed")
		}
	}()

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Info().Str("addr", addr).Str("driver", cfg.Database.Driver).Msg("With Bliss backend is running")
	if err := app.Listen(addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
	}
}
