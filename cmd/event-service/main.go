// Package main is the entrypoint for the lucamusic event catalog service.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lucamusic/event-platform/internal/api"
	"github.com/lucamusic/event-platform/internal/infrastructure/config"
	mongodb "github.com/lucamusic/event-platform/internal/infrastructure/db/mongo"
	redisdb "github.com/lucamusic/event-platform/internal/infrastructure/db/redis"
	"github.com/lucamusic/event-platform/pkg/logger"
	"github.com/lucamusic/event-platform/pkg/token"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Development(),
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, closeDB, err := mongodb.Connect(ctx, cfg.Mongo)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	defer func() {
		_ = closeDB(context.Background())
	}()

	rdb, err := redisdb.Connect(ctx, cfg.Redis)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to Redis")
	}
	defer func() {
		_ = rdb.Close()
	}()

	issuer := token.NewIssuer(cfg.JWTSecret, cfg.TokenTTL)

	e := api.NewEventRouter(db, rdb, issuer, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting event service")
		if err := e.Start(":" + cfg.Port); err != nil {
			log.Info().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("event service stopped")
}
