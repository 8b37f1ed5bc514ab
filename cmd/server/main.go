package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/booknest/booknest-api/internal/api"
	"github.com/booknest/booknest-api/internal/core/service"
	"github.com/booknest/booknest-api/internal/infrastructure/catalog"
	"github.com/booknest/booknest-api/internal/infrastructure/config"
	mongodb "github.com/booknest/booknest-api/internal/infrastructure/db/mongo"
	redisdb "github.com/booknest/booknest-api/internal/infrastructure/db/redis"
	"github.com/booknest/booknest-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Configuration problems (a missing JWT_SECRET above all) are fatal
		// before anything else starts.
		boot := logger.Init(logger.Options{})
		boot.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx := context.Background()

	// --- MongoDB ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() { _ = mongoClient.Disconnect(ctx) }()

	userRepo := mongodb.NewUserRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create user indexes")
	}

	// --- Redis ---
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	// --- Router ---
	e := api.NewRouter(api.Deps{
		Mongo:           db,
		Redis:           rdb,
		Tokens:          service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL),
		CatalogClient:   catalog.NewGoogleBooksClient(cfg.Catalog.BaseURL),
		CatalogCacheTTL: cfg.Catalog.CacheTTL,
		Log:             log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	shutCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutCtx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}
}
