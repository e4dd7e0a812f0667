package main

import (
	"context"
	"time"

	"inboxzero/internal/config"
	"inboxzero/internal/database"
	"inboxzero/internal/server"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// connectRedis opens the dedup Redis connection. Redis is optional: without
// it every email is treated as new.
func connectRedis(redisURL string, logger zerolog.Logger) *redis.Client {
	if redisURL == "" {
		logger.Info().Msg("REDIS_URL not set, email dedup disabled")
		return nil
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		logger.Warn().Err(err).Msg("Invalid REDIS_URL, email dedup disabled")
		return nil
	}

	rdb := redis.NewClient(opts)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Warn().Err(err).Msg("Redis ping failed, email dedup disabled")
		return nil
	}
	return rdb
}

func main() {
	// Load configuration
	cfg := config.Load()

	// Setup logger
	logger := cfg.SetupLogger()

	// Initialize database connection
	db, err := database.New(cfg.DatabaseURL)
	if err != nil {
		logger.Warn().Err(err).Msg("Database connection failed")
		logger.Info().Msg("Starting server without database connection")
	} else {
		logger.Info().Msg("Database connection established successfully")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := database.NewStore(db).CreateTables(ctx); err != nil {
			logger.Warn().Err(err).Msg("Schema setup failed")
		}
		cancel()
	}

	rdb := connectRedis(cfg.RedisURL, logger)

	// Create and initialize server
	srv, err := server.New(cfg, db, rdb, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Server setup failed")
	}
	srv.Initialize()

	// Start server
	if err := srv.Start(); err != nil {
		logger.Fatal().Err(err).Msg("Server failed to start")
	}
}
