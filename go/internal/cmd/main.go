package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/bacauscout/scout/go/internal/dbconfig"
	"github.com/bacauscout/scout/go/internal/player"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("No .env file loaded")
	}

	env := loadEnv()
	setupLogger(env.LogLevel)

	config, err := loadConfig(env.ConfigPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", env.ConfigPath).Msg("Failed to load config")
	}

	store, err := player.LoadStore(env.PlayersPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load player corpus")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	var (
		database *sql.DB
		pool     *pgxpool.Pool
	)
	if dbconfig.Configured() {
		dbCfg := dbconfig.NewConfigFromEnv()
		if database, err = setupDatabase(ctx, dbCfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to database")
		}
		defer database.Close()

		if pool, err = setupPool(ctx, dbCfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to database")
		}
		defer pool.Close()
	} else {
		log.Warn().Msg("DB_HOST not set, grades, attachments and invites are disabled")
	}

	publisher, hub, closeFeed := setupFeed(ctx, env, config)
	defer closeFeed()
	cancel()

	services := setupServices(store, database, pool, publisher, env, config)
	srv := setupServer(services, hub, env, config)

	serverErrors := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Int("players", store.Len()).Msg("Scout API listening")
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server error")
		}
	case sig := <-shutdown:
		log.Info().Str("signal", sig.String()).Msg("Shutting down")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("Graceful shutdown failed")
			_ = srv.Close()
		}
	}
}

func setupLogger(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	zerolog.TimeFieldFormat = time.RFC3339

	if os.Getenv("LOG_FORMAT") != "json" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
}
