package main

import (
	"context"
	"database/sql"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/bacauscout/scout/go/clients/supabase_storage"
	"github.com/bacauscout/scout/go/internal/attachments"
	"github.com/bacauscout/scout/go/internal/feed"
	"github.com/bacauscout/scout/go/internal/grades"
	gradesdb "github.com/bacauscout/scout/go/internal/grades/db"
	"github.com/bacauscout/scout/go/internal/player"
	"github.com/bacauscout/scout/go/internal/teams"
	"github.com/bacauscout/scout/go/internal/users"
	"github.com/bacauscout/scout/go/internal/wyscout"
)

// Services holds the HTTP services. The database-backed ones are nil when no
// database is configured.
type Services struct {
	Store       *player.Store
	Players     *player.Service
	Teams       *teams.Service
	Wyscout     *wyscout.Service
	Grades      *grades.Service
	Attachments *attachments.Service
	Users       *users.Service
}

func setupServices(store *player.Store, database *sql.DB, pool *pgxpool.Pool, publisher feed.Publisher, env Env, config *Config) *Services {
	// Wire up dependency injection chain
	// Database layer → Repository layer → App layer → Service layer
	clock := clockwork.NewRealClock()

	services := &Services{
		Store:   store,
		Players: player.NewService(player.NewApp(store)),
		Teams:   teams.NewService(teams.NewApp(store)),
		Wyscout: setupWyscout(config),
	}

	if database != nil {
		// Grades
		gradesQueries := gradesdb.New(database)
		gradesRepo := grades.NewRepository(gradesQueries)
		gradesApp := grades.NewApp(gradesRepo, publisher, clock)
		services.Grades = grades.NewService(gradesApp)

		// Attachments
		if env.SupabaseURL != "" && env.SupabaseServiceKey != "" {
			storage := supabase_storage.NewStorageClient(env.SupabaseURL, env.SupabaseServiceKey)
			attachmentsRepo := attachments.NewRepository(database)
			attachmentsApp := attachments.NewApp(attachmentsRepo, gradesApp, storage, publisher, clock, attachments.Config{
				Bucket:  config.Attachments.Bucket,
				MaxSize: config.Attachments.MaxSizeMB << 20,
			})
			services.Attachments = attachments.NewService(attachmentsApp)
		} else {
			log.Warn().Msg("SUPABASE_URL or SUPABASE_SERVICE_KEY not set, attachments are disabled")
		}
	}

	if pool != nil {
		// Scouts & invites
		usersRepo := users.NewRepository(pool)
		usersApp := users.NewApp(usersRepo, clock, env.PublicBaseURL)
		services.Users = users.NewService(usersApp)
	}

	return services
}

// setupWyscout loads the metrics export. Without it the metrics route answers
// 503 while the file routes keep working.
func setupWyscout(config *Config) *wyscout.Service {
	var metrics wyscout.MetricsSource
	store, err := wyscout.LoadMetrics(config.Wyscout.MetricsPath)
	if err != nil {
		log.Warn().Err(err).Msg("Wyscout metrics not loaded")
	} else {
		metrics = store
	}

	app := wyscout.NewApp(metrics, wyscout.Config{
		DataDir:  config.Wyscout.DataDir,
		ClipsDir: config.Wyscout.ClipsDir,
	})
	return wyscout.NewService(app)
}

// setupFeed builds the event publisher: the websocket hub always, plus NATS
// when NATS_URL is set. The returned func releases the NATS connection.
func setupFeed(ctx context.Context, env Env, config *Config) (feed.Publisher, *feed.Hub, func()) {
	hub := feed.NewHub(feed.DefaultHubConfig())
	if env.NATSURL == "" {
		return hub, hub, func() {}
	}

	natsCfg := feed.DefaultNATSConfig()
	natsCfg.URL = env.NATSURL
	if config.Feed.StreamName != "" {
		natsCfg.StreamName = config.Feed.StreamName
	}
	if config.Feed.SubjectPrefix != "" {
		natsCfg.SubjectPrefix = config.Feed.SubjectPrefix
	}

	natsPublisher, err := feed.NewNATSPublisher(ctx, natsCfg)
	if err != nil {
		log.Error().Err(err).Msg("NATS unavailable, events go to websocket clients only")
		return hub, hub, func() {}
	}

	return feed.Fanout{hub, feed.NewRetrying(natsPublisher)}, hub, func() {
		if err := natsPublisher.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to drain NATS connection")
		}
	}
}
