package root

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/fitquest/fitquest/internal/client/api"
	"github.com/fitquest/fitquest/internal/client/config"
	"github.com/fitquest/fitquest/internal/client/repositories/awards"
	"github.com/fitquest/fitquest/internal/client/repositories/session"
	"github.com/fitquest/fitquest/internal/client/services"
	"github.com/fitquest/fitquest/internal/client/store"
	"github.com/fitquest/fitquest/internal/logging"
)

// app bundles the constructed services for one command invocation.
type app struct {
	db  *sql.DB
	log logging.Logger

	session  session.Repository
	auth     services.AuthService
	quests   services.QuestService
	workouts services.WorkoutService
	users    services.UserService
	awards   services.AwardService
	feed     services.FeedService
	geo      services.GeofenceService
}

// openApp loads the config, opens the local database, and wires every
// service. The returned cleanup closes the database.
func openApp(ctx context.Context) (*app, func(), error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	if flags.apiURL != "" {
		cfg.APIBaseURL = flags.apiURL
	}
	if flags.feedURL != "" {
		cfg.FeedBaseURL = flags.feedURL
	}
	if flags.dbPath != "" {
		cfg.DatabasePath = flags.dbPath
	}

	level := slog.LevelWarn
	if flags.verbose {
		level = slog.LevelDebug
	}
	log := logging.NewTextLogger(os.Stderr, level)

	db, err := store.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() { _ = db.Close() }

	sessionRepo := session.NewSQLiteRepository(db)
	markerRepo := awards.NewSQLiteRepository(db)

	client := api.NewHTTPClient(cfg.APIBaseURL, cfg.FeedBaseURL, sessionRepo.Token)

	users := services.NewUserService(client, db, log)

	a := &app{
		db:       db,
		log:      log,
		session:  sessionRepo,
		auth:     services.NewAuthService(client, db, log),
		quests:   services.NewQuestService(client, sessionRepo, log),
		workouts: services.NewWorkoutService(client, sessionRepo, log),
		users:    users,
		awards:   services.NewAwardService(users, markerRepo, log),
		feed:     services.NewFeedService(client, sessionRepo, log),
		geo:      services.NewGeofenceService(client, log),
	}
	return a, cleanup, nil
}
