package bootstrap

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog"

	migrationinadapter "goalt/internal/modules/migration/adapter/in"
	migrationoutadapter "goalt/internal/modules/migration/adapter/out"
	migrationservice "goalt/internal/modules/migration/service"
	migrationusecase "goalt/internal/modules/migration/usecase"
	sessioninadapter "goalt/internal/modules/session/adapter/in"
	sessionoutadapter "goalt/internal/modules/session/adapter/out"
	sessionservice "goalt/internal/modules/session/service"
	sessionusecase "goalt/internal/modules/session/usecase"
	statsinadapter "goalt/internal/modules/stats/adapter/in"
	statsservice "goalt/internal/modules/stats/service"
	statsusecase "goalt/internal/modules/stats/usecase"
	topicinadapter "goalt/internal/modules/topic/adapter/in"
	topicoutadapter "goalt/internal/modules/topic/adapter/out"
	topicservice "goalt/internal/modules/topic/service"
	topicusecase "goalt/internal/modules/topic/usecase"
	"goalt/internal/platform/clock"
	"goalt/internal/platform/config"
	"goalt/internal/platform/id"
	"goalt/internal/platform/sqlitedb"
	"goalt/internal/platform/tx"
)

type App struct {
	TopicCLI     topicinadapter.CLIHandler
	SessionCLI   sessioninadapter.CLIHandler
	StatsCLI     statsinadapter.CLIHandler
	MigrationCLI migrationinadapter.CLIHandler

	db *sql.DB
}

// New wires the application. The legacy-shape check runs before any
// current-shape store touches the database, so a legacy store is migrated
// exactly once at startup.
func New(cfg config.Config, log zerolog.Logger) (*App, error) {
	clk := clock.SystemClock{}
	ids := id.UUID{}

	db, err := sqlitedb.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	migrationUC := migrationusecase.NewInteractor(
		migrationservice.NewMigrator(clk, cfg.Location, cfg.DefaultGoalMinutes),
		migrationoutadapter.NewSQLiteLegacyStore(db),
		migrationoutadapter.NewSQLiteNewShapeWriter(db, clk, ids, cfg.Location),
		tx.NewSQLManager(db),
		log,
	)
	if result, err := migrationUC.Run(context.Background()); err != nil {
		return nil, fmt.Errorf("run legacy migration: %w", err)
	} else if result.Migrated {
		log.Info().Int("topics", result.TopicsMigrated).Msg("store migrated to snapshot shape")
	}

	topicStore, err := topicoutadapter.NewSQLiteTopicStore(db)
	if err != nil {
		return nil, fmt.Errorf("new topic store: %w", err)
	}
	goalStore, err := topicoutadapter.NewSQLiteGoalChangeStore(db)
	if err != nil {
		return nil, fmt.Errorf("new goal change store: %w", err)
	}
	topicUC := topicusecase.NewInteractor(
		topicservice.NewTopicService(clk, ids, cfg.Location),
		topicStore,
		goalStore,
	)

	sessionStore, err := sessionoutadapter.NewSQLiteSessionStore(db)
	if err != nil {
		return nil, fmt.Errorf("new session store: %w", err)
	}
	sessionUC := sessionusecase.NewInteractor(
		sessionservice.NewSessionService(clk, ids),
		topicUC,
		sessionStore,
		sessionoutadapter.NewFileActiveSessionStore(cfg.DataDir),
	)

	statsUC := statsusecase.NewInteractor(
		statsservice.NewStatsService(clk, cfg.Location),
		sessionStore,
		topicStore,
		goalStore,
	)

	return &App{
		TopicCLI:     topicinadapter.NewCLIHandler(topicUC),
		SessionCLI:   sessioninadapter.NewCLIHandler(sessionUC),
		StatsCLI:     statsinadapter.NewCLIHandler(statsUC),
		MigrationCLI: migrationinadapter.NewCLIHandler(migrationUC),
		db:           db,
	}, nil
}

func (a *App) Close() error {
	return a.db.Close()
}
