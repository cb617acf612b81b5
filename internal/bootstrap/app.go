package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"jobguard/internal/analysis"
	"jobguard/internal/backend"
	"jobguard/internal/classifier"
	"jobguard/internal/records"
	"jobguard/internal/server"
	"jobguard/internal/session"
	"jobguard/internal/shared/config"
	"jobguard/internal/shared/kvstore"
	"jobguard/internal/shared/storage/db"
)

// App holds the wired application dependencies.
type App struct {
	Config     config.Config
	Router     *gin.Engine
	DB         *sql.DB
	Storage    kvstore.Storage
	Records    *records.Store
	Session    *session.Manager
	Backend    *backend.Client
	Classifier *classifier.Client
	Analysis   *analysis.Service
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, storage, err := buildStorage(ctx, cfg)
	if err != nil {
		return nil, err
	}

	backendClient, err := backend.NewClient(cfg.BackendURL, cfg.HTTPTimeout)
	if err != nil {
		return nil, err
	}
	classifierClient, err := classifier.NewClient(cfg.ClassifierURL, cfg.HTTPTimeout)
	if err != nil {
		return nil, err
	}

	store := records.NewStore(storage)
	app := &App{
		Config:     cfg,
		DB:         sqlDB,
		Storage:    storage,
		Records:    store,
		Session:    session.NewManager(storage),
		Backend:    backendClient,
		Classifier: classifierClient,
		Analysis: &analysis.Service{
			Records:    store,
			Classifier: classifierClient,
			Scorer:     backendClient,
		},
	}

	app.Router = server.NewRouter(cfg, server.Deps{
		Session:  app.Session,
		Auth:     app.Backend,
		Records:  app.Records,
		Analysis: app.Analysis,
	})

	return app, nil
}

// buildStorage picks the state backend: Postgres when DATABASE_URL is set,
// the JSON state file otherwise.
func buildStorage(ctx context.Context, cfg config.Config) (*sql.DB, kvstore.Storage, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		return nil, kvstore.NewFileStore(cfg.StatePath), nil
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using state file: %v", err)
			return nil, kvstore.NewFileStore(cfg.StatePath), nil
		}
		return nil, nil, fmt.Errorf("connect database: %w", err)
	}
	if err := kvstore.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, nil, fmt.Errorf("run migrations: %w", err)
	}
	return sqlDB, kvstore.NewPGStore(sqlDB), nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
