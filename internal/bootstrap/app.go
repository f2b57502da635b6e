package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"careerpath-backend/internal/bundles"
	"careerpath-backend/internal/recommend"
	"careerpath-backend/internal/recommend/gemini"
	"careerpath-backend/internal/recommend/openai"
	"careerpath-backend/internal/shared/config"
	"careerpath-backend/internal/shared/server"
	"careerpath-backend/internal/shared/storage/db"
	"careerpath-backend/internal/submissions"
	"careerpath-backend/internal/uploads"
	"careerpath-backend/internal/users"
)

// App holds shared dependencies, constructed once at startup and passed by
// handle; there is no ambient global state.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB

	BundlesRepo bundles.Repo
	UsersRepo   users.Repo
	Recommender recommend.Client

	BundlesService    *bundles.Service
	UsersService      *users.Service
	SubmissionService *submissions.Service

	SubmissionHandler *submissions.Handler
	UploadHandler     *uploads.Handler
	BundleHandler     *bundles.Handler
}

// Build prepares shared dependencies and wires routes. A misconfiguration
// fails here, before the server accepts traffic.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	recommender, err := buildRecommender(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config:      cfg,
		DB:          sqlDB,
		Recommender: recommender,
	}

	if err := buildServices(app); err != nil {
		return nil, err
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:            app.Config,
		SubmissionHandler: app.SubmissionHandler,
		UploadHandler:     app.UploadHandler,
		BundleHandler:     app.BundleHandler,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return sqlDB, nil
}

func buildRecommender(ctx context.Context, cfg config.Config) (recommend.Client, error) {
	switch cfg.Provider {
	case "openai":
		return openai.NewClient(cfg.ProviderAPIKey, cfg.ProviderModel)
	case "gemini":
		return gemini.NewClient(ctx, cfg.ProviderAPIKey, cfg.ProviderModel)
	default:
		return recommend.StubClient{}, nil
	}
}

func buildServices(app *App) error {
	var bundlesRepo bundles.Repo
	var usersRepo users.Repo

	if app.DB != nil {
		bundlesRepo = &bundles.PGRepo{DB: app.DB}
		usersRepo = &users.PGRepo{DB: app.DB}
	} else {
		bundlesRepo = bundles.NewMemoryRepo()
		usersRepo = users.NewMemoryRepo()
	}

	bundlesSvc := bundles.NewService(bundlesRepo)
	usersSvc := users.NewService(usersRepo)

	submissionSvc := &submissions.Service{
		Client:  app.Recommender,
		Bundles: bundlesSvc,
		Users:   usersSvc,
	}

	app.BundlesRepo = bundlesRepo
	app.UsersRepo = usersRepo
	app.BundlesService = bundlesSvc
	app.UsersService = usersSvc
	app.SubmissionService = submissionSvc
	app.SubmissionHandler = submissions.NewHandler(submissionSvc)
	app.UploadHandler = uploads.NewHandler(app.Config.MaxUploadBytes)
	app.BundleHandler = bundles.NewHandler(bundlesSvc)

	if app.SubmissionHandler == nil || app.UploadHandler == nil || app.BundleHandler == nil {
		return errors.New("failed to initialize handlers")
	}

	return nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
