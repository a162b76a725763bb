// Package bootstrap wires configuration, storage, services and
// controllers into a runnable application.
package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/maithili/projectvault/internal/app/access"
	appControllers "github.com/maithili/projectvault/internal/app/controllers"
	appMigrations "github.com/maithili/projectvault/internal/app/migrations"
	appRepos "github.com/maithili/projectvault/internal/app/repositories"
	appRoutes "github.com/maithili/projectvault/internal/app/routes"
	appServices "github.com/maithili/projectvault/internal/app/services"
	"github.com/maithili/projectvault/internal/config"
	"github.com/maithili/projectvault/internal/db"
	appMiddleware "github.com/maithili/projectvault/internal/middleware"
	pkgAuth "github.com/maithili/projectvault/internal/pkg/auth"
	"github.com/maithili/projectvault/internal/pkg/email"
	"github.com/maithili/projectvault/internal/pkg/filestorage"
	"github.com/maithili/projectvault/internal/pkg/logger"
	"github.com/maithili/projectvault/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService       *appServices.AuthService
	ProjectService    *appServices.ProjectService
	ImportService     *appServices.ImportService
	AuthController    *appControllers.AuthController
	FacultyController *appControllers.FacultyController
	ProjectController *appControllers.ProjectController
	AdminController   *appControllers.AdminController
	AuthMiddleware    *appMiddleware.AuthMiddleware
	Repos             *appRepos.Repositories
	JWTService        *pkgAuth.JWTService
	AccessGate        *access.Gate
	FileStorage       *filestorage.LocalStorage
	Logger            zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations
// and provisions the seed accounts.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool, lgr)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(context.Background(), migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	if err := seed.CreateDefaultData(context.Background(), dbPool, cfg.Seed, lgr); err != nil {
		// Seed failures are logged but never block startup
		lgr.Error().Err(err).Msg("Failed to create default accounts, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes repositories, services and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	tokenExp, err := time.ParseDuration(cfg.JWT.TokenExpiration)
	if err != nil {
		tokenExp = time.Hour
	}
	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    tokenExp,
		TokenIssuer: cfg.JWT.Issuer,
	})

	mailer := email.NewSMTPMailer(email.SMTPConfig{
		Host:        cfg.SMTP.Host,
		Port:        cfg.SMTP.Port,
		Username:    cfg.SMTP.Username,
		Password:    cfg.SMTP.Password,
		FromName:    cfg.SMTP.FromName,
		FromEmail:   cfg.SMTP.FromEmail,
		UseTLS:      cfg.SMTP.UseTLS,
		FrontendURL: cfg.Server.FrontendURL,
	}, lgr)

	deps.AccessGate = access.NewGate()

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.StudentRepository,
		deps.Repos.FacultyRepository,
		mailer,
		deps.JWTService,
		lgr,
	)
	deps.ProjectService = appServices.NewProjectService(deps.Repos.ProjectRepository, deps.FileStorage, lgr)
	deps.ImportService = appServices.NewImportService(
		deps.Repos.StudentRepository,
		deps.Repos.FacultyRepository,
		deps.Repos.ProjectRepository,
		cfg.Seed.FacultyImportPassword,
		lgr,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.FacultyController = appControllers.NewFacultyController(deps.AuthService, deps.AccessGate, lgr)
	deps.ProjectController = appControllers.NewProjectController(deps.ProjectService, deps.ImportService, deps.FileStorage, lgr)
	deps.AdminController = appControllers.NewAdminController(deps.ImportService, lgr)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	appMiddleware.RegisterValidators()

	router := gin.Default()

	// Stored reports are also reachable directly for embedded viewers
	router.Static("/uploads", deps.FileStorage.BasePath())

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.FacultyController,
		deps.ProjectController,
		deps.AdminController,
		deps.AuthMiddleware,
	)

	return router
}
