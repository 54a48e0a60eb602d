package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/arifsetiawan/magangdik/docs" // Import generated swagger docs
	appControllers "github.com/arifsetiawan/magangdik/internal/app/controllers"
	appMigrations "github.com/arifsetiawan/magangdik/internal/app/migrations"
	appRepos "github.com/arifsetiawan/magangdik/internal/app/repositories"
	appRoutes "github.com/arifsetiawan/magangdik/internal/app/routes"
	appServices "github.com/arifsetiawan/magangdik/internal/app/services"
	"github.com/arifsetiawan/magangdik/internal/config"
	"github.com/arifsetiawan/magangdik/internal/db"
	appMiddleware "github.com/arifsetiawan/magangdik/internal/middleware"
	pkgAuth "github.com/arifsetiawan/magangdik/internal/pkg/auth"
	"github.com/arifsetiawan/magangdik/internal/pkg/filestorage"
	"github.com/arifsetiawan/magangdik/internal/pkg/helpers"
	"github.com/arifsetiawan/magangdik/internal/pkg/logger"
	"github.com/arifsetiawan/magangdik/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService         *appServices.AuthService
	AdminService        *appServices.AdminService
	ApplicantService    *appServices.ApplicantService
	PositionService     *appServices.PositionService
	ResearchService     *appServices.ResearchService
	HolidayService      *appServices.HolidayService
	SettingService      *appServices.SettingService
	StatsService        *appServices.StatsService
	AuthController      *appControllers.AuthController
	AdminController     *appControllers.AdminController
	ApplicantController *appControllers.ApplicantController
	PositionController  *appControllers.PositionController
	ResearchController  *appControllers.ResearchController
	HolidayController   *appControllers.HolidayController
	SettingController   *appControllers.SettingController
	StatsController     *appControllers.StatsController
	AuthMiddleware      *appMiddleware.AuthMiddleware
	Repos               *appRepos.Repositories
	JWTService          *pkgAuth.JWTService
	Logger              zerolog.Logger
	FileStorage         *filestorage.LocalStorage
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

// SetupDatabase establishes the database connection, runs migrations and
// seeds default data.
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
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		// Missing seed data is not fatal; the portal can run without it
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	// Stored documents are served under /uploads; the base URL must match
	// the static file route configured on the server.
	var err error
	baseURL := "http://localhost:" + cfg.Server.Port
	fileStorageBaseURL := baseURL + "/uploads"
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, fileStorageBaseURL)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.Session.Secret,
		SessionExp:  helpers.ParseDuration(cfg.Session.Expiration, 8*time.Hour),
		TokenIssuer: cfg.Session.Issuer,
	})

	txRunner := appRepos.NewApplicantTxRunner(dbPool, deps.Repos.ApplicantRepository, deps.Repos.PositionRepository)

	deps.AuthService = appServices.NewAuthService(deps.Repos.AdminRepository, deps.JWTService)
	deps.AdminService = appServices.NewAdminService(deps.Repos.AdminRepository)
	deps.ApplicantService = appServices.NewApplicantService(
		deps.Repos.ApplicantRepository,
		deps.Repos.HolidayRepository,
		txRunner,
		deps.FileStorage,
	)
	deps.PositionService = appServices.NewPositionService(deps.Repos.PositionRepository)
	deps.ResearchService = appServices.NewResearchService(deps.Repos.ResearchRequestRepository)
	deps.HolidayService = appServices.NewHolidayService(deps.Repos.HolidayRepository)
	deps.SettingService = appServices.NewSettingService(deps.Repos.SettingRepository)
	deps.StatsService = appServices.NewStatsService(
		deps.Repos.ApplicantRepository,
		deps.Repos.ResearchRequestRepository,
		deps.Repos.PositionRepository,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, cfg.Session.CookieName)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, cfg.Session.CookieName)
	deps.AdminController = appControllers.NewAdminController(deps.AdminService)
	deps.ApplicantController = appControllers.NewApplicantController(deps.ApplicantService)
	deps.PositionController = appControllers.NewPositionController(deps.PositionService)
	deps.ResearchController = appControllers.NewResearchController(deps.ResearchService)
	deps.HolidayController = appControllers.NewHolidayController(deps.HolidayService)
	deps.SettingController = appControllers.NewSettingController(deps.SettingService)
	deps.StatsController = appControllers.NewStatsController(deps.StatsService)

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

	router := gin.New()
	router.Use(appMiddleware.RequestLogger(), gin.Recovery())

	// Setup Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	// Setup API routes using the dependencies
	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.AdminController,
		deps.ApplicantController,
		deps.PositionController,
		deps.ResearchController,
		deps.HolidayController,
		deps.SettingController,
		deps.StatsController,
		deps.AuthMiddleware,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
