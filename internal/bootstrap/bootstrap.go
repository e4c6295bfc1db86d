package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/yigit/sectiontrack/internal/app/controllers"
	appMigrations "github.com/yigit/sectiontrack/internal/app/migrations"
	appRepos "github.com/yigit/sectiontrack/internal/app/repositories"
	appRoutes "github.com/yigit/sectiontrack/internal/app/routes"
	appServices "github.com/yigit/sectiontrack/internal/app/services"
	"github.com/yigit/sectiontrack/internal/config"
	"github.com/yigit/sectiontrack/internal/db"
	appMiddleware "github.com/yigit/sectiontrack/internal/middleware"
	"github.com/yigit/sectiontrack/internal/pkg/logger"
	"github.com/yigit/sectiontrack/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	UserService       appServices.UserService    // Interface type
	SectionService    appServices.SectionService // Interface type
	StudentService    appServices.StudentService // Interface type
	UserController    *appControllers.UserController
	SectionController *appControllers.SectionController
	StudentController *appControllers.StudentController
	HealthController  *appControllers.HealthController
	Repos             *appRepos.Repositories // Include the main repo container
	Redis             *db.Redis              // nil when no redis is configured
	Limiter           appMiddleware.Limiter
	Metrics           *appMiddleware.Metrics
	Logger            zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	if p := os.Getenv(config.EnvPrefix + "CONFIG"); p != "" {
		configPath = p
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:   logLevel,
		Pretty:  prettyLog,
		Service: "sectiontrack",
	})

	lgr := log.Logger // Get the configured global logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds demo data when enabled.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := database.Pool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		database.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool)

	migrationsDir := cfg.Database.MigrationsDir
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		database.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(context.Background(), migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if cfg.Seed.Enabled {
		if err := seed.CreateDefaultData(context.Background(), database, lgr); err != nil {
			// Log the error but don't fail the startup
			lgr.Error().Err(err).Msg("Failed to create demo data, proceeding anyway...")
		}
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database.Pool)

	deps.UserService = appServices.NewUserService(deps.Repos.UserRepository)
	deps.SectionService = appServices.NewSectionService(deps.Repos.SectionRepository, deps.Repos.StudentRepository)
	deps.StudentService = appServices.NewStudentService(
		deps.Repos.StudentRepository,
		deps.Repos.SectionRepository,
		deps.Repos.MentorRepository,
		deps.Repos.AttendanceRepository,
	)

	deps.UserController = appControllers.NewUserController(deps.UserService)
	deps.SectionController = appControllers.NewSectionController(deps.SectionService)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService)

	var redisCheck appControllers.HealthChecker
	deps.Redis = db.NewRedis(cfg)
	if deps.Redis != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if !deps.Redis.Healthy(ctx) {
			lgr.Warn().Str("addr", cfg.Redis.Addr).Msg("Redis not reachable at startup")
		}
		redisCheck = deps.Redis
	}
	deps.HealthController = appControllers.NewHealthController(database, redisCheck)

	if cfg.RateLimit.Enabled {
		if deps.Redis != nil {
			deps.Limiter = appMiddleware.NewRedisWindow(deps.Redis.Client, cfg.RateLimit.PerMinute)
			lgr.Info().Int("perMinute", cfg.RateLimit.PerMinute).Msg("Rate limiting backed by redis")
		} else {
			deps.Limiter = appMiddleware.NewTokenBucket(cfg.RateLimit.PerMinute, cfg.RateLimit.PerMinute)
			lgr.Info().Int("perMinute", cfg.RateLimit.PerMinute).Msg("Rate limiting in memory")
		}
	}

	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		deps.Metrics = appMiddleware.NewMetrics(reg)
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}
	appMiddleware.RegisterValidators()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger("/health", cfg.Metrics.Path))

	if deps.Metrics != nil {
		router.Use(deps.Metrics.Middleware())
		router.GET(cfg.Metrics.Path, deps.Metrics.Handler())
	}

	appRoutes.SetupSwagger(router)
	appRoutes.SetupHealth(router, deps.HealthController)

	// Registered after swagger and health, so only the API routes are limited
	if deps.Limiter != nil {
		router.Use(appMiddleware.RateLimit(deps.Limiter))
	}

	appRoutes.SetupRouter(router,
		deps.UserController,
		deps.SectionController,
		deps.StudentController,
	)

	return router
}
