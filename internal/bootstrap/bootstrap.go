package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/coursereg/internal/app/controllers"
	appMigrations "github.com/yigit/coursereg/internal/app/migrations"
	appRepos "github.com/yigit/coursereg/internal/app/repositories"
	appRoutes "github.com/yigit/coursereg/internal/app/routes"
	appServices "github.com/yigit/coursereg/internal/app/services"
	"github.com/yigit/coursereg/internal/config"
	"github.com/yigit/coursereg/internal/db"
	"github.com/yigit/coursereg/internal/metrics"
	appMiddleware "github.com/yigit/coursereg/internal/middleware"
	"github.com/yigit/coursereg/internal/pkg/clock"
	"github.com/yigit/coursereg/internal/pkg/events"
	"github.com/yigit/coursereg/internal/pkg/lock"
	"github.com/yigit/coursereg/internal/pkg/logger"
	"github.com/yigit/coursereg/internal/pkg/tracing"
	"github.com/yigit/coursereg/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Gateway                *appRepos.Gateway
	RegistrationService    appServices.RegistrationService
	RegistrationController *appControllers.RegistrationController
	HealthController       *appControllers.HealthController
	MetricsHandler         http.Handler
	Metrics                *metrics.Metrics
	Locker                 lock.Locker
	Publisher              events.Publisher
	Tracing                *tracing.Provider
	Logger                 zerolog.Logger

	redis *redis.Client
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logCfg := logger.FromStrings(cfg.Logging.Level, cfg.Logging.Format)
	logCfg.Service = cfg.Tracing.ServiceName
	lgr := logger.Configure(logCfg)

	lgr.Info().Str("logLevel", string(logCfg.Level)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and seeds development data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Str("host", cfg.Database.Host).Str("database", cfg.Database.DBName).Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	lgr.Info().Msg("Running database migrations...")
	if err := appMigrations.NewMigrator(database.Pool).Migrate(ctx); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if cfg.Seed.Enabled {
		if err := seed.CreateDefaultData(ctx, database, time.Now(), lgr); err != nil {
			// Seed data is a convenience; the service works without it.
			lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
		}
	}

	return database, nil
}

// BuildDependencies initializes repositories, infrastructure adapters, services and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	deps.Metrics = metrics.New(registry)
	deps.MetricsHandler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	provider, err := tracing.NewProvider(tracing.Config{
		Enabled:     cfg.Tracing.Enabled,
		Exporter:    cfg.Tracing.Exporter,
		SampleRate:  cfg.Tracing.SampleRate,
		ServiceName: cfg.Tracing.ServiceName,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize tracing: %w", err)
	}
	deps.Tracing = provider

	if err := deps.setupLocker(cfg); err != nil {
		deps.Close(context.Background())
		return nil, err
	}

	if err := deps.setupPublisher(cfg); err != nil {
		deps.Close(context.Background())
		return nil, err
	}

	pricing := appServices.Pricing{
		DiscountThreshold: cfg.Pricing.DiscountThreshold,
		DiscountPercent:   cfg.Pricing.DiscountPercent,
	}
	if err := pricing.Validate(); err != nil {
		deps.Close(context.Background())
		return nil, fmt.Errorf("invalid pricing: %w", err)
	}

	var (
		gateway appServices.Gateway
		pinger  appControllers.Pinger
	)
	if database != nil {
		deps.Gateway = appRepos.NewGateway(appRepos.NewRepositories(database.Pool))
		gateway = deps.Gateway
		pinger = database
	}

	deps.RegistrationService = appServices.NewRegistrationService(
		gateway,
		appServices.WithClock(clock.System()),
		appServices.WithLocker(deps.Locker),
		appServices.WithPublisher(deps.Publisher),
		appServices.WithMetrics(deps.Metrics),
		appServices.WithTracer(provider.Tracer()),
		appServices.WithPricing(pricing),
		appServices.WithLogger(lgr),
	)

	deps.RegistrationController = appControllers.NewRegistrationController(deps.RegistrationService)
	deps.HealthController = appControllers.NewHealthController(pinger)

	return deps, nil
}

func (d *Dependencies) setupLocker(cfg *config.Config) error {
	if cfg.Redis.URL == "" {
		d.Locker = lock.NewMemoryLocker()
		d.Logger.Info().Msg("Using in-process student locks")
		return nil
	}

	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		return fmt.Errorf("invalid redis url: %w", err)
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return fmt.Errorf("failed to reach redis: %w", err)
	}

	locker, err := lock.NewRedisLocker(client, cfg.Redis.LockTTL, 0)
	if err != nil {
		_ = client.Close()
		return err
	}
	d.redis = client
	d.Locker = locker
	d.Logger.Info().Str("addr", opts.Addr).Dur("ttl", cfg.Redis.LockTTL).Msg("Using redis student locks")
	return nil
}

func (d *Dependencies) setupPublisher(cfg *config.Config) error {
	if len(cfg.Kafka.Brokers) == 0 {
		d.Publisher = events.NoopPublisher{}
		return nil
	}

	publisher, err := events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, cfg.Kafka.ProduceTimeout)
	if err != nil {
		return fmt.Errorf("failed to initialize event publisher: %w", err)
	}
	d.Publisher = publisher
	d.Logger.Info().Strs("brokers", cfg.Kafka.Brokers).Str("topic", cfg.Kafka.Topic).Msg("Publishing registration events to kafka")
	return nil
}

// Close releases the infrastructure clients built by BuildDependencies
func (d *Dependencies) Close(ctx context.Context) error {
	var errs []error
	if d.Publisher != nil {
		d.Publisher.Close()
	}
	if d.redis != nil {
		if err := d.redis.Close(); err != nil {
			errs = append(errs, fmt.Errorf("redis close: %w", err))
		}
	}
	if d.Tracing != nil {
		if err := d.Tracing.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracing shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
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

	router := gin.New()
	router.Use(gin.Recovery(), appMiddleware.RequestLogger(lgr))

	appRoutes.SetupRouter(router,
		deps.RegistrationController,
		deps.HealthController,
		deps.MetricsHandler,
	)

	return router
}
