package app

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sm8ta/webike_repair_shop/internal/adapter/handler/http"
	"github.com/sm8ta/webike_repair_shop/internal/adapter/logger"
	"github.com/sm8ta/webike_repair_shop/internal/adapter/postgres"
	"github.com/sm8ta/webike_repair_shop/internal/adapter/prometheus"
	"github.com/sm8ta/webike_repair_shop/internal/adapter/redis"
	"github.com/sm8ta/webike_repair_shop/internal/config"
	"github.com/sm8ta/webike_repair_shop/internal/core/ports"
	"github.com/sm8ta/webike_repair_shop/internal/core/services"

	"github.com/go-playground/validator/v10"
	"github.com/juju/clock"
	"github.com/pressly/goose"
	prom "github.com/prometheus/client_golang/prometheus"
	redisClient "github.com/redis/go-redis/v9"
)

const migrationsDir = "./internal/adapter/postgres/migrations"

type App struct {
	Config       *config.Container
	Logger       ports.LoggerPort
	DB           *sql.DB
	RedisClient  *redisClient.Client
	RedisAdapter ports.CachePort
	HTTPRouter   *http.Router
}

func New(ctx context.Context, cfg *config.Container) (*App, error) {
	// Set logger
	loggerAdapter := logger.NewLoggerAdapter(cfg.App.Env)
	loggerAdapter.Info("Starting the application", map[string]interface{}{
		"app": cfg.App.Name,
		"env": cfg.App.Env,
	})

	// Set redis
	redisConn := redisClient.NewClient(&redisClient.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if _, err := redisConn.Ping(ctx).Result(); err != nil {
		redisConn.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	cacheAdapter := redis.NewRedisAdapter(redisConn)

	// Connect DB
	db, err := sql.Open("postgres", cfg.DB.DSN())
	if err != nil {
		redisConn.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		redisConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// Migrate DB
	if err := goose.Up(db, migrationsDir); err != nil {
		db.Close()
		redisConn.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Validate
	validate := validator.New()

	// Observability
	metrics := prometheus.NewPrometheusAdapter(prom.DefaultRegisterer)

	// Repositories
	customerRepo := postgres.NewCustomerRepository(db)
	bikeRepo := postgres.NewBikeRepository(db)
	recordRepo := postgres.NewServiceRecordRepository(db)

	// Services
	customerService := services.NewCustomerService(customerRepo, loggerAdapter, validate, cacheAdapter, cfg.Cache.TTL)
	bikeService := services.NewBikeService(bikeRepo, customerRepo, loggerAdapter, validate, cacheAdapter, cfg.Cache.TTL)
	recordService := services.NewServiceRecordService(recordRepo, bikeRepo, loggerAdapter, validate, clock.WallClock)

	// HTTP Handlers
	customerHandler := http.NewCustomerHandler(customerService, loggerAdapter, metrics)
	bikeHandler := http.NewBikeHandler(bikeService, loggerAdapter, metrics)
	recordHandler := http.NewServiceRecordHandler(recordService, loggerAdapter, metrics)

	// Init HTTP router
	router, err := http.NewRouter(
		cfg.HTTP,
		customerHandler,
		bikeHandler,
		recordHandler,
	)
	if err != nil {
		db.Close()
		redisConn.Close()
		return nil, fmt.Errorf("failed to initialize router: %w", err)
	}

	return &App{
		Config:       cfg,
		Logger:       loggerAdapter,
		DB:           db,
		RedisClient:  redisConn,
		RedisAdapter: cacheAdapter,
		HTTPRouter:   router,
	}, nil
}

// Run blocks serving HTTP until Stop is called.
func (a *App) Run() error {
	listenAddr := a.Config.HTTP.Addr()
	a.Logger.Info("Starting HTTP server", map[string]interface{}{
		"addr": listenAddr,
	})

	if err := a.HTTPRouter.Serve(listenAddr); err != nil {
		a.Logger.Error("HTTP server error", map[string]interface{}{
			"error": err.Error(),
		})
		return err
	}
	return nil
}

// Stops all services
func (a *App) Stop(ctx context.Context) error {
	a.Logger.Info("Shutting down gracefully...", nil)

	var shutdownErr error
	if err := a.HTTPRouter.Shutdown(ctx); err != nil {
		a.Logger.Error("HTTP server shutdown error", map[string]interface{}{
			"error": err.Error(),
		})
		shutdownErr = err
	}

	// Close database
	if err := a.DB.Close(); err != nil {
		a.Logger.Error("Database close error", map[string]interface{}{
			"error": err.Error(),
		})
	}

	// Close Redis
	if err := a.RedisClient.Close(); err != nil {
		a.Logger.Error("Redis close error", map[string]interface{}{
			"error": err.Error(),
		})
	}

	a.Logger.Info("Application stopped successfully", nil)
	return shutdownErr
}
