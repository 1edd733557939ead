package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/clinicio/clinicio/internal/api"
	"github.com/clinicio/clinicio/internal/credential"
	"github.com/clinicio/clinicio/internal/factory"
	"github.com/clinicio/clinicio/internal/services/auth"
	redisstorage "github.com/clinicio/clinicio/internal/storage/redis"
)

// sessionSweepInterval is how often expired sessions are dropped
const sessionSweepInterval = 10 * time.Minute

func main() {
	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, serverConfig, err := loadConfig()
	if err != nil {
		logger.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}
	cfg.Logger = logger

	// Create application factory
	app, err := factory.New(cfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = app.Close() }()

	logger.Info("application configured",
		slog.String("storage", cfg.StorageType),
		slog.String("hash_scheme", string(app.Hasher.Scheme())),
	)

	// Create API router
	router := api.NewRouter(api.RouterConfig{
		Logger:             logger,
		AuthService:        app.AuthService,
		PatientService:     app.PatientService,
		AppointmentService: app.AppointmentService,
		QueueService:       app.QueueService,
		AnalyticsService:   app.AnalyticsService,
	})

	// Create server
	server := api.NewServer(router, serverConfig, logger)

	// Handle graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	go sweepSessions(ctx, app.AuthService)

	if err := server.Run(ctx); err != nil {
		logger.Error("server error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// loadConfig builds factory and server config from the environment
func loadConfig() (factory.Config, api.ServerConfig, error) {
	cfg := factory.Config{
		StorageType: getEnvOrDefault("STORAGE_TYPE", factory.StorageTypeMemory),
		HashConfig:  credential.DefaultConfig(),
		AuthConfig:  auth.DefaultConfig(),
	}
	serverConfig := api.DefaultServerConfig()

	// Configure Redis if storage type is redis
	if cfg.StorageType == factory.StorageTypeRedis {
		redisURL := os.Getenv("REDIS_URL")
		if redisURL == "" {
			return cfg, serverConfig, fmt.Errorf("REDIS_URL required when STORAGE_TYPE=redis")
		}
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = redisURL
		cfg.RedisConfig = &redisCfg
	}

	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return cfg, serverConfig, fmt.Errorf("PORT: %w", err)
		}
		serverConfig.Port = port
	}

	if v := os.Getenv("HASH_SCHEME"); v != "" {
		cfg.HashConfig.Scheme = credential.Scheme(v)
	}
	if v := os.Getenv("BCRYPT_COST"); v != "" {
		cost, err := strconv.Atoi(v)
		if err != nil {
			return cfg, serverConfig, fmt.Errorf("BCRYPT_COST: %w", err)
		}
		cfg.HashConfig.BcryptCost = cost
	}

	if v := os.Getenv("SESSION_DURATION"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return cfg, serverConfig, fmt.Errorf("SESSION_DURATION: %w", err)
		}
		if d <= 0 {
			return cfg, serverConfig, fmt.Errorf("SESSION_DURATION must be positive, got %s", d)
		}
		cfg.AuthConfig.SessionDuration = d
	}

	return cfg, serverConfig, nil
}

func sweepSessions(ctx context.Context, authService *auth.Service) {
	ticker := time.NewTicker(sessionSweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			authService.CleanExpiredSessions()
		}
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
