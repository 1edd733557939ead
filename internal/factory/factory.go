package factory

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/clinicio/clinicio/internal/credential"
	"github.com/clinicio/clinicio/internal/dependencies/clock"
	"github.com/clinicio/clinicio/internal/dependencies/random"
	"github.com/clinicio/clinicio/internal/services/analytics"
	"github.com/clinicio/clinicio/internal/services/appointment"
	"github.com/clinicio/clinicio/internal/services/auth"
	"github.com/clinicio/clinicio/internal/services/patient"
	"github.com/clinicio/clinicio/internal/services/queue"
	"github.com/clinicio/clinicio/internal/storage"
	"github.com/clinicio/clinicio/internal/storage/memory"
	redisstorage "github.com/clinicio/clinicio/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random
	Hasher credential.Hasher

	// Services
	AuthService        *auth.Service
	PatientService     *patient.Service
	AppointmentService *appointment.Service
	QueueService       *queue.Service
	AnalyticsService   *analytics.Service
}

// Config holds configuration for the application factory
type Config struct {
	// AuthConfig holds configuration for the auth service (optional)
	// If zero value, defaults to auth.DefaultConfig()
	AuthConfig auth.Config
	// HashConfig selects the scheme new credentials are hashed with (optional)
	// If zero value, defaults to credential.DefaultConfig()
	HashConfig credential.Config
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	hashCfg := cfg.HashConfig
	if hashCfg.Scheme == "" {
		hashCfg.Scheme = credential.DefaultConfig().Scheme
	}
	hasher, err := credential.NewHasher(hashCfg)
	if err != nil {
		return nil, fmt.Errorf("hasher: %w", err)
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	// Use default auth config if not provided
	authCfg := cfg.AuthConfig
	if authCfg.SessionDuration == 0 {
		authCfg = auth.DefaultConfig()
	}

	return newWithDependencies(store, clock.New(), random.New(), hasher, authCfg, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, hasher credential.Hasher, authCfg auth.Config, logger *slog.Logger) *App {
	return &App{
		Storage:            store,
		Clock:              clk,
		Random:             rnd,
		Hasher:             hasher,
		AuthService:        auth.New(store, clk, rnd, hasher, authCfg, logger),
		PatientService:     patient.New(store, clk, logger),
		AppointmentService: appointment.New(store, clk, logger),
		QueueService:       queue.New(store, clk, logger),
		AnalyticsService:   analytics.New(store),
	}
}

// Close releases the storage backend if it holds connections
func (a *App) Close() error {
	if c, ok := a.Storage.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
