// Package di wires the application graph. The data access backend (memory
// or postgres) is chosen here, once, at construction time.
package di

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/The-boat-boat/sponsorreel/internal/handler"
	"github.com/The-boat-boat/sponsorreel/internal/repository"
	"github.com/The-boat-boat/sponsorreel/internal/service"
	"github.com/The-boat-boat/sponsorreel/internal/store"
	"github.com/The-boat-boat/sponsorreel/pkg/activity"
	"github.com/The-boat-boat/sponsorreel/pkg/config"
	"github.com/The-boat-boat/sponsorreel/pkg/database"
	"github.com/The-boat-boat/sponsorreel/pkg/middleware"
	"github.com/The-boat-boat/sponsorreel/pkg/session"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config

	// Infrastructure; nil when the backend does not need it
	DB          *database.PostgresDB
	RedisClient *redis.Client
	Publisher   activity.Publisher

	// Services
	AuthService      service.AuthService
	EventService     service.EventService
	SponsorService   service.SponsorService
	DashboardService service.DashboardService

	// Client-side state
	SessionStore      session.Store
	AuthStore         *store.AuthStore
	EventsStore       *store.EventsStore
	SponsorsStore     *store.SponsorsStore
	ApplicationsStore *store.ApplicationsStore

	// HTTP layer
	AuthMiddleware   gin.HandlerFunc
	AuthHandler      *handler.AuthHandler
	EventHandler     *handler.EventHandler
	SponsorHandler   *handler.SponsorHandler
	DashboardHandler *handler.DashboardHandler
	HealthHandler    *handler.HealthHandler
}

// New builds the container for the configured backend
func New(ctx context.Context, cfg *config.Config) (*Container, error) {
	c := &Container{Config: cfg}

	if cfg.Session.UseRedis || cfg.App.Backend == config.BackendPostgres {
		c.RedisClient = redis.NewClient(&redis.Options{
			Addr:         cfg.Redis.Addr(),
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			PoolSize:     cfg.Redis.PoolSize,
			MinIdleConns: cfg.Redis.MinIdleConns,
			DialTimeout:  cfg.Redis.DialTimeout,
			ReadTimeout:  cfg.Redis.ReadTimeout,
			WriteTimeout: cfg.Redis.WriteTimeout,
		})
	}

	if cfg.Kafka.Enabled {
		pub, err := activity.NewKafkaPublisher(&activity.KafkaConfig{
			Brokers:  cfg.Kafka.Brokers,
			ClientID: cfg.Kafka.ClientID,
			Topic:    cfg.Kafka.ActivityTopic,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create activity publisher: %w", err)
		}
		c.Publisher = pub
	} else {
		c.Publisher = activity.NopPublisher{}
	}

	switch cfg.App.Backend {
	case config.BackendMemory:
		if err := c.buildMemoryBackend(); err != nil {
			return nil, err
		}
	case config.BackendPostgres:
		if err := c.buildPostgresBackend(ctx); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown backend: %s", cfg.App.Backend)
	}

	if cfg.Session.UseRedis {
		c.SessionStore = session.NewRedisStore(c.RedisClient, "")
	} else {
		c.SessionStore = session.NewFileStore(cfg.Session.FilePath)
	}

	c.AuthStore = store.NewAuthStore(c.AuthService, c.SessionStore)
	c.EventsStore = store.NewEventsStore(c.EventService)
	c.SponsorsStore = store.NewSponsorsStore(c.SponsorService)
	c.ApplicationsStore = store.NewApplicationsStore(c.EventService)

	c.AuthHandler = handler.NewAuthHandler(c.AuthService)
	c.EventHandler = handler.NewEventHandler(c.EventService, c.SponsorService)
	c.SponsorHandler = handler.NewSponsorHandler(c.SponsorService)
	c.DashboardHandler = handler.NewDashboardHandler(c.DashboardService)

	return c, nil
}

// buildMemoryBackend wires the fixture-backed stack. Sessions are opaque
// tokens resolved through the auth service.
func (c *Container) buildMemoryBackend() error {
	memStore := repository.NewMemoryStore(repository.DefaultSeed())

	eventRepo := repository.NewMemoryEventRepository(memStore)
	sponsorRepo := repository.NewMemorySponsorRepository(memStore)
	appRepo := repository.NewMemoryApplicationRepository(memStore)
	activityRepo := repository.NewMemoryActivityRepository(memStore)
	dashRepo := repository.NewMemoryDashboardRepository(memStore)

	c.AuthService = service.NewMemoryAuthService(memStore)
	c.EventService = service.NewEventService(eventRepo, appRepo, activityRepo, c.Publisher)
	c.SponsorService = service.NewMemorySponsorService(sponsorRepo, nil)
	c.DashboardService = service.NewDashboardService(dashRepo, activityRepo)

	authService := c.AuthService
	c.AuthMiddleware = middleware.SessionMiddleware(func(ctx context.Context, token string) (string, string, string, error) {
		profile, err := authService.GetCurrentUser(ctx, token)
		if err != nil {
			return "", "", "", err
		}
		return profile.ID, profile.Email, string(profile.UserType), nil
	})

	c.HealthHandler = handler.NewHealthHandler(nil)
	return nil
}

// buildPostgresBackend wires the database-backed stack. Sessions are JWTs
// validated at the middleware.
func (c *Container) buildPostgresBackend(ctx context.Context) error {
	db, err := database.NewPostgresDB(ctx, &database.PostgresConfig{
		Host:            c.Config.Database.Host,
		Port:            c.Config.Database.Port,
		User:            c.Config.Database.User,
		Password:        c.Config.Database.Password,
		Database:        c.Config.Database.DBName,
		SSLMode:         c.Config.Database.SSLMode,
		MaxConns:        int32(c.Config.Database.MaxConns),
		MinConns:        int32(c.Config.Database.MinConns),
		ConnMaxLifetime: c.Config.Database.ConnMaxLifetime,
		ConnMaxIdleTime: c.Config.Database.ConnMaxIdleTime,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to postgres: %w", err)
	}
	c.DB = db
	pool := db.Pool()

	profileRepo := repository.NewPostgresProfileRepository(pool)
	credRepo := repository.NewPostgresCredentialRepository(pool)
	eventRepo := repository.NewPostgresEventRepository(pool)
	sponsorRepo := repository.NewPostgresSponsorRepository(pool)
	appRepo := repository.NewPostgresApplicationRepository(pool)
	activityRepo := repository.NewPostgresActivityRepository(pool)
	dashRepo := repository.NewPostgresDashboardRepository(pool)

	c.AuthService = service.NewRemoteAuthService(
		credRepo,
		profileRepo,
		c.RedisClient,
		c.Config.JWT.Secret,
		c.Config.JWT.TokenTTL,
		c.Config.JWT.Issuer,
	)
	c.EventService = service.NewEventService(eventRepo, appRepo, activityRepo, c.Publisher)
	c.SponsorService = service.NewPostgresSponsorService(sponsorRepo, nil)
	c.DashboardService = service.NewDashboardService(dashRepo, activityRepo)

	c.AuthMiddleware = middleware.JWTMiddleware(&middleware.JWTConfig{Secret: c.Config.JWT.Secret})

	c.HealthHandler = handler.NewHealthHandler(map[string]handler.HealthChecker{
		"postgres": func(gc *gin.Context) error { return db.Ping(gc.Request.Context()) },
		"redis": func(gc *gin.Context) error {
			return c.RedisClient.Ping(gc.Request.Context()).Err()
		},
	})
	return nil
}

// Close releases held resources
func (c *Container) Close() {
	if c.Publisher != nil {
		_ = c.Publisher.Close()
	}
	if c.DB != nil {
		c.DB.Close()
	}
	if c.RedisClient != nil {
		_ = c.RedisClient.Close()
	}
}
