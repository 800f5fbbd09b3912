package di

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/nxank4/website-llct-sub003/internal/domain/repository"
	"github.com/nxank4/website-llct-sub003/internal/domain/service"
	"github.com/nxank4/website-llct-sub003/internal/infrastructure/backend"
	"github.com/nxank4/website-llct-sub003/internal/infrastructure/cache"
	"github.com/nxank4/website-llct-sub003/internal/infrastructure/draft"
	"github.com/nxank4/website-llct-sub003/internal/infrastructure/notify"
	"github.com/nxank4/website-llct-sub003/internal/infrastructure/storage"
	"github.com/nxank4/website-llct-sub003/pkg/config"
	"github.com/nxank4/website-llct-sub003/pkg/jwt"
)

// Container はアプリケーションの依存関係を保持するDIコンテナです
type Container struct {
	// Infrastructure
	RedisClient *cache.RedisClient
	MinIOClient *storage.MinIOClient

	// Services
	JWTService     *jwt.JWTService
	RateLimiter    *cache.RateLimiter
	ProfileSvc     service.ProfileService
	PreferencesSvc service.PreferencesService
	AvatarStorage  service.AvatarStorage
	IdentityCache  *cache.IdentityCache
	Notifier       service.Notifier

	// Repositories
	DraftRepo repository.DraftRepository

	// Settings UseCases
	Settings *SettingsUseCases

	// config
	config *config.Config
}

// NewContainer は新しいContainerを作成します
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	return NewContainerWithOptions(ctx, cfg, Options{})
}

// NewContainerWithOptions はオプションを指定してContainerを作成します
func NewContainerWithOptions(ctx context.Context, cfg *config.Config, opts Options) (*Container, error) {
	c := &Container{
		config: cfg,
	}

	// Backend API client
	backendClient := backend.NewClient(backend.Config{
		BaseURL: cfg.Backend.BaseURL,
		Timeout: cfg.Backend.Timeout,
	})
	c.ProfileSvc = backend.NewProfileClient(backendClient)
	c.PreferencesSvc = backend.NewPreferencesClient(backendClient)

	// Redis
	var redisClient *redis.Client
	if opts.RedisClient != nil {
		redisClient = opts.RedisClient
	} else {
		slog.Info("connecting to Redis...")
		redisConfig := cache.DefaultConfig()
		redisConfig.URL = cfg.Redis.URL
		client, err := cache.NewRedisClient(redisConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		c.RedisClient = client
		redisClient = client.Client()
		slog.Info("connected to Redis")
	}
	c.RateLimiter = cache.NewRateLimiter(redisClient)
	c.IdentityCache = cache.NewIdentityCache(redisClient, c.ProfileSvc)

	// MinIO
	if opts.AvatarStorage != nil {
		c.AvatarStorage = opts.AvatarStorage
	} else {
		minioClient, err := storage.NewMinIOClient(storage.Config{
			Endpoint:        cfg.Storage.Endpoint,
			AccessKeyID:     cfg.Storage.AccessKeyID,
			SecretAccessKey: cfg.Storage.SecretAccessKey,
			BucketName:      cfg.Storage.BucketName,
			UseSSL:          cfg.Storage.UseSSL,
			Region:          storage.DefaultConfig().Region,
			PublicBaseURL:   cfg.Storage.PublicBaseURL,
		})
		if err != nil {
			c.Close()
			return nil, fmt.Errorf("failed to create MinIO client: %w", err)
		}
		if err := minioClient.EnsureBucket(ctx); err != nil {
			c.Close()
			return nil, fmt.Errorf("failed to ensure bucket: %w", err)
		}
		c.MinIOClient = minioClient
		c.AvatarStorage = storage.NewAvatarStore(minioClient)
	}

	// JWT Service
	c.JWTService = jwt.NewJWTService(jwt.Config{
		SecretKey:         cfg.JWT.SecretKey,
		Issuer:            cfg.JWT.Issuer,
		Audience:          cfg.JWT.Audience,
		AccessTokenExpiry: jwt.DefaultConfig().AccessTokenExpiry,
	})

	// Draft store
	c.DraftRepo = draft.NewStore(cfg.Draft.TTL)

	// Notifier
	c.Notifier = notify.NewLogNotifier()

	return c, nil
}

// InitSettingsUseCases はSettings UseCasesを初期化します
func (c *Container) InitSettingsUseCases() {
	c.Settings = NewSettingsUseCases(c)
}

// Close はリソースをクリーンアップします
func (c *Container) Close() error {
	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			return fmt.Errorf("failed to close Redis: %w", err)
		}
	}
	return nil
}

// Options はContainer作成時のオプションを定義します
type Options struct {
	RedisClient   *redis.Client
	AvatarStorage service.AvatarStorage
}
