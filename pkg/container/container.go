package container

import (
	"context"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"portfolio-backend/internal/config"
	authHandler "portfolio-backend/internal/domains/auth/handler"
	authService "portfolio-backend/internal/domains/auth/service"
	mediaHandler "portfolio-backend/internal/domains/media/handler"
	mediaJob "portfolio-backend/internal/domains/media/job"
	mediaService "portfolio-backend/internal/domains/media/service"
	photoHandler "portfolio-backend/internal/domains/photo/handler"
	photoRepo "portfolio-backend/internal/domains/photo/repository"
	photoService "portfolio-backend/internal/domains/photo/service"
	postHandler "portfolio-backend/internal/domains/post/handler"
	postRepo "portfolio-backend/internal/domains/post/repository"
	postService "portfolio-backend/internal/domains/post/service"
	videoHandler "portfolio-backend/internal/domains/video/handler"
	videoRepo "portfolio-backend/internal/domains/video/repository"
	videoService "portfolio-backend/internal/domains/video/service"
	infraCache "portfolio-backend/internal/infrastructure/cache"
	"portfolio-backend/internal/infrastructure/database"
	"portfolio-backend/internal/infrastructure/queue"
	"portfolio-backend/internal/infrastructure/storage"
	"portfolio-backend/internal/shared"
	"portfolio-backend/pkg/cache"
	"portfolio-backend/pkg/jwt"
)

// Container holds every dependency of the API process.
// Build order: infrastructure → repositories → services → handlers.
type Container struct {
	// Infrastructure
	Config      *config.Config
	DB          *database.PostgresDB // nil with STORE_DRIVER=memory
	Redis       *infraCache.RedisClient
	Cache       cache.Cache // Redis, or in-process when Redis is down
	Storage     storage.ObjectStorage
	AsynqClient *asynq.Client // nil when Redis is down
	JWTManager  *jwt.Manager

	// Repositories
	PhotoRepo photoRepo.Repository
	VideoRepo videoRepo.Repository
	PostRepo  postRepo.Repository

	// Services
	MediaCleaner  shared.MediaCleaner
	PhotoService  *photoService.PhotoService
	VideoService  *videoService.VideoService
	PostService   *postService.PostService
	UploadService *mediaService.UploadService
	AuthService   *authService.AuthService

	// Handlers
	PhotoHandler *photoHandler.Handler
	VideoHandler *videoHandler.Handler
	PostHandler  *postHandler.Handler
	MediaHandler *mediaHandler.Handler // nil when object storage is unavailable
	AuthHandler  *authHandler.Handler
}

// NewContainer connects the infrastructure and wires all domains.
// Redis and object storage are optional; the database is not.
func NewContainer(cfg *config.Config) (*Container, error) {
	log.Info().Str("env", cfg.App.Environment).Str("store", cfg.App.StoreDriver).Msg("Initializing DI container")

	c := &Container{
		Config:     cfg,
		JWTManager: jwt.NewManager(cfg.JWT.Secret, time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := c.initDatabase(ctx); err != nil {
		return nil, err
	}
	c.initCache(ctx)
	c.initStorage(ctx)
	c.Wire()

	log.Info().Msg("DI container initialized")
	return c, nil
}

func (c *Container) initDatabase(ctx context.Context) error {
	if c.Config.App.StoreDriver == "memory" {
		log.Warn().Msg("STORE_DRIVER=memory: data is not persisted")
		return nil
	}

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)
	if err := db.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db
	return nil
}

// initCache falls back to an in-process cache and disables background
// jobs when Redis cannot be reached.
func (c *Container) initCache(ctx context.Context) {
	rc := infraCache.NewRedisClient(c.Config.Redis.Host, c.Config.Redis.Password, c.Config.Redis.DB)
	if err := rc.Connect(ctx); err != nil {
		log.Warn().Err(err).Msg("Redis connection failed (non-critical), using in-memory cache")
		c.Cache = cache.NewMemory()
		return
	}

	c.Redis = rc
	c.Cache = rc
	c.AsynqClient = queue.NewClient(c.Config.Redis)
	log.Info().Str("addr", c.Config.Redis.Host).Msg("Redis connected")
}

func (c *Container) initStorage(ctx context.Context) {
	store, err := NewObjectStorage(ctx, c.Config)
	if err != nil {
		log.Warn().Err(err).Str("driver", c.Config.Storage.Driver).Msg("Object storage unavailable, uploads disabled")
		return
	}
	c.Storage = store
}

// NewObjectStorage builds the driver selected by STORAGE_DRIVER.
func NewObjectStorage(ctx context.Context, cfg *config.Config) (storage.ObjectStorage, error) {
	switch cfg.Storage.Driver {
	case "s3":
		return storage.NewS3Storage(ctx, cfg.S3, cfg.Storage.PublicBaseURL)
	default:
		return storage.NewMinIOStorage(ctx, cfg.MinIO, cfg.Storage.PublicBaseURL)
	}
}

// Wire builds repositories, services and handlers on top of whatever
// infrastructure fields are already set. A nil DB selects in-memory repositories.
func (c *Container) Wire() {
	c.initRepositories()
	c.initServices()
	c.initHandlers()
}

func (c *Container) initRepositories() {
	if c.DB == nil {
		c.PhotoRepo = photoRepo.NewMemoryRepository()
		c.VideoRepo = videoRepo.NewMemoryRepository()
		c.PostRepo = postRepo.NewMemoryRepository()
		return
	}

	pool := c.DB.Pool
	c.PhotoRepo = photoRepo.NewPostgresRepository(pool)
	c.VideoRepo = videoRepo.NewPostgresRepository(pool)
	c.PostRepo = postRepo.NewPostgresRepository(pool)
}

func (c *Container) initServices() {
	// interface values stay nil rather than holding typed nil pointers
	var (
		enqueuer mediaJob.Enqueuer
		keys     mediaJob.KeyResolver
	)
	if c.AsynqClient != nil {
		enqueuer = c.AsynqClient
	}
	if c.Storage != nil {
		keys = c.Storage
	}
	c.MediaCleaner = mediaJob.NewCleaner(enqueuer, keys)

	c.PhotoService = photoService.NewService(c.PhotoRepo, c.MediaCleaner)
	c.VideoService = videoService.NewService(c.VideoRepo)
	c.PostService = postService.NewService(c.PostRepo, c.MediaCleaner)
	c.AuthService = authService.NewAuthService(c.Config.Admin, c.Cache, c.JWTManager)

	if c.Storage != nil {
		maxBytes := int64(c.Config.Storage.MaxUploadMB) * 1024 * 1024
		c.UploadService = mediaService.NewUploadService(c.Storage, storage.NewImageProcessor(maxBytes))
	}
}

func (c *Container) initHandlers() {
	c.PhotoHandler = photoHandler.NewHandler(c.PhotoService)
	c.VideoHandler = videoHandler.NewHandler(c.VideoService)
	c.PostHandler = postHandler.NewHandler(c.PostService)
	c.AuthHandler = authHandler.NewHandler(c.AuthService)
	if c.UploadService != nil {
		c.MediaHandler = mediaHandler.NewHandler(c.UploadService)
	}
}

// HealthStatus reports each dependency as "ok", "disabled" or an error text.
func (c *Container) HealthStatus(ctx context.Context) (map[string]string, bool) {
	status := map[string]string{"database": "disabled", "redis": "disabled", "storage": "disabled"}
	healthy := true

	if c.DB != nil {
		status["database"] = "ok"
		if err := c.DB.Ping(ctx); err != nil {
			status["database"] = err.Error()
			healthy = false
		}
	}
	if c.Redis != nil {
		status["redis"] = "ok"
		if err := c.Redis.Ping(ctx); err != nil {
			status["redis"] = err.Error()
		}
	}
	if c.Storage != nil {
		status["storage"] = "ok"
	}
	return status, healthy
}

// Cleanup releases connections on shutdown.
func (c *Container) Cleanup() {
	if c.AsynqClient != nil {
		if err := c.AsynqClient.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close asynq client")
		}
	}
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close Redis")
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
	log.Info().Msg("Container cleanup completed")
}
