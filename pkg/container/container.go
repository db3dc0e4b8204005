package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"blog-backend/internal/config"
	authorHandler "blog-backend/internal/domains/author/handler"
	authorRepo "blog-backend/internal/domains/author/repository"
	authorService "blog-backend/internal/domains/author/service"
	postHandler "blog-backend/internal/domains/post/handler"
	postRepo "blog-backend/internal/domains/post/repository"
	postService "blog-backend/internal/domains/post/service"
	"blog-backend/internal/infrastructure/database"
)

// Container holds the application's dependency graph.
// Build order: config -> storage -> repositories -> services -> handlers.
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB // nil with the memory driver

	// Repositories
	AuthorRepo authorRepo.RepositoryInterface
	PostRepo   postRepo.RepositoryInterface

	// Services
	AuthorService authorService.ServiceInterface
	PostService   postService.ServiceInterface

	// Handlers
	AuthorHandler *authorHandler.AuthorHandler
	PostHandler   *postHandler.PostHandler
}

// NewContainer builds every dependency from cfg
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	c := &Container{Config: cfg}

	if err := c.initStorage(ctx); err != nil {
		return nil, err
	}
	c.initServices()
	c.initHandlers()

	log.Info().
		Str("environment", cfg.App.Environment).
		Str("storage", cfg.Storage.Driver).
		Msg("container initialized")

	return c, nil
}

// ════════════════════════════════════════════════════════════════
// STORAGE: pick repositories by STORAGE_DRIVER
// ════════════════════════════════════════════════════════════════

func (c *Container) initStorage(ctx context.Context) error {
	switch c.Config.Storage.Driver {
	case config.StorageMemory:
		c.AuthorRepo = authorRepo.NewMemoryRepository()
		c.PostRepo = postRepo.NewMemoryRepository()
		return nil

	case config.StoragePostgres:
		db := database.NewPostgresDB(c.Config.Database)
		if err := db.Connect(ctx); err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		c.DB = db
		c.AuthorRepo = authorRepo.NewPostgresRepository(db.Pool)
		c.PostRepo = postRepo.NewPostgresRepository(db.Pool)
		return nil

	default:
		return fmt.Errorf("unknown storage driver %q", c.Config.Storage.Driver)
	}
}

func (c *Container) initServices() {
	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo)
	c.PostService = postService.NewPostService(c.PostRepo)
}

func (c *Container) initHandlers() {
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
	c.PostHandler = postHandler.NewPostHandler(c.PostService)
}

// HealthCheck reports storage availability. The memory driver is always healthy.
func (c *Container) HealthCheck(ctx context.Context) error {
	if c.DB == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return c.DB.HealthCheck(ctx)
}

// Cleanup releases resources on shutdown
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
		log.Info().Msg("database connections closed")
	}
}
