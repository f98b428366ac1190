package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"booktracker-backend/internal/config"
	infraCache "booktracker-backend/internal/infrastructure/cache"
	"booktracker-backend/internal/infrastructure/database"
	"booktracker-backend/pkg/cache"

	"booktracker-backend/internal/domains/book"
	bookHandler "booktracker-backend/internal/domains/book/handler"
	bookService "booktracker-backend/internal/domains/book/service"

	"booktracker-backend/internal/domains/booklist"
	booklistHandler "booktracker-backend/internal/domains/booklist/handler"
	booklistRepo "booktracker-backend/internal/domains/booklist/repository"
	booklistService "booktracker-backend/internal/domains/booklist/service"

	"booktracker-backend/internal/domains/nytimes"
	nytimesHandler "booktracker-backend/internal/domains/nytimes/handler"
	nytimesService "booktracker-backend/internal/domains/nytimes/service"

	"booktracker-backend/internal/domains/shelf"
	shelfHandler "booktracker-backend/internal/domains/shelf/handler"
	shelfRepo "booktracker-backend/internal/domains/shelf/repository"
	shelfService "booktracker-backend/internal/domains/shelf/service"
)

// Container is the root of the dependency graph. Everything in it is a
// singleton built once at startup, in dependency order: config, then
// infrastructure, then repositories, services, and handlers.
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB
	Cache  cache.Cache

	BooklistRepo booklist.Repository
	ShelfRepo    shelf.Repository

	BookService     book.Service
	BooklistService booklist.Service
	ShelfService    shelf.Service
	NYTimesService  nytimes.Service

	BookHandler     *bookHandler.Handler
	BooklistHandler *booklistHandler.Handler
	ShelfHandler    *shelfHandler.Handler
	NYTimesHandler  *nytimesHandler.Handler
}

func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Info().Str("environment", cfg.App.Environment).Msg("configuration loaded")

	db := database.NewPostgresDB(&cfg.Database)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db

	redisCache := infraCache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisCache.Ping(context.Background()); err != nil {
		// The app degrades to uncached upstream calls without Redis.
		log.Warn().Err(err).Msg("redis connection failed, continuing without warm cache")
	} else {
		log.Info().Msg("redis connected")
	}
	c.Cache = redisCache

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	log.Info().Msg("container initialized")
	return c, nil
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool
	c.BooklistRepo = booklistRepo.NewPostgresRepository(pool)
	c.ShelfRepo = shelfRepo.NewPostgresRepository(pool)
}

func (c *Container) initServices() {
	c.BookService = bookService.NewISBNdbService(c.Config.ISBNdb, c.Cache)
	c.BooklistService = booklistService.NewBooklistService(c.BooklistRepo, c.BookService)
	c.ShelfService = shelfService.NewShelfService(c.ShelfRepo, c.BookService)
	c.NYTimesService = nytimesService.NewNYTService(c.Config.NYTimes, c.Cache)
}

func (c *Container) initHandlers() {
	c.BookHandler = bookHandler.NewHandler(c.BookService)
	c.BooklistHandler = booklistHandler.NewHandler(c.BooklistService)
	c.ShelfHandler = shelfHandler.NewHandler(c.ShelfService)
	c.NYTimesHandler = nytimesHandler.NewHandler(c.NYTimesService)
}

// Cleanup releases infrastructure resources during shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}

	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close redis client")
		}
	}

	log.Info().Msg("container cleanup completed")
}
