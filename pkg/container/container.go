// Package container wires the dependency graph: config, database,
// repositories, services, handlers, in that order.
package container

import (
	"context"
	"fmt"
	"time"

	"publisher-catalog/internal/catalog/handler"
	"publisher-catalog/internal/catalog/repository"
	"publisher-catalog/internal/catalog/repository/postgres"
	"publisher-catalog/internal/catalog/service"
	"publisher-catalog/internal/config"
	"publisher-catalog/internal/infrastructure/database"
	"publisher-catalog/pkg/logger"
)

type Container struct {
	Config *config.Config
	DB     *database.PostgresDB

	AuthorRepo      repository.AuthorRepository
	BookRepo        repository.BookRepository
	MagazineRepo    repository.MagazineRepository
	PublicationRepo repository.PublicationRepository

	AuthorService      service.AuthorService
	BookService        service.BookService
	MagazineService    service.MagazineService
	PublicationService service.PublicationService

	AuthorHandler      *handler.AuthorHandler
	BookHandler        *handler.BookHandler
	MagazineHandler    *handler.MagazineHandler
	PublicationHandler *handler.PublicationHandler
	HealthHandler      *handler.HealthHandler
}

// NewContainer builds the full dependency graph. Any failure here stops
// the application before it starts serving.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	db := database.NewPostgresDB(&cfg.Database)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}
	c.DB = db

	c.AuthorRepo = postgres.NewAuthorRepository(db.Pool)
	c.BookRepo = postgres.NewBookRepository(db.Pool)
	c.MagazineRepo = postgres.NewMagazineRepository(db.Pool)
	c.PublicationRepo = postgres.NewPublicationRepository(db.Pool)

	c.AuthorService = service.NewAuthorService(c.AuthorRepo)
	c.BookService = service.NewBookService(c.BookRepo, c.AuthorRepo)
	c.MagazineService = service.NewMagazineService(c.MagazineRepo, c.AuthorRepo)
	c.PublicationService = service.NewPublicationService(c.PublicationRepo)

	c.AuthorHandler = handler.NewAuthorHandler(c.AuthorService)
	c.BookHandler = handler.NewBookHandler(c.BookService)
	c.MagazineHandler = handler.NewMagazineHandler(c.MagazineService)
	c.PublicationHandler = handler.NewPublicationHandler(c.PublicationService)
	c.HealthHandler = handler.NewHealthHandler(db)

	logger.Info("dependency container initialized", map[string]interface{}{
		"environment": cfg.App.Environment,
	})

	return c, nil
}

// Cleanup releases everything the container holds open.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}
}
