package http

import (
	"context"

	"todoapi/internal/adapter/cache/memory"
	rediscache "todoapi/internal/adapter/cache/redis"
	"todoapi/internal/adapter/database/postgres"
	pgrepository "todoapi/internal/adapter/database/postgres/repository"
	"todoapi/internal/adapter/database/sqlite"
	sqliterepository "todoapi/internal/adapter/database/sqlite/repository"
	"todoapi/internal/adapter/http/handler"
	"todoapi/internal/adapter/http/middleware"
	"todoapi/internal/core/port"
	"todoapi/internal/core/service"
	"todoapi/internal/core/token"
	"todoapi/pkg/config"
	"todoapi/pkg/metrics"
)

type Container struct {
	UserRepo port.UserRepository
	TodoRepo port.TodoRepository

	Tokens port.TokenService
	Cache  port.CacheRepository

	AccountService port.AccountService
	TodoService    port.TodoService

	AuthHandler   *handler.AuthHandler
	UserHandler   *handler.UserHandler
	TodoHandler   *handler.TodoHandler
	HealthHandler *handler.HealthHandler

	ResponseCache *middleware.ResponseCache

	closers []func()
}

func NewContainer(ctx context.Context, cfg *config.Config, m *metrics.AppMetrics) (*Container, error) {
	c := &Container{}

	if err := c.setupRepositories(ctx, cfg); err != nil {
		return nil, err
	}

	tokens, err := token.New(cfg.JWT.Secret, cfg.JWT.Algorithm, cfg.JWT.LifetimeMinutes)

	if err != nil {
		c.Close()
		return nil, err
	}

	c.Tokens = tokens

	if err := c.setupCache(ctx, cfg); err != nil {
		c.Close()
		return nil, err
	}

	c.AccountService = service.NewAccountService(c.UserRepo, c.Tokens)
	c.TodoService = service.NewTodoService(c.TodoRepo, c.UserRepo)

	c.AuthHandler = handler.NewAuthHandler(c.AccountService, m)
	c.UserHandler = handler.NewUserHandler(c.AccountService)
	c.TodoHandler = handler.NewTodoHandler(c.TodoService, m)
	c.HealthHandler = handler.NewHealthHandler(cfg)

	c.ResponseCache = middleware.NewResponseCache(c.Cache, m)

	return c, nil
}

func (c *Container) setupRepositories(ctx context.Context, cfg *config.Config) error {
	if cfg.DatabaseDriver == "pgx" {
		db, err := postgres.NewDB(ctx, cfg)

		if err != nil {
			return err
		}

		c.closers = append(c.closers, db.Close)
		c.UserRepo = pgrepository.NewUserRepository(db)
		c.TodoRepo = pgrepository.NewTodoRepository(db)

		return nil
	}

	db, err := sqlite.NewDB(cfg)

	if err != nil {
		return err
	}

	c.closers = append(c.closers, func() { db.Close() })
	c.UserRepo = sqliterepository.NewUserRepository(db)
	c.TodoRepo = sqliterepository.NewTodoRepository(db)

	return nil
}

func (c *Container) setupCache(ctx context.Context, cfg *config.Config) error {
	if cfg.CacheBackend == "redis" {
		cache, err := rediscache.NewCacheRepository(ctx, cfg.RedisAddr)

		if err != nil {
			return err
		}

		c.Cache = cache

		return nil
	}

	c.Cache = memory.NewCacheRepository()

	return nil
}

func (c *Container) Close() {
	for _, close := range c.closers {
		close()
	}
}
