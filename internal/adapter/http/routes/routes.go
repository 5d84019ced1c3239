package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"todoapi/internal/adapter/http/handler"
	"todoapi/internal/adapter/http/middleware"
	"todoapi/internal/core/port"
	"todoapi/pkg/metrics"
)

type HandlersConfig struct {
	AuthHandler   *handler.AuthHandler
	UserHandler   *handler.UserHandler
	TodoHandler   *handler.TodoHandler
	HealthHandler *handler.HealthHandler
}

func SetupRouter(handlers HandlersConfig, tokens port.TokenService, m *metrics.AppMetrics, logger *zap.Logger, cache *middleware.ResponseCache) *gin.Engine {
	if gin.Mode() == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.MetricsMiddleware(m))

	setupPublicRoutes(router, handlers, m)
	setupProtectedRoutes(router, handlers, tokens, cache)

	return router
}

func setupPublicRoutes(router *gin.Engine, handlers HandlersConfig, m *metrics.AppMetrics) {
	public := router.Group("/")
	{
		public.POST("/users/register", handlers.AuthHandler.Register)
		public.POST("/users/login", handlers.AuthHandler.Login)
		public.GET("/health", handlers.HealthHandler.Health)
		public.GET("/metrics", gin.WrapH(m.Handler()))
	}
}

func setupProtectedRoutes(router *gin.Engine, handlers HandlersConfig, tokens port.TokenService, cache *middleware.ResponseCache) {
	protected := router.Group("/")
	protected.Use(middleware.TokenAuthMiddleware(tokens))

	if cache != nil {
		protected.Use(cache.CacheMiddleware())
	}

	{
		protected.GET("/users/me", handlers.UserHandler.Me)
		protected.GET("/users/:id", handlers.UserHandler.GetByID)

		protected.POST("/todos", handlers.TodoHandler.Create)
		protected.GET("/todos", handlers.TodoHandler.List)
		protected.GET("/todos/:id", handlers.TodoHandler.Get)
		protected.PUT("/todos/:id", handlers.TodoHandler.Update)
		protected.PUT("/todos/:id/complete", handlers.TodoHandler.Complete)
		protected.DELETE("/todos/:id", handlers.TodoHandler.Delete)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
