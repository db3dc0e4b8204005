package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"blog-backend/internal/shared/middleware"
	"blog-backend/internal/shared/response"
	"blog-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupAuthorRoutes(v1, c)
		setupPostRoutes(v1, c)
	}

	return router
}

// ========================================
// AUTHOR ROUTES
// ========================================
func setupAuthorRoutes(v1 *gin.RouterGroup, c *container.Container) {
	author := v1.Group("/authors")
	{
		author.POST("", c.AuthorHandler.Create)
		author.GET("", c.AuthorHandler.List)
		author.GET("/lookup", c.AuthorHandler.GetByName)
		author.GET("/:id", c.AuthorHandler.GetByID)
		author.PATCH("/:id", c.AuthorHandler.Update)
	}
}

// ========================================
// POST ROUTES
// ========================================
func setupPostRoutes(v1 *gin.RouterGroup, c *container.Container) {
	post := v1.Group("/posts")
	{
		post.POST("", c.PostHandler.Create)
		post.GET("", c.PostHandler.List)
		post.GET("/:id", c.PostHandler.GetByID)
		post.PATCH("/:id", c.PostHandler.Update)
	}
}

func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
			"storage":   appCtx.Config.Storage.Driver,
		}

		if err := appCtx.HealthCheck(c.Request.Context()); err != nil {
			health["status"] = "degraded"
			health["error"] = err.Error()
			response.Success(c, http.StatusServiceUnavailable, health)
			return
		}

		response.Success(c, http.StatusOK, health)
	}
}
