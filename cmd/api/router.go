package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"blog-backend/internal/shared/middleware"
	"blog-backend/pkg/container"
)

// SetupRouter wires middleware and routes. The route shape follows the
// external API contract: auth endpoints are public, everything under /api
// requires a bearer access token.
func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	router.GET("/health", healthCheckHandler(c))

	setupAuthRoutes(router, c)
	setupAPIRoutes(router, c)

	return router
}

func setupAuthRoutes(router *gin.Engine, c *container.Container) {
	auth := router.Group("/auth")
	{
		auth.POST("/register", c.UserHandler.Register)
		auth.POST("/login", c.UserHandler.Login)
		auth.POST("/token/access", c.UserHandler.TokenAccess)
		auth.POST("/token/refresh", c.UserHandler.RefreshToken)
	}
}

func setupAPIRoutes(router *gin.Engine, c *container.Container) {
	api := router.Group("/api")
	api.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		api.GET("/users/me", c.UserHandler.GetProfile)

		posts := api.Group("/posts")
		{
			posts.GET("", c.PostHandler.List)
			posts.POST("", c.PostHandler.Create)
			posts.GET("/:slug", c.PostHandler.GetBySlug)
			posts.PUT("/:slug", c.PostHandler.Update)
			posts.PATCH("/:slug", c.PostHandler.Update)
			posts.DELETE("/:slug", c.PostHandler.Delete)

			posts.GET("/:slug/comments", c.CommentHandler.ListByPost)
			posts.POST("/:slug/comments", c.CommentHandler.Create)
		}

		comments := api.Group("/comments")
		{
			comments.GET("/:id", c.CommentHandler.GetByID)
			comments.PUT("/:id", c.CommentHandler.Update)
			comments.PATCH("/:id", c.CommentHandler.Update)
			comments.DELETE("/:id", c.CommentHandler.Delete)
		}
	}
}

func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		dbStatus := "ok"
		statusCode := http.StatusOK
		if err := appCtx.DB.HealthCheck(ctx); err != nil {
			dbStatus = "error"
			statusCode = http.StatusServiceUnavailable
		}

		redisStatus := "ok"
		if err := appCtx.Cache.Ping(ctx); err != nil {
			// Cache is optional: degraded, not down.
			redisStatus = "error"
		}

		c.JSON(statusCode, gin.H{
			"status":    dbStatus,
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
			"services": gin.H{
				"database": dbStatus,
				"redis":    redisStatus,
			},
		})
	}
}
