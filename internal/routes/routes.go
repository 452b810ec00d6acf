// Package routes defines HTTP routes for the application tracker API.
package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/mmehta29/backend/internal/handlers"
	"github.com/mmehta29/backend/internal/middleware"
	"github.com/mmehta29/backend/internal/services"
)

type Handlers struct {
	Auth        *handlers.AuthHandler
	Application *handlers.ApplicationHandler
	Health      *handlers.HealthHandler
}

// Setup configures middleware and all HTTP routes on router.
func Setup(router *gin.Engine, h Handlers, jwtService services.JWTService, allowedOrigins []string) {
	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery())
	router.Use(cors.New(corsConfig(allowedOrigins)))

	router.GET("/", h.Health.Welcome)
	router.GET("/health", h.Health.Check)

	router.POST("/signup", h.Auth.Signup)
	router.POST("/login", h.Auth.Login)

	protected := router.Group("/", middleware.RequireAuth(jwtService))
	{
		protected.POST("/applications", h.Application.CreateApplication)
		protected.GET("/applications", h.Application.ListApplications)
		protected.GET("/progress-analytics", h.Application.ProgressAnalytics)
		protected.PATCH("/applications/:id/status", h.Application.UpdateStatus)
		protected.DELETE("/applications/:id", h.Application.DeleteApplication)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Not Found"})
	})
}

// corsConfig allows every origin unless a list is configured.
func corsConfig(allowedOrigins []string) cors.Config {
	config := cors.DefaultConfig()
	if len(allowedOrigins) == 0 {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = allowedOrigins
	}
	config.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", middleware.RequestIDHeader}
	config.ExposeHeaders = []string{middleware.RequestIDHeader}
	config.MaxAge = 12 * time.Hour
	return config
}
