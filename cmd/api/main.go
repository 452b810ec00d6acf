package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mmehta29/backend/internal/config"
	"github.com/mmehta29/backend/internal/database"
	"github.com/mmehta29/backend/internal/handlers"
	"github.com/mmehta29/backend/internal/routes"
	"github.com/mmehta29/backend/internal/services"
)

func main() {
	// 1. Load Configuration (.env + environment)
	cfg := config.Load()
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	if err := run(cfg, quit); err != nil {
		log.Fatal(err)
	}
}

// run serves until quit fires or the listener fails. Resources are released
// before it returns in both cases.
func run(cfg *config.Config, quit <-chan os.Signal) error {
	// 2. Database Connection
	db, err := database.Connect(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Printf("Failed to close database: %v", err)
		}
	}()

	// 3. Initialize Services
	jwtService := services.NewJWTService(cfg.JWTSecret, cfg.JWTExpiry)
	authService := services.NewAuthService(db, jwtService)
	applicationService := services.NewApplicationService(db)

	// 4. Initialize Handlers
	h := routes.Handlers{
		Auth:        handlers.NewAuthHandler(authService),
		Application: handlers.NewApplicationHandler(applicationService),
		Health: handlers.NewHealthHandler(func(ctx context.Context) error {
			return database.Ping(ctx, db)
		}),
	}

	// 5. Setup Router
	r := gin.New()
	r.Use(gin.Logger())
	routes.Setup(r, h, jwtService, cfg.AllowedOrigins)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("Server is running on Port: %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// 6. Graceful Shutdown
	select {
	case err := <-serverErr:
		return fmt.Errorf("server failed to start: %w", err)
	case <-quit:
	}

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shut down: %w", err)
	}
	return nil
}
