package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/HWANGJEONGHYEON1/duty-out/internal/auth"
	"github.com/HWANGJEONGHYEON1/duty-out/internal/catalog"
	"github.com/HWANGJEONGHYEON1/duty-out/internal/config"
	"github.com/HWANGJEONGHYEON1/duty-out/internal/database"
	"github.com/HWANGJEONGHYEON1/duty-out/internal/handlers"
	"github.com/HWANGJEONGHYEON1/duty-out/internal/logger"
	"github.com/HWANGJEONGHYEON1/duty-out/internal/middleware"
	"github.com/HWANGJEONGHYEON1/duty-out/internal/scheduler"
	"github.com/HWANGJEONGHYEON1/duty-out/internal/store"
)

var Version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLog, err := logger.New(cfg.LogMode)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer appLog.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	db, err := database.New(ctx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		appLog.Fatal("failed to connect to database", "error", err)
	}
	defer db.Close()

	users := store.NewUserStore(db.Pool)
	babies := store.NewBabyStore(db.Pool)
	schedules := store.NewScheduleStore(db.Pool)

	guidelines := catalog.NewGuidelineCatalog()
	templates := catalog.NewTemplateCatalog()
	generator := scheduler.NewGenerator(guidelines, templates)
	adjuster := scheduler.NewAdjuster(guidelines, templates, appLog)
	scheduleSvc := scheduler.NewService(babies, schedules, generator, adjuster, appLog)

	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer)

	r := gin.Default()

	// Health check
	r.GET("/health", func(c *gin.Context) {
		status := "healthy"
		code := http.StatusOK
		if err := db.Health(c.Request.Context()); err != nil {
			status = "unhealthy"
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{
			"status":  status,
			"version": Version,
		})
	})

	// Version endpoint
	r.GET("/api/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"version": Version,
			"service": "dutyout",
		})
	})

	r.POST("/api/v1/auth/login", handlers.Login(users, jwtService, appLog))

	api := r.Group("/api/v1")
	api.Use(middleware.RequireAuth(jwtService))
	{
		api.POST("/babies", handlers.CreateBaby(babies))
		api.GET("/babies", handlers.ListBabies(babies))
		api.GET("/babies/:babyId", handlers.GetBaby(babies))
		api.PUT("/babies/:babyId", handlers.UpdateBaby(babies))
		api.DELETE("/babies/:babyId", handlers.DeleteBaby(babies))

		api.GET("/babies/:babyId/guideline", handlers.GetGuideline(babies, guidelines))

		api.POST("/babies/:babyId/schedules/generate", handlers.GenerateSchedule(babies, scheduleSvc))
		api.GET("/babies/:babyId/schedules", handlers.GetSchedule(babies, scheduleSvc))
		api.PUT("/babies/:babyId/schedules/adjust", handlers.AdjustSchedule(babies, scheduleSvc))
		api.PUT("/babies/:babyId/schedules/items/:itemId", handlers.UpdateScheduleItem(babies, scheduleSvc))
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: r,
	}

	// Start server in goroutine
	go func() {
		appLog.Info("server starting", "port", cfg.Port, "version", Version)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLog.Fatal("failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLog.Info("server shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLog.Fatal("server forced to shutdown", "error", err)
	}

	appLog.Info("server exited")
}
