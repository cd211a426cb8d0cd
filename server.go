package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/amirrdn/acounting-api/config"
	"github.com/amirrdn/acounting-api/middlewares"
	"github.com/amirrdn/acounting-api/models"
	"github.com/amirrdn/acounting-api/routes"
)

const defaultPort = "8080"

func splitAndTrim(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func main() {
	logger := config.GetLogger()

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stopSignals()

	config.ConnectDatabaseWithRetry()
	if err := models.MigrateAll(config.GetDB()); err != nil {
		config.LogError(logger, "server.go", "main", "MigrateAll", nil, err)
		os.Exit(1)
	}

	// cache is optional, the API serves without it
	config.ConnectRedis()

	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	if allowedOrigins := os.Getenv("ALLOWED_ORIGINS"); allowedOrigins != "" {
		corsConfig.AllowOrigins = splitAndTrim(allowedOrigins)
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AddAllowMethods("GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS")
	corsConfig.AddAllowHeaders("token", "Origin", "Content-Type", "Authorization")
	corsConfig.AddExposeHeaders("Content-Length", "Content-Disposition")
	corsConfig.AllowCredentials = true
	r.Use(cors.New(corsConfig))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.Static("/uploads", "./uploads")

	r.Use(middlewares.AuthMiddleware())
	routes.RegisterRoutes(r)

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			config.LogError(logger, "server.go", "main", "ListenAndServe", nil, err)
			os.Exit(1)
		}
	}()

	<-sigCtx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		config.LogError(logger, "server.go", "main", "Shutdown", nil, err)
	}
}
