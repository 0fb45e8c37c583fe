package main

import (
	"fmt"
	"os"

	"retirement-calc/internal/api"
	"retirement-calc/internal/api/middleware"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	// A .env file is optional; real environment variables take precedence.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warn().Err(err).Msg("failed to load .env file")
	}

	// Get configuration from environment
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}
	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	origins := middleware.ParseOrigins(os.Getenv("CORS_ALLOWED_ORIGINS"))

	server := api.NewServer(logger, api.Config{
		Addr:           fmt.Sprintf(":%s", port),
		ScenarioDir:    os.Getenv("SCENARIO_DIR"),
		AllowedOrigins: origins,
	})
	if err := server.Start(); err != nil {
		logger.Fatal().Err(err).Msg("server failed")
	}
}
