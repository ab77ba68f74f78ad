package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"tableside/cmd"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	app := cmd.NewCompositionRoot(configs, logger)

	// Warm the cache before serving; a failure here is not fatal because
	// the refresh job retries on schedule.
	if err := app.SyncController().Refresh(context.Background()); err != nil {
		logger.Error("Initial order refresh failed", "error", err)
	}

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		logger.Error("Failed to start jobs", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	_ = godotenv.Load(".env")

	return cmd.Config{
		HTTPPort:        envOrDefault("HTTP_PORT", "8080"),
		BackendBaseURL:  envOrDefault("BACKEND_BASE_URL", "http://localhost:5000"),
		RefreshSchedule: envOrDefault("REFRESH_SCHEDULE", "*/5 * * * * *"),
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Use(middleware.Recover())

	app.CreateServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
