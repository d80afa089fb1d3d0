package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"resto/cmd"
	"resto/internal/adapters/out/sqlite"
	"resto/internal/jobs"
)

func main() {
	configs := getConfigs()

	gormDB, err := sqlite.OpenDB(configs.SqliteDSN)
	if err != nil {
		log.Fatalf("Error opening the ledger: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB)

	if seedPath := os.Getenv("SEED_FILE"); seedPath != "" {
		if err = cmd.SeedFromFile(gormDB, seedPath); err != nil {
			log.Fatalf("Error seeding rosters: %v", err)
		}
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := jobs.NewJobManager(
		app.CreateReleaseTablesCommandHandler(),
		app.TableReleaseGrace(),
		logger,
	)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	// Missing .env is fine when the environment is set directly.
	_ = godotenv.Load(".env")

	config := cmd.Config{
		HTTPPort:                   envOrDefault("HTTP_PORT", "8080"),
		SqliteDSN:                  envOrDefault("SQLITE_DSN", "file::memory:?cache=shared"),
		KitchenSecretHash:          os.Getenv("KITCHEN_SECRET_HASH"),
		LogisticsSecretHash:        os.Getenv("LOGISTICS_SECRET_HASH"),
		JWTSigningKey:              os.Getenv("JWT_SIGNING_KEY"),
		TableCount:                 envIntOrDefault("TABLE_COUNT", 12),
		TableReleaseGraceSeconds:   envIntOrDefault("TABLE_RELEASE_GRACE_SECONDS", 5),
		UrgentWaitThresholdMinutes: envIntOrDefault("URGENT_WAIT_THRESHOLD_MINUTES", 12),
	}

	if config.JWTSigningKey == "" {
		log.Fatalf("JWT_SIGNING_KEY is required")
	}

	return config
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envIntOrDefault(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("Error parsing %s: %v", key, err)
	}
	return value
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())

	app.CreateHTTPServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
