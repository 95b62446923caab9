package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"resale/cmd"
	httpin "resale/internal/adapters/in/http"
	"resale/internal/adapters/out/postgres/auditrepo"
	"resale/internal/adapters/out/postgres/orderrepo"
	"resale/internal/adapters/out/postgres/signalrepo"
	"resale/internal/core/domain/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	config := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	db, err := openDatabase(config)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&auditrepo.StatusEventDTO{},
		&auditrepo.AuditEntryDTO{},
		&signalrepo.SignalDTO{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	root, err := cmd.NewCompositionRoot(config, db, logger)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}

	if config.AutopilotAutostart {
		root.AutopilotJob().Start()
		defer root.AutopilotJob().Stop()
	}

	startWebServer(root, config.HTTPPort)
}

func getConfigs() cmd.Config {
	// A missing .env is fine in containerized deployments; real env wins.
	_ = godotenv.Load(".env")

	return cmd.Config{
		HTTPPort:   envOr("HTTP_PORT", "8080"),
		DBHost:     envOr("DB_HOST", "localhost"),
		DBPort:     envOr("DB_PORT", "5432"),
		DBUser:     envOr("DB_USER", "postgres"),
		DBPassword: envOr("DB_PASSWORD", "postgres"),
		DBName:     envOr("DB_NAME", "resale"),
		DBSslMode:  envOr("DB_SSLMODE", "disable"),

		AutopilotAutostart:        envBoolOr("AUTOPILOT_AUTOSTART", true),
		AutopilotIntervalMinutes:  envIntOr("AUTOPILOT_INTERVAL_MINUTES", 3),
		EscalationCooldownMinutes: envIntOr("ESCALATION_COOLDOWN_MINUTES", 120),
		PriceUpperBoundEUR:        envFloatOr("PRICE_UPPER_BOUND_EUR", services.DefaultPriceUpperBoundEUR),
		PriceLowerBoundEUR:        envFloatOr("PRICE_LOWER_BOUND_EUR", services.DefaultPriceLowerBoundEUR),
		SyncLocalOnStartup:        envBoolOr("SYNC_LOCAL_ON_STARTUP", true),
		SyncLocalEachRun:          envBoolOr("SYNC_LOCAL_EACH_RUN", false),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return fallback
}

func envFloatOr(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			return parsed
		}
	}
	return fallback
}

func envBoolOr(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	}
	return fallback
}

func openDatabase(config cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.DBHost, config.DBPort, config.DBUser,
		config.DBPassword, config.DBName, config.DBSslMode,
	)
	return gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
}

func startWebServer(root *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpin.NewServer(
		root.RunAutopilotCommandHandler(),
		root.AutopilotJob(),
		root.CreateGetActiveOrdersQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
