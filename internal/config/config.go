package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const PROD_STRING = "prod"

// Config holds all application configuration loaded from environment.
// It is constructed once at startup and passed explicitly to every
// component that needs it.
type Config struct {
	IsProduction      bool
	ProdOrigins       string
	HTTPAddr          string
	DBDSN             string
	MigrateOnStart    bool
	JWTSecret         string
	JWTAccessTokenTTL time.Duration
	BcryptCost        int

	// Booking lifecycle
	PaymentWindow time.Duration // how long a guest has to pay a new order
	SweepInterval time.Duration // how often the sweepers run

	// Payment gateway (Snap-style)
	GatewayBaseURL   string
	GatewayServerKey string

	// Notifications
	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string

	// Room lock
	RedisAddr string

	// Booking event stream
	KafkaBrokers      []string
	KafkaBookingTopic string

	// File storage
	StoragePath string
}

// Load loads configuration from .env (optional) and environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		log.Printf("failed to load .env file: %v", err)
	}

	cfg := &Config{}

	// Production origin (default: empty)
	cfg.ProdOrigins = getEnv("PROD_ORIGINS", "")

	// Application environment (default: dev)
	appEnvStr := getEnv("APP_ENV", "dev")
	cfg.IsProduction = appEnvStr == PROD_STRING

	// HTTP listen address (default: :8080)
	cfg.HTTPAddr = getEnv("HTTP_ADDR", ":8080")

	// Database DSN is required
	cfg.DBDSN = os.Getenv("DB_DSN")
	if cfg.DBDSN == "" {
		return nil, fmt.Errorf("DB_DSN is required")
	}

	cfg.MigrateOnStart, err = getEnvAsBool("MIGRATE_ON_START", true)
	if err != nil {
		return nil, fmt.Errorf("invalid MIGRATE_ON_START: %w", err)
	}

	// JWT secret is required for signing tokens
	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	// JWT access token TTL, parse as time.Duration (e.g. "15m", "1h").
	cfg.JWTAccessTokenTTL, err = getEnvAsDuration("JWT_ACCESS_TOKEN_TTL", 15*time.Minute)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_ACCESS_TOKEN_TTL: %w", err)
	}

	// Bcrypt cost for password hashing (default: 12)
	cfg.BcryptCost, err = getEnvAsInt("BCRYPT_COST", 12)
	if err != nil {
		return nil, fmt.Errorf("invalid BCRYPT_COST: %w", err)
	}

	// New orders must be paid within this window (default: 2h)
	cfg.PaymentWindow, err = getEnvAsDuration("PAYMENT_WINDOW", 2*time.Hour)
	if err != nil {
		return nil, fmt.Errorf("invalid PAYMENT_WINDOW: %w", err)
	}

	cfg.SweepInterval, err = getEnvAsDuration("SWEEP_INTERVAL", 10*time.Minute)
	if err != nil {
		return nil, fmt.Errorf("invalid SWEEP_INTERVAL: %w", err)
	}

	// Payment gateway credentials are required
	cfg.GatewayBaseURL = getEnv("GATEWAY_BASE_URL", "https://app.sandbox.gateway.example")
	cfg.GatewayServerKey = os.Getenv("GATEWAY_SERVER_KEY")
	if cfg.GatewayServerKey == "" {
		return nil, fmt.Errorf("GATEWAY_SERVER_KEY is required")
	}

	cfg.SMTPHost = getEnv("SMTP_HOST", "localhost")
	cfg.SMTPPort = getEnv("SMTP_PORT", "587")
	cfg.SMTPUsername = getEnv("SMTP_USERNAME", "")
	cfg.SMTPPassword = getEnv("SMTP_PASSWORD", "")
	cfg.SMTPFrom = getEnv("SMTP_FROM", "no-reply@staylodge.local")

	cfg.RedisAddr = getEnv("REDIS_ADDR", "localhost:6379")

	cfg.KafkaBrokers = splitAndTrim(getEnv("KAFKA_BROKERS", "localhost:9092"))
	cfg.KafkaBookingTopic = getEnv("KAFKA_BOOKING_TOPIC", "booking-events")

	cfg.StoragePath = getEnv("STORAGE_PATH", "./uploads")

	return cfg, nil
}

// getEnv returns the value of the environment variable if set,
// otherwise returns the provided default value.
func getEnv(key, defaultValue string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer.
// It returns the default value if the variable is not set.
func getEnvAsInt(key string, defaultValue int) (int, error) {
	valStr := getEnv(key, "")
	if valStr == "" {
		return defaultValue, nil
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return 0, fmt.Errorf("env %s value %q is not a valid integer: %w", key, valStr, err)
	}

	return val, nil
}

// getEnvAsBool retrieves an environment variable as a boolean.
func getEnvAsBool(key string, defaultValue bool) (bool, error) {
	valStr := getEnv(key, "")
	if valStr == "" {
		return defaultValue, nil
	}

	val, err := strconv.ParseBool(valStr)
	if err != nil {
		return false, fmt.Errorf("env %s value %q is not a valid boolean: %w", key, valStr, err)
	}

	return val, nil
}

// getEnvAsDuration retrieves an environment variable as a time.Duration.
func getEnvAsDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	valStr := getEnv(key, "")
	if valStr == "" {
		return defaultValue, nil
	}

	val, err := time.ParseDuration(valStr)
	if err != nil {
		return 0, fmt.Errorf("env %s value %q is not a valid duration: %w", key, valStr, err)
	}

	return val, nil
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
