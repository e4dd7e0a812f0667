package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Config holds all configuration for the application
type Config struct {
	Port               string
	DatabaseURL        string // Postgres (or MySQL) for preferences and suggestion tracking
	RedisURL           string // Optional Redis for already-processed email dedup
	Version            string
	LogLevel           string
	OpenAIKey          string
	OpenAITimeout      int // OpenAI API timeout in seconds
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURI  string
	SendGridAPIKey     string // SendGrid API key for action digest emails
	DigestFrom         string // From address for digest emails
	MaxEmails          int    // Emails fetched per batch run
	ClassifyDelayMs    int    // Pacing delay between classifier calls
	CalendarDelayMs    int    // Pacing delay between calendar calls
	WorkdayStart       string // Working hours window start, HH:MM
	WorkdayEnd         string // Working hours window end, HH:MM
}

// Load initializes and returns application configuration
func Load() *Config {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config := &Config{
		Port:               getEnv("PORT", "8080"),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		RedisURL:           os.Getenv("REDIS_URL"),
		Version:            getEnv("VERSION", "1.0.0"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		OpenAIKey:          os.Getenv("OPENAI_API_KEY"),
		OpenAITimeout:      getEnvInt("OPENAI_TIMEOUT", 60), // Default 60 seconds
		GoogleClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		GoogleRedirectURI:  os.Getenv("GOOGLE_REDIRECT_URI"),
		SendGridAPIKey:     os.Getenv("SENDGRID_API_KEY"),
		DigestFrom:         getEnv("DIGEST_FROM", "noreply@inboxzero.app"),
		MaxEmails:          getEnvInt("MAX_EMAILS", 20),
		ClassifyDelayMs:    getEnvInt("CLASSIFY_DELAY_MS", 500),
		CalendarDelayMs:    getEnvInt("CALENDAR_DELAY_MS", 200),
		WorkdayStart:       getEnv("WORKDAY_START", "09:00"),
		WorkdayEnd:         getEnv("WORKDAY_END", "17:00"),
	}

	return config
}

// getEnv gets an environment variable with a default fallback
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an environment variable as integer with a default fallback
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// SetupLogger configures zerolog with JSON output and single-line format
func (c *Config) SetupLogger() zerolog.Logger {
	// Configure zerolog to output JSON without newlines
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	// Create logger with JSON output to stdout
	logger := zerolog.New(os.Stdout).With().
		Timestamp().
		Str("service", "inboxzero").
		Str("version", c.Version).
		Logger()

	// Set log level based on configuration
	level, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger = logger.Level(level)

	return logger
}
