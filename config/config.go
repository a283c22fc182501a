package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Chart output formats.
const (
	ChartFormatSVG = "svg"
	ChartFormatPNG = "png"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	YelpAPIKey      string
	YelpBaseURL     string
	YelpSearchLimit int
	HTTPTimeout     time.Duration
	MaxRetries      int
	RateLimitMs     int

	RatingThreshold float64
	State           string

	OutputDir     string
	CSVOutputPath string
	ChartFormat   string
	ChromeBin     string
	LogLevel      string

	PostgresEnabled  bool
	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresSSLMode  string
}

// Load reads the .env file and returns a populated Config struct.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}
	return FromEnv()
}

// FromEnv builds a Config from the current process environment only.
func FromEnv() *Config {
	return &Config{
		YelpAPIKey:      getEnv("YELP_API_KEY", ""),
		YelpBaseURL:     getEnv("YELP_BASE_URL", "https://api.yelp.com"),
		YelpSearchLimit: getEnvInt("YELP_SEARCH_LIMIT", 0),
		HTTPTimeout:     time.Duration(getEnvInt("HTTP_TIMEOUT_SEC", 30)) * time.Second,
		MaxRetries:      getEnvInt("MAX_RETRIES", 1),
		RateLimitMs:     getEnvInt("RATE_LIMIT_MS", 0),

		RatingThreshold: getEnvFloat("RATING_THRESHOLD", 4.0),
		State:           getEnv("STATE", ""),

		OutputDir:     getEnv("OUTPUT_DIR", "./output"),
		CSVOutputPath: getEnv("CSV_OUTPUT_PATH", "./output/cuisine_counts.csv"),
		ChartFormat:   strings.ToLower(getEnv("CHART_FORMAT", ChartFormatSVG)),
		ChromeBin:     getEnv("CHROME_BIN", ""),
		LogLevel:      getEnv("LOG_LEVEL", "info"),

		PostgresEnabled:  getEnvBool("POSTGRES_ENABLED", false),
		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresUser:     getEnv("POSTGRES_USER", "cuisine"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", ""),
		PostgresDB:       getEnv("POSTGRES_DB", "cuisine_scene"),
		PostgresSSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),
	}
}

// Validate reports every problem with the configuration at once.
func (c *Config) Validate() error {
	var errs []error
	if c.YelpAPIKey == "" {
		errs = append(errs, errors.New("YELP_API_KEY is not set"))
	}
	if c.ChartFormat != ChartFormatSVG && c.ChartFormat != ChartFormatPNG {
		errs = append(errs, fmt.Errorf("CHART_FORMAT must be %q or %q, got %q",
			ChartFormatSVG, ChartFormatPNG, c.ChartFormat))
	}
	if c.YelpSearchLimit < 0 || c.YelpSearchLimit > 50 {
		errs = append(errs, fmt.Errorf("YELP_SEARCH_LIMIT must be between 0 and 50, got %d", c.YelpSearchLimit))
	}
	return errors.Join(errs...)
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return "host=" + c.PostgresHost +
		" port=" + c.PostgresPort +
		" user=" + c.PostgresUser +
		" password=" + c.PostgresPassword +
		" dbname=" + c.PostgresDB +
		" sslmode=" + c.PostgresSSLMode
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if val := os.Getenv(key); val != "" {
		f, err := strconv.ParseFloat(val, 64)
		if err == nil {
			return f
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		b, err := strconv.ParseBool(val)
		if err == nil {
			return b
		}
	}
	return fallback
}
