package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server   ServerConfig
	Upstream UpstreamConfig
	Security SecurityConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	CORSAllowOrigins []string
}

// UpstreamConfig describes the ledger data source the service fetches
// the full ledger snapshot from on every request.
type UpstreamConfig struct {
	DataURL string
	APIKey  string
	Timeout time.Duration
}

type SecurityConfig struct {
	APIKey             string
	RateLimitPerSecond int
	RateLimitBurst     int
}

func Load() *Config {
	config := &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			Environment:  getEnv("APP_ENV", "development"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 60*time.Second),
		},
		Upstream: UpstreamConfig{
			DataURL: getEnv("UPSTREAM_DATA_URL", "http://127.0.0.1:8001/data"),
			APIKey:  getEnv("UPSTREAM_API_KEY", ""),
			Timeout: getDurationEnv("UPSTREAM_TIMEOUT", 30*time.Second),
		},
		Security: SecurityConfig{
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 5),
			RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 10),
		},
	}

	config.Server.CORSAllowOrigins = config.loadCORSAllowOrigins()

	var loadAPIKeyErr error
	config.Security.APIKey, loadAPIKeyErr = config.loadAPIKey()
	if loadAPIKeyErr != nil {
		log.Fatal("Failed to load API key:", loadAPIKeyErr)
	}

	return config
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// loadAPIKey loads the key clients must present in the x-api-key header
// Priority order:
// 1. If API_KEY env var is set, use it (works in all environments)
// 2. If production and env var missing, fail with error (production requires an explicit key)
// 3. If development/testing and env var missing, generate a random key (dev convenience)
func (c *Config) loadAPIKey() (string, error) {
	apiKey := os.Getenv("API_KEY")
	if apiKey != "" {
		return apiKey, nil
	}

	if c.IsProduction() {
		return "", fmt.Errorf("API_KEY environment variable must be set in production environments")
	}

	generated, err := generateAPIKey()
	if err != nil {
		return "", fmt.Errorf("failed to generate development API key: %w", err)
	}

	log.Printf("Development environment: generated API key %s (set the API_KEY env var to persist a key across restarts)", generated)
	return generated, nil
}

// generateAPIKey generates a random hex API key
func generateAPIKey() (string, error) {
	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// loadCORSAllowOrigins retrieves CORS allowed origins from environment or returns default
func (c *Config) loadCORSAllowOrigins() []string {
	corsOrigins := os.Getenv("CORS_ALLOW_ORIGINS")

	if corsOrigins == "" {
		if c.IsProduction() {
			log.Println("WARNING: CORS_ALLOW_ORIGINS not set in production environment, defaulting to '*' (all origins). Consider setting specific origins for security.")
		} else {
			log.Println("INFO: CORS_ALLOW_ORIGINS not set, defaulting to '*' (all origins)")
		}
		return []string{"*"}
	}

	// Split by comma and trim whitespace
	origins := strings.Split(corsOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}

	log.Printf("CORS allowed origins configured: %v", origins)
	return origins
}
