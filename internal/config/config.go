// Package config holds the explicitly constructed configuration for the
// backend. All environment lookups happen once at process start; the
// resulting struct is passed to the components that need it.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	// HTTP server
	Port string

	// Database
	DBPath string

	// Reference credentials for the auth gate
	AuthUsername     string
	AuthPasswordHash string

	// Key for signing session cookies
	SessionSecret string
}

// Load reads the configuration from a .env file (if present) and the
// environment.
func Load() *Config {
	// A missing .env file is fine, the environment is used as-is then
	_ = godotenv.Load()

	cfg := &Config{
		Port:             getEnv("PORT", "8080"),
		DBPath:           getEnv("DB_PATH", "data/gorm.db"),
		AuthUsername:     getEnv("AUTH_USERNAME", ""),
		AuthPasswordHash: getEnv("AUTH_PASSWORD", ""),
		SessionSecret:    getEnv("SESSION_SECRET", ""),
	}

	if cfg.SessionSecret == "" {
		// Sessions do not survive a restart with a generated secret
		cfg.SessionSecret = uuid.NewString()
		log.Warn().Msg("SESSION_SECRET is not set, using a generated secret. Sessions are invalidated on restart")
	}

	return cfg
}

// Validate checks the configuration and returns an error listing all problems.
func (c *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if c.DBPath == "" {
		problems = append(problems, "database path must not be empty")
	}

	// Credentials have to be configured together. Without them the
	// create route stays unreachable, which is fine for read-only use.
	if (c.AuthUsername == "") != (c.AuthPasswordHash == "") {
		problems = append(problems, "AUTH_USERNAME and AUTH_PASSWORD must be set together")
	}

	if c.AuthPasswordHash != "" && !strings.HasPrefix(c.AuthPasswordHash, "$2") {
		problems = append(problems, "AUTH_PASSWORD must be a bcrypt hash")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}

	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
