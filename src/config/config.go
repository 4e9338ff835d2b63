package config

import (
	cryptoRand "crypto/rand"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds application configuration
type Config struct {
	Port        int    `yaml:"port"`
	DatabaseURL string `yaml:"database_url"`
	JWTSecret   string `yaml:"jwt_secret"`
	// TokenTTL is how long issued session tokens stay valid.
	TokenTTL       time.Duration `yaml:"token_ttl"`
	Environment    string        `yaml:"environment"`
	LogLevel       string        `yaml:"log_level"`
	LogFormat      string        `yaml:"log_format"`
	AllowedOrigins string        `yaml:"allowed_origins"`

	// Admin auto-seed (first run only)
	AdminUsername string `yaml:"admin_username"`
	AdminPassword string `yaml:"admin_password"`
	AdminEmail    string `yaml:"admin_email"`
}

// Load builds configuration from environment variables, optionally overlaid
// with a YAML file pointed at by CONFIG_FILE.
func Load() (*Config, error) {
	cfg := &Config{
		Port:           getEnvInt("PORT", 5000),
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		JWTSecret:      getEnv("JWT_SECRET", ""),
		TokenTTL:       getEnvDuration("TOKEN_TTL", 7*24*time.Hour),
		Environment:    getEnv("APP_ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "json"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", ""),
		AdminUsername:  getEnv("ADMIN_USERNAME", ""),
		AdminPassword:  getEnv("ADMIN_PASSWORD", ""),
		AdminEmail:     getEnv("ADMIN_EMAIL", ""),
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		f, err := os.Open(path) // #nosec G304 -- operator-provided path
		if err != nil {
			return nil, fmt.Errorf("failed to open config file: %w", err)
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		if err := dec.Decode(cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if cfg.JWTSecret == "" {
		if cfg.IsProduction() {
			return nil, fmt.Errorf("JWT_SECRET is required in production")
		}
		cfg.JWTSecret = generateRandomSecret(32)
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	return cfg, nil
}

// IsProduction reports whether the service runs in production mode. Error
// detail in 500 responses is suppressed when true.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv returns the variable's value, falling back to the default when it is
// unset or empty. A set-but-empty variable never suppresses a default.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

// generateRandomSecret generates a cryptographically secure random secret for
// JWT signing in development setups that did not configure one.
func generateRandomSecret(length int) string {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	result := make([]byte, length)
	if _, err := cryptoRand.Read(result); err != nil {
		panic("failed to generate random secret: " + err.Error())
	}
	for i := range result {
		result[i] = charset[result[i]%byte(len(charset))]
	}
	return string(result)
}
