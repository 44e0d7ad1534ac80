package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port        string `yaml:"port" env:"SERVER_PORT"`
		Mode        string `yaml:"mode" env:"SERVER_MODE"`
		StoragePath string `yaml:"storage_path" env:"SERVER_STORAGE_PATH"`
		PublicURL   string `yaml:"public_url" env:"SERVER_PUBLIC_URL"`
	} `yaml:"server"`

	Database struct {
		URI              string `yaml:"uri" env:"MONGODB_URI"`
		Name             string `yaml:"name" env:"MONGODB_DATABASE"`
		MaxPoolSize      uint64 `yaml:"max_pool_size" env:"MONGODB_MAX_POOL_SIZE"`
		ConnectTimeout   string `yaml:"connect_timeout" env:"MONGODB_CONNECT_TIMEOUT"`
		OperationTimeout string `yaml:"operation_timeout" env:"MONGODB_OPERATION_TIMEOUT"`
	} `yaml:"database"`

	JWT struct {
		Secret          string `yaml:"secret" env:"JWT_SECRET"`
		TokenExpiration string `yaml:"token_expiration" env:"JWT_TOKEN_EXPIRATION"`
		Issuer          string `yaml:"issuer" env:"JWT_ISSUER"`
	} `yaml:"jwt"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables.
// A .env file in the working directory is honored the same way the old
// deployment's dotenv setup was.
func LoadConfig(configPath string) (*Config, error) {
	_ = godotenv.Load()

	config := &Config{}
	setDefaults(config)

	// Config file is optional, env vars can carry everything
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Override with environment variables
	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	// Server defaults
	config.Server.Port = "10000"
	config.Server.Mode = "development"
	config.Server.StoragePath = "uploads/profile-images"

	// Database defaults
	config.Database.URI = "mongodb://localhost:27017"
	config.Database.Name = "uninits"
	config.Database.MaxPoolSize = 20
	config.Database.ConnectTimeout = "10s"
	config.Database.OperationTimeout = "10s"

	// JWT defaults
	config.JWT.TokenExpiration = "24h"
	config.JWT.Issuer = "uninits.app"

	// Logging defaults
	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Database.URI == "" {
		return fmt.Errorf("database URI is required")
	}

	if config.Database.Name == "" {
		return fmt.Errorf("database name is required")
	}

	if config.JWT.Secret == "" {
		return fmt.Errorf("JWT secret is required")
	}

	for name, value := range map[string]string{
		"connect_timeout":   config.Database.ConnectTimeout,
		"operation_timeout": config.Database.OperationTimeout,
		"token_expiration":  config.JWT.TokenExpiration,
	} {
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("invalid %s format: %w", name, err)
		}
	}

	return nil
}

// OperationTimeout returns the per-call store timeout.
func (c *Config) OperationTimeout() time.Duration {
	d, err := time.ParseDuration(c.Database.OperationTimeout)
	if err != nil {
		return 10 * time.Second
	}
	return d
}

// BaseURL returns the externally visible URL the API is served on.
func (c *Config) BaseURL() string {
	if c.Server.PublicURL != "" {
		return c.Server.PublicURL
	}
	return "http://localhost:" + c.Server.Port
}
