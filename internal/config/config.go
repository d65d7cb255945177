package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Dataset   DatasetConfig   `yaml:"dataset"`
	Messaging MessagingConfig `yaml:"messaging"`
	CORS      CORSConfig      `yaml:"cors"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port                   int    `yaml:"port"`
	Host                   string `yaml:"host"`
	ShutdownTimeoutSeconds int    `yaml:"shutdown_timeout_seconds"`
}

// GetHost returns the configured host, preferring the SERVER_HOST
// environment variable so containers can bind 0.0.0.0 without a
// config file edit.
func (s *ServerConfig) GetHost() string {
	if envHost := os.Getenv("SERVER_HOST"); envHost != "" {
		return envHost
	}
	if s.Host == "" {
		return "localhost"
	}
	return s.Host
}

// ShutdownTimeout returns the graceful shutdown window as a duration
func (s *ServerConfig) ShutdownTimeout() time.Duration {
	return time.Duration(s.ShutdownTimeoutSeconds) * time.Second
}

// DatasetConfig controls the simulated customer dataset
type DatasetConfig struct {
	Seed    int64 `yaml:"seed"`
	FirstID int   `yaml:"first_id"`
}

// MessagingConfig controls message sending and log persistence.
// LogBackend selects where the session message log lives:
// "memory" (default), "redis", or "postgres".
type MessagingConfig struct {
	SuccessRate float64        `yaml:"success_rate"`
	LogBackend  string         `yaml:"log_backend"`
	Redis       RedisConfig    `yaml:"redis"`
	Postgres    PostgresConfig `yaml:"postgres"`
}

// RedisConfig holds Redis connection settings for the message log
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// PostgresConfig holds Postgres connection settings for the message log
type PostgresConfig struct {
	DatabaseURL string `yaml:"database_url"`
}

// CORSConfig holds cross-origin settings for the API
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// Load reads and parses the configuration file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	// Set defaults
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Server.ShutdownTimeoutSeconds == 0 {
		cfg.Server.ShutdownTimeoutSeconds = 10
	}
	if cfg.Dataset.Seed == 0 {
		cfg.Dataset.Seed = 42
	}
	if cfg.Dataset.FirstID == 0 {
		cfg.Dataset.FirstID = 1000
	}
	if cfg.Messaging.SuccessRate == 0 {
		cfg.Messaging.SuccessRate = 0.95
	}
	if cfg.Messaging.LogBackend == "" {
		cfg.Messaging.LogBackend = "memory"
	}
	if cfg.Messaging.Redis.Addr == "" {
		cfg.Messaging.Redis.Addr = "localhost:6379"
	}
	if len(cfg.CORS.AllowedOrigins) == 0 {
		cfg.CORS.AllowedOrigins = []string{"*"}
	}

	if err := validateBackend(cfg.Messaging.LogBackend); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadFromEnv loads configuration with environment variable overrides.
// It loads a .env file (if present) before reading env vars, so local
// runs can keep connection strings out of the config file.
func LoadFromEnv(path string) (*Config, error) {
	// Load .env file if it exists (no error if missing)
	_ = godotenv.Load()

	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("SERVER_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SERVER_PORT %q: %w", v, err)
		}
		cfg.Server.Port = port
	}
	if v := os.Getenv("DATASET_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid DATASET_SEED %q: %w", v, err)
		}
		cfg.Dataset.Seed = seed
	}
	if v := os.Getenv("MESSAGE_LOG_BACKEND"); v != "" {
		cfg.Messaging.LogBackend = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Messaging.Redis.Addr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Messaging.Redis.Password = v
	}

	// Database override (deployments keep the DSN in the environment)
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		cfg.Messaging.Postgres.DatabaseURL = dbURL
	}

	if err := validateBackend(cfg.Messaging.LogBackend); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validateBackend(backend string) error {
	switch backend {
	case "memory", "redis", "postgres":
		return nil
	default:
		return fmt.Errorf("unknown messaging log backend %q", backend)
	}
}
