package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

/* Config is read from a .env file (toml) in the working directory and from
 * the environment. Environment variables win; a missing file is not an error.
 */

// Storage backends
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

type Config struct {
	Port           string `mapstructure:"PORT"`
	StorageBackend string `mapstructure:"STORAGE_BACKEND"`
	DatabaseURL    string `mapstructure:"DATABASE_URL"`
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisDB        int    `mapstructure:"REDIS_DB"`
	RulesFile      string `mapstructure:"RULES_FILE"`
	InstanceID     string `mapstructure:"INSTANCE_ID"`

	DispatchInterval    time.Duration `mapstructure:"DISPATCH_INTERVAL"`
	DispatchBatchSize   int           `mapstructure:"DISPATCH_BATCH_SIZE"`
	DeliveryTimeout     time.Duration `mapstructure:"DELIVERY_TIMEOUT"`
	MaxRetries          int           `mapstructure:"MAX_RETRIES"`
	RetryInitialBackoff time.Duration `mapstructure:"RETRY_INITIAL_BACKOFF"`
	RetryMaxBackoff     time.Duration `mapstructure:"RETRY_MAX_BACKOFF"`
	EventRetention      time.Duration `mapstructure:"EVENT_RETENTION"`
	HeartbeatTTL        time.Duration `mapstructure:"HEARTBEAT_TTL"`
	LockTTL             time.Duration `mapstructure:"LOCK_TTL"`
}

var defaults = map[string]any{
	"PORT":                  "8080",
	"STORAGE_BACKEND":       BackendMemory,
	"DATABASE_URL":          "",
	"REDIS_ADDR":            "localhost:6379",
	"REDIS_PASSWORD":        "",
	"REDIS_DB":              0,
	"RULES_FILE":            "",
	"INSTANCE_ID":           "",
	"DISPATCH_INTERVAL":     "10s",
	"DISPATCH_BATCH_SIZE":   20,
	"DELIVERY_TIMEOUT":      "5s",
	"MAX_RETRIES":           3,
	"RETRY_INITIAL_BACKOFF": "0s",
	"RETRY_MAX_BACKOFF":     "0s",
	"EVENT_RETENTION":       "0s",
	"HEARTBEAT_TTL":         "60s",
	"LOCK_TTL":              "60s",
}

func GetConfig() (*Config, error) {
	return Load(".")
}

// Load reads the .env file found in dir, if any
func Load(dir string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(".env")
	v.SetConfigType("toml")
	v.AddConfigPath(dir)
	v.AutomaticEnv()
	// keys must be known to viper for AutomaticEnv to reach Unmarshal
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("parsing config data: %w", err)
	}

	if config.InstanceID == "" {
		host, err := os.Hostname()
		if err != nil {
			host = "dispatcher"
		}
		config.InstanceID = host
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate rejects combinations the binaries cannot start with
func (c *Config) Validate() error {
	c.StorageBackend = strings.ToLower(strings.TrimSpace(c.StorageBackend))
	switch c.StorageBackend {
	case BackendMemory, BackendRedis:
	case BackendPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required for the %s backend", BackendPostgres)
		}
	default:
		return fmt.Errorf("invalid storage backend: %q", c.StorageBackend)
	}
	if c.MaxRetries <= 0 {
		return fmt.Errorf("MAX_RETRIES must be positive, got %d", c.MaxRetries)
	}
	if c.DispatchInterval <= 0 {
		return fmt.Errorf("DISPATCH_INTERVAL must be positive, got %s", c.DispatchInterval)
	}
	return nil
}
