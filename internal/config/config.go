package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`     // Maximum number of open connections to the database
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`     // Maximum number of idle connections in the pool
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`  // Maximum amount of time a connection may be reused (e.g., "5m", "1h")
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"` // Maximum amount of time a connection may be idle (e.g., "10m", "30m")
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds
}

// AuthConfig holds authentication configuration for the admin endpoints
type AuthConfig struct {
	JWTPublicKey string   `mapstructure:"jwt_public_key"`
	APIKeys      []string `mapstructure:"api_keys"`
}

// BlockConfig holds mining configuration
type BlockConfig struct {
	// MaxTransactions is the number of pending transactions bundled into one block
	MaxTransactions int `mapstructure:"max_transactions"`
	// ConflictRetries is how many times mining starts over after another miner extended the chain first
	ConflictRetries int `mapstructure:"conflict_retries"`
}

// RateLimitConfig holds the per-client API request rate limit.
// A non-positive RequestsPerSecond disables limiting. When RedisAddr is set the limit is
// shared by every API instance through Redis, with a local in-memory limiter as fallback.
type RateLimitConfig struct {
	RequestsPerSecond int    `mapstructure:"requests_per_second"`
	Burst             int    `mapstructure:"burst"`
	RedisAddr         string `mapstructure:"redis_addr"`
	RedisPassword     string `mapstructure:"redis_password"`
	RedisDB           int    `mapstructure:"redis_db"`
	RedisKeyPrefix    string `mapstructure:"redis_key_prefix"`
}

// APIConfig holds configuration for API server
type APIConfig struct {
	BaseConfig `mapstructure:",squash"`
	Server     ServerConfig    `mapstructure:"server"`
	Database   DatabaseConfig  `mapstructure:"database"`
	Auth       AuthConfig      `mapstructure:"auth"`
	Block      BlockConfig     `mapstructure:"block"`
	RateLimit  RateLimitConfig `mapstructure:"rate_limit"`
}

// MigrateConfig holds configuration for the schema migration runner
type MigrateConfig struct {
	BaseConfig `mapstructure:",squash"`
	Database   DatabaseConfig `mapstructure:"database"`
}

// envKeys lists every key that may come from a FF_LEDGER_* environment variable.
// Viper only maps env vars onto struct fields for keys it knows about.
var envKeys = []string{
	"debug",
	"sentry_dsn",
	"database.host",
	"database.port",
	"database.user",
	"database.password",
	"database.dbname",
	"database.sslmode",
	"database.max_open_conns",
	"database.max_idle_conns",
	"database.conn_max_lifetime",
	"database.conn_max_idle_time",
	"server.host",
	"server.port",
	"server.read_timeout",
	"server.write_timeout",
	"server.idle_timeout",
	"auth.jwt_public_key",
	"auth.api_keys",
	"block.max_transactions",
	"block.conflict_retries",
	"rate_limit.requests_per_second",
	"rate_limit.burst",
	"rate_limit.redis_addr",
	"rate_limit.redis_password",
	"rate_limit.redis_db",
	"rate_limit.redis_key_prefix",
}

var databaseDefaults = map[string]any{
	"database.port":    5432,
	"database.sslmode": "disable",
}

var apiDefaults = map[string]any{
	"debug":                          false,
	"server.host":                    "0.0.0.0",
	"server.port":                    8080,
	"server.read_timeout":            10,
	"server.write_timeout":           10,
	"server.idle_timeout":            120,
	"block.max_transactions":         2,
	"block.conflict_retries":         3,
	"rate_limit.requests_per_second": 0,
	"rate_limit.burst":               20,
	"rate_limit.redis_key_prefix":    "ff:ledger:api:",
}

// LoadAPIConfig loads configuration for API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	var cfg APIConfig
	if err := load("api", configFile, envPath, &cfg, databaseDefaults, apiDefaults); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the settings the API server cannot start without
func (c *APIConfig) Validate() error {
	if c.Block.MaxTransactions <= 0 {
		return fmt.Errorf("block.max_transactions must be positive, got %d", c.Block.MaxTransactions)
	}
	if c.Block.ConflictRetries < 0 {
		return fmt.Errorf("block.conflict_retries must not be negative, got %d", c.Block.ConflictRetries)
	}
	if c.RateLimit.RequestsPerSecond > 0 && c.RateLimit.Burst <= 0 {
		return fmt.Errorf("rate_limit.burst must be positive when rate limiting is enabled, got %d", c.RateLimit.Burst)
	}
	return nil
}

// LoadMigrateConfig loads configuration for the migration runner
func LoadMigrateConfig(configFile string, envPath string) (*MigrateConfig, error) {
	var cfg MigrateConfig
	if err := load("migrate", configFile, envPath, &cfg, databaseDefaults); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the database to migrate is named
func (c *MigrateConfig) Validate() error {
	if c.Database.Host == "" {
		return errors.New("database.host is required")
	}
	if c.Database.DBName == "" {
		return errors.New("database.dbname is required")
	}
	return nil
}

// load reads the config file (if any) and the environment into out.
// A missing config file is not an error; settings then come from the environment alone.
func load(service, configFile, envPath string, out any, defaults ...map[string]any) error {
	v := configureViper(service, configFile, envPath)
	for _, d := range defaults {
		for key, value := range d {
			v.SetDefault(key, value)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	if err := v.Unmarshal(out); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return nil
}

// configureViper returns a viper instance reading the service config file and FF_LEDGER_* variables
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	loadEnv(envPath, service)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// Working directory, then cmd/<service>/, then config/
		v.AddConfigPath(".")
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		v.AddConfigPath("config/")
	}

	v.SetEnvPrefix("FF_LEDGER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range envKeys {
		_ = v.BindEnv(key)
	}

	return v
}

// loadEnv loads .env, .env.local and .env.<service>.local from envPath, later files winning
func loadEnv(envPath string, service string) {
	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range []string{".env", ".env.local", ".env." + service + ".local"} {
		_ = godotenv.Overload(filepath.Join(envPath, envFile))
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// URL returns the database connection string in postgres:// URL form
func (c *DatabaseConfig) URL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": []string{c.SSLMode}}.Encode(),
	}
	return u.String()
}
