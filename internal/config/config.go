package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Env        string         `mapstructure:"env"`
	LogLevel   string         `mapstructure:"log_level"`
	Server     ServerConfig   `mapstructure:"server"`
	Database   DatabaseConfig `mapstructure:"database"`
	Redis      RedisConfig    `mapstructure:"redis"`
	Auth       AuthConfig     `mapstructure:"auth"`
	Cache      CacheConfig    `mapstructure:"cache"`
	Workers    WorkerConfig   `mapstructure:"workers"`
	Categories CategoryConfig `mapstructure:"categories"`
}

type ServerConfig struct {
	Port            string        `mapstructure:"port"`
	CORSOrigins     []string      `mapstructure:"cors_origins"`
	RateLimit       float64       `mapstructure:"rate_limit"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type AuthConfig struct {
	JWTSecret    string        `mapstructure:"jwt_secret"`
	SessionTTL   time.Duration `mapstructure:"session_ttl"`
	EnforceRoles bool          `mapstructure:"enforce_roles"`
}

type CacheConfig struct {
	ListTTL time.Duration `mapstructure:"list_ttl"`
}

type WorkerConfig struct {
	Count int `mapstructure:"count"`
}

type CategoryConfig struct {
	Strict bool `mapstructure:"strict"`
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Server.Port
}

// envKeys maps config keys to the environment variables that override them.
var envKeys = map[string]string{
	"env":                     "ENV",
	"log_level":               "LOG_LEVEL",
	"server.port":             "PORT",
	"server.cors_origins":     "CORS_ORIGINS",
	"server.rate_limit":       "RATE_LIMIT",
	"server.shutdown_timeout": "SHUTDOWN_TIMEOUT",
	"database.url":            "DATABASE_URL",
	"redis.addr":              "REDIS_ADDR",
	"redis.password":          "REDIS_PASSWORD",
	"redis.db":                "REDIS_DB",
	"auth.jwt_secret":         "JWT_SECRET",
	"auth.session_ttl":        "SESSION_TTL",
	"auth.enforce_roles":      "ENFORCE_ROLES",
	"cache.list_ttl":          "LIST_CACHE_TTL",
	"workers.count":           "WORKER_COUNT",
	"categories.strict":       "STRICT_CATEGORIES",
}

// configPaths are searched for config.<env>.yaml; swapped in tests.
var configPaths = []string{"/configs", "./configs"}

// Load reads an optional .env file, an optional config.<ENV>.yaml and the environment,
// in increasing order of precedence.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	env := os.Getenv("ENV")
	if env == "" {
		env = "local"
	}

	v := viper.New()
	v.SetConfigName("config." + env)
	v.SetConfigType("yaml")
	for _, p := range configPaths {
		v.AddConfigPath(p)
	}

	v.SetDefault("env", env)
	v.SetDefault("log_level", "info")
	v.SetDefault("server.port", "3000")
	v.SetDefault("server.cors_origins", []string{"*"})
	v.SetDefault("server.rate_limit", 20)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("redis.db", 0)
	v.SetDefault("auth.session_ttl", 720*time.Hour)
	v.SetDefault("auth.enforce_roles", false)
	v.SetDefault("cache.list_ttl", 30*time.Second)
	v.SetDefault("workers.count", 1)
	v.SetDefault("categories.strict", false)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	for key, env := range envKeys {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind %s: %w", env, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	for i, o := range cfg.Server.CORSOrigins {
		cfg.Server.CORSOrigins[i] = strings.TrimSpace(o)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.Database.URL == "":
		return errors.New("DATABASE_URL is not set")
	case c.Redis.Addr == "":
		return errors.New("REDIS_ADDR is not set")
	case c.Auth.JWTSecret == "":
		return errors.New("JWT_SECRET is not set")
	case c.Server.Port == "":
		return errors.New("PORT must not be empty")
	case c.Redis.DB < 0:
		return fmt.Errorf("invalid REDIS_DB: %d", c.Redis.DB)
	case c.Workers.Count <= 0:
		return fmt.Errorf("invalid WORKER_COUNT: %d", c.Workers.Count)
	case c.Auth.SessionTTL <= 0:
		return fmt.Errorf("SESSION_TTL must be positive, got %s", c.Auth.SessionTTL)
	case c.Cache.ListTTL < 0:
		return fmt.Errorf("LIST_CACHE_TTL must not be negative, got %s", c.Cache.ListTTL)
	case c.Server.RateLimit < 0:
		return fmt.Errorf("RATE_LIMIT must not be negative, got %v", c.Server.RateLimit)
	}
	return nil
}
