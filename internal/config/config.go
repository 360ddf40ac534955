package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Драйверы документного хранилища
const (
	StoreDriverMongo    = "mongo"
	StoreDriverPostgres = "postgres"
)

type Config struct {
	Server   ServerConfig
	Store    StoreConfig
	Mongo    MongoConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Cache    CacheConfig
	Auth     AuthConfig
	Admin    AdminConfig
	Log      LogConfig
	Worker   WorkerConfig
}

type ServerConfig struct {
	Host           string
	Port           int
	Env            string
	PublicBaseURL  string
	AllowedOrigins string
	BodyLimit      int
}

type StoreConfig struct {
	Driver string
}

type MongoConfig struct {
	URI            string
	Database       string
	ConnectTimeout time.Duration
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	Enabled      bool
	ListCacheTTL time.Duration
	StatsTTL     time.Duration
}

type AuthConfig struct {
	SessionSecret string
	SessionTTL    time.Duration
	AdminUsername string
	AdminPassword string
	CookieSecure  bool
}

type AdminConfig struct {
	StaticDir    string
	RedirectPath string
}

type LogConfig struct {
	Level string
}

type WorkerConfig struct {
	Enabled           bool
	ConsumerGroup     string
	ConsumerName      string
	StreamReadTimeout time.Duration
	BatchSize         int
	MaxRetries        int
}

// Load читает конфигурацию из .env (если он есть) и переменных окружения
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	env := v.GetString("API_ENV")

	cfg := &Config{
		Server: ServerConfig{
			Host:           v.GetString("API_HOST"),
			Port:           v.GetInt("API_PORT"),
			Env:            env,
			PublicBaseURL:  strings.TrimRight(v.GetString("PUBLIC_BASE_URL"), "/"),
			AllowedOrigins: v.GetString("CORS_ALLOWED_ORIGINS"),
			BodyLimit:      v.GetInt("API_BODY_LIMIT"),
		},
		Store: StoreConfig{
			Driver: strings.ToLower(v.GetString("STORE_DRIVER")),
		},
		Mongo: MongoConfig{
			URI:            v.GetString("MONGODB_URI"),
			Database:       v.GetString("MONGODB_DATABASE"),
			ConnectTimeout: time.Duration(v.GetInt("MONGODB_CONNECT_TIMEOUT")) * time.Second,
		},
		Database: DatabaseConfig{
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			DBName:          v.GetString("DB_NAME"),
			SSLMode:         v.GetString("DB_SSLMODE"),
			MaxConns:        v.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(v.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(v.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			Enabled:      v.GetBool("CACHE_ENABLED"),
			ListCacheTTL: time.Duration(v.GetInt("LIST_CACHE_TTL")) * time.Second,
			StatsTTL:     time.Duration(v.GetInt("STATS_CACHE_TTL")) * time.Second,
		},
		Auth: AuthConfig{
			SessionSecret: v.GetString("SESSION_SECRET"),
			SessionTTL:    time.Duration(v.GetInt("SESSION_TTL")) * time.Second,
			AdminUsername: v.GetString("AUTH_ADMIN_USERNAME"),
			AdminPassword: v.GetString("AUTH_ADMIN_PASSWORD"),
			CookieSecure:  env == "production",
		},
		Admin: AdminConfig{
			StaticDir:    v.GetString("ADMIN_STATIC_DIR"),
			RedirectPath: v.GetString("ADMIN_REDIRECT_PATH"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Worker: WorkerConfig{
			Enabled:           v.GetBool("WORKER_ENABLED"),
			ConsumerGroup:     v.GetString("WORKER_CONSUMER_GROUP"),
			ConsumerName:      v.GetString("WORKER_CONSUMER_NAME"),
			StreamReadTimeout: time.Duration(v.GetInt("WORKER_STREAM_READ_TIMEOUT")) * time.Millisecond,
			BatchSize:         v.GetInt("WORKER_BATCH_SIZE"),
			MaxRetries:        v.GetInt("WORKER_MAX_RETRIES"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("API_HOST", "0.0.0.0")
	v.SetDefault("API_PORT", 8080)
	v.SetDefault("API_ENV", "development")
	v.SetDefault("PUBLIC_BASE_URL", "http://localhost:8080")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")
	v.SetDefault("API_BODY_LIMIT", 1024*1024)

	v.SetDefault("STORE_DRIVER", StoreDriverMongo)
	v.SetDefault("MONGODB_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGODB_DATABASE", "fkth")
	v.SetDefault("MONGODB_CONNECT_TIMEOUT", 10)

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_NAME", "archive")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", 3600)
	v.SetDefault("DB_CONN_MAX_IDLE_TIME", 600)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("CACHE_ENABLED", true)
	v.SetDefault("LIST_CACHE_TTL", 300)
	v.SetDefault("STATS_CACHE_TTL", 3600)

	// 30 дней
	v.SetDefault("SESSION_TTL", 30*24*60*60)
	v.SetDefault("AUTH_ADMIN_USERNAME", "admin")
	v.SetDefault("AUTH_ADMIN_PASSWORD", "change-me")

	v.SetDefault("ADMIN_STATIC_DIR", "./web/admin")
	v.SetDefault("ADMIN_REDIRECT_PATH", "/en")

	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("WORKER_ENABLED", true)
	v.SetDefault("WORKER_CONSUMER_GROUP", "content-event-workers")
	v.SetDefault("WORKER_CONSUMER_NAME", "content-worker-1")
	v.SetDefault("WORKER_STREAM_READ_TIMEOUT", 5000)
	v.SetDefault("WORKER_BATCH_SIZE", 10)
	v.SetDefault("WORKER_MAX_RETRIES", 3)
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case StoreDriverMongo:
		if c.Mongo.URI == "" {
			return errors.New("MONGODB_URI is required for the mongo store driver")
		}
	case StoreDriverPostgres:
		if c.Database.Host == "" || c.Database.DBName == "" {
			return errors.New("DB_HOST and DB_NAME are required for the postgres store driver")
		}
	default:
		return fmt.Errorf("unsupported STORE_DRIVER %q (want %s or %s)", c.Store.Driver, StoreDriverMongo, StoreDriverPostgres)
	}

	if c.Auth.SessionSecret == "" {
		return errors.New("SESSION_SECRET is required")
	}
	if c.Auth.SessionTTL <= 0 {
		return errors.New("SESSION_TTL must be positive")
	}
	if c.Auth.AdminUsername == "" || c.Auth.AdminPassword == "" {
		return errors.New("AUTH_ADMIN_USERNAME and AUTH_ADMIN_PASSWORD must not be empty")
	}

	return nil
}

// IsProduction - боевое окружение
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
