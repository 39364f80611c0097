package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

// Бэкенды хранилищ. memory - процессные стора под RWMutex (по умолчанию),
// postgres - sqlx. Избранное дополнительно может жить в Redis.
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"

	FavoritesStorage = "storage"
	FavoritesRedis   = "redis"
)

type Config struct {
	Server   ServerConfig
	Storage  StorageConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Admin    AdminConfig
	Catalog  CatalogConfig
	Log      LogConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type StorageConfig struct {
	// Backend - memory | postgres.
	Backend string
	// FavoritesBackend - storage (следует за Backend) | redis.
	FavoritesBackend string
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

type AdminConfig struct {
	// PIN - общий админский секрет; сопровождает каждый мутирующий запрос.
	PIN string
}

type CatalogConfig struct {
	// Seed - засеять пустой каталог лондонскими музеями и
	// предустановленными турами при старте.
	Seed bool
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	viper.SetDefault("API_HOST", "0.0.0.0")
	viper.SetDefault("API_PORT", 8080)
	viper.SetDefault("API_ENV", "development")
	viper.SetDefault("STORAGE_BACKEND", StorageMemory)
	viper.SetDefault("FAVORITES_BACKEND", FavoritesStorage)
	viper.SetDefault("ADMIN_PIN", "1234")
	viper.SetDefault("SEED_CATALOG", true)
	viper.SetDefault("LOG_LEVEL", "info")

	// .env опционален: в контейнере конфигурация приходит из окружения.
	if err := viper.ReadInConfig(); err != nil && !os.IsNotExist(err) {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Storage: StorageConfig{
			Backend:          viper.GetString("STORAGE_BACKEND"),
			FavoritesBackend: viper.GetString("FAVORITES_BACKEND"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			DBName:          viper.GetString("DB_NAME"),
			SSLMode:         viper.GetString("DB_SSLMODE"),
			MaxConns:        viper.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(viper.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Admin: AdminConfig{
			PIN: viper.GetString("ADMIN_PIN"),
		},
		Catalog: CatalogConfig{
			Seed: viper.GetBool("SEED_CATALOG"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	if cfg.Storage.Backend != StorageMemory && cfg.Storage.Backend != StoragePostgres {
		return nil, fmt.Errorf("unknown STORAGE_BACKEND: %q", cfg.Storage.Backend)
	}
	if cfg.Storage.FavoritesBackend != FavoritesStorage && cfg.Storage.FavoritesBackend != FavoritesRedis {
		return nil, fmt.Errorf("unknown FAVORITES_BACKEND: %q", cfg.Storage.FavoritesBackend)
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
