package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Поддерживаемые backend'ы хранилища
const (
	StorageFile     = "file"
	StorageMemory   = "memory"
	StorageRedis    = "redis"
	StoragePostgres = "postgres"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	HTTPPort  string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// Storage Config
	StorageBackend   string `env:"STORAGE_BACKEND" envDefault:"file"`
	StorageDir       string `env:"STORAGE_DIR" envDefault:"data"`
	StorageKeyPrefix string `env:"STORAGE_KEY_PREFIX" envDefault:"crc_"`
	DatabaseURL      string `env:"DATABASE_URL"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Simulation Config
	SimulationEnabled     bool          `env:"SIMULATION_ENABLED" envDefault:"true"`
	SimulationPeriod      time.Duration `env:"SIMULATION_PERIOD" envDefault:"15s"`
	SimulationProbability float64       `env:"SIMULATION_PROBABILITY" envDefault:"0.15"`
	SimulationBaseLat     float64       `env:"SIMULATION_BASE_LAT" envDefault:"40.7"`
	SimulationBaseLon     float64       `env:"SIMULATION_BASE_LON" envDefault:"-74.0"`
	SimulationJitter      float64       `env:"SIMULATION_JITTER" envDefault:"0.05"`

	// Notification Config
	NotificationLifetime time.Duration `env:"NOTIFICATION_LIFETIME" envDefault:"3500ms"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		HTTPPort:              getEnv("HTTP_PORT", "8080"),
		LogLevel:              getEnv("LOG_LEVEL", "info"),
		LogFormat:             getEnv("LOG_FORMAT", "json"),
		StorageBackend:        strings.ToLower(getEnv("STORAGE_BACKEND", StorageFile)),
		StorageDir:            getEnv("STORAGE_DIR", "data"),
		StorageKeyPrefix:      getEnv("STORAGE_KEY_PREFIX", "crc_"),
		DatabaseURL:           os.Getenv("DATABASE_URL"),
		RedisAddr:             getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:             os.Getenv("REDIS_PASSWORD"),
		RedisDB:               getEnvAsInt("REDIS_DB", 0),
		SimulationEnabled:     getEnvAsBool("SIMULATION_ENABLED", true),
		SimulationPeriod:      getEnvAsDuration("SIMULATION_PERIOD", 15*time.Second),
		SimulationProbability: getEnvAsFloat("SIMULATION_PROBABILITY", 0.15),
		SimulationBaseLat:     getEnvAsFloat("SIMULATION_BASE_LAT", 40.7),
		SimulationBaseLon:     getEnvAsFloat("SIMULATION_BASE_LON", -74.0),
		SimulationJitter:      getEnvAsFloat("SIMULATION_JITTER", 0.05),
		NotificationLifetime:  getEnvAsDuration("NOTIFICATION_LIFETIME", 3500*time.Millisecond),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.StorageBackend {
	case StorageFile, StorageMemory, StorageRedis:
	case StoragePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL environment variable is required for postgres storage")
		}
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND %q", c.StorageBackend)
	}
	if c.SimulationProbability < 0 || c.SimulationProbability > 1 {
		return fmt.Errorf("SIMULATION_PROBABILITY must be within [0, 1], got %v", c.SimulationProbability)
	}
	if c.SimulationEnabled && c.SimulationPeriod <= 0 {
		return fmt.Errorf("SIMULATION_PERIOD must be positive, got %s", c.SimulationPeriod)
	}
	return nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
