package config

import (
	"fmt"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Типы хранилищ.
const (
	StorageInMemory = "in-memory"
	StoragePostgres = "postgres"
)

// Config содержит настройки сервиса.
//
// Поля:
//   - Addr: адрес HTTP-сервера.
//   - Storage: хранилище, "in-memory" или "postgres".
//   - DatabaseDSN: DSN PostgreSQL, обязателен для postgres.
//   - LogLevel: уровень логов сервиса (debug, info, warn, error).
//   - DBLogLevel: уровень логов gorm (silent, error, warn, info).
//   - RequestTimeout: ограничение на один HTTP-запрос.
//   - ShutdownTimeout: сколько ждать активные запросы при остановке.
//   - HashCost: стоимость bcrypt для паролей постов.
//   - Seed: заполнить in-memory хранилище тестовыми постами.
type Config struct {
	Addr            string
	Storage         string
	DatabaseDSN     string
	LogLevel        string
	DBLogLevel      string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
	HashCost        int
	Seed            bool
}

// LoadDefaults заполняет Config значениями по умолчанию.
func (c *Config) LoadDefaults() {
	c.Addr = ":8080"
	c.Storage = StorageInMemory
	c.DatabaseDSN = ""
	c.LogLevel = "info"
	c.DBLogLevel = "warn"
	c.RequestTimeout = 10 * time.Second
	c.ShutdownTimeout = 15 * time.Second
	c.HashCost = 10
	c.Seed = false
}

// Validate проверяет, что настройки согласованы.
func (c *Config) Validate() error {
	switch c.Storage {
	case StorageInMemory:
	case StoragePostgres:
		if c.DatabaseDSN == "" {
			return fmt.Errorf("DATABASE_URL must be set for postgres storage")
		}
	default:
		return fmt.Errorf("unknown storage type %q (in-memory or postgres)", c.Storage)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive, got %s", c.RequestTimeout)
	}
	if c.HashCost < bcrypt.MinCost || c.HashCost > bcrypt.MaxCost {
		return fmt.Errorf("hash cost must be in [%d, %d], got %d", bcrypt.MinCost, bcrypt.MaxCost, c.HashCost)
	}
	return nil
}

// LoadConfig собирает Config: значения по умолчанию, затем JSON-файл,
// переменные окружения и флаги командной строки.
func LoadConfig(args []string, getenv func(string) string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJSON(cfg, args); err != nil {
		return nil, err
	}
	parseEnv(cfg, getenv)
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FromOS читает конфигурацию из os.Args и окружения процесса.
func FromOS() (*Config, error) {
	return LoadConfig(os.Args[1:], os.Getenv)
}

func parseEnv(cfg *Config, getenv func(string) string) {
	if port := getenv("PORT"); port != "" {
		cfg.Addr = ":" + port
	}
	if dsn := getenv("DATABASE_URL"); dsn != "" {
		cfg.DatabaseDSN = dsn
	}
	if storage := getenv("STORAGE"); storage != "" {
		cfg.Storage = storage
	}
	if level := getenv("LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}
}
