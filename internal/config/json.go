package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Duration принимает в JSON строку вида "1s" или число наносекунд.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		d.Duration = time.Duration(value)
		return nil
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		d.Duration = parsed
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

// JSONConfig описывает файл конфигурации. Переопределяются только поля,
// которые есть в файле.
type JSONConfig struct {
	Addr            *string   `json:"addr"`
	Storage         *string   `json:"storage"`
	DatabaseDSN     *string   `json:"database_dsn"`
	LogLevel        *string   `json:"log_level"`
	DBLogLevel      *string   `json:"db_log_level"`
	RequestTimeout  *Duration `json:"request_timeout"`
	ShutdownTimeout *Duration `json:"shutdown_timeout"`
	HashCost        *int      `json:"hash_cost"`
	Seed            *bool     `json:"seed"`
}

// parseJSON применяет значения из файла -c/-config, если он указан.
func parseJSON(cfg *Config, args []string) error {
	path := configPath(args)
	if path == "" {
		return nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var c JSONConfig
	if err := json.Unmarshal(file, &c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	setIf(&cfg.Addr, c.Addr)
	setIf(&cfg.Storage, c.Storage)
	setIf(&cfg.DatabaseDSN, c.DatabaseDSN)
	setIf(&cfg.LogLevel, c.LogLevel)
	setIf(&cfg.DBLogLevel, c.DBLogLevel)
	setIf(&cfg.HashCost, c.HashCost)
	setIf(&cfg.Seed, c.Seed)
	if c.RequestTimeout != nil {
		cfg.RequestTimeout = c.RequestTimeout.Duration
	}
	if c.ShutdownTimeout != nil {
		cfg.ShutdownTimeout = c.ShutdownTimeout.Duration
	}
	return nil
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
