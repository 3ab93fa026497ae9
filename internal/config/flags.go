package config

import (
	"flag"
	"strings"
)

// parseFlags заполняет Config из флагов командной строки.
//
// Флаги:
//
//	-a string         адрес HTTP-сервера (например ":8080")
//	-storage string   тип хранилища (in-memory или postgres)
//	-d string         DSN PostgreSQL
//	-l string         уровень логов
//	-dblog string     уровень логов gorm
//	-t duration       таймаут запроса
//	-s duration       таймаут остановки
//	-b int            стоимость bcrypt
//	-seed             заполнить in-memory хранилище тестовыми постами
//	-c, -config       JSON-файл конфигурации, читается в parseJSON
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("posts-service", flag.ContinueOnError)

	fs.StringVar(&cfg.Addr, "a", cfg.Addr, "address and port to run server")
	fs.StringVar(&cfg.Storage, "storage", cfg.Storage, "Storage type (in-memory or postgres)")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&cfg.DBLogLevel, "dblog", cfg.DBLogLevel, "gorm log level (silent, error, warn, info)")
	fs.DurationVar(&cfg.RequestTimeout, "t", cfg.RequestTimeout, "request timeout")
	fs.DurationVar(&cfg.ShutdownTimeout, "s", cfg.ShutdownTimeout, "shutdown timeout")
	fs.IntVar(&cfg.HashCost, "b", cfg.HashCost, "bcrypt cost for post passwords")
	fs.BoolVar(&cfg.Seed, "seed", cfg.Seed, "fill in-memory storage with sample posts")

	var ignored string
	fs.StringVar(&ignored, "c", "", "Path to config file (short)")
	fs.StringVar(&ignored, "config", "", "Path to config file")

	return fs.Parse(args)
}

// configPath достает значение -c/-config, не разбирая остальные флаги.
func configPath(args []string) string {
	var path string
	for i := 0; i < len(args); i++ {
		name, value, hasValue := strings.Cut(strings.TrimLeft(args[i], "-"), "=")
		if !strings.HasPrefix(args[i], "-") || (name != "c" && name != "config") {
			continue
		}
		if hasValue {
			path = value
			continue
		}
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			path = args[i+1]
			i++
		}
	}
	return path
}
