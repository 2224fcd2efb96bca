package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Drivers de storage soportados.
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	App     string        `yaml:"app"`
	Server  ServerConfig  `yaml:"server"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	FlashTTL     time.Duration `yaml:"flash_ttl"`
}

type StorageConfig struct {
	Driver string `yaml:"driver"`
	// DSN: URL de Postgres o path del archivo SQLite (":memory:" = en memoria).
	DSN  string `yaml:"dsn"`
	Seed *bool  `yaml:"seed"`
}

// SeedEnabled: por defecto se cargan los datos de ejemplo.
func (s StorageConfig) SeedEnabled() bool {
	return s.Seed == nil || *s.Seed
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func Default() Config {
	return Config{
		App: "petclinic",
		Server: ServerConfig{
			Addr:         ":8080",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			FlashTTL:     2 * time.Minute,
		},
		Storage: StorageConfig{
			Driver: DriverMemory,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load lee path (si no está vacío), completa defaults y aplica overrides de
// env. Un archivo inexistente no es error; un YAML inválido sí.
func Load(path string) (Config, error) {
	cfg := Config{}

	if strings.TrimSpace(path) != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("invalid YAML in %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist):
		default:
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg = applyDefaults(cfg)
	cfg = applyEnv(cfg, os.Getenv)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Storage.Driver {
	case DriverMemory:
	case DriverPostgres, DriverSQLite:
		if strings.TrimSpace(c.Storage.DSN) == "" {
			return fmt.Errorf("storage.dsn is required for driver %q", c.Storage.Driver)
		}
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}
	return nil
}

func applyDefaults(cfg Config) Config {
	defaults := Default()

	if cfg.App == "" {
		cfg.App = defaults.App
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = defaults.Server.Addr
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = defaults.Server.ReadTimeout
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = defaults.Server.WriteTimeout
	}
	if cfg.Server.FlashTTL == 0 {
		cfg.Server.FlashTTL = defaults.Server.FlashTTL
	}
	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = defaults.Storage.Driver
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaults.Log.Level
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = defaults.Log.Format
	}
	return cfg
}

// applyEnv:
// - PORT=8080 (pisa server.addr con ":PORT")
// - DB_DRIVER=memory|postgres|sqlite
// - DB_DSN=... (sin DB_DRIVER explícito implica postgres, como antes)
// - LOG_LEVEL, LOG_FORMAT, APP_NAME
func applyEnv(cfg Config, getenv func(string) string) Config {
	if v := strings.TrimSpace(getenv("PORT")); v != "" {
		cfg.Server.Addr = ":" + v
	}

	driver := strings.ToLower(strings.TrimSpace(getenv("DB_DRIVER")))
	if dsn := strings.TrimSpace(getenv("DB_DSN")); dsn != "" {
		cfg.Storage.DSN = dsn
		if driver == "" && cfg.Storage.Driver == DriverMemory {
			driver = DriverPostgres
		}
	}
	if driver != "" {
		cfg.Storage.Driver = driver
	}

	if v := strings.TrimSpace(getenv("LOG_LEVEL")); v != "" {
		cfg.Log.Level = v
	}
	if v := strings.TrimSpace(getenv("LOG_FORMAT")); v != "" {
		cfg.Log.Format = v
	}
	if v := strings.TrimSpace(getenv("APP_NAME")); v != "" {
		cfg.App = v
	}
	return cfg
}
