package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type AppConfig struct {
	Debug       bool   `envconfig:"DEBUG"`
	Silent      bool   `envconfig:"SILENT"`
	LogFilePath string `envconfig:"LOG_FILE_PATH" default:"/tmp/movie_lens_api.log"`

	// Embedded so envconfig reads their keys without a prefix.
	ServerConfig
	DBConfig
}

type ServerConfig struct {
	Port            string        `envconfig:"PORT" default:"8080"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

// Addr is the listen address for the HTTP server.
func (c ServerConfig) Addr() string {
	return ":" + c.Port
}

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type DBConfig struct {
	Driver      string `envconfig:"DB_DRIVER" default:"sqlite"`
	DbPath      string `envconfig:"DB_PATH" default:"movies.db"`
	DatabaseURL string `envconfig:"DATABASE_URL"`
}

func (c DBConfig) Validate() error {
	switch c.Driver {
	case DriverSQLite:
		if c.DbPath == "" {
			return errors.New("DB_PATH is required for the sqlite driver")
		}
	case DriverPostgres:
		if c.DatabaseURL == "" {
			return errors.New("DATABASE_URL is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.Driver)
	}

	return nil
}

// LoadEnv reads key/value pairs from the given .env files into the process
// environment. Missing files are not an error.
func LoadEnv(files ...string) error {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}

	return nil
}

// NewAppConfig builds the configuration from the process environment.
func NewAppConfig() (AppConfig, error) {
	var cfg AppConfig

	if err := envconfig.Process("", &cfg); err != nil {
		return AppConfig{}, err
	}

	if err := cfg.DBConfig.Validate(); err != nil {
		return AppConfig{}, err
	}

	return cfg, nil
}
