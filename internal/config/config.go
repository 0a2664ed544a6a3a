// Package config loads server settings from an optional file and the environment.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	HTTP struct {
		Addr string
	} `mapstructure:"http"`

	Storage struct {
		Driver      string
		SQLitePath  string `mapstructure:"sqlite_path"`
		PostgresDSN string `mapstructure:"postgres_dsn"`
	} `mapstructure:"storage"`

	Log struct {
		Level string
	} `mapstructure:"log"`

	Static struct {
		Path string
	} `mapstructure:"static"`

	Metrics struct {
		Enabled bool
	} `mapstructure:"metrics"`

	RateLimit struct {
		RPS   float64 `mapstructure:"rps"` // 0 disables limiting
		Burst int
	} `mapstructure:"rate_limit"`

	CORS struct {
		AllowedOrigins []string `mapstructure:"allowed_origins"`
	} `mapstructure:"cors"`
}

// Load reads the config file at path, if any, then applies TIPPOOL_*
// environment overrides (TIPPOOL_STORAGE_DRIVER for storage.driver). The
// DB_PATH, STATIC_PATH and LOG_LEVEL variables are honored as fallbacks.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("http.addr", ":8080")
	v.SetDefault("storage.driver", DriverSQLite)
	v.SetDefault("storage.sqlite_path", "./data/tippool.db")
	v.SetDefault("storage.postgres_dsn", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("static.path", "../frontend/static")
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("rate_limit.rps", 50)
	v.SetDefault("rate_limit.burst", 100)
	v.SetDefault("cors.allowed_origins", []string{"*"})

	v.SetEnvPrefix("TIPPOOL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, legacy := range map[string]string{
		"storage.sqlite_path": "DB_PATH",
		"static.path":         "STATIC_PATH",
		"log.level":           "LOG_LEVEL",
	} {
		env := "TIPPOOL_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, env, legacy); err != nil {
			return Config{}, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	var c Config
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return c, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}
	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("failed to decode config: %w", err)
	}
	return c, nil
}

// Validate reports every setting that cannot be used to start the server.
func (c Config) Validate() error {
	var errs []error
	if c.HTTP.Addr == "" {
		errs = append(errs, errors.New("http.addr is required"))
	}
	switch c.Storage.Driver {
	case DriverSQLite:
		if c.Storage.SQLitePath == "" {
			errs = append(errs, errors.New("storage.sqlite_path is required for the sqlite driver"))
		}
	case DriverPostgres:
		if c.Storage.PostgresDSN == "" {
			errs = append(errs, errors.New("storage.postgres_dsn is required for the postgres driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown storage.driver %q", c.Storage.Driver))
	}
	if c.RateLimit.RPS < 0 {
		errs = append(errs, errors.New("rate_limit.rps must not be negative"))
	}
	if c.RateLimit.RPS > 0 && c.RateLimit.Burst < 1 {
		errs = append(errs, errors.New("rate_limit.burst must be at least 1"))
	}
	return errors.Join(errs...)
}
