// Package config loads application configuration.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envFile = "config/.env"

// NewConfig loads configuration from environment using viper with typed defaults and validation.
func NewConfig() (*Config, error) {
	v := viper.New()
	if envMap, err := godotenv.Read(envFile); err == nil {
		for k, v := range envMap {
			if _, exists := os.LookupEnv(k); !exists {
				_ = os.Setenv(k, v)
			}
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	bindEnvs(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "debug")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.shutdown_timeout", 5*time.Second)

	v.SetDefault("http.request_timeout", 3*time.Second)

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.username", "pickem_username")
	v.SetDefault("database.password", "pickem_password")
	v.SetDefault("database.name", "pickem_database")
	v.SetDefault("database.ssl_mode", "verify-full")
	v.SetDefault("database.migrations_dir", "db/migrations")
	v.SetDefault("database.migrate_timeout", 10*time.Second)
	v.SetDefault("database.query_timeout", 2*time.Second)
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.min_conns", 2)
}

func bindEnvs(v *viper.Viper) {
	keys := []string{
		"logging.level",
		"server.host",
		"server.port",
		"server.shutdown_timeout",
		"http.request_timeout",
		"database.host",
		"database.port",
		"database.username",
		"database.password",
		"database.name",
		"database.ssl_mode",
		"database.migrations_dir",
		"database.migrate_timeout",
		"database.query_timeout",
		"database.max_conns",
		"database.min_conns",
	}

	for _, k := range keys {
		_ = v.BindEnv(k)
	}
}
