package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	HTTP    HTTPConfig    `mapstructure:"http"`
	DB      DBConfig      `mapstructure:"db"`
	Log     LogConfig     `mapstructure:"log"`
	Session SessionConfig `mapstructure:"session"`
}

type HTTPConfig struct {
	Addr string `mapstructure:"addr"`
}

type DBConfig struct {
	DSN        string `mapstructure:"dsn"`
	Migrations string `mapstructure:"migrations"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type SessionConfig struct {
	Lifetime time.Duration `mapstructure:"lifetime"`
}

// Load reads .env if present, then environment variables prefixed with
// PADEL_ (PADEL_HTTP_ADDR, PADEL_DB_DSN, ...) on top of the defaults.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file found, using environment variables")
	}

	v := viper.New()
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("db.dsn", "padel.db?_journal_mode=WAL&_foreign_keys=on")
	v.SetDefault("db.migrations", "file://migrations")
	v.SetDefault("log.level", "info")
	v.SetDefault("session.lifetime", 24*time.Hour)

	v.SetEnvPrefix("padel")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// LogLevel falls back to info for anything logrus does not understand.
func (c LogConfig) LogLevel() logrus.Level {
	level, err := logrus.ParseLevel(c.Level)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}
