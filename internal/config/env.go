package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

// DBEnv is the database connection data read from the environment.
type DBEnv struct {
	Host    string `env:"DB_HOST,required"`
	Port    string `env:"DB_PORT" envDefault:"5432"`
	User    string `env:"DB_USER,required"`
	Pass    string `env:"DB_PASS,required"`
	Name    string `env:"DB_NAME,required"`
	SSLMode string `env:"DB_SSLMODE" envDefault:"disable"`
}

// SMTPEnv is the mailer credentials read from the environment.
type SMTPEnv struct {
	Host string `env:"SMTP_HOST,required"`
	Port int    `env:"SMTP_PORT,required"`
	User string `env:"SMTP_USER,required"`
	Pass string `env:"SMTP_PASS,required"`
}

// Env holds the environment-backed configuration: the signing key, the
// public base URL used in password reset links, and the credentials for
// the external collaborators.
type Env struct {
	AppEnv    string `env:"ENV" envDefault:"development"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"INFO"`
	Key       string `env:"KEY,required"`
	ClientURL string `env:"CLIENT_URL,required"`
	DB        DBEnv
	SMTP      SMTPEnv
}

func (e *Env) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("env", e.AppEnv),
		slog.String("log_level", e.LogLevel),
		slog.String("client_url", e.ClientURL),
	)
}

// IsProduction reports whether the process runs with production
// hardening (secure cookies, JSON logs).
func (e *Env) IsProduction() bool {
	return e.AppEnv == "production"
}

func LoadEnv() (*Env, error) {
	var cfg Env
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}
