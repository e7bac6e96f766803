package database

import (
	"net"
	"net/url"

	"github.com/Lexv0lk/merch-checkout/internal/pkg/env"
)

type PostgresSettings struct {
	User       string
	Password   string
	Host       string
	Port       string
	DBName     string
	SSlEnabled bool
}

// WithEnvOverrides replaces the fields whose DB_* variables are set.
func (s PostgresSettings) WithEnvOverrides() PostgresSettings {
	env.TrySetFromEnv(env.EnvDatabaseHost, &s.Host)
	env.TrySetFromEnv(env.EnvDatabasePort, &s.Port)
	env.TrySetFromEnv(env.EnvDatabaseUser, &s.User)
	env.TrySetFromEnv(env.EnvDatabasePassword, &s.Password)
	env.TrySetFromEnv(env.EnvDatabaseName, &s.DBName)
	env.TrySetBoolFromEnv(env.EnvDatabaseSSLEnabled, &s.SSlEnabled)

	return s
}

func (s PostgresSettings) GetUrl() string {
	dsn := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(s.User, s.Password),
		Host:   net.JoinHostPort(s.Host, s.Port),
		Path:   "/" + s.DBName,
	}
	if !s.SSlEnabled {
		dsn.RawQuery = "sslmode=disable"
	}

	return dsn.String()
}
