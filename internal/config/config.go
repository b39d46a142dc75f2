// Package config declares the application configuration, loaded from the
// environment-specific YAML file by cfgloader.
package config

import (
	"time"

	"github.com/marcosmapl/studium-backend-sub000/http/server"
	"github.com/marcosmapl/studium-backend-sub000/logger"
	"github.com/marcosmapl/studium-backend-sub000/pg"
)

type Config struct {
	Server server.Config `yaml:"server"`
	Logger logger.Config `yaml:"logger"`
	PG     pg.Config     `yaml:"pg"`
	Auth   AuthConfig    `yaml:"auth"`
}

type AuthConfig struct {
	// JWTSecret signs the access tokens. Minimum 16 characters.
	JWTSecret string `yaml:"jwt_secret" validate:"required,min=16" mask:"true"`

	// TokenTTL is the lifetime of an issued token.
	TokenTTL time.Duration `yaml:"token_ttl" default:"24h"`
}
