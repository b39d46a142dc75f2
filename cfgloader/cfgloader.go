// Package cfgloader loads and validates application configuration at startup.
//
// Configuration is read from a YAML file named after the ENVIRONMENT variable
// (./config/${ENVIRONMENT}.yaml). Environment variables referenced in the file
// are expanded, default values are applied from `default` struct tags and the
// result is validated with go-playground/validator. Any failure aborts the
// process: a service must never start with a broken configuration.
package cfgloader

import (
	"fmt"
	"log/slog"
	"os"
	"reflect"
	"slices"
	"strings"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	EnvProduction = "production"
	EnvStaging    = "staging"
	EnvDev        = "dev"
	EnvLocal      = "local"
	EnvTest       = "test"
)

// MustLoad loads the configuration for the current ENVIRONMENT into a struct
// of type T. Fields map to YAML keys via `yaml` tags, receive fallback values
// from `default` tags and are validated with `validate` tags.
func MustLoad[T any]() T {
	var config T

	if reflect.ValueOf(config).Kind() == reflect.Ptr {
		fail("type parameter T must not be a pointer")
	}

	_ = godotenv.Load()

	env := os.Getenv("ENVIRONMENT")
	if !slices.Contains([]string{EnvProduction, EnvStaging, EnvDev, EnvLocal, EnvTest}, env) {
		fail("ENVIRONMENT variable is not set or invalid. Choices are: production, staging, dev, local, test")
	}

	path := fmt.Sprintf("./config/%s.yaml", env)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		fail(fmt.Sprintf("config file not found at %s - every environment needs its yaml file", path))
	}
	if err != nil {
		fail(fmt.Sprintf("failed to read config file %s: %v", path, err))
	}

	data = []byte(os.ExpandEnv(string(data)))

	if err := yaml.Unmarshal(data, &config); err != nil {
		fail(fmt.Sprintf("failed to unmarshal %s config file: %v", env, err))
	}

	if err := defaults.Set(&config); err != nil {
		fail(fmt.Sprintf("failed to apply config defaults: %v", err))
	}

	validateConfig(&config, env)

	return config
}

func validateConfig(config any, env string) {
	v := validator.New(validator.WithRequiredStructEnabled())
	err := v.Struct(config)
	if err == nil {
		return
	}

	failed := make([]string, 0)
	if verrs, ok := err.(validator.ValidationErrors); ok { //nolint:errorlint // validator returns the slice directly
		for _, fe := range verrs {
			tag := fe.Tag()
			if fe.Param() != "" {
				tag += "=" + fe.Param()
			}
			failed = append(failed, fmt.Sprintf("%s: %s", fe.Namespace(), tag))
		}
	}

	if len(failed) > 0 {
		fail(fmt.Sprintf("invalid fields in %s config -> %s", env, strings.Join(failed, ", ")))
	}
	fail(fmt.Sprintf("failed to validate %s config: %v", env, err))
}

func fail(msg string) {
	slog.Error("[cfgloader]: " + msg)
	os.Exit(1)
}
