// Package config loads service configuration from PETSTORE_-prefixed
// environment variables.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "PETSTORE_"

// ServiceConfig holds all configuration for the petstore service.
type ServiceConfig struct {
	Port         string
	AppEnv       string
	SeedData     bool
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// Load reads configuration from environment variables, falling back to
// development defaults.
func Load() (*ServiceConfig, error) {
	k := koanf.New(".")
	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			return strings.ToLower(strings.TrimPrefix(key, envPrefix)), value
		},
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	cfg := &ServiceConfig{
		Port:         "8080",
		AppEnv:       "development",
		SeedData:     true,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	if k.Exists("port") {
		cfg.Port = k.String("port")
	}
	if k.Exists("app_env") {
		cfg.AppEnv = k.String("app_env")
	}
	if k.Exists("seed_data") {
		cfg.SeedData = k.Bool("seed_data")
	}
	if k.Exists("read_timeout") {
		cfg.ReadTimeout = k.Duration("read_timeout")
	}
	if k.Exists("write_timeout") {
		cfg.WriteTimeout = k.Duration("write_timeout")
	}
	if k.Exists("idle_timeout") {
		cfg.IdleTimeout = k.Duration("idle_timeout")
	}
	return cfg, nil
}

// Addr returns the listen address for the HTTP server.
func (c *ServiceConfig) Addr() string {
	return ":" + c.Port
}
