// Package config reads process configuration from the environment.
//
// A .env file in the working directory is honored when present (the
// record store URL and key are the kind of thing people keep there).
// Missing values are not fatal at startup: an unconfigured record store
// surfaces as call failures later, never as a crash.
package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// SupabaseURL is the record store's base URL (project REST endpoint).
	SupabaseURL string `envconfig:"SUPABASE_URL"`
	// SupabaseAnonKey is the public API key sent with every call.
	SupabaseAnonKey string `envconfig:"SUPABASE_ANON_KEY"`
	// LogFile receives zerolog output while the TUI owns the terminal.
	// Empty means logs are discarded in TUI mode.
	LogFile string `envconfig:"LOG"`
}

// Load reads MADDYVERSE_* variables, after a best-effort .env load.
func Load() (Config, error) {
	// Ignore the error: a missing .env is the normal case.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("maddyverse", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
