package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// StoreKind selects the progress persistence backend.
type StoreKind string

const (
	StoreSQLite StoreKind = "sqlite"
	StoreMemory StoreKind = "memory"
)

// Config holds runtime configuration.
type Config struct {
	DBPath              string
	RoadmapDir          string
	Store               StoreKind
	LogUseCases         bool
	LogFormat           string
	ForceNonInteractive bool
}

// Getenv abstracts os.Getenv so tests can inject an environment.
type Getenv func(string) string

// Load reads configuration from the process environment.
func Load() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("finding home directory: %w", err)
	}
	return FromEnv(os.Getenv, home), nil
}

// Default returns the configuration used when no variables are set.
func Default(home string) Config {
	base := filepath.Join(home, ".pathfinder")
	return Config{
		DBPath:     filepath.Join(base, "progress.db"),
		RoadmapDir: filepath.Join(base, "roadmaps"),
		Store:      StoreSQLite,
		LogFormat:  "text",
	}
}

// FromEnv applies PATHFINDER_* variables over the defaults. Unparseable
// values are ignored and the default kept.
func FromEnv(getenv Getenv, home string) Config {
	cfg := Default(home)

	if v := getenv("PATHFINDER_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := getenv("PATHFINDER_ROADMAPS"); v != "" {
		cfg.RoadmapDir = v
	}
	if v := strings.ToLower(strings.TrimSpace(getenv("PATHFINDER_STORE"))); v != "" {
		switch StoreKind(v) {
		case StoreSQLite, StoreMemory:
			cfg.Store = StoreKind(v)
		}
	}
	if v := getenv("PATHFINDER_LOG_USECASES"); v != "" {
		cfg.LogUseCases, _ = strconv.ParseBool(v)
	}
	if v := strings.ToLower(strings.TrimSpace(getenv("PATHFINDER_LOG_FORMAT"))); v == "text" || v == "json" {
		cfg.LogFormat = v
	}
	if v := getenv("PATHFINDER_NO_TUI"); v != "" {
		cfg.ForceNonInteractive, _ = strconv.ParseBool(v)
	}

	return cfg
}
