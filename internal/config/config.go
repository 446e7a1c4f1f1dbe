// Package config loads runtime settings from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Store backends.
const (
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

// Config holds the process settings.
type Config struct {
	Addr        string
	WebDir      string
	Store       string
	SQLitePath  string
	DatabaseURL string
	LogLevel    string
}

// Load reads settings from the environment, falling back to the given .env
// files (".env" when none are named) and then to defaults. Variables already
// set in the environment win over file values. Missing files are ignored.
func Load(files ...string) (Config, error) {
	fileEnv, err := godotenv.Read(files...)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	get := func(key, fallback string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		if v := fileEnv[key]; v != "" {
			return v
		}
		return fallback
	}

	c := Config{
		Addr:        get("ADDR", ":8080"),
		WebDir:      get("WEB_DIR", "web"),
		Store:       get("STORE", StoreSQLite),
		SQLitePath:  get("SQLITE_PATH", "fitfuel.db"),
		DatabaseURL: get("DATABASE_URL", ""),
		LogLevel:    get("LOG_LEVEL", "silent"),
	}

	switch c.Store {
	case StoreSQLite, StoreMemory:
	case StorePostgres:
		if c.DatabaseURL == "" {
			return Config{}, errors.New("config: DATABASE_URL is required when STORE=postgres")
		}
	default:
		return Config{}, fmt.Errorf("config: unknown STORE %q", c.Store)
	}
	return c, nil
}
