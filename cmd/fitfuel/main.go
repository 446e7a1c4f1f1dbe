package main

import (
	"errors"
	"log"
	"net/http"

	adapthttp "fitfuel/internal/adapter/http"
	"fitfuel/internal/adapter/memory"
	"fitfuel/internal/adapter/postgres"
	"fitfuel/internal/adapter/sqlite"
	"fitfuel/internal/app"
	"fitfuel/internal/config"
	"fitfuel/internal/domain"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	store, err := openStore(cfg)
	if err != nil {
		log.Fatalf("store open: %v", err)
	}
	defer func() { _ = store.Close() }()

	h := adapthttp.New(app.NewServices(store), cfg.WebDir).Handler()
	log.Printf("listening on %s (store=%s)", cfg.Addr, cfg.Store)
	if err := http.ListenAndServe(cfg.Addr, h); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

func openStore(cfg config.Config) (domain.Store, error) {
	switch cfg.Store {
	case config.StorePostgres:
		return postgres.Open(cfg.DatabaseURL)
	case config.StoreMemory:
		return memory.New(), nil
	default:
		return sqlite.Open(cfg.SQLitePath, sqlite.LogLevel(cfg.LogLevel))
	}
}
