package main

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/dinkwell/dinkwell/internal/assets"
	"github.com/dinkwell/dinkwell/internal/coaching"
	"github.com/dinkwell/dinkwell/internal/config"
	"github.com/dinkwell/dinkwell/internal/database"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}

func openDatabase(cfg *config.Config) (*sqlx.DB, error) {
	db, err := database.Open(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("database.Open() > %w", err)
	}
	return db, nil
}

func loadCatalog(cfg *config.Config) (*coaching.Catalog, error) {
	data, err := assets.ReadCatalog(cfg.Catalog.File)
	if err != nil {
		return nil, fmt.Errorf("assets.ReadCatalog() > %w", err)
	}
	return coaching.ParseCatalog(data)
}

// newTracker builds a tracker over the locally stored progress file.
func newTracker(cfg *config.Config) (*coaching.Tracker, error) {
	catalog, err := loadCatalog(cfg)
	if err != nil {
		return nil, err
	}
	store := coaching.NewFileStore(cfg.Progress.File)
	return coaching.NewTracker(catalog, store, nil), nil
}
