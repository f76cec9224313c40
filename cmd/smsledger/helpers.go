package main

import (
	"context"
	"fmt"

	"github.com/spf13/viper"

	"github.com/pennywiseai/smsledger/internal/bank"
	"github.com/pennywiseai/smsledger/internal/config"
	"github.com/pennywiseai/smsledger/internal/detect"
	"github.com/pennywiseai/smsledger/internal/engine"
	"github.com/pennywiseai/smsledger/internal/service"
	"github.com/pennywiseai/smsledger/internal/storage"
)

// initStorage initializes the storage service with proper path expansion.
func initStorage(ctx context.Context) (service.Storage, error) {
	// Get database path from config
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = "$HOME/.local/share/smsledger/smsledger.db"
	}

	// Expand tilde and environment variables
	dbPath = config.ExpandPath(dbPath)

	// Initialize storage
	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	// Run migrations
	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// initEngine wires storage, the parser registry, and the detector into a
// scan engine using the configured tunables.
func initEngine(ctx context.Context, engineCfg engine.Config) (*engine.ScanEngine, service.Storage, error) {
	store, err := initStorage(ctx)
	if err != nil {
		return nil, nil, err
	}

	detector := detect.New(config.LoadDetectConfig())
	e := engine.NewWithConfig(store, bank.NewRegistry(), detector, engineCfg)
	return e, store, nil
}
