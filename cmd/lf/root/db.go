package root

import (
	"context"
	"database/sql"

	"levelforge/internal/config"
	"levelforge/internal/engine"
	"levelforge/internal/storage"
)

func resolveDBPath() (string, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return "", err
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, nil
	}
	return storage.DefaultDBPath()
}

func openDB(ctx context.Context) (*sql.DB, func(), error) {
	path, err := resolveDBPath()
	if err != nil {
		return nil, nil, err
	}
	db, err := storage.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}
	return db, cleanup, nil
}

func openService(ctx context.Context) (*engine.Service, func(), error) {
	db, cleanup, err := openDB(ctx)
	if err != nil {
		return nil, nil, err
	}
	return engine.NewService(db), cleanup, nil
}
