// Package backend selects and constructs the durable store from
// configuration.
package backend

import (
	"fmt"

	"trackerd/internal/config"
	"trackerd/internal/store"
	"trackerd/internal/store/csvfile"
	"trackerd/internal/store/memory"
	"trackerd/internal/storage"
)

// Open builds the store named by cfg.DataBackend. The caller owns the
// returned store and must Close it.
func Open(cfg *config.Config) (store.Store, error) {
	switch cfg.DataBackend {
	case "csv":
		s, err := csvfile.New(cfg.CSVPath)
		if err != nil {
			return nil, fmt.Errorf("open csv store: %w", err)
		}
		return s, nil
	case "sqlite":
		s, err := storage.NewSQLiteRepository(cfg.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}
		return s, nil
	case "memory":
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("unknown data backend %q", cfg.DataBackend)
	}
}
