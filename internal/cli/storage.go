package cli

import (
	"context"
	"fmt"

	"todo/internal/config"
	"todo/internal/logger"
	"todo/internal/storage"
)

// OpenStorage is the default StorageFactory: it opens the backend named by
// storage.backend.
func OpenStorage(ctx context.Context, cfg *config.Config) (storage.KV, error) {
	log := cfg.Logger
	if log == nil {
		log = logger.Nop()
	}

	switch cfg.Storage.Backend {
	case config.BackendMemory:
		log.Debugw("using in-memory storage; tasks will not survive this process")
		return storage.NewMemory(), nil
	case "", config.BackendBolt:
		if cfg.Storage.Path == "" {
			if err := cfg.EnsureDir(); err != nil {
				return nil, fmt.Errorf("failed to create config dir: %w", err)
			}
		}
		kv, err := storage.OpenBolt(cfg.DatabasePath())
		if err != nil {
			return nil, err
		}
		log.Debugw("opened database", "path", kv.Path())
		return kv, nil
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.Storage.Backend)
	}
}
