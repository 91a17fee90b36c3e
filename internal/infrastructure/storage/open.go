// Package storage elige el backend del almacenamiento de sesión según la configuración.
package storage

import (
	"context"
	"fmt"

	"github.com/jhoicas/battery-supply-chain/internal/domain/repository"
	"github.com/jhoicas/battery-supply-chain/internal/infrastructure/memory"
	"github.com/jhoicas/battery-supply-chain/internal/infrastructure/postgres"
	"github.com/jhoicas/battery-supply-chain/internal/infrastructure/sqlite"
	"github.com/jhoicas/battery-supply-chain/pkg/config"
)

// Open abre el almacén clave-valor configurado. La función devuelta libera sus recursos y nunca es nil.
func Open(ctx context.Context, cfg *config.Config) (repository.KeyValueStore, func(), error) {
	switch cfg.Session.Storage {
	case config.StorageMemory:
		return memory.NewKVStore(), func() {}, nil

	case config.StorageSQLite:
		s, err := sqlite.Open(ctx, cfg.Session.SQLitePath)
		if err != nil {
			return nil, func() {}, fmt.Errorf("storage: sqlite: %w", err)
		}
		return s, func() { _ = s.Close() }, nil

	case config.StoragePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, func() {}, fmt.Errorf("storage: postgres: %w", err)
		}
		s, err := postgres.NewKVStore(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, func() {}, fmt.Errorf("storage: postgres: %w", err)
		}
		return s, pool.Close, nil
	}
	return nil, func() {}, fmt.Errorf("storage: backend desconocido %q", cfg.Session.Storage)
}
