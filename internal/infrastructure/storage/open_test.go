package storage_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/battery-supply-chain/internal/infrastructure/memory"
	"github.com/jhoicas/battery-supply-chain/internal/infrastructure/sqlite"
	"github.com/jhoicas/battery-supply-chain/internal/infrastructure/storage"
	"github.com/jhoicas/battery-supply-chain/pkg/config"
)

func TestOpen_Memory(t *testing.T) {
	kv, closeFn, err := storage.Open(context.Background(), &config.Config{Session: config.SessionConfig{Storage: config.StorageMemory}})
	require.NoError(t, err)
	defer closeFn()
	assert.IsType(t, &memory.KVStore{}, kv)
}

func TestOpen_SQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.db")
	kv, closeFn, err := storage.Open(context.Background(), &config.Config{Session: config.SessionConfig{Storage: config.StorageSQLite, SQLitePath: path}})
	require.NoError(t, err)
	defer closeFn()
	assert.IsType(t, &sqlite.KVStore{}, kv)

	require.NoError(t, kv.Set(context.Background(), "k", "v"))
	got, err := kv.Get(context.Background(), "k")
	require.NoError(t, err)
	assert.Equal(t, "v", got)
}

func TestOpen_Desconocido(t *testing.T) {
	_, closeFn, err := storage.Open(context.Background(), &config.Config{Session: config.SessionConfig{Storage: "redis"}})
	assert.Error(t, err)
	assert.NotNil(t, closeFn)
}
