package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/battery-supply-chain/internal/domain"
	"github.com/jhoicas/battery-supply-chain/internal/infrastructure/sqlite"
)

func openTemp(t *testing.T, path string) *sqlite.KVStore {
	t.Helper()
	s, err := sqlite.Open(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestKVStore_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	s := openTemp(t, filepath.Join(t.TempDir(), "data", "session.db"))

	_, err := s.Get(ctx, "k")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, s.Set(ctx, "k", `{"id":"1"}`))
	v, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `{"id":"1"}`, v)

	require.NoError(t, s.Set(ctx, "k", "reemplazo"))
	v, err = s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "reemplazo", v)

	require.NoError(t, s.Delete(ctx, "k"))
	require.NoError(t, s.Delete(ctx, "k"), "borrar una clave inexistente no es error")
	_, err = s.Get(ctx, "k")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestKVStore_SobreviveReapertura(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.db")

	first, err := sqlite.Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "@battery_supply_chain:auth", "valor"))
	require.NoError(t, first.Close())

	second := openTemp(t, path)
	v, err := second.Get(ctx, "@battery_supply_chain:auth")
	require.NoError(t, err)
	assert.Equal(t, "valor", v)
}
