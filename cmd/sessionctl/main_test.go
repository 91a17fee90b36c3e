package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/battery-supply-chain/internal/application/session"
	"github.com/jhoicas/battery-supply-chain/internal/domain/entity"
	"github.com/jhoicas/battery-supply-chain/internal/infrastructure/memory"
	"github.com/jhoicas/battery-supply-chain/internal/infrastructure/sampledata"
	"github.com/jhoicas/battery-supply-chain/pkg/logger"
)

func newStore(t *testing.T) *session.Store {
	t.Helper()
	s := session.NewStore(memory.NewKVStore(), sampledata.NewDirectory(),
		session.DemoPasswordVerifier("demo123"), session.Config{StorageKey: "k"}, logger.Nop())
	s.Restore(context.Background())
	return s
}

func TestRun_Login(t *testing.T) {
	store := newStore(t)

	assert.Equal(t, 0, run(context.Background(), store, []string{"login", "seller1", "demo123", "seller"}))
	require.NotNil(t, store.Current())
	assert.Equal(t, entity.RoleSeller, store.Current().Role)
}

func TestRun_LoginFallidoSaleConUno(t *testing.T) {
	store := newStore(t)

	assert.Equal(t, 1, run(context.Background(), store, []string{"login", "seller1", "bad", "seller"}))
	assert.Nil(t, store.Current())
}

func TestRun_ArgumentosInvalidos(t *testing.T) {
	store := newStore(t)

	assert.Equal(t, 2, run(context.Background(), store, []string{"login", "seller1"}))
	assert.Equal(t, 2, run(context.Background(), store, []string{"google", "admin"}))
	assert.Equal(t, 2, run(context.Background(), store, []string{"whoami"}))
}

func TestRun_GoogleYLogout(t *testing.T) {
	store := newStore(t)

	require.Equal(t, 0, run(context.Background(), store, []string{"google", "logistics"}))
	assert.Equal(t, "logistics@gmail.com", store.Current().Email)

	require.Equal(t, 0, run(context.Background(), store, []string{"logout"}))
	assert.Nil(t, store.Current())
}
