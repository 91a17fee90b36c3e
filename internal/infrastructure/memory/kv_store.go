// Package memory implementa el almacenamiento clave-valor en memoria del proceso.
// La sesión no sobrevive a un reinicio; se usa en tests y en modo efímero.
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/battery-supply-chain/internal/domain"
	"github.com/jhoicas/battery-supply-chain/internal/domain/repository"
)

var _ repository.KeyValueStore = (*KVStore)(nil)

// KVStore mapa protegido por mutex.
type KVStore struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewKVStore construye un almacén vacío.
func NewKVStore() *KVStore {
	return &KVStore{data: make(map[string]string)}
}

// Get devuelve domain.ErrNotFound si la clave no existe.
func (s *KVStore) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	if !ok {
		return "", domain.ErrNotFound
	}
	return v, nil
}

// Set inserta o reemplaza.
func (s *KVStore) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

// Delete elimina la clave; no falla si no existe.
func (s *KVStore) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}
