package repository

import "context"

// KeyValueStore puerto del almacenamiento local clave-valor donde se persiste la sesión.
// Get devuelve domain.ErrNotFound si la clave no existe.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
