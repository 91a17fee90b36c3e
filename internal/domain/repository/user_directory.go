package repository

import "github.com/jhoicas/battery-supply-chain/internal/domain/entity"

// UserDirectory puerto de solo lectura sobre el directorio fijo de usuarios demo.
// Los métodos de búsqueda devuelven (nil, false) si no hay coincidencia.
type UserDirectory interface {
	List() []entity.User
	FindByUsernameAndRole(username string, role entity.Role) (*entity.User, bool)
	FirstByRole(role entity.Role) (*entity.User, bool)
}
