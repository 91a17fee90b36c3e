// Package sampledata contiene los datos estáticos en memoria de la plataforma:
// el directorio de usuarios demo y el catálogo de baterías, pedidos y envíos.
package sampledata

import (
	"github.com/jhoicas/battery-supply-chain/internal/domain/entity"
	"github.com/jhoicas/battery-supply-chain/internal/domain/repository"
)

var _ repository.UserDirectory = (*Directory)(nil)

var demoUsers = []entity.User{
	{
		ID:             "1",
		Username:       "seller1",
		Email:          "seller@battery.com",
		Role:           entity.RoleSeller,
		Name:           "John Smith",
		ProfilePicture: "https://api.dicebear.com/7.x/avataaars/svg?seed=seller1",
		Company:        "Battery Retailers Inc.",
		Phone:          "+1 (555) 123-4567",
	},
	{
		ID:             "2",
		Username:       "manufacturer1",
		Email:          "manufacturer@battery.com",
		Role:           entity.RoleManufacturer,
		Name:           "Sarah Johnson",
		ProfilePicture: "https://api.dicebear.com/7.x/avataaars/svg?seed=manufacturer1",
		Company:        "PowerCell Manufacturing",
		Phone:          "+1 (555) 234-5678",
	},
	{
		ID:             "3",
		Username:       "logistics1",
		Email:          "logistics@battery.com",
		Role:           entity.RoleLogistics,
		Name:           "Michael Chen",
		ProfilePicture: "https://api.dicebear.com/7.x/avataaars/svg?seed=logistics1",
		Company:        "FastShip Logistics",
		Phone:          "+1 (555) 345-6789",
	},
}

// Directory directorio fijo de usuarios demo (uno por rol). No admite altas ni cambios.
type Directory struct {
	users []entity.User
}

// NewDirectory construye el directorio con los usuarios demo.
func NewDirectory() *Directory {
	return NewDirectoryWith(demoUsers)
}

// NewDirectoryWith construye un directorio con otra lista (tests).
func NewDirectoryWith(users []entity.User) *Directory {
	cp := make([]entity.User, len(users))
	copy(cp, users)
	return &Directory{users: cp}
}

// List devuelve una copia de todos los usuarios.
func (d *Directory) List() []entity.User {
	out := make([]entity.User, len(d.users))
	copy(out, d.users)
	return out
}

// FindByUsernameAndRole busca la entrada cuyo username y rol coinciden.
func (d *Directory) FindByUsernameAndRole(username string, role entity.Role) (*entity.User, bool) {
	for _, u := range d.users {
		if u.Username == username && u.Role == role {
			found := u
			return &found, true
		}
	}
	return nil, false
}

// FirstByRole devuelve el primer usuario del rol indicado.
func (d *Directory) FirstByRole(role entity.Role) (*entity.User, bool) {
	for _, u := range d.users {
		if u.Role == role {
			found := u
			return &found, true
		}
	}
	return nil, false
}
