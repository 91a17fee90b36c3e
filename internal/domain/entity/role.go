package entity

import (
	"fmt"
	"strings"

	"github.com/jhoicas/battery-supply-chain/internal/domain"
)

// Role categoría cerrada que decide a qué tablero puede acceder una sesión.
type Role string

// Roles válidos. Agregar un rol obliga a completar los switch exhaustivos
// de guard.HomeRoute y guard.SidebarItems.
const (
	RoleSeller       Role = "seller"
	RoleManufacturer Role = "manufacturer"
	RoleLogistics    Role = "logistics"
)

// Roles devuelve los roles en el orden en que los muestra la pantalla de login.
func Roles() []Role {
	return []Role{RoleSeller, RoleManufacturer, RoleLogistics}
}

// Valid indica si r es uno de los tres roles cerrados.
func (r Role) Valid() bool {
	switch r {
	case RoleSeller, RoleManufacturer, RoleLogistics:
		return true
	}
	return false
}

// Label etiqueta legible del rol ("Seller", "Manufacturer", "Logistics").
func (r Role) Label() string {
	switch r {
	case RoleSeller:
		return "Seller"
	case RoleManufacturer:
		return "Manufacturer"
	case RoleLogistics:
		return "Logistics"
	}
	return string(r)
}

func (r Role) String() string { return string(r) }

// ParseRole convierte texto libre en Role. Devuelve domain.ErrUnknownRole si no es uno de los tres.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownRole, s)
	}
	return r, nil
}
