// Package usecase contiene los casos de uso de las pantallas comunes a todos los roles.
package usecase

import (
	"github.com/jhoicas/battery-supply-chain/internal/application/dto"
	"github.com/jhoicas/battery-supply-chain/internal/domain/entity"
)

var roleIcons = map[entity.Role]string{
	entity.RoleSeller:       "storefront",
	entity.RoleManufacturer: "construct",
	entity.RoleLogistics:    "car",
}

// LoginScreen contenido estático de la pantalla de login: título y selector de rol.
func LoginScreen() *dto.LoginScreenDTO {
	roles := make([]dto.RoleOption, 0, len(entity.Roles()))
	for _, r := range entity.Roles() {
		roles = append(roles, dto.RoleOption{Value: r.String(), Label: r.Label(), Icon: roleIcons[r]})
	}
	return &dto.LoginScreenDTO{
		Title:    "Battery Supply Chain",
		Subtitle: "Modern Platform for Manufacturers, Sellers & Logistics",
		Roles:    roles,
	}
}
