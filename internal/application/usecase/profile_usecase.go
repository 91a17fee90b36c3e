package usecase

import (
	"github.com/jhoicas/battery-supply-chain/internal/application/dto"
	"github.com/jhoicas/battery-supply-chain/internal/application/guard"
	"github.com/jhoicas/battery-supply-chain/internal/domain/entity"
)

// AppVersion versión mostrada al pie del perfil.
const AppVersion = "1.0.0"

const notAvailable = "N/A"

var profileSettings = []string{"Notifications", "Security", "Preferences", "Help & Support"}

// ProfileUseCase arma la pantalla de perfil del usuario de la sesión.
type ProfileUseCase struct{}

// NewProfileUseCase construye el caso de uso.
func NewProfileUseCase() *ProfileUseCase { return &ProfileUseCase{} }

// Get perfil del usuario: datos de cuenta, empresa, opciones y ruta de regreso a su tablero.
func (uc *ProfileUseCase) Get(user entity.User) *dto.ProfileDTO {
	return &dto.ProfileDTO{
		User:      *dto.ToUserResponse(&user),
		RoleBadge: user.Role.Label(),
		Sections: []dto.ProfileSection{
			{
				Title: "Account Information",
				Items: []dto.ProfileItem{
					{Label: "Full Name", Value: user.Name},
					{Label: "Email", Value: user.Email},
					{Label: "Username", Value: user.Username},
					{Label: "Role", Value: user.Role.Label()},
				},
			},
			{
				Title: "Company Details",
				Items: []dto.ProfileItem{
					{Label: "Company", Value: orNA(user.Company)},
					{Label: "Phone", Value: orNA(user.Phone)},
				},
			},
		},
		Settings: append([]string(nil), profileSettings...),
		Back:     guard.HomeRoute(user.Role),
		Version:  AppVersion,
	}
}

func orNA(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}
