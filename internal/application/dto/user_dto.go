package dto

import "github.com/jhoicas/battery-supply-chain/internal/domain/entity"

// LoginRequest entrada de login con credenciales demo.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=seller manufacturer logistics"`
}

// GoogleLoginRequest entrada del login federado simulado.
type GoogleLoginRequest struct {
	Role string `json:"role" validate:"required,oneof=seller manufacturer logistics"`
}

// UserResponse salida de un usuario.
type UserResponse struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	Email          string `json:"email"`
	Role           string `json:"role"`
	Name           string `json:"name"`
	ProfilePicture string `json:"profile_picture"`
	Company        string `json:"company,omitempty"`
	Phone          string `json:"phone,omitempty"`
}

// SessionResponse estado de la sesión; Home es la ruta de inicio del rol si hay usuario.
type SessionResponse struct {
	Status string        `json:"status"`
	User   *UserResponse `json:"user,omitempty"`
	Home   string        `json:"home,omitempty"`
}

// RoleOption opción del selector de rol de la pantalla de login.
type RoleOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

// LoginScreenDTO contenido de la pantalla de login.
type LoginScreenDTO struct {
	Title    string       `json:"title"`
	Subtitle string       `json:"subtitle"`
	Roles    []RoleOption `json:"roles"`
}

// ProfileItem fila etiqueta/valor del perfil.
type ProfileItem struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ProfileSection grupo de filas del perfil.
type ProfileSection struct {
	Title string        `json:"title"`
	Items []ProfileItem `json:"items"`
}

// ProfileDTO pantalla de perfil.
type ProfileDTO struct {
	User      UserResponse     `json:"user"`
	RoleBadge string           `json:"role_badge"`
	Sections  []ProfileSection `json:"sections"`
	Settings  []string         `json:"settings"`
	Back      string           `json:"back"`
	Version   string           `json:"version"`
}

// ToUserResponse convierte la entidad en su salida HTTP.
func ToUserResponse(u *entity.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:             u.ID,
		Username:       u.Username,
		Email:          u.Email,
		Role:           u.Role.String(),
		Name:           u.Name,
		ProfilePicture: u.ProfilePicture,
		Company:        u.Company,
		Phone:          u.Phone,
	}
}
