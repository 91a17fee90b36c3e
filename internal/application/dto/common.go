package dto

// ErrorResponse cuerpo de error HTTP. Details solo en errores de validación.
type ErrorResponse struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Details []FieldError `json:"details,omitempty"`
}

// FieldError campo que no pasó la validación y la regla incumplida.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// NavItem entrada de navegación del sidebar de un rol.
type NavItem struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Icon        string `json:"icon"`
	Path        string `json:"path"`
	Description string `json:"description"`
	Active      bool   `json:"active"`
}

// ScreenResponse sobre común de las pantallas de rol. Sidebar se omite en el perfil.
type ScreenResponse struct {
	Path    string      `json:"path"`
	Title   string      `json:"title"`
	Sidebar []NavItem   `json:"sidebar,omitempty"`
	Data    interface{} `json:"data"`
}

// PlaceholderResponse respuesta mientras la sesión se restaura.
type PlaceholderResponse struct {
	Loading bool `json:"loading"`
}
