package entity

// User identidad emitida por el directorio demo. Inmutable una vez emitida;
// el formato JSON es el mismo que se persiste como valor de la sesión.
type User struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	Email          string `json:"email"`
	Role           Role   `json:"role"`
	Name           string `json:"name"`
	ProfilePicture string `json:"profilePicture"`
	Company        string `json:"company,omitempty"`
	Phone          string `json:"phone,omitempty"`
}

// WellFormed indica si el registro puede convertirse en sesión activa.
func (u User) WellFormed() bool {
	return u.ID != "" && u.Username != "" && u.Role.Valid()
}
