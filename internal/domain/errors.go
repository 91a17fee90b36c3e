package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrUnknownRole        = errors.New("rol desconocido")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrMalformedSession   = errors.New("sesión persistida malformada")
	ErrStorageUnavailable = errors.New("almacenamiento no disponible")
	ErrExportUnavailable  = errors.New("exportación no disponible")
)
