package session

import "github.com/jhoicas/battery-supply-chain/internal/domain/entity"

// CredentialVerifier decide si password es válida para la entrada del directorio.
//
// No es una frontera de seguridad: si la aplicación se conecta a un backend real,
// esta verificación debe sustituirse por autenticación del lado del servidor.
type CredentialVerifier func(entry entity.User, password string) bool

// DemoPasswordVerifier acepta una única contraseña compartida por todos los usuarios demo.
func DemoPasswordVerifier(shared string) CredentialVerifier {
	return func(_ entity.User, password string) bool {
		return shared != "" && password == shared
	}
}
