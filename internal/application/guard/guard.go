// Package guard decide, para cada pantalla de un rol, si se renderiza, se espera
// a que termine la restauración de la sesión o se reemplaza por el login.
package guard

import (
	"github.com/jhoicas/battery-supply-chain/internal/application/session"
	"github.com/jhoicas/battery-supply-chain/internal/domain/entity"
	"github.com/jhoicas/battery-supply-chain/pkg/metrics"
)

// Decision resultado del guard.
type Decision string

const (
	// DecisionPending la sesión aún se está restaurando: placeholder, sin redirigir.
	DecisionPending Decision = "pending"
	// DecisionRedirect sin sesión o con rol distinto: reemplazar por el login.
	DecisionRedirect Decision = "redirect"
	// DecisionRender la sesión coincide con el rol requerido.
	DecisionRender Decision = "render"
)

// Navigator abstracción del router que necesita el guard.
// Replace sustituye la pantalla actual: la navegación hacia atrás no vuelve a ella.
type Navigator interface {
	ReplaceWithLogin() error
	ReplaceWithHome(role entity.Role) error
	CurrentPath() string
}

// Decide evalúa la sesión contra el rol que exige la pantalla.
func Decide(snap session.Snapshot, required entity.Role) Decision {
	if snap.Loading() {
		return DecisionPending
	}
	if !snap.Authenticated() || snap.User.Role != required {
		return DecisionRedirect
	}
	return DecisionRender
}

// Enforce aplica Decide y, si corresponde, reemplaza una sola vez la pantalla por el login.
// Una discrepancia de rol no es un error: es una redirección silenciosa.
func Enforce(nav Navigator, snap session.Snapshot, required entity.Role) (Decision, error) {
	d := Decide(snap, required)
	metrics.GuardDecisions.WithLabelValues(required.String(), string(d)).Inc()
	if d == DecisionRedirect {
		return d, nav.ReplaceWithLogin()
	}
	return d, nil
}

// EnforceLogin comportamiento de la pantalla de login: con sesión activa se reemplaza
// por la home del rol; sin sesión se renderiza el formulario.
func EnforceLogin(nav Navigator, snap session.Snapshot) (Decision, error) {
	switch {
	case snap.Loading():
		return DecisionPending, nil
	case snap.Authenticated():
		return DecisionRedirect, nav.ReplaceWithHome(snap.User.Role)
	default:
		return DecisionRender, nil
	}
}
