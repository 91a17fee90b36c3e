package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/battery-supply-chain/internal/application/guard"
	"github.com/jhoicas/battery-supply-chain/internal/domain/entity"
)

// HeaderNavigation indica al cliente cómo aplicar la redirección ("replace": sin entrada en el historial).
const HeaderNavigation = "X-Navigation"

var _ guard.Navigator = (*fiberNavigator)(nil)

// fiberNavigator traduce las navegaciones del guard a respuestas 302 con X-Navigation: replace.
type fiberNavigator struct {
	c *fiber.Ctx
}

// NewNavigator construye el Navigator de la petición actual.
func NewNavigator(c *fiber.Ctx) guard.Navigator {
	return &fiberNavigator{c: c}
}

func (n *fiberNavigator) ReplaceWithLogin() error {
	return n.replace(guard.LoginRoute)
}

func (n *fiberNavigator) ReplaceWithHome(role entity.Role) error {
	return n.replace(guard.HomeRoute(role))
}

func (n *fiberNavigator) CurrentPath() string {
	return normalizePath(n.c.Path())
}

func (n *fiberNavigator) replace(to string) error {
	n.c.Set(HeaderNavigation, "replace")
	return n.c.Redirect(to, fiber.StatusFound)
}

// normalizePath quita la barra final ("/slr/" -> "/slr") salvo en la raíz.
func normalizePath(p string) string {
	for len(p) > 1 && p[len(p)-1] == '/' {
		p = p[:len(p)-1]
	}
	return p
}
