package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/battery-supply-chain/internal/application/dto"
	"github.com/jhoicas/battery-supply-chain/internal/application/guard"
	"github.com/jhoicas/battery-supply-chain/internal/application/session"
	"github.com/jhoicas/battery-supply-chain/internal/domain/entity"
	"github.com/jhoicas/battery-supply-chain/pkg/logger"
)

// LocalSessionUser key de Locals con el usuario de la sesión (entity.User).
const LocalSessionUser = "session_user"

// snapshotter es lo único que el guard necesita del almacén de sesión.
type snapshotter interface {
	Snapshot() session.Snapshot
}

// RequireSessionRole protege las pantallas de un rol.
//
// Comportamiento:
//   - 202 Accepted {"loading":true} → la sesión aún se restaura; no se redirige.
//   - 302 Found + X-Navigation: replace → sin sesión o con otro rol; va al login sin cuerpo de error.
//   - Si coincide, deja el usuario en Locals y continúa.
//
// Los grupos de fiber comparan por prefijo de texto: rutas como /slrx no son del rol y siguen sin guard.
func RequireSessionRole(store snapshotter, required entity.Role, log *logger.Logger) fiber.Handler {
	home := guard.HomeRoute(required)
	return func(c *fiber.Ctx) error {
		if p := c.Path(); p != home && !strings.HasPrefix(p, home+"/") {
			return c.Next()
		}
		snap := store.Snapshot()
		decision, err := guard.Enforce(NewNavigator(c), snap, required)
		log.Debug().
			Str("path", c.Path()).
			Str("required_role", required.String()).
			Str("decision", string(decision)).
			Msg("guard")

		switch decision {
		case guard.DecisionPending:
			return c.Status(fiber.StatusAccepted).JSON(dto.PlaceholderResponse{Loading: true})
		case guard.DecisionRedirect:
			return err
		}

		c.Locals(LocalSessionUser, *snap.User)
		return c.Next()
	}
}

// SessionUser devuelve el usuario de la sesión (después de RequireSessionRole).
func SessionUser(c *fiber.Ctx) entity.User {
	u, _ := c.Locals(LocalSessionUser).(entity.User)
	return u
}
