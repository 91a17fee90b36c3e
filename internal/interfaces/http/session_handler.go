package http

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/battery-supply-chain/internal/application/dto"
	"github.com/jhoicas/battery-supply-chain/internal/application/guard"
	"github.com/jhoicas/battery-supply-chain/internal/application/session"
	"github.com/jhoicas/battery-supply-chain/internal/application/usecase"
	"github.com/jhoicas/battery-supply-chain/internal/domain/entity"
)

// SessionHandler maneja la pantalla de login y la API de sesión.
type SessionHandler struct {
	store    *session.Store
	validate *validator.Validate
}

// NewSessionHandler construye el handler de sesión.
func NewSessionHandler(store *session.Store, validate *validator.Validate) *SessionHandler {
	return &SessionHandler{store: store, validate: validate}
}

// LoginScreen godoc
// @Summary      Pantalla de login
// @Tags         session
// @Produce      json
// @Success      200  {object}  dto.LoginScreenDTO
// @Success      202  {object}  dto.PlaceholderResponse
// @Success      302  "sesión activa: reemplaza por la home del rol"
// @Router       / [get]
func (h *SessionHandler) LoginScreen(c *fiber.Ctx) error {
	decision, err := guard.EnforceLogin(NewNavigator(c), h.store.Snapshot())
	switch decision {
	case guard.DecisionPending:
		return c.Status(fiber.StatusAccepted).JSON(dto.PlaceholderResponse{Loading: true})
	case guard.DecisionRedirect:
		return err
	}
	return c.JSON(usecase.LoginScreen())
}

// Get godoc
// @Summary      Estado de la sesión
// @Tags         session
// @Produce      json
// @Success      200  {object}  dto.SessionResponse
// @Router       /api/session [get]
func (h *SessionHandler) Get(c *fiber.Ctx) error {
	return c.JSON(toSessionResponse(h.store.Snapshot()))
}

// Login godoc
// @Summary      Iniciar sesión con usuario, contraseña y rol
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "username, password, role"
// @Success      200   {object}  dto.SessionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/session/login [post]
func (h *SessionHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.validate.Struct(in); err != nil {
		return validationError(c, err)
	}
	role, err := entity.ParseRole(in.Role)
	if err != nil {
		return validationError(c, err)
	}
	if !h.store.Login(c.UserContext(), in.Username, in.Password, role) {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_CREDENTIALS", Message: "usuario, contraseña o rol incorrectos"})
	}
	return c.JSON(toSessionResponse(h.store.Snapshot()))
}

// Google godoc
// @Summary      Login federado simulado (primer usuario del rol)
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body  dto.GoogleLoginRequest  true  "role"
// @Success      200   {object}  dto.SessionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/session/google [post]
func (h *SessionHandler) Google(c *fiber.Ctx) error {
	var in dto.GoogleLoginRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.validate.Struct(in); err != nil {
		return validationError(c, err)
	}
	role, err := entity.ParseRole(in.Role)
	if err != nil {
		return validationError(c, err)
	}
	if !h.store.LoginWithGoogle(c.UserContext(), role) {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "GOOGLE_SIGNIN_FAILED", Message: "no hay cuenta disponible para el rol"})
	}
	return c.JSON(toSessionResponse(h.store.Snapshot()))
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         session
// @Produce      json
// @Success      200  {object}  dto.SessionResponse
// @Router       /api/session/logout [post]
func (h *SessionHandler) Logout(c *fiber.Ctx) error {
	h.store.Logout(c.UserContext())
	return c.JSON(toSessionResponse(h.store.Snapshot()))
}

// toSessionResponse: Home es la ruta a la que el cliente debe ir según el estado.
func toSessionResponse(snap session.Snapshot) dto.SessionResponse {
	out := dto.SessionResponse{Status: string(snap.Status)}
	switch {
	case snap.Authenticated():
		out.User = dto.ToUserResponse(snap.User)
		out.Home = guard.HomeRoute(snap.User.Role)
	case !snap.Loading():
		out.Home = guard.LoginRoute
	}
	return out
}
