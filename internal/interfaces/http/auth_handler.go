package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/suite-pro/internal/application/auth"
	"github.com/tu-usuario/suite-pro/internal/application/dto"
	"github.com/tu-usuario/suite-pro/internal/application/forms"
	"github.com/tu-usuario/suite-pro/internal/application/navigator"
	"github.com/tu-usuario/suite-pro/internal/application/pos"
	"github.com/tu-usuario/suite-pro/internal/domain/entity"
)

// AuthHandler maneja login, logout, cambio de rol y sesión actual.
type AuthHandler struct {
	uc        *auth.AuthUseCase
	navigator *navigator.Service
	registry  *forms.Registry
	pos       *pos.Service
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, nav *navigator.Service, reg *forms.Registry, posSvc *pos.Service) *AuthHandler {
	return &AuthHandler{uc: uc, navigator: nav, registry: reg, pos: posSvc}
}

func userResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role, Avatar: u.Avatar}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if in.Email == "" || in.Password == "" {
		return status(c, fiber.StatusBadRequest, "VALIDATION", "email y password son requeridos")
	}
	user, token, err := h.uc.Login(in.Email, in.Password)
	if err != nil {
		return respondError(c, err)
	}
	h.navigator.SignIn(user.ID)
	return c.JSON(dto.LoginResponse{Token: token, User: userResponse(user)})
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Produce      json
// @Success      204
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if err := h.uc.Logout(userID); err != nil {
		return respondError(c, err)
	}
	h.navigator.SignOut(userID)
	h.registry.Drop(userID)
	h.pos.Drop(userID)
	return c.SendStatus(fiber.StatusNoContent)
}

// SwitchRole godoc
// @Summary      Cambiar el rol de la sesión activa
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SwitchRoleRequest  true  "role"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/switch-role [post]
func (h *AuthHandler) SwitchRole(c *fiber.Ctx) error {
	var in dto.SwitchRoleRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	user, token, err := h.uc.SwitchRole(GetUserID(c), in.Role)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.LoginResponse{Token: token, User: userResponse(user)})
}

// Me godoc
// @Summary      Usuario de la sesión activa
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.UserResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	// La identidad sale del token, no de un "usuario actual" global: con dos
	// tokens vigentes cada uno resuelve su propio registro.
	user, ok := h.uc.UserByID(GetUserID(c))
	if !ok {
		return status(c, fiber.StatusUnauthorized, "NOT_AUTHENTICATED", "no hay sesión activa")
	}
	return c.JSON(userResponse(user))
}
