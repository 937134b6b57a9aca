package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/suite-pro/internal/application/catalog"
	"github.com/tu-usuario/suite-pro/internal/application/dto"
	"github.com/tu-usuario/suite-pro/internal/application/navigator"
)

// NavigatorHandler expone la máquina de vistas y el catálogo de módulos.
type NavigatorHandler struct {
	nav     *navigator.Service
	catalog *catalog.Catalog
}

// NewNavigatorHandler construye el handler del navegador.
func NewNavigatorHandler(nav *navigator.Service, cat *catalog.Catalog) *NavigatorHandler {
	return &NavigatorHandler{nav: nav, catalog: cat}
}

// Modules godoc
// @Summary      Módulos visibles para el rol de la sesión
// @Tags         navigator
// @Produce      json
// @Success      200  {array}  entity.Module
// @Router       /api/modules [get]
func (h *NavigatorHandler) Modules(c *fiber.Ctx) error {
	return c.JSON(h.catalog.ModulesForRole(GetRole(c)))
}

// State godoc
// @Summary      Estado de navegación actual
// @Tags         navigator
// @Produce      json
// @Success      200  {object}  navigator.State
// @Router       /api/navigator [get]
func (h *NavigatorHandler) State(c *fiber.Ctx) error {
	return c.JSON(h.nav.State(GetUserID(c)))
}

// Select godoc
// @Summary      Entrar a un módulo
// @Tags         navigator
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SelectModuleRequest  true  "module_id"
// @Success      200   {object}  navigator.State
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/navigator/select [post]
func (h *NavigatorHandler) Select(c *fiber.Ctx) error {
	var in dto.SelectModuleRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if in.ModuleID == "" {
		return status(c, fiber.StatusBadRequest, "VALIDATION", "module_id es requerido")
	}
	st, err := h.nav.SelectModule(GetUserID(c), GetRole(c), in.ModuleID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(st)
}

// Back godoc
// @Summary      Volver a la pantalla de módulos
// @Tags         navigator
// @Produce      json
// @Success      200  {object}  navigator.State
// @Router       /api/navigator/back [post]
func (h *NavigatorHandler) Back(c *fiber.Ctx) error {
	return c.JSON(h.nav.Back(GetUserID(c)))
}

// SetTab godoc
// @Summary      Cambiar la pestaña activa
// @Tags         navigator
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SetTabRequest  true  "tab"
// @Success      200   {object}  navigator.State
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/navigator/tab [post]
func (h *NavigatorHandler) SetTab(c *fiber.Ctx) error {
	var in dto.SetTabRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if in.Tab == "" {
		return status(c, fiber.StatusBadRequest, "VALIDATION", "tab es requerido")
	}
	st, err := h.nav.SetTab(GetUserID(c), in.Tab)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(st)
}

// Dashboard godoc
// @Summary      Mostrar el tablero general
// @Tags         navigator
// @Produce      json
// @Success      200  {object}  navigator.State
// @Router       /api/navigator/dashboard [post]
func (h *NavigatorHandler) Dashboard(c *fiber.Ctx) error {
	return c.JSON(h.nav.Dashboard(GetUserID(c)))
}
