package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/suite-pro/internal/application/catalog"
	"github.com/tu-usuario/suite-pro/internal/application/dto"
	"github.com/tu-usuario/suite-pro/internal/application/forms"
)

// FormHandler expone las sesiones de formulario de cabecera por entidad.
type FormHandler struct {
	registry *forms.Registry
	catalog  *catalog.Catalog
	submit   forms.SubmitHandler
}

// NewFormHandler construye el handler de formularios.
func NewFormHandler(reg *forms.Registry, cat *catalog.Catalog, submit forms.SubmitHandler) *FormHandler {
	return &FormHandler{registry: reg, catalog: cat, submit: submit}
}

// List godoc
// @Summary      Entidades con formulario de cabecera
// @Tags         forms
// @Produce      json
// @Success      200  {array}  string
// @Router       /api/forms [get]
func (h *FormHandler) List(c *fiber.Ctx) error {
	// Las entidades con líneas de detalle se capturan por /api/orders,
	// no por la sesión genérica; no se anuncian aquí.
	names := make([]string, 0)
	for _, name := range h.catalog.FormNames() {
		if cfg, ok := h.catalog.Form(name); ok && !cfg.HasItemDetails {
			names = append(names, name)
		}
	}
	return c.JSON(names)
}

// State godoc
// @Summary      Configuración y valores del formulario de una entidad
// @Tags         forms
// @Produce      json
// @Param        entity  path  string  true  "tipo de entidad (employee, product, ...)"
// @Success      200  {object}  dto.FormStateResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/forms/{entity} [get]
func (h *FormHandler) State(c *fiber.Ctx) error {
	s, err := h.registry.FormFor(GetUserID(c), c.Params("entity"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.FormStateResponse{Config: s.Config(), Values: s.Values()})
}

// SetField godoc
// @Summary      Fijar el valor de un campo de cabecera
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        entity  path  string  true  "tipo de entidad"
// @Param        body  body  dto.SetFieldRequest  true  "name, value"
// @Success      200   {object}  dto.FormStateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/forms/{entity}/fields [put]
func (h *FormHandler) SetField(c *fiber.Ctx) error {
	var in dto.SetFieldRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if in.Name == "" {
		return status(c, fiber.StatusBadRequest, "VALIDATION", "name es requerido")
	}
	s, err := h.registry.FormFor(GetUserID(c), c.Params("entity"))
	if err != nil {
		return respondError(c, err)
	}
	if err := s.SetField(in.Name, in.Value); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.FormStateResponse{Config: s.Config(), Values: s.Values()})
}

// Clear godoc
// @Summary      Reiniciar el formulario a vacío
// @Tags         forms
// @Produce      json
// @Param        entity  path  string  true  "tipo de entidad"
// @Success      204
// @Router       /api/forms/{entity}/clear [post]
func (h *FormHandler) Clear(c *fiber.Ctx) error {
	s, err := h.registry.FormFor(GetUserID(c), c.Params("entity"))
	if err != nil {
		return respondError(c, err)
	}
	s.Clear()
	return c.SendStatus(fiber.StatusNoContent)
}

// Submit godoc
// @Summary      Validar y enviar el formulario
// @Tags         forms
// @Produce      json
// @Param        entity  path  string  true  "tipo de entidad"
// @Success      200  {object}  dto.SubmitResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ValidationErrorResponse
// @Router       /api/forms/{entity}/submit [post]
func (h *FormHandler) Submit(c *fiber.Ctx) error {
	s, err := h.registry.FormFor(GetUserID(c), c.Params("entity"))
	if err != nil {
		return respondError(c, err)
	}
	sub, err := s.Submit(c.Context(), h.submit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SubmitResponse{ID: sub.ID, Message: "registro enviado"})
}
