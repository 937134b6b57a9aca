package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/suite-pro/internal/application/catalog"
	"github.com/tu-usuario/suite-pro/internal/application/dto"
)

// AdminHandler expone operaciones administrativas del catálogo.
type AdminHandler struct {
	catalog     *catalog.Catalog
	modulesPath string
	formsPath   string
}

// NewAdminHandler construye el handler administrativo.
func NewAdminHandler(cat *catalog.Catalog, modulesPath, formsPath string) *AdminHandler {
	return &AdminHandler{catalog: cat, modulesPath: modulesPath, formsPath: formsPath}
}

// ReloadCatalog godoc
// @Summary      Recargar los overrides de módulos y formularios desde disco
// @Tags         admin
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/admin/catalog/reload [post]
func (h *AdminHandler) ReloadCatalog(c *fiber.Ctx) error {
	if h.modulesPath == "" && h.formsPath == "" {
		return status(c, fiber.StatusConflict, "NO_OVERRIDES", "no hay archivos de catálogo configurados")
	}
	if h.modulesPath != "" {
		if err := h.catalog.LoadModulesFile(h.modulesPath); err != nil {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INVALID_CONFIG", Message: err.Error()})
		}
	}
	if h.formsPath != "" {
		if err := h.catalog.LoadFormsFile(h.formsPath); err != nil {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INVALID_CONFIG", Message: err.Error()})
		}
	}
	return c.JSON(fiber.Map{"status": "reloaded"})
}
