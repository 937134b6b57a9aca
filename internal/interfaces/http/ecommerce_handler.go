package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/suite-pro/internal/application/catalog"
)

// EcommerceHandler expone el directorio de plataformas de e-commerce.
type EcommerceHandler struct {
	catalog *catalog.Catalog
}

// NewEcommerceHandler construye el handler de e-commerce.
func NewEcommerceHandler(cat *catalog.Catalog) *EcommerceHandler {
	return &EcommerceHandler{catalog: cat}
}

// Platforms godoc
// @Summary      Plataformas de e-commerce disponibles
// @Tags         ecommerce
// @Produce      json
// @Success      200  {array}  catalog.Platform
// @Router       /api/ecommerce/platforms [get]
func (h *EcommerceHandler) Platforms(c *fiber.Ctx) error {
	return c.JSON(h.catalog.Platforms())
}
