package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/suite-pro/internal/application/catalog"
	"github.com/tu-usuario/suite-pro/internal/application/dto"
	"github.com/tu-usuario/suite-pro/internal/application/forms"
	"github.com/tu-usuario/suite-pro/internal/application/pos"
)

// POSHandler expone el terminal de venta: catálogo, carrito y cobro.
type POSHandler struct {
	pos     *pos.Service
	catalog *catalog.Catalog
	submit  forms.SubmitHandler
}

// NewPOSHandler construye el handler del POS.
func NewPOSHandler(svc *pos.Service, cat *catalog.Catalog, submit forms.SubmitHandler) *POSHandler {
	return &POSHandler{pos: svc, catalog: cat, submit: submit}
}

func cartResponse(lines []pos.Line, svc *pos.Service, userID string) dto.CartResponse {
	out := make([]dto.CartLineResponse, 0, len(lines))
	for _, l := range lines {
		out = append(out, dto.CartLineResponse{
			ProductID: l.Product.ID,
			Name:      l.Product.Name,
			UnitPrice: l.Product.Price.StringFixed(2),
			Quantity:  l.Quantity,
			Total:     l.Total().StringFixed(2),
		})
	}
	return dto.CartResponse{Lines: out, Total: svc.Total(userID).StringFixed(2)}
}

// Products godoc
// @Summary      Catálogo de productos del terminal
// @Tags         pos
// @Produce      json
// @Success      200  {array}  catalog.Product
// @Router       /api/pos/products [get]
func (h *POSHandler) Products(c *fiber.Ctx) error {
	return c.JSON(h.catalog.Products())
}

// Cart godoc
// @Summary      Carrito actual
// @Tags         pos
// @Produce      json
// @Success      200  {object}  dto.CartResponse
// @Router       /api/pos/cart [get]
func (h *POSHandler) Cart(c *fiber.Ctx) error {
	userID := GetUserID(c)
	return c.JSON(cartResponse(h.pos.Cart(userID), h.pos, userID))
}

// Add godoc
// @Summary      Agregar un producto al carrito
// @Tags         pos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddToCartRequest  true  "product_id"
// @Success      200   {object}  dto.CartResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/pos/cart [post]
func (h *POSHandler) Add(c *fiber.Ctx) error {
	var in dto.AddToCartRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if in.ProductID == "" {
		return status(c, fiber.StatusBadRequest, "VALIDATION", "product_id es requerido")
	}
	userID := GetUserID(c)
	lines, err := h.pos.Add(userID, in.ProductID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(cartResponse(lines, h.pos, userID))
}

// SetQuantity godoc
// @Summary      Fijar la cantidad de una línea (0 la elimina)
// @Tags         pos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SetCartQuantityRequest  true  "product_id, quantity"
// @Success      200   {object}  dto.CartResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/pos/cart [put]
func (h *POSHandler) SetQuantity(c *fiber.Ctx) error {
	var in dto.SetCartQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if in.ProductID == "" {
		return status(c, fiber.StatusBadRequest, "VALIDATION", "product_id es requerido")
	}
	userID := GetUserID(c)
	lines, err := h.pos.SetQuantity(userID, in.ProductID, in.Quantity)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(cartResponse(lines, h.pos, userID))
}

// Checkout godoc
// @Summary      Cobrar el carrito
// @Tags         pos
// @Produce      json
// @Success      200  {object}  dto.CheckoutResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/pos/checkout [post]
func (h *POSHandler) Checkout(c *fiber.Ctx) error {
	sale, err := h.pos.Checkout(c.Context(), GetUserID(c), h.submit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.CheckoutResponse{
		SaleID: sale.ID,
		Number: sale.Number,
		Total:  sale.Total.StringFixed(2),
	})
}
