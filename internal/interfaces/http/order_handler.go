package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/suite-pro/internal/application/dto"
	"github.com/tu-usuario/suite-pro/internal/application/forms"
	domforms "github.com/tu-usuario/suite-pro/internal/domain/forms"
)

// OrderHandler expone la sesión de órdenes de venta: cabecera más líneas de
// detalle con crecimiento automático.
type OrderHandler struct {
	registry *forms.Registry
	submit   forms.SubmitHandler
}

// NewOrderHandler construye el handler de órdenes.
func NewOrderHandler(reg *forms.Registry, submit forms.SubmitHandler) *OrderHandler {
	return &OrderHandler{registry: reg, submit: submit}
}

func (h *OrderHandler) session(c *fiber.Ctx) (*forms.OrderSession, error) {
	return h.registry.OrderFor(GetUserID(c))
}

func orderState(o *forms.OrderSession) dto.OrderStateResponse {
	rows := o.Items().Rows()
	out := make([]dto.RowResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.RowResponse{
			ID:     r.ID,
			Values: r.Values,
			Total:  domforms.RowTotal(r).StringFixed(2),
		})
	}
	return dto.OrderStateResponse{
		Header: dto.FormStateResponse{Config: o.Header().Config(), Values: o.Header().Values()},
		Rows:   out,
		Total:  o.Items().GrandTotal().StringFixed(2),
	}
}

// State godoc
// @Summary      Estado de la orden en captura
// @Tags         orders
// @Produce      json
// @Success      200  {object}  dto.OrderStateResponse
// @Router       /api/orders [get]
func (h *OrderHandler) State(c *fiber.Ctx) error {
	o, err := h.session(c)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(orderState(o))
}

// SetHeaderField godoc
// @Summary      Fijar un campo de la cabecera de la orden
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SetFieldRequest  true  "name, value"
// @Success      200   {object}  dto.OrderStateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/orders/fields [put]
func (h *OrderHandler) SetHeaderField(c *fiber.Ctx) error {
	var in dto.SetFieldRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	o, err := h.session(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := o.Header().SetField(in.Name, in.Value); err != nil {
		return respondError(c, err)
	}
	return c.JSON(orderState(o))
}

// AddRow godoc
// @Summary      Agregar una fila vacía de ítems
// @Tags         orders
// @Produce      json
// @Success      200  {object}  dto.OrderStateResponse
// @Router       /api/orders/rows [post]
func (h *OrderHandler) AddRow(c *fiber.Ctx) error {
	o, err := h.session(c)
	if err != nil {
		return respondError(c, err)
	}
	o.Items().AddRow()
	return c.JSON(orderState(o))
}

// SetRowField godoc
// @Summary      Fijar un campo de una fila de ítems
// @Description  Si la fila mutada es la última y queda calificada, se agrega
// @Description  automáticamente una fila vacía nueva.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "id de la fila"
// @Param        body  body  dto.RowFieldRequest  true  "name, value"
// @Success      200   {object}  dto.OrderStateResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/orders/rows/{id}/fields [put]
func (h *OrderHandler) SetRowField(c *fiber.Ctx) error {
	rowID, err := c.ParamsInt("id")
	if err != nil {
		return status(c, fiber.StatusBadRequest, "VALIDATION", "id de fila inválido")
	}
	var in dto.RowFieldRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	o, err := h.session(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := o.Items().SetField(rowID, in.Name, in.Value); err != nil {
		return respondError(c, err)
	}
	return c.JSON(orderState(o))
}

// RemoveRow godoc
// @Summary      Eliminar una fila de ítems
// @Description  La última fila restante nunca se elimina.
// @Tags         orders
// @Produce      json
// @Param        id  path  int  true  "id de la fila"
// @Success      200  {object}  dto.OrderStateResponse
// @Router       /api/orders/rows/{id} [delete]
func (h *OrderHandler) RemoveRow(c *fiber.Ctx) error {
	rowID, err := c.ParamsInt("id")
	if err != nil {
		return status(c, fiber.StatusBadRequest, "VALIDATION", "id de fila inválido")
	}
	o, err := h.session(c)
	if err != nil {
		return respondError(c, err)
	}
	o.Items().RemoveRow(rowID)
	return c.JSON(orderState(o))
}

// Submit godoc
// @Summary      Validar y enviar la orden
// @Tags         orders
// @Produce      json
// @Success      200  {object}  dto.SubmitResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ValidationErrorResponse
// @Router       /api/orders/submit [post]
func (h *OrderHandler) Submit(c *fiber.Ctx) error {
	o, err := h.session(c)
	if err != nil {
		return respondError(c, err)
	}
	sub, err := o.Submit(c.Context(), h.submit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SubmitResponse{
		ID:          sub.ID,
		OrderNumber: sub.OrderNumber,
		Total:       sub.Total.StringFixed(2),
		Message:     "orden enviada",
	})
}
