package dto

import "github.com/tu-usuario/suite-pro/internal/domain/entity"

// SetFieldRequest entrada para fijar un valor de campo. Value admite cualquier
// tipo JSON; la coerción (truthy, numérica) ocurre en el dominio.
type SetFieldRequest struct {
	Name  string `json:"name" validate:"required"`
	Value any    `json:"value"`
}

// FormStateResponse configuración del formulario más los valores capturados.
type FormStateResponse struct {
	Config entity.FormConfig `json:"config"`
	Values map[string]any    `json:"values"`
}

// RowResponse una fila de ítems con su total de línea.
type RowResponse struct {
	ID     int            `json:"id"`
	Values map[string]any `json:"values"`
	Total  string         `json:"total"`
}

// RowFieldRequest entrada para fijar un valor dentro de una fila.
type RowFieldRequest struct {
	Name  string `json:"name" validate:"required"`
	Value any    `json:"value"`
}

// OrderStateResponse estado del sub-formulario de ítems.
type OrderStateResponse struct {
	Header FormStateResponse `json:"header"`
	Rows   []RowResponse     `json:"rows"`
	Total  string            `json:"total"`
}

// SubmitResponse confirmación de un envío exitoso.
type SubmitResponse struct {
	ID          string `json:"id"`
	OrderNumber string `json:"orderNumber,omitempty"`
	Total       string `json:"total,omitempty"`
	Message     string `json:"message"`
}
