package dto

// AddToCartRequest entrada para agregar un producto al carrito.
type AddToCartRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

// SetCartQuantityRequest entrada para fijar la cantidad de una línea.
type SetCartQuantityRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity"`
}

// CartLineResponse una línea del carrito.
type CartLineResponse struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	UnitPrice string `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
	Total     string `json:"total"`
}

// CartResponse carrito con su total.
type CartResponse struct {
	Lines []CartLineResponse `json:"lines"`
	Total string             `json:"total"`
}

// CheckoutResponse confirmación de un cobro.
type CheckoutResponse struct {
	SaleID string `json:"saleId"`
	Number string `json:"number"`
	Total  string `json:"total"`
}
