// Package pos implementa el terminal de venta del demo: carrito por usuario
// sobre el catálogo de productos estático y cobro que reutiliza el pipeline de
// envío del motor de formularios (log de consola, recibo PDF).
package pos

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/suite-pro/internal/application/catalog"
	appforms "github.com/tu-usuario/suite-pro/internal/application/forms"
	"github.com/tu-usuario/suite-pro/internal/domain"
	domforms "github.com/tu-usuario/suite-pro/internal/domain/forms"
)

// Line es una línea del carrito: producto del catálogo más cantidad.
type Line struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// Total devuelve precio × cantidad de la línea.
func (l Line) Total() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Sale es el resultado de un cobro.
type Sale struct {
	ID     string          `json:"id"`
	Number string          `json:"number"`
	Lines  []Line          `json:"lines"`
	Total  decimal.Decimal `json:"total"`
	At     time.Time       `json:"at"`
}

// Service administra los carritos por usuario.
type Service struct {
	mu      sync.Mutex
	catalog *catalog.Catalog
	carts   map[string][]Line
}

// NewService construye el servicio POS sobre el catálogo.
func NewService(cat *catalog.Catalog) *Service {
	return &Service{catalog: cat, carts: make(map[string][]Line)}
}

// Add agrega un producto al carrito; si ya existe incrementa su cantidad.
func (s *Service) Add(userID, productID string) ([]Line, error) {
	p, ok := s.catalog.ProductByID(productID)
	if !ok {
		return nil, fmt.Errorf("%w: producto %q", domain.ErrNotFound, productID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cart := s.carts[userID]
	for i := range cart {
		if cart[i].Product.ID == productID {
			cart[i].Quantity++
			s.carts[userID] = cart
			return cloneLines(cart), nil
		}
	}
	cart = append(cart, Line{Product: p, Quantity: 1})
	s.carts[userID] = cart
	return cloneLines(cart), nil
}

// SetQuantity fija la cantidad de una línea existente; cantidad ≤ 0 la elimina.
func (s *Service) SetQuantity(userID, productID string, qty int) ([]Line, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart := s.carts[userID]
	for i := range cart {
		if cart[i].Product.ID != productID {
			continue
		}
		if qty <= 0 {
			cart = append(cart[:i], cart[i+1:]...)
		} else {
			cart[i].Quantity = qty
		}
		s.carts[userID] = cart
		return cloneLines(cart), nil
	}
	return nil, fmt.Errorf("%w: producto %q no está en el carrito", domain.ErrNotFound, productID)
}

// Cart devuelve las líneas actuales del usuario.
func (s *Service) Cart(userID string) []Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneLines(s.carts[userID])
}

// Total suma los totales de línea del carrito.
func (s *Service) Total(userID string) decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := decimal.Zero
	for _, l := range s.carts[userID] {
		total = total.Add(l.Total())
	}
	return total
}

// Checkout cobra el carrito: construye el payload de venta, lo entrega al
// handler de envío (consola, recibo) y en éxito vacía el carrito. Carrito
// vacío: domain.ErrNoItems; handler fallido: carrito intacto para reintento.
func (s *Service) Checkout(ctx context.Context, userID string, handler appforms.SubmitHandler) (*Sale, error) {
	s.mu.Lock()
	cart := cloneLines(s.carts[userID])
	s.mu.Unlock()
	if len(cart) == 0 {
		return nil, domain.ErrNoItems
	}

	now := time.Now()
	total := decimal.Zero
	items := make([]domforms.Row, 0, len(cart))
	for i, l := range cart {
		total = total.Add(l.Total())
		items = append(items, domforms.Row{ID: i + 1, Values: map[string]any{
			"productName": l.Product.Name,
			"quantity":    float64(l.Quantity),
			"unitPrice":   l.Product.Price.InexactFloat64(),
		}})
	}
	sale := &Sale{
		ID:     fmt.Sprintf("%d", now.UnixNano()),
		Number: fmt.Sprintf("POS-%d", now.UnixMilli()),
		Lines:  cart,
		Total:  total,
		At:     now,
	}

	if handler != nil {
		sub := appforms.Submission{
			ID:          sale.ID,
			Entity:      "pos-sale",
			OrderNumber: sale.Number,
			Fields:      map[string]any{"terminal": "pos"},
			Items:       items,
			Total:       total,
			HasItems:    true,
			SubmittedAt: now,
		}
		if err := handler(ctx, sub); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrSubmitFailed, err)
		}
	}

	s.mu.Lock()
	delete(s.carts, userID)
	s.mu.Unlock()
	return sale, nil
}

// Drop descarta el carrito del usuario (al cerrar sesión).
func (s *Service) Drop(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, userID)
}

func cloneLines(in []Line) []Line {
	out := make([]Line, len(in))
	copy(out, in)
	return out
}
