package forms

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/suite-pro/internal/domain"
	"github.com/tu-usuario/suite-pro/internal/domain/entity"
	domforms "github.com/tu-usuario/suite-pro/internal/domain/forms"
)

// OrderSession combina la cabecera de un formulario con captura de ítems y su
// lista de líneas de detalle. El submit exige cabecera válida y al menos una
// fila calificada; en éxito reinicia ambos estados.
type OrderSession struct {
	mu         sync.Mutex
	entityName string
	header     *FormSession
	items      *ItemList
	submitting bool
}

// NewOrderSession crea la sesión de orden a partir de una configuración con
// HasItemDetails habilitado.
func NewOrderSession(entityName string, cfg entity.FormConfig) (*OrderSession, error) {
	if !cfg.HasItemDetails || len(cfg.ItemFields) == 0 {
		return nil, fmt.Errorf("%w: %q no captura ítems", domain.ErrInvalidConfig, entityName)
	}
	return &OrderSession{
		entityName: entityName,
		header:     NewFormSession(entityName, cfg),
		items:      NewItemList(cfg.ItemFields),
	}, nil
}

// Header expone la sesión de cabecera (SetField/Values).
func (o *OrderSession) Header() *FormSession { return o.header }

// Items expone la lista de líneas de detalle.
func (o *OrderSession) Items() *ItemList { return o.items }

// Submit valida cabecera e ítems y entrega el payload completo al handler:
// campos de cabecera + filas calificadas + gran total + número de orden.
// En éxito reinicia cabecera y filas (una única fila vacía nueva); si el
// handler falla, todo el estado se conserva para reintentar.
func (o *OrderSession) Submit(ctx context.Context, handler SubmitHandler) (*Submission, error) {
	o.mu.Lock()
	if o.submitting {
		o.mu.Unlock()
		return nil, domain.ErrSubmitInFlight
	}
	o.submitting = true
	o.mu.Unlock()
	defer func() {
		o.mu.Lock()
		o.submitting = false
		o.mu.Unlock()
	}()

	cfg := o.header.Config()
	values := o.header.Values()
	if verr := domforms.Validate(cfg.Fields, values); verr != nil {
		return nil, verr
	}
	qualifying := o.items.Qualifying()
	if len(qualifying) == 0 {
		return nil, domain.ErrNoItems
	}

	now := time.Now()
	sub := Submission{
		ID:          uuid.New().String(),
		Entity:      o.entityName,
		OrderNumber: fmt.Sprintf("SO-%d", now.UnixMilli()),
		Fields:      values,
		Items:       qualifying,
		Total:       o.items.GrandTotal(),
		HasItems:    true,
		SubmittedAt: now,
	}
	if err := handler(ctx, sub); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSubmitFailed, err)
	}

	o.header.Clear()
	o.items.Reset()
	return &sub, nil
}
