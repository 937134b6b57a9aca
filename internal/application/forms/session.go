// Package forms implementa los casos de uso del motor de formularios: sesión
// de cabecera (estado campo→valor, submit con handler inyectado), lista de
// líneas de detalle con crecimiento automático y sesión de órdenes que combina
// ambas. El estado vive en memoria por usuario, igual que el estado de
// componente del demo original.
package forms

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/suite-pro/internal/domain"
	"github.com/tu-usuario/suite-pro/internal/domain/entity"
	domforms "github.com/tu-usuario/suite-pro/internal/domain/forms"
)

// Submission es el payload que recibe el colaborador de envío.
type Submission struct {
	ID          string          `json:"id"`
	Entity      string          `json:"entity"`
	OrderNumber string          `json:"orderNumber,omitempty"`
	Fields      map[string]any  `json:"fields"`
	Items       []domforms.Row  `json:"items,omitempty"`
	Total       decimal.Decimal `json:"total"`
	HasItems    bool            `json:"hasItems"`
	SubmittedAt time.Time       `json:"submittedAt"`
}

// SubmitHandler representa "enviar este registro a un backend". El repositorio
// solo provee stand-ins (log de consola, recibo PDF); la integración real
// queda fuera de alcance.
type SubmitHandler func(ctx context.Context, s Submission) error

// FormSession mantiene el estado de una cabecera de formulario para un usuario.
type FormSession struct {
	mu         sync.Mutex
	entityName string
	cfg        entity.FormConfig
	state      map[string]any
	submitting bool
}

// NewFormSession crea la sesión con estado vacío.
func NewFormSession(entityName string, cfg entity.FormConfig) *FormSession {
	return &FormSession{
		entityName: entityName,
		cfg:        cfg,
		state:      make(map[string]any),
	}
}

// Config devuelve la configuración declarativa del formulario.
func (s *FormSession) Config() entity.FormConfig { return s.cfg }

// SetField muta un campo de la cabecera. El nombre debe existir en la
// configuración activa (invariante: las claves del estado son subconjunto de
// los nombres de campo declarados).
func (s *FormSession) SetField(name string, value any) error {
	if _, ok := s.cfg.FieldByName(name); !ok {
		return fmt.Errorf("%w: %q", domain.ErrUnknownField, name)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state[name] = value
	return nil
}

// Values devuelve una copia superficial del estado actual.
func (s *FormSession) Values() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *FormSession) snapshot() map[string]any {
	out := make(map[string]any, len(s.state))
	for k, v := range s.state {
		out[k] = v
	}
	return out
}

// Clear reinicia el estado a vacío.
func (s *FormSession) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = make(map[string]any)
}

// Submit valida y entrega el estado al handler inyectado.
//   - Requeridos falsy o reglas incumplidas: *domforms.ValidationError, estado intacto.
//   - Handler en curso: domain.ErrSubmitInFlight (guard explícito del doble submit).
//   - Handler falla: domain.ErrSubmitFailed envuelto, estado intacto para reintento.
//   - Éxito: estado limpio y Submission devuelta.
func (s *FormSession) Submit(ctx context.Context, handler SubmitHandler) (*Submission, error) {
	s.mu.Lock()
	if s.submitting {
		s.mu.Unlock()
		return nil, domain.ErrSubmitInFlight
	}
	if verr := domforms.Validate(s.cfg.Fields, s.state); verr != nil {
		s.mu.Unlock()
		return nil, verr
	}
	s.submitting = true
	payload := s.snapshot()
	s.mu.Unlock()

	sub := Submission{
		ID:          uuid.New().String(),
		Entity:      s.entityName,
		Fields:      payload,
		Total:       decimal.Zero,
		SubmittedAt: time.Now(),
	}
	err := handler(ctx, sub)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.submitting = false
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSubmitFailed, err)
	}
	s.state = make(map[string]any)
	return &sub, nil
}
