package forms

import (
	"fmt"
	"sync"

	"github.com/tu-usuario/suite-pro/internal/application/catalog"
	"github.com/tu-usuario/suite-pro/internal/domain"
)

// OrderEntity es el tipo de entidad cuyo formulario captura líneas de detalle.
const OrderEntity = "sales-order"

// Registry mantiene las sesiones de formulario por usuario. Equivale al estado
// de componente del demo original, con la diferencia de que aquí conviven
// varios usuarios a la vez.
type Registry struct {
	mu      sync.Mutex
	catalog *catalog.Catalog
	forms   map[string]*FormSession  // clave: userID + "/" + entidad
	orders  map[string]*OrderSession // clave: userID
}

// NewRegistry construye el registro sobre el catálogo de formularios.
func NewRegistry(cat *catalog.Catalog) *Registry {
	return &Registry{
		catalog: cat,
		forms:   make(map[string]*FormSession),
		orders:  make(map[string]*OrderSession),
	}
}

// FormFor devuelve (creando si hace falta) la sesión de un usuario para un
// tipo de entidad. Entidad sin configuración: domain.ErrNotFound. Las entidades
// con líneas de detalle no pasan por aquí: solo OrderFor aplica la regla de
// "al menos un ítem", así que la sesión genérica las rechaza.
func (r *Registry) FormFor(userID, entityName string) (*FormSession, error) {
	cfg, ok := r.catalog.Form(entityName)
	if !ok || cfg.HasItemDetails {
		return nil, fmt.Errorf("%w: formulario %q", domain.ErrNotFound, entityName)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	key := userID + "/" + entityName
	if s, ok := r.forms[key]; ok {
		return s, nil
	}
	s := NewFormSession(entityName, cfg)
	r.forms[key] = s
	return s, nil
}

// OrderFor devuelve (creando si hace falta) la sesión de órdenes del usuario.
func (r *Registry) OrderFor(userID string) (*OrderSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if o, ok := r.orders[userID]; ok {
		return o, nil
	}
	cfg, ok := r.catalog.Form(OrderEntity)
	if !ok {
		return nil, fmt.Errorf("%w: formulario %q", domain.ErrNotFound, OrderEntity)
	}
	o, err := NewOrderSession(OrderEntity, cfg)
	if err != nil {
		return nil, err
	}
	r.orders[userID] = o
	return o, nil
}

// Drop descarta todas las sesiones de un usuario (al cerrar sesión).
func (r *Registry) Drop(userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.orders, userID)
	for key := range r.forms {
		if len(key) > len(userID) && key[:len(userID)] == userID && key[len(userID)] == '/' {
			delete(r.forms, key)
		}
	}
}
