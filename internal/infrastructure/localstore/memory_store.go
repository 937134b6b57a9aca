package localstore

import (
	"sync"

	"github.com/tu-usuario/suite-pro/internal/domain/entity"
)

// MemoryStore implementa auth.Store en memoria; pensado para tests y para
// correr el demo sin tocar disco (SESSION_FILE vacío).
type MemoryStore struct {
	mu sync.Mutex
	u  *entity.User
}

// NewMemoryStore construye un store vacío.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load devuelve el registro guardado, si existe.
func (s *MemoryStore) Load() (*entity.User, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.u == nil {
		return nil, false, nil
	}
	cp := *s.u
	return &cp, true, nil
}

// Save guarda una copia del usuario.
func (s *MemoryStore) Save(u *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *u
	s.u = &cp
	return nil
}

// Clear descarta el registro.
func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.u = nil
	return nil
}
