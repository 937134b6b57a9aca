// Package localstore implementa el puerto auth.Store: la persistencia del
// usuario actual bajo una clave fija, análoga al localStorage del navegador.
package localstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/tu-usuario/suite-pro/internal/domain"
	"github.com/tu-usuario/suite-pro/internal/domain/entity"
)

// FileStore persiste el registro de usuario como JSON en un archivo único.
// Un solo escritor, escritura síncrona en cada cambio de sesión.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore construye el store sobre la ruta dada.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load lee el registro persistido. Archivo ausente no es error; contenido
// ilegible se reporta como domain.ErrCorruptSession para que el caso de uso
// lo descarte en vez de propagarlo como crash.
func (s *FileStore) Load() (*entity.User, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("localstore: leer %s: %w", s.path, err)
	}
	var u entity.User
	if err := json.Unmarshal(raw, &u); err != nil {
		return nil, false, fmt.Errorf("localstore: %w: %v", domain.ErrCorruptSession, err)
	}
	return &u, true, nil
}

// Save serializa el usuario y lo escribe de forma síncrona.
func (s *FileStore) Save(u *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("localstore: crear directorio: %w", err)
	}
	raw, err := json.MarshalIndent(u, "", "  ")
	if err != nil {
		return fmt.Errorf("localstore: serializar: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("localstore: escribir %s: %w", s.path, err)
	}
	return nil
}

// Clear elimina el registro persistido; ausencia previa no es error.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("localstore: eliminar %s: %w", s.path, err)
	}
	return nil
}
