package auth

import "github.com/tu-usuario/suite-pro/internal/domain/entity"

// Store es el puerto de persistencia del usuario actual: el análogo del
// localStorage del demo original. Load devuelve (nil, false, nil) si no hay
// registro y domain.ErrCorruptSession si el registro no se puede deserializar.
// Hay exactamente un escritor (la sesión activa), escritura síncrona.
type Store interface {
	Load() (*entity.User, bool, error)
	Save(u *entity.User) error
	Clear() error
}
