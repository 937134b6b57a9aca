// Package auth implementa la autenticación simulada del demo: tabla de
// usuarios sembrados, contraseña centinela única y síntesis de usuarios
// nuevos. NO es autenticación real; cualquier uso en producción debe
// reemplazar este paquete completo.
package auth

import (
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/suite-pro/internal/domain"
	"github.com/tu-usuario/suite-pro/internal/domain/entity"
	"github.com/tu-usuario/suite-pro/pkg/jwt"
	"github.com/tu-usuario/suite-pro/pkg/logger"
)

// demoPassword es la contraseña centinela aceptada para cualquier email.
// Placeholder explícito del demo; ver nota del paquete.
const demoPassword = "password"

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación simulada: login, logout y cambio
// de rol en caliente (atajo de demostración).
type AuthUseCase struct {
	store  Store
	jwtCfg JWTConfig
	log    *logger.Logger

	mu           sync.Mutex
	current      *entity.User
	users        map[string]entity.User // por email: sembrados + sintetizados
	sentinelHash []byte
}

// NewAuthUseCase construye el caso de uso con la tabla demo sembrada.
func NewAuthUseCase(store Store, jwtCfg JWTConfig, log *logger.Logger) *AuthUseCase {
	// MinCost: el hash protege una contraseña pública de demo, no un secreto.
	hash, _ := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.MinCost)
	return &AuthUseCase{
		store:        store,
		jwtCfg:       jwtCfg,
		log:          log,
		users:        seedUsers(),
		sentinelHash: hash,
	}
}

func seedUsers() map[string]entity.User {
	seeded := []entity.User{
		{ID: "1", Name: "John Admin", Email: "admin@company.com", Role: entity.RoleAdmin},
		{ID: "2", Name: "Jane Manager", Email: "manager@company.com", Role: entity.RoleManager},
		{ID: "3", Name: "Bob User", Email: "user@company.com", Role: entity.RoleUser},
	}
	m := make(map[string]entity.User, len(seeded))
	for _, u := range seeded {
		m[u.Email] = u
	}
	return m
}

// Restore lee el usuario persistido al arranque. Un registro corrupto se
// descarta y la sesión queda sin autenticar; nunca se propaga como crash.
func (uc *AuthUseCase) Restore() {
	u, ok, err := uc.store.Load()
	if err != nil {
		if errors.Is(err, domain.ErrCorruptSession) {
			uc.log.Warn().Msg("registro de sesión corrupto, se descarta")
			_ = uc.store.Clear()
			return
		}
		uc.log.Warn().Err(err).Msg("no se pudo leer la sesión persistida")
		return
	}
	if !ok {
		return
	}
	if !entity.ValidRole(u.Role) || u.Email == "" || u.ID == "" {
		uc.log.Warn().Msg("registro de sesión inválido, se descarta")
		_ = uc.store.Clear()
		return
	}
	uc.mu.Lock()
	uc.current = u
	uc.users[u.Email] = *u
	uc.mu.Unlock()
	uc.log.Info().Str("email", u.Email).Str("role", u.Role).Msg("sesión restaurada")
}

// Login verifica email/contraseña contra la tabla demo. Email desconocido con
// la contraseña centinela sintetiza un usuario nuevo con rol "user" y nombre
// igual a la parte local del email. Persiste el usuario resultante y genera
// el token de sesión.
func (uc *AuthUseCase) Login(email, password string) (*entity.User, string, error) {
	if bcrypt.CompareHashAndPassword(uc.sentinelHash, []byte(password)) != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	uc.mu.Lock()
	u, ok := uc.users[email]
	if !ok {
		u = entity.User{
			ID:    uuid.New().String(),
			Name:  localPart(email),
			Email: email,
			Role:  entity.RoleUser,
		}
		uc.users[email] = u
	}
	uc.current = &u
	uc.mu.Unlock()

	if err := uc.store.Save(&u); err != nil {
		return nil, "", err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, u.ID, u.Email, u.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, "", err
	}
	uc.log.Info().Str("email", u.Email).Str("role", u.Role).Msg("login exitoso")
	return &u, token, nil
}

// Logout descarta la sesión del usuario indicado. El registro persistido
// (análogo del localStorage) solo se limpia si le pertenece.
func (uc *AuthUseCase) Logout(userID string) error {
	uc.mu.Lock()
	active := uc.current != nil && uc.current.ID == userID
	if active {
		uc.current = nil
	}
	uc.mu.Unlock()
	if !active {
		return nil
	}
	return uc.store.Clear()
}

// SwitchRole sobrescribe el rol del usuario identificado por el token, sin
// re-autenticar. Identidad intacta: id y email no cambian. Atajo de
// demostración, NO un cambio de autorización real.
func (uc *AuthUseCase) SwitchRole(userID, role string) (*entity.User, string, error) {
	if !entity.ValidRole(role) {
		return nil, "", domain.ErrInvalidRole
	}
	uc.mu.Lock()
	var u entity.User
	found := false
	for email, usr := range uc.users {
		if usr.ID == userID {
			usr.Role = role
			uc.users[email] = usr
			u = usr
			found = true
			break
		}
	}
	if !found {
		uc.mu.Unlock()
		return nil, "", domain.ErrNotAuthenticated
	}
	persist := uc.current != nil && uc.current.ID == userID
	if persist {
		cp := u
		uc.current = &cp
	}
	uc.mu.Unlock()

	if persist {
		if err := uc.store.Save(&u); err != nil {
			return nil, "", err
		}
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, u.ID, u.Email, u.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, "", err
	}
	uc.log.Info().Str("email", u.Email).Str("role", role).Msg("cambio de rol demo")
	return &u, token, nil
}

// UserByID busca un usuario (sembrado o sintetizado) por id. Es la búsqueda
// que usan los handlers para resolver la identidad del token: dos tokens
// vigentes de usuarios distintos ven cada uno su propio registro.
func (uc *AuthUseCase) UserByID(id string) (*entity.User, bool) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	for _, u := range uc.users {
		if u.ID == id {
			cp := u
			return &cp, true
		}
	}
	return nil, false
}

// Current devuelve el usuario autenticado, si lo hay.
func (uc *AuthUseCase) Current() (*entity.User, bool) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.current == nil {
		return nil, false
	}
	u := *uc.current
	return &u, true
}

// localPart deriva el nombre a mostrar de la parte local del email.
func localPart(email string) string {
	if i := strings.IndexByte(email, '@'); i > 0 {
		return email[:i]
	}
	return email
}
