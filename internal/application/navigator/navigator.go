// Package navigator mantiene la máquina de estados de vistas del demo:
// login → modules ⇄ {module, ecommerce, pos, dashboard}. La pestaña activa es
// estado ortogonal dentro de un módulo y no afecta la vista superior.
package navigator

import (
	"fmt"
	"sync"

	"github.com/tu-usuario/suite-pro/internal/application/catalog"
	"github.com/tu-usuario/suite-pro/internal/domain"
	"github.com/tu-usuario/suite-pro/internal/domain/entity"
)

// View es la vista de nivel superior.
type View string

const (
	ViewLogin     View = "login"
	ViewModules   View = "modules"
	ViewModule    View = "module"
	ViewEcommerce View = "ecommerce"
	ViewPOS       View = "pos"
	ViewDashboard View = "dashboard"
)

// DefaultTab es la pestaña inicial al entrar a un módulo genérico.
const DefaultTab = "overview"

// State es el estado de navegación de un usuario.
type State struct {
	View      View   `json:"view"`
	ModuleID  string `json:"moduleId,omitempty"`
	ActiveTab string `json:"activeTab,omitempty"`
}

// Service administra el estado de navegación por usuario.
type Service struct {
	mu      sync.Mutex
	catalog *catalog.Catalog
	states  map[string]State
}

// NewService construye el navegador sobre el catálogo de módulos.
func NewService(cat *catalog.Catalog) *Service {
	return &Service{catalog: cat, states: make(map[string]State)}
}

// State devuelve el estado actual del usuario; sin sesión previa es login.
func (s *Service) State(userID string) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	if st, ok := s.states[userID]; ok {
		return st
	}
	return State{View: ViewLogin}
}

// SignIn transiciona inmediatamente a la pantalla de módulos tras autenticar.
func (s *Service) SignIn(userID string) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := State{View: ViewModules}
	s.states[userID] = st
	return st
}

// SignOut descarta el estado de navegación del usuario.
func (s *Service) SignOut(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.states, userID)
}

// SelectModule entra a un módulo. Los ids con vista dedicada (ecommerce, pos)
// transicionan a su vista propia sin pasar por la genérica y sin consultar
// allowedRoles; el resto exige que el módulo exista, sea visible para el rol,
// y entra a la vista genérica con la pestaña por defecto.
func (s *Service) SelectModule(userID, role, moduleID string) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.ensureLocked(userID)

	switch moduleID {
	case entity.ModuleEcommerce:
		st = State{View: ViewEcommerce}
	case entity.ModulePOS:
		st = State{View: ViewPOS, ActiveTab: "terminal"}
	default:
		m, ok := s.catalog.Module(moduleID)
		if !ok {
			return st, fmt.Errorf("%w: módulo %q", domain.ErrNotFound, moduleID)
		}
		if !m.AllowedFor(role) {
			return st, fmt.Errorf("%w: módulo %q para rol %q", domain.ErrForbidden, moduleID, role)
		}
		st = State{View: ViewModule, ModuleID: moduleID, ActiveTab: DefaultTab}
	}
	s.states[userID] = st
	return st, nil
}

// Back vuelve incondicionalmente a la pantalla de módulos, descartando módulo
// seleccionado y pestaña activa.
func (s *Service) Back(userID string) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := State{View: ViewModules}
	s.states[userID] = st
	return st
}

// SetTab cambia la pestaña activa dentro de la vista actual. Solo aplica en
// vistas con pestañas (módulo genérico y POS).
func (s *Service) SetTab(userID, tab string) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.ensureLocked(userID)
	if st.View != ViewModule && st.View != ViewPOS {
		return st, domain.ErrNoModuleSelected
	}
	st.ActiveTab = tab
	s.states[userID] = st
	return st, nil
}

// Dashboard muestra el tablero general.
func (s *Service) Dashboard(userID string) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := State{View: ViewDashboard}
	s.states[userID] = st
	return st
}

// ensureLocked promueve login→modules: el token ya autenticó al usuario, así
// que tras un reinicio del proceso el estado mínimo autenticado es modules.
func (s *Service) ensureLocked(userID string) State {
	st, ok := s.states[userID]
	if !ok || st.View == ViewLogin {
		st = State{View: ViewModules}
		s.states[userID] = st
	}
	return st
}
