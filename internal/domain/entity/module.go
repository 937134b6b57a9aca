package entity

// IDs de módulo con vista dedicada propia: no pasan por la vista genérica.
const (
	ModuleEcommerce = "ecommerce"
	ModulePOS       = "pos"
)

// Module es un área de negocio seleccionable del catálogo, visible según rol.
type Module struct {
	ID           string   `json:"id" validate:"required"`
	Name         string   `json:"name" validate:"required"`
	Description  string   `json:"description"`
	Icon         string   `json:"icon"`
	Path         string   `json:"path"`
	Color        string   `json:"color"`
	AllowedRoles []string `json:"allowedRoles" validate:"required,min=1,dive,oneof=admin manager user"`
}

// AllowedFor informa si el módulo es visible para el rol dado.
func (m Module) AllowedFor(role string) bool {
	for _, r := range m.AllowedRoles {
		if r == role {
			return true
		}
	}
	return false
}
