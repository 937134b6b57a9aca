package dto

// SelectModuleRequest entrada para entrar a un módulo.
type SelectModuleRequest struct {
	ModuleID string `json:"module_id" validate:"required"`
}

// SetTabRequest entrada para cambiar la pestaña activa.
type SetTabRequest struct {
	Tab string `json:"tab" validate:"required"`
}
