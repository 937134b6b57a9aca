package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationErrorResponse error de validación de formulario: campos requeridos
// ausentes (por label) y reglas violadas.
type ValidationErrorResponse struct {
	Code       string   `json:"code"`
	Message    string   `json:"message"`
	Missing    []string `json:"missing,omitempty"`
	Violations []string `json:"violations,omitempty"`
}
