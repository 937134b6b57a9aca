package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrNotAuthenticated   = errors.New("no hay sesión activa")
	ErrInvalidRole        = errors.New("rol inválido")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrUnknownField       = errors.New("el campo no existe en la configuración del formulario")
	ErrNoItems            = errors.New("se requiere al menos un ítem")
	ErrSubmitInFlight     = errors.New("ya hay un envío en curso")
	ErrSubmitFailed       = errors.New("el envío del formulario falló")
	ErrCorruptSession     = errors.New("registro de sesión persistido corrupto")
	ErrInvalidConfig      = errors.New("configuración de formulario inválida")
	ErrNoModuleSelected   = errors.New("ningún módulo seleccionado")
)
