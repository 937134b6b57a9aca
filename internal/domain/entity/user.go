package entity

// Roles válidos para User. El rol controla qué módulos se muestran,
// no es una frontera de seguridad real en este demo.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleUser    = "user"
)

// ValidRole informa si role es uno de los tres roles enumerados.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleManager, RoleUser:
		return true
	}
	return false
}

// User representa el usuario autenticado del demo. Los tags JSON definen el
// formato con el que el registro se persiste y debe hacer round-trip sin pérdida.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Avatar string `json:"avatar,omitempty"`
}
