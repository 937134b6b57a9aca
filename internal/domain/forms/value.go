// Package forms contiene la lógica pura del motor de formularios: semántica
// de valores, validación de requeridos y reglas, y totales de líneas de detalle.
package forms

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Truthy reproduce la semántica "falsy" del intérprete original: un valor
// ausente, nil, cadena vacía, cero numérico o false cuenta como vacío.
// Nota: esto significa que un número requerido legítimamente 0 o un checkbox
// requerido sin marcar se reportan como faltantes; el comportamiento se
// conserva tal cual está especificado (pregunta abierta del diseño original).
func Truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case string:
		return x != ""
	case bool:
		return x
	case float64:
		return x != 0
	case float32:
		return x != 0
	case int:
		return x != 0
	case int64:
		return x != 0
	case decimal.Decimal:
		return !x.IsZero()
	default:
		return true
	}
}

// Number convierte un valor de formulario a decimal. Valores ausentes, no
// numéricos o strings mal formados valen 0, igual que el parseFloat original.
func Number(v any) decimal.Decimal {
	switch x := v.(type) {
	case float64:
		return decimal.NewFromFloat(x)
	case float32:
		return decimal.NewFromFloat32(x)
	case int:
		return decimal.NewFromInt(int64(x))
	case int64:
		return decimal.NewFromInt(x)
	case decimal.Decimal:
		return x
	case string:
		if f, err := strconv.ParseFloat(x, 64); err == nil {
			return decimal.NewFromFloat(f)
		}
		return decimal.Zero
	default:
		return decimal.Zero
	}
}

// String devuelve la representación string de un valor de formulario.
func String(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case nil:
		return ""
	case bool:
		return strconv.FormatBool(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return ""
	}
}
