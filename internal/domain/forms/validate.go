package forms

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/tu-usuario/suite-pro/internal/domain/entity"
)

// ValidationError agrupa los problemas de una cabecera de formulario: etiquetas
// de campos requeridos faltantes y violaciones de reglas min/max/pattern.
// Es recuperable corrigiendo la entrada; el estado del formulario no se toca.
type ValidationError struct {
	Missing    []string // etiquetas de campos requeridos sin valor
	Violations []string // mensajes de reglas incumplidas
}

// Error implementa error.
func (e *ValidationError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "campos requeridos: "+strings.Join(e.Missing, ", "))
	}
	if len(e.Violations) > 0 {
		parts = append(parts, strings.Join(e.Violations, "; "))
	}
	return "validación: " + strings.Join(parts, "; ")
}

// Validate aplica a un estado de cabecera las dos comprobaciones del Submit:
// requeridos con valor falsy y reglas de validación sobre campos con valor.
// Devuelve nil si todo pasa.
func Validate(fields []entity.FormField, state map[string]any) *ValidationError {
	verr := &ValidationError{}
	for _, f := range fields {
		v, ok := state[f.Name]
		if f.Required && (!ok || !Truthy(v)) {
			verr.Missing = append(verr.Missing, f.Label)
			continue
		}
		if !ok || !Truthy(v) {
			continue // reglas solo sobre campos con valor
		}
		verr.Violations = append(verr.Violations, checkRules(f, v)...)
	}
	if len(verr.Missing) == 0 && len(verr.Violations) == 0 {
		return nil
	}
	return verr
}

// checkRules evalúa min/max/pattern de un campo con valor presente.
// min/max se interpretan como rango numérico para campos number y como
// longitud en runas para el resto.
func checkRules(f entity.FormField, v any) []string {
	if f.Validation == nil {
		return nil
	}
	var out []string
	rule := f.Validation

	if f.Type.Numeric() {
		n := Number(v)
		if rule.Min != nil && n.LessThan(decimalFrom(*rule.Min)) {
			out = append(out, fmt.Sprintf("%s debe ser ≥ %v", f.Label, *rule.Min))
		}
		if rule.Max != nil && n.GreaterThan(decimalFrom(*rule.Max)) {
			out = append(out, fmt.Sprintf("%s debe ser ≤ %v", f.Label, *rule.Max))
		}
	} else {
		length := utf8.RuneCountInString(String(v))
		if rule.Min != nil && float64(length) < *rule.Min {
			out = append(out, fmt.Sprintf("%s debe tener al menos %v caracteres", f.Label, *rule.Min))
		}
		if rule.Max != nil && float64(length) > *rule.Max {
			out = append(out, fmt.Sprintf("%s debe tener máximo %v caracteres", f.Label, *rule.Max))
		}
	}

	if rule.Pattern != "" {
		re, err := regexp.Compile("^(?:" + rule.Pattern + ")$")
		if err != nil {
			out = append(out, fmt.Sprintf("%s tiene un patrón de validación inválido", f.Label))
		} else if !re.MatchString(String(v)) {
			out = append(out, fmt.Sprintf("%s no cumple el formato esperado", f.Label))
		}
	}
	return out
}
