package entity

// FieldType es la unión cerrada de tipos de campo que entiende el intérprete
// de formularios. Un tipo fuera de esta lista es un error de configuración
// detectado al cargar el documento, no un campo ignorado en silencio.
type FieldType string

const (
	FieldText     FieldType = "text"
	FieldEmail    FieldType = "email"
	FieldNumber   FieldType = "number"
	FieldSelect   FieldType = "select"
	FieldTextarea FieldType = "textarea"
	FieldDate     FieldType = "date"
	FieldCheckbox FieldType = "checkbox"
)

// Valid informa si el tipo pertenece a la unión.
func (t FieldType) Valid() bool {
	switch t {
	case FieldText, FieldEmail, FieldNumber, FieldSelect, FieldTextarea, FieldDate, FieldCheckbox:
		return true
	}
	return false
}

// Numeric informa si el valor del campo se interpreta como número.
func (t FieldType) Numeric() bool { return t == FieldNumber }

// Option es una opción de un campo select.
type Option struct {
	Value string `json:"value" validate:"required"`
	Label string `json:"label" validate:"required"`
}

// ValidationRule reglas opcionales por campo: min/max (numérico o longitud,
// según el tipo del campo) y pattern como expresión regular anclada.
type ValidationRule struct {
	Min     *float64 `json:"min,omitempty"`
	Max     *float64 `json:"max,omitempty"`
	Pattern string   `json:"pattern,omitempty"`
}

// FormField describe un control del formulario. Inmutable una vez cargado.
type FormField struct {
	Name        string          `json:"name" validate:"required"`
	Type        FieldType       `json:"type" validate:"required"`
	Label       string          `json:"label" validate:"required"`
	Required    bool            `json:"required"`
	Placeholder string          `json:"placeholder,omitempty"`
	Options     []Option        `json:"options,omitempty" validate:"dive"`
	Validation  *ValidationRule `json:"validation,omitempty"`
}

// FormConfig describe un formulario completo de captura de datos.
// HasItemDetails habilita la sub-captura de líneas de detalle (ItemFields).
type FormConfig struct {
	Title            string      `json:"title" validate:"required"`
	Description      string      `json:"description,omitempty"`
	Fields           []FormField `json:"fields" validate:"required,min=1,dive"`
	SubmitButtonText string      `json:"submitButtonText"`
	HasItemDetails   bool        `json:"hasItemDetails,omitempty"`
	ItemFields       []FormField `json:"itemFields,omitempty" validate:"dive"`
}

// FieldByName busca un campo de cabecera por nombre.
func (c FormConfig) FieldByName(name string) (FormField, bool) {
	for _, f := range c.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FormField{}, false
}
