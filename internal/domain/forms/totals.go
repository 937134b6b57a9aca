package forms

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/suite-pro/internal/domain/entity"
)

// Nombres de campo que participan en el cálculo de totales de una línea.
// Coinciden con el esquema itemFields del formulario de órdenes de venta.
const (
	KeyQuantity  = "quantity"
	KeyUnitPrice = "unitPrice"
	KeyDiscount  = "discount"
)

var hundred = decimal.NewFromInt(100)

// Row es una línea de detalle: id sintético monótono creciente (nunca se
// reutiliza tras un borrado) más un valor por campo del esquema de ítems.
type Row struct {
	ID     int            `json:"id"`
	Values map[string]any `json:"values"`
}

// Clone devuelve una copia superficial de la fila (mapa nuevo, mismos valores).
func (r Row) Clone() Row {
	values := make(map[string]any, len(r.Values))
	for k, v := range r.Values {
		values[k] = v
	}
	return Row{ID: r.ID, Values: values}
}

// Qualifies informa si la fila tiene valor truthy en al menos un campo
// requerido del esquema; la fila vacía perpetua del final nunca califica.
func (r Row) Qualifies(itemFields []entity.FormField) bool {
	for _, f := range itemFields {
		if f.Required && Truthy(r.Values[f.Name]) {
			return true
		}
	}
	return false
}

// RowTotal calcula quantity × unitPrice × (1 − discount/100) con 0 para
// cualquier numérico ausente. La fila vacía aporta 0 al gran total.
func RowTotal(r Row) decimal.Decimal {
	qty := Number(r.Values[KeyQuantity])
	price := Number(r.Values[KeyUnitPrice])
	discount := Number(r.Values[KeyDiscount])
	subtotal := qty.Mul(price)
	return subtotal.Sub(subtotal.Mul(discount.Div(hundred)))
}

// GrandTotal suma los totales de todas las filas, incluida la fila vacía final.
func GrandTotal(rows []Row) decimal.Decimal {
	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(RowTotal(r))
	}
	return total
}

func decimalFrom(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }
