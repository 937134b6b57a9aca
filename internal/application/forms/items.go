package forms

import (
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/suite-pro/internal/domain"
	"github.com/tu-usuario/suite-pro/internal/domain/entity"
	domforms "github.com/tu-usuario/suite-pro/internal/domain/forms"
)

// ItemList mantiene la colección ordenada de líneas de detalle de una orden.
// Los ids son enteros monótonos crecientes y nunca se reutilizan tras un
// borrado. La colección siempre tiene al menos una fila y la última fila nunca
// queda con un requerido truthy sin una sucesora vacía.
type ItemList struct {
	mu         sync.Mutex
	itemFields []entity.FormField
	rows       []domforms.Row
	nextID     int
}

// NewItemList crea la lista con una única fila vacía (id 1).
func NewItemList(itemFields []entity.FormField) *ItemList {
	l := &ItemList{itemFields: itemFields, nextID: 1}
	l.appendRowLocked()
	return l
}

func (l *ItemList) appendRowLocked() domforms.Row {
	r := domforms.Row{ID: l.nextID, Values: make(map[string]any)}
	l.nextID++
	l.rows = append(l.rows, r)
	return r
}

// SetField muta un campo de la fila indicada. Si la fila mutada es la última y
// ahora tiene algún requerido con valor truthy, se agrega una fila vacía nueva
// (crecimiento "infinito" sin clic explícito). La operación es idempotente:
// repetir el mismo valor no agrega una segunda fila porque la fila ya no es la
// última.
func (l *ItemList) SetField(rowID int, name string, value any) error {
	known := false
	for _, f := range l.itemFields {
		if f.Name == name {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("%w: %q", domain.ErrUnknownField, name)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	idx := l.indexOfLocked(rowID)
	if idx < 0 {
		return fmt.Errorf("%w: fila %d", domain.ErrNotFound, rowID)
	}
	l.rows[idx].Values[name] = value

	isLast := idx == len(l.rows)-1
	if isLast && domforms.Truthy(value) && l.rows[idx].Qualifies(l.itemFields) {
		l.appendRowLocked()
	}
	return nil
}

// AddRow agrega una fila vacía de forma explícita y la devuelve.
func (l *ItemList) AddRow() domforms.Row {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.appendRowLocked().Clone()
}

// RemoveRow elimina la fila indicada. Con una sola fila restante la operación
// es un no-op (la colección nunca queda vacía). Devuelve si se eliminó.
func (l *ItemList) RemoveRow(rowID int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.rows) <= 1 {
		return false
	}
	idx := l.indexOfLocked(rowID)
	if idx < 0 {
		return false
	}
	l.rows = append(l.rows[:idx], l.rows[idx+1:]...)
	return true
}

// Rows devuelve una copia de todas las filas en orden.
func (l *ItemList) Rows() []domforms.Row {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]domforms.Row, 0, len(l.rows))
	for _, r := range l.rows {
		out = append(out, r.Clone())
	}
	return out
}

// Qualifying filtra las filas con al menos un requerido truthy; excluye la
// fila vacía perpetua del final.
func (l *ItemList) Qualifying() []domforms.Row {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []domforms.Row
	for _, r := range l.rows {
		if r.Qualifies(l.itemFields) {
			out = append(out, r.Clone())
		}
	}
	return out
}

// GrandTotal suma los totales por fila de toda la colección.
func (l *ItemList) GrandTotal() decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()
	return domforms.GrandTotal(l.rows)
}

// Reset vuelve a una única fila vacía nueva; el contador de ids no retrocede.
func (l *ItemList) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.rows = nil
	l.appendRowLocked()
}

func (l *ItemList) indexOfLocked(rowID int) int {
	for i, r := range l.rows {
		if r.ID == rowID {
			return i
		}
	}
	return -1
}
