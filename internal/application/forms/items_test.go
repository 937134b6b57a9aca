package forms_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/suite-pro/internal/application/catalog"
	appforms "github.com/tu-usuario/suite-pro/internal/application/forms"
	"github.com/tu-usuario/suite-pro/internal/domain"
	"github.com/tu-usuario/suite-pro/internal/domain/entity"
)

func itemFields() []entity.FormField {
	return []entity.FormField{
		{Name: "productName", Type: entity.FieldText, Label: "Product", Required: true},
		{Name: "quantity", Type: entity.FieldNumber, Label: "Quantity", Required: true},
		{Name: "unitPrice", Type: entity.FieldNumber, Label: "Unit Price", Required: true},
		{Name: "discount", Type: entity.FieldNumber, Label: "Discount %"},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// ItemList — crecimiento automático e invariantes de la colección
// ──────────────────────────────────────────────────────────────────────────────

func TestItemList_EmpiezaConUnaFilaVacia(t *testing.T) {
	l := appforms.NewItemList(itemFields())
	rows := l.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, 1, rows[0].ID)
	assert.Empty(t, rows[0].Values)
}

func TestItemList_AutoAgregaFila_SoloUnaVez(t *testing.T) {
	l := appforms.NewItemList(itemFields())

	require.NoError(t, l.SetField(1, "productName", "Laptop"))
	rows := l.Rows()
	require.Len(t, rows, 2, "dar valor a un requerido de la última fila agrega exactamente una fila")
	assert.Equal(t, 2, rows[1].ID)

	// Idempotencia: repetir el mismo campo no agrega otra fila.
	require.NoError(t, l.SetField(1, "productName", "Laptop"))
	assert.Len(t, l.Rows(), 2)

	// Mutar una fila que ya no es la última tampoco agrega.
	require.NoError(t, l.SetField(1, "quantity", float64(2)))
	assert.Len(t, l.Rows(), 2)
}

func TestItemList_CampoOpcionalNoDisparaCrecimiento(t *testing.T) {
	l := appforms.NewItemList(itemFields())
	require.NoError(t, l.SetField(1, "discount", float64(10)))
	assert.Len(t, l.Rows(), 1, "un valor en campo no requerido no califica la fila")
}

func TestItemList_RemoveRow_UltimaFilaEsNoOp(t *testing.T) {
	l := appforms.NewItemList(itemFields())
	assert.False(t, l.RemoveRow(1), "con una sola fila el borrado es no-op")
	assert.Len(t, l.Rows(), 1)
}

func TestItemList_IdsMonotonicos_NoSeReutilizan(t *testing.T) {
	l := appforms.NewItemList(itemFields())
	require.NoError(t, l.SetField(1, "productName", "A")) // agrega id 2
	r3 := l.AddRow()
	assert.Equal(t, 3, r3.ID)

	assert.True(t, l.RemoveRow(2))
	r4 := l.AddRow()
	assert.Equal(t, 4, r4.ID, "un id borrado nunca se reutiliza")
}

func TestItemList_SetField_Errores(t *testing.T) {
	l := appforms.NewItemList(itemFields())
	assert.ErrorIs(t, l.SetField(1, "otro", "x"), domain.ErrUnknownField)
	assert.ErrorIs(t, l.SetField(99, "productName", "x"), domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// OrderSession — submit de cabecera + ítems
// ──────────────────────────────────────────────────────────────────────────────

func newOrderSession(t *testing.T) *appforms.OrderSession {
	t.Helper()
	cat := catalog.New()
	cfg, ok := cat.Form(appforms.OrderEntity)
	require.True(t, ok)
	o, err := appforms.NewOrderSession(appforms.OrderEntity, cfg)
	require.NoError(t, err)
	return o
}

func fillHeader(t *testing.T, o *appforms.OrderSession) {
	t.Helper()
	require.NoError(t, o.Header().SetField("customerName", "ACME"))
	require.NoError(t, o.Header().SetField("orderDate", "2026-09-01"))
}

func TestOrderSession_SinItems_Rechaza(t *testing.T) {
	o := newOrderSession(t)
	fillHeader(t, o)

	_, err := o.Submit(context.Background(), func(context.Context, appforms.Submission) error { return nil })
	assert.ErrorIs(t, err, domain.ErrNoItems,
		"la fila vacía perpetua no cuenta como ítem")
}

func TestOrderSession_SubmitExitoso_PayloadYReset(t *testing.T) {
	o := newOrderSession(t)
	fillHeader(t, o)
	require.NoError(t, o.Items().SetField(1, "productName", "Laptop"))
	require.NoError(t, o.Items().SetField(1, "quantity", float64(2)))
	require.NoError(t, o.Items().SetField(1, "unitPrice", float64(10)))

	var captured appforms.Submission
	sub, err := o.Submit(context.Background(), func(_ context.Context, s appforms.Submission) error {
		captured = s
		return nil
	})
	require.NoError(t, err)

	assert.Len(t, captured.Items, 1, "solo filas calificadas; la fila vacía queda fuera")
	assert.Equal(t, "20.00", captured.Total.StringFixed(2))
	assert.Contains(t, captured.OrderNumber, "SO-")
	assert.Equal(t, "ACME", captured.Fields["customerName"])
	assert.NotEmpty(t, sub.ID)

	// Reset: cabecera vacía y una única fila vacía nueva (id no reciclado).
	assert.Empty(t, o.Header().Values())
	rows := o.Items().Rows()
	require.Len(t, rows, 1)
	assert.Empty(t, rows[0].Values)
	assert.Greater(t, rows[0].ID, 2, "el contador de ids no retrocede tras el reset")
}

func TestOrderSession_HandlerFalla_ConservaTodo(t *testing.T) {
	o := newOrderSession(t)
	fillHeader(t, o)
	require.NoError(t, o.Items().SetField(1, "productName", "Laptop"))

	_, err := o.Submit(context.Background(), func(context.Context, appforms.Submission) error {
		return errors.New("rechazado")
	})
	assert.ErrorIs(t, err, domain.ErrSubmitFailed)
	assert.Equal(t, "ACME", o.Header().Values()["customerName"])
	assert.Len(t, o.Items().Rows(), 2, "las filas se conservan para reintento")
}

func TestRegistry_SesionesPorUsuario(t *testing.T) {
	reg := appforms.NewRegistry(catalog.New())

	s1, err := reg.FormFor("u1", "employee")
	require.NoError(t, err)
	s2, err := reg.FormFor("u1", "employee")
	require.NoError(t, err)
	assert.Same(t, s1, s2, "misma sesión para el mismo usuario y entidad")

	s3, err := reg.FormFor("u2", "employee")
	require.NoError(t, err)
	assert.NotSame(t, s1, s3)

	_, err = reg.FormFor("u1", "desconocido")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	o1, err := reg.OrderFor("u1")
	require.NoError(t, err)
	reg.Drop("u1")
	o2, err := reg.OrderFor("u1")
	require.NoError(t, err)
	assert.NotSame(t, o1, o2, "Drop descarta las sesiones del usuario")
}

func TestRegistry_EntidadConItems_NoPasaPorLaSesionGenerica(t *testing.T) {
	reg := appforms.NewRegistry(catalog.New())

	// Si la orden entrara como formulario plano, Submit solo validaría la
	// cabecera y se saltaría la regla de "al menos un ítem".
	_, err := reg.FormFor("u1", appforms.OrderEntity)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// El camino correcto sigue disponible.
	o, err := reg.OrderFor("u1")
	require.NoError(t, err)
	fillHeader(t, o)
	_, err = o.Submit(context.Background(), func(context.Context, appforms.Submission) error { return nil })
	assert.ErrorIs(t, err, domain.ErrNoItems)
}
