package pos_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/suite-pro/internal/application/catalog"
	"github.com/tu-usuario/suite-pro/internal/application/forms"
	"github.com/tu-usuario/suite-pro/internal/application/pos"
	"github.com/tu-usuario/suite-pro/internal/domain"
)

func newService() *pos.Service {
	return pos.NewService(catalog.New())
}

func firstProductID(t *testing.T) string {
	t.Helper()
	products := catalog.New().Products()
	require.NotEmpty(t, products)
	return products[0].ID
}

func TestAdd_ProductoNuevoYRepetido(t *testing.T) {
	s := newService()
	id := firstProductID(t)

	cart, err := s.Add("u1", id)
	require.NoError(t, err)
	require.Len(t, cart, 1)
	assert.Equal(t, 1, cart[0].Quantity)

	cart, err = s.Add("u1", id)
	require.NoError(t, err)
	require.Len(t, cart, 1, "agregar el mismo producto no duplica la línea")
	assert.Equal(t, 2, cart[0].Quantity)
}

func TestAdd_ProductoDesconocido(t *testing.T) {
	s := newService()
	_, err := s.Add("u1", "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSetQuantity_CeroEliminaLaLinea(t *testing.T) {
	s := newService()
	id := firstProductID(t)
	_, err := s.Add("u1", id)
	require.NoError(t, err)

	cart, err := s.SetQuantity("u1", id, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, cart[0].Quantity)

	cart, err = s.SetQuantity("u1", id, 0)
	require.NoError(t, err)
	assert.Empty(t, cart)
}

func TestTotal_SumaLineas(t *testing.T) {
	s := newService()
	products := catalog.New().Products()
	require.GreaterOrEqual(t, len(products), 2)

	_, err := s.Add("u1", products[0].ID)
	require.NoError(t, err)
	_, err = s.SetQuantity("u1", products[0].ID, 2)
	require.NoError(t, err)
	_, err = s.Add("u1", products[1].ID)
	require.NoError(t, err)

	want := products[0].Price.Mul(decimalTwo()).Add(products[1].Price)
	assert.True(t, want.Equal(s.Total("u1")), "total = Σ precio × cantidad")
}

func TestCheckout_VaciaElCarritoYEntregaElPayload(t *testing.T) {
	s := newService()
	id := firstProductID(t)
	_, err := s.Add("u1", id)
	require.NoError(t, err)

	var got forms.Submission
	sale, err := s.Checkout(context.Background(), "u1", func(_ context.Context, sub forms.Submission) error {
		got = sub
		return nil
	})
	require.NoError(t, err)
	assert.True(t, sale.Total.Equal(got.Total))
	assert.Equal(t, "pos-sale", got.Entity)
	assert.Contains(t, sale.Number, "POS-")
	assert.Empty(t, s.Cart("u1"), "el cobro exitoso vacía el carrito")
}

func TestCheckout_CarritoVacio(t *testing.T) {
	s := newService()
	_, err := s.Checkout(context.Background(), "u1", nil)
	assert.ErrorIs(t, err, domain.ErrNoItems)
}

func TestCheckout_HandlerFallido_ConservaElCarrito(t *testing.T) {
	s := newService()
	id := firstProductID(t)
	_, err := s.Add("u1", id)
	require.NoError(t, err)

	_, err = s.Checkout(context.Background(), "u1", func(context.Context, forms.Submission) error {
		return errors.New("impresora apagada")
	})
	assert.ErrorIs(t, err, domain.ErrSubmitFailed)
	assert.Len(t, s.Cart("u1"), 1, "el fallo deja el carrito intacto para reintentar")
}

func decimalTwo() decimal.Decimal { return decimal.NewFromInt(2) }

func TestDrop_DescartaElCarrito(t *testing.T) {
	s := newService()
	_, err := s.Add("u1", firstProductID(t))
	require.NoError(t, err)

	s.Drop("u1")
	assert.Empty(t, s.Cart("u1"))
}
