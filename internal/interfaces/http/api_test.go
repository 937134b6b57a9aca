package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/suite-pro/internal/application/auth"
	"github.com/tu-usuario/suite-pro/internal/application/catalog"
	"github.com/tu-usuario/suite-pro/internal/application/forms"
	"github.com/tu-usuario/suite-pro/internal/application/navigator"
	"github.com/tu-usuario/suite-pro/internal/application/pos"
	"github.com/tu-usuario/suite-pro/internal/infrastructure/localstore"
	"github.com/tu-usuario/suite-pro/internal/infrastructure/submit"
	apphttp "github.com/tu-usuario/suite-pro/internal/interfaces/http"
	"github.com/tu-usuario/suite-pro/pkg/logger"
)

// buildAPI construye la aplicación completa con dependencias en memoria.
func buildAPI() *fiber.App {
	log := logger.Nop()
	cat := catalog.New()
	reg := forms.NewRegistry(cat)
	nav := navigator.NewService(cat)
	posSvc := pos.NewService(cat)
	authUC := auth.NewAuthUseCase(localstore.NewMemoryStore(), auth.JWTConfig{
		Secret:     testJWTSecret,
		ExpMinutes: testExpMin,
		Issuer:     testIssuer,
	}, log)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:    authUC,
		Catalog:   cat,
		Registry:  reg,
		Navigator: nav,
		POS:       posSvc,
		Submit:    submit.NewConsoleHandler(log),
		JWTSecret: testJWTSecret,
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func login(t *testing.T, app *fiber.App, email string) (token, role string) {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": email, "password": "password",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out struct {
		Token string `json:"token"`
		User  struct {
			Role string `json:"role"`
		} `json:"user"`
	}
	decode(t, resp, &out)
	return out.Token, out.User.Role
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_Login_CredencialesInvalidas(t *testing.T) {
	app := buildAPI()
	resp := doJSON(t, app, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "admin@company.com", "password": "incorrecta",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAPI_SwitchRole_ReemiteToken(t *testing.T) {
	app := buildAPI()
	token, role := login(t, app, "user@company.com")
	require.Equal(t, "user", role)

	resp := doJSON(t, app, http.MethodPost, "/api/auth/switch-role", token, map[string]string{"role": "admin"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out struct {
		Token string `json:"token"`
		User  struct {
			Role string `json:"role"`
		} `json:"user"`
	}
	decode(t, resp, &out)
	assert.Equal(t, "admin", out.User.Role)
	assert.NotEmpty(t, out.Token)
}

func TestAPI_Me_IdentidadPorToken(t *testing.T) {
	app := buildAPI()
	tokenAdmin, _ := login(t, app, "admin@company.com")
	tokenUser, _ := login(t, app, "user@company.com")

	// El token del admin sigue resolviendo al admin aunque otro usuario
	// haya iniciado sesión después.
	var me struct {
		Email string `json:"email"`
	}
	resp := doJSON(t, app, http.MethodGet, "/api/auth/me", tokenAdmin, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &me)
	assert.Equal(t, "admin@company.com", me.Email)

	resp = doJSON(t, app, http.MethodGet, "/api/auth/me", tokenUser, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &me)
	assert.Equal(t, "user@company.com", me.Email)
}

// ──────────────────────────────────────────────────────────────────────────────
// Módulos y navegador
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_Modules_FiltradosPorRol(t *testing.T) {
	app := buildAPI()
	tokenAdmin, _ := login(t, app, "admin@company.com")
	tokenUser, _ := login(t, app, "user@company.com")

	var admin, user []map[string]any
	resp := doJSON(t, app, http.MethodGet, "/api/modules", tokenAdmin, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &admin)

	resp = doJSON(t, app, http.MethodGet, "/api/modules", tokenUser, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &user)

	assert.Greater(t, len(admin), len(user),
		"admin ve más módulos que user (hr e inventory están restringidos)")
}

func TestAPI_Navigator_FlujoCompleto(t *testing.T) {
	app := buildAPI()
	token, _ := login(t, app, "admin@company.com")

	resp := doJSON(t, app, http.MethodGet, "/api/navigator", token, nil)
	var st struct {
		View      string `json:"view"`
		ModuleID  string `json:"moduleId"`
		ActiveTab string `json:"activeTab"`
	}
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &st)
	assert.Equal(t, "modules", st.View, "tras login la vista es modules")

	resp = doJSON(t, app, http.MethodPost, "/api/navigator/select", token, map[string]string{"module_id": "sales"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &st)
	assert.Equal(t, "module", st.View)
	assert.Equal(t, "overview", st.ActiveTab)

	resp = doJSON(t, app, http.MethodPost, "/api/navigator/tab", token, map[string]string{"tab": "reports"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &st)
	assert.Equal(t, "reports", st.ActiveTab)

	resp = doJSON(t, app, http.MethodPost, "/api/navigator/back", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &st)
	assert.Equal(t, "modules", st.View)
}

func TestAPI_Navigator_ModuloProhibido(t *testing.T) {
	app := buildAPI()
	token, _ := login(t, app, "user@company.com")

	resp := doJSON(t, app, http.MethodPost, "/api/navigator/select", token, map[string]string{"module_id": "hr"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Formularios
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_Form_SetFieldYSubmit(t *testing.T) {
	app := buildAPI()
	token, _ := login(t, app, "admin@company.com")

	// Enviar vacío: 422 con los campos requeridos por etiqueta.
	resp := doJSON(t, app, http.MethodPost, "/api/forms/employee/submit", token, nil)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	var verr struct {
		Missing []string `json:"missing"`
	}
	decode(t, resp, &verr)
	assert.NotEmpty(t, verr.Missing)

	// Completar los requeridos y reenviar.
	for name, value := range map[string]any{
		"fullName": "Ada Lovelace", "email": "ada@company.com",
		"department": "engineering", "startDate": "2026-09-01",
	} {
		resp = doJSON(t, app, http.MethodPut, "/api/forms/employee/fields", token,
			map[string]any{"name": name, "value": value})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		resp.Body.Close()
	}

	resp = doJSON(t, app, http.MethodPost, "/api/forms/employee/submit", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// El envío exitoso limpia el estado.
	resp = doJSON(t, app, http.MethodGet, "/api/forms/employee", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var state struct {
		Values map[string]any `json:"values"`
	}
	decode(t, resp, &state)
	assert.Empty(t, state.Values)
}

func TestAPI_Form_CampoDesconocido(t *testing.T) {
	app := buildAPI()
	token, _ := login(t, app, "admin@company.com")

	resp := doJSON(t, app, http.MethodPut, "/api/forms/employee/fields", token,
		map[string]any{"name": "noExiste", "value": "x"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAPI_Form_EntidadDesconocida(t *testing.T) {
	app := buildAPI()
	token, _ := login(t, app, "admin@company.com")

	resp := doJSON(t, app, http.MethodGet, "/api/forms/no-existe", token, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAPI_Form_OrdenNoEntraPorElCaminoGenerico(t *testing.T) {
	app := buildAPI()
	token, _ := login(t, app, "admin@company.com")

	// El listado no anuncia entidades con líneas de detalle.
	var names []string
	resp := doJSON(t, app, http.MethodGet, "/api/forms", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &names)
	assert.Contains(t, names, "employee")
	assert.NotContains(t, names, "sales-order")

	// Un submit de cabecera sin ítems por /api/forms saltaría la regla de
	// "al menos un ítem"; la sesión genérica responde 404.
	for name, value := range map[string]any{
		"customerName": "ACME Corp", "orderDate": "2026-09-01",
	} {
		resp = doJSON(t, app, http.MethodPut, "/api/forms/sales-order/fields", token,
			map[string]any{"name": name, "value": value})
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
		resp.Body.Close()
	}
	resp = doJSON(t, app, http.MethodPost, "/api/forms/sales-order/submit", token, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Órdenes
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_Order_CrecimientoAutomaticoYEnvio(t *testing.T) {
	app := buildAPI()
	token, _ := login(t, app, "admin@company.com")

	// Cabecera.
	for name, value := range map[string]any{
		"customerName": "ACME Corp", "orderDate": "2026-09-01",
	} {
		resp := doJSON(t, app, http.MethodPut, "/api/orders/fields", token,
			map[string]any{"name": name, "value": value})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		resp.Body.Close()
	}

	// Completar la fila 1; al quedar calificada se agrega la fila 2 sola.
	var st struct {
		Rows []struct {
			ID    int    `json:"id"`
			Total string `json:"total"`
		} `json:"rows"`
		Total string `json:"total"`
	}
	for name, value := range map[string]any{
		"quantity": 2, "unitPrice": 10,
	} {
		resp := doJSON(t, app, http.MethodPut, "/api/orders/rows/1/fields", token,
			map[string]any{"name": name, "value": value})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		resp.Body.Close()
	}
	resp := doJSON(t, app, http.MethodPut, "/api/orders/rows/1/fields", token,
		map[string]any{"name": "productName", "value": "Widget"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &st)
	require.Len(t, st.Rows, 2, "la fila calificada agrega una fila vacía nueva")
	assert.Equal(t, "20.00", st.Total)

	// Enviar la orden.
	resp = doJSON(t, app, http.MethodPost, "/api/orders/submit", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out struct {
		OrderNumber string `json:"orderNumber"`
		Total       string `json:"total"`
	}
	decode(t, resp, &out)
	assert.Contains(t, out.OrderNumber, "SO-")
	assert.Equal(t, "20.00", out.Total)
}

func TestAPI_Order_SubmitSinItems(t *testing.T) {
	app := buildAPI()
	token, _ := login(t, app, "admin@company.com")

	for name, value := range map[string]any{
		"customerName": "ACME Corp", "orderDate": "2026-09-01",
	} {
		resp := doJSON(t, app, http.MethodPut, "/api/orders/fields", token,
			map[string]any{"name": name, "value": value})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		resp.Body.Close()
	}

	resp := doJSON(t, app, http.MethodPost, "/api/orders/submit", token, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// POS y e-commerce
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_POS_CarritoYCobro(t *testing.T) {
	app := buildAPI()
	token, _ := login(t, app, "admin@company.com")

	var products []struct {
		ID string `json:"id"`
	}
	resp := doJSON(t, app, http.MethodGet, "/api/pos/products", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &products)
	require.NotEmpty(t, products)

	resp = doJSON(t, app, http.MethodPost, "/api/pos/cart", token,
		map[string]string{"product_id": products[0].ID})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var cart struct {
		Lines []struct {
			Quantity int `json:"quantity"`
		} `json:"lines"`
	}
	decode(t, resp, &cart)
	require.Len(t, cart.Lines, 1)

	resp = doJSON(t, app, http.MethodPost, "/api/pos/checkout", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var sale struct {
		Number string `json:"number"`
	}
	decode(t, resp, &sale)
	assert.Contains(t, sale.Number, "POS-")

	// El cobro vació el carrito: un segundo checkout falla.
	resp = doJSON(t, app, http.MethodPost, "/api/pos/checkout", token, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestAPI_Ecommerce_Plataformas(t *testing.T) {
	app := buildAPI()
	token, _ := login(t, app, "admin@company.com")

	var platforms []map[string]any
	resp := doJSON(t, app, http.MethodGet, "/api/ecommerce/platforms", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &platforms)
	assert.NotEmpty(t, platforms)
}

// ──────────────────────────────────────────────────────────────────────────────
// Admin
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_AdminReload_SoloAdmin(t *testing.T) {
	app := buildAPI()
	tokenUser, _ := login(t, app, "user@company.com")

	resp := doJSON(t, app, http.MethodPost, "/api/admin/catalog/reload", tokenUser, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestAPI_AdminReload_SinOverridesConfigurados(t *testing.T) {
	app := buildAPI()
	tokenAdmin, _ := login(t, app, "admin@company.com")

	resp := doJSON(t, app, http.MethodPost, "/api/admin/catalog/reload", tokenAdmin, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}
