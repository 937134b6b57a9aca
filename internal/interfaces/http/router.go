package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/suite-pro/internal/application/auth"
	"github.com/tu-usuario/suite-pro/internal/application/catalog"
	"github.com/tu-usuario/suite-pro/internal/application/forms"
	"github.com/tu-usuario/suite-pro/internal/application/navigator"
	"github.com/tu-usuario/suite-pro/internal/application/pos"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	Catalog   *catalog.Catalog
	Registry  *forms.Registry
	Navigator *navigator.Service
	POS       *pos.Service
	Submit    forms.SubmitHandler
	JWTSecret string

	// Rutas de overrides del catálogo (vacías si no hay archivos configurados).
	CatalogModulesPath string
	CatalogFormsPath   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth: login es público; el resto exige Bearer Token.
	authHandler := NewAuthHandler(deps.AuthUC, deps.Navigator, deps.Registry, deps.POS)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", AuthMiddleware(deps.JWTSecret), authHandler.Logout)
	authGroup.Post("/switch-role", AuthMiddleware(deps.JWTSecret), authHandler.SwitchRole)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Navegador y módulos
	navHandler := NewNavigatorHandler(deps.Navigator, deps.Catalog)
	protected.Get("/modules", navHandler.Modules)
	navGroup := protected.Group("/navigator")
	navGroup.Get("/", navHandler.State)
	navGroup.Post("/select", navHandler.Select)
	navGroup.Post("/back", navHandler.Back)
	navGroup.Post("/tab", navHandler.SetTab)
	navGroup.Post("/dashboard", navHandler.Dashboard)

	// Formularios dinámicos de cabecera
	formHandler := NewFormHandler(deps.Registry, deps.Catalog, deps.Submit)
	formGroup := protected.Group("/forms")
	formGroup.Get("/", formHandler.List)
	formGroup.Get("/:entity", formHandler.State)
	formGroup.Put("/:entity/fields", formHandler.SetField)
	formGroup.Post("/:entity/clear", formHandler.Clear)
	formGroup.Post("/:entity/submit", formHandler.Submit)

	// Órdenes de venta (cabecera + ítems)
	orderHandler := NewOrderHandler(deps.Registry, deps.Submit)
	orderGroup := protected.Group("/orders")
	orderGroup.Get("/", orderHandler.State)
	orderGroup.Put("/fields", orderHandler.SetHeaderField)
	orderGroup.Post("/rows", orderHandler.AddRow)
	orderGroup.Put("/rows/:id/fields", orderHandler.SetRowField)
	orderGroup.Delete("/rows/:id", orderHandler.RemoveRow)
	orderGroup.Post("/submit", orderHandler.Submit)

	// Terminal de venta
	posHandler := NewPOSHandler(deps.POS, deps.Catalog, deps.Submit)
	posGroup := protected.Group("/pos")
	posGroup.Get("/products", posHandler.Products)
	posGroup.Get("/cart", posHandler.Cart)
	posGroup.Post("/cart", posHandler.Add)
	posGroup.Put("/cart", posHandler.SetQuantity)
	posGroup.Post("/checkout", posHandler.Checkout)

	// E-commerce
	ecommerceHandler := NewEcommerceHandler(deps.Catalog)
	protected.Get("/ecommerce/platforms", ecommerceHandler.Platforms)

	// Administración (solo admin)
	adminHandler := NewAdminHandler(deps.Catalog, deps.CatalogModulesPath, deps.CatalogFormsPath)
	adminGroup := protected.Group("/admin", RequireRole("admin"))
	adminGroup.Post("/catalog/reload", adminHandler.ReloadCatalog)
}
