package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/tu-usuario/suite-pro/internal/application/auth"
	"github.com/tu-usuario/suite-pro/internal/application/catalog"
	"github.com/tu-usuario/suite-pro/internal/application/forms"
	"github.com/tu-usuario/suite-pro/internal/application/navigator"
	"github.com/tu-usuario/suite-pro/internal/application/pos"
	"github.com/tu-usuario/suite-pro/internal/infrastructure/localstore"
	infrapdf "github.com/tu-usuario/suite-pro/internal/infrastructure/pdf"
	"github.com/tu-usuario/suite-pro/internal/infrastructure/submit"
	httpRouter "github.com/tu-usuario/suite-pro/internal/interfaces/http"
	"github.com/tu-usuario/suite-pro/pkg/config"
	"github.com/tu-usuario/suite-pro/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es requerido")
	}

	// Catálogo: defaults en código, opcionalmente reemplazados por documentos
	// declarativos en disco. Un documento inválido es error de arranque.
	cat := catalog.New()
	if cfg.Catalog.ModulesPath != "" {
		if err := cat.LoadModulesFile(cfg.Catalog.ModulesPath); err != nil {
			log.Fatal().Err(err).Str("path", cfg.Catalog.ModulesPath).Msg("catálogo de módulos")
		}
	}
	if cfg.Catalog.FormsPath != "" {
		if err := cat.LoadFormsFile(cfg.Catalog.FormsPath); err != nil {
			log.Fatal().Err(err).Str("path", cfg.Catalog.FormsPath).Msg("catálogo de formularios")
		}
	}

	// Store de sesión: archivo JSON (análogo al localStorage del demo) o
	// memoria pura si SESSION_FILE está vacío.
	var store auth.Store
	if cfg.Session.FilePath != "" {
		store = localstore.NewFileStore(cfg.Session.FilePath)
	} else {
		store = localstore.NewMemoryStore()
	}

	authUC := auth.NewAuthUseCase(store, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, log)
	authUC.Restore()

	registry := forms.NewRegistry(cat)
	nav := navigator.NewService(cat)
	posSvc := pos.NewService(cat)

	// Pipeline de envío: log de consola siempre; comprobante PDF si hay
	// directorio configurado.
	receiptGen := infrapdf.NewReceiptGenerator()
	submitHandler := submit.Chain(
		submit.NewConsoleHandler(log),
		submit.NewReceiptWriter(receiptGen, cfg.Catalog.ReceiptDir, log),
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Suite Pro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:             authUC,
		Catalog:            cat,
		Registry:           registry,
		Navigator:          nav,
		POS:                posSvc,
		Submit:             submitHandler,
		JWTSecret:          cfg.JWT.Secret,
		CatalogModulesPath: cfg.Catalog.ModulesPath,
		CatalogFormsPath:   cfg.Catalog.FormsPath,
	})

	// Arranque + apagado ordenado
	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Fatal().Err(err).Msg("servidor HTTP")
		}
	}()
	log.Info().Str("addr", cfg.HTTP.Addr()).Msg("servidor escuchando")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("apagando servidor")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	log.Info().Msg("servidor detenido")
}
