// Package submit provee los colaboradores de envío del demo: un logger de
// consola que hace las veces de backend y un escritor de comprobantes PDF.
package submit

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tu-usuario/suite-pro/internal/application/forms"
	"github.com/tu-usuario/suite-pro/pkg/logger"
)

// ReceiptGenerator produce el comprobante PDF de un envío.
type ReceiptGenerator interface {
	Generate(sub forms.Submission) ([]byte, error)
}

// NewConsoleHandler devuelve un handler que registra el envío en el log
// estructurado. Es el sustituto del backend real del demo.
func NewConsoleHandler(log *logger.Logger) forms.SubmitHandler {
	return func(_ context.Context, sub forms.Submission) error {
		ev := log.Info().
			Str("submission_id", sub.ID).
			Str("entity", sub.Entity).
			Int("fields", len(sub.Fields)).
			Time("submitted_at", sub.SubmittedAt)
		if sub.HasItems {
			ev = ev.
				Str("order_number", sub.OrderNumber).
				Int("items", len(sub.Items)).
				Str("total", sub.Total.StringFixed(2))
		}
		ev.Msg("envío recibido")
		return nil
	}
}

// NewReceiptWriter devuelve un handler que genera el comprobante PDF de los
// envíos con ítems y lo escribe en dir. Con dir vacío no hace nada.
func NewReceiptWriter(gen ReceiptGenerator, dir string, log *logger.Logger) forms.SubmitHandler {
	return func(_ context.Context, sub forms.Submission) error {
		if dir == "" || !sub.HasItems {
			return nil
		}
		data, err := gen.Generate(sub)
		if err != nil {
			return fmt.Errorf("submit: comprobante de %s: %w", sub.ID, err)
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("submit: crear directorio de comprobantes: %w", err)
		}
		path := filepath.Join(dir, sub.OrderNumber+".pdf")
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("submit: escribir comprobante: %w", err)
		}
		log.Info().Str("path", path).Str("entity", sub.Entity).Msg("comprobante generado")
		return nil
	}
}

// Chain compone handlers en secuencia; el primer error aborta la cadena.
func Chain(handlers ...forms.SubmitHandler) forms.SubmitHandler {
	return func(ctx context.Context, sub forms.Submission) error {
		for _, h := range handlers {
			if h == nil {
				continue
			}
			if err := h(ctx, sub); err != nil {
				return err
			}
		}
		return nil
	}
}
