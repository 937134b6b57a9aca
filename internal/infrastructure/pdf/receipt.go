// Package pdf genera el comprobante PDF de un envío (orden de venta o cobro
// POS) usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Suite + entidad  │  N° Orden + Fecha               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CAMPOS DE CABECERA (nombre: valor)                         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Producto | P.Unit | Desc% | Total línea      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL                                                      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"sort"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/tu-usuario/suite-pro/internal/application/forms"
	domforms "github.com/tu-usuario/suite-pro/internal/domain/forms"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var titler = cases.Title(language.English)

// ReceiptGenerator implementa submit.ReceiptGenerator usando Maroto v2.
type ReceiptGenerator struct{}

// NewReceiptGenerator construye el generador.
func NewReceiptGenerator() *ReceiptGenerator { return &ReceiptGenerator{} }

// Generate genera el comprobante y devuelve sus bytes.
func (g *ReceiptGenerator) Generate(sub forms.Submission) ([]byte, error) {
	title := entityTitle(sub.Entity)

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Comprobante "+title, true).
		WithAuthor("Suite Pro", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(title, sub))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	for _, r := range fieldRows(sub.Fields) {
		m.AddRows(r)
	}

	if sub.HasItems {
		m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
		m.AddRows(tableHeaderRow())
		for _, r := range itemRows(sub.Items) {
			m.AddRows(r)
		}
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(sub))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar comprobante: %w", err)
	}
	return doc.GetBytes(), nil
}

// entityTitle convierte el nombre de entidad a título legible:
// "sales-order" → "Sales Order".
func entityTitle(entity string) string {
	return titler.String(strings.ReplaceAll(entity, "-", " "))
}

// headerRow: suite + entidad (izq) y número + fecha (der).
func headerRow(title string, sub forms.Submission) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New("Suite Pro", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(title, props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("COMPROBANTE DE ENVÍO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(sub.OrderNumber, sub.ID), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+sub.SubmittedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// fieldRows: una fila por campo de cabecera, en orden estable.
func fieldRows(fields map[string]any) []core.Row {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	result := make([]core.Row, 0, len(names))
	for _, name := range names {
		result = append(result, row.New(6).Add(
			col.New(4).Add(text.New(titler.String(name)+":", props.Text{
				Style: fontstyle.Bold, Size: 8, Top: 1,
			})),
			col.New(8).Add(text.New(domforms.String(fields[name]), props.Text{
				Size: 8, Top: 1, Color: colorGray,
			})),
		))
	}
	return result
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 2, align.Center),
		h("Producto", 5, align.Left),
		h("P.Unit", 2, align.Right),
		h("Desc.%", 1, align.Center),
		h("Total", 2, align.Right),
	)
}

// itemRows: una fila por ítem calificado.
func itemRows(items []domforms.Row) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				domforms.Number(it.Values[domforms.KeyQuantity]).StringFixed(0),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(5).Add(text.New(
				domforms.String(it.Values["productName"]),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				"$"+domforms.Number(it.Values[domforms.KeyUnitPrice]).StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				domforms.Number(it.Values[domforms.KeyDiscount]).StringFixed(0)+"%",
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				"$"+domforms.RowTotal(it).StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

func totalRow(sub forms.Submission) core.Row {
	return row.New(10).Add(
		col.New(8).Add(text.New("TOTAL:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2, Top: 2,
		})),
		col.New(4).Add(text.New("$"+sub.Total.StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1, Top: 2,
		})),
	)
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
