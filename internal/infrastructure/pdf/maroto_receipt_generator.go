// Package pdf implementa la generación del comprobante de pedido.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Farmacia + N° Pedido + Fecha                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SOLICITANTE: Nombre + Email                                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DETALLE: Artículo | Categoría | Cantidad | Precio unit.    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DECISIÓN: Estado + Fecha de decisión                       │
//	│  FOOTER: Proveedor del artículo (si existe)                 │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
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

	appreports "github.com/jhoicas/Farmacia-api/internal/application/reports"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 102, Blue: 82}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 170, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReceiptGenerator implementa reports.ReceiptPDFGenerator usando Maroto v2.
type MarotoReceiptGenerator struct{}

var _ appreports.ReceiptPDFGenerator = (*MarotoReceiptGenerator)(nil)

// NewMarotoReceiptGenerator construye el generador.
func NewMarotoReceiptGenerator() *MarotoReceiptGenerator { return &MarotoReceiptGenerator{} }

// GenerateReceiptPDF genera el comprobante del pedido y devuelve sus bytes.
func (g *MarotoReceiptGenerator) GenerateReceiptPDF(
	_ context.Context,
	order *entity.Order,
	item *entity.StockItem,
	user *entity.User,
	supplier *entity.Supplier,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Comprobante de pedido", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(requesterRow(user))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(detailHeaderRow())
	m.AddRows(detailRow(order, item))

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(decisionRow(order))

	if supplier != nil {
		m.AddRows(line.NewRow(3))
		m.AddRows(supplierRow(supplier))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y N° de pedido + fecha (der).
func headerRow(order *entity.Order) core.Row {
	fecha := order.CreatedAt.Format("02/01/2006 15:04")
	return row.New(18).Add(
		col.New(7).Add(
			text.New("FARMACIA — COMPROBANTE DE PEDIDO", props.Text{
				Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("Pedido N° "+shortID(order.ID), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 2,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 10, Color: colorGray,
			}),
		),
	)
}

// requesterRow: datos del solicitante.
func requesterRow(user *entity.User) core.Row {
	name, email := "—", "—"
	if user != nil {
		name, email = user.Name, user.Email
	}
	return row.New(12).Add(
		col.New(12).Add(
			text.New("SOLICITANTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s   |   Email: %s", name, email),
				props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// detailHeaderRow: cabecera de la línea de detalle.
func detailHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("Artículo", 5, align.Left),
		h("Categoría", 3, align.Center),
		h("Cantidad", 2, align.Center),
		h("Precio unit.", 2, align.Right),
	)
}

// detailRow: la línea única del pedido.
func detailRow(order *entity.Order, item *entity.StockItem) core.Row {
	return row.New(7).Add(
		col.New(5).Add(text.New(item.Name, props.Text{Size: 8, Align: align.Left, Top: 1})),
		col.New(3).Add(text.New(item.Category, props.Text{Size: 8, Align: align.Center, Top: 1})),
		col.New(2).Add(text.New(fmt.Sprintf("%d", order.Quantity), props.Text{Size: 8, Align: align.Center, Top: 1})),
		col.New(2).Add(text.New(item.Price.StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1})),
	)
}

// decisionRow: estado final y fecha de decisión.
func decisionRow(order *entity.Order) core.Row {
	statusColor := colorPrimary
	label := "ACEPTADO"
	if order.Status == entity.OrderStatusRefused {
		statusColor = colorRed
		label = "RECHAZADO"
	}
	decidedAt := "—"
	if order.DecidedAt != nil {
		decidedAt = order.DecidedAt.Format("02/01/2006 15:04")
	}
	return row.New(14).Add(
		col.New(6).Add(
			text.New("DECISIÓN", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 11, Color: statusColor, Top: 6,
			}),
		),
		col.New(6).Add(
			text.New("Fecha de decisión: "+decidedAt, props.Text{
				Size: 8, Align: align.Right, Top: 7, Color: colorGray,
			}),
		),
	)
}

// supplierRow: proveedor del artículo, si está vinculado.
func supplierRow(supplier *entity.Supplier) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New("Proveedor: "+supplier.Name, props.Text{Size: 8, Color: colorGray, Top: 1}),
			text.New(fmt.Sprintf("Tel: %s   |   Email: %s",
				nonEmpty(supplier.Phone, "—"),
				nonEmpty(supplier.Email, "—"),
			), props.Text{Size: 7, Top: 6, Color: colorGray}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// shortID acorta un UUID a su primer segmento para mostrarlo como número de pedido.
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return strings.ToUpper(id[:i])
	}
	return id
}
