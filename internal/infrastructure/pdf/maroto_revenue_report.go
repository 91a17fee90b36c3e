// Package pdf implementa la exportación del reporte de ingresos del vendedor.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + periodo   │  Emitido para + fecha          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Total | Pagados | Pagos pendientes | Pedidos       │
//	│  DESGLOSE: Delivered / Processing / Pending                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | Tipo | Unidades | Pedidos | Ingreso       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER                                                      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"time"

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

	"github.com/jhoicas/battery-supply-chain/internal/application/analytics"
	"github.com/jhoicas/battery-supply-chain/internal/application/dto"
	"github.com/jhoicas/battery-supply-chain/internal/domain/entity"
	"github.com/jhoicas/battery-supply-chain/pkg/format"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 79, Green: 70, Blue: 229}
	colorSuccess = &props.Color{Red: 16, Green: 185, Blue: 129}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ analytics.RevenueReportGenerator = (*MarotoRevenueReport)(nil)

// MarotoRevenueReport implementa analytics.RevenueReportGenerator usando Maroto v2.
type MarotoRevenueReport struct{}

// NewMarotoRevenueReport construye el generador.
func NewMarotoRevenueReport() *MarotoRevenueReport { return &MarotoRevenueReport{} }

// GenerateRevenuePDF genera el PDF y devuelve sus bytes.
func (g *MarotoRevenueReport) GenerateRevenuePDF(
	ctx context.Context,
	report *dto.RevenueReportDTO,
	issuedTo entity.User,
	issuedAt time.Time,
) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Revenue Report", true).
		WithAuthor(nonEmpty(issuedTo.Company, issuedTo.Name), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report, issuedTo, issuedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(report))
	m.AddRows(breakdownRow(report.Breakdown))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range productRows(report.TopProducts) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título + periodo (izq) y destinatario + fecha (der).
func headerRow(report *dto.RevenueReportDTO, issuedTo entity.User, issuedAt time.Time) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New("Revenue Report", props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New("Period: "+format.StatusLabel(report.Period), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(nonEmpty(issuedTo.Company, "—"), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 1,
			}),
			text.New(issuedTo.Name, props.Text{
				Size: 8, Align: align.Right, Top: 7, Color: colorGray,
			}),
			text.New("Issued: "+issuedAt.Format("2006-01-02 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 13, Color: colorGray,
			}),
		),
	)
}

// summaryRow: cuatro indicadores principales.
func summaryRow(report *dto.RevenueReportDTO) core.Row {
	stat := func(label, value string, color *props.Color) core.Col {
		return col.New(3).Add(
			text.New(value, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Center, Color: color, Top: 2,
			}),
			text.New(label, props.Text{
				Size: 8, Align: align.Center, Color: colorGray, Top: 10,
			}),
		)
	}
	return row.New(18).Add(
		stat("Total Revenue", report.TotalRevenueLabel, colorSuccess),
		stat("Paid Orders", strconv.Itoa(report.PaidOrders), colorPrimary),
		stat("Pending Payments", strconv.Itoa(report.PendingPayments), colorPrimary),
		stat("Total Orders", strconv.Itoa(report.TotalOrders), colorPrimary),
	)
}

// breakdownRow: ingresos por estado de cobro.
func breakdownRow(b dto.RevenueBreakdownDTO) core.Row {
	item := func(label, value string) core.Col {
		return col.New(4).Add(text.New(label+": "+value, props.Text{
			Size: 9, Align: align.Center, Top: 2,
		}))
	}
	return row.New(9).Add(
		item("Delivered", format.Money(b.Delivered)),
		item("Processing", format.Money(b.Processing)),
		item("Pending", format.Money(b.Pending)),
	)
}

// tableHeaderRow: cabecera de la tabla de productos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Product", 4, align.Left),
		h("Type", 3, align.Left),
		h("Units", 1, align.Center),
		h("Orders", 1, align.Center),
		h("Revenue", 3, align.Right),
	)
}

// productRows: una fila por producto del ranking.
func productRows(products []dto.ProductRevenueDTO) []core.Row {
	result := make([]core.Row, 0, len(products))
	for _, p := range products {
		result = append(result, row.New(7).Add(
			col.New(4).Add(text.New(p.Name, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(3).Add(text.New(p.Type, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(1).Add(text.New(strconv.Itoa(p.Quantity), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(1).Add(text.New(strconv.Itoa(p.OrderCount), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(3).Add(text.New(p.RevenueLabel, props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

func footerRow() core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New("Battery Supply Chain · generated from the current sample catalog", props.Text{
			Size: 6.5, Color: colorGray, Top: 2, Align: align.Center,
		}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
