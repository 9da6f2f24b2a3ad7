// Package pdf genera el reporte de candidatos de una oferta.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título de la oferta + empresa  │  Fecha de emisión  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: ubicación | tipo | salario | total de candidatos   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: # | Usuario | Email | Fecha | Estado                 │
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

	"github.com/jhoicas/Empleos-api/internal/application/ports"
	"github.com/jhoicas/Empleos-api/internal/domain/entity"
)

var _ ports.ApplicantsReportGenerator = (*MarotoReportGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa ports.ApplicantsReportGenerator usando Maroto v2.
type MarotoReportGenerator struct {
	now func() time.Time
}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator {
	return &MarotoReportGenerator{now: time.Now}
}

// GenerateApplicantsReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateApplicantsReport(
	_ context.Context,
	job *entity.Job,
	apps []*entity.Application,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Candidatos: "+job.Title, true).
		WithAuthor(nonEmpty(job.CompanyName, job.EmployerUsername), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(job, g.now()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(job, len(apps)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	if len(apps) == 0 {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("Aún no hay postulaciones para esta oferta.", props.Text{
				Size: 9, Align: align.Center, Color: colorGray, Top: 3,
			}),
		)))
	}
	for _, r := range applicantRows(apps) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(row.New(8).Add(col.New(12).Add(
		text.New("Documento confidencial: contiene datos personales de los candidatos.", props.Text{
			Size: 6.5, Color: colorGray, Top: 2,
		}),
	)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar reporte: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título y empresa (izq), fecha de emisión (der).
func headerRow(job *entity.Job, now time.Time) core.Row {
	return row.New(18).Add(
		col.New(8).Add(
			text.New(job.Title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(job.CompanyName, job.EmployerUsername), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("REPORTE DE CANDIDATOS", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Emitido: "+now.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// summaryRow: datos de la oferta en una línea.
func summaryRow(job *entity.Job, total int) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Ubicación: %s   |   Tipo: %s   |   Salario: %s   |   Categoría: %s",
				nonEmpty(job.Location, "-"),
				job.JobType.Label(),
				salaryRange(job),
				nonEmpty(job.CategoryName, "-"),
			), props.Text{Size: 8, Top: 1, Color: colorGray}),
			text.New("Total de candidatos: "+strconv.Itoa(total), props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 7,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("#", 1, align.Center),
		h("Usuario", 3, align.Left),
		h("Email", 4, align.Left),
		h("Fecha", 2, align.Center),
		h("Estado", 2, align.Center),
	)
}

// applicantRows: una fila por postulación.
func applicantRows(apps []*entity.Application) []core.Row {
	result := make([]core.Row, 0, len(apps))
	for i, a := range apps {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(strconv.Itoa(i+1), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(3).Add(text.New(a.ApplicantUsername, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(4).Add(text.New(a.ApplicantEmail, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(a.AppliedAt.Format("02/01/2006"), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(statusLabel(a.Status), props.Text{Size: 8, Align: align.Center, Top: 1})),
		))
	}
	return result
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// salaryRange "$40.000 - $60.000", un solo extremo o "No especificado".
func salaryRange(job *entity.Job) string {
	money := func(v string) string { return "$" + formatMoney(v) }
	switch {
	case job.SalaryMin.Valid && job.SalaryMax.Valid:
		return money(job.SalaryMin.Decimal.StringFixed(0)) + " - " + money(job.SalaryMax.Decimal.StringFixed(0))
	case job.SalaryMin.Valid:
		return "desde " + money(job.SalaryMin.Decimal.StringFixed(0))
	case job.SalaryMax.Valid:
		return "hasta " + money(job.SalaryMax.Decimal.StringFixed(0))
	default:
		return "No especificado"
	}
}

func statusLabel(s entity.ApplicationStatus) string {
	switch s {
	case entity.ApplicationPending:
		return "Pendiente"
	case entity.ApplicationReviewed:
		return "Revisada"
	case entity.ApplicationAccepted:
		return "Aceptada"
	case entity.ApplicationRejected:
		return "Rechazada"
	default:
		return string(s)
	}
}

// formatMoney inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func formatMoney(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
