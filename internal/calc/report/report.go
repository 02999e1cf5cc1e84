package report

import (
	"fmt"
	"io"
	"time"

	beam "engineeringcalcs/internal/calc/beam"
	hoop "engineeringcalcs/internal/calc/hoop"

	"github.com/google/uuid"
	"github.com/phpdave11/gofpdf"
)

type Meta struct {
	Project string    `json:"project"`
	Author  string    `json:"author"`
	Title   string    `json:"title"`
	Notes   string    `json:"notes"`
	Date    time.Time `json:"date"`
}

func newDocument(meta Meta, defaultTitle string) *gofpdf.Fpdf {
	if meta.Title == "" {
		meta.Title = defaultTitle
	}
	if meta.Date.IsZero() {
		meta.Date = time.Now()
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(meta.Title, false)
	pdf.SetAuthor(meta.Author, false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, meta.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", meta.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", meta.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", meta.Date.Format("2006-01-02")))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Report: %s", uuid.New().String()))
	pdf.Ln(10)
	return pdf
}

func tableRow(pdf *gofpdf.Fpdf, widths []float64, cells []string, bold bool) {
	style := ""
	if bold {
		style = "B"
	}
	pdf.SetFont("Helvetica", style, 10)
	for i, c := range cells {
		align := "R"
		if i == 0 {
			align = "L"
		}
		pdf.CellFormat(widths[i], 7, c, "1", 0, align, bold, 0, "")
	}
	pdf.Ln(-1)
}

func finish(pdf *gofpdf.Fpdf, w io.Writer, notes string) error {
	if notes != "" {
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, notes, "", "L", false)
	}
	if err := pdf.Error(); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	return pdf.Output(w)
}

// Hoop writes the resolved body-hole offsets of a dataset, one table per side.
func Hoop(w io.Writer, meta Meta, d hoop.Dataset, resolved hoop.Configuration) error {
	if !resolved.Resolved() {
		return fmt.Errorf("report: %w", hoop.ErrUnresolved)
	}
	pdf := newDocument(meta, "Roll Hoop Body Hole Offsets")
	pdf.SetFillColor(230, 240, 240)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Dataset: %s  (%s)", d.Name, d.Description))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Height to hole: outer %g mm, inner %g mm, rear %g mm",
		d.Heights.Outer, d.Heights.Inner, d.Heights.Rear))
	pdf.Ln(8)

	widths := []float64{22, 30, 30, 30, 38, 30}
	for _, name := range hoop.SideNames() {
		side := resolved.Side(name)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, string(name))
		pdf.Ln(8)
		tableRow(pdf, widths, []string{"leg", "f/b angle", "f/b offset", "ns/os angle", "ns/os offset", "move"}, true)
		for _, leg := range hoop.LegNames() {
			p := side.Leg(leg)
			x, y := hoop.PlaneLabels(*p)
			tableRow(pdf, widths, []string{
				string(leg),
				fmt.Sprintf("%.2f deg", p.FrontToBack.Angle),
				fmt.Sprintf("%.2f mm", p.FrontToBack.Value()),
				fmt.Sprintf("%.2f deg", p.NsToOs.Angle),
				fmt.Sprintf("%.2f mm", p.NsToOs.Value()),
				fmt.Sprintf("%s / %s", x.ASCII(), y.ASCII()),
			}, false)
		}
		pdf.Ln(6)
	}
	return finish(pdf, w, meta.Notes)
}

// Beam writes one row per beam check.
func Beam(w io.Writer, meta Meta, results []beam.Result) error {
	if len(results) == 0 {
		return fmt.Errorf("report: no results")
	}
	pdf := newDocument(meta, "Beam Deflection Check")
	pdf.SetFillColor(230, 240, 240)

	widths := []float64{34, 18, 20, 22, 22, 24, 24, 26}
	tableRow(pdf, widths, []string{"section", "material", "span", "point", "udl", "deflection", "limit", "verdict"}, true)
	for _, r := range results {
		p := beam.Pretty(r)
		verdict := "OK"
		if !r.IsDeflectionSafe {
			verdict = "UNSAFE"
		}
		tableRow(pdf, widths, []string{
			p.BeamName,
			p.Material,
			p.BeamLength,
			p.PointLoad,
			fmt.Sprintf("%g kN/m", r.UDLKNM),
			p.MaxDeflection,
			p.SafeDeflectionLimit,
			verdict,
		}, false)
	}
	return finish(pdf, w, meta.Notes)
}
