package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// TimetableCell is the text block rendered inside one (day, hour) cell.
type TimetableCell struct {
	Code       string
	Title      string
	Instructor string
	Continues  bool
}

// TimetableTable is a week grid ready for rendering: one column per day, one
// row per hour slot.
type TimetableTable struct {
	Days      []string
	StartHour int
	Cells     [][]TimetableCell // [hour][day]
}

// PDFExporter renders a timetable week grid into a PDF document.
type PDFExporter struct{}

// NewPDFExporter constructs a PDF exporter.
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{}
}

// Render creates a landscape PDF with an optional title and the week grid.
func (e *PDFExporter) Render(table TimetableTable, title string) ([]byte, error) {
	if len(table.Days) == 0 {
		return nil, fmt.Errorf("pdf requires at least one day column")
	}
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 15, 10)
	pdf.AddPage()

	if title != "" {
		pdf.SetFont("Arial", "B", 14)
		pdf.CellFormat(0, 10, strings.ToUpper(title), "", 1, "C", false, 0, "")
		pdf.Ln(3)
	}

	const timeColWidth = 22.0
	dayColWidth := (277.0 - timeColWidth) / float64(len(table.Days))

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(timeColWidth, 8, "Time", "1", 0, "C", true, 0, "")
	for _, day := range table.Days {
		pdf.CellFormat(dayColWidth, 8, day, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	for hi, row := range table.Cells {
		hour := table.StartHour + hi
		pdf.SetFont("Arial", "B", 9)
		pdf.CellFormat(timeColWidth, 12, fmt.Sprintf("%02d:00", hour), "1", 0, "C", false, 0, "")
		pdf.SetFont("Arial", "", 8)
		for _, cell := range row {
			text := cellText(cell)
			pdf.CellFormat(dayColWidth, 12, text, "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
	}

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func cellText(cell TimetableCell) string {
	if cell.Continues {
		return "..."
	}
	if cell.Code == "" {
		return ""
	}
	parts := []string{cell.Code}
	if cell.Title != "" {
		parts = append(parts, cell.Title)
	}
	if cell.Instructor != "" {
		parts = append(parts, cell.Instructor)
	}
	return strings.Join(parts, " - ")
}
