package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// ScheduleEntry is one meeting row in the printable day schedule.
type ScheduleEntry struct {
	Start  string
	End    string
	Title  string
	Status string
}

// ScheduleDocument describes a printable one-day schedule.
type ScheduleDocument struct {
	Title   string
	Date    string
	Note    string
	Entries []ScheduleEntry
}

// SchedulePDF renders day schedules into a basic tabular PDF.
type SchedulePDF struct{}

// NewSchedulePDF constructs a schedule PDF renderer.
func NewSchedulePDF() *SchedulePDF {
	return &SchedulePDF{}
}

// Render creates the PDF document.
func (e *SchedulePDF) Render(doc ScheduleDocument) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 15, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, doc.Title, "", 1, "C", false, 0, "")
	if doc.Note != "" {
		pdf.SetFont("Arial", "I", 10)
		pdf.CellFormat(0, 8, doc.Note, "", 1, "C", false, 0, "")
	}
	pdf.Ln(5)

	headers := []string{"Start", "End", "Title", "Status"}
	widths := []float64{25, 25, 100, 40}
	pdf.SetFont("Arial", "B", 10)
	for i, header := range headers {
		pdf.CellFormat(widths[i], 8, header, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	if len(doc.Entries) == 0 {
		pdf.CellFormat(190, 7, "No meetings scheduled", "1", 1, "C", false, 0, "")
	}
	for _, entry := range doc.Entries {
		cells := []string{entry.Start, entry.End, entry.Title, entry.Status}
		for i, cell := range cells {
			pdf.CellFormat(widths[i], 7, cell, "1", 0, "", false, 0, "")
		}
		pdf.Ln(-1)
	}

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render schedule pdf: %w", err)
	}
	return buf.Bytes(), nil
}
