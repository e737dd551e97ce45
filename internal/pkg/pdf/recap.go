package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/ponpes-albadr/pesantren-backend-go/internal/domain/recap"
)

// RenderMonthlyMatrix renders the month attendance grid as a landscape
// A4 PDF and returns the bytes.
func RenderMonthlyMatrix(matrix recap.MonthlyMatrix, pesantrenName string) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 8, pesantrenName)
	pdf.Ln(7)
	pdf.SetFont("Arial", "", 11)
	monthName := time.Month(matrix.Month).String()
	pdf.Cell(0, 6, fmt.Sprintf("Rekap Kehadiran - %s %d", monthName, matrix.Year))
	pdf.Ln(5)
	if matrix.SubjectName != "" {
		pdf.Cell(0, 6, matrix.SubjectName)
		pdf.Ln(5)
	}
	pdf.Ln(3)

	// Grid: label column plus one narrow column per day
	labelWidth := 50.0
	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	dayWidth := (pageWidth - left - right - labelWidth) / float64(matrix.Days)

	pdf.SetFont("Arial", "B", 7)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(labelWidth, 6, "Kegiatan", "1", 0, "L", true, 0, "")
	for day := 1; day <= matrix.Days; day++ {
		pdf.CellFormat(dayWidth, 6, fmt.Sprintf("%d", day), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 7)
	for _, row := range matrix.Rows {
		pdf.CellFormat(labelWidth, 6, row.Label, "1", 0, "L", false, 0, "")
		for _, cell := range row.Cells {
			pdf.CellFormat(dayWidth, 6, cell, "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "I", 8)
	pdf.Cell(0, 5, "H = Hadir, I = Izin, S = Sakit, A = Alpa, - = tidak ada catatan")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render recap PDF: %w", err)
	}
	return buf.Bytes(), nil
}
