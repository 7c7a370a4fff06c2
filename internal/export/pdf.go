package export

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"

	"github.com/cardealer/backend/internal/artext"
	"github.com/cardealer/backend/internal/fonts"
	"github.com/cardealer/backend/internal/models"
)

// Table colors, shared with the XLSX exporter.
var (
	headerFill = [3]int{0x2c, 0x3e, 0x50}
	zebraFill  = [3]int{0xf9, 0xf9, 0xf9}
	gridColor  = [3]int{0xbd, 0xc3, 0xc7}
)

const (
	sideMargin     = 15.0   // mm
	verticalMargin = 19.05  // 0.75 inch
	titleFontSize  = 16.0   // pt
	headerFontSize = 9.0    // pt
	bodyFontSize   = 8.0    // pt
	headerRowH     = 8.0    // mm
	bodyRowH       = 6.5    // mm
)

// WriteCarsPDF renders the car list as a paginated PDF table.
func WriteCarsPDF(w io.Writer, cars []models.Car) error {
	rows := make([][]cell, 0, len(cars))
	for _, car := range cars {
		rows = append(rows, carRow(car))
	}

	return writePDFTable(w, "قائمة السيارات", carColumns, rows)
}

// WriteSalesPDF renders the sales list with car details as a paginated
// PDF table. The sales' car associations must be loaded.
func WriteSalesPDF(w io.Writer, sales []models.Sale) error {
	rows := make([][]cell, 0, len(sales))
	for _, sale := range sales {
		rows = append(rows, saleRow(sale))
	}

	return writePDFTable(w, "قائمة المبيعات", saleColumns, rows)
}

// writePDFTable assembles the document fully in memory and writes it out
// in one pass, so a failing assembly never produces a partial document.
func writePDFTable(w io.Writer, title string, columns []column, rows [][]cell) error {
	doc, family := newDocument(fonts.Resolve())
	if doc.Err() {
		// Registering the resolved font failed, degrade to a font that
		// needs no registration
		doc, family = newDocument(fonts.Font{Family: "Helvetica"})
	}

	pageWidth, pageHeight := doc.GetPageSize()
	printable := pageWidth - 2*sideMargin

	var weightSum float64
	for _, col := range columns {
		weightSum += col.pdfWidth
	}

	widths := make([]float64, len(columns))
	for i, col := range columns {
		widths[i] = col.pdfWidth / weightSum * printable
	}

	doc.AddPage()

	// Centered title
	doc.SetFont(family, "B", titleFontSize)
	doc.SetTextColor(headerFill[0], headerFill[1], headerFill[2])
	doc.CellFormat(printable, 10, artext.Shape(title), "", 1, "C", false, 0, "")
	doc.Ln(4)

	doc.SetDrawColor(gridColor[0], gridColor[1], gridColor[2])

	header := func() {
		doc.SetFont(family, "B", headerFontSize)
		doc.SetFillColor(headerFill[0], headerFill[1], headerFill[2])
		doc.SetTextColor(255, 255, 255)

		for i, col := range columns {
			doc.CellFormat(widths[i], headerRowH, artext.Shape(col.header), "1", 0, "CM", true, 0, "")
		}
		doc.Ln(-1)
	}

	header()

	doc.SetFont(family, "", bodyFontSize)
	doc.SetTextColor(0, 0, 0)

	for n, row := range rows {
		// Repeat the header after a page break
		if doc.GetY()+bodyRowH > pageHeight-verticalMargin {
			doc.AddPage()
			header()
			doc.SetFont(family, "", bodyFontSize)
			doc.SetTextColor(0, 0, 0)
		}

		fill := n%2 == 1
		doc.SetFillColor(zebraFill[0], zebraFill[1], zebraFill[2])

		for i, c := range row {
			text := c.text
			if c.shaped {
				text = artext.Shape(text)
			}

			doc.CellFormat(widths[i], bodyRowH, text, "1", 0, "CM", fill, 0, "")
		}
		doc.Ln(-1)
	}

	if err := doc.Output(w); err != nil {
		return fmt.Errorf("assembling the PDF document failed: %w", err)
	}

	return nil
}

// newDocument creates an A4 portrait document and registers the font.
func newDocument(font fonts.Font) (*fpdf.Fpdf, string) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(sideMargin, verticalMargin, sideMargin)
	doc.SetAutoPageBreak(false, verticalMargin)

	family := font.Family
	if font.Path != "" {
		doc.AddUTF8Font(family, "", font.Path)
		doc.AddUTF8Font(family, "B", font.Path)
	}

	return doc, family
}
