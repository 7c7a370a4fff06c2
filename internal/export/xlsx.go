package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/cardealer/backend/internal/models"
)

const salesSheet = "المبيعات"

// WriteSalesXLSX renders the sales list with car details as a styled
// spreadsheet. Text is written in logical order, the viewer performs
// its own bidirectional rendering.
func WriteSalesXLSX(w io.Writer, sales []models.Sale) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", salesSheet); err != nil {
		return fmt.Errorf("assembling the workbook failed: %w", err)
	}

	border := []excelize.Border{
		{Type: "left", Color: "BDC3C7", Style: 1},
		{Type: "right", Color: "BDC3C7", Style: 1},
		{Type: "top", Color: "BDC3C7", Style: 1},
		{Type: "bottom", Color: "BDC3C7", Style: 1},
	}
	center := &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF", Family: "Arial", Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"2C3E50"}},
		Alignment: center,
		Border:    border,
	})
	if err != nil {
		return fmt.Errorf("assembling the workbook failed: %w", err)
	}

	bodyStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Family: "Arial", Size: 10},
		Alignment: center,
		Border:    border,
	})
	if err != nil {
		return fmt.Errorf("assembling the workbook failed: %w", err)
	}

	zebraStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Family: "Arial", Size: 10},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"F9F9F9"}},
		Alignment: center,
		Border:    border,
	})
	if err != nil {
		return fmt.Errorf("assembling the workbook failed: %w", err)
	}

	for i, col := range saleColumns {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("assembling the workbook failed: %w", err)
		}

		if err := f.SetColWidth(salesSheet, name, name, col.xlsxWidth); err != nil {
			return fmt.Errorf("assembling the workbook failed: %w", err)
		}

		cellName, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("assembling the workbook failed: %w", err)
		}

		if err := f.SetCellValue(salesSheet, cellName, col.header); err != nil {
			return fmt.Errorf("assembling the workbook failed: %w", err)
		}

		if err := f.SetCellStyle(salesSheet, cellName, cellName, headerStyle); err != nil {
			return fmt.Errorf("assembling the workbook failed: %w", err)
		}
	}

	for n, sale := range sales {
		// Even spreadsheet rows are filled, counting from the header row
		style := bodyStyle
		if (n+2)%2 == 0 {
			style = zebraStyle
		}

		for i, c := range saleRow(sale) {
			cellName, err := excelize.CoordinatesToCellName(i+1, n+2)
			if err != nil {
				return fmt.Errorf("assembling the workbook failed: %w", err)
			}

			if err := f.SetCellValue(salesSheet, cellName, c.text); err != nil {
				return fmt.Errorf("assembling the workbook failed: %w", err)
			}

			if err := f.SetCellStyle(salesSheet, cellName, cellName, style); err != nil {
				return fmt.Errorf("assembling the workbook failed: %w", err)
			}
		}
	}

	// Keep the header visible while scrolling
	err = f.SetPanes(salesSheet, &excelize.Panes{
		Freeze:      true,
		XSplit:      0,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
	if err != nil {
		return fmt.Errorf("assembling the workbook failed: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("assembling the workbook failed: %w", err)
	}

	return nil
}
