package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/chronnix/chronnix-backend-go/internal/pkg/timecalc"
)

const maxColumnWidth = 40

// renderWorkbook turns a pure sheet into a styled xlsx file: header fill,
// zebra rows, thin borders, frozen panes, landscape print setup and a
// euro number format on the payroll money columns.
func renderWorkbook(sheet timecalc.Sheet, kind timecalc.ExportKind) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	name := sheet.Name
	f.SetSheetName("Sheet1", name)

	for i, row := range sheet.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(name, cell, &row); err != nil {
			return nil, err
		}
	}

	if err := applyStyles(f, name, sheet, kind); err != nil {
		return nil, err
	}
	if err := applyLayout(f, name, sheet); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func thinBorders() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: "D9D9D9", Style: 1},
		{Type: "right", Color: "D9D9D9", Style: 1},
		{Type: "top", Color: "D9D9D9", Style: 1},
		{Type: "bottom", Color: "D9D9D9", Style: 1},
	}
}

func applyStyles(f *excelize.File, name string, sheet timecalc.Sheet, kind timecalc.ExportKind) error {
	if len(sheet.Rows) == 0 {
		return nil
	}

	rowCount := len(sheet.Rows)
	colCount := len(sheet.Rows[0])
	lastCol, err := excelize.ColumnNumberToName(colCount)
	if err != nil {
		return err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"2F5496"}, Pattern: 1},
		Border:    thinBorders(),
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(name, "A1", lastCol+"1", headerStyle); err != nil {
		return err
	}

	bodyStyle, err := f.NewStyle(&excelize.Style{Border: thinBorders()})
	if err != nil {
		return err
	}
	zebraStyle, err := f.NewStyle(&excelize.Style{
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"F2F2F2"}, Pattern: 1},
		Border: thinBorders(),
	})
	if err != nil {
		return err
	}

	for row := 2; row < rowCount; row++ {
		style := bodyStyle
		if row%2 == 0 {
			style = zebraStyle
		}
		if err := f.SetCellStyle(name, fmt.Sprintf("A%d", row), fmt.Sprintf("%s%d", lastCol, row), style); err != nil {
			return err
		}
	}

	totalStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"DDEBF7"}, Pattern: 1},
		Border: thinBorders(),
	})
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(name, fmt.Sprintf("A%d", rowCount), fmt.Sprintf("%s%d", lastCol, rowCount), totalStyle); err != nil {
		return err
	}

	if kind == timecalc.ExportPayroll {
		return applyEuroFormat(f, name, rowCount)
	}

	return nil
}

// applyEuroFormat puts a €0.00 format on the rate and cost columns of
// the payroll sheet (C and E), leaving the em-dash string cells alone.
func applyEuroFormat(f *excelize.File, name string, rowCount int) error {
	euroFmt := "€#,##0.00"
	euroStyle, err := f.NewStyle(&excelize.Style{
		Border:       thinBorders(),
		CustomNumFmt: &euroFmt,
	})
	if err != nil {
		return err
	}
	euroTotalStyle, err := f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Bold: true},
		Fill:         excelize.Fill{Type: "pattern", Color: []string{"DDEBF7"}, Pattern: 1},
		Border:       thinBorders(),
		CustomNumFmt: &euroFmt,
	})
	if err != nil {
		return err
	}

	for row := 2; row < rowCount; row++ {
		for _, col := range []string{"C", "E"} {
			cell := fmt.Sprintf("%s%d", col, row)
			if value, err := f.GetCellValue(name, cell); err == nil && value != timecalc.EmDash {
				if err := f.SetCellStyle(name, cell, cell, euroStyle); err != nil {
					return err
				}
			}
		}
	}

	cell := fmt.Sprintf("E%d", rowCount)
	return f.SetCellStyle(name, cell, cell, euroTotalStyle)
}

func applyLayout(f *excelize.File, name string, sheet timecalc.Sheet) error {
	if len(sheet.Rows) == 0 {
		return nil
	}

	// Freeze the header row and the worker-name column.
	if err := f.SetPanes(name, &excelize.Panes{
		Freeze:      true,
		XSplit:      1,
		YSplit:      1,
		TopLeftCell: "B2",
		ActivePane:  "bottomRight",
	}); err != nil {
		return err
	}

	// Size each column to its widest cell, capped so the detail sheet
	// stays printable.
	for col := 0; col < len(sheet.Rows[0]); col++ {
		width := 10.0
		for _, row := range sheet.Rows {
			if col >= len(row) {
				continue
			}
			if cellWidth := float64(len(fmt.Sprint(row[col]))) + 2; cellWidth > width {
				width = cellWidth
			}
		}
		if width > maxColumnWidth {
			width = maxColumnWidth
		}
		colName, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(name, colName, colName, width); err != nil {
			return err
		}
	}

	orientation := "landscape"
	fitToWidth := 1
	fitToHeight := 0
	return f.SetPageLayout(name, &excelize.PageLayoutOptions{
		Orientation: &orientation,
		FitToWidth:  &fitToWidth,
		FitToHeight: &fitToHeight,
	})
}
