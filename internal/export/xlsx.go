package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/Dromgooles/parser-files/internal/domain"
)

const xlsxSheet = "Line Items"

// WriteXLSX renders the extracted items as a single-sheet workbook with the
// standard table columns, bold header, and widened description column.
func WriteXLSX(w io.Writer, items []domain.LineItem) error {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(xlsxSheet)
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("drop default sheet: %w", err)
	}

	header := make([]interface{}, len(TableColumns))
	for i, c := range TableColumns {
		header[i] = c
	}
	if err := f.SetSheetRow(xlsxSheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		lastCol, _ := excelize.ColumnNumberToName(len(TableColumns))
		f.SetCellStyle(xlsxSheet, "A1", lastCol+"1", style)
	}

	for i, item := range items {
		row := itemRow(item)
		cells := make([]interface{}, len(row))
		for j, v := range row {
			cells[j] = v
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(xlsxSheet, cell, &cells); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	f.SetColWidth(xlsxSheet, "E", "E", 48)

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
