package export

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/FranksOps/prospect/internal/lead"
)

// ensure XLSX implements Exporter
var _ Exporter = XLSX{}

// XLSX writes the lead table as a spreadsheet workbook with a single
// "Leads" sheet.
type XLSX struct{}

// Ext implements Exporter.
func (XLSX) Ext() string { return "xlsx" }

const sheetName = "Leads"

// Export implements Exporter.
func (XLSX) Export(ctx context.Context, path string, leads []*lead.Lead) error {
	wb := excelize.NewFile()
	defer wb.Close()

	idx, err := wb.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	wb.SetActiveSheet(idx)
	if err := wb.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to drop default sheet: %w", err)
	}

	header := make([]any, len(lead.Columns))
	for i, col := range lead.Columns {
		header[i] = col
	}
	if err := writeRow(wb, 1, header); err != nil {
		return err
	}

	for i, l := range leads {
		if err := ctx.Err(); err != nil {
			return err
		}
		values := l.Row()
		row := make([]any, len(values))
		for j, v := range values {
			row[j] = v
		}
		if err := writeRow(wb, i+2, row); err != nil {
			return err
		}
	}

	if err := wb.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func writeRow(wb *excelize.File, rowNum int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return fmt.Errorf("failed to address row %d: %w", rowNum, err)
	}
	if err := wb.SetSheetRow(sheetName, cell, &values); err != nil {
		return fmt.Errorf("failed to write row %d: %w", rowNum, err)
	}
	return nil
}
