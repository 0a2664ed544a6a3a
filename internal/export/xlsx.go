package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

var header = []interface{}{
	"Employee", "Role", "Shifts", "Days Worked", "Hours",
	"Cash Tips", "Credit Tips", "Credit Fee", "Total",
}

// XLSX renders the summary as a workbook with a single "Week <n>" sheet:
// a header row, one row per employee and a GRAND TOTAL row.
func (s *Summary) XLSX() ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := fmt.Sprintf("Week %d", s.Week)
	if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), sheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("failed to create style: %w", err)
	}
	money, err := f.NewStyle(&excelize.Style{NumFmt: 2}) // 0.00
	if err != nil {
		return nil, fmt.Errorf("failed to create style: %w", err)
	}
	if err := f.SetColStyle(sheet, "F:I", money); err != nil {
		return nil, fmt.Errorf("failed to style columns: %w", err)
	}

	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}
	if err := f.SetRowStyle(sheet, 1, 1, bold); err != nil {
		return nil, fmt.Errorf("failed to style header: %w", err)
	}

	row := 2
	for _, l := range s.Lines {
		if err := writeLine(f, sheet, row, l, string(l.Role), l.DaysLabel()); err != nil {
			return nil, err
		}
		row++
	}
	if err := writeLine(f, sheet, row, s.GrandTotal, "", ""); err != nil {
		return nil, err
	}
	if err := f.SetRowStyle(sheet, row, row, bold); err != nil {
		return nil, fmt.Errorf("failed to style total row: %w", err)
	}

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeLine(f *excelize.File, sheet string, row int, l Line, role, days string) error {
	values := []interface{}{
		l.Name,
		role,
		l.Shifts,
		days,
		l.Hours.InexactFloat64(),
		l.Cash.InexactFloat64(),
		l.Credit.InexactFloat64(),
		l.Fee.InexactFloat64(),
		l.Total.InexactFloat64(),
	}
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("failed to address row %d: %w", row, err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write row %d: %w", row, err)
	}
	return nil
}
