package apprentices

import (
    "context"
    "fmt"
    "strings"

    "github.com/xuri/excelize/v2"
)

// SpreadsheetCreator writes a rows-of-cells table into an .xlsx workbook.
type SpreadsheetCreator struct{}

func (SpreadsheetCreator) Name() string { return "spreadsheet_creator" }

func (SpreadsheetCreator) Describe() string {
    return `{"filename": "sheet.xlsx", "sheet": "Sheet1 (optional)", "data": [["H1", "H2"], ["R1C1", "R1C2"]]}`
}

func (SpreadsheetCreator) Run(ctx context.Context, payload map[string]any) (any, error) {
    filename, _ := payload["filename"].(string)
    if filename == "" {
        return nil, fmt.Errorf("missing 'filename' in payload")
    }
    if !strings.HasSuffix(strings.ToLower(filename), ".xlsx") {
        filename += ".xlsx"
    }
    rows, ok := payload["data"].([]any)
    if !ok || len(rows) == 0 {
        return nil, fmt.Errorf("missing or empty 'data' in payload")
    }
    sheet := "Sheet1"
    if s, ok := payload["sheet"].(string); ok && s != "" {
        sheet = s
    }

    wb := excelize.NewFile()
    defer wb.Close()
    if sheet != "Sheet1" {
        if err := wb.SetSheetName("Sheet1", sheet); err != nil {
            return nil, fmt.Errorf("name sheet %q: %w", sheet, err)
        }
    }

    cells := 0
    for ri, rowAny := range rows {
        row, ok := rowAny.([]any)
        if !ok {
            return nil, fmt.Errorf("row %d is not an array", ri+1)
        }
        for ci, val := range row {
            cell, err := excelize.CoordinatesToCellName(ci+1, ri+1)
            if err != nil { return nil, err }
            if err := wb.SetCellValue(sheet, cell, val); err != nil {
                return nil, fmt.Errorf("set cell %s: %w", cell, err)
            }
            cells++
        }
    }

    if err := wb.SaveAs(filename); err != nil {
        return nil, fmt.Errorf("save %s: %w", filename, err)
    }
    return fmt.Sprintf("Success: Created spreadsheet %s (%d rows, %d cells).", filename, len(rows), cells), nil
}
