package apprentices

import (
    "context"
    "fmt"
    "log"
    "os"
    "strings"

    "github.com/xuri/excelize/v2"
)

// SpreadsheetReader reads tabular data back out of an .xlsx workbook, as
// rows of cells or as header-keyed records.
type SpreadsheetReader struct{}

func (SpreadsheetReader) Name() string { return "spreadsheet_reader" }

func (SpreadsheetReader) Describe() string {
    return `{"filename": "sheet.xlsx", "sheet_name": "Sheet1, all, or omit for active", "read_mode": "list or dict", "read_range": "A1:D20 (optional)"}`
}

func (SpreadsheetReader) Run(ctx context.Context, payload map[string]any) (any, error) {
    filename, _ := payload["filename"].(string)
    if filename == "" {
        return nil, fmt.Errorf("missing 'filename' in payload")
    }
    if _, err := os.Stat(filename); err != nil {
        return nil, fmt.Errorf("file not found at %q", filename)
    }
    mode := "list"
    if m, ok := payload["read_mode"].(string); ok && m != "" {
        mode = strings.ToLower(m)
    }
    sheetName, _ := payload["sheet_name"].(string)
    readRange, _ := payload["read_range"].(string)

    wb, err := excelize.OpenFile(filename)
    if err != nil {
        return nil, fmt.Errorf("open workbook %q: %w", filename, err)
    }
    defer wb.Close()

    // "all" walks every sheet; a range makes no sense across sheets, so it
    // is ignored here like a single-sheet default read.
    if strings.EqualFold(sheetName, "all") {
        all := map[string]any{}
        for _, name := range wb.GetSheetList() {
            rows, err := sheetRows(wb, name, "")
            if err != nil { return nil, err }
            if mode == "dict" {
                all[name] = rowsToRecords(rows)
            } else {
                all[name] = rows
            }
        }
        return all, nil
    }

    if sheetName == "" {
        sheetName = wb.GetSheetName(wb.GetActiveSheetIndex())
        log.Printf("apprentice: spreadsheet_reader: no sheet specified, reading %q", sheetName)
    } else if !hasSheet(wb, sheetName) {
        return nil, fmt.Errorf("sheet %q not found, available sheets: %v", sheetName, wb.GetSheetList())
    }

    rows, err := sheetRows(wb, sheetName, readRange)
    if err != nil { return nil, err }
    if mode == "dict" { return rowsToRecords(rows), nil }
    return rows, nil
}

func hasSheet(wb *excelize.File, name string) bool {
    for _, s := range wb.GetSheetList() {
        if s == name { return true }
    }
    return false
}

// sheetRows reads a whole sheet, or a rectangular range like "A1:D20", as
// rows of cell strings. Rows with no content are dropped.
func sheetRows(wb *excelize.File, sheet, readRange string) ([][]string, error) {
    var rows [][]string
    if readRange == "" {
        all, err := wb.GetRows(sheet)
        if err != nil {
            return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
        }
        rows = all
    } else {
        parts := strings.SplitN(readRange, ":", 2)
        if len(parts) != 2 {
            return nil, fmt.Errorf("invalid range %q, expected a form like A1:D20", readRange)
        }
        c1, r1, err := excelize.CellNameToCoordinates(strings.TrimSpace(parts[0]))
        if err != nil {
            return nil, fmt.Errorf("invalid range %q: %w", readRange, err)
        }
        c2, r2, err := excelize.CellNameToCoordinates(strings.TrimSpace(parts[1]))
        if err != nil {
            return nil, fmt.Errorf("invalid range %q: %w", readRange, err)
        }
        if c2 < c1 { c1, c2 = c2, c1 }
        if r2 < r1 { r1, r2 = r2, r1 }
        for r := r1; r <= r2; r++ {
            row := make([]string, 0, c2-c1+1)
            for c := c1; c <= c2; c++ {
                cell, err := excelize.CoordinatesToCellName(c, r)
                if err != nil { return nil, err }
                v, err := wb.GetCellValue(sheet, cell)
                if err != nil {
                    return nil, fmt.Errorf("read cell %s: %w", cell, err)
                }
                row = append(row, v)
            }
            rows = append(rows, row)
        }
    }

    filled := make([][]string, 0, len(rows))
    for _, row := range rows {
        if rowHasContent(row) { filled = append(filled, row) }
    }
    return filled, nil
}

func rowHasContent(row []string) bool {
    for _, c := range row {
        if c != "" { return true }
    }
    return false
}

// rowsToRecords keys every row by the first row's cells. Extra cells beyond
// the header are dropped, short rows produce partial records.
func rowsToRecords(rows [][]string) []map[string]string {
    records := []map[string]string{}
    if len(rows) == 0 { return records }
    header := rows[0]
    for _, row := range rows[1:] {
        rec := map[string]string{}
        for i := 0; i < len(header) && i < len(row); i++ {
            rec[header[i]] = row[i]
        }
        records = append(records, rec)
    }
    return records
}
