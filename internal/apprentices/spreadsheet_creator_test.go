package apprentices

import (
    "context"
    "path/filepath"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
    "github.com/xuri/excelize/v2"
)

func TestSpreadsheetCreator(t *testing.T) {
    dir := t.TempDir()
    target := filepath.Join(dir, "report")

    out, err := SpreadsheetCreator{}.Run(context.Background(), map[string]any{
        "filename": target,
        "sheet":    "Sales",
        "data": []any{
            []any{"Region", "Total"},
            []any{"North", float64(120)},
            []any{"South", float64(80)},
        },
    })
    require.NoError(t, err)
    assert.Contains(t, out.(string), "Success:")

    wb, err := excelize.OpenFile(target + ".xlsx")
    require.NoError(t, err, ".xlsx extension is appended when missing")
    defer wb.Close()

    v, err := wb.GetCellValue("Sales", "A1")
    require.NoError(t, err)
    assert.Equal(t, "Region", v)
    v, err = wb.GetCellValue("Sales", "B3")
    require.NoError(t, err)
    assert.Equal(t, "80", v)
}

func TestSpreadsheetCreatorRejectsBadData(t *testing.T) {
    _, err := SpreadsheetCreator{}.Run(context.Background(), map[string]any{"filename": "x.xlsx"})
    assert.Error(t, err)

    _, err = SpreadsheetCreator{}.Run(context.Background(), map[string]any{
        "filename": "x.xlsx",
        "data":     []any{"not a row"},
    })
    assert.Error(t, err)
}
