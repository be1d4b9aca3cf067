package apprentices

import (
    "context"
    "path/filepath"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func scoresWorkbook(t *testing.T) string {
    t.Helper()
    path := filepath.Join(t.TempDir(), "scores.xlsx")
    _, err := SpreadsheetCreator{}.Run(context.Background(), map[string]any{
        "filename": path,
        "sheet":    "Scores",
        "data": []any{
            []any{"Name", "Score"},
            []any{"Ada", float64(92)},
            []any{"Grace", float64(85)},
        },
    })
    require.NoError(t, err)
    return path
}

func TestSpreadsheetReaderListMode(t *testing.T) {
    path := scoresWorkbook(t)

    out, err := SpreadsheetReader{}.Run(context.Background(), map[string]any{"filename": path})
    require.NoError(t, err)
    rows := out.([][]string)
    require.Len(t, rows, 3)
    assert.Equal(t, []string{"Name", "Score"}, rows[0])
    assert.Equal(t, []string{"Ada", "92"}, rows[1])
    assert.Equal(t, []string{"Grace", "85"}, rows[2])
}

func TestSpreadsheetReaderDictMode(t *testing.T) {
    path := scoresWorkbook(t)

    out, err := SpreadsheetReader{}.Run(context.Background(), map[string]any{
        "filename":  path,
        "sheet_name": "Scores",
        "read_mode": "dict",
    })
    require.NoError(t, err)
    recs := out.([]map[string]string)
    require.Len(t, recs, 2, "header row becomes keys, not a record")
    assert.Equal(t, "Ada", recs[0]["Name"])
    assert.Equal(t, "85", recs[1]["Score"])
}

func TestSpreadsheetReaderRange(t *testing.T) {
    path := scoresWorkbook(t)

    out, err := SpreadsheetReader{}.Run(context.Background(), map[string]any{
        "filename":   path,
        "read_range": "A2:B3",
    })
    require.NoError(t, err)
    rows := out.([][]string)
    require.Len(t, rows, 2)
    assert.Equal(t, []string{"Ada", "92"}, rows[0])
    assert.Equal(t, []string{"Grace", "85"}, rows[1])
}

func TestSpreadsheetReaderAllSheets(t *testing.T) {
    path := scoresWorkbook(t)

    out, err := SpreadsheetReader{}.Run(context.Background(), map[string]any{
        "filename":   path,
        "sheet_name": "all",
    })
    require.NoError(t, err)
    all := out.(map[string]any)
    require.Contains(t, all, "Scores")
    assert.Len(t, all["Scores"].([][]string), 3)
}

func TestSpreadsheetReaderErrors(t *testing.T) {
    _, err := SpreadsheetReader{}.Run(context.Background(), map[string]any{})
    assert.Error(t, err)

    _, err = SpreadsheetReader{}.Run(context.Background(), map[string]any{
        "filename": filepath.Join(t.TempDir(), "missing.xlsx"),
    })
    require.Error(t, err)
    assert.Contains(t, err.Error(), "not found")

    path := scoresWorkbook(t)
    _, err = SpreadsheetReader{}.Run(context.Background(), map[string]any{
        "filename":   path,
        "sheet_name": "Bogus",
    })
    require.Error(t, err)
    assert.Contains(t, err.Error(), "available sheets")

    _, err = SpreadsheetReader{}.Run(context.Background(), map[string]any{
        "filename":   path,
        "read_range": "A1",
    })
    require.Error(t, err)
    assert.Contains(t, err.Error(), "invalid range")
}
