package apprentices

import (
    "context"
    "encoding/json"
    "fmt"
    "os"
    "path/filepath"
    "strings"
)

// FileWriter writes content to a file, creating parent directories as needed.
// Mapping or sequence content is saved as indented JSON, everything else as
// plain text.
type FileWriter struct{}

func (FileWriter) Name() string { return "file_writer" }

func (FileWriter) Describe() string {
    return `{"filename": "file.txt", "content": "Text", "action": "write or append (optional)"}`
}

func (FileWriter) Run(ctx context.Context, payload map[string]any) (any, error) {
    filename, _ := payload["filename"].(string)
    content, hasContent := payload["content"]
    if filename == "" || !hasContent || content == nil {
        return nil, fmt.Errorf("missing 'filename' or 'content' in payload")
    }

    action := "write"
    if a, ok := payload["action"].(string); ok && a != "" {
        action = strings.ToLower(a)
    }
    if action != "write" && action != "append" {
        return nil, fmt.Errorf("invalid action %q, use 'write' or 'append'", action)
    }

    if dir := filepath.Dir(filename); dir != "." && dir != "" {
        if err := os.MkdirAll(dir, 0o755); err != nil {
            return nil, fmt.Errorf("could not create directory %q: %w", dir, err)
        }
    }

    flags := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
    if action == "append" {
        flags = os.O_CREATE | os.O_WRONLY | os.O_APPEND
    }
    f, err := os.OpenFile(filename, flags, 0o644)
    if err != nil {
        return nil, fmt.Errorf("open %s: %w", filename, err)
    }
    defer f.Close()

    switch content.(type) {
    case map[string]any, []any:
        enc := json.NewEncoder(f)
        enc.SetIndent("", "    ")
        if err := enc.Encode(content); err != nil {
            return nil, fmt.Errorf("write JSON to %s: %w", filename, err)
        }
        return fmt.Sprintf("Success: Wrote JSON content to %s", filename), nil
    default:
        text := fmt.Sprintf("%v", content)
        if _, err := f.WriteString(text); err != nil {
            return nil, fmt.Errorf("write to %s: %w", filename, err)
        }
        return fmt.Sprintf("Success: Wrote %d characters to %s (mode: %s).", len(text), filename, action), nil
    }
}
