package apprentices

import (
    "context"
    "fmt"
    "os"
)

// FileReader returns a file's content as a string.
type FileReader struct{}

func (FileReader) Name() string { return "file_reader" }

func (FileReader) Describe() string { return `{"filename": "file.txt"}` }

func (FileReader) Run(ctx context.Context, payload map[string]any) (any, error) {
    filename, _ := payload["filename"].(string)
    if filename == "" {
        return nil, fmt.Errorf("missing 'filename' in payload")
    }
    b, err := os.ReadFile(filename)
    if err != nil {
        if os.IsNotExist(err) {
            return nil, fmt.Errorf("file not found at %s", filename)
        }
        return nil, fmt.Errorf("read %s: %w", filename, err)
    }
    return string(b), nil
}
