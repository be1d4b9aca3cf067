package apprentices

import (
    "context"
    "fmt"
    "io"
    "os"
    "path/filepath"
    "strings"
)

// FileManager copies, moves, and deletes files.
type FileManager struct{}

func (FileManager) Name() string { return "file_manager" }

func (FileManager) Describe() string {
    return `{"action": "copy|move|delete", "source": "src.txt", "destination": "dest.txt"}`
}

func (FileManager) Run(ctx context.Context, payload map[string]any) (any, error) {
    action, _ := payload["action"].(string)
    source, _ := payload["source"].(string)
    destination, _ := payload["destination"].(string)
    action = strings.ToLower(action)
    if action == "" || source == "" {
        return nil, fmt.Errorf("missing 'action' or 'source' in payload")
    }

    switch action {
    case "copy":
        if destination == "" { return nil, fmt.Errorf("missing 'destination' for copy") }
        if err := copyFile(source, destination); err != nil { return nil, err }
        return fmt.Sprintf("Success: Copied %s to %s.", source, destination), nil
    case "move":
        if destination == "" { return nil, fmt.Errorf("missing 'destination' for move") }
        if dir := filepath.Dir(destination); dir != "." && dir != "" {
            if err := os.MkdirAll(dir, 0o755); err != nil { return nil, fmt.Errorf("create directory %q: %w", dir, err) }
        }
        if err := os.Rename(source, destination); err != nil { return nil, fmt.Errorf("move %s: %w", source, err) }
        return fmt.Sprintf("Success: Moved %s to %s.", source, destination), nil
    case "delete":
        if err := os.Remove(source); err != nil { return nil, fmt.Errorf("delete %s: %w", source, err) }
        return fmt.Sprintf("Success: Deleted %s.", source), nil
    default:
        return nil, fmt.Errorf("invalid action %q, use 'copy', 'move' or 'delete'", action)
    }
}

func copyFile(source, destination string) error {
    in, err := os.Open(source)
    if err != nil { return fmt.Errorf("open %s: %w", source, err) }
    defer in.Close()
    if dir := filepath.Dir(destination); dir != "." && dir != "" {
        if err := os.MkdirAll(dir, 0o755); err != nil { return fmt.Errorf("create directory %q: %w", dir, err) }
    }
    out, err := os.Create(destination)
    if err != nil { return fmt.Errorf("create %s: %w", destination, err) }
    defer out.Close()
    if _, err := io.Copy(out, in); err != nil { return fmt.Errorf("copy to %s: %w", destination, err) }
    return out.Close()
}
