package apprentices

import (
    "archive/zip"
    "context"
    "fmt"
    "io"
    "io/fs"
    "log"
    "os"
    "path/filepath"
    "strings"
)

// Archiver creates, extracts and lists zip archives.
type Archiver struct{}

func (Archiver) Name() string { return "archiver" }

func (Archiver) Describe() string {
    return `{"action": "create|extract|list", "source_folder": "folder", "zip_filename": "archive.zip", "destination_folder": "out (extract only)"}`
}

func (Archiver) Run(ctx context.Context, payload map[string]any) (any, error) {
    action, _ := payload["action"].(string)
    zipFilename, _ := payload["zip_filename"].(string)
    if action == "" || zipFilename == "" {
        return nil, fmt.Errorf("missing 'action' or 'zip_filename' in payload")
    }

    switch strings.ToLower(action) {
    case "create":
        if folder, ok := payload["source_folder"].(string); ok && folder != "" {
            return createFromFolder(folder, zipFilename)
        }
        if raw, ok := payload["files"].([]any); ok {
            var files []string
            for _, f := range raw {
                if s, ok := f.(string); ok { files = append(files, s) }
            }
            return createFromFiles(files, zipFilename)
        }
        return nil, fmt.Errorf("missing 'source_folder' or 'files' for create")
    case "extract":
        dest, _ := payload["destination_folder"].(string)
        if dest == "" { dest = "." }
        return extractArchive(zipFilename, dest)
    case "list":
        return listArchive(zipFilename)
    default:
        return nil, fmt.Errorf("invalid action %q, use 'create', 'extract' or 'list'", action)
    }
}

func createFromFolder(folder, zipFilename string) (any, error) {
    info, err := os.Stat(folder)
    if err != nil || !info.IsDir() {
        return nil, fmt.Errorf("source folder %q does not exist", folder)
    }
    zf, err := os.Create(zipFilename)
    if err != nil { return nil, fmt.Errorf("create %s: %w", zipFilename, err) }
    defer zf.Close()
    w := zip.NewWriter(zf)
    defer w.Close()

    err = filepath.WalkDir(folder, func(path string, d fs.DirEntry, err error) error {
        if err != nil { return err }
        if d.IsDir() { return nil }
        rel, err := filepath.Rel(folder, path)
        if err != nil { return err }
        dst, err := w.Create(filepath.ToSlash(filepath.Join(filepath.Base(folder), rel)))
        if err != nil { return err }
        src, err := os.Open(path)
        if err != nil { return err }
        defer src.Close()
        _, err = io.Copy(dst, src)
        return err
    })
    if err != nil { return nil, fmt.Errorf("archive %s: %w", folder, err) }
    if err := w.Close(); err != nil { return nil, err }
    return fmt.Sprintf("Success: Created archive %q from folder %q.", zipFilename, folder), nil
}

func createFromFiles(files []string, zipFilename string) (any, error) {
    zf, err := os.Create(zipFilename)
    if err != nil { return nil, fmt.Errorf("create %s: %w", zipFilename, err) }
    defer zf.Close()
    w := zip.NewWriter(zf)
    defer w.Close()

    for _, path := range files {
        src, err := os.Open(path)
        if err != nil {
            log.Printf("apprentice: archiver: file not found %q, skipping", path)
            continue
        }
        dst, err := w.Create(filepath.Base(path))
        if err != nil { src.Close(); return nil, err }
        if _, err := io.Copy(dst, src); err != nil { src.Close(); return nil, err }
        src.Close()
    }
    if err := w.Close(); err != nil { return nil, err }
    return fmt.Sprintf("Success: Created archive %q with %d files.", zipFilename, len(files)), nil
}

func extractArchive(zipFilename, dest string) (any, error) {
    r, err := zip.OpenReader(zipFilename)
    if err != nil { return nil, fmt.Errorf("zip file %q does not exist or is unreadable: %w", zipFilename, err) }
    defer r.Close()

    for _, f := range r.File {
        target := filepath.Join(dest, filepath.FromSlash(f.Name))
        // keep extraction inside dest
        if !strings.HasPrefix(filepath.Clean(target), filepath.Clean(dest)+string(os.PathSeparator)) {
            return nil, fmt.Errorf("archive entry %q escapes destination", f.Name)
        }
        if f.FileInfo().IsDir() {
            if err := os.MkdirAll(target, 0o755); err != nil { return nil, err }
            continue
        }
        if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil { return nil, err }
        src, err := f.Open()
        if err != nil { return nil, err }
        dst, err := os.Create(target)
        if err != nil { src.Close(); return nil, err }
        if _, err := io.Copy(dst, src); err != nil { src.Close(); dst.Close(); return nil, err }
        src.Close()
        dst.Close()
    }
    return fmt.Sprintf("Success: Extracted %q to %q.", zipFilename, dest), nil
}

func listArchive(zipFilename string) (any, error) {
    r, err := zip.OpenReader(zipFilename)
    if err != nil { return nil, fmt.Errorf("zip file %q does not exist or is unreadable: %w", zipFilename, err) }
    defer r.Close()
    names := make([]string, 0, len(r.File))
    for _, f := range r.File {
        names = append(names, f.Name)
    }
    return names, nil
}
