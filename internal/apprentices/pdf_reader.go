package apprentices

import (
    "bytes"
    "context"
    "fmt"
    "strings"

    pdfx "github.com/ledongthuc/pdf"
)

// PDFReader extracts plain text from a PDF file on disk.
type PDFReader struct{}

func (PDFReader) Name() string { return "pdf_reader" }

func (PDFReader) Describe() string { return `{"filename": "document.pdf"}` }

func (PDFReader) Run(ctx context.Context, payload map[string]any) (any, error) {
    filename, _ := payload["filename"].(string)
    if filename == "" {
        return nil, fmt.Errorf("missing 'filename' in payload")
    }

    f, r, err := pdfx.Open(filename)
    if err != nil {
        return nil, fmt.Errorf("open PDF %s: %w", filename, err)
    }
    defer f.Close()

    var out bytes.Buffer
    for page := 1; page <= r.NumPage(); page++ {
        p := r.Page(page)
        if p.V.IsNull() { continue }
        txt, err := p.GetPlainText(nil)
        if err != nil { continue }
        if t := strings.TrimSpace(txt); t != "" {
            out.WriteString(t)
            out.WriteString("\n\n")
        }
    }
    text := strings.TrimSpace(out.String())
    if text == "" {
        return nil, fmt.Errorf("no extractable text in %s", filename)
    }
    return text, nil
}
