package apprentices

import (
    "context"
    "fmt"
    "io"
    "net/http"
    "strings"
    "time"

    "golang.org/x/net/html"
)

// WebResearcher fetches a page and returns its visible text.
type WebResearcher struct {
    HTTPClient *http.Client
    MaxBytes   int64
}

func (*WebResearcher) Name() string { return "web_researcher" }

func (*WebResearcher) Describe() string { return `{"url": "https://..."}` }

func (w *WebResearcher) Run(ctx context.Context, payload map[string]any) (any, error) {
    url, _ := payload["url"].(string)
    if url == "" {
        return nil, fmt.Errorf("missing 'url' in payload")
    }
    if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
        url = "https://" + url
    }

    req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
    if err != nil { return nil, err }
    client := w.HTTPClient
    if client == nil { client = &http.Client{Timeout: 15 * time.Second} }
    resp, err := client.Do(req)
    if err != nil { return nil, fmt.Errorf("fetch %s: %w", url, err) }
    defer resp.Body.Close()
    if resp.StatusCode < 200 || resp.StatusCode >= 300 {
        return nil, fmt.Errorf("fetch %s: status %d", url, resp.StatusCode)
    }

    max := w.MaxBytes
    if max <= 0 { max = 2 << 20 }
    lr := io.LimitedReader{R: resp.Body, N: max}
    node, err := html.Parse(&lr)
    if err != nil { return nil, fmt.Errorf("parse %s: %w", url, err) }

    var b strings.Builder
    extractText(node, &b, false)
    text := strings.TrimSpace(compactWhitespace(b.String()))
    if text == "" {
        return nil, fmt.Errorf("no readable text at %s", url)
    }
    return text, nil
}

func extractText(n *html.Node, b *strings.Builder, hidden bool) {
    if n.Type == html.ElementNode {
        switch strings.ToLower(n.Data) {
        case "script", "style", "noscript":
            hidden = true
        case "br", "p", "div", "li", "tr":
            b.WriteString("\n")
        }
    }
    if !hidden && n.Type == html.TextNode {
        b.WriteString(n.Data)
    }
    for c := n.FirstChild; c != nil; c = c.NextSibling {
        extractText(c, b, hidden)
    }
}

func compactWhitespace(s string) string {
    s = strings.ReplaceAll(s, "\t", " ")
    s = strings.ReplaceAll(s, "\r", " ")
    var out []string
    for _, ln := range strings.Split(s, "\n") {
        ln = strings.Join(strings.Fields(ln), " ")
        if ln != "" { out = append(out, ln) }
    }
    return strings.Join(out, "\n")
}
