package apprentices

import (
    "context"
    "fmt"
    "net/http"
    "net/url"
    "strconv"
    "strings"
    "time"

    "github.com/PuerkitoBio/goquery"
)

// WebSearcher queries the DuckDuckGo HTML endpoint and returns rich results
// (title, URL, snippet).
type WebSearcher struct {
    HTTPClient *http.Client
    BaseURL    string // override for tests
}

func (*WebSearcher) Name() string { return "web_searcher" }

func (*WebSearcher) Describe() string {
    return `{"query": "Search term", "num_results": 3}`
}

func (w *WebSearcher) Run(ctx context.Context, payload map[string]any) (any, error) {
    query, _ := payload["query"].(string)
    if query == "" {
        return nil, fmt.Errorf("missing 'query' in payload")
    }
    // models emit the count as a number or a quoted number, take either
    numResults := 3
    switch n := payload["num_results"].(type) {
    case float64:
        if n > 0 { numResults = int(n) }
    case string:
        if v, err := strconv.Atoi(strings.TrimSpace(n)); err == nil && v > 0 { numResults = v }
    }

    base := w.BaseURL
    if base == "" { base = "https://html.duckduckgo.com/html/" }
    endpoint := base + "?q=" + url.QueryEscape(query)
    req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
    if err != nil { return nil, err }
    req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; aura-core)")
    client := w.HTTPClient
    if client == nil { client = &http.Client{Timeout: 15 * time.Second} }
    resp, err := client.Do(req)
    if err != nil { return nil, fmt.Errorf("search for %q: %w", query, err) }
    defer resp.Body.Close()
    if resp.StatusCode < 200 || resp.StatusCode >= 300 {
        return nil, fmt.Errorf("search for %q: status %d", query, resp.StatusCode)
    }

    doc, err := goquery.NewDocumentFromReader(resp.Body)
    if err != nil { return nil, fmt.Errorf("parse search results: %w", err) }

    var results []map[string]string
    doc.Find(".result").EachWithBreak(func(i int, s *goquery.Selection) bool {
        if len(results) >= numResults { return false }
        link := s.Find("a.result__a").First()
        href, _ := link.Attr("href")
        title := strings.TrimSpace(link.Text())
        body := strings.TrimSpace(s.Find(".result__snippet").First().Text())
        if title == "" || href == "" { return true }
        results = append(results, map[string]string{"title": title, "href": href, "body": body})
        return true
    })

    if len(results) == 0 {
        return nil, fmt.Errorf("no search results found for %q", query)
    }
    return results, nil
}
