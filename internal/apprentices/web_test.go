package apprentices

import (
    "context"
    "net/http"
    "net/http/httptest"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func TestWebResearcherExtractsVisibleText(t *testing.T) {
    srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        w.Write([]byte(`<html><head><script>var x = "hidden";</script><style>.a{}</style></head>
<body><p>First paragraph.</p><div>Second   block.</div></body></html>`))
    }))
    defer srv.Close()

    wr := &WebResearcher{HTTPClient: srv.Client()}
    out, err := wr.Run(context.Background(), map[string]any{"url": srv.URL})
    require.NoError(t, err)
    text := out.(string)
    assert.Contains(t, text, "First paragraph.")
    assert.Contains(t, text, "Second block.")
    assert.NotContains(t, text, "hidden", "script content must be dropped")
}

func TestWebResearcherStatusError(t *testing.T) {
    srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        w.WriteHeader(http.StatusNotFound)
    }))
    defer srv.Close()

    wr := &WebResearcher{HTTPClient: srv.Client()}
    _, err := wr.Run(context.Background(), map[string]any{"url": srv.URL})
    require.Error(t, err)
    assert.Contains(t, err.Error(), "404")
}

func TestWebResearcherMissingURL(t *testing.T) {
    _, err := (&WebResearcher{}).Run(context.Background(), map[string]any{})
    assert.Error(t, err)
}

func TestWebSearcherParsesResults(t *testing.T) {
    srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        assert.NotEmpty(t, r.URL.Query().Get("q"))
        w.Write([]byte(`<html><body>
<div class="result"><a class="result__a" href="https://example.com/1">First hit</a><a class="result__snippet">About the first.</a></div>
<div class="result"><a class="result__a" href="https://example.com/2">Second hit</a><a class="result__snippet">About the second.</a></div>
<div class="result"><a class="result__a" href="https://example.com/3">Third hit</a><a class="result__snippet">About the third.</a></div>
</body></html>`))
    }))
    defer srv.Close()

    ws := &WebSearcher{HTTPClient: srv.Client(), BaseURL: srv.URL}
    out, err := ws.Run(context.Background(), map[string]any{"query": "example", "num_results": float64(2)})
    require.NoError(t, err)
    results := out.([]map[string]string)
    require.Len(t, results, 2, "num_results caps the result list")
    assert.Equal(t, "First hit", results[0]["title"])
    assert.Equal(t, "https://example.com/1", results[0]["href"])
    assert.Equal(t, "About the first.", results[0]["body"])
}

func TestWebSearcherAcceptsQuotedCount(t *testing.T) {
    srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        w.Write([]byte(`<html><body>
<div class="result"><a class="result__a" href="https://example.com/1">First hit</a><a class="result__snippet">About the first.</a></div>
<div class="result"><a class="result__a" href="https://example.com/2">Second hit</a><a class="result__snippet">About the second.</a></div>
</body></html>`))
    }))
    defer srv.Close()

    ws := &WebSearcher{HTTPClient: srv.Client(), BaseURL: srv.URL}
    out, err := ws.Run(context.Background(), map[string]any{"query": "example", "num_results": "1"})
    require.NoError(t, err)
    require.Len(t, out.([]map[string]string), 1, "a quoted count still caps the result list")

    out, err = ws.Run(context.Background(), map[string]any{"query": "example", "num_results": "bogus"})
    require.NoError(t, err)
    require.Len(t, out.([]map[string]string), 2, "an unparsable count falls back to the default cap")
}

func TestWebSearcherNoResults(t *testing.T) {
    srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        w.Write([]byte(`<html><body><p>nothing here</p></body></html>`))
    }))
    defer srv.Close()

    ws := &WebSearcher{HTTPClient: srv.Client(), BaseURL: srv.URL}
    _, err := ws.Run(context.Background(), map[string]any{"query": "example"})
    require.Error(t, err)
    assert.Contains(t, err.Error(), "no search results")
}
