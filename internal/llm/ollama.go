package llm

import (
    "bytes"
    "context"
    "encoding/json"
    "fmt"
    "io"
    "net/http"
)

// OllamaClient talks to a local Ollama server over its chat API. This is the
// default provider when no hosted API key is configured.
type OllamaClient struct {
    URL        string // full chat endpoint, e.g. http://localhost:11434/api/chat
    Model      string
    HTTPClient *http.Client
}

type ollamaMessage struct {
    Role    string `json:"role"`
    Content string `json:"content"`
}

type ollamaChatRequest struct {
    Model    string          `json:"model"`
    Messages []ollamaMessage `json:"messages"`
    Stream   bool            `json:"stream"`
    Options  map[string]any  `json:"options,omitempty"`
}

type ollamaChatResponse struct {
    Message ollamaMessage `json:"message"`
}

func (c *OllamaClient) Complete(ctx context.Context, system, user string) (string, error) {
    body := ollamaChatRequest{
        Model: c.Model,
        Messages: []ollamaMessage{
            {Role: "system", Content: system},
            {Role: "user", Content: user},
        },
        Stream:  false,
        Options: map[string]any{"temperature": 0.0},
    }
    b, _ := json.Marshal(body)
    req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewReader(b))
    if err != nil { return "", err }
    req.Header.Set("Content-Type", "application/json")

    client := c.HTTPClient
    if client == nil { client = &http.Client{Timeout: clientTimeout()} }
    resp, err := client.Do(req)
    if err != nil { return "", err }
    defer resp.Body.Close()
    if resp.StatusCode < 200 || resp.StatusCode >= 300 {
        raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
        return "", fmt.Errorf("ollama status %d: %s", resp.StatusCode, raw)
    }

    var out ollamaChatResponse
    if err := json.NewDecoder(resp.Body).Decode(&out); err != nil { return "", err }
    return out.Message.Content, nil
}
