package llm

import (
    "context"
    "errors"

    genai "github.com/google/generative-ai-go/genai"
    "google.golang.org/api/option"
)

// GeminiClient wraps the official generative-ai SDK.
type GeminiClient struct {
    client *genai.Client
    model  *genai.GenerativeModel
}

func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
    c, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
    if err != nil { return nil, err }
    m := c.GenerativeModel(model)
    m.SetTemperature(0)
    return &GeminiClient{client: c, model: m}, nil
}

func (g *GeminiClient) Complete(ctx context.Context, system, user string) (string, error) {
    g.model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(system)}}
    resp, err := g.model.GenerateContent(ctx, genai.Text(user))
    if err != nil { return "", err }
    if txt := firstText(resp); txt != "" { return txt, nil }
    return "", errors.New("no candidates")
}

func (g *GeminiClient) Close() error { return g.client.Close() }

func firstText(r *genai.GenerateContentResponse) string {
    if r == nil { return "" }
    for _, c := range r.Candidates {
        if c.Content == nil { continue }
        for _, part := range c.Content.Parts {
            if t, ok := part.(genai.Text); ok {
                return string(t)
            }
        }
    }
    return ""
}
