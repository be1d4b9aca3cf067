package apprentices

import (
    "context"
    "fmt"

    "github.com/Saksham292001/AuraOS-aura-core/internal/llm"
)

// Summarizer condenses long text with the configured language model.
type Summarizer struct {
    Client llm.Client
}

func (*Summarizer) Name() string { return "summarizer" }

func (*Summarizer) Describe() string { return `{"text": "Long text..."}` }

func (s *Summarizer) Run(ctx context.Context, payload map[string]any) (any, error) {
    text, _ := payload["text"].(string)
    if text == "" {
        return nil, fmt.Errorf("missing 'text' in payload")
    }
    system := "You are a concise summarizer. Reply with 3-5 bullet points or a short paragraph covering the key facts. No preamble."
    out, err := s.Client.Complete(ctx, system, text)
    if err != nil {
        return nil, fmt.Errorf("summarize: %w", err)
    }
    return out, nil
}
