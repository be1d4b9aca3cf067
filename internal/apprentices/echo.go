package apprentices

import (
    "context"
    "fmt"
)

// Echo repeats its input. Mostly useful for plan debugging.
type Echo struct{}

func (Echo) Name() string { return "echo" }

func (Echo) Describe() string { return `{"text": "Text to repeat"}` }

func (Echo) Run(ctx context.Context, payload map[string]any) (any, error) {
    text, _ := payload["text"].(string)
    return fmt.Sprintf("echo: %s", text), nil
}
