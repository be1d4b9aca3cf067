package llm

import (
    "context"
    "encoding/json"
    "fmt"
)

// MockClient returns canned plan text. Used in tests and in keyless runs so
// the pipeline stays exercisable without a model.
type MockClient struct {
    Response string
    Err      error

    // last call, for test assertions
    LastSystem string
    LastUser   string
}

func (m *MockClient) Complete(ctx context.Context, system, user string) (string, error) {
    m.LastSystem = system
    m.LastUser = user
    if m.Err != nil { return "", m.Err }
    if m.Response != "" { return m.Response, nil }
    text, _ := json.Marshal(user)
    return fmt.Sprintf(`[{"tool": "aura_core.apprentices.echo", "payload": {"text": %s}}]`, text), nil
}
