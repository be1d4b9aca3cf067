package llm

import (
    "context"
    "log"
    "os"
    "strings"
)

// NewFromEnv returns a Client based on environment variables.
// Supported providers:
//   - AURA_LLM_PROVIDER=ollama|openai|gemini|mock
//   - Ollama:  optional AURA_OLLAMA_URL, AURA_LLM_MODEL (default llama3)
//   - OpenAI:  OPENAI_API_KEY, optional AURA_LLM_MODEL, OPENAI_API_BASE
//   - Gemini:  GOOGLE_API_KEY, optional AURA_LLM_MODEL
//
// Without an explicit provider, a configured API key wins; otherwise the
// local Ollama default is used.
func NewFromEnv(ctx context.Context) Client {
    prov := strings.ToLower(strings.TrimSpace(os.Getenv("AURA_LLM_PROVIDER")))
    switch prov {
    case "mock":
        return &MockClient{}
    case "ollama":
        return ollamaFromEnv()
    case "openai":
        if key := strings.TrimSpace(os.Getenv("OPENAI_API_KEY")); key != "" {
            return &OpenAIClient{APIKey: key, Model: modelWithDefault("gpt-4o-mini")}
        }
        log.Printf("llm: OPENAI_API_KEY not set, falling back to ollama")
        return ollamaFromEnv()
    case "gemini":
        if key := strings.TrimSpace(os.Getenv("GOOGLE_API_KEY")); key != "" {
            if c, err := NewGeminiClient(ctx, key, modelWithDefault("gemini-1.5-flash")); err == nil {
                return c
            } else {
                log.Printf("llm: gemini client init failed: %v, falling back to ollama", err)
            }
        }
        return ollamaFromEnv()
    }

    // auto-detect by key presence
    if key := strings.TrimSpace(os.Getenv("OPENAI_API_KEY")); key != "" {
        return &OpenAIClient{APIKey: key, Model: modelWithDefault("gpt-4o-mini")}
    }
    if key := strings.TrimSpace(os.Getenv("GOOGLE_API_KEY")); key != "" {
        if c, err := NewGeminiClient(ctx, key, modelWithDefault("gemini-1.5-flash")); err == nil {
            return c
        }
    }
    return ollamaFromEnv()
}

func ollamaFromEnv() *OllamaClient {
    url := strings.TrimSpace(os.Getenv("AURA_OLLAMA_URL"))
    if url == "" { url = "http://localhost:11434/api/chat" }
    return &OllamaClient{URL: url, Model: modelWithDefault("llama3")}
}

func modelWithDefault(def string) string {
    if v := strings.TrimSpace(os.Getenv("AURA_LLM_MODEL")); v != "" { return v }
    return def
}
