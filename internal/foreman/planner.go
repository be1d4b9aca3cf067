package foreman

import (
    "context"
    "encoding/json"
    "fmt"
    "log"
    "strings"

    "github.com/Saksham292001/AuraOS-aura-core/internal/apprentices"
    "github.com/Saksham292001/AuraOS-aura-core/internal/llm"
    "github.com/Saksham292001/AuraOS-aura-core/internal/models"
)

// Planner is the plan compiler: exactly one completion call per request, then
// a deterministic repair and validation pass over whatever text came back.
type Planner struct {
    Client llm.Client
    System string
}

// NewPlanner builds a planner whose system instruction is primed with the
// capability catalog. The catalog is static, so the prompt is built once.
func NewPlanner(client llm.Client, catalog []apprentices.CatalogEntry) *Planner {
    return &Planner{Client: client, System: buildSystemPrompt(catalog)}
}

func buildSystemPrompt(catalog []apprentices.CatalogEntry) string {
    var b strings.Builder
    b.WriteString(`You are a "Foreman" AI. Take the user's request and break it down into a
series of steps to be executed by "Apprentice" modules. Choose ONLY the most
appropriate tool for each step. You MUST use the full module path for the
"tool" key (e.g. "aura_core.apprentices.file_writer").

You have the following tools (Apprentices) available:

`)
    for i, e := range catalog {
        fmt.Fprintf(&b, "%d. %q:\n    - Module: %q\n    - Input (JSON): %s\n\n", i+1, e.Short, e.ID, e.Input)
    }
    b.WriteString(`You must respond ONLY with a valid JSON array of steps.
Each step uses ONE tool. Format: [{"tool": "module_name", "payload": {input_json}}]
DO NOT add extra characters, markdown, or commentary outside the JSON array.

CRITICAL RULES FOR PASSING DATA:
- Use "$PREV_OUTPUT" in a payload value ONLY to use the output of the PREVIOUS step.
- DO NOT invent tokens.`)
    return b.String()
}

// Plan compiles a natural language request into a validated plan, or fails
// with an error matching ErrNoPlan.
func (p *Planner) Plan(ctx context.Context, request string) (*models.Plan, error) {
    log.Printf("foreman: planning task for %q", request)
    raw, err := p.Client.Complete(ctx, p.System, request)
    if err != nil {
        return nil, fmt.Errorf("%w: completion call: %v", ErrNoPlan, err)
    }

    repaired, sliced := Repair(raw)
    if !sliced {
        log.Printf("foreman: warning: no JSON brackets in model output, using raw text")
    }

    var parsed any
    if err := json.Unmarshal([]byte(repaired), &parsed); err != nil {
        return nil, &PlanParseError{Raw: raw, Repaired: repaired, Err: err}
    }
    return validatePlan(raw, repaired, parsed)
}

// validatePlan enforces the plan's structural invariants: a non-empty array
// of objects, each with a non-empty string "tool" and a mapping "payload"
// (an empty mapping is fine; null or absent is not).
func validatePlan(raw, repaired string, parsed any) (*models.Plan, error) {
    fail := func(reason string) (*models.Plan, error) {
        return nil, &PlanValidationError{Raw: raw, Repaired: repaired, Reason: reason}
    }
    list, ok := parsed.([]any)
    if !ok { return fail("parsed JSON is not an array") }
    if len(list) == 0 { return fail("plan has no steps") }

    steps := make([]models.Step, 0, len(list))
    for i, item := range list {
        obj, ok := item.(map[string]any)
        if !ok { return fail(fmt.Sprintf("step %d is not an object", i+1)) }
        toolVal, ok := obj["tool"]
        if !ok { return fail(fmt.Sprintf("step %d is missing %q", i+1, "tool")) }
        payloadVal, ok := obj["payload"]
        if !ok { return fail(fmt.Sprintf("step %d is missing %q", i+1, "payload")) }
        tool, ok := toolVal.(string)
        if !ok || tool == "" { return fail(fmt.Sprintf("step %d: %q is not a non-empty string", i+1, "tool")) }
        payload, ok := payloadVal.(map[string]any)
        if !ok { return fail(fmt.Sprintf("step %d: %q is not an object", i+1, "payload")) }
        steps = append(steps, models.Step{Tool: tool, Payload: payload})
    }
    return &models.Plan{Steps: steps}, nil
}
