package foreman

import (
    "context"
    "encoding/json"
    "fmt"
    "log"

    "github.com/google/uuid"

    "github.com/Saksham292001/AuraOS-aura-core/internal/apprentices"
    "github.com/Saksham292001/AuraOS-aura-core/internal/models"
)

// PrevOutputToken is the reserved payload value replaced with the previous
// step's output at execution time. It is the plan's only data-flow mechanism:
// there is no addressing of outputs further back than the preceding step.
const PrevOutputToken = "$PREV_OUTPUT"

// Executor runs a plan's steps strictly in order, threading one implicit data
// channel between them and halting at the first failure. Step n+1 never
// begins before step n's apprentice call has returned.
type Executor struct {
    Registry   *apprentices.Registry
    Classifier Classifier
}

func NewExecutor(reg *apprentices.Registry) *Executor {
    return &Executor{Registry: reg, Classifier: DefaultClassifier()}
}

// Execute runs every step until one is classified as failed. The previous
// step's output is carried as a loop accumulator, never shared state; it is
// reset for every run.
func (e *Executor) Execute(ctx context.Context, plan *models.Plan) *models.RunResult {
    runID := uuid.NewString()
    var prev any
    for i, step := range plan.Steps {
        log.Printf("foreman: run %s: starting step %d/%d", runID, i+1, len(plan.Steps))
        output, ok := e.runStep(ctx, step, prev)
        if !ok {
            log.Printf("foreman: run %s: halting, step %d failed: %v", runID, i+1, output)
            return &models.RunResult{Status: models.RunFailed, FailedStep: i + 1, Output: output}
        }
        prev = output
    }
    log.Printf("foreman: run %s: completed all %d step(s)", runID, len(plan.Steps))
    return &models.RunResult{Status: models.RunCompleted}
}

func (e *Executor) runStep(ctx context.Context, step models.Step, prev any) (any, bool) {
    name := apprentices.Normalize(step.Tool)
    if name != step.Tool {
        log.Printf("foreman: received short name %q, using %q", step.Tool, name)
    }
    payload := substitutePayload(step.Payload, prev)
    log.Printf("apprentice: executing %s payload=%s", name, compactJSON(payload))

    runner, err := e.Registry.Resolve(name)
    if err != nil {
        return fmt.Sprintf("Error: %v", err), false
    }

    output := invoke(ctx, runner, name, payload)
    log.Printf("apprentice: %s output: %v", name, output)
    if e.Classifier.Classify(output) == Failed {
        return output, false
    }
    return output, true
}

// invoke calls the apprentice inside a failure boundary: a returned error or
// a panic becomes a textual error result instead of unwinding the executor,
// so one misbehaving apprentice cannot crash the run.
func invoke(ctx context.Context, r apprentices.Runner, name string, payload map[string]any) (output any) {
    defer func() {
        if rec := recover(); rec != nil {
            output = fmt.Sprintf("Error: apprentice %s panicked: %v", name, rec)
        }
    }()
    out, err := r.Run(ctx, payload)
    if err != nil {
        return fmt.Sprintf("Error: apprentice %s failed: %v", name, err)
    }
    return out
}

// substitutePayload deep-copies a payload, replacing every PrevOutputToken
// occurrence, at any nesting depth, with the string form of the previous
// step's output. Non-token values pass through unchanged.
func substitutePayload(payload map[string]any, prev any) map[string]any {
    if payload == nil { return nil }
    out, _ := substituteValue(payload, prev).(map[string]any)
    return out
}

func substituteValue(v any, prev any) any {
    switch t := v.(type) {
    case map[string]any:
        out := make(map[string]any, len(t))
        for k, val := range t { out[k] = substituteValue(val, prev) }
        return out
    case []any:
        out := make([]any, len(t))
        for i := range t { out[i] = substituteValue(t[i], prev) }
        return out
    case string:
        if t == PrevOutputToken { return stringify(prev) }
        return t
    default:
        return v
    }
}

// stringify renders a previous output for substitution: strings pass through,
// an unset output becomes the empty string, anything else is JSON-encoded.
func stringify(v any) string {
    switch t := v.(type) {
    case nil:
        return ""
    case string:
        return t
    default:
        b, err := json.Marshal(t)
        if err != nil { return fmt.Sprintf("%v", t) }
        return string(b)
    }
}

func compactJSON(v any) string {
    b, err := json.Marshal(v)
    if err != nil { return fmt.Sprintf("%v", v) }
    return string(b)
}
