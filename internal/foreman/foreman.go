// Package foreman implements the orchestration core: compiling a natural
// language request into a plan of apprentice invocations (the plan compiler)
// and running that plan as a fail-fast pipeline (the step executor).
package foreman

import (
    "context"
    "log"

    "github.com/Saksham292001/AuraOS-aura-core/internal/apprentices"
    "github.com/Saksham292001/AuraOS-aura-core/internal/llm"
    "github.com/Saksham292001/AuraOS-aura-core/internal/models"
)

// Foreman wires the plan compiler to the step executor.
type Foreman struct {
    Planner  *Planner
    Executor *Executor
}

func New(client llm.Client, reg *apprentices.Registry) *Foreman {
    return &Foreman{
        Planner:  NewPlanner(client, reg.Catalog()),
        Executor: NewExecutor(reg),
    }
}

// HandleRequest plans and runs a single natural language request. Planning
// failures return an error and nothing executes; execution failures are
// reported inside the RunResult, not as an error.
func (f *Foreman) HandleRequest(ctx context.Context, request string) (*models.RunResult, error) {
    plan, err := f.Planner.Plan(ctx, request)
    if err != nil {
        return nil, err
    }
    log.Printf("foreman: plan has %d step(s)", len(plan.Steps))
    return f.Executor.Execute(ctx, plan), nil
}
