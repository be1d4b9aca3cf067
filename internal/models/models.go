package models

// Step is one unit of work in a plan: which apprentice to invoke and the
// JSON-compatible payload to hand it.
type Step struct {
    Tool    string         `json:"tool"`
    Payload map[string]any `json:"payload"`
}

// Plan is the ordered sequence of steps produced by the plan compiler for a
// single request. Plans are transient: built per request, discarded after the
// run.
type Plan struct {
    Steps []Step `json:"steps"`
}

type RunStatus string

const (
    RunCompleted RunStatus = "COMPLETED"
    RunFailed    RunStatus = "FAILED"
)

// RunResult is the terminal outcome of executing a plan. FailedStep is the
// 1-based index of the failing step and Output its diagnostic output; both are
// zero values on a completed run.
type RunResult struct {
    Status     RunStatus `json:"status"`
    FailedStep int       `json:"failed_step,omitempty"`
    Output     any       `json:"output,omitempty"`
}
