package foreman

import (
    "errors"
    "fmt"
)

// ErrNoPlan marks every planning-stage failure: completion errors, JSON that
// stays unparseable after repair, and structurally invalid plans. Callers can
// errors.Is against it without caring which stage broke.
var ErrNoPlan = errors.New("no valid plan generated")

// PlanParseError reports text that still failed to parse as JSON after the
// repair pipeline. Raw and Repaired are retained for diagnosis.
type PlanParseError struct {
    Raw      string
    Repaired string
    Err      error
}

func (e *PlanParseError) Error() string {
    return fmt.Sprintf("plan parse failed: %v", e.Err)
}

func (e *PlanParseError) Unwrap() error { return e.Err }

func (e *PlanParseError) Is(target error) bool { return target == ErrNoPlan }

// PlanValidationError reports parsed JSON that is not a non-empty array of
// {tool, payload} objects.
type PlanValidationError struct {
    Raw      string
    Repaired string
    Reason   string
}

func (e *PlanValidationError) Error() string {
    return "plan validation failed: " + e.Reason
}

func (e *PlanValidationError) Is(target error) bool { return target == ErrNoPlan }
