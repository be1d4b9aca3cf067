// Package llm provides the planning-model clients the foreman talks to.
package llm

import "context"

// Client is the completion surface the foreman needs: one blocking call,
// system instruction plus user request in, free text out. The reply is
// expected to contain, but not guaranteed to contain only, a JSON plan array.
// Implementations pin temperature to zero so the reply structure stays
// deterministic.
type Client interface {
    Complete(ctx context.Context, system, user string) (string, error)
}
