// Package apprentices holds the capability registry and the built-in
// apprentice implementations the foreman dispatches to. Any capability can be
// added by static registration without touching the executor.
package apprentices

import (
    "context"
    "fmt"
    "strings"
)

// Namespace is the fully-qualified identifier prefix every registered
// apprentice lives under.
const Namespace = "aura_core.apprentices."

// Normalize prepends the registry namespace to short identifiers, so a plan
// may name "file_writer" or "aura_core.apprentices.file_writer" and resolve
// identically.
func Normalize(name string) string {
    if strings.HasPrefix(name, Namespace) { return name }
    return Namespace + name
}

// Apprentice describes a registered capability for the planning catalog.
type Apprentice interface {
    Name() string     // short identifier, e.g. "file_writer"
    Describe() string // input shape shown to the planning model
}

// Runner is the invocation surface the executor needs. A module registered
// without it resolves to a MissingRunEntrypointError.
type Runner interface {
    Run(ctx context.Context, payload map[string]any) (any, error)
}

// CatalogEntry is one row of the static capability table used to prime the
// planning prompt.
type CatalogEntry struct {
    ID    string // fully qualified identifier
    Short string
    Input string
}

// UnknownApprenticeError reports a tool identifier with no registration.
type UnknownApprenticeError struct {
    Name string
}

func (e *UnknownApprenticeError) Error() string {
    return fmt.Sprintf("could not find module %q", e.Name)
}

// MissingRunEntrypointError reports a registered module that lacks a Run
// entrypoint.
type MissingRunEntrypointError struct {
    Name string
}

func (e *MissingRunEntrypointError) Error() string {
    return fmt.Sprintf("module %q does not have a run entrypoint", e.Name)
}

// Registry maps fully-qualified identifiers to registered modules. It is
// populated once at process start and read-only afterwards, so lookups need
// no locking.
type Registry struct {
    modules map[string]Apprentice
    order   []string
}

func NewRegistry() *Registry {
    return &Registry{modules: map[string]Apprentice{}}
}

// Register adds a module under its namespaced identifier. Re-registering a
// name replaces the module but keeps its catalog position.
func (r *Registry) Register(a Apprentice) {
    id := Normalize(a.Name())
    if _, dup := r.modules[id]; !dup {
        r.order = append(r.order, id)
    }
    r.modules[id] = a
}

// Resolve maps a fully-qualified identifier to a runnable apprentice.
func (r *Registry) Resolve(id string) (Runner, error) {
    m, ok := r.modules[id]
    if !ok {
        return nil, &UnknownApprenticeError{Name: id}
    }
    run, ok := m.(Runner)
    if !ok {
        return nil, &MissingRunEntrypointError{Name: id}
    }
    return run, nil
}

// Catalog returns the capability table in registration order.
func (r *Registry) Catalog() []CatalogEntry {
    out := make([]CatalogEntry, 0, len(r.order))
    for _, id := range r.order {
        a := r.modules[id]
        out = append(out, CatalogEntry{ID: id, Short: a.Name(), Input: a.Describe()})
    }
    return out
}
