package foreman

import "strings"

// Outcome is the executor's judgement of one step's result.
type Outcome int

const (
    Succeeded Outcome = iota
    Failed
)

// Classifier decides success or failure from an apprentice's raw output.
// Only string outputs are inspected; any other value is a data result and
// counts as success. Failure is opt-in via an explicit marker: most
// apprentices return data (a list, a mapping, a path) rather than a status
// sentence, so absence of a marker must not be read as failure.
//
// Markers are compared case-insensitively against the start of the trimmed
// output; store them lowercase.
type Classifier struct {
    FailurePrefixes []string
    SuccessPrefixes []string
}

// DefaultClassifier carries the marker set the built-in apprentices emit.
func DefaultClassifier() Classifier {
    return Classifier{
        FailurePrefixes: []string{"error:", "❌"},
        SuccessPrefixes: []string{"success:", "✅"},
    }
}

func (c Classifier) Classify(output any) Outcome {
    s, ok := output.(string)
    if !ok { return Succeeded }
    t := strings.ToLower(strings.TrimSpace(s))
    for _, p := range c.FailurePrefixes {
        if strings.HasPrefix(t, p) { return Failed }
    }
    for _, p := range c.SuccessPrefixes {
        if strings.HasPrefix(t, p) { return Succeeded }
    }
    // unmatched text defaults to success
    return Succeeded
}
