package foreman

import (
    "regexp"
    "strings"
)

// Language models produce approximately correct JSON. The repair pipeline
// below recovers the common failure modes cheaply (surrounding prose, code
// fences, Python literal casing, single quotes, truncation) instead of
// rejecting the plan outright. Each transform is a pure function so it can be
// tested on its own.

var (
    trueLiteralRe  = regexp.MustCompile(`([:,]\s*)True\b`)
    falseLiteralRe = regexp.MustCompile(`([:,]\s*)False\b`)
    noneLiteralRe  = regexp.MustCompile(`([:,]\s*)None\b`)
)

// extractArray slices s to the span between the first '[' and the last ']',
// discarding any prose the model wrapped around the array. ok is false when no
// valid bracket pair exists and the caller should work on the raw text.
func extractArray(s string) (string, bool) {
    start := strings.Index(s, "[")
    end := strings.LastIndex(s, "]")
    if start == -1 || end == -1 || end <= start { return s, false }
    return s[start : end+1], true
}

// stripFences removes code-fence markers and stray emphasis markers that
// models sometimes wrap around JSON.
func stripFences(s string) string {
    s = strings.ReplaceAll(s, "```json", "")
    s = strings.ReplaceAll(s, "```", "")
    return strings.ReplaceAll(s, "**", "")
}

// normalizeLiterals rewrites Python literal casing into JSON literals. Only
// occurrences preceded by ':' or ',' are touched so string content survives.
func normalizeLiterals(s string) string {
    s = trueLiteralRe.ReplaceAllString(s, "${1}true")
    s = falseLiteralRe.ReplaceAllString(s, "${1}false")
    s = noneLiteralRe.ReplaceAllString(s, "${1}null")
    return s
}

// normalizeQuotes swaps single-quote string delimiters for double quotes.
// This is a blunt global replacement: an apostrophe inside real content gets
// corrupted too. Known gap, kept deliberately; a correct fix needs a
// quoting-aware scanner.
func normalizeQuotes(s string) string {
    return strings.ReplaceAll(s, "'", `"`)
}

// balanceBraces appends closing braces when opens outnumber closes, which
// recovers plans truncated mid-object by a token limit. Brackets need no
// equivalent: extractArray always ends the slice at a ']'.
func balanceBraces(s string) string {
    n := strings.Count(s, "{") - strings.Count(s, "}")
    if n > 0 { s += strings.Repeat("}", n) }
    return s
}

// Repair runs the full pipeline over a model's raw reply and returns the text
// to hand to the JSON parser. sliced is false when no bracket pair was found
// and the raw text was used unmodified.
func Repair(raw string) (repaired string, sliced bool) {
    s, sliced := extractArray(raw)
    s = stripFences(s)
    s = normalizeLiterals(s)
    s = normalizeQuotes(s)
    s = strings.TrimSpace(s)
    s = balanceBraces(s)
    return s, sliced
}
