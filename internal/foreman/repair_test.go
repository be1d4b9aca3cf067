package foreman

import (
    "encoding/json"
    "strings"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func TestRepairStripsProseAndFences(t *testing.T) {
    raw := "Sure! Here is your plan:\n```json\n[{\"tool\": \"echo\", \"payload\": {\"text\": \"hi\"}}]\n```\nLet me know if you need anything else."
    repaired, sliced := Repair(raw)
    require.True(t, sliced)
    var parsed []map[string]any
    require.NoError(t, json.Unmarshal([]byte(repaired), &parsed))
    require.Len(t, parsed, 1)
    assert.Equal(t, "echo", parsed[0]["tool"])
}

func TestRepairSingleQuotedExample(t *testing.T) {
    raw := "```json\n[{'tool': 'file_writer', 'payload': {'filename': 'out.txt', 'content': 'hi'}}]\n```"
    repaired, sliced := Repair(raw)
    require.True(t, sliced)
    var parsed []struct {
        Tool    string         `json:"tool"`
        Payload map[string]any `json:"payload"`
    }
    require.NoError(t, json.Unmarshal([]byte(repaired), &parsed))
    require.Len(t, parsed, 1)
    assert.Equal(t, "file_writer", parsed[0].Tool)
    assert.Equal(t, "out.txt", parsed[0].Payload["filename"])
    assert.Equal(t, "hi", parsed[0].Payload["content"])
}

func TestRepairIdempotent(t *testing.T) {
    inputs := []string{
        `[{"tool": "echo", "payload": {"text": "hi"}}]`,
        `[{"tool": "file_writer", "payload": {"flag": true, "n": null, "xs": [1, 2]}}]`,
    }
    for _, in := range inputs {
        once, _ := Repair(in)
        twice, _ := Repair(once)
        assert.Equal(t, once, twice, "repair must be stable on already-valid JSON")
        assert.JSONEq(t, in, once, "valid JSON must survive repair unchanged")
    }
}

func TestRepairNormalizesPythonLiterals(t *testing.T) {
    raw := `[{"tool": "t", "payload": {"a": True, "b": False, "c": None, "keep": "True story"}}]`
    repaired, _ := Repair(raw)
    var parsed []map[string]any
    require.NoError(t, json.Unmarshal([]byte(repaired), &parsed))
    payload := parsed[0]["payload"].(map[string]any)
    assert.Equal(t, true, payload["a"])
    assert.Equal(t, false, payload["b"])
    assert.Nil(t, payload["c"])
    // literal inside string content is untouched: not preceded by ':' or ','
    assert.Equal(t, "True story", payload["keep"])
}

func TestRepairBalancesBraces(t *testing.T) {
    cases := []string{
        `[{"tool": "t", "payload": {"a": "b"`,
        `[{"a": {"b": {"c": 1`,
        "no json at all {{{",
    }
    for _, raw := range cases {
        repaired, _ := Repair(raw)
        assert.Equal(t, strings.Count(repaired, "{"), strings.Count(repaired, "}"), "raw=%q", raw)
    }
}

func TestRepairNoBracketFallback(t *testing.T) {
    raw := `{"tool": "echo", "payload": {}}`
    repaired, sliced := Repair(raw)
    assert.False(t, sliced)
    // raw text is still run through the rest of the pipeline
    assert.JSONEq(t, raw, repaired)
}

func TestRepairSlicesToOutermostBrackets(t *testing.T) {
    raw := `prose [1, 2] more prose`
    repaired, sliced := Repair(raw)
    require.True(t, sliced)
    assert.Equal(t, "[1, 2]", repaired)
}

func TestNormalizeQuotesKnownGap(t *testing.T) {
    // the naive replacement corrupts apostrophes in content; pinned on purpose
    assert.Equal(t, `{"k": "it"s"}`, normalizeQuotes(`{'k': 'it's'}`))
}
