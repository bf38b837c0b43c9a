package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"unicode"

	"github.com/sevigo/code-optimizer/internal/core"
)

const (
	minScore = 0
	maxScore = 100
)

// rawReport mirrors core.ReviewReport with pointer and raw fields so that
// missing keys can be told apart from zero values.
type rawReport struct {
	Score         json.RawMessage `json:"score"`
	Severity      *string         `json:"severity"`
	Summary       *string         `json:"summary"`
	Issues        json.RawMessage `json:"issues"`
	Complexity    json.RawMessage `json:"complexity"`
	OptimizedCode *string         `json:"optimizedCode"`
}

// parseReviewReport extracts and validates a review report from raw model
// output. It tolerates a wrapping code fence and prose around the JSON object.
// Any other deviation yields a *core.MalformedResponseError carrying an excerpt
// of raw.
func parseReviewReport(raw string) (*core.ReviewReport, error) {
	payload := extractJSONObject(stripCodeFence(raw))
	if payload == "" {
		return nil, core.NewMalformedResponseError("no JSON object found", raw)
	}

	var parsed rawReport
	if err := json.Unmarshal([]byte(payload), &parsed); err != nil {
		return nil, core.NewMalformedResponseError(err.Error(), raw)
	}

	report, reason := parsed.toReport()
	if reason != "" {
		return nil, core.NewMalformedResponseError(reason, raw)
	}
	return report, nil
}

// toReport validates the decoded fields and returns the reason for the first
// failure, or "" on success.
func (r *rawReport) toReport() (*core.ReviewReport, string) {
	score, reason := parseScore(r.Score)
	if reason != "" {
		return nil, reason
	}
	if r.Severity == nil {
		return nil, "missing severity"
	}
	if !core.IsReportSeverity(*r.Severity) {
		return nil, fmt.Sprintf("unknown severity %q", *r.Severity)
	}
	if r.Summary == nil {
		return nil, "missing summary"
	}
	if !isJSONArray(r.Issues) {
		return nil, "issues must be an array"
	}
	if r.OptimizedCode == nil {
		return nil, "missing optimizedCode"
	}

	report := &core.ReviewReport{
		Score:         score,
		Severity:      *r.Severity,
		Summary:       *r.Summary,
		Issues:        []core.Issue{},
		OptimizedCode: *r.OptimizedCode,
	}
	if err := json.Unmarshal(r.Issues, &report.Issues); err != nil {
		return nil, "invalid issues: " + err.Error()
	}
	if isJSONNull(r.Complexity) {
		return report, ""
	}
	if !isJSONObject(r.Complexity) {
		return nil, "complexity must be an object"
	}
	if err := json.Unmarshal(r.Complexity, &report.Complexity); err != nil {
		return nil, "invalid complexity: " + err.Error()
	}
	return report, ""
}

func parseScore(raw json.RawMessage) (int, string) {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, "missing score"
	}
	var score float64
	if err := json.Unmarshal(raw, &score); err != nil {
		return 0, "score must be a number"
	}
	if score != math.Trunc(score) {
		return 0, fmt.Sprintf("score must be an integer, got %v", score)
	}
	if score < minScore || score > maxScore {
		return 0, fmt.Sprintf("score %v out of range [%d,%d]", score, minScore, maxScore)
	}
	return int(score), ""
}

func isJSONNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

func isJSONArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}

func isJSONObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{'
}

// stripCodeFence removes a ```json ... ``` (or bare ```) wrapper, on one line
// or several. The closing fence is the last one in the text, so fences inside
// optimizedCode survive.
func stripCodeFence(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	// drop the language tag up to the object or whitespace
	inner := strings.TrimLeftFunc(trimmed[len("```"):], func(r rune) bool {
		return r != '{' && !unicode.IsSpace(r)
	})
	if lastFence := strings.LastIndex(inner, "```"); lastFence >= 0 {
		inner = inner[:lastFence]
	}
	return strings.TrimSpace(inner)
}

// extractJSONObject returns the span from the first '{' to the last '}', or
// "" when s holds no object.
func extractJSONObject(s string) string {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end < start {
		return ""
	}
	return s[start : end+1]
}
