package analyzer

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Greedy span from the first { to the last }, dot matching newlines. Known
// limitation: extra braces after the object pull trailing prose into the
// span. Kept behind ExtractAnalysis so a stricter parser can be swapped in
// without touching callers.
var jsonObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)

// ExtractAnalysis parses raw model output into a keyed record. It is total
// for any input: strict object parse first, then the brace-span heuristic,
// then a fixed fallback record. Field values are not validated here.
func ExtractAnalysis(raw string) map[string]any {
	trimmed := strings.TrimSpace(raw)

	var result map[string]any
	if err := json.Unmarshal([]byte(trimmed), &result); err == nil && result != nil {
		return result
	}

	if span := jsonObjectPattern.FindString(raw); span != "" {
		result = nil
		if err := json.Unmarshal([]byte(span), &result); err == nil && result != nil {
			return result
		}
	}

	analysis := trimmed
	if analysis == "" {
		analysis = "Unable to analyze the article."
	}
	return map[string]any{
		"credibility_score":   0,
		"verdict":             "UNKNOWN",
		"confidence":          50,
		"analysis":            analysis,
		"red_flags":           "Response parsing failed",
		"credibility_factors": "Unable to assess",
		"verification_tips":   "Please try again with a different article",
	}
}
