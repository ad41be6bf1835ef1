package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractAnalysisStrictJSON(t *testing.T) {
	raw := `{"credibility_score": 8, "verdict": "CREDIBLE", "confidence": 90,
		"analysis": "well sourced", "red_flags": "none",
		"credibility_factors": "named sources", "verification_tips": "check archives"}`

	result := ExtractAnalysis(raw)

	assert.Equal(t, float64(8), result["credibility_score"])
	assert.Equal(t, "CREDIBLE", result["verdict"])
	assert.Equal(t, float64(90), result["confidence"])
	assert.Equal(t, "well sourced", result["analysis"])
	assert.Equal(t, "none", result["red_flags"])
	assert.Equal(t, "named sources", result["credibility_factors"])
	assert.Equal(t, "check archives", result["verification_tips"])
}

func TestExtractAnalysisStrictJSONWithWhitespace(t *testing.T) {
	raw := "\n\n  {\"verdict\": \"FAKE\"}  \n"
	result := ExtractAnalysis(raw)
	assert.Equal(t, "FAKE", result["verdict"])
}

func TestExtractAnalysisEmbeddedJSON(t *testing.T) {
	raw := "Sure! Here is the analysis you asked for:\n" +
		`{"credibility_score": 3, "verdict": "SUSPICIOUS"}` +
		"\nLet me know if you need anything else."

	result := ExtractAnalysis(raw)

	assert.Equal(t, float64(3), result["credibility_score"])
	assert.Equal(t, "SUSPICIOUS", result["verdict"])
}

func TestExtractAnalysisSpansFirstToLastBrace(t *testing.T) {
	// Two fragments: the greedy span covers both and fails to parse, so the
	// fallback record is returned. Documented heuristic behavior.
	raw := `{"verdict": "FAKE"} some prose {"verdict": "CREDIBLE"}`

	result := ExtractAnalysis(raw)

	assert.Equal(t, "UNKNOWN", result["verdict"])
	assert.Equal(t, "Response parsing failed", result["red_flags"])
}

func TestExtractAnalysisMultilineEmbeddedJSON(t *testing.T) {
	raw := "```json\n{\n  \"verdict\": \"MIXED\",\n  \"confidence\": 60\n}\n```"

	result := ExtractAnalysis(raw)

	assert.Equal(t, "MIXED", result["verdict"])
	assert.Equal(t, float64(60), result["confidence"])
}

func TestExtractAnalysisPlainProseFallback(t *testing.T) {
	raw := "  I could not produce structured output for this article.  "

	result := ExtractAnalysis(raw)

	assert.Equal(t, 0, result["credibility_score"])
	assert.Equal(t, "UNKNOWN", result["verdict"])
	assert.Equal(t, 50, result["confidence"])
	assert.Equal(t, "I could not produce structured output for this article.", result["analysis"])
	assert.Equal(t, "Response parsing failed", result["red_flags"])
	assert.Equal(t, "Unable to assess", result["credibility_factors"])
	assert.Equal(t, "Please try again with a different article", result["verification_tips"])
}

func TestExtractAnalysisEmptyInputFallback(t *testing.T) {
	result := ExtractAnalysis("   ")

	assert.Equal(t, "UNKNOWN", result["verdict"])
	assert.Equal(t, "Unable to analyze the article.", result["analysis"])
}

func TestExtractAnalysisNonObjectJSON(t *testing.T) {
	// A bare array parses as JSON but not as an object; no braces means no
	// span either, so the fallback applies with the raw text as analysis.
	result := ExtractAnalysis(`[1, 2, 3]`)

	assert.Equal(t, "UNKNOWN", result["verdict"])
	assert.Equal(t, "[1, 2, 3]", result["analysis"])
}

func TestExtractAnalysisIsTotal(t *testing.T) {
	inputs := []string{
		"",
		"{",
		"}{",
		"{{{}}}",
		`{"unterminated": `,
		"null",
		"plain text with } a stray brace",
	}
	for _, in := range inputs {
		result := ExtractAnalysis(in)
		assert.NotNil(t, result, "input %q", in)
		assert.Contains(t, result, "verdict", "input %q", in)
	}
}
