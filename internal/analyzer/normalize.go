package analyzer

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/credlens/fakenews-detector/apimodels"
)

// ErrParse marks model output whose numeric fields cannot be coerced to
// integers. The handler maps it to 500.
var ErrParse = errors.New("unparseable analysis result")

// Normalize clamps and defaults an extracted record into the response shape.
// Every field gets an explicit type and default; nothing is trusted to be
// present or well-typed.
func Normalize(result map[string]any) (*apimodels.AnalysisResponse, error) {
	score, err := coerceInt(result["credibility_score"], 0)
	if err != nil {
		return nil, fmt.Errorf("%w: credibility_score: %v", ErrParse, err)
	}

	confidence, err := coerceInt(result["confidence"], 50)
	if err != nil {
		return nil, fmt.Errorf("%w: confidence: %v", ErrParse, err)
	}

	return &apimodels.AnalysisResponse{
		CredibilityScore:   clamp(score, 0, 10),
		Verdict:            stringOr(result["verdict"], "UNKNOWN"),
		Confidence:         clamp(confidence, 0, 100),
		Analysis:           stringOr(result["analysis"], "Analysis completed"),
		RedFlags:           stringOr(result["red_flags"], "No major red flags identified"),
		CredibilityFactors: stringOr(result["credibility_factors"], "Standard credibility markers present"),
		VerificationTips:   stringOr(result["verification_tips"], "Cross-check with multiple reliable sources"),
	}, nil
}

// coerceInt accepts the number representations the decoder and the fallback
// record produce, plus numeric strings. Floats truncate toward zero.
func coerceInt(v any, def int) (int, error) {
	switch n := v.(type) {
	case nil:
		return def, nil
	case int:
		return n, nil
	case float64:
		return int(n), nil
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, err
		}
		return int(f), nil
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, fmt.Errorf("cannot coerce %q to integer", n)
		}
		return i, nil
	default:
		return 0, fmt.Errorf("cannot coerce %T to integer", v)
	}
}

func stringOr(v any, def string) string {
	if s, ok := v.(string); ok {
		return s
	}
	return def
}

func clamp(n, lo, hi int) int {
	return min(hi, max(lo, n))
}
