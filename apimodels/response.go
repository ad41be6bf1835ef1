package apimodels

// AnalysisResponse is the finalized credibility assessment returned to the
// client. Score and confidence are clamped server-side; the verdict is passed
// through from the model verbatim.
type AnalysisResponse struct {
	// Assessed trustworthiness, 0 (fabricated) to 10 (credible)
	CredibilityScore int `json:"credibility_score"`

	// Categorical label, e.g. CREDIBLE/SUSPICIOUS/FAKE/MIXED/UNKNOWN
	Verdict string `json:"verdict"`

	// Model's self-reported confidence, 0-100
	Confidence int `json:"confidence"`

	// Detailed explanation of the findings
	Analysis string `json:"analysis"`

	// Main credibility concerns
	RedFlags string `json:"red_flags"`

	// Positive credibility indicators
	CredibilityFactors string `json:"credibility_factors"`

	// Suggestions for independent fact-checking
	VerificationTips string `json:"verification_tips"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Service   string `json:"service"`
}
