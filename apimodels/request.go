package apimodels

type AnalysisRequest struct {
	// Text is the article body to assess
	Text string `json:"text"`
}
