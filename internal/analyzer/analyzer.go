package analyzer

import (
	"context"
	"log/slog"
	"unicode/utf8"

	"github.com/credlens/fakenews-detector/apimodels"
	"github.com/credlens/fakenews-detector/internal/llm"
)

// Analyzer runs the credibility pipeline for one article: prompt the model,
// extract the structured record from its output, normalize the fields. It
// holds no per-request state; the model provider is injected so tests can
// substitute a fake.
type Analyzer struct {
	provider llm.Provider
}

func New(provider llm.Provider) *Analyzer {
	return &Analyzer{provider: provider}
}

// Analyze assesses already-validated article text. Returns
// llm.ErrUnavailable when the model cannot be reached and ErrParse when the
// model output defeats normalization.
func (a *Analyzer) Analyze(ctx context.Context, text string) (*apimodels.AnalysisResponse, error) {
	slog.Info("analyzing article", "length", utf8.RuneCountInString(text))

	prompt := BuildPrompt(text)

	raw, err := a.provider.Generate(ctx, prompt)
	if err != nil {
		slog.Error("model generation failed", "error", err)
		return nil, err
	}
	slog.Debug("received model response", "bytes", len(raw))

	result, err := Normalize(ExtractAnalysis(raw))
	if err != nil {
		slog.Error("result normalization failed", "error", err)
		return nil, err
	}

	slog.Info("analysis completed", "score", result.CredibilityScore, "verdict", result.Verdict)
	return result, nil
}
