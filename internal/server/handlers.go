package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/credlens/fakenews-detector/apimodels"
	"github.com/credlens/fakenews-detector/internal/analyzer"
	"github.com/credlens/fakenews-detector/internal/llm"
)

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if !isJSONRequest(r) {
		writeError(w, http.StatusBadRequest, "Content-Type must be application/json")
		return
	}

	var payload map[string]any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || len(payload) == 0 {
		writeError(w, http.StatusBadRequest, "No JSON data provided")
		return
	}
	defer r.Body.Close()

	text, _ := payload["text"].(string)
	text = strings.TrimSpace(text)

	if ok, message := analyzer.ValidateArticleText(text); !ok {
		writeError(w, http.StatusBadRequest, message)
		return
	}

	result, err := s.analyzer.Analyze(r.Context(), text)
	if err != nil {
		switch {
		case errors.Is(err, llm.ErrUnavailable):
			writeError(w, http.StatusServiceUnavailable,
				"AI analysis service is temporarily unavailable. Please try again later.")
		case errors.Is(err, analyzer.ErrParse):
			writeError(w, http.StatusInternalServerError,
				"Failed to parse analysis results. Please try again.")
		default:
			slog.Error("analysis failed unexpectedly", "error", err)
			writeError(w, http.StatusInternalServerError,
				"An unexpected error occurred. Please try again.")
		}
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, apimodels.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().Format(time.RFC3339),
		Service:   serviceName,
	})
}

// isJSONRequest accepts application/json and +json suffixed media types.
func isJSONRequest(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return false
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encoding response failed", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, apimodels.ErrorResponse{Error: message})
}
