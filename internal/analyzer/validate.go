package analyzer

import (
	"strings"
	"unicode/utf8"
)

const (
	minArticleChars = 10
	maxArticleChars = 50000
)

// ValidateArticleText checks submitted article text against the length
// constraints. Limits are character counts, not bytes. Returns false with a
// user-facing message on failure.
func ValidateArticleText(text string) (bool, string) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false, "Article text cannot be empty"
	}

	length := utf8.RuneCountInString(trimmed)
	if length < minArticleChars {
		return false, "Article text is too short for meaningful analysis"
	}
	if length > maxArticleChars {
		return false, "Article text is too long (maximum 50,000 characters)"
	}

	return true, ""
}
