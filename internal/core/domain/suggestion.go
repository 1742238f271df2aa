package domain

import (
	"encoding/json"
	"strings"
)

// KeywordSuggestion is one keyword proposed by the text-generation model.
type KeywordSuggestion struct {
	Keyword   string `json:"keyword"`
	MatchType string `json:"match_type"`
	Reason    string `json:"reason"`
}

// KeywordRecommendations is the model's answer to a structured
// recommendation prompt. Suggestions is filled when the text parses as the
// requested JSON array; the model is not forced to comply.
type KeywordRecommendations struct {
	Text        string              `json:"text"`
	Suggestions []KeywordSuggestion `json:"suggestions,omitempty"`
}

// PromptInput carries the business descriptors and serialised performance
// data substituted into prompt templates.
type PromptInput struct {
	Industry           string
	TargetAudience     string
	ProductsOrServices string
	KeywordData        string
}

// ParseKeywordSuggestions extracts the JSON array of suggestions from a
// model answer. The array may be bare, wrapped in a ```json fence or
// surrounded by prose. It returns nil when no array can be decoded.
func ParseKeywordSuggestions(text string) []KeywordSuggestion {
	candidates := []string{strings.TrimSpace(text)}
	for _, fence := range []string{"```json", "```"} {
		if idx := strings.Index(text, fence); idx != -1 {
			start := idx + len(fence)
			if end := strings.Index(text[start:], "```"); end != -1 {
				candidates = append(candidates, strings.TrimSpace(text[start:start+end]))
			}
		}
	}
	if start := strings.Index(text, "["); start != -1 {
		if end := strings.LastIndex(text, "]"); end > start {
			candidates = append(candidates, text[start:end+1])
		}
	}

	for _, c := range candidates {
		var out []KeywordSuggestion
		if err := json.Unmarshal([]byte(c), &out); err == nil && len(out) > 0 {
			return out
		}
	}
	return nil
}
