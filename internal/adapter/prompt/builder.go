// Package prompt renders the keyword prompts sent to the text generator.
package prompt

import (
	"fmt"

	"github.com/osteele/liquid"

	"adpilot/internal/core/domain"
)

// Builder implements port.PromptBuilder with liquid templates parsed once
// at construction.
type Builder struct {
	analysis        *liquid.Template
	recommendations *liquid.Template
}

// NewBuilder parses the built-in templates.
func NewBuilder() (*Builder, error) {
	engine := liquid.NewEngine()

	analysis, err := engine.ParseString(keywordAnalysisTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse keyword analysis template: %w", err)
	}
	recommendations, err := engine.ParseString(keywordRecommendationsTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse keyword recommendations template: %w", err)
	}
	return &Builder{analysis: analysis, recommendations: recommendations}, nil
}

// KeywordAnalysis renders the free-form analysis prompt.
func (b *Builder) KeywordAnalysis(in domain.PromptInput) (string, error) {
	return render(b.analysis, in)
}

// KeywordRecommendations renders the prompt asking for a JSON array of
// exactly five suggestions.
func (b *Builder) KeywordRecommendations(in domain.PromptInput) (string, error) {
	return render(b.recommendations, in)
}

func render(tpl *liquid.Template, in domain.PromptInput) (string, error) {
	out, err := tpl.RenderString(liquid.Bindings{
		"industry":        in.Industry,
		"target_audience": in.TargetAudience,
		"main_products":   in.ProductsOrServices,
		"keyword_data":    in.KeywordData,
	})
	if err != nil {
		return "", fmt.Errorf("render prompt: %w", err)
	}
	return out, nil
}
