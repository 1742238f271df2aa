package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"adpilot/internal/core/domain"
)

var input = domain.PromptInput{
	Industry:           "Retail",
	TargetAudience:     "young adults",
	ProductsOrServices: "shoes",
	KeywordData:        "[\n  {\n    \"keyword_text\": \"buy {{ shoes }}\"\n  }\n]",
}

func TestKeywordAnalysisPrompt(t *testing.T) {
	b, err := NewBuilder()
	require.NoError(t, err)

	out, err := b.KeywordAnalysis(input)
	require.NoError(t, err)
	require.Contains(t, out, "a business in the Retail sector, targeting young adults, that sells shoes.")
	// performance data is substituted verbatim, never re-parsed as a template
	require.Contains(t, out, input.KeywordData)
	require.NotContains(t, out, "JSON array")
}

func TestKeywordRecommendationsPrompt(t *testing.T) {
	b, err := NewBuilder()
	require.NoError(t, err)

	out, err := b.KeywordRecommendations(input)
	require.NoError(t, err)
	require.Contains(t, out, "For a business in the Retail sector, targeting young adults, that sells shoes")
	require.Contains(t, out, "recommend exactly 5 new keywords")
	require.Contains(t, out, `"match_type"`)
	require.Contains(t, out, "max 25 words")
	require.Contains(t, out, input.KeywordData)

	idx := strings.Index(out, input.KeywordData)
	require.Greater(t, idx, strings.Index(out, "analyze the following keyword performance data"))
}

func TestEmptyDescriptorsRender(t *testing.T) {
	b, err := NewBuilder()
	require.NoError(t, err)

	out, err := b.KeywordAnalysis(domain.PromptInput{KeywordData: "[]"})
	require.NoError(t, err)
	require.Contains(t, out, "in the  sector")
}
