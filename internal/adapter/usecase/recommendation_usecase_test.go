package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
	"adpilot/internal/core/port/mocks"
)

var profile = domain.BusinessProfile{
	ID:                 3,
	UserID:             1,
	BusinessName:       "Stride",
	Industry:           "Retail",
	TargetAudience:     "runners",
	ProductsOrServices: "shoes",
}

func sixKeywords() []domain.KeywordStats {
	var stats []domain.KeywordStats
	for i, conv := range []string{"1", "6", "2", "5", "3", "4"} {
		stats = append(stats, domain.KeywordStats{
			KeywordText: string(rune('a' + i)),
			MatchType:   domain.MatchPhrase,
			Metrics:     domain.Metrics{Conversions: dec(conv)},
		})
	}
	return stats
}

func TestKeywordAnalysisUsesTopFiveAndFirstProfile(t *testing.T) {
	reports := mocks.NewMockReportUseCase(t)
	profiles := mocks.NewMockProfileRepository(t)
	prompts := mocks.NewMockPromptBuilder(t)
	gen := mocks.NewMockTextGenerator(t)

	reports.EXPECT().KeywordPerformanceForUser(mock.Anything, int64(1), port.DefaultWindowDays).Return(sixKeywords(), nil)
	profiles.EXPECT().ListProfiles(mock.Anything, int64(1)).Return([]domain.BusinessProfile{profile, {ID: 4, Industry: "Other"}}, nil)
	prompts.EXPECT().
		KeywordAnalysis(mock.MatchedBy(func(in domain.PromptInput) bool {
			var data []domain.KeywordStats
			if err := json.Unmarshal([]byte(in.KeywordData), &data); err != nil || len(data) != 5 {
				return false
			}
			return in.Industry == "Retail" && in.TargetAudience == "runners" &&
				in.ProductsOrServices == "shoes" && data[0].KeywordText == "b" && data[4].KeywordText == "c"
		})).
		Return("analysis prompt", nil)
	gen.EXPECT().Generate(mock.Anything, "analysis prompt").Return("try 'trail shoes'", nil)

	svc := NewRecommendationUseCase(reports, profiles, prompts, gen, discard)
	text, err := svc.KeywordAnalysis(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, "try 'trail shoes'", text)
}

func TestKeywordAnalysisWithoutData(t *testing.T) {
	reports := mocks.NewMockReportUseCase(t)
	reports.EXPECT().KeywordPerformanceForUser(mock.Anything, int64(1), port.DefaultWindowDays).Return(nil, nil)

	svc := NewRecommendationUseCase(reports, mocks.NewMockProfileRepository(t), mocks.NewMockPromptBuilder(t), mocks.NewMockTextGenerator(t), discard)
	text, err := svc.KeywordAnalysis(context.Background(), 1)
	if !errors.Is(err, domain.ErrNoPerformanceData) {
		t.Fatalf("expected ErrNoPerformanceData, got %v", err)
	}
	if text != "" {
		t.Fatalf("expected no text, got %q", text)
	}
}

func TestKeywordAnalysisWithoutProfile(t *testing.T) {
	reports := mocks.NewMockReportUseCase(t)
	profiles := mocks.NewMockProfileRepository(t)
	reports.EXPECT().KeywordPerformanceForUser(mock.Anything, int64(1), port.DefaultWindowDays).Return(sixKeywords(), nil)
	profiles.EXPECT().ListProfiles(mock.Anything, int64(1)).Return(nil, nil)

	svc := NewRecommendationUseCase(reports, profiles, mocks.NewMockPromptBuilder(t), mocks.NewMockTextGenerator(t), discard)
	_, err := svc.KeywordAnalysis(context.Background(), 1)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestNewKeywordRecommendationsParsesSuggestions(t *testing.T) {
	reports := mocks.NewMockReportUseCase(t)
	profiles := mocks.NewMockProfileRepository(t)
	prompts := mocks.NewMockPromptBuilder(t)
	gen := mocks.NewMockTextGenerator(t)

	answer := "```json\n[{\"keyword\":\"trail running shoes\",\"match_type\":\"phrase\",\"reason\":\"Strong clicks on running terms.\"}]\n```"

	profiles.EXPECT().GetProfile(mock.Anything, int64(1), int64(3)).Return(&profile, nil)
	reports.EXPECT().KeywordPerformanceForUser(mock.Anything, int64(1), port.DefaultWindowDays).Return(sixKeywords(), nil)
	prompts.EXPECT().KeywordRecommendations(mock.AnythingOfType("domain.PromptInput")).Return("structured prompt", nil)
	gen.EXPECT().Generate(mock.Anything, "structured prompt").Return(answer, nil)

	svc := NewRecommendationUseCase(reports, profiles, prompts, gen, discard)
	rec, err := svc.NewKeywordRecommendations(context.Background(), 1, 3)
	require.NoError(t, err)
	require.Equal(t, answer, rec.Text)
	require.Equal(t, []domain.KeywordSuggestion{{
		Keyword:   "trail running shoes",
		MatchType: "phrase",
		Reason:    "Strong clicks on running terms.",
	}}, rec.Suggestions)
}

func TestNewKeywordRecommendationsKeepsUnparsableText(t *testing.T) {
	reports := mocks.NewMockReportUseCase(t)
	profiles := mocks.NewMockProfileRepository(t)
	prompts := mocks.NewMockPromptBuilder(t)
	gen := mocks.NewMockTextGenerator(t)

	profiles.EXPECT().GetProfile(mock.Anything, int64(1), int64(3)).Return(&profile, nil)
	reports.EXPECT().KeywordPerformanceForUser(mock.Anything, int64(1), port.DefaultWindowDays).Return(sixKeywords(), nil)
	prompts.EXPECT().KeywordRecommendations(mock.Anything).Return("p", nil)
	gen.EXPECT().Generate(mock.Anything, "p").Return("Here are some ideas: trail shoes.", nil)

	rec, err := NewRecommendationUseCase(reports, profiles, prompts, gen, discard).NewKeywordRecommendations(context.Background(), 1, 3)
	require.NoError(t, err)
	require.Equal(t, "Here are some ideas: trail shoes.", rec.Text)
	require.Nil(t, rec.Suggestions)
}

func TestNewKeywordRecommendationsPropagatesGatewayErrors(t *testing.T) {
	reports := mocks.NewMockReportUseCase(t)
	profiles := mocks.NewMockProfileRepository(t)
	prompts := mocks.NewMockPromptBuilder(t)
	gen := mocks.NewMockTextGenerator(t)

	gatewayErr := errors.New("gemini: no candidates returned")
	profiles.EXPECT().GetProfile(mock.Anything, int64(1), int64(3)).Return(&profile, nil)
	reports.EXPECT().KeywordPerformanceForUser(mock.Anything, int64(1), port.DefaultWindowDays).Return(sixKeywords(), nil)
	prompts.EXPECT().KeywordRecommendations(mock.Anything).Return("p", nil)
	gen.EXPECT().Generate(mock.Anything, "p").Return("", gatewayErr)

	rec, err := NewRecommendationUseCase(reports, profiles, prompts, gen, discard).NewKeywordRecommendations(context.Background(), 1, 3)
	require.ErrorIs(t, err, gatewayErr)
	require.Nil(t, rec)
}

func TestNewKeywordRecommendationsUnknownProfile(t *testing.T) {
	profiles := mocks.NewMockProfileRepository(t)
	profiles.EXPECT().GetProfile(mock.Anything, int64(1), int64(99)).Return(nil, nil)

	svc := NewRecommendationUseCase(mocks.NewMockReportUseCase(t), profiles, mocks.NewMockPromptBuilder(t), mocks.NewMockTextGenerator(t), discard)
	_, err := svc.NewKeywordRecommendations(context.Background(), 1, 99)
	require.ErrorIs(t, err, domain.ErrNotFound)
}
