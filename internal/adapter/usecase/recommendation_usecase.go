package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

// RecommendationUseCase builds keyword prompts from recent performance and
// forwards them to the text generator.
type RecommendationUseCase struct {
	reports   port.ReportUseCase
	profiles  port.ProfileRepository
	prompts   port.PromptBuilder
	generator port.TextGenerator
	logger    *slog.Logger
}

// NewRecommendationUseCase creates the recommendation service.
func NewRecommendationUseCase(reports port.ReportUseCase, profiles port.ProfileRepository, prompts port.PromptBuilder, generator port.TextGenerator, logger *slog.Logger) *RecommendationUseCase {
	return &RecommendationUseCase{reports: reports, profiles: profiles, prompts: prompts, generator: generator, logger: logger}
}

// topKeywordData returns the five best keywords of the default window by
// conversions as indented JSON.
func (u *RecommendationUseCase) topKeywordData(ctx context.Context, userID int64) (string, error) {
	stats, err := u.reports.KeywordPerformanceForUser(ctx, userID, port.DefaultWindowDays)
	if err != nil {
		return "", err
	}
	if len(stats) == 0 {
		return "", domain.ErrNoPerformanceData
	}
	data, err := json.MarshalIndent(domain.RankKeywords(stats, domain.RankByConversions), "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func promptInput(p domain.BusinessProfile, keywordData string) domain.PromptInput {
	return domain.PromptInput{
		Industry:           p.Industry,
		TargetAudience:     p.TargetAudience,
		ProductsOrServices: p.ProductsOrServices,
		KeywordData:        keywordData,
	}
}

// KeywordAnalysis returns free-form advice for the user's first business
// profile.
func (u *RecommendationUseCase) KeywordAnalysis(ctx context.Context, userID int64) (string, error) {
	data, err := u.topKeywordData(ctx, userID)
	if err != nil {
		return "", err
	}
	profiles, err := u.profiles.ListProfiles(ctx, userID)
	if err != nil {
		return "", err
	}
	if len(profiles) == 0 {
		return "", fmt.Errorf("%w: business profile", domain.ErrNotFound)
	}

	prompt, err := u.prompts.KeywordAnalysis(promptInput(profiles[0], data))
	if err != nil {
		return "", err
	}
	return u.generator.Generate(ctx, prompt)
}

// NewKeywordRecommendations asks for five new keywords for the profile.
// The answer text is always returned; Suggestions is filled only when the
// text contains the requested JSON array.
func (u *RecommendationUseCase) NewKeywordRecommendations(ctx context.Context, userID, profileID int64) (*domain.KeywordRecommendations, error) {
	profile, err := u.profiles.GetProfile(ctx, userID, profileID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, fmt.Errorf("%w: business profile %d", domain.ErrNotFound, profileID)
	}
	data, err := u.topKeywordData(ctx, userID)
	if err != nil {
		return nil, err
	}

	prompt, err := u.prompts.KeywordRecommendations(promptInput(*profile, data))
	if err != nil {
		return nil, err
	}
	text, err := u.generator.Generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	rec := &domain.KeywordRecommendations{Text: text, Suggestions: domain.ParseKeywordSuggestions(text)}
	if rec.Suggestions == nil {
		u.logger.Info("recommendation answer is not a JSON array", slog.Int64("profile_id", profileID))
	}
	return rec, nil
}
