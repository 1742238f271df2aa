package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
	"adpilot/internal/core/port/mocks"
)

func TestCreateCampaign(t *testing.T) {
	campaigns := mocks.NewMockCampaignRepository(t)
	accounts := mocks.NewMockAccountRepository(t)
	profiles := mocks.NewMockProfileRepository(t)

	profileID := int64(3)
	c := &domain.Campaign{
		UserID:            1,
		AdAccountID:       2,
		BusinessProfileID: &profileID,
		Name:              "  Spring sale ",
		DailyBudget:       dec("25.00"),
		Keywords: []domain.KeywordSpec{
			{Text: "running shoes"},
			{Text: "running shoes", MatchType: domain.MatchBroad},
			{Text: " ", MatchType: domain.MatchExact},
		},
	}

	accounts.EXPECT().GetAccount(mock.Anything, int64(1), int64(2)).Return(&domain.AdAccount{ID: 2}, nil)
	profiles.EXPECT().GetProfile(mock.Anything, int64(1), int64(3)).Return(&domain.BusinessProfile{ID: 3}, nil)
	campaigns.EXPECT().
		CreateCampaign(mock.Anything, c).
		Run(func(_ context.Context, c *domain.Campaign) { c.ID = 10 }).
		Return(nil)
	keywords := []domain.Keyword{{ID: 100, CampaignID: 10, Text: "running shoes", MatchType: domain.MatchBroad}}
	campaigns.EXPECT().ListKeywords(mock.Anything, int64(10)).Return(keywords, nil)

	svc := NewCampaignUseCase(campaigns, accounts, profiles)
	detail, err := svc.CreateCampaign(context.Background(), c)
	if err != nil {
		t.Fatalf("CreateCampaign error: %v", err)
	}
	require.EqualValues(t, 10, detail.Campaign.ID)
	require.Equal(t, "Spring sale", detail.Campaign.Name)
	require.Equal(t, domain.CampaignDraft, detail.Campaign.Status)
	require.Equal(t, domain.CampaignSearch, detail.Campaign.Type)
	require.Equal(t, []domain.KeywordSpec{{Text: "running shoes", MatchType: domain.MatchBroad}}, detail.Campaign.Keywords)
	require.Equal(t, keywords, detail.Keywords)
}

func TestCreateCampaignForeignAccount(t *testing.T) {
	accounts := mocks.NewMockAccountRepository(t)
	accounts.EXPECT().GetAccount(mock.Anything, int64(1), int64(2)).Return(nil, nil)

	svc := NewCampaignUseCase(mocks.NewMockCampaignRepository(t), accounts, mocks.NewMockProfileRepository(t))
	_, err := svc.CreateCampaign(context.Background(), &domain.Campaign{UserID: 1, AdAccountID: 2, Name: "x"})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateCampaignValidation(t *testing.T) {
	svc := NewCampaignUseCase(mocks.NewMockCampaignRepository(t), mocks.NewMockAccountRepository(t), mocks.NewMockProfileRepository(t))

	cases := []domain.Campaign{
		{Name: ""},
		{Name: "x", DailyBudget: dec("-1")},
		{Name: "x", Type: "radio"},
		{Name: "x", Keywords: []domain.KeywordSpec{{Text: "a", MatchType: "fuzzy"}}},
	}
	for _, c := range cases {
		_, err := svc.CreateCampaign(context.Background(), &c)
		if !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %+v, got %v", c, err)
		}
	}
}

func TestAddKeywordChecksOwnership(t *testing.T) {
	campaigns := mocks.NewMockCampaignRepository(t)
	campaigns.EXPECT().GetCampaign(mock.Anything, int64(1), int64(10)).Return(nil, nil)

	svc := NewCampaignUseCase(campaigns, mocks.NewMockAccountRepository(t), mocks.NewMockProfileRepository(t))
	err := svc.AddKeyword(context.Background(), 1, &domain.Keyword{CampaignID: 10, Text: "shoes"})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAddKeywordDefaults(t *testing.T) {
	campaigns := mocks.NewMockCampaignRepository(t)
	campaigns.EXPECT().GetCampaign(mock.Anything, int64(1), int64(10)).Return(&domain.Campaign{ID: 10}, nil)
	campaigns.EXPECT().
		AddKeyword(mock.Anything, mock.MatchedBy(func(k *domain.Keyword) bool {
			return k.Text == "shoes" && k.MatchType == domain.MatchBroad && k.Status == domain.KeywordActive
		})).
		Return(nil)

	svc := NewCampaignUseCase(campaigns, mocks.NewMockAccountRepository(t), mocks.NewMockProfileRepository(t))
	require.NoError(t, svc.AddKeyword(context.Background(), 1, &domain.Keyword{CampaignID: 10, Text: " shoes "}))
}

func TestUpdateKeywordPatch(t *testing.T) {
	campaigns := mocks.NewMockCampaignRepository(t)
	existing := &domain.Keyword{ID: 5, CampaignID: 10, Text: "shoes", MatchType: domain.MatchExact, Status: domain.KeywordActive}
	campaigns.EXPECT().GetKeyword(mock.Anything, int64(1), int64(5)).Return(existing, nil)
	campaigns.EXPECT().UpdateKeyword(mock.Anything, existing).Return(nil)

	paused := domain.KeywordPaused
	bid := decimal.NewNullDecimal(dec("1.25"))
	platformID := "9001"

	svc := NewCampaignUseCase(campaigns, mocks.NewMockAccountRepository(t), mocks.NewMockProfileRepository(t))
	k, err := svc.UpdateKeyword(context.Background(), 1, 5, port.KeywordPatch{Status: &paused, BidAmount: &bid, PlatformKeywordID: &platformID})
	require.NoError(t, err)
	require.Equal(t, domain.KeywordPaused, k.Status)
	require.True(t, k.BidAmount.Valid)
	require.True(t, k.BidAmount.Decimal.Equal(dec("1.25")))
	require.Equal(t, "9001", k.PlatformKeywordID)
}

func TestDeleteKeywordIsSoft(t *testing.T) {
	campaigns := mocks.NewMockCampaignRepository(t)
	campaigns.EXPECT().GetKeyword(mock.Anything, int64(1), int64(5)).Return(&domain.Keyword{ID: 5, Text: "shoes", Status: domain.KeywordActive}, nil)
	campaigns.EXPECT().
		UpdateKeyword(mock.Anything, mock.MatchedBy(func(k *domain.Keyword) bool { return k.Status == domain.KeywordDeleted })).
		Return(nil)

	svc := NewCampaignUseCase(campaigns, mocks.NewMockAccountRepository(t), mocks.NewMockProfileRepository(t))
	require.NoError(t, svc.DeleteKeyword(context.Background(), 1, 5))
}

func TestSetCampaignStatus(t *testing.T) {
	campaigns := mocks.NewMockCampaignRepository(t)
	campaigns.EXPECT().UpdateCampaignStatus(mock.Anything, int64(1), int64(10), domain.CampaignActive).Return(nil)

	svc := NewCampaignUseCase(campaigns, mocks.NewMockAccountRepository(t), mocks.NewMockProfileRepository(t))
	require.NoError(t, svc.SetCampaignStatus(context.Background(), 1, 10, domain.CampaignActive))
	require.ErrorIs(t, svc.SetCampaignStatus(context.Background(), 1, 10, "archived"), domain.ErrInvalidInput)
}
