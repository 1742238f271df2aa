package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestCampaignValidateDefaults(t *testing.T) {
	c := Campaign{
		Name: "  Spring sale ",
		Keywords: []KeywordSpec{
			{Text: " running shoes "},
			{Text: "running shoes", MatchType: MatchBroad},
			{Text: ""},
			{Text: "trail shoes", MatchType: MatchPhrase},
		},
	}
	require.NoError(t, c.Validate())

	require.Equal(t, "Spring sale", c.Name)
	require.Equal(t, CampaignSearch, c.Type)
	require.Equal(t, CampaignDraft, c.Status)
	require.Equal(t, []KeywordSpec{
		{Text: "running shoes", MatchType: MatchBroad},
		{Text: "trail shoes", MatchType: MatchPhrase},
	}, c.Keywords)
}

func TestCampaignValidateRejects(t *testing.T) {
	start := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, -1)

	cases := map[string]Campaign{
		"empty name":       {Name: " "},
		"bad type":         {Name: "c", Type: "radio"},
		"bad status":       {Name: "c", Status: "archived"},
		"negative budget":  {Name: "c", DailyBudget: decimal.NewFromInt(-1)},
		"negative total":   {Name: "c", TotalBudget: decimal.NewNullDecimal(decimal.NewFromInt(-5))},
		"negative bid":     {Name: "c", BidAmount: decimal.RequireFromString("-0.01")},
		"end before start": {Name: "c", StartDate: &start, EndDate: &end},
		"bad match type":   {Name: "c", Keywords: []KeywordSpec{{Text: "x", MatchType: "fuzzy"}}},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			require.ErrorIs(t, c.Validate(), ErrInvalidInput)
		})
	}
}

func TestKeywordValidate(t *testing.T) {
	k := Keyword{Text: " shoes "}
	require.NoError(t, k.Validate())
	require.Equal(t, "shoes", k.Text)
	require.Equal(t, MatchBroad, k.MatchType)
	require.Equal(t, KeywordActive, k.Status)

	long := Keyword{Text: strings.Repeat("a", 101)}
	require.ErrorIs(t, long.Validate(), ErrInvalidInput)

	neg := Keyword{Text: "x", BidAmount: decimal.NewNullDecimal(decimal.NewFromInt(-1))}
	require.ErrorIs(t, neg.Validate(), ErrInvalidInput)
}

func TestAdAccountValidate(t *testing.T) {
	a := AdAccount{Platform: PlatformGoogle, CustomerID: " 123-456-7890 "}
	require.NoError(t, a.Validate())
	require.Equal(t, "1234567890", a.CustomerID)
	require.Equal(t, "Google Ads (1234567890)", a.AccountName)

	require.ErrorIs(t, (&AdAccount{Platform: "tiktok", AccountName: "x"}).Validate(), ErrInvalidInput)
	require.ErrorIs(t, (&AdAccount{Platform: PlatformMeta}).Validate(), ErrInvalidInput)
}

func TestBusinessProfileValidate(t *testing.T) {
	p := BusinessProfile{BusinessName: " Acme ", Industry: " retail "}
	require.NoError(t, p.Validate())
	require.Equal(t, "Acme", p.BusinessName)
	require.Equal(t, "retail", p.Industry)

	require.ErrorIs(t, (&BusinessProfile{}).Validate(), ErrInvalidInput)
}
