package postgres

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"adpilot/internal/core/domain"
	"adpilot/internal/db"
)

// testPool connects to the database named by ADPILOT_TEST_DSN, migrates it
// and empties every table. Tests using it are skipped when the variable is
// unset.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("ADPILOT_TEST_DSN")
	if dsn == "" {
		t.Skip("ADPILOT_TEST_DSN is not set")
	}
	require.NoError(t, db.Migrate(dsn, slog.New(slog.NewTextHandler(io.Discard, nil))))

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(ctx, `TRUNCATE users RESTART IDENTITY CASCADE`)
	require.NoError(t, err)
	return pool
}

type fixture struct {
	pool      *pgxpool.Pool
	campaigns *CampaignRepository
	perf      *PerformanceRepository
	userID    int64
	accountID int64
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	pool := testPool(t)
	ctx := context.Background()

	f := fixture{
		pool:      pool,
		campaigns: NewCampaignRepository(pool),
		perf:      NewPerformanceRepository(pool),
	}
	require.NoError(t, pool.QueryRow(ctx, `INSERT INTO users (username) VALUES ('tester') RETURNING id`).Scan(&f.userID))

	acc := &domain.AdAccount{UserID: f.userID, Platform: domain.PlatformGoogle, AccountName: "Main", CustomerID: "1234567890"}
	require.NoError(t, NewAccountRepository(pool).UpsertAccount(ctx, acc))
	f.accountID = acc.ID
	return f
}

func (f fixture) campaign(t *testing.T, name string, status domain.CampaignStatus) int64 {
	t.Helper()
	c := &domain.Campaign{
		UserID:      f.userID,
		AdAccountID: f.accountID,
		Name:        name,
		DailyBudget: decimal.NewFromInt(50),
		BidAmount:   decimal.NewFromInt(1),
		Type:        domain.CampaignSearch,
		Status:      status,
	}
	require.NoError(t, f.campaigns.CreateCampaign(context.Background(), c))
	return c.ID
}

func (f fixture) keyword(t *testing.T, campaignID int64, text, platformID string) int64 {
	t.Helper()
	k := &domain.Keyword{
		CampaignID:        campaignID,
		Text:              text,
		MatchType:         domain.MatchExact,
		PlatformKeywordID: platformID,
		Status:            domain.KeywordActive,
	}
	require.NoError(t, f.campaigns.AddKeyword(context.Background(), k))
	return k.ID
}

func (f fixture) deleteKeyword(t *testing.T, id int64) {
	t.Helper()
	ctx := context.Background()
	k, err := f.campaigns.GetKeyword(ctx, f.userID, id)
	require.NoError(t, err)
	require.NotNil(t, k)
	k.Status = domain.KeywordDeleted
	require.NoError(t, f.campaigns.UpdateKeyword(ctx, k))
}

func day(d int) time.Time {
	return time.Date(2024, time.March, d, 0, 0, 0, 0, time.UTC)
}

func row(keywordID int64, date time.Time, impressions, clicks, cost int64) domain.KeywordPerformance {
	return domain.KeywordPerformance{
		KeywordID: keywordID,
		Date:      date,
		Metrics: domain.Metrics{
			Impressions:     impressions,
			Clicks:          clicks,
			Cost:            decimal.NewFromInt(cost),
			Conversions:     decimal.NewFromInt(1),
			ConversionValue: decimal.NewFromInt(cost * 2),
		},
	}
}

func requireMetrics(t *testing.T, m domain.Metrics, impressions, clicks, cost int64) {
	t.Helper()
	require.Equal(t, impressions, m.Impressions)
	require.Equal(t, clicks, m.Clicks)
	require.True(t, m.Cost.Equal(decimal.NewFromInt(cost)), "cost %s", m.Cost)
}

func TestSaveDailyPerformanceIsIdempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	withKeywords := f.campaign(t, "Shoes", domain.CampaignActive)
	empty := f.campaign(t, "Socks", domain.CampaignActive)
	a := f.keyword(t, withKeywords, "running shoes", "1001")
	b := f.keyword(t, withKeywords, "trail shoes", "1002")

	date := day(14)
	rows := []domain.KeywordPerformance{row(a, date, 100, 10, 5), row(b, date, 200, 30, 15)}
	campaignIDs := []int64{withKeywords, empty}

	read := func() (domain.CampaignPerformance, domain.CampaignPerformance) {
		full, err := f.perf.CampaignDaily(ctx, withKeywords, date, date)
		require.NoError(t, err)
		require.Len(t, full, 1)
		zero, err := f.perf.CampaignDaily(ctx, empty, date, date)
		require.NoError(t, err)
		require.Len(t, zero, 1)
		return full[0], zero[0]
	}

	require.NoError(t, f.perf.SaveDailyPerformance(ctx, date, rows, campaignIDs))
	full, zero := read()
	requireMetrics(t, full.Metrics, 300, 40, 20)
	require.True(t, full.Conversions.Equal(decimal.NewFromInt(2)))
	require.True(t, full.ConversionValue.Equal(decimal.NewFromInt(40)))
	requireMetrics(t, zero.Metrics, 0, 0, 0)
	require.True(t, zero.Conversions.IsZero())

	require.NoError(t, f.perf.SaveDailyPerformance(ctx, date, rows, campaignIDs))
	fullAgain, zeroAgain := read()
	requireMetrics(t, fullAgain.Metrics, 300, 40, 20)
	requireMetrics(t, zeroAgain.Metrics, 0, 0, 0)

	var keywordRows, campaignRows int
	require.NoError(t, f.pool.QueryRow(ctx, `SELECT count(*) FROM keyword_performance`).Scan(&keywordRows))
	require.NoError(t, f.pool.QueryRow(ctx, `SELECT count(*) FROM campaign_performance`).Scan(&campaignRows))
	require.Equal(t, 2, keywordRows)
	require.Equal(t, 2, campaignRows)
}

func TestSaveDailyPerformanceReplacesRestatedRow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	c := f.campaign(t, "Shoes", domain.CampaignActive)
	a := f.keyword(t, c, "running shoes", "1001")
	date := day(14)

	require.NoError(t, f.perf.SaveDailyPerformance(ctx, date, []domain.KeywordPerformance{row(a, date, 100, 10, 5)}, []int64{c}))
	require.NoError(t, f.perf.SaveDailyPerformance(ctx, date, []domain.KeywordPerformance{row(a, date, 120, 12, 6)}, []int64{c}))

	daily, err := f.perf.CampaignDaily(ctx, c, date, date)
	require.NoError(t, err)
	require.Len(t, daily, 1)
	requireMetrics(t, daily[0].Metrics, 120, 12, 6)
}

func TestKeywordTotalsInclusiveRange(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	c := f.campaign(t, "Shoes", domain.CampaignActive)
	other := f.campaign(t, "Socks", domain.CampaignActive)
	a := f.keyword(t, c, "running shoes", "1001")
	b := f.keyword(t, c, "trail shoes", "1002")
	x := f.keyword(t, other, "wool socks", "2001")

	save := func(date time.Time, rows ...domain.KeywordPerformance) {
		require.NoError(t, f.perf.SaveDailyPerformance(ctx, date, rows, []int64{c, other}))
	}
	save(day(9), row(a, day(9), 1000, 500, 100))
	save(day(10), row(a, day(10), 100, 5, 2), row(b, day(10), 300, 20, 8), row(x, day(10), 50, 1, 1))
	save(day(12), row(a, day(12), 100, 5, 2))
	save(day(13), row(b, day(13), 1000, 500, 100))

	totals, err := f.perf.KeywordTotalsByCampaign(ctx, c, day(10), day(12))
	require.NoError(t, err)
	require.Len(t, totals, 2)

	require.Equal(t, "trail shoes", totals[0].KeywordText)
	requireMetrics(t, totals[0].Metrics, 300, 20, 8)
	require.Equal(t, "running shoes", totals[1].KeywordText)
	require.Equal(t, domain.MatchExact, totals[1].MatchType)
	requireMetrics(t, totals[1].Metrics, 200, 10, 4)

	totals, err = f.perf.KeywordTotalsByUser(ctx, f.userID, day(10), day(12))
	require.NoError(t, err)
	require.Len(t, totals, 3)
	require.Equal(t, "trail shoes", totals[0].KeywordText)
	require.Equal(t, "running shoes", totals[1].KeywordText)
	require.Equal(t, "wool socks", totals[2].KeywordText)

	totals, err = f.perf.KeywordTotalsByCampaign(ctx, c, day(1), day(5))
	require.NoError(t, err)
	require.Empty(t, totals)
}

func TestListSyncTargetsSkipsDeletedKeywords(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	active := f.campaign(t, "Shoes", domain.CampaignActive)
	f.campaign(t, "Paused", domain.CampaignPaused)
	kept := f.keyword(t, active, "running shoes", "1001")
	gone := f.keyword(t, active, "trail shoes", "1002")
	f.keyword(t, active, "no platform id", "")
	f.deleteKeyword(t, gone)

	targets, err := f.perf.ListSyncTargets(ctx)
	require.NoError(t, err)
	require.Len(t, targets, 1)
	require.Equal(t, active, targets[0].Campaign.ID)
	require.Equal(t, f.accountID, targets[0].Account.ID)
	require.Equal(t, map[string]int64{"1001": kept}, targets[0].Keywords)
}

func TestAddKeywordRevivesDeleted(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	c := f.campaign(t, "Shoes", domain.CampaignActive)
	id := f.keyword(t, c, "running shoes", "1001")

	dup := &domain.Keyword{CampaignID: c, Text: "running shoes", MatchType: domain.MatchExact, Status: domain.KeywordActive}
	require.ErrorIs(t, f.campaigns.AddKeyword(ctx, dup), domain.ErrConflict)

	f.deleteKeyword(t, id)

	again := &domain.Keyword{
		CampaignID:        c,
		Text:              "running shoes",
		MatchType:         domain.MatchExact,
		PlatformKeywordID: "1009",
		BidAmount:         decimal.NewNullDecimal(decimal.NewFromFloat(1.5)),
		Status:            domain.KeywordActive,
	}
	require.NoError(t, f.campaigns.AddKeyword(ctx, again))
	require.Equal(t, id, again.ID)

	k, err := f.campaigns.GetKeyword(ctx, f.userID, id)
	require.NoError(t, err)
	require.Equal(t, domain.KeywordActive, k.Status)
	require.Equal(t, "1009", k.PlatformKeywordID)
	require.True(t, k.BidAmount.Valid)
	require.True(t, k.BidAmount.Decimal.Equal(decimal.NewFromFloat(1.5)))

	targets, err := f.perf.ListSyncTargets(ctx)
	require.NoError(t, err)
	require.Len(t, targets, 1)
	require.Equal(t, map[string]int64{"1009": id}, targets[0].Keywords)
}
