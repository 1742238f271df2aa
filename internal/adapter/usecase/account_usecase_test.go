package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port/mocks"
)

func TestConnectAccountNormalisesCustomerID(t *testing.T) {
	accounts := mocks.NewMockAccountRepository(t)
	accounts.EXPECT().
		UpsertAccount(mock.Anything, mock.MatchedBy(func(a *domain.AdAccount) bool {
			return a.CustomerID == "1234567890" && a.AccountName == "Google Ads (1234567890)"
		})).
		Return(nil)

	svc := NewAccountUseCase(accounts, mocks.NewMockProfileRepository(t))
	err := svc.ConnectAccount(context.Background(), &domain.AdAccount{UserID: 1, Platform: domain.PlatformGoogle, CustomerID: "123-456-7890"})
	require.NoError(t, err)
}

func TestConnectAccountRejectsUnknownPlatform(t *testing.T) {
	svc := NewAccountUseCase(mocks.NewMockAccountRepository(t), mocks.NewMockProfileRepository(t))
	err := svc.ConnectAccount(context.Background(), &domain.AdAccount{UserID: 1, Platform: "tiktok", CustomerID: "1"})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateProfileConflict(t *testing.T) {
	profiles := mocks.NewMockProfileRepository(t)
	profiles.EXPECT().CreateProfile(mock.Anything, mock.Anything).Return(domain.ErrConflict)

	svc := NewAccountUseCase(mocks.NewMockAccountRepository(t), profiles)
	err := svc.CreateProfile(context.Background(), &domain.BusinessProfile{UserID: 1, BusinessName: "Stride"})
	require.ErrorIs(t, err, domain.ErrConflict)

	err = svc.CreateProfile(context.Background(), &domain.BusinessProfile{UserID: 1, BusinessName: "  "})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestListAccountsFiltersPlatform(t *testing.T) {
	accounts := mocks.NewMockAccountRepository(t)
	accounts.EXPECT().ListAccounts(mock.Anything, int64(1), domain.PlatformMeta).Return([]domain.AdAccount{{ID: 1}}, nil)

	svc := NewAccountUseCase(accounts, mocks.NewMockProfileRepository(t))
	got, err := svc.ListAccounts(context.Background(), 1, domain.PlatformMeta)
	require.NoError(t, err)
	require.Len(t, got, 1)

	_, err = svc.ListAccounts(context.Background(), 1, "myspace")
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}
