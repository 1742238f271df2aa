package usecase

import (
	"context"
	"fmt"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

// AccountUseCase manages ad-account connections and business profiles.
type AccountUseCase struct {
	accounts port.AccountRepository
	profiles port.ProfileRepository
}

// NewAccountUseCase creates the account service.
func NewAccountUseCase(accounts port.AccountRepository, profiles port.ProfileRepository) *AccountUseCase {
	return &AccountUseCase{accounts: accounts, profiles: profiles}
}

// ConnectAccount stores a platform account, refreshing the credentials of
// an existing connection with the same name.
func (u *AccountUseCase) ConnectAccount(ctx context.Context, acc *domain.AdAccount) error {
	if err := acc.Validate(); err != nil {
		return err
	}
	return u.accounts.UpsertAccount(ctx, acc)
}

func (u *AccountUseCase) ListAccounts(ctx context.Context, userID int64, platform domain.Platform) ([]domain.AdAccount, error) {
	if platform != "" && !platform.Valid() {
		return nil, fmt.Errorf("%w: unknown platform %q", domain.ErrInvalidInput, platform)
	}
	return u.accounts.ListAccounts(ctx, userID, platform)
}

// CreateProfile stores a business profile. Names are unique per user.
func (u *AccountUseCase) CreateProfile(ctx context.Context, p *domain.BusinessProfile) error {
	if err := p.Validate(); err != nil {
		return err
	}
	return u.profiles.CreateProfile(ctx, p)
}

func (u *AccountUseCase) ListProfiles(ctx context.Context, userID int64) ([]domain.BusinessProfile, error) {
	return u.profiles.ListProfiles(ctx, userID)
}
