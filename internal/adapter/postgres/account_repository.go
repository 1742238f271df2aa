package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adpilot/internal/core/domain"
)

// AccountRepository implements port.AccountRepository using pgxpool.
type AccountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository returns a new repository instance.
func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{pool: pool}
}

const accountColumns = `a.id, a.user_id, a.platform, a.account_name, a.customer_id, a.client_id,
       a.client_secret, a.refresh_token, a.api_key, a.developer_token, a.created_at, a.updated_at`

func scanAccount(row scanner, a *domain.AdAccount) error {
	return row.Scan(
		&a.ID,
		&a.UserID,
		&a.Platform,
		&a.AccountName,
		&a.CustomerID,
		&a.ClientID,
		&a.ClientSecret,
		&a.RefreshToken,
		&a.APIKey,
		&a.DeveloperToken,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
}

// UpsertAccount inserts the account or refreshes the stored credentials of
// the existing (user, platform, account name) connection.
func (r *AccountRepository) UpsertAccount(ctx context.Context, acc *domain.AdAccount) error {
	err := r.pool.QueryRow(ctx, `
        INSERT INTO ad_accounts
            (user_id, platform, account_name, customer_id, client_id, client_secret,
             refresh_token, api_key, developer_token)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
        ON CONFLICT (user_id, platform, account_name) DO UPDATE SET
            customer_id     = EXCLUDED.customer_id,
            client_id       = EXCLUDED.client_id,
            client_secret   = EXCLUDED.client_secret,
            refresh_token   = EXCLUDED.refresh_token,
            api_key         = EXCLUDED.api_key,
            developer_token = EXCLUDED.developer_token,
            updated_at      = now()
        RETURNING id, created_at, updated_at`,
		acc.UserID, acc.Platform, acc.AccountName, acc.CustomerID, acc.ClientID, acc.ClientSecret,
		acc.RefreshToken, acc.APIKey, acc.DeveloperToken,
	).Scan(&acc.ID, &acc.CreatedAt, &acc.UpdatedAt)
	return mapError(err)
}

// GetAccount returns the user's account by id.
func (r *AccountRepository) GetAccount(ctx context.Context, userID, id int64) (*domain.AdAccount, error) {
	var a domain.AdAccount
	err := scanAccount(r.pool.QueryRow(ctx, `SELECT `+accountColumns+` FROM ad_accounts a WHERE a.id = $1 AND a.user_id = $2`, id, userID), &a)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// ListAccounts returns the user's accounts. An empty platform lists all.
func (r *AccountRepository) ListAccounts(ctx context.Context, userID int64, platform domain.Platform) ([]domain.AdAccount, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT `+accountColumns+`
        FROM ad_accounts a
        WHERE a.user_id = $1 AND ($2::text = '' OR a.platform = $2::text)
        ORDER BY a.platform, a.account_name`, userID, string(platform))
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.AdAccount, error) {
		var a domain.AdAccount
		err := scanAccount(row, &a)
		return a, err
	})
}
