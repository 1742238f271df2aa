package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adpilot/internal/core/domain"
)

// ProfileRepository implements port.ProfileRepository using pgxpool.
type ProfileRepository struct {
	pool *pgxpool.Pool
}

// NewProfileRepository returns a new repository instance.
func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{pool: pool}
}

const profileColumns = `id, user_id, business_name, website_url, industry, business_description,
       products_or_services, target_audience, target_locations, created_at, updated_at`

func scanProfile(row scanner, p *domain.BusinessProfile) error {
	return row.Scan(
		&p.ID,
		&p.UserID,
		&p.BusinessName,
		&p.WebsiteURL,
		&p.Industry,
		&p.BusinessDescription,
		&p.ProductsOrServices,
		&p.TargetAudience,
		&p.TargetLocations,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
}

// CreateProfile inserts a profile. A duplicate business name for the same
// user yields domain.ErrConflict.
func (r *ProfileRepository) CreateProfile(ctx context.Context, p *domain.BusinessProfile) error {
	err := r.pool.QueryRow(ctx, `
        INSERT INTO business_profiles
            (user_id, business_name, website_url, industry, business_description,
             products_or_services, target_audience, target_locations)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING id, created_at, updated_at`,
		p.UserID, p.BusinessName, p.WebsiteURL, p.Industry, p.BusinessDescription,
		p.ProductsOrServices, p.TargetAudience, p.TargetLocations,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	return mapError(err)
}

// GetProfile returns the user's profile by id.
func (r *ProfileRepository) GetProfile(ctx context.Context, userID, id int64) (*domain.BusinessProfile, error) {
	var p domain.BusinessProfile
	err := scanProfile(r.pool.QueryRow(ctx, `SELECT `+profileColumns+` FROM business_profiles WHERE id = $1 AND user_id = $2`, id, userID), &p)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListProfiles returns the user's profiles ordered by business name.
func (r *ProfileRepository) ListProfiles(ctx context.Context, userID int64) ([]domain.BusinessProfile, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+profileColumns+` FROM business_profiles WHERE user_id = $1 ORDER BY business_name`, userID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.BusinessProfile, error) {
		var p domain.BusinessProfile
		err := scanProfile(row, &p)
		return p, err
	})
}
