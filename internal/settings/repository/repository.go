package repository

import (
	"context"
	"errors"
	"fmt"

	"ironmanage_backend/platform/apperr"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userNotFoundMsg = "user not found"

// Profile is the settings view of a user row. The tax rate is stored in
// basis points.
type Profile struct {
	ID          uuid.UUID `db:"id"`
	Email       string    `db:"email"`
	CompanyName string    `db:"company_name"`
	Address     string    `db:"address"`
	Phone       string    `db:"phone"`
	TaxRateBps  int       `db:"tax_rate_bps"`
}

// UpdateSettingsParams contains data for a partial settings update.
type UpdateSettingsParams struct {
	UserID      uuid.UUID
	CompanyName *string
	Address     *string
	Phone       *string
	TaxRateBps  *int
}

// Repository defines profile storage operations.
type Repository interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (Profile, error)
	UpdateSettings(ctx context.Context, params UpdateSettingsParams) (Profile, error)
}

// Repo implements the settings repository.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new settings repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements Repository.
var _ Repository = (*Repo)(nil)

// GetProfile returns the account's profile.
func (r *Repo) GetProfile(ctx context.Context, userID uuid.UUID) (Profile, error) {
	query := `
		SELECT id, email, company_name, address, phone, tax_rate_bps
		FROM users
		WHERE id = $1`

	var p Profile
	if err := r.pool.QueryRow(ctx, query, userID).Scan(
		&p.ID, &p.Email, &p.CompanyName, &p.Address, &p.Phone, &p.TaxRateBps,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Profile{}, apperr.NotFound(userNotFoundMsg)
		}
		return Profile{}, fmt.Errorf("get profile: %w", err)
	}

	return p, nil
}

// UpdateSettings applies a partial update to the account's settings.
func (r *Repo) UpdateSettings(ctx context.Context, params UpdateSettingsParams) (Profile, error) {
	query := `
		UPDATE users
		SET company_name = COALESCE($2, company_name),
			address = COALESCE($3, address),
			phone = COALESCE($4, phone),
			tax_rate_bps = COALESCE($5, tax_rate_bps)
		WHERE id = $1
		RETURNING id, email, company_name, address, phone, tax_rate_bps`

	var p Profile
	if err := r.pool.QueryRow(ctx, query,
		params.UserID, params.CompanyName, params.Address, params.Phone, params.TaxRateBps,
	).Scan(&p.ID, &p.Email, &p.CompanyName, &p.Address, &p.Phone, &p.TaxRateBps); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Profile{}, apperr.NotFound(userNotFoundMsg)
		}
		return Profile{}, fmt.Errorf("update settings: %w", err)
	}

	return p, nil
}
