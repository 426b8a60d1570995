package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ironmanage_backend/platform/apperr"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const materialNotFoundMsg = "material not found"

// Postgres error code for foreign key violations.
const foreignKeyViolation = "23503"

// Material is the database model for a stock material. Prices are stored
// in cents and bar lengths in millimeters.
type Material struct {
	ID               uuid.UUID `db:"id"`
	UserID           uuid.UUID `db:"user_id"`
	Name             string    `db:"name"`
	Category         string    `db:"category"`
	PriceBlackCents  int64     `db:"price_black_cents"`
	PriceZintroCents int64     `db:"price_zintro_cents"`
	Stock            int       `db:"stock"`
	BarLengthMm      int64     `db:"bar_length_mm"`
	CreatedAt        time.Time `db:"created_at"`
}

// Offcut is one ledger entry of leftover bar material.
type Offcut struct {
	ID           uuid.UUID `db:"id"`
	MaterialID   uuid.UUID `db:"material_id"`
	MaterialName string    `db:"material_name"`
	LengthMm     int64     `db:"length_mm"`
	ProjectID    uuid.UUID `db:"project_id"`
	CreatedAt    time.Time `db:"created_at"`
}

// UpsertMaterialParams contains data for creating or restocking a material.
type UpsertMaterialParams struct {
	UserID           uuid.UUID
	Name             string
	Category         string
	PriceBlackCents  int64
	PriceZintroCents int64
	Stock            int
	BarLengthMm      int64
}

// UpdateMaterialParams contains data for a partial material update.
type UpdateMaterialParams struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	Name             *string
	Category         *string
	PriceBlackCents  *int64
	PriceZintroCents *int64
	Stock            *int
	BarLengthMm      *int64
}

// Repository defines material storage operations.
type Repository interface {
	Upsert(ctx context.Context, params UpsertMaterialParams) (Material, error)
	Update(ctx context.Context, params UpdateMaterialParams) (Material, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID) ([]Material, error)
	ListOffcuts(ctx context.Context, userID uuid.UUID) ([]Offcut, error)
}

// Repo implements the material repository.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new material repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements Repository.
var _ Repository = (*Repo)(nil)

const materialColumns = `id, user_id, name, category, price_black_cents, price_zintro_cents, stock, bar_length_mm, created_at`

// Upsert inserts a material, or restocks an existing one when the owner
// already has a material with the same name ignoring case. The incoming
// stock is added on top and prices, category and bar length are refreshed.
// Relies on the unique index on (user_id, lower(name)).
func (r *Repo) Upsert(ctx context.Context, params UpsertMaterialParams) (Material, error) {
	query := `
		INSERT INTO materials (id, user_id, name, category, price_black_cents, price_zintro_cents, stock, bar_length_mm)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id, lower(name)) DO UPDATE SET
			category = EXCLUDED.category,
			price_black_cents = EXCLUDED.price_black_cents,
			price_zintro_cents = EXCLUDED.price_zintro_cents,
			stock = materials.stock + EXCLUDED.stock,
			bar_length_mm = EXCLUDED.bar_length_mm
		RETURNING ` + materialColumns

	row := r.pool.QueryRow(ctx, query,
		uuid.New(), params.UserID, params.Name, params.Category,
		params.PriceBlackCents, params.PriceZintroCents, params.Stock, params.BarLengthMm,
	)
	material, err := scanMaterial(row)
	if err != nil {
		return Material{}, fmt.Errorf("upsert material: %w", err)
	}

	return material, nil
}

// Update modifies a material within the owner's scope.
func (r *Repo) Update(ctx context.Context, params UpdateMaterialParams) (Material, error) {
	query := `
		UPDATE materials
		SET name = COALESCE($3, name),
			category = COALESCE($4, category),
			price_black_cents = COALESCE($5, price_black_cents),
			price_zintro_cents = COALESCE($6, price_zintro_cents),
			stock = COALESCE($7, stock),
			bar_length_mm = COALESCE($8, bar_length_mm)
		WHERE id = $1 AND user_id = $2
		RETURNING ` + materialColumns

	row := r.pool.QueryRow(ctx, query,
		params.ID, params.UserID, params.Name, params.Category,
		params.PriceBlackCents, params.PriceZintroCents, params.Stock, params.BarLengthMm,
	)
	material, err := scanMaterial(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Material{}, apperr.NotFound(materialNotFoundMsg)
		}
		return Material{}, fmt.Errorf("update material: %w", err)
	}

	return material, nil
}

// Delete removes a material within the owner's scope. Materials referenced
// by project items or offcuts cannot be deleted.
func (r *Repo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	query := `DELETE FROM materials WHERE id = $1 AND user_id = $2`
	result, err := r.pool.Exec(ctx, query, id, userID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			return apperr.Conflict("material is referenced by existing projects")
		}
		return fmt.Errorf("delete material: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperr.NotFound(materialNotFoundMsg)
	}
	return nil
}

// List returns the owner's materials, newest first.
func (r *Repo) List(ctx context.Context, userID uuid.UUID) ([]Material, error) {
	query := `
		SELECT ` + materialColumns + `
		FROM materials
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list materials: %w", err)
	}
	defer rows.Close()

	items := make([]Material, 0)
	for rows.Next() {
		material, err := scanMaterial(rows)
		if err != nil {
			return nil, fmt.Errorf("scan material: %w", err)
		}
		items = append(items, material)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate materials: %w", rows.Err())
	}

	return items, nil
}

// ListOffcuts returns the owner's offcut ledger with material names, newest first.
func (r *Repo) ListOffcuts(ctx context.Context, userID uuid.UUID) ([]Offcut, error) {
	query := `
		SELECT o.id, o.material_id, m.name, o.length_mm, o.project_id, o.created_at
		FROM offcuts o
		JOIN materials m ON m.id = o.material_id
		WHERE o.user_id = $1
		ORDER BY o.created_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list offcuts: %w", err)
	}
	defer rows.Close()

	items := make([]Offcut, 0)
	for rows.Next() {
		var offcut Offcut
		if err := rows.Scan(&offcut.ID, &offcut.MaterialID, &offcut.MaterialName, &offcut.LengthMm, &offcut.ProjectID, &offcut.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan offcut: %w", err)
		}
		items = append(items, offcut)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate offcuts: %w", rows.Err())
	}

	return items, nil
}

func scanMaterial(row pgx.Row) (Material, error) {
	var m Material
	err := row.Scan(
		&m.ID, &m.UserID, &m.Name, &m.Category,
		&m.PriceBlackCents, &m.PriceZintroCents, &m.Stock, &m.BarLengthMm, &m.CreatedAt,
	)
	return m, err
}
