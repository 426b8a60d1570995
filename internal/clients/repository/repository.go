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

const clientNotFoundMsg = "client not found"

// Client is the database model for a shop client.
type Client struct {
	ID      uuid.UUID `db:"id"`
	UserID  uuid.UUID `db:"user_id"`
	Name    string    `db:"name"`
	Phone   string    `db:"phone"`
	Address string    `db:"address"`
	Email   string    `db:"email"`
}

// CreateClientParams contains data for creating a client.
type CreateClientParams struct {
	UserID  uuid.UUID
	Name    string
	Phone   string
	Address string
	Email   string
}

// UpdateClientParams contains data for updating a client.
type UpdateClientParams struct {
	ID      uuid.UUID
	UserID  uuid.UUID
	Name    *string
	Phone   *string
	Address *string
	Email   *string
}

// Repository defines client storage operations.
type Repository interface {
	Create(ctx context.Context, params CreateClientParams) (Client, error)
	Update(ctx context.Context, params UpdateClientParams) (Client, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID) ([]Client, error)
}

// Repo implements the client repository.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new client repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements Repository.
var _ Repository = (*Repo)(nil)

// Create inserts a client for the owner.
func (r *Repo) Create(ctx context.Context, params CreateClientParams) (Client, error) {
	query := `
		INSERT INTO clients (id, user_id, name, phone, address, email)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, user_id, name, phone, address, email`

	var client Client
	if err := r.pool.QueryRow(ctx, query,
		uuid.New(), params.UserID, params.Name, params.Phone, params.Address, params.Email,
	).Scan(&client.ID, &client.UserID, &client.Name, &client.Phone, &client.Address, &client.Email); err != nil {
		return Client{}, fmt.Errorf("create client: %w", err)
	}

	return client, nil
}

// Update modifies a client within the owner's scope.
func (r *Repo) Update(ctx context.Context, params UpdateClientParams) (Client, error) {
	query := `
		UPDATE clients
		SET name = COALESCE($3, name),
			phone = COALESCE($4, phone),
			address = COALESCE($5, address),
			email = COALESCE($6, email)
		WHERE id = $1 AND user_id = $2
		RETURNING id, user_id, name, phone, address, email`

	var client Client
	if err := r.pool.QueryRow(ctx, query,
		params.ID, params.UserID, params.Name, params.Phone, params.Address, params.Email,
	).Scan(&client.ID, &client.UserID, &client.Name, &client.Phone, &client.Address, &client.Email); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Client{}, apperr.NotFound(clientNotFoundMsg)
		}
		return Client{}, fmt.Errorf("update client: %w", err)
	}

	return client, nil
}

// Delete removes a client within the owner's scope.
func (r *Repo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	query := `DELETE FROM clients WHERE id = $1 AND user_id = $2`
	result, err := r.pool.Exec(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperr.NotFound(clientNotFoundMsg)
	}
	return nil
}

// List returns all of the owner's clients sorted by name.
func (r *Repo) List(ctx context.Context, userID uuid.UUID) ([]Client, error) {
	query := `
		SELECT id, user_id, name, phone, address, email
		FROM clients
		WHERE user_id = $1
		ORDER BY name ASC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	items := make([]Client, 0)
	for rows.Next() {
		var client Client
		if err := rows.Scan(&client.ID, &client.UserID, &client.Name, &client.Phone, &client.Address, &client.Email); err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		items = append(items, client)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate clients: %w", rows.Err())
	}

	return items, nil
}
