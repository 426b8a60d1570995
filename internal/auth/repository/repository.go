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

const userNotFoundMsg = "user not found"

// uniqueViolation is the PostgreSQL error code for unique constraint violations.
const uniqueViolation = "23505"

// User is the database model for an account.
type User struct {
	ID           uuid.UUID `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	CompanyName  string    `db:"company_name"`
	CreatedAt    time.Time `db:"created_at"`
}

// Repository provides database operations for accounts.
type Repository struct {
	pool *pgxpool.Pool
}

// New creates a new auth repository.
func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// CreateUser inserts a new account. A duplicate email yields a conflict error.
func (r *Repository) CreateUser(ctx context.Context, email, passwordHash, companyName string) (User, error) {
	query := `
		INSERT INTO users (id, email, password_hash, company_name, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, email, password_hash, company_name, created_at`

	var user User
	if err := r.pool.QueryRow(ctx, query, uuid.New(), email, passwordHash, companyName, time.Now()).Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.CompanyName, &user.CreatedAt,
	); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return User{}, apperr.Conflict("user already exists")
		}
		return User{}, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// GetUserByEmail retrieves an account by email.
func (r *Repository) GetUserByEmail(ctx context.Context, email string) (User, error) {
	query := `
		SELECT id, email, password_hash, company_name, created_at
		FROM users
		WHERE lower(email) = lower($1)`

	var user User
	if err := r.pool.QueryRow(ctx, query, email).Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.CompanyName, &user.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return User{}, apperr.NotFound(userNotFoundMsg)
		}
		return User{}, fmt.Errorf("get user by email: %w", err)
	}

	return user, nil
}
