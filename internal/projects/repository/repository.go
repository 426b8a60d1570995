package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ironmanage_backend/internal/projects/domain"
	"ironmanage_backend/platform/apperr"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	projectNotFoundMsg  = "project not found"
	materialNotFoundMsg = "material not found"
)

// Project is the database model for a project with its items.
type Project struct {
	ID             uuid.UUID     `db:"id"`
	UserID         uuid.UUID     `db:"user_id"`
	ClientID       *uuid.UUID    `db:"client_id"`
	ClientName     string        `db:"client_name"`
	IsZintro       bool          `db:"is_zintro"`
	TotalCostCents int64         `db:"total_cost_cents"`
	Status         domain.Status `db:"status"`
	CreatedAt      time.Time     `db:"created_at"`
	Items          []Item
}

// Item is one stored line of a project. The cost is a snapshot taken at
// creation time and never changes afterwards.
type Item struct {
	ID           uuid.UUID `db:"id"`
	ProjectID    uuid.UUID `db:"project_id"`
	MaterialID   uuid.UUID `db:"material_id"`
	MaterialName string    `db:"material_name"`
	RequiredMm   int64     `db:"required_mm"`
	BarsNeeded   int       `db:"bars_needed"`
	CostCents    int64     `db:"cost_cents"`
}

// MaterialPricing is the pricing view of a material used while quoting.
type MaterialPricing struct {
	ID               uuid.UUID
	Name             string
	PriceBlackCents  int64
	PriceZintroCents int64
	BarLengthMm      int64
	Stock            int
}

// CreateItemParams is one pre-priced line for project creation.
type CreateItemParams struct {
	MaterialID uuid.UUID
	RequiredMm int64
	BarsNeeded int
	CostCents  int64
}

// CreateProjectParams contains data for creating a draft project.
type CreateProjectParams struct {
	UserID         uuid.UUID
	ClientID       *uuid.UUID
	ClientName     string
	IsZintro       bool
	TotalCostCents int64
	Items          []CreateItemParams
}

// Repository defines project storage operations.
type Repository interface {
	GetMaterialsPricing(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (map[uuid.UUID]MaterialPricing, error)
	CreateWithItems(ctx context.Context, params CreateProjectParams) (Project, error)
	List(ctx context.Context, userID uuid.UUID) ([]Project, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (Project, error)
	Approve(ctx context.Context, userID, id uuid.UUID) (Project, error)
	Complete(ctx context.Context, userID, id uuid.UUID) (Project, error)
}

// Repo implements the project repository.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new project repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements Repository.
var _ Repository = (*Repo)(nil)

// Queries are package-level constants so scoping and locking behavior can be
// asserted in tests without a database.
const (
	queryMaterialsPricing = `
		SELECT id, name, price_black_cents, price_zintro_cents, bar_length_mm, stock
		FROM materials
		WHERE user_id = $1 AND id = ANY($2)`

	queryInsertProject = `
		INSERT INTO projects (id, user_id, client_id, client_name, is_zintro, total_cost_cents, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at`

	queryInsertItem = `
		INSERT INTO project_items (id, project_id, material_id, required_mm, bars_needed, cost_cents, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	queryListProjects = `
		SELECT id, user_id, client_id, client_name, is_zintro, total_cost_cents, status, created_at
		FROM projects
		WHERE user_id = $1
		ORDER BY created_at DESC`

	queryGetProject = `
		SELECT id, user_id, client_id, client_name, is_zintro, total_cost_cents, status, created_at
		FROM projects
		WHERE id = $1 AND user_id = $2`

	queryItemsForProjects = `
		SELECT i.id, i.project_id, i.material_id, m.name, i.required_mm, i.bars_needed, i.cost_cents
		FROM project_items i
		JOIN materials m ON m.id = i.material_id
		WHERE i.project_id = ANY($1)
		ORDER BY i.position ASC`

	// Approval locks the project row first, then each material row in item
	// order, so concurrent approvals serialize instead of deadlocking.
	queryLockProject = `
		SELECT status
		FROM projects
		WHERE id = $1 AND user_id = $2
		FOR UPDATE`

	queryItemsForApproval = `
		SELECT material_id, required_mm, bars_needed
		FROM project_items
		WHERE project_id = $1
		ORDER BY position ASC`

	queryLockMaterial = `
		SELECT name, stock, bar_length_mm
		FROM materials
		WHERE id = $1 AND user_id = $2
		FOR UPDATE`

	// The stock >= guard backs up the in-transaction check; together with the
	// table's CHECK constraint it makes a negative stock impossible.
	queryDecrementStock = `
		UPDATE materials
		SET stock = stock - $2
		WHERE id = $1 AND stock >= $2`

	queryInsertOffcut = `
		INSERT INTO offcuts (id, user_id, material_id, project_id, length_mm)
		VALUES ($1, $2, $3, $4, $5)`

	querySetProjectStatus = `
		UPDATE projects
		SET status = $2
		WHERE id = $1 AND user_id = $3`
)

// GetMaterialsPricing returns the pricing view of the given materials,
// keyed by id. Materials outside the owner's scope are simply absent.
func (r *Repo) GetMaterialsPricing(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (map[uuid.UUID]MaterialPricing, error) {
	rows, err := r.pool.Query(ctx, queryMaterialsPricing, userID, ids)
	if err != nil {
		return nil, fmt.Errorf("get materials pricing: %w", err)
	}
	defer rows.Close()

	out := make(map[uuid.UUID]MaterialPricing, len(ids))
	for rows.Next() {
		var m MaterialPricing
		if err := rows.Scan(&m.ID, &m.Name, &m.PriceBlackCents, &m.PriceZintroCents, &m.BarLengthMm, &m.Stock); err != nil {
			return nil, fmt.Errorf("scan material pricing: %w", err)
		}
		out[m.ID] = m
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate materials pricing: %w", rows.Err())
	}

	return out, nil
}

// CreateWithItems inserts a draft project and its items in one transaction.
func (r *Repo) CreateWithItems(ctx context.Context, params CreateProjectParams) (Project, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return Project{}, fmt.Errorf("begin create project: %w", err)
	}
	defer tx.Rollback(ctx)

	projectID := uuid.New()
	var createdAt time.Time
	if err := tx.QueryRow(ctx, queryInsertProject,
		projectID, params.UserID, params.ClientID, params.ClientName,
		params.IsZintro, params.TotalCostCents, domain.StatusDraft,
	).Scan(&createdAt); err != nil {
		return Project{}, fmt.Errorf("insert project: %w", err)
	}

	for pos, item := range params.Items {
		if _, err := tx.Exec(ctx, queryInsertItem,
			uuid.New(), projectID, item.MaterialID, item.RequiredMm, item.BarsNeeded, item.CostCents, pos,
		); err != nil {
			return Project{}, fmt.Errorf("insert project item: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return Project{}, fmt.Errorf("commit create project: %w", err)
	}

	return r.GetByID(ctx, params.UserID, projectID)
}

// List returns the owner's projects with items, newest first.
func (r *Repo) List(ctx context.Context, userID uuid.UUID) ([]Project, error) {
	rows, err := r.pool.Query(ctx, queryListProjects, userID)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	projects := make([]Project, 0)
	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, p)
		ids = append(ids, p.ID)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate projects: %w", rows.Err())
	}
	if len(projects) == 0 {
		return projects, nil
	}

	itemsByProject, err := r.loadItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range projects {
		projects[i].Items = itemsByProject[projects[i].ID]
	}

	return projects, nil
}

// GetByID returns one project with items within the owner's scope.
func (r *Repo) GetByID(ctx context.Context, userID, id uuid.UUID) (Project, error) {
	row := r.pool.QueryRow(ctx, queryGetProject, id, userID)
	project, err := scanProject(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Project{}, apperr.NotFound(projectNotFoundMsg)
		}
		return Project{}, fmt.Errorf("get project: %w", err)
	}

	itemsByProject, err := r.loadItems(ctx, []uuid.UUID{project.ID})
	if err != nil {
		return Project{}, err
	}
	project.Items = itemsByProject[project.ID]

	return project, nil
}

type approvalItem struct {
	materialID uuid.UUID
	requiredMm int64
	barsNeeded int
}

// Approve runs the stock-deduction transaction. It locks the project row,
// verifies it is still a draft, then per item locks the material, checks
// stock, decrements it and records the offcut. Any failure rolls back
// everything: stock, offcuts and status are untouched.
func (r *Repo) Approve(ctx context.Context, userID, id uuid.UUID) (Project, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return Project{}, fmt.Errorf("begin approve: %w", err)
	}
	defer tx.Rollback(ctx)

	var status domain.Status
	if err := tx.QueryRow(ctx, queryLockProject, id, userID).Scan(&status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Project{}, apperr.NotFound(projectNotFoundMsg)
		}
		return Project{}, fmt.Errorf("lock project: %w", err)
	}
	if !status.CanTransition(domain.StatusInProgress) {
		return Project{}, apperr.Conflict("project is not in draft status").WithDetails(map[string]string{
			"currentStatus": string(status),
			"targetStatus":  string(domain.StatusInProgress),
		})
	}

	items, err := loadApprovalItems(ctx, tx, id)
	if err != nil {
		return Project{}, err
	}

	for _, item := range items {
		var (
			name        string
			stock       int
			barLengthMm int64
		)
		if err := tx.QueryRow(ctx, queryLockMaterial, item.materialID, userID).Scan(&name, &stock, &barLengthMm); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return Project{}, apperr.NotFound(materialNotFoundMsg)
			}
			return Project{}, fmt.Errorf("lock material: %w", err)
		}
		if stock < item.barsNeeded {
			return Project{}, insufficientStock(item.materialID, name, item.barsNeeded, stock)
		}

		result, err := tx.Exec(ctx, queryDecrementStock, item.materialID, item.barsNeeded)
		if err != nil {
			return Project{}, fmt.Errorf("decrement stock: %w", err)
		}
		if result.RowsAffected() == 0 {
			return Project{}, insufficientStock(item.materialID, name, item.barsNeeded, stock)
		}

		offcutMm := int64(item.barsNeeded)*barLengthMm - item.requiredMm
		if offcutMm > 0 {
			if _, err := tx.Exec(ctx, queryInsertOffcut, uuid.New(), userID, item.materialID, id, offcutMm); err != nil {
				return Project{}, fmt.Errorf("insert offcut: %w", err)
			}
		}
	}

	if _, err := tx.Exec(ctx, querySetProjectStatus, id, domain.StatusInProgress, userID); err != nil {
		return Project{}, fmt.Errorf("set project status: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return Project{}, fmt.Errorf("commit approve: %w", err)
	}

	return r.GetByID(ctx, userID, id)
}

// Complete moves an approved project to its terminal state. No inventory
// is touched.
func (r *Repo) Complete(ctx context.Context, userID, id uuid.UUID) (Project, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return Project{}, fmt.Errorf("begin complete: %w", err)
	}
	defer tx.Rollback(ctx)

	var status domain.Status
	if err := tx.QueryRow(ctx, queryLockProject, id, userID).Scan(&status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Project{}, apperr.NotFound(projectNotFoundMsg)
		}
		return Project{}, fmt.Errorf("lock project: %w", err)
	}
	if !status.CanTransition(domain.StatusCompleted) {
		return Project{}, apperr.Conflict("project must be in progress to complete").WithDetails(map[string]string{
			"currentStatus": string(status),
			"targetStatus":  string(domain.StatusCompleted),
		})
	}

	if _, err := tx.Exec(ctx, querySetProjectStatus, id, domain.StatusCompleted, userID); err != nil {
		return Project{}, fmt.Errorf("set project status: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return Project{}, fmt.Errorf("commit complete: %w", err)
	}

	return r.GetByID(ctx, userID, id)
}

func insufficientStock(materialID uuid.UUID, name string, required, available int) *apperr.Error {
	return apperr.Conflict("insufficient stock for material: " + name).WithDetails(map[string]interface{}{
		"materialId":   materialID.String(),
		"materialName": name,
		"required":     required,
		"available":    available,
	})
}

// loadApprovalItems reads the project's lines fully into memory before the
// material locking loop, since pgx allows only one open result set per
// transaction connection.
func loadApprovalItems(ctx context.Context, tx pgx.Tx, projectID uuid.UUID) ([]approvalItem, error) {
	rows, err := tx.Query(ctx, queryItemsForApproval, projectID)
	if err != nil {
		return nil, fmt.Errorf("load approval items: %w", err)
	}
	defer rows.Close()

	items := make([]approvalItem, 0)
	for rows.Next() {
		var item approvalItem
		if err := rows.Scan(&item.materialID, &item.requiredMm, &item.barsNeeded); err != nil {
			return nil, fmt.Errorf("scan approval item: %w", err)
		}
		items = append(items, item)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate approval items: %w", rows.Err())
	}

	return items, nil
}

func (r *Repo) loadItems(ctx context.Context, projectIDs []uuid.UUID) (map[uuid.UUID][]Item, error) {
	rows, err := r.pool.Query(ctx, queryItemsForProjects, projectIDs)
	if err != nil {
		return nil, fmt.Errorf("load project items: %w", err)
	}
	defer rows.Close()

	out := make(map[uuid.UUID][]Item, len(projectIDs))
	for rows.Next() {
		var item Item
		if err := rows.Scan(&item.ID, &item.ProjectID, &item.MaterialID, &item.MaterialName, &item.RequiredMm, &item.BarsNeeded, &item.CostCents); err != nil {
			return nil, fmt.Errorf("scan project item: %w", err)
		}
		out[item.ProjectID] = append(out[item.ProjectID], item)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate project items: %w", rows.Err())
	}

	return out, nil
}

func scanProject(row pgx.Row) (Project, error) {
	var p Project
	err := row.Scan(
		&p.ID, &p.UserID, &p.ClientID, &p.ClientName,
		&p.IsZintro, &p.TotalCostCents, &p.Status, &p.CreatedAt,
	)
	return p, err
}
