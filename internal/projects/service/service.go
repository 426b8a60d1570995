package service

import (
	"context"

	"ironmanage_backend/internal/projects/domain"
	"ironmanage_backend/internal/projects/repository"
	"ironmanage_backend/internal/projects/transport"
	"ironmanage_backend/platform/apperr"
	"ironmanage_backend/platform/logger"
	"ironmanage_backend/platform/units"

	"github.com/google/uuid"
)

// Service provides project quoting and the approval lifecycle.
type Service struct {
	repo repository.Repository
	log  *logger.Logger
}

// New creates a new project service.
func New(repo repository.Repository, log *logger.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// pricedLine is one computed quote line before persistence.
type pricedLine struct {
	materialID     uuid.UUID
	materialName   string
	requiredMm     int64
	barsNeeded     int
	unitPriceCents int64
	costCents      int64
}

// Quote prices the given requirements without persisting anything.
func (s *Service) Quote(ctx context.Context, userID uuid.UUID, req transport.QuoteRequest) (transport.QuoteResponse, error) {
	lines, totalCents, err := s.priceLines(ctx, userID, req.IsZintro, req.Items)
	if err != nil {
		return transport.QuoteResponse{}, err
	}

	items := make([]transport.QuoteLineResponse, 0, len(lines))
	for _, line := range lines {
		items = append(items, transport.QuoteLineResponse{
			MaterialID:   line.materialID.String(),
			MaterialName: line.materialName,
			LinearMeters: units.MetersFromMillimeters(line.requiredMm),
			BarsNeeded:   line.barsNeeded,
			UnitPrice:    units.FloatFromCents(line.unitPriceCents),
			Cost:         units.FloatFromCents(line.costCents),
		})
	}

	return transport.QuoteResponse{
		IsZintro:  req.IsZintro,
		TotalCost: units.FloatFromCents(totalCents),
		Items:     items,
	}, nil
}

// Create prices the requirements and persists a draft project with a cost
// snapshot. No stock is touched; inventory is reserved only at approval, so
// discarded drafts never lock materials.
func (s *Service) Create(ctx context.Context, userID uuid.UUID, req transport.CreateProjectRequest) (transport.ProjectResponse, error) {
	lines, totalCents, err := s.priceLines(ctx, userID, req.IsZintro, req.Items)
	if err != nil {
		return transport.ProjectResponse{}, err
	}

	var clientID *uuid.UUID
	if req.ClientID != nil {
		parsed, err := uuid.Parse(*req.ClientID)
		if err != nil {
			return transport.ProjectResponse{}, apperr.Validation("invalid client id")
		}
		clientID = &parsed
	}

	items := make([]repository.CreateItemParams, 0, len(lines))
	for _, line := range lines {
		items = append(items, repository.CreateItemParams{
			MaterialID: line.materialID,
			RequiredMm: line.requiredMm,
			BarsNeeded: line.barsNeeded,
			CostCents:  line.costCents,
		})
	}

	project, err := s.repo.CreateWithItems(ctx, repository.CreateProjectParams{
		UserID:         userID,
		ClientID:       clientID,
		ClientName:     req.ClientName,
		IsZintro:       req.IsZintro,
		TotalCostCents: totalCents,
		Items:          items,
	})
	if err != nil {
		return transport.ProjectResponse{}, err
	}

	return toProjectResponse(project), nil
}

// List returns the account's projects with items, newest first.
func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]transport.ProjectResponse, error) {
	projects, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]transport.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, toProjectResponse(p))
	}
	return out, nil
}

// Get returns one project with its items.
func (s *Service) Get(ctx context.Context, userID, id uuid.UUID) (transport.ProjectResponse, error) {
	project, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return transport.ProjectResponse{}, err
	}
	return toProjectResponse(project), nil
}

// Approve runs the stock-deduction transaction and moves the project to
// IN_PROGRESS. On any failure the project stays a draft and stock is
// untouched.
func (s *Service) Approve(ctx context.Context, userID, id uuid.UUID) (transport.ProjectResponse, error) {
	project, err := s.repo.Approve(ctx, userID, id)
	if err != nil {
		return transport.ProjectResponse{}, err
	}

	s.log.ProjectTransition(id.String(), string(domain.StatusDraft), string(domain.StatusInProgress))
	return toProjectResponse(project), nil
}

// Complete moves an approved project to COMPLETED.
func (s *Service) Complete(ctx context.Context, userID, id uuid.UUID) (transport.ProjectResponse, error) {
	project, err := s.repo.Complete(ctx, userID, id)
	if err != nil {
		return transport.ProjectResponse{}, err
	}

	s.log.ProjectTransition(id.String(), string(domain.StatusInProgress), string(domain.StatusCompleted))
	return toProjectResponse(project), nil
}

// priceLines resolves materials and runs the pricing calculator per line.
// The unit price follows the project's finish: zintro-coated or black steel.
// The empty-list check is enforced here, not just at the HTTP binding, so
// no caller can persist an itemless draft.
func (s *Service) priceLines(ctx context.Context, userID uuid.UUID, isZintro bool, items []transport.QuoteItemRequest) ([]pricedLine, int64, error) {
	if len(items) == 0 {
		return nil, 0, apperr.Validation("item list must not be empty")
	}

	ids := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		id, err := uuid.Parse(item.MaterialID)
		if err != nil {
			return nil, 0, apperr.Validation("invalid material id")
		}
		ids = append(ids, id)
	}

	pricing, err := s.repo.GetMaterialsPricing(ctx, userID, ids)
	if err != nil {
		return nil, 0, err
	}

	lines := make([]pricedLine, 0, len(items))
	var totalCents int64
	for i, item := range items {
		material, ok := pricing[ids[i]]
		if !ok {
			return nil, 0, apperr.NotFound("material not found").WithDetails(map[string]string{
				"materialId": item.MaterialID,
			})
		}

		unitPriceCents := material.PriceBlackCents
		if isZintro {
			unitPriceCents = material.PriceZintroCents
		}

		quote, err := ComputeLine(units.MillimetersFromMeters(item.LinearMeters), material.BarLengthMm, unitPriceCents)
		if err != nil {
			return nil, 0, err
		}

		totalCents += quote.CostCents
		lines = append(lines, pricedLine{
			materialID:     material.ID,
			materialName:   material.Name,
			requiredMm:     units.MillimetersFromMeters(item.LinearMeters),
			barsNeeded:     quote.BarsNeeded,
			unitPriceCents: unitPriceCents,
			costCents:      quote.CostCents,
		})
	}

	return lines, totalCents, nil
}

func toProjectResponse(p repository.Project) transport.ProjectResponse {
	items := make([]transport.ProjectItemResponse, 0, len(p.Items))
	for _, item := range p.Items {
		items = append(items, transport.ProjectItemResponse{
			ID:           item.ID.String(),
			MaterialID:   item.MaterialID.String(),
			MaterialName: item.MaterialName,
			LinearMeters: units.MetersFromMillimeters(item.RequiredMm),
			BarsNeeded:   item.BarsNeeded,
			Cost:         units.FloatFromCents(item.CostCents),
		})
	}

	var clientID *string
	if p.ClientID != nil {
		id := p.ClientID.String()
		clientID = &id
	}

	return transport.ProjectResponse{
		ID:         p.ID.String(),
		ClientID:   clientID,
		ClientName: p.ClientName,
		IsZintro:   p.IsZintro,
		Status:     string(p.Status),
		TotalCost:  units.FloatFromCents(p.TotalCostCents),
		CreatedAt:  p.CreatedAt,
		Items:      items,
	}
}
