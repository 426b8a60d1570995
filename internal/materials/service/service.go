package service

import (
	"context"
	"strings"

	"ironmanage_backend/internal/materials/repository"
	"ironmanage_backend/internal/materials/transport"
	"ironmanage_backend/platform/logger"
	"ironmanage_backend/platform/units"

	"github.com/google/uuid"
)

// DefaultBarLengthMm is the commercial bar length assumed when a material
// does not specify one.
const DefaultBarLengthMm = 6000

// Service provides material inventory management.
type Service struct {
	repo repository.Repository
	log  *logger.Logger
}

// New creates a new material service.
func New(repo repository.Repository, log *logger.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// Create adds a material to the inventory. If the owner already has a
// material with the same name (ignoring case), the incoming stock is added
// to it and its prices are refreshed rather than creating a duplicate.
func (s *Service) Create(ctx context.Context, userID uuid.UUID, req transport.CreateMaterialRequest) (transport.MaterialResponse, error) {
	barLengthMm := int64(DefaultBarLengthMm)
	if req.BarLengthMeters > 0 {
		barLengthMm = units.MillimetersFromMeters(req.BarLengthMeters)
	}

	material, err := s.repo.Upsert(ctx, repository.UpsertMaterialParams{
		UserID:           userID,
		Name:             strings.TrimSpace(req.Name),
		Category:         strings.TrimSpace(req.Category),
		PriceBlackCents:  units.CentsFromFloat(req.PriceBlack),
		PriceZintroCents: units.CentsFromFloat(req.PriceZintro),
		Stock:            req.Stock,
		BarLengthMm:      barLengthMm,
	})
	if err != nil {
		return transport.MaterialResponse{}, err
	}

	return toMaterialResponse(material), nil
}

// Update applies a partial update to a material.
func (s *Service) Update(ctx context.Context, userID, id uuid.UUID, req transport.UpdateMaterialRequest) (transport.MaterialResponse, error) {
	params := repository.UpdateMaterialParams{
		ID:     id,
		UserID: userID,
		Stock:  req.Stock,
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		params.Name = &name
	}
	if req.Category != nil {
		category := strings.TrimSpace(*req.Category)
		params.Category = &category
	}
	if req.PriceBlack != nil {
		cents := units.CentsFromFloat(*req.PriceBlack)
		params.PriceBlackCents = &cents
	}
	if req.PriceZintro != nil {
		cents := units.CentsFromFloat(*req.PriceZintro)
		params.PriceZintroCents = &cents
	}
	if req.BarLengthMeters != nil {
		mm := units.MillimetersFromMeters(*req.BarLengthMeters)
		params.BarLengthMm = &mm
	}

	material, err := s.repo.Update(ctx, params)
	if err != nil {
		return transport.MaterialResponse{}, err
	}

	return toMaterialResponse(material), nil
}

// Delete removes a material.
func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.Delete(ctx, userID, id)
}

// List returns the account's materials, newest first.
func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]transport.MaterialResponse, error) {
	materials, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]transport.MaterialResponse, 0, len(materials))
	for _, m := range materials {
		out = append(out, toMaterialResponse(m))
	}
	return out, nil
}

// ListOffcuts returns the account's offcut ledger, newest first.
func (s *Service) ListOffcuts(ctx context.Context, userID uuid.UUID) ([]transport.OffcutResponse, error) {
	offcuts, err := s.repo.ListOffcuts(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]transport.OffcutResponse, 0, len(offcuts))
	for _, o := range offcuts {
		out = append(out, transport.OffcutResponse{
			ID:           o.ID.String(),
			MaterialID:   o.MaterialID.String(),
			MaterialName: o.MaterialName,
			LengthMeters: units.MetersFromMillimeters(o.LengthMm),
			ProjectID:    o.ProjectID.String(),
			CreatedAt:    o.CreatedAt,
		})
	}
	return out, nil
}

func toMaterialResponse(m repository.Material) transport.MaterialResponse {
	return transport.MaterialResponse{
		ID:              m.ID.String(),
		Name:            m.Name,
		Category:        m.Category,
		PriceBlack:      units.FloatFromCents(m.PriceBlackCents),
		PriceZintro:     units.FloatFromCents(m.PriceZintroCents),
		Stock:           m.Stock,
		BarLengthMeters: units.MetersFromMillimeters(m.BarLengthMm),
		CreatedAt:       m.CreatedAt,
	}
}
