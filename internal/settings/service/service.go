package service

import (
	"context"
	"math"
	"strings"

	"ironmanage_backend/internal/settings/repository"
	"ironmanage_backend/internal/settings/transport"
	"ironmanage_backend/platform/logger"
	"ironmanage_backend/platform/phone"

	"github.com/google/uuid"
)

// bps per percentage point
const bpsPerPercent = 100

// Service provides the account profile and workshop settings.
type Service struct {
	repo repository.Repository
	log  *logger.Logger
}

// New creates a new settings service.
func New(repo repository.Repository, log *logger.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// Profile returns the account's profile.
func (s *Service) Profile(ctx context.Context, userID uuid.UUID) (transport.ProfileResponse, error) {
	profile, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		return transport.ProfileResponse{}, err
	}
	return toProfileResponse(profile), nil
}

// UpdateSettings applies a partial update to the workshop settings.
func (s *Service) UpdateSettings(ctx context.Context, userID uuid.UUID, req transport.UpdateSettingsRequest) (transport.ProfileResponse, error) {
	params := repository.UpdateSettingsParams{UserID: userID}
	if req.CompanyName != nil {
		name := strings.TrimSpace(*req.CompanyName)
		params.CompanyName = &name
	}
	if req.Address != nil {
		address := strings.TrimSpace(*req.Address)
		params.Address = &address
	}
	if req.Phone != nil {
		normalized := phone.NormalizeE164(*req.Phone)
		params.Phone = &normalized
	}
	if req.TaxRate != nil {
		bps := int(math.Round(*req.TaxRate * bpsPerPercent))
		params.TaxRateBps = &bps
	}

	profile, err := s.repo.UpdateSettings(ctx, params)
	if err != nil {
		return transport.ProfileResponse{}, err
	}
	return toProfileResponse(profile), nil
}

func toProfileResponse(p repository.Profile) transport.ProfileResponse {
	return transport.ProfileResponse{
		ID:          p.ID.String(),
		Email:       p.Email,
		CompanyName: p.CompanyName,
		Address:     p.Address,
		Phone:       p.Phone,
		TaxRate:     float64(p.TaxRateBps) / bpsPerPercent,
	}
}
