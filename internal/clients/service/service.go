package service

import (
	"context"
	"strings"

	"ironmanage_backend/internal/clients/repository"
	"ironmanage_backend/internal/clients/transport"
	"ironmanage_backend/platform/logger"
	"ironmanage_backend/platform/phone"

	"github.com/google/uuid"
)

// Service provides client management scoped to the owning account.
type Service struct {
	repo repository.Repository
	log  *logger.Logger
}

// New creates a new client service.
func New(repo repository.Repository, log *logger.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// Create registers a new client. Phone numbers are normalized to E.164 when parseable.
func (s *Service) Create(ctx context.Context, userID uuid.UUID, req transport.CreateClientRequest) (transport.ClientResponse, error) {
	client, err := s.repo.Create(ctx, repository.CreateClientParams{
		UserID:  userID,
		Name:    strings.TrimSpace(req.Name),
		Phone:   phone.NormalizeE164(req.Phone),
		Address: strings.TrimSpace(req.Address),
		Email:   strings.ToLower(strings.TrimSpace(req.Email)),
	})
	if err != nil {
		return transport.ClientResponse{}, err
	}

	return toClientResponse(client), nil
}

// Update applies a partial update to a client.
func (s *Service) Update(ctx context.Context, userID, id uuid.UUID, req transport.UpdateClientRequest) (transport.ClientResponse, error) {
	params := repository.UpdateClientParams{
		ID:     id,
		UserID: userID,
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		params.Name = &name
	}
	if req.Phone != nil {
		normalized := phone.NormalizeE164(*req.Phone)
		params.Phone = &normalized
	}
	if req.Address != nil {
		address := strings.TrimSpace(*req.Address)
		params.Address = &address
	}
	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		params.Email = &email
	}

	client, err := s.repo.Update(ctx, params)
	if err != nil {
		return transport.ClientResponse{}, err
	}

	return toClientResponse(client), nil
}

// Delete removes a client.
func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.Delete(ctx, userID, id)
}

// List returns the account's clients ordered by name.
func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]transport.ClientResponse, error) {
	clients, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]transport.ClientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, toClientResponse(c))
	}
	return out, nil
}

func toClientResponse(c repository.Client) transport.ClientResponse {
	return transport.ClientResponse{
		ID:      c.ID.String(),
		Name:    c.Name,
		Phone:   c.Phone,
		Address: c.Address,
		Email:   c.Email,
	}
}
