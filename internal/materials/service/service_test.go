package service

import (
	"context"
	"testing"

	"ironmanage_backend/internal/materials/repository"
	"ironmanage_backend/internal/materials/transport"
	"ironmanage_backend/platform/logger"

	"github.com/google/uuid"
)

type fakeRepo struct {
	upserted *repository.UpsertMaterialParams
}

func (f *fakeRepo) Upsert(_ context.Context, params repository.UpsertMaterialParams) (repository.Material, error) {
	f.upserted = &params
	return repository.Material{
		ID:               uuid.New(),
		UserID:           params.UserID,
		Name:             params.Name,
		Category:         params.Category,
		PriceBlackCents:  params.PriceBlackCents,
		PriceZintroCents: params.PriceZintroCents,
		Stock:            params.Stock,
		BarLengthMm:      params.BarLengthMm,
	}, nil
}

func (f *fakeRepo) Update(_ context.Context, _ repository.UpdateMaterialParams) (repository.Material, error) {
	return repository.Material{}, nil
}

func (f *fakeRepo) Delete(_ context.Context, _, _ uuid.UUID) error { return nil }

func (f *fakeRepo) List(_ context.Context, _ uuid.UUID) ([]repository.Material, error) {
	return nil, nil
}

func (f *fakeRepo) ListOffcuts(_ context.Context, _ uuid.UUID) ([]repository.Offcut, error) {
	return nil, nil
}

func TestCreateConvertsToStorageUnits(t *testing.T) {
	repo := &fakeRepo{}
	svc := New(repo, logger.New("development"))

	result, err := svc.Create(context.Background(), uuid.New(), transport.CreateMaterialRequest{
		Name:        "  Caño estructural 20x20  ",
		Category:    "Caños",
		PriceBlack:  120.50,
		PriceZintro: 145.75,
		Stock:       10,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.upserted.Name != "Caño estructural 20x20" {
		t.Errorf("name = %q, want trimmed", repo.upserted.Name)
	}
	if repo.upserted.PriceBlackCents != 12050 {
		t.Errorf("black price = %d cents, want 12050", repo.upserted.PriceBlackCents)
	}
	if repo.upserted.PriceZintroCents != 14575 {
		t.Errorf("zintro price = %d cents, want 14575", repo.upserted.PriceZintroCents)
	}
	if repo.upserted.BarLengthMm != DefaultBarLengthMm {
		t.Errorf("bar length = %dmm, want default %dmm", repo.upserted.BarLengthMm, DefaultBarLengthMm)
	}

	if result.PriceBlack != 120.50 {
		t.Errorf("response black price = %v, want 120.50", result.PriceBlack)
	}
	if result.BarLengthMeters != 6.0 {
		t.Errorf("response bar length = %v, want 6.0", result.BarLengthMeters)
	}
}

func TestCreateHonorsCustomBarLength(t *testing.T) {
	repo := &fakeRepo{}
	svc := New(repo, logger.New("development"))

	_, err := svc.Create(context.Background(), uuid.New(), transport.CreateMaterialRequest{
		Name:            "Planchuela 1 1/4",
		PriceBlack:      80,
		PriceZintro:     95,
		Stock:           4,
		BarLengthMeters: 12.0,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.upserted.BarLengthMm != 12000 {
		t.Errorf("bar length = %dmm, want 12000", repo.upserted.BarLengthMm)
	}
}
