package service

import (
	"context"
	"testing"

	"ironmanage_backend/internal/projects/domain"
	"ironmanage_backend/internal/projects/repository"
	"ironmanage_backend/internal/projects/transport"
	"ironmanage_backend/platform/apperr"
	"ironmanage_backend/platform/logger"

	"github.com/google/uuid"
)

// fakeRepo is an in-memory Repository for service tests.
type fakeRepo struct {
	materials  map[uuid.UUID]repository.MaterialPricing
	created    *repository.CreateProjectParams
	approveErr error
}

func (f *fakeRepo) GetMaterialsPricing(_ context.Context, _ uuid.UUID, ids []uuid.UUID) (map[uuid.UUID]repository.MaterialPricing, error) {
	out := make(map[uuid.UUID]repository.MaterialPricing)
	for _, id := range ids {
		if m, ok := f.materials[id]; ok {
			out[id] = m
		}
	}
	return out, nil
}

func (f *fakeRepo) CreateWithItems(_ context.Context, params repository.CreateProjectParams) (repository.Project, error) {
	f.created = &params
	project := repository.Project{
		ID:             uuid.New(),
		UserID:         params.UserID,
		ClientID:       params.ClientID,
		ClientName:     params.ClientName,
		IsZintro:       params.IsZintro,
		TotalCostCents: params.TotalCostCents,
		Status:         domain.StatusDraft,
	}
	for _, item := range params.Items {
		project.Items = append(project.Items, repository.Item{
			ID:           uuid.New(),
			ProjectID:    project.ID,
			MaterialID:   item.MaterialID,
			MaterialName: f.materials[item.MaterialID].Name,
			RequiredMm:   item.RequiredMm,
			BarsNeeded:   item.BarsNeeded,
			CostCents:    item.CostCents,
		})
	}
	return project, nil
}

func (f *fakeRepo) List(_ context.Context, _ uuid.UUID) ([]repository.Project, error) {
	return nil, nil
}

func (f *fakeRepo) GetByID(_ context.Context, _, _ uuid.UUID) (repository.Project, error) {
	return repository.Project{}, apperr.NotFound("project not found")
}

func (f *fakeRepo) Approve(_ context.Context, _, id uuid.UUID) (repository.Project, error) {
	if f.approveErr != nil {
		return repository.Project{}, f.approveErr
	}
	return repository.Project{ID: id, Status: domain.StatusInProgress}, nil
}

func (f *fakeRepo) Complete(_ context.Context, _, id uuid.UUID) (repository.Project, error) {
	return repository.Project{ID: id, Status: domain.StatusCompleted}, nil
}

func newTestService(repo *fakeRepo) *Service {
	return New(repo, logger.New("development"))
}

func TestQuotePricesByFinish(t *testing.T) {
	materialID := uuid.New()
	repo := &fakeRepo{
		materials: map[uuid.UUID]repository.MaterialPricing{
			materialID: {
				ID:               materialID,
				Name:             "Caño estructural 20x20",
				PriceBlackCents:  10000,
				PriceZintroCents: 12000,
				BarLengthMm:      6000,
				Stock:            10,
			},
		},
	}
	svc := newTestService(repo)
	userID := uuid.New()

	items := []transport.QuoteItemRequest{{MaterialID: materialID.String(), LinearMeters: 7.0}}

	black, err := svc.Quote(context.Background(), userID, transport.QuoteRequest{IsZintro: false, Items: items})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if black.TotalCost != 200.00 {
		t.Errorf("black total = %v, want 200.00", black.TotalCost)
	}
	if len(black.Items) != 1 || black.Items[0].BarsNeeded != 2 {
		t.Fatalf("black items = %+v, want one line with 2 bars", black.Items)
	}
	if black.Items[0].UnitPrice != 100.00 {
		t.Errorf("black unit price = %v, want 100.00", black.Items[0].UnitPrice)
	}

	zintro, err := svc.Quote(context.Background(), userID, transport.QuoteRequest{IsZintro: true, Items: items})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if zintro.TotalCost != 240.00 {
		t.Errorf("zintro total = %v, want 240.00", zintro.TotalCost)
	}
}

func TestQuoteUnknownMaterial(t *testing.T) {
	svc := newTestService(&fakeRepo{materials: map[uuid.UUID]repository.MaterialPricing{}})

	_, err := svc.Quote(context.Background(), uuid.New(), transport.QuoteRequest{
		Items: []transport.QuoteItemRequest{{MaterialID: uuid.New().String(), LinearMeters: 4.5}},
	})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if apperr.GetKind(err) != apperr.KindNotFound {
		t.Errorf("kind = %v, want not found", apperr.GetKind(err))
	}
}

func TestCreateRejectsEmptyItemList(t *testing.T) {
	repo := &fakeRepo{materials: map[uuid.UUID]repository.MaterialPricing{}}
	svc := newTestService(repo)

	_, err := svc.Create(context.Background(), uuid.New(), transport.CreateProjectRequest{
		ClientName: "Taller Gómez",
		Items:      nil,
	})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if apperr.GetKind(err) != apperr.KindValidation {
		t.Errorf("kind = %v, want validation", apperr.GetKind(err))
	}
	if repo.created != nil {
		t.Error("empty project must never reach the repository")
	}

	_, err = svc.Quote(context.Background(), uuid.New(), transport.QuoteRequest{Items: []transport.QuoteItemRequest{}})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if apperr.GetKind(err) != apperr.KindValidation {
		t.Errorf("kind = %v, want validation", apperr.GetKind(err))
	}
}

func TestQuoteRejectsNonPositiveMeters(t *testing.T) {
	materialID := uuid.New()
	svc := newTestService(&fakeRepo{
		materials: map[uuid.UUID]repository.MaterialPricing{
			materialID: {ID: materialID, Name: "Planchuela", PriceBlackCents: 5000, PriceZintroCents: 6000, BarLengthMm: 6000},
		},
	})

	_, err := svc.Quote(context.Background(), uuid.New(), transport.QuoteRequest{
		Items: []transport.QuoteItemRequest{{MaterialID: materialID.String(), LinearMeters: 0}},
	})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if apperr.GetKind(err) != apperr.KindValidation {
		t.Errorf("kind = %v, want validation", apperr.GetKind(err))
	}
}

func TestCreateSnapshotsCosts(t *testing.T) {
	materialID := uuid.New()
	repo := &fakeRepo{
		materials: map[uuid.UUID]repository.MaterialPricing{
			materialID: {
				ID:               materialID,
				Name:             "Hierro ángulo",
				PriceBlackCents:  10000,
				PriceZintroCents: 12000,
				BarLengthMm:      6000,
			},
		},
	}
	svc := newTestService(repo)
	userID := uuid.New()

	project, err := svc.Create(context.Background(), userID, transport.CreateProjectRequest{
		ClientName: "Taller Gómez",
		IsZintro:   false,
		Items: []transport.QuoteItemRequest{
			{MaterialID: materialID.String(), LinearMeters: 7.0},
			{MaterialID: materialID.String(), LinearMeters: 4.5},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if project.Status != string(domain.StatusDraft) {
		t.Errorf("status = %q, want DRAFT", project.Status)
	}
	// 2 bars at 100.00 plus 1 bar at 100.00
	if project.TotalCost != 300.00 {
		t.Errorf("total = %v, want 300.00", project.TotalCost)
	}

	if repo.created == nil {
		t.Fatal("repository never received create params")
	}
	if repo.created.TotalCostCents != 30000 {
		t.Errorf("stored total = %d cents, want 30000", repo.created.TotalCostCents)
	}
	if len(repo.created.Items) != 2 {
		t.Fatalf("stored %d items, want 2", len(repo.created.Items))
	}
	if repo.created.Items[0].BarsNeeded != 2 || repo.created.Items[0].CostCents != 20000 {
		t.Errorf("first line = %+v, want 2 bars at 20000 cents", repo.created.Items[0])
	}
	if repo.created.Items[1].BarsNeeded != 1 || repo.created.Items[1].CostCents != 10000 {
		t.Errorf("second line = %+v, want 1 bar at 10000 cents", repo.created.Items[1])
	}
}

func TestCreateRejectsInvalidClientID(t *testing.T) {
	materialID := uuid.New()
	svc := newTestService(&fakeRepo{
		materials: map[uuid.UUID]repository.MaterialPricing{
			materialID: {ID: materialID, Name: "Caño redondo", PriceBlackCents: 8000, PriceZintroCents: 9000, BarLengthMm: 6000},
		},
	})

	bad := "not-a-uuid"
	_, err := svc.Create(context.Background(), uuid.New(), transport.CreateProjectRequest{
		ClientID:   &bad,
		ClientName: "Taller Gómez",
		Items:      []transport.QuoteItemRequest{{MaterialID: materialID.String(), LinearMeters: 4.5}},
	})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if apperr.GetKind(err) != apperr.KindValidation {
		t.Errorf("kind = %v, want validation", apperr.GetKind(err))
	}
}

func TestApprovePropagatesConflicts(t *testing.T) {
	conflict := apperr.Conflict("insufficient stock for material: Caño 40x40")
	svc := newTestService(&fakeRepo{approveErr: conflict})

	_, err := svc.Approve(context.Background(), uuid.New(), uuid.New())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if apperr.GetKind(err) != apperr.KindConflict {
		t.Errorf("kind = %v, want conflict", apperr.GetKind(err))
	}
}
