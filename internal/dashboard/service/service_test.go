package service

import (
	"context"
	"testing"
	"time"

	"ironmanage_backend/internal/dashboard/repository"
	"ironmanage_backend/internal/dashboard/transport"
	"ironmanage_backend/platform/logger"

	"github.com/google/uuid"
)

type fakeRepo struct {
	revenueCents int64
	active       int
	lowStock     int
	sales        []repository.MonthlySales
}

func (f *fakeRepo) RevenueSince(_ context.Context, _ uuid.UUID, _ time.Time) (int64, error) {
	return f.revenueCents, nil
}

func (f *fakeRepo) ActiveProjectCount(_ context.Context, _ uuid.UUID) (int, error) {
	return f.active, nil
}

func (f *fakeRepo) LowStockCount(_ context.Context, _ uuid.UUID, _ int) (int, error) {
	return f.lowStock, nil
}

func (f *fakeRepo) MonthlySalesSince(_ context.Context, _ uuid.UUID, _ time.Time) ([]repository.MonthlySales, error) {
	return f.sales, nil
}

func TestStatsAggregates(t *testing.T) {
	now := time.Now().UTC()
	thisMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	repo := &fakeRepo{
		revenueCents: 123450,
		active:       3,
		lowStock:     2,
		sales: []repository.MonthlySales{
			{Month: thisMonth, TotalCents: 123450},
		},
	}

	stats, err := New(repo, logger.New("development")).Stats(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stats.TotalRevenueMonth != 1234.50 {
		t.Errorf("revenue = %v, want 1234.50", stats.TotalRevenueMonth)
	}
	if stats.ActiveProjects != 3 {
		t.Errorf("active = %d, want 3", stats.ActiveProjects)
	}
	if stats.LowStockCount != 2 {
		t.Errorf("low stock = %d, want 2", stats.LowStockCount)
	}
	if len(stats.MonthlySalesHistory) != HistoryMonths {
		t.Fatalf("history has %d entries, want %d", len(stats.MonthlySalesHistory), HistoryMonths)
	}
	last := stats.MonthlySalesHistory[HistoryMonths-1]
	if last.Sales != 1234.50 {
		t.Errorf("current month sales = %v, want 1234.50", last.Sales)
	}
}

func TestFillHistoryNormalizesZones(t *testing.T) {
	start := time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)
	// A bucket reported in a non-UTC zone must still land in its UTC month.
	buenosAires := time.FixedZone("-03", -3*60*60)
	entries := fillHistory(start, []repository.MonthlySales{
		{Month: time.Date(2026, time.April, 30, 21, 0, 0, 0, buenosAires), TotalCents: 70000},
	})

	if entries[1].Name != "May" || entries[1].Sales != 700 {
		t.Errorf("May entry = %+v, want 700 in May", entries[1])
	}
	if entries[0].Sales != 0 {
		t.Errorf("April entry = %+v, want 0", entries[0])
	}
}

func TestFillHistoryZeroesQuietMonths(t *testing.T) {
	start := time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)
	entries := fillHistory(start, []repository.MonthlySales{
		{Month: time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC), TotalCents: 50000},
	})

	want := []transport.MonthlySalesEntry{
		{Name: "Apr", Sales: 0},
		{Name: "May", Sales: 500},
		{Name: "Jun", Sales: 0},
		{Name: "Jul", Sales: 0},
		{Name: "Aug", Sales: 0},
		{Name: "Sep", Sales: 0},
	}
	if len(entries) != len(want) {
		t.Fatalf("got %d entries, want %d", len(entries), len(want))
	}
	for i := range want {
		if entries[i] != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, entries[i], want[i])
		}
	}
}
