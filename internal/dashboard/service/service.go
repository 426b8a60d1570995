package service

import (
	"context"
	"time"

	"ironmanage_backend/internal/dashboard/repository"
	"ironmanage_backend/internal/dashboard/transport"
	"ironmanage_backend/platform/logger"
	"ironmanage_backend/platform/units"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// LowStockThreshold marks materials that need restocking on the dashboard.
const LowStockThreshold = 5

// HistoryMonths is the span of the monthly sales chart.
const HistoryMonths = 6

// Service aggregates the dashboard statistics.
type Service struct {
	repo repository.Repository
	log  *logger.Logger
}

// New creates a new dashboard service.
func New(repo repository.Repository, log *logger.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// Stats gathers the four dashboard figures. The queries are independent, so
// they run concurrently and the first failure cancels the rest.
func (s *Service) Stats(ctx context.Context, userID uuid.UUID) (transport.StatsResponse, error) {
	// All month arithmetic happens in UTC to match the repository's
	// UTC-truncated buckets.
	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	historyStart := monthStart.AddDate(0, -(HistoryMonths - 1), 0)

	var (
		revenueCents int64
		active       int
		lowStock     int
		history      []repository.MonthlySales
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		revenueCents, err = s.repo.RevenueSince(gctx, userID, monthStart)
		return err
	})
	g.Go(func() error {
		var err error
		active, err = s.repo.ActiveProjectCount(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		lowStock, err = s.repo.LowStockCount(gctx, userID, LowStockThreshold)
		return err
	})
	g.Go(func() error {
		var err error
		history, err = s.repo.MonthlySalesSince(gctx, userID, historyStart)
		return err
	})
	if err := g.Wait(); err != nil {
		return transport.StatsResponse{}, err
	}

	return transport.StatsResponse{
		TotalRevenueMonth:   units.FloatFromCents(revenueCents),
		ActiveProjects:      active,
		LowStockCount:       lowStock,
		MonthlySalesHistory: fillHistory(historyStart, history),
	}, nil
}

// fillHistory expands the sparse month aggregates into a dense series of
// HistoryMonths entries, oldest first, with zeroes for quiet months.
// Keys are built from UTC instants on both sides.
func fillHistory(start time.Time, sales []repository.MonthlySales) []transport.MonthlySalesEntry {
	byMonth := make(map[string]int64, len(sales))
	for _, s := range sales {
		byMonth[s.Month.UTC().Format("2006-01")] = s.TotalCents
	}

	out := make([]transport.MonthlySalesEntry, 0, HistoryMonths)
	for i := 0; i < HistoryMonths; i++ {
		month := start.AddDate(0, i, 0)
		out = append(out, transport.MonthlySalesEntry{
			Name:  month.Format("Jan"),
			Sales: units.FloatFromCents(byMonth[month.Format("2006-01")]),
		})
	}
	return out
}
