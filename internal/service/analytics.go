package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/syncbazar/syncbazar-api/internal/domain"
)

const topItemCount = 5

type CatalogReader interface {
	FindAll(ctx context.Context) ([]domain.Item, error)
}

type ShopCounter interface {
	Count(ctx context.Context) (int, error)
}

type ActivityReader interface {
	FindRecent(ctx context.Context, limit int) ([]domain.ActivityRecord, error)
}

type AnalyticsService struct {
	items    CatalogReader
	shops    ShopCounter
	activity ActivityReader
}

func NewAnalyticsService(items CatalogReader, shops ShopCounter, activity ActivityReader) *AnalyticsService {
	return &AnalyticsService{
		items:    items,
		shops:    shops,
		activity: activity,
	}
}

// DashboardStats aggregates the catalog and shop directory. Gateway failures
// degrade to zero stats so a transient read failure never halts the caller.
func (s *AnalyticsService) DashboardStats(ctx context.Context) domain.DashboardStats {
	items, err := s.items.FindAll(ctx)
	if err != nil {
		zap.L().Warn("fetching catalog for dashboard failed", zap.Error(err))
		items = nil
	}

	totalShops, err := s.shops.Count(ctx)
	if err != nil {
		zap.L().Warn("counting shops for dashboard failed", zap.Error(err))
		totalShops = 0
	}

	return ComputeDashboardStats(items, totalShops)
}

func (s *AnalyticsService) InventoryReport(ctx context.Context) domain.InventoryReport {
	items, err := s.items.FindAll(ctx)
	if err != nil {
		zap.L().Warn("fetching catalog for report failed", zap.Error(err))
		items = nil
	}

	return ComputeInventoryReport(items, time.Now())
}

func (s *AnalyticsService) RecentActivity(ctx context.Context, limit int) []domain.ActivityRecord {
	records, err := s.activity.FindRecent(ctx, limit)
	if err != nil {
		zap.L().Warn("fetching recent activity failed", zap.Error(err))
		return []domain.ActivityRecord{}
	}

	return records
}

// ComputeDashboardStats derives the dashboard numbers from one pass over the
// catalog. An empty catalog yields all-zero stats.
func ComputeDashboardStats(items []domain.Item, totalShops int) domain.DashboardStats {
	stats := domain.DashboardStats{
		TotalItems:          len(items),
		TotalShops:          totalShops,
		TotalInventoryValue: decimal.Zero,
	}

	for _, item := range items {
		stats.TotalInventoryValue = stats.TotalInventoryValue.Add(item.TotalValue())

		switch item.Status() {
		case domain.StatusLowStock:
			stats.LowStockCount++
		case domain.StatusOutOfStock:
			stats.OutOfStockCount++
		}
	}

	return stats
}

// ComputeInventoryReport derives the extended report from the catalog, which
// is expected in default (name-ascending) order so that ranking ties keep it.
func ComputeInventoryReport(items []domain.Item, now time.Time) domain.InventoryReport {
	report := domain.InventoryReport{
		GeneratedAt:         now,
		TotalItems:          len(items),
		TotalInventoryValue: decimal.Zero,
		AverageValuePerItem: decimal.Zero,
		TopItems:            []domain.RankedItem{},
	}

	ranked := make([]domain.RankedItem, 0, len(items))
	for _, item := range items {
		value := item.TotalValue()
		report.TotalQuantity += item.Quantity
		report.TotalInventoryValue = report.TotalInventoryValue.Add(value)

		switch item.Status() {
		case domain.StatusInStock:
			report.Breakdown.InStockCount++
		case domain.StatusLowStock:
			report.Breakdown.LowStockCount++
		case domain.StatusOutOfStock:
			report.Breakdown.OutOfStockCount++
		}

		ranked = append(ranked, domain.RankedItem{
			Name:       item.Name,
			Quantity:   item.Quantity,
			TotalValue: value,
		})
	}

	if report.TotalItems > 0 {
		report.AverageValuePerItem = report.TotalInventoryValue.Div(decimal.NewFromInt(int64(report.TotalItems)))
		report.Breakdown.InStockPercent = percentOf(report.Breakdown.InStockCount, report.TotalItems)
		report.Breakdown.LowStockPercent = percentOf(report.Breakdown.LowStockCount, report.TotalItems)
		report.Breakdown.OutOfStockPercent = percentOf(report.Breakdown.OutOfStockCount, report.TotalItems)
	}

	// Stable sort keeps the incoming catalog order on equal values.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalValue.Cmp(ranked[j].TotalValue) > 0
	})
	if len(ranked) > topItemCount {
		ranked = ranked[:topItemCount]
	}
	report.TopItems = ranked

	report.Recommendations = recommendations(report.Breakdown)

	return report
}

func recommendations(breakdown domain.StatusBreakdown) []string {
	var recs []string

	if breakdown.LowStockCount > 0 {
		recs = append(recs, fmt.Sprintf("%d items need immediate restocking", breakdown.LowStockCount))
	}
	if breakdown.OutOfStockCount > 0 {
		recs = append(recs, fmt.Sprintf("%d items are completely out of stock", breakdown.OutOfStockCount))
	}
	if len(recs) == 0 {
		recs = append(recs, "All items are sufficiently stocked")
	}

	return recs
}

// percentOf rounds to one decimal place.
func percentOf(count, total int) float64 {
	return math.Round(float64(count)/float64(total)*1000) / 10
}
