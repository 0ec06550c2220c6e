package inventory

import (
	"context"
	"fmt"
	"strings"

	"github.com/ogadoctor/triage-api/internal/model"
	"github.com/ogadoctor/triage-api/internal/repository"
	"github.com/ogadoctor/triage-api/pkg/errors"
	"github.com/ogadoctor/triage-api/pkg/metrics"
)

type InventoryService interface {
	List(ctx context.Context, filter *model.InventoryFilter) ([]*model.InventoryItemView, error)
	Summary(ctx context.Context) (*model.InventorySummary, error)
	GenerateReorder(ctx context.Context, medication string) (*model.ReorderResult, error)
}

type Service struct {
	repo    repository.InventoryRepository
	metrics *metrics.Metrics
}

func NewService(repo repository.InventoryRepository, m *metrics.Metrics) *Service {
	return &Service{repo: repo, metrics: m}
}

// StatusOf derives the stock condition of an item. The boundary is
// inclusive: stock exactly at the reorder point counts as low.
func StatusOf(item *model.InventoryItem) model.StockStatus {
	if item.CurrentStock <= item.ReorderPoint {
		return model.StockStatusLow
	}
	return model.StockStatusOK
}

// ReorderQuantity tops stock up to one month of demand. A placeholder
// heuristic, not a forecasting model; never negative.
func ReorderQuantity(item *model.InventoryItem) int {
	qty := item.MonthlyDemand - item.CurrentStock
	if qty < 0 {
		return 0
	}
	return qty
}

// List returns the stock table with derived fields, narrowed by the
// filter. Search is a case-insensitive substring match on the
// medication name; a non-empty status must match exactly. Seed order is
// preserved.
func (s *Service) List(ctx context.Context, filter *model.InventoryFilter) ([]*model.InventoryItemView, error) {
	if filter != nil && filter.Status != "" && !filter.Status.Valid() {
		return nil, errors.NewBadRequest(fmt.Sprintf("unknown stock status %q", filter.Status), nil)
	}

	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}

	views := make([]*model.InventoryItemView, 0, len(items))
	for _, item := range items {
		view := &model.InventoryItemView{
			InventoryItem: *item,
			Status:        StatusOf(item),
			TotalValue:    int64(item.CurrentStock) * item.UnitPrice,
		}
		if !matches(view, filter) {
			continue
		}
		views = append(views, view)
	}
	return views, nil
}

// Summary computes the metric strip over the full stock table and
// refreshes the low-stock gauge.
func (s *Service) Summary(ctx context.Context) (*model.InventorySummary, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}

	summary := &model.InventorySummary{TotalItems: len(items)}
	totalDemand := 0
	for _, item := range items {
		if StatusOf(item) == model.StockStatusLow {
			summary.LowStockCount++
		}
		summary.TotalValue += int64(item.CurrentStock) * item.UnitPrice
		totalDemand += item.MonthlyDemand
	}
	if len(items) > 0 {
		summary.AvgMonthlyTurnover = totalDemand / len(items)
	}

	s.metrics.LowStockItems.Set(float64(summary.LowStockCount))

	return summary, nil
}

// GenerateReorder computes the top-up quantity for a low-stock item.
// Items above their reorder point are rejected rather than producing a
// zero-quantity order.
func (s *Service) GenerateReorder(ctx context.Context, medication string) (*model.ReorderResult, error) {
	item, err := s.repo.Get(ctx, medication)
	if err != nil {
		return nil, err
	}

	if StatusOf(item) != model.StockStatusLow {
		return nil, errors.NewBadRequest(fmt.Sprintf("%s is not low on stock", item.Medication), nil)
	}

	s.metrics.ReordersGenerated.Inc()

	return &model.ReorderResult{
		Medication: item.Medication,
		Quantity:   ReorderQuantity(item),
	}, nil
}

func matches(view *model.InventoryItemView, filter *model.InventoryFilter) bool {
	if filter == nil {
		return true
	}
	if filter.Search != "" && !strings.Contains(strings.ToLower(view.Medication), strings.ToLower(filter.Search)) {
		return false
	}
	if filter.Status != "" && view.Status != filter.Status {
		return false
	}
	return true
}
