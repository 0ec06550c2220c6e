package inventory

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ogadoctor/triage-api/internal/model"
	"github.com/ogadoctor/triage-api/internal/repository/memory"
	"github.com/ogadoctor/triage-api/pkg/metrics"
)

func newService(items []*model.InventoryItem) *Service {
	m := metrics.NewMetrics("test", prometheus.NewRegistry())
	return NewService(memory.NewInventoryRepository(items), m)
}

func TestStatusOfBoundaryIsInclusive(t *testing.T) {
	tests := []struct {
		name     string
		stock    int
		reorder  int
		expected model.StockStatus
	}{
		{"below reorder point", 5, 10, model.StockStatusLow},
		{"exactly at reorder point", 10, 10, model.StockStatusLow},
		{"above reorder point", 11, 10, model.StockStatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := &model.InventoryItem{CurrentStock: tt.stock, ReorderPoint: tt.reorder}
			assert.Equal(t, tt.expected, StatusOf(item))
		})
	}
}

func TestReorderQuantityNeverNegative(t *testing.T) {
	assert.Equal(t, 23, ReorderQuantity(&model.InventoryItem{CurrentStock: 12, MonthlyDemand: 35}))
	assert.Equal(t, 0, ReorderQuantity(&model.InventoryItem{CurrentStock: 65, MonthlyDemand: 40}))
	assert.Equal(t, 0, ReorderQuantity(&model.InventoryItem{CurrentStock: 40, MonthlyDemand: 40}))
}

func TestListFilters(t *testing.T) {
	ctx := context.Background()
	svc := newService(memory.SeedItems())

	all, err := svc.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 10)

	// Case-insensitive substring search.
	byName, err := svc.List(ctx, &model.InventoryFilter{Search: "amox"})
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "Amoxicillin", byName[0].Medication)

	// Exact status match, seed order preserved.
	low, err := svc.List(ctx, &model.InventoryFilter{Status: model.StockStatusLow})
	require.NoError(t, err)
	require.Len(t, low, 2)
	assert.Equal(t, "Amoxicillin", low[0].Medication)
	assert.Equal(t, "Chloroquine", low[1].Medication)

	// Combined search and status.
	both, err := svc.List(ctx, &model.InventoryFilter{Search: "chloro", Status: model.StockStatusLow})
	require.NoError(t, err)
	require.Len(t, both, 1)
	assert.Equal(t, "Chloroquine", both[0].Medication)

	_, err = svc.List(ctx, &model.InventoryFilter{Status: model.StockStatus("MAYBE")})
	require.Error(t, err)
}

func TestListDerivesTotals(t *testing.T) {
	svc := newService([]*model.InventoryItem{
		{Medication: "Paracetamol", CurrentStock: 45, ReorderPoint: 20, MonthlyDemand: 120, UnitPrice: 5000},
	})

	views, err := svc.List(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, model.StockStatusOK, views[0].Status)
	assert.Equal(t, int64(225000), views[0].TotalValue)
}

func TestSummary(t *testing.T) {
	svc := newService(memory.SeedItems())

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 10, summary.TotalItems)
	assert.Equal(t, 2, summary.LowStockCount)
	assert.Greater(t, summary.TotalValue, int64(0))
	assert.Greater(t, summary.AvgMonthlyTurnover, 0)
}

func TestGenerateReorder(t *testing.T) {
	ctx := context.Background()
	svc := newService(memory.SeedItems())

	result, err := svc.GenerateReorder(ctx, "Amoxicillin")
	require.NoError(t, err)
	assert.Equal(t, "Amoxicillin", result.Medication)
	assert.Equal(t, 23, result.Quantity)

	// Lookup is case-insensitive like search.
	_, err = svc.GenerateReorder(ctx, "chloroquine")
	require.NoError(t, err)

	_, err = svc.GenerateReorder(ctx, "Paracetamol")
	require.Error(t, err, "item above reorder point")

	_, err = svc.GenerateReorder(ctx, "Unobtainium")
	require.Error(t, err)
}
