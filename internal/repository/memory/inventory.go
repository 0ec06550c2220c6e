package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/ogadoctor/triage-api/internal/model"
	"github.com/ogadoctor/triage-api/internal/repository"
	"github.com/ogadoctor/triage-api/pkg/errors"
)

type inventoryRepository struct {
	mu    sync.RWMutex
	items []*model.InventoryItem
	index map[string]*model.InventoryItem
}

// NewInventoryRepository returns an in-memory stock table seeded with
// the given items. Listing preserves the seed order.
func NewInventoryRepository(items []*model.InventoryItem) repository.InventoryRepository {
	r := &inventoryRepository{
		items: items,
		index: make(map[string]*model.InventoryItem, len(items)),
	}
	for _, item := range items {
		r.index[strings.ToLower(item.Medication)] = item
	}
	return r
}

func (r *inventoryRepository) List(ctx context.Context) ([]*model.InventoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.InventoryItem, len(r.items))
	for i, item := range r.items {
		cp := *item
		out[i] = &cp
	}
	return out, nil
}

func (r *inventoryRepository) Get(ctx context.Context, medication string) (*model.InventoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.index[strings.ToLower(medication)]
	if !ok {
		return nil, errors.NewNotFound("medication", nil)
	}
	cp := *item
	return &cp, nil
}

// SeedItems is the default pharmacy stock list. Prices are in kobo.
func SeedItems() []*model.InventoryItem {
	return []*model.InventoryItem{
		{Medication: "Paracetamol", CurrentStock: 45, ReorderPoint: 20, MonthlyDemand: 120, UnitPrice: 5000},
		{Medication: "Amoxicillin", CurrentStock: 12, ReorderPoint: 15, MonthlyDemand: 35, UnitPrice: 30000},
		{Medication: "Chloroquine", CurrentStock: 8, ReorderPoint: 10, MonthlyDemand: 25, UnitPrice: 20000},
		{Medication: "Vitamin C", CurrentStock: 65, ReorderPoint: 25, MonthlyDemand: 40, UnitPrice: 15000},
		{Medication: "Ibuprofen", CurrentStock: 28, ReorderPoint: 20, MonthlyDemand: 85, UnitPrice: 8000},
		{Medication: "Cough Syrup", CurrentStock: 15, ReorderPoint: 12, MonthlyDemand: 30, UnitPrice: 25000},
		{Medication: "Antacid", CurrentStock: 42, ReorderPoint: 15, MonthlyDemand: 50, UnitPrice: 10000},
		{Medication: "ORS", CurrentStock: 55, ReorderPoint: 30, MonthlyDemand: 95, UnitPrice: 5000},
		{Medication: "Aspirin", CurrentStock: 18, ReorderPoint: 10, MonthlyDemand: 22, UnitPrice: 12000},
		{Medication: "Multivitamin", CurrentStock: 38, ReorderPoint: 20, MonthlyDemand: 45, UnitPrice: 20000},
	}
}
