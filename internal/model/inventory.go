package model

// StockStatus is the derived stock condition of an inventory item.
type StockStatus string

const (
	StockStatusOK  StockStatus = "OK"
	StockStatusLow StockStatus = "LOW_STOCK"
)

func (s StockStatus) Valid() bool {
	return s == StockStatusOK || s == StockStatusLow
}

// Label returns the operator-facing label for the stock status.
func (s StockStatus) Label() string {
	switch s {
	case StockStatusOK:
		return "OK"
	case StockStatusLow:
		return "Low Stock"
	}
	return "Unknown"
}

// InventoryItem is one medication line in the pharmacy stock table.
// UnitPrice is in minor currency units (kobo).
type InventoryItem struct {
	Medication    string `json:"medication"`
	CurrentStock  int    `json:"current_stock"`
	ReorderPoint  int    `json:"reorder_point"`
	MonthlyDemand int    `json:"monthly_demand"`
	UnitPrice     int64  `json:"unit_price"`
}

// InventoryItemView is an item plus its derived fields, computed on read.
type InventoryItemView struct {
	InventoryItem
	Status     StockStatus `json:"status"`
	TotalValue int64       `json:"total_value"`
}

// InventoryFilter narrows an inventory listing. Search matches the
// medication name case-insensitively; Status, when set, must match the
// derived stock status exactly.
type InventoryFilter struct {
	Search string      `json:"search" form:"search"`
	Status StockStatus `json:"status" form:"status"`
}

// InventorySummary is the metric strip above the stock table.
type InventorySummary struct {
	LowStockCount      int   `json:"low_stock_count"`
	TotalItems         int   `json:"total_items"`
	TotalValue         int64 `json:"total_value"`
	AvgMonthlyTurnover int   `json:"avg_monthly_turnover"`
}

// ReorderResult reports a generated reorder suggestion.
type ReorderResult struct {
	Medication string `json:"medication"`
	Quantity   int    `json:"quantity"`
}
