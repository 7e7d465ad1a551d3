package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type DashboardStats struct {
	TotalItems          int             `json:"total_items"`
	TotalShops          int             `json:"total_shops"`
	TotalInventoryValue decimal.Decimal `json:"total_inventory_value"`
	LowStockCount       int             `json:"low_stock_count"`
	OutOfStockCount     int             `json:"out_of_stock_count"`
}

// RankedItem is one row of the top-by-value ranking.
type RankedItem struct {
	Name       string          `json:"name"`
	Quantity   int             `json:"quantity"`
	TotalValue decimal.Decimal `json:"total_value"`
}

// StatusBreakdown counts the catalog per stock status, with each share of the
// catalog as a percentage rounded to one decimal.
type StatusBreakdown struct {
	InStockCount      int     `json:"in_stock_count"`
	LowStockCount     int     `json:"low_stock_count"`
	OutOfStockCount   int     `json:"out_of_stock_count"`
	InStockPercent    float64 `json:"in_stock_percent"`
	LowStockPercent   float64 `json:"low_stock_percent"`
	OutOfStockPercent float64 `json:"out_of_stock_percent"`
}

type InventoryReport struct {
	GeneratedAt         time.Time       `json:"generated_at"`
	TotalItems          int             `json:"total_items"`
	TotalQuantity       int             `json:"total_quantity"`
	TotalInventoryValue decimal.Decimal `json:"total_inventory_value"`
	AverageValuePerItem decimal.Decimal `json:"average_value_per_item"`
	Breakdown           StatusBreakdown `json:"breakdown"`
	TopItems            []RankedItem    `json:"top_items"`
	Recommendations     []string        `json:"recommendations"`
}
