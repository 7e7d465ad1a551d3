package response

import (
	"github.com/shopspring/decimal"

	"github.com/syncbazar/syncbazar-api/internal/domain"
	"github.com/syncbazar/syncbazar-api/internal/pkg/currency"
)

type Dashboard struct {
	TotalItems          int             `json:"total_items"`
	TotalShops          int             `json:"total_shops"`
	TotalInventoryValue decimal.Decimal `json:"total_inventory_value"`
	ValueDisplay        string          `json:"value_display"`
	LowStockCount       int             `json:"low_stock_count"`
	OutOfStockCount     int             `json:"out_of_stock_count"`
}

func NewDashboard(stats domain.DashboardStats) Dashboard {
	return Dashboard{
		TotalItems:          stats.TotalItems,
		TotalShops:          stats.TotalShops,
		TotalInventoryValue: stats.TotalInventoryValue,
		ValueDisplay:        currency.Format(stats.TotalInventoryValue),
		LowStockCount:       stats.LowStockCount,
		OutOfStockCount:     stats.OutOfStockCount,
	}
}

type InventoryReport struct {
	domain.InventoryReport

	ValueDisplay   string `json:"value_display"`
	AverageDisplay string `json:"average_display"`
}

func NewInventoryReport(report domain.InventoryReport) InventoryReport {
	return InventoryReport{
		InventoryReport: report,
		ValueDisplay:    currency.Format(report.TotalInventoryValue),
		AverageDisplay:  currency.Format(report.AverageValuePerItem),
	}
}
