package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockStatus is derived from quantity and reorder level, never stored.
type StockStatus string

const (
	StatusOutOfStock StockStatus = "Out of Stock"
	StatusLowStock   StockStatus = "Low Stock"
	StatusInStock    StockStatus = "In Stock"
)

const (
	// DefaultReorderLevel applies to items created without an explicit reorder level.
	DefaultReorderLevel = 10

	DefaultCategory = "General"
	DefaultLocation = "Main Store"
)

type Item struct {
	ID           uint            `json:"id"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	SKU          string          `json:"sku"`
	Quantity     int             `json:"quantity"`
	ReorderLevel int             `json:"reorder_level"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Location     string          `json:"location"`
	Supplier     string          `json:"supplier"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ClassifyStatus derives the stock status of an item.
// Zero quantity is always out of stock, even with a zero reorder level.
func ClassifyStatus(quantity, reorderLevel int) StockStatus {
	switch {
	case quantity == 0:
		return StatusOutOfStock
	case quantity < reorderLevel:
		return StatusLowStock
	default:
		return StatusInStock
	}
}

func (i Item) Status() StockStatus {
	return ClassifyStatus(i.Quantity, i.ReorderLevel)
}

// TotalValue is quantity × unit price, exact.
// Rounding to two decimals happens at display time only.
func (i Item) TotalValue() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
