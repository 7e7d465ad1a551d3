package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestClassifyStatus(t *testing.T) {
	tests := []struct {
		name         string
		quantity     int
		reorderLevel int
		want         StockStatus
	}{
		{"zero quantity is out of stock", 0, 10, StatusOutOfStock},
		{"zero quantity with zero reorder level is still out of stock", 0, 0, StatusOutOfStock},
		{"below reorder level is low stock", 5, 10, StatusLowStock},
		{"one below reorder level is low stock", 9, 10, StatusLowStock},
		{"at reorder level is in stock", 10, 10, StatusInStock},
		{"above reorder level is in stock", 100, 10, StatusInStock},
		{"positive quantity with zero reorder level is in stock", 1, 0, StatusInStock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyStatus(tt.quantity, tt.reorderLevel))
		})
	}
}

func TestItem_Status(t *testing.T) {
	item := Item{Quantity: 3, ReorderLevel: 10}

	assert.Equal(t, StatusLowStock, item.Status())
}

func TestItem_TotalValue(t *testing.T) {
	item := Item{
		Quantity:  200,
		UnitPrice: decimal.RequireFromString("25.99"),
	}

	assert.True(t, decimal.RequireFromString("5198").Equal(item.TotalValue()))
}

func TestItem_TotalValue_ZeroQuantity(t *testing.T) {
	item := Item{
		Quantity:  0,
		UnitPrice: decimal.RequireFromString("1200.00"),
	}

	assert.True(t, item.TotalValue().IsZero())
}
