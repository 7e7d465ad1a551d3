package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/syncbazar/syncbazar-api/internal/domain"
)

func searchCatalog() []domain.Item {
	return []domain.Item{
		{Name: "Basmati Rice", Category: "Groceries", SKU: "GR-001", Supplier: "Khan Traders"},
		{Name: "Laptop", Category: "Electronics", SKU: "EL-100", Supplier: "TechHub"},
		{Name: "USB Cable", Category: "Electronics", SKU: "EL-101", Supplier: "TechHub"},
		{Name: "Washing Powder", Category: "Household", SKU: "HH-050", Supplier: "CleanCo"},
	}
}

func TestFilterItems_EmptyQueryReturnsCatalogUnchanged(t *testing.T) {
	items := searchCatalog()

	got := FilterItems(items, "")
	assert.Equal(t, items, got)

	got = FilterItems(items, "   ")
	assert.Equal(t, items, got)
}

func TestFilterItems_MatchesEachField(t *testing.T) {
	items := searchCatalog()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"by name", "laptop", []string{"Laptop"}},
		{"by category", "electronics", []string{"Laptop", "USB Cable"}},
		{"by sku", "el-101", []string{"USB Cable"}},
		{"by supplier", "techhub", []string{"Laptop", "USB Cable"}},
		{"case insensitive", "BASMATI", []string{"Basmati Rice"}},
		{"substring", "cab", []string{"USB Cable"}},
		{"no match", "printer", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterItems(items, tt.query)

			names := make([]string, 0, len(got))
			for _, item := range got {
				names = append(names, item.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestFilterShops(t *testing.T) {
	shops := []domain.Shop{
		{Name: "City Mart", Location: "Downtown", ManagerName: "Ali Raza"},
		{Name: "Green Grocers", Location: "Uptown", ManagerName: "Sara Khan"},
	}

	assert.Equal(t, shops, FilterShops(shops, ""))

	got := FilterShops(shops, "downtown")
	assert.Len(t, got, 1)
	assert.Equal(t, "City Mart", got[0].Name)

	got = FilterShops(shops, "KHAN")
	assert.Len(t, got, 1)
	assert.Equal(t, "Green Grocers", got[0].Name)

	assert.Empty(t, FilterShops(shops, "suburb"))
}
