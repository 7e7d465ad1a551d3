package service

import (
	"strings"

	"github.com/syncbazar/syncbazar-api/internal/domain"
)

// FilterItems returns the items whose name, category, SKU or supplier contain
// query, case-insensitively. An empty query returns the catalog unchanged,
// preserving its name-ascending order.
func FilterItems(items []domain.Item, query string) []domain.Item {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return items
	}

	matched := make([]domain.Item, 0)
	for _, item := range items {
		if containsFold(item.Name, q) ||
			containsFold(item.Category, q) ||
			containsFold(item.SKU, q) ||
			containsFold(item.Supplier, q) {
			matched = append(matched, item)
		}
	}

	return matched
}

// FilterShops returns the shops whose name, location or manager name contain
// query, case-insensitively. Empty-query semantics match FilterItems.
func FilterShops(shops []domain.Shop, query string) []domain.Shop {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return shops
	}

	matched := make([]domain.Shop, 0)
	for _, shop := range shops {
		if containsFold(shop.Name, q) ||
			containsFold(shop.Location, q) ||
			containsFold(shop.ManagerName, q) {
			matched = append(matched, shop)
		}
	}

	return matched
}

func containsFold(s, loweredQuery string) bool {
	return strings.Contains(strings.ToLower(s), loweredQuery)
}
