package response

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/syncbazar/syncbazar-api/internal/domain"
	"github.com/syncbazar/syncbazar-api/internal/pkg/currency"
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
	TotalValue   decimal.Decimal `json:"total_value"`
	Status       string          `json:"status"`
	PriceDisplay string          `json:"price_display"`
	ValueDisplay string          `json:"value_display"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func NewItem(item domain.Item) Item {
	return Item{
		ID:           item.ID,
		Name:         item.Name,
		Category:     item.Category,
		SKU:          item.SKU,
		Quantity:     item.Quantity,
		ReorderLevel: item.ReorderLevel,
		UnitPrice:    item.UnitPrice,
		Location:     item.Location,
		Supplier:     item.Supplier,
		TotalValue:   item.TotalValue(),
		Status:       string(item.Status()),
		PriceDisplay: currency.Format(item.UnitPrice),
		ValueDisplay: currency.Format(item.TotalValue()),
		CreatedAt:    item.CreatedAt,
		UpdatedAt:    item.UpdatedAt,
	}
}

func NewItems(items []domain.Item) []Item {
	out := make([]Item, 0, len(items))
	for _, item := range items {
		out = append(out, NewItem(item))
	}

	return out
}

// NetworkSearchResult labels a catalog item with its free-text location as
// the "store". There is no item-to-shop relation in the data model.
type NetworkSearchResult struct {
	Item     string `json:"item"`
	Category string `json:"category"`
	Store    string `json:"store"`
	Quantity int    `json:"quantity"`
	Price    string `json:"price"`
	Status   string `json:"status"`
}

func NewNetworkSearchResults(items []domain.Item) []NetworkSearchResult {
	results := make([]NetworkSearchResult, 0, len(items))
	for _, item := range items {
		category := item.Category
		if category == "" {
			category = "Uncategorized"
		}
		store := item.Location
		if store == "" {
			store = domain.DefaultLocation
		}

		results = append(results, NetworkSearchResult{
			Item:     item.Name,
			Category: category,
			Store:    store,
			Quantity: item.Quantity,
			Price:    currency.Format(item.UnitPrice),
			Status:   string(item.Status()),
		})
	}

	return results
}

type Message struct {
	Message string `json:"message"`
}

// ValidationResult is the collect-all validation outcome for form feedback.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

func NewValidationResult(errs []error) ValidationResult {
	messages := make([]string, 0, len(errs))
	for _, err := range errs {
		messages = append(messages, err.Error())
	}

	return ValidationResult{
		Valid:  len(errs) == 0,
		Errors: messages,
	}
}
