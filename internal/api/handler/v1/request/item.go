package request

// ItemRequest carries item fields as entered. Numeric fields arrive as
// strings and are validated and parsed by the inventory service.
type ItemRequest struct {
	Name         string `json:"name"`
	Category     string `json:"category"`
	SKU          string `json:"sku"`
	Quantity     string `json:"quantity"`
	ReorderLevel string `json:"reorder_level"`
	Price        string `json:"price"`
	Location     string `json:"location"`
	Supplier     string `json:"supplier"`
}
