package domain

import "time"

const (
	ActivityItemAdded   = "ITEM_ADDED"
	ActivityItemUpdated = "ITEM_UPDATED"
	ActivityItemDeleted = "ITEM_DELETED"
	ActivityShopAdded   = "SHOP_ADDED"
	ActivityShopUpdated = "SHOP_UPDATED"
	ActivityShopDeleted = "SHOP_DELETED"
)

// ActivityRecord is one entry of the mutation audit trail.
// ItemID, QuantityChanged and UserID are optional depending on the activity type.
type ActivityRecord struct {
	ID              uint      `json:"id"`
	ActivityType    string    `json:"activity_type"`
	Description     string    `json:"description"`
	ItemID          *uint     `json:"item_id,omitempty"`
	QuantityChanged *int      `json:"quantity_changed,omitempty"`
	UserID          *uint     `json:"user_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}
