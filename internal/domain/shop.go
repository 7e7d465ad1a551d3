package domain

import "time"

type ShopStatus string

const (
	ShopStatusActive   ShopStatus = "Active"
	ShopStatusInactive ShopStatus = "Inactive"
)

type Shop struct {
	ID          uint       `json:"id"`
	Name        string     `json:"name"`
	Location    string     `json:"location"`
	ManagerName string     `json:"manager_name"`
	Phone       string     `json:"phone"`
	Email       string     `json:"email"`
	Status      ShopStatus `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
}
