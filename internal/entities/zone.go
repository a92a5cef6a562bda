package entities

import "time"

// DeliveryZone is read-only reference data. The client uses it to show
// a delivery total before submission; the backend recomputes the
// authoritative price when the order is placed.
type DeliveryZone struct {
	ID            string    `json:"_id"`
	Name          string    `json:"name"`
	DeliveryPrice float64   `json:"deliveryPrice"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
