package entities

import (
	"errors"
	"time"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDING"
	OrderConfirmed OrderStatus = "CONFIRMED"
	OrderInTransit OrderStatus = "IN_TRANSIT"
	OrderDelivered OrderStatus = "DELIVERED"
	OrderCancelled OrderStatus = "CANCELLED"
)

type PackageSize string

const (
	PackageSmall  PackageSize = "SMALL"
	PackageMedium PackageSize = "MEDIUM"
	PackageLarge  PackageSize = "LARGE"
)

// VariantSelection is a chosen product variant on an order line
// (e.g. name "Color", value "Black").
type VariantSelection struct {
	ID    string `json:"_id,omitempty"`
	Name  string `json:"name"`
	Value string `json:"value"`
}

type OrderItem struct {
	ID          string             `json:"_id,omitempty"`
	ProductID   string             `json:"productId"`
	StoreID     string             `json:"storeId,omitempty"`
	Quantity    int                `json:"quantity"`
	Price       float64            `json:"price"`
	VariantData []VariantSelection `json:"variantData,omitempty"`
}

// Address is either a manual address block or a reference to a saved
// address, depending on Type. The client only ever submits manual
// addresses; the backend owns the distinction.
type Address struct {
	Type          string         `json:"type,omitempty"`
	ManualAddress *ManualAddress `json:"manualAddress,omitempty"`
}

type ManualAddress struct {
	Street         string `json:"street"`
	City           string `json:"city"`
	State          string `json:"state"`
	Country        string `json:"country"`
	PostalCode     string `json:"postalCode"`
	RecipientName  string `json:"recipientName,omitempty"`
	RecipientPhone string `json:"recipientPhone,omitempty"`
	RecipientEmail string `json:"recipientEmail,omitempty"`
}

// Order mirrors the backend record. The client never mutates it
// directly; state transitions happen through dedicated endpoints and
// are observed by re-fetching.
type Order struct {
	ID                      string      `json:"_id"`
	UserID                  string      `json:"userId,omitempty"`
	Items                   []OrderItem `json:"items"`
	PickupAddress           Address     `json:"pickupAddress"`
	DeliveryAddress         Address     `json:"deliveryAddress"`
	PackageSize             PackageSize `json:"packageSize"`
	Status                  OrderStatus `json:"status"`
	Price                   float64     `json:"price"`
	IsFragile               bool        `json:"isFragile"`
	IsExpressDelivery       bool        `json:"isExpressDelivery"`
	RequiresSpecialHandling bool        `json:"requiresSpecialHandling"`
	SpecialInstructions     string      `json:"specialInstructions,omitempty"`
	DeliveryZone            string      `json:"deliveryZone,omitempty"`
	ZonePrice               float64     `json:"zonePrice,omitempty"`
	TrackingNumber          string      `json:"trackingNumber"`
	EstimatedWeight         float64     `json:"estimatedWeight,omitempty"`
	EstimatedDeliveryDate   time.Time   `json:"estimatedDeliveryDate"`
	CreatedAt               time.Time   `json:"createdAt"`
	UpdatedAt               time.Time   `json:"updatedAt"`
}

var ErrOrderNotFound = errors.New("order not found")
