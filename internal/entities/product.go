package entities

import (
	"errors"
	"time"
)

type ProductStatus string

const (
	ProductActive       ProductStatus = "ACTIVE"
	ProductOutOfStock   ProductStatus = "OUT_OF_STOCK"
	ProductDiscontinued ProductStatus = "DISCONTINUED"
)

// ProductVariant is a configurable option axis on a product, with an
// optional per-option price override.
type ProductVariant struct {
	Name    string    `json:"name"`
	Options []string  `json:"options"`
	Prices  []float64 `json:"prices,omitempty"`
}

type ShippingDimensions struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type ShippingInfo struct {
	Weight                  float64            `json:"weight"`
	Dimensions              ShippingDimensions `json:"dimensions"`
	RequiresSpecialHandling bool               `json:"requiresSpecialHandling"`
}

type Product struct {
	ID                string            `json:"_id"`
	StoreID           string            `json:"storeId"`
	Name              string            `json:"name"`
	Description       string            `json:"description"`
	Price             float64           `json:"price"`
	Category          string            `json:"category"`
	Images            []string          `json:"images"`
	Stock             int               `json:"stock"`
	Specifications    map[string]string `json:"specifications,omitempty"`
	Variants          []ProductVariant  `json:"variants,omitempty"`
	Status            ProductStatus     `json:"status"`
	IsPublished       bool              `json:"isPublished"`
	GuestOrderEnabled bool              `json:"guestOrderEnabled"`
	MinOrderQuantity  int               `json:"minOrderQuantity"`
	MaxOrderQuantity  int               `json:"maxOrderQuantity"`
	ShippingInfo      *ShippingInfo     `json:"shippingInfo,omitempty"`
	CreatedAt         time.Time         `json:"createdAt"`
	UpdatedAt         time.Time         `json:"updatedAt"`
}

type ProductFilters struct {
	Page     int
	Limit    int
	Category string
	Status   ProductStatus
	Search   string
}

type PaginatedProducts struct {
	Products   []Product  `json:"products"`
	Pagination Pagination `json:"pagination"`
}

var ErrProductNotFound = errors.New("product not found")
