package entities

import (
	"errors"
	"time"
)

type Store struct {
	ID          string        `json:"_id"`
	StoreName   string        `json:"storeName"`
	Description string        `json:"description"`
	Category    string        `json:"category"`
	Status      string        `json:"status"`
	Slug        string        `json:"slug"`
	StoreURL    string        `json:"storeUrl"`
	ContactInfo ContactInfo   `json:"contactInfo"`
	Address     ManualAddress `json:"address"`
	Settings    StoreSettings `json:"settings"`
	Metrics     StoreMetrics  `json:"metrics"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

type ContactInfo struct {
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	WhatsApp string `json:"whatsapp"`
}

type StoreSettings struct {
	IsVerified      bool `json:"isVerified"`
	IsFeaturedStore bool `json:"isFeaturedStore"`
	AllowRatings    bool `json:"allowRatings"`
}

type StoreMetrics struct {
	TotalOrders   int     `json:"totalOrders"`
	TotalRevenue  float64 `json:"totalRevenue"`
	TotalProducts int     `json:"totalProducts"`
}

// StoreFilters narrows the public store listing. Zero values are
// omitted from the request.
type StoreFilters struct {
	Page      int
	Limit     int
	Category  string
	City      string
	State     string
	Country   string
	Search    string
	SortBy    string
	SortOrder string
}

type Pagination struct {
	Total      int  `json:"total"`
	Page       int  `json:"page"`
	TotalPages int  `json:"totalPages"`
	HasMore    bool `json:"hasMore"`
}

type PaginatedStores struct {
	Stores     []Store    `json:"stores"`
	Pagination Pagination `json:"pagination"`
}

// RevenueWindow is one aggregation bucket of the merchant revenue
// report (amount plus the number of orders it covers).
type RevenueWindow struct {
	Amount float64 `json:"amount"`
	Orders int     `json:"orders"`
}

type RevenuePeriod struct {
	Current  RevenueWindow `json:"current"`
	Previous RevenueWindow `json:"previous"`
}

type StoreRevenue struct {
	Total   RevenueWindow `json:"total"`
	Daily   RevenuePeriod `json:"daily"`
	Weekly  RevenuePeriod `json:"weekly"`
	Monthly RevenuePeriod `json:"monthly"`
}

type TopProduct struct {
	ID        string  `json:"_id"`
	Name      string  `json:"name"`
	TotalSold int     `json:"totalSold"`
	Revenue   float64 `json:"revenue"`
}

type StoreDashboard struct {
	RecentOrders []Order      `json:"recentOrders"`
	TopProducts  []TopProduct `json:"topProducts"`
}

var ErrStoreNotFound = errors.New("store not found")
