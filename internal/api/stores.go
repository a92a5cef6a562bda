package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/ANAVHEOBA/africgo-frontend/internal/entities"
)

// Stores lists public stores with optional filters and pagination.
func (c *Client) Stores(ctx context.Context, filters entities.StoreFilters) (entities.PaginatedStores, error) {
	query := url.Values{}
	setInt(query, "page", filters.Page)
	setInt(query, "limit", filters.Limit)
	setStr(query, "category", filters.Category)
	setStr(query, "city", filters.City)
	setStr(query, "state", filters.State)
	setStr(query, "country", filters.Country)
	setStr(query, "search", filters.Search)
	setStr(query, "sortBy", filters.SortBy)
	setStr(query, "sortOrder", filters.SortOrder)

	var stores entities.PaginatedStores
	err := c.read(ctx, request{
		name:     "stores.list",
		method:   http.MethodGet,
		path:     "/api/stores/list",
		query:    query,
		fallback: "failed to fetch stores",
	}, &stores)
	return stores, err
}

func (c *Client) StoreBySlug(ctx context.Context, slug string) (entities.Store, error) {
	var store entities.Store
	err := c.read(ctx, request{
		name:     "stores.get",
		method:   http.MethodGet,
		path:     "/api/stores/" + url.PathEscape(slug),
		fallback: "failed to fetch store",
	}, &store)
	return store, notFoundAsStoreErr(err)
}

// StoreProducts lists a store's public catalogue.
func (c *Client) StoreProducts(ctx context.Context, slug string, filters entities.ProductFilters) (entities.PaginatedProducts, error) {
	var products entities.PaginatedProducts
	err := c.read(ctx, request{
		name:     "stores.products",
		method:   http.MethodGet,
		path:     "/api/stores/" + url.PathEscape(slug) + "/products",
		query:    productQuery(filters),
		fallback: "failed to fetch products",
	}, &products)
	return products, notFoundAsStoreErr(err)
}

// MyStore returns the merchant's own store record.
func (c *Client) MyStore(ctx context.Context) (entities.Store, error) {
	var store entities.Store
	err := c.read(ctx, request{
		name:     "stores.my_store",
		method:   http.MethodGet,
		path:     "/api/stores/my-store",
		authed:   true,
		fallback: "failed to fetch store",
	}, &store)
	return store, err
}

func (c *Client) StoreOrders(ctx context.Context) ([]entities.Order, error) {
	var orders []entities.Order
	err := c.read(ctx, request{
		name:     "stores.orders",
		method:   http.MethodGet,
		path:     "/api/stores/orders",
		authed:   true,
		fallback: "failed to fetch store orders",
	}, &orders)
	return orders, err
}

func (c *Client) StoreOrder(ctx context.Context, orderID string) (entities.Order, error) {
	var order entities.Order
	err := c.read(ctx, request{
		name:     "stores.order",
		method:   http.MethodGet,
		path:     "/api/stores/orders/" + url.PathEscape(orderID),
		authed:   true,
		fallback: "failed to fetch order",
	}, &order)
	return order, notFoundAsOrderErr(err)
}

// AcceptOrder acknowledges a new order on the merchant side.
func (c *Client) AcceptOrder(ctx context.Context, orderID string) (entities.Order, error) {
	var order entities.Order
	err := c.call(ctx, request{
		name:     "stores.accept_order",
		method:   http.MethodPost,
		path:     "/api/stores/orders/" + url.PathEscape(orderID),
		authed:   true,
		fallback: "failed to accept order",
	}, &order)
	return order, notFoundAsOrderErr(err)
}

// MarkOrderReady flags a pending order as ready for pickup.
func (c *Client) MarkOrderReady(ctx context.Context, orderID string) (entities.Order, error) {
	var order entities.Order
	err := c.call(ctx, request{
		name:     "stores.mark_ready",
		method:   http.MethodPost,
		path:     "/api/stores/orders/" + url.PathEscape(orderID) + "/ready",
		authed:   true,
		fallback: "failed to update order status",
	}, &order)
	return order, notFoundAsOrderErr(err)
}

func (c *Client) Dashboard(ctx context.Context) (entities.StoreDashboard, error) {
	var dashboard entities.StoreDashboard
	err := c.read(ctx, request{
		name:     "stores.dashboard",
		method:   http.MethodGet,
		path:     "/api/stores/dashboard",
		authed:   true,
		fallback: "failed to fetch dashboard data",
	}, &dashboard)
	return dashboard, err
}

func (c *Client) Revenue(ctx context.Context) (entities.StoreRevenue, error) {
	var revenue entities.StoreRevenue
	err := c.read(ctx, request{
		name:     "stores.revenue",
		method:   http.MethodGet,
		path:     "/api/stores/revenue",
		authed:   true,
		fallback: "failed to fetch revenue data",
	}, &revenue)
	return revenue, err
}

func notFoundAsStoreErr(err error) error {
	if err == nil {
		return nil
	}
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%s: %w", apiErr.Message, entities.ErrStoreNotFound)
	}
	return err
}

func setStr(query url.Values, key, value string) {
	if value != "" {
		query.Set(key, value)
	}
}

func setInt(query url.Values, key string, value int) {
	if value > 0 {
		query.Set(key, strconv.Itoa(value))
	}
}
