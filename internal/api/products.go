package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/ANAVHEOBA/africgo-frontend/internal/entities"
)

type CreateProductRequest struct {
	Name              string                    `json:"name"`
	Description       string                    `json:"description"`
	Price             float64                   `json:"price"`
	Category          string                    `json:"category"`
	Images            []string                  `json:"images"`
	Stock             int                       `json:"stock"`
	Specifications    map[string]string         `json:"specifications,omitempty"`
	Variants          []entities.ProductVariant `json:"variants,omitempty"`
	IsPublished       bool                      `json:"isPublished"`
	GuestOrderEnabled bool                      `json:"guestOrderEnabled"`
	MinOrderQuantity  int                       `json:"minOrderQuantity"`
	MaxOrderQuantity  int                       `json:"maxOrderQuantity"`
	ShippingInfo      *entities.ShippingInfo    `json:"shippingInfo,omitempty"`
	Status            entities.ProductStatus    `json:"status,omitempty"`
}

// UpdateProductRequest is a partial update; only non-nil fields are
// sent.
type UpdateProductRequest struct {
	Name              *string                   `json:"name,omitempty"`
	Description       *string                   `json:"description,omitempty"`
	Price             *float64                  `json:"price,omitempty"`
	Category          *string                   `json:"category,omitempty"`
	Images            []string                  `json:"images,omitempty"`
	Stock             *int                      `json:"stock,omitempty"`
	Specifications    map[string]string         `json:"specifications,omitempty"`
	Variants          []entities.ProductVariant `json:"variants,omitempty"`
	IsPublished       *bool                     `json:"isPublished,omitempty"`
	GuestOrderEnabled *bool                     `json:"guestOrderEnabled,omitempty"`
	MinOrderQuantity  *int                      `json:"minOrderQuantity,omitempty"`
	MaxOrderQuantity  *int                      `json:"maxOrderQuantity,omitempty"`
	ShippingInfo      *entities.ShippingInfo    `json:"shippingInfo,omitempty"`
	Status            *entities.ProductStatus   `json:"status,omitempty"`
}

// MerchantProducts lists the merchant's own catalogue.
func (c *Client) MerchantProducts(ctx context.Context, filters entities.ProductFilters) (entities.PaginatedProducts, error) {
	var products entities.PaginatedProducts
	err := c.read(ctx, request{
		name:     "products.list",
		method:   http.MethodGet,
		path:     "/api/products/store",
		query:    productQuery(filters),
		authed:   true,
		fallback: "failed to fetch products",
	}, &products)
	return products, err
}

func (c *Client) CreateProduct(ctx context.Context, req CreateProductRequest) (entities.Product, error) {
	var product entities.Product
	err := c.call(ctx, request{
		name:     "products.create",
		method:   http.MethodPost,
		path:     "/api/products/create",
		body:     req,
		authed:   true,
		fallback: "failed to create product",
	}, &product)
	return product, err
}

func (c *Client) UpdateProduct(ctx context.Context, productID string, req UpdateProductRequest) (entities.Product, error) {
	var product entities.Product
	err := c.call(ctx, request{
		name:     "products.update",
		method:   http.MethodPut,
		path:     "/api/products/" + url.PathEscape(productID),
		body:     req,
		authed:   true,
		fallback: "failed to update product",
	}, &product)
	return product, notFoundAsProductErr(err)
}

func (c *Client) DeleteProduct(ctx context.Context, productID string) error {
	err := c.call(ctx, request{
		name:     "products.delete",
		method:   http.MethodDelete,
		path:     "/api/products/" + url.PathEscape(productID),
		authed:   true,
		fallback: "failed to delete product",
	}, nil)
	return notFoundAsProductErr(err)
}

func (c *Client) ProductByID(ctx context.Context, productID string) (entities.Product, error) {
	var product entities.Product
	err := c.read(ctx, request{
		name:     "products.get",
		method:   http.MethodGet,
		path:     "/api/products/" + url.PathEscape(productID),
		authed:   true,
		fallback: "failed to fetch product",
	}, &product)
	return product, notFoundAsProductErr(err)
}

func (c *Client) SearchProducts(ctx context.Context, queryText string, filters entities.ProductFilters) (entities.PaginatedProducts, error) {
	query := productQuery(filters)
	query.Set("query", queryText)

	var products entities.PaginatedProducts
	err := c.read(ctx, request{
		name:     "products.search",
		method:   http.MethodGet,
		path:     "/api/products/search",
		query:    query,
		authed:   true,
		fallback: "failed to search products",
	}, &products)
	return products, err
}

func productQuery(filters entities.ProductFilters) url.Values {
	query := url.Values{}
	setInt(query, "page", filters.Page)
	setInt(query, "limit", filters.Limit)
	setStr(query, "category", filters.Category)
	setStr(query, "status", string(filters.Status))
	setStr(query, "search", filters.Search)
	return query
}

func notFoundAsProductErr(err error) error {
	if err == nil {
		return nil
	}
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%s: %w", apiErr.Message, entities.ErrProductNotFound)
	}
	return err
}
