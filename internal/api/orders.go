package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/ANAVHEOBA/africgo-frontend/internal/entities"
)

type OrderItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// CreateOrderRequest is the write-only DTO assembled from the order
// form. The backend re-validates every field; identifier format checks
// happen in the submission flow before this is ever sent.
type CreateOrderRequest struct {
	StoreID                 string               `json:"storeId"`
	Items                   []OrderItemRequest   `json:"items"`
	DeliveryAddress         entities.Address     `json:"deliveryAddress"`
	PickupAddress           entities.Address     `json:"pickupAddress"`
	PackageSize             entities.PackageSize `json:"packageSize"`
	IsFragile               bool                 `json:"isFragile"`
	IsExpressDelivery       bool                 `json:"isExpressDelivery"`
	RequiresSpecialHandling bool                 `json:"requiresSpecialHandling"`
	SpecialInstructions     string               `json:"specialInstructions,omitempty"`
	ZoneID                  string               `json:"zoneId"`
}

type ConfirmPaymentRequest struct {
	Amount float64 `json:"amount"`
}

// PlaceOrder submits a new order. The call is not idempotent and is
// never retried.
func (c *Client) PlaceOrder(ctx context.Context, req CreateOrderRequest) (entities.Order, error) {
	var order entities.Order
	err := c.call(ctx, request{
		name:     "orders.place",
		method:   http.MethodPost,
		path:     "/api/orders/consumer/place-order",
		body:     req,
		authed:   true,
		fallback: "failed to place order",
	}, &order)
	return order, err
}

func (c *Client) ConsumerOrders(ctx context.Context) ([]entities.Order, error) {
	var orders []entities.Order
	err := c.read(ctx, request{
		name:     "orders.list",
		method:   http.MethodGet,
		path:     "/api/orders/consumer/orders",
		authed:   true,
		fallback: "failed to fetch orders",
	}, &orders)
	return orders, err
}

func (c *Client) ConsumerOrder(ctx context.Context, orderID string) (entities.Order, error) {
	var order entities.Order
	err := c.read(ctx, request{
		name:     "orders.get",
		method:   http.MethodGet,
		path:     "/api/orders/consumer/orders/" + url.PathEscape(orderID),
		authed:   true,
		fallback: "failed to fetch order",
	}, &order)
	return order, notFoundAsOrderErr(err)
}

// ConfirmPayment reports that the consumer has paid the given amount.
// The backend owns the resulting status transition.
func (c *Client) ConfirmPayment(ctx context.Context, orderID string, amount float64) (entities.Order, error) {
	var order entities.Order
	err := c.call(ctx, request{
		name:     "orders.mark_payment",
		method:   http.MethodPost,
		path:     "/api/orders/consumer/mark-payment/" + url.PathEscape(orderID),
		body:     ConfirmPaymentRequest{Amount: amount},
		authed:   true,
		fallback: "failed to confirm payment",
	}, &order)
	return order, notFoundAsOrderErr(err)
}

// TrackOrder looks an order up by tracking number. No session needed.
func (c *Client) TrackOrder(ctx context.Context, trackingNumber string) (entities.Order, error) {
	var order entities.Order
	err := c.read(ctx, request{
		name:     "orders.track",
		method:   http.MethodGet,
		path:     "/api/orders/track/" + url.PathEscape(trackingNumber),
		fallback: "failed to track order",
	}, &order)
	return order, notFoundAsOrderErr(err)
}

func notFoundAsOrderErr(err error) error {
	if err == nil {
		return nil
	}
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%s: %w", apiErr.Message, entities.ErrOrderNotFound)
	}
	return err
}
