// Package orderflow drives the client side of order placement: local
// fail-fast validation, zone selection and the submission call. The
// backend re-validates everything; nothing here is a security boundary.
package orderflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ANAVHEOBA/africgo-frontend/internal/api"
	"github.com/ANAVHEOBA/africgo-frontend/internal/entities"

	"github.com/go-playground/validator/v10"
)

// State of one form instance. Transitions are strictly
// idle → validating → submitting → succeeded|failed; a failed flow
// returns to validating on the next Submit.
type State string

const (
	StateIdle       State = "idle"
	StateValidating State = "validating"
	StateSubmitting State = "submitting"
	StateSucceeded  State = "succeeded"
	StateFailed     State = "failed"
)

var (
	ErrZoneRequired      = errors.New("a delivery zone must be selected")
	ErrRecipientRequired = errors.New("delivery recipient name and phone are required")
	ErrUnknownZone       = errors.New("unknown delivery zone")
)

// Backend is the slice of the API client the flow needs.
type Backend interface {
	DeliveryZones(ctx context.Context) ([]entities.DeliveryZone, error)
	PlaceOrder(ctx context.Context, req api.CreateOrderRequest) (entities.Order, error)
}

type ItemForm struct {
	ProductID string `json:"productId" validate:"required,len=24,hexadecimal"`
	Quantity  int    `json:"quantity" validate:"required,gte=1"`
}

type AddressForm struct {
	Street         string `json:"street" validate:"required"`
	City           string `json:"city" validate:"required"`
	State          string `json:"state" validate:"required"`
	Country        string `json:"country" validate:"required"`
	PostalCode     string `json:"postalCode" validate:"required"`
	RecipientName  string `json:"recipientName,omitempty"`
	RecipientPhone string `json:"recipientPhone,omitempty"`
	RecipientEmail string `json:"recipientEmail,omitempty" validate:"omitempty,email"`
}

// Form holds everything the consumer fills in. ZoneID may be left
// empty when a zone has been selected on the flow itself.
type Form struct {
	StoreID             string               `json:"storeId" validate:"required,len=24,hexadecimal"`
	Items               []ItemForm           `json:"items" validate:"required,min=1,dive"`
	Delivery            AddressForm          `json:"deliveryAddress"`
	Pickup              AddressForm          `json:"pickupAddress"`
	PackageSize         entities.PackageSize `json:"packageSize" validate:"required,oneof=SMALL MEDIUM LARGE"`
	IsFragile           bool                 `json:"isFragile"`
	IsExpressDelivery   bool                 `json:"isExpressDelivery"`
	SpecialInstructions string               `json:"specialInstructions,omitempty"`
	ZoneID              string               `json:"zoneId,omitempty" validate:"omitempty,len=24,hexadecimal"`
}

// Flow is one order-form instance. It is safe for the single
// goroutine serving a request; the mutex only protects state reads
// from concurrent observers.
type Flow struct {
	logger   *slog.Logger
	backend  Backend
	validate *validator.Validate

	onSuccess func(orderID string)

	mu       sync.Mutex
	state    State
	zones    []entities.DeliveryZone
	selected int
}

func New(logger *slog.Logger, backend Backend, onSuccess func(orderID string)) *Flow {
	return &Flow{
		logger:    logger.With(slog.String("component", "orderflow")),
		backend:   backend,
		validate:  validator.New(),
		onSuccess: onSuccess,
		state:     StateIdle,
		selected:  -1,
	}
}

func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *Flow) setState(s State) {
	f.mu.Lock()
	f.state = s
	f.mu.Unlock()
}

// LoadZones fetches the zone list once and pre-selects the first zone
// when present.
func (f *Flow) LoadZones(ctx context.Context) error {
	zones, err := f.backend.DeliveryZones(ctx)
	if err != nil {
		return fmt.Errorf("failed to load zones: %w", err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.zones = zones
	if len(zones) > 0 {
		f.selected = 0
	} else {
		f.selected = -1
	}
	return nil
}

func (f *Flow) Zones() []entities.DeliveryZone {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.zones
}

func (f *Flow) SelectZone(zoneID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, z := range f.zones {
		if z.ID == zoneID {
			f.selected = i
			return nil
		}
	}
	return ErrUnknownZone
}

func (f *Flow) SelectedZone() (entities.DeliveryZone, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.selected < 0 || f.selected >= len(f.zones) {
		return entities.DeliveryZone{}, false
	}
	return f.zones[f.selected], true
}

// Submit validates the form locally and places the order. Validation
// failures happen before any network call; the form stays editable
// after an error.
func (f *Flow) Submit(ctx context.Context, form Form) (entities.Order, error) {
	f.setState(StateValidating)

	if form.ZoneID == "" {
		zone, ok := f.SelectedZone()
		if !ok {
			f.setState(StateFailed)
			return entities.Order{}, ErrZoneRequired
		}
		form.ZoneID = zone.ID
	}

	if err := f.validate.Struct(form); err != nil {
		f.setState(StateFailed)
		return entities.Order{}, err
	}
	if err := f.validate.Struct(form.Delivery); err != nil {
		f.setState(StateFailed)
		return entities.Order{}, err
	}
	if err := f.validate.Struct(form.Pickup); err != nil {
		f.setState(StateFailed)
		return entities.Order{}, err
	}
	if form.Delivery.RecipientName == "" || form.Delivery.RecipientPhone == "" {
		f.setState(StateFailed)
		return entities.Order{}, ErrRecipientRequired
	}

	f.setState(StateSubmitting)

	order, err := f.backend.PlaceOrder(ctx, buildRequest(form))
	if err != nil {
		f.setState(StateFailed)
		return entities.Order{}, err
	}

	f.setState(StateSucceeded)
	f.logger.InfoContext(ctx, "order placed",
		slog.String("orderID", order.ID),
		slog.String("trackingNumber", order.TrackingNumber),
	)
	if f.onSuccess != nil {
		f.onSuccess(order.ID)
	}
	return order, nil
}

func buildRequest(form Form) api.CreateOrderRequest {
	items := make([]api.OrderItemRequest, 0, len(form.Items))
	for _, item := range form.Items {
		items = append(items, api.OrderItemRequest{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	return api.CreateOrderRequest{
		StoreID:             form.StoreID,
		Items:               items,
		DeliveryAddress:     manualAddress(form.Delivery),
		PickupAddress:       manualAddress(form.Pickup),
		PackageSize:         form.PackageSize,
		IsFragile:           form.IsFragile,
		IsExpressDelivery:   form.IsExpressDelivery,
		SpecialInstructions: form.SpecialInstructions,
		ZoneID:              form.ZoneID,
	}
}

func manualAddress(form AddressForm) entities.Address {
	return entities.Address{
		Type: "manual",
		ManualAddress: &entities.ManualAddress{
			Street:         form.Street,
			City:           form.City,
			State:          form.State,
			Country:        form.Country,
			PostalCode:     form.PostalCode,
			RecipientName:  form.RecipientName,
			RecipientPhone: form.RecipientPhone,
			RecipientEmail: form.RecipientEmail,
		},
	}
}
