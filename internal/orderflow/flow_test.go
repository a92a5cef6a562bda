package orderflow_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/ANAVHEOBA/africgo-frontend/internal/api"
	"github.com/ANAVHEOBA/africgo-frontend/internal/entities"
	"github.com/ANAVHEOBA/africgo-frontend/internal/orderflow"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	storeID   = "507f1f77bcf86cd799439011"
	productID = "507f1f77bcf86cd799439012"
	zoneID    = "507f1f77bcf86cd799439013"
)

type fakeBackend struct {
	zones      []entities.DeliveryZone
	zonesErr   error
	order      entities.Order
	placeErr   error
	placeCalls int
	lastReq    api.CreateOrderRequest
}

func (b *fakeBackend) DeliveryZones(ctx context.Context) ([]entities.DeliveryZone, error) {
	return b.zones, b.zonesErr
}

func (b *fakeBackend) PlaceOrder(ctx context.Context, req api.CreateOrderRequest) (entities.Order, error) {
	b.placeCalls++
	b.lastReq = req
	return b.order, b.placeErr
}

func newFlow(backend *fakeBackend, onSuccess func(string)) *orderflow.Flow {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return orderflow.New(logger, backend, onSuccess)
}

func validForm() orderflow.Form {
	address := orderflow.AddressForm{
		Street:     "12 Marina Rd",
		City:       "Lagos",
		State:      "Lagos",
		Country:    "NG",
		PostalCode: "100001",
	}
	delivery := address
	delivery.RecipientName = "Ada"
	delivery.RecipientPhone = "+2348000000000"

	return orderflow.Form{
		StoreID:     storeID,
		Items:       []orderflow.ItemForm{{ProductID: productID, Quantity: 2}},
		Delivery:    delivery,
		Pickup:      address,
		PackageSize: entities.PackageSmall,
		ZoneID:      zoneID,
	}
}

func TestFlow_Submit(t *testing.T) {
	called := ""
	backend := &fakeBackend{order: entities.Order{ID: "64a000000000000000000001"}}
	flow := newFlow(backend, func(orderID string) { called = orderID })

	order, err := flow.Submit(context.Background(), validForm())
	require.NoError(t, err)

	assert.Equal(t, "64a000000000000000000001", order.ID)
	assert.Equal(t, "64a000000000000000000001", called)
	assert.Equal(t, orderflow.StateSucceeded, flow.State())

	req := backend.lastReq
	assert.Equal(t, storeID, req.StoreID)
	assert.Equal(t, zoneID, req.ZoneID)
	assert.Equal(t, "manual", req.DeliveryAddress.Type)
	require.NotNil(t, req.DeliveryAddress.ManualAddress)
	assert.Equal(t, "Ada", req.DeliveryAddress.ManualAddress.RecipientName)
}

func TestFlow_RejectsBadStoreIDBeforeNetwork(t *testing.T) {
	tests := []struct {
		name    string
		storeID string
	}{
		{name: "empty", storeID: ""},
		{name: "too short", storeID: "507f1f77"},
		{name: "not hex", storeID: "507f1f77bcf86cd79943901z"},
		{name: "too long", storeID: "507f1f77bcf86cd79943901122"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			backend := &fakeBackend{}
			flow := newFlow(backend, nil)

			form := validForm()
			form.StoreID = tc.storeID

			_, err := flow.Submit(context.Background(), form)
			require.Error(t, err)

			var vErrs validator.ValidationErrors
			assert.ErrorAs(t, err, &vErrs)
			assert.Zero(t, backend.placeCalls, "invalid forms must not reach the backend")
			assert.Equal(t, orderflow.StateFailed, flow.State())
		})
	}
}

func TestFlow_RequiresZone(t *testing.T) {
	backend := &fakeBackend{}
	flow := newFlow(backend, nil)

	form := validForm()
	form.ZoneID = ""

	_, err := flow.Submit(context.Background(), form)
	assert.ErrorIs(t, err, orderflow.ErrZoneRequired)
	assert.Zero(t, backend.placeCalls)
}

func TestFlow_RequiresDeliveryRecipient(t *testing.T) {
	backend := &fakeBackend{}
	flow := newFlow(backend, nil)

	form := validForm()
	form.Delivery.RecipientPhone = ""

	_, err := flow.Submit(context.Background(), form)
	assert.ErrorIs(t, err, orderflow.ErrRecipientRequired)
	assert.Zero(t, backend.placeCalls)
}

func TestFlow_LoadZonesPreselectsFirst(t *testing.T) {
	backend := &fakeBackend{
		zones: []entities.DeliveryZone{
			{ID: zoneID, Name: "Mainland", DeliveryPrice: 1500},
			{ID: "507f1f77bcf86cd799439014", Name: "Island", DeliveryPrice: 2500},
		},
		order: entities.Order{ID: "64a000000000000000000002"},
	}
	flow := newFlow(backend, nil)

	require.NoError(t, flow.LoadZones(context.Background()))

	zone, ok := flow.SelectedZone()
	require.True(t, ok)
	assert.Equal(t, "Mainland", zone.Name)

	// An empty ZoneID falls back to the selection.
	form := validForm()
	form.ZoneID = ""
	_, err := flow.Submit(context.Background(), form)
	require.NoError(t, err)
	assert.Equal(t, zoneID, backend.lastReq.ZoneID)
}

func TestFlow_SelectZone(t *testing.T) {
	backend := &fakeBackend{
		zones: []entities.DeliveryZone{
			{ID: zoneID, Name: "Mainland"},
			{ID: "507f1f77bcf86cd799439014", Name: "Island"},
		},
	}
	flow := newFlow(backend, nil)
	require.NoError(t, flow.LoadZones(context.Background()))

	require.NoError(t, flow.SelectZone("507f1f77bcf86cd799439014"))
	zone, ok := flow.SelectedZone()
	require.True(t, ok)
	assert.Equal(t, "Island", zone.Name)

	assert.ErrorIs(t, flow.SelectZone("missing"), orderflow.ErrUnknownZone)
}

func TestFlow_LoadZonesError(t *testing.T) {
	backend := &fakeBackend{zonesErr: errors.New("backend down")}
	flow := newFlow(backend, nil)

	err := flow.LoadZones(context.Background())
	require.Error(t, err)

	_, ok := flow.SelectedZone()
	assert.False(t, ok)
}

func TestFlow_BackendFailure(t *testing.T) {
	called := false
	backend := &fakeBackend{placeErr: errors.New("boom")}
	flow := newFlow(backend, func(string) { called = true })

	_, err := flow.Submit(context.Background(), validForm())
	require.Error(t, err)
	assert.Equal(t, orderflow.StateFailed, flow.State())
	assert.False(t, called, "onSuccess must not fire on failure")

	// A failed flow can be resubmitted.
	backend.placeErr = nil
	backend.order = entities.Order{ID: "64a000000000000000000003"}
	_, err = flow.Submit(context.Background(), validForm())
	require.NoError(t, err)
	assert.Equal(t, orderflow.StateSucceeded, flow.State())
}

func TestPricePreview(t *testing.T) {
	zone := entities.DeliveryZone{ID: zoneID, DeliveryPrice: 1500}

	preview := orderflow.PricePreview(1000, 2, zone)
	assert.Equal(t, 2000.0, preview.Subtotal)
	assert.Equal(t, 1500.0, preview.DeliveryPrice)
	assert.Equal(t, 3500.0, preview.Total)

	empty := orderflow.PricePreview(0, 0, entities.DeliveryZone{})
	assert.Zero(t, empty.Total)
}
