package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ANAVHEOBA/africgo-frontend/internal/api"
	"github.com/ANAVHEOBA/africgo-frontend/internal/entities"
	"github.com/ANAVHEOBA/africgo-frontend/internal/handler"
	"github.com/ANAVHEOBA/africgo-frontend/internal/session"
	"github.com/ANAVHEOBA/africgo-frontend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const loginPath = "/login"

type testEnv struct {
	router   chi.Router
	sessions *session.Manager
}

func newEnv(t *testing.T, backend http.Handler) *testEnv {
	t.Helper()

	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	sessions := session.NewManager(logger, session.NewMemoryStorage(), session.DefaultTTL)
	client := api.New(logger, sessions, api.Config{
		BaseURL:   srv.URL,
		Timeout:   time.Second,
		ReadRetry: utils.RetryConfig{MaxAttempts: 1, InitialDelay: time.Millisecond},
	})

	router := chi.NewRouter()
	handler.NewConsumerHandler(logger, client, sessions, loginPath).Init(router)
	handler.NewMerchantHandler(logger, client, sessions, loginPath).Init(router)
	handler.NewAuthHandler(logger, client, sessions).Init(router)

	return &testEnv{router: router, sessions: sessions}
}

func (e *testEnv) login(t *testing.T, role entities.Role) {
	t.Helper()
	require.NoError(t, e.sessions.SetToken(context.Background(), "tok", role))
}

func (e *testEnv) do(method, path string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func backendOK(t *testing.T, data any) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"success": true, "data": data})
	})
}

func backendStatus(code int, message string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		json.NewEncoder(w).Encode(map[string]any{"success": false, "message": message})
	})
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	var envelope struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.True(t, envelope.Success)
	if out != nil {
		require.NoError(t, json.Unmarshal(envelope.Data, out))
	}
}

func TestConsumer_ListOrders(t *testing.T) {
	env := newEnv(t, backendOK(t, []map[string]any{
		{"_id": "64a000000000000000000001", "status": "PENDING", "trackingNumber": "TRK-1"},
	}))
	env.login(t, entities.RoleConsumer)

	rec := env.do(http.MethodGet, "/account/orders", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var orders []entities.Order
	decodeData(t, rec, &orders)
	require.Len(t, orders, 1)
	assert.Equal(t, entities.OrderPending, orders[0].Status)
}

func TestConsumer_ListOrdersAuthFailureClearsSessionAndRedirects(t *testing.T) {
	env := newEnv(t, backendStatus(http.StatusUnauthorized, "token rejected"))
	env.login(t, entities.RoleConsumer)

	rec := env.do(http.MethodGet, "/account/orders", nil)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, loginPath, rec.Header().Get("Location"))

	_, err := env.sessions.Token(context.Background())
	assert.ErrorIs(t, err, entities.ErrAuthRequired, "session must be cleared before the redirect")
}

func TestConsumer_GuardRedirectsWithoutSession(t *testing.T) {
	env := newEnv(t, backendOK(t, nil))

	rec := env.do(http.MethodGet, "/account/orders", nil)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, loginPath, rec.Header().Get("Location"))
}

func orderForm() map[string]any {
	address := map[string]any{
		"street": "12 Marina Rd", "city": "Lagos", "state": "Lagos",
		"country": "NG", "postalCode": "100001",
	}
	delivery := map[string]any{
		"street": "12 Marina Rd", "city": "Lagos", "state": "Lagos",
		"country": "NG", "postalCode": "100001",
		"recipientName": "Ada", "recipientPhone": "+2348000000000",
	}
	return map[string]any{
		"storeId":         "507f1f77bcf86cd799439011",
		"items":           []map[string]any{{"productId": "507f1f77bcf86cd799439012", "quantity": 2}},
		"deliveryAddress": delivery,
		"pickupAddress":   address,
		"packageSize":     "SMALL",
		"zoneId":          "507f1f77bcf86cd799439013",
	}
}

func TestConsumer_PlaceOrder(t *testing.T) {
	backend := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/orders/consumer/place-order", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data":    map[string]any{"_id": "64a000000000000000000001", "status": "PENDING"},
		})
	})

	env := newEnv(t, backend)
	env.login(t, entities.RoleConsumer)

	rec := env.do(http.MethodPost, "/account/orders", orderForm())
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var order entities.Order
	decodeData(t, rec, &order)
	assert.Equal(t, "64a000000000000000000001", order.ID)
}

func TestConsumer_PlaceOrderRejectsBadStoreID(t *testing.T) {
	var hits atomic.Int32
	backend := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	})

	env := newEnv(t, backend)
	env.login(t, entities.RoleConsumer)

	form := orderForm()
	form["storeId"] = "not-a-mongo-id"

	rec := env.do(http.MethodPost, "/account/orders", form)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, hits.Load(), "invalid forms must not reach the backend")
}

func TestConsumer_PreviewOrder(t *testing.T) {
	env := newEnv(t, backendOK(t, []map[string]any{
		{"_id": "507f1f77bcf86cd799439013", "name": "Mainland", "deliveryPrice": 1500},
	}))
	env.login(t, entities.RoleConsumer)

	rec := env.do(http.MethodPost, "/account/orders/preview", map[string]any{
		"unitPrice": 1000,
		"quantity":  2,
		"zoneId":    "507f1f77bcf86cd799439013",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var preview struct {
		Subtotal      float64 `json:"subtotal"`
		DeliveryPrice float64 `json:"deliveryPrice"`
		Total         float64 `json:"total"`
	}
	decodeData(t, rec, &preview)
	assert.Equal(t, 2000.0, preview.Subtotal)
	assert.Equal(t, 3500.0, preview.Total)
}

func TestConsumer_PreviewOrderUnknownZone(t *testing.T) {
	env := newEnv(t, backendOK(t, []map[string]any{}))
	env.login(t, entities.RoleConsumer)

	rec := env.do(http.MethodPost, "/account/orders/preview", map[string]any{
		"unitPrice": 1000,
		"quantity":  1,
		"zoneId":    "507f1f77bcf86cd799439013",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestConsumer_ConfirmPaymentRejectsBadAmount(t *testing.T) {
	var hits atomic.Int32
	env := newEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	env.login(t, entities.RoleConsumer)

	rec := env.do(http.MethodPost, "/account/orders/64a000000000000000000001/payment", map[string]any{"amount": 0})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, hits.Load())
}

func TestConsumer_PublicZones(t *testing.T) {
	env := newEnv(t, backendOK(t, []map[string]any{
		{"_id": "507f1f77bcf86cd799439013", "name": "Mainland", "deliveryPrice": 1500},
	}))

	// No session required for the public zone list.
	rec := env.do(http.MethodGet, "/zones", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var zones []entities.DeliveryZone
	decodeData(t, rec, &zones)
	require.Len(t, zones, 1)
	assert.Equal(t, 1500.0, zones[0].DeliveryPrice)
}

func TestAuth_LoginStoresSession(t *testing.T) {
	backend := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/users/login", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data":    map[string]any{"token": "Bearer fresh-token", "userType": "consumer"},
		})
	})

	env := newEnv(t, backend)

	rec := env.do(http.MethodPost, "/login", map[string]any{
		"email":    "ada@example.com",
		"password": "secret-pass",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	token, err := env.sessions.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "fresh-token", token)

	role, err := env.sessions.Role(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entities.RoleConsumer, role)
}

func TestAuth_LoginValidatesInput(t *testing.T) {
	var hits atomic.Int32
	env := newEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))

	rec := env.do(http.MethodPost, "/login", map[string]any{"email": "not-an-email", "password": "x"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, hits.Load())
}

func TestAuth_Logout(t *testing.T) {
	env := newEnv(t, backendOK(t, nil))
	env.login(t, entities.RoleConsumer)

	rec := env.do(http.MethodPost, "/logout", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	_, err := env.sessions.Token(context.Background())
	assert.ErrorIs(t, err, entities.ErrAuthRequired)
}
