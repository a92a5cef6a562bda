package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/ANAVHEOBA/africgo-frontend/internal/api"
	"github.com/ANAVHEOBA/africgo-frontend/internal/entities"
	"github.com/ANAVHEOBA/africgo-frontend/internal/middleware"
	"github.com/ANAVHEOBA/africgo-frontend/internal/orderflow"
	"github.com/ANAVHEOBA/africgo-frontend/internal/session"
	"github.com/ANAVHEOBA/africgo-frontend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// ConsumerHandler serves the shopper-facing surface: public store
// browsing and tracking, plus the session-gated account subtree.
type ConsumerHandler struct {
	logger    *slog.Logger
	validate  *validator.Validate
	backend   *api.Client
	sessions  *session.Manager
	loginPath string
}

func NewConsumerHandler(logger *slog.Logger, backend *api.Client, sessions *session.Manager, loginPath string) *ConsumerHandler {
	return &ConsumerHandler{
		logger:    logger.With(slog.String("handler", "consumer")),
		validate:  validator.New(),
		backend:   backend,
		sessions:  sessions,
		loginPath: loginPath,
	}
}

func (h *ConsumerHandler) Init(r chi.Router) {
	r.Get("/stores", h.ListStores)
	r.Get("/stores/{slug}", h.GetStore)
	r.Get("/stores/{slug}/products", h.ListStoreProducts)
	r.Get("/zones", h.ListZones)
	r.Get("/track/{trackingNumber}", h.TrackOrder)

	r.Route("/account", func(r chi.Router) {
		r.Use(middleware.RequireRole(h.logger, h.sessions, entities.RoleConsumer, h.loginPath))
		r.Get("/orders", h.ListOrders)
		r.Post("/orders", h.PlaceOrder)
		r.Post("/orders/preview", h.PreviewOrder)
		r.Get("/orders/{id}", h.GetOrder)
		r.Post("/orders/{id}/payment", h.ConfirmPayment)
		r.Get("/profile", h.GetProfile)
		r.Put("/profile", h.UpdateProfile)
	})
}

func (h *ConsumerHandler) ListStores(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filters := entities.StoreFilters{
		Page:      intParam(query, "page"),
		Limit:     intParam(query, "limit"),
		Category:  query.Get("category"),
		City:      query.Get("city"),
		State:     query.Get("state"),
		Country:   query.Get("country"),
		Search:    query.Get("search"),
		SortBy:    query.Get("sortBy"),
		SortOrder: query.Get("sortOrder"),
	}

	stores, err := h.backend.Stores(r.Context(), filters)
	if err != nil {
		writeBackendError(w, err)
		return
	}
	utils.WriteData(w, stores, http.StatusOK)
}

func (h *ConsumerHandler) GetStore(w http.ResponseWriter, r *http.Request) {
	store, err := h.backend.StoreBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		writeBackendError(w, err)
		return
	}
	utils.WriteData(w, store, http.StatusOK)
}

func (h *ConsumerHandler) ListStoreProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.backend.StoreProducts(r.Context(), chi.URLParam(r, "slug"), productFilters(r.URL.Query()))
	if err != nil {
		writeBackendError(w, err)
		return
	}
	utils.WriteData(w, products, http.StatusOK)
}

func (h *ConsumerHandler) ListZones(w http.ResponseWriter, r *http.Request) {
	zones, err := h.backend.DeliveryZones(r.Context())
	if err != nil {
		writeBackendError(w, err)
		return
	}
	utils.WriteData(w, zones, http.StatusOK)
}

func (h *ConsumerHandler) TrackOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.backend.TrackOrder(r.Context(), chi.URLParam(r, "trackingNumber"))
	if err != nil {
		writeBackendError(w, err)
		return
	}
	utils.WriteData(w, order, http.StatusOK)
}

// ListOrders shows the consumer's order history. An authentication
// failure clears the session and redirects to login instead of
// rendering a generic error.
func (h *ConsumerHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orders, err := h.backend.ConsumerOrders(ctx)
	if errors.Is(err, entities.ErrAuthRequired) {
		if clearErr := h.sessions.Clear(ctx); clearErr != nil {
			h.logger.ErrorContext(ctx, "failed to clear session", slog.Any("error", clearErr))
		}
		http.Redirect(w, r, h.loginPath, http.StatusSeeOther)
		return
	}
	if err != nil {
		writeBackendError(w, err)
		return
	}
	utils.WriteData(w, orders, http.StatusOK)
}

func (h *ConsumerHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.backend.ConsumerOrder(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeBackendError(w, err)
		return
	}
	utils.WriteData(w, order, http.StatusOK)
}

// PlaceOrder runs the submission flow for one form. When the form
// names no zone, the zone list is fetched and the first zone is
// pre-selected, matching the form's mount behavior.
func (h *ConsumerHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var form orderflow.Form
	if err := utils.DecodeBody(r, &form); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	flow := orderflow.New(h.logger, h.backend, nil)
	if form.ZoneID == "" {
		if err := flow.LoadZones(ctx); err != nil {
			writeBackendError(w, err)
			return
		}
	}

	order, err := flow.Submit(ctx, form)
	if err != nil {
		var ve validator.ValidationErrors
		switch {
		case errors.As(err, &ve):
			utils.WriteValidationError(w, err)
		case errors.Is(err, orderflow.ErrZoneRequired),
			errors.Is(err, orderflow.ErrRecipientRequired):
			utils.WriteError(w, err.Error(), http.StatusBadRequest)
		default:
			writeBackendError(w, err)
		}
		return
	}

	utils.WriteData(w, order, http.StatusCreated)
}

type previewForm struct {
	UnitPrice float64 `json:"unitPrice" validate:"gte=0"`
	Quantity  int     `json:"quantity" validate:"required,gte=1"`
	ZoneID    string  `json:"zoneId" validate:"required,len=24,hexadecimal"`
}

// PreviewOrder returns the informational price breakdown for a line
// item and a zone. The backend recomputes the real price at placement.
func (h *ConsumerHandler) PreviewOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var form previewForm
	if err := utils.DecodeBody(r, &form); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(form); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	zones, err := h.backend.DeliveryZones(ctx)
	if err != nil {
		writeBackendError(w, err)
		return
	}
	for _, zone := range zones {
		if zone.ID == form.ZoneID {
			utils.WriteData(w, orderflow.PricePreview(form.UnitPrice, form.Quantity, zone), http.StatusOK)
			return
		}
	}
	utils.WriteError(w, "unknown delivery zone", http.StatusBadRequest)
}

func (h *ConsumerHandler) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	var body api.ConfirmPaymentRequest
	if err := utils.DecodeBody(r, &body); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if body.Amount <= 0 {
		utils.WriteError(w, "payment amount not found or invalid", http.StatusBadRequest)
		return
	}

	order, err := h.backend.ConfirmPayment(r.Context(), chi.URLParam(r, "id"), body.Amount)
	if err != nil {
		writeBackendError(w, err)
		return
	}
	utils.WriteData(w, order, http.StatusOK)
}

func (h *ConsumerHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.backend.Profile(r.Context())
	if err != nil {
		writeBackendError(w, err)
		return
	}
	utils.WriteData(w, profile, http.StatusOK)
}

func (h *ConsumerHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var body api.UpdateProfileRequest
	if err := utils.DecodeBody(r, &body); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	profile, err := h.backend.UpdateProfile(r.Context(), body)
	if err != nil {
		writeBackendError(w, err)
		return
	}
	utils.WriteData(w, profile, http.StatusOK)
}

func intParam(query url.Values, key string) int {
	v, err := strconv.Atoi(query.Get(key))
	if err != nil {
		return 0
	}
	return v
}

func productFilters(query url.Values) entities.ProductFilters {
	return entities.ProductFilters{
		Page:     intParam(query, "page"),
		Limit:    intParam(query, "limit"),
		Category: query.Get("category"),
		Status:   entities.ProductStatus(query.Get("status")),
		Search:   query.Get("search"),
	}
}
