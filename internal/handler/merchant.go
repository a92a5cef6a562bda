package handler

import (
	"log/slog"
	"net/http"

	"github.com/ANAVHEOBA/africgo-frontend/internal/api"
	"github.com/ANAVHEOBA/africgo-frontend/internal/entities"
	"github.com/ANAVHEOBA/africgo-frontend/internal/middleware"
	"github.com/ANAVHEOBA/africgo-frontend/internal/session"
	"github.com/ANAVHEOBA/africgo-frontend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"
)

// MerchantHandler serves the store-owner dashboard subtree. Every
// route requires a merchant session.
type MerchantHandler struct {
	logger    *slog.Logger
	validate  *validator.Validate
	backend   *api.Client
	sessions  *session.Manager
	loginPath string
}

func NewMerchantHandler(logger *slog.Logger, backend *api.Client, sessions *session.Manager, loginPath string) *MerchantHandler {
	return &MerchantHandler{
		logger:    logger.With(slog.String("handler", "merchant")),
		validate:  validator.New(),
		backend:   backend,
		sessions:  sessions,
		loginPath: loginPath,
	}
}

func (h *MerchantHandler) Init(r chi.Router) {
	r.Route("/dashboard", func(r chi.Router) {
		r.Use(middleware.RequireRole(h.logger, h.sessions, entities.RoleMerchant, h.loginPath))
		r.Get("/", h.Dashboard)
		r.Get("/store", h.MyStore)
		r.Get("/orders", h.ListOrders)
		r.Get("/orders/{id}", h.GetOrder)
		r.Post("/orders/{id}/accept", h.AcceptOrder)
		r.Post("/orders/{id}/ready", h.MarkOrderReady)
		r.Get("/products", h.ListProducts)
		r.Post("/products", h.CreateProduct)
		r.Get("/products/search", h.SearchProducts)
		r.Get("/products/{id}", h.GetProduct)
		r.Put("/products/{id}", h.UpdateProduct)
		r.Delete("/products/{id}", h.DeleteProduct)
	})
}

type dashboardView struct {
	Dashboard entities.StoreDashboard `json:"dashboard"`
	Revenue   entities.StoreRevenue   `json:"revenue"`
}

// Dashboard fetches the stats and the revenue report concurrently and
// answers with both.
func (h *MerchantHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var view dashboardView
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		view.Dashboard, err = h.backend.Dashboard(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		view.Revenue, err = h.backend.Revenue(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		writeBackendError(w, err)
		return
	}
	utils.WriteData(w, view, http.StatusOK)
}

func (h *MerchantHandler) MyStore(w http.ResponseWriter, r *http.Request) {
	store, err := h.backend.MyStore(r.Context())
	if err != nil {
		writeBackendError(w, err)
		return
	}
	utils.WriteData(w, store, http.StatusOK)
}

func (h *MerchantHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.backend.StoreOrders(r.Context())
	if err != nil {
		writeBackendError(w, err)
		return
	}
	utils.WriteData(w, orders, http.StatusOK)
}

func (h *MerchantHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.backend.StoreOrder(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeBackendError(w, err)
		return
	}
	utils.WriteData(w, order, http.StatusOK)
}

func (h *MerchantHandler) AcceptOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.backend.AcceptOrder(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeBackendError(w, err)
		return
	}
	utils.WriteData(w, order, http.StatusOK)
}

// MarkOrderReady transitions a pending order to ready-for-pickup. The
// backend rejects the call for any other current status.
func (h *MerchantHandler) MarkOrderReady(w http.ResponseWriter, r *http.Request) {
	order, err := h.backend.MarkOrderReady(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeBackendError(w, err)
		return
	}
	utils.WriteData(w, order, http.StatusOK)
}

func (h *MerchantHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.backend.MerchantProducts(r.Context(), productFilters(r.URL.Query()))
	if err != nil {
		writeBackendError(w, err)
		return
	}
	utils.WriteData(w, products, http.StatusOK)
}

func (h *MerchantHandler) SearchProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	text := query.Get("query")
	if text == "" {
		utils.WriteError(w, "search query is required", http.StatusBadRequest)
		return
	}

	products, err := h.backend.SearchProducts(r.Context(), text, productFilters(query))
	if err != nil {
		writeBackendError(w, err)
		return
	}
	utils.WriteData(w, products, http.StatusOK)
}

func (h *MerchantHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.backend.ProductByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeBackendError(w, err)
		return
	}
	utils.WriteData(w, product, http.StatusOK)
}

type createProductForm struct {
	Name              string                    `json:"name" validate:"required"`
	Description       string                    `json:"description" validate:"required"`
	Price             float64                   `json:"price" validate:"required,gt=0"`
	Category          string                    `json:"category" validate:"required"`
	Images            []string                  `json:"images"`
	Stock             int                       `json:"stock" validate:"gte=0"`
	Specifications    map[string]string         `json:"specifications,omitempty"`
	Variants          []entities.ProductVariant `json:"variants,omitempty"`
	IsPublished       bool                      `json:"isPublished"`
	GuestOrderEnabled bool                      `json:"guestOrderEnabled"`
	MinOrderQuantity  int                       `json:"minOrderQuantity" validate:"gte=0"`
	MaxOrderQuantity  int                       `json:"maxOrderQuantity" validate:"gte=0"`
	ShippingInfo      *entities.ShippingInfo    `json:"shippingInfo,omitempty"`
}

func (h *MerchantHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var form createProductForm
	if err := utils.DecodeBody(r, &form); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(form); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	product, err := h.backend.CreateProduct(r.Context(), api.CreateProductRequest{
		Name:              form.Name,
		Description:       form.Description,
		Price:             form.Price,
		Category:          form.Category,
		Images:            form.Images,
		Stock:             form.Stock,
		Specifications:    form.Specifications,
		Variants:          form.Variants,
		IsPublished:       form.IsPublished,
		GuestOrderEnabled: form.GuestOrderEnabled,
		MinOrderQuantity:  form.MinOrderQuantity,
		MaxOrderQuantity:  form.MaxOrderQuantity,
		ShippingInfo:      form.ShippingInfo,
	})
	if err != nil {
		writeBackendError(w, err)
		return
	}
	utils.WriteData(w, product, http.StatusCreated)
}

func (h *MerchantHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	var body api.UpdateProductRequest
	if err := utils.DecodeBody(r, &body); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	product, err := h.backend.UpdateProduct(r.Context(), chi.URLParam(r, "id"), body)
	if err != nil {
		writeBackendError(w, err)
		return
	}
	utils.WriteData(w, product, http.StatusOK)
}

func (h *MerchantHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.backend.DeleteProduct(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeBackendError(w, err)
		return
	}
	utils.WriteData(w, nil, http.StatusOK)
}
