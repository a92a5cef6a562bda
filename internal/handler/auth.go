package handler

import (
	"log/slog"
	"net/http"

	"github.com/ANAVHEOBA/africgo-frontend/internal/api"
	"github.com/ANAVHEOBA/africgo-frontend/internal/session"
	"github.com/ANAVHEOBA/africgo-frontend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type loginForm struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type registerForm struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Phone     string `json:"phone" validate:"required"`
}

type AuthHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	backend  *api.Client
	sessions *session.Manager
}

func NewAuthHandler(logger *slog.Logger, backend *api.Client, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{
		logger:   logger.With(slog.String("handler", "auth")),
		validate: validator.New(),
		backend:  backend,
		sessions: sessions,
	}
}

func (h *AuthHandler) Init(r chi.Router) {
	r.Post("/login", h.Login)
	r.Post("/register", h.Register)
	r.Post("/logout", h.Logout)
}

// Login exchanges credentials for a backend token and stores it in the
// session with its role tag.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var form loginForm
	if err := utils.DecodeBody(r, &form); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(form); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	res, err := h.backend.Login(ctx, api.LoginRequest{Email: form.Email, Password: form.Password})
	if err != nil {
		writeBackendError(w, err)
		return
	}

	if err := h.sessions.SetToken(ctx, res.Token, res.UserType); err != nil {
		h.logger.ErrorContext(ctx, "failed to store session", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteData(w, map[string]any{"userType": res.UserType}, http.StatusOK)
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var form registerForm
	if err := utils.DecodeBody(r, &form); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(form); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	err := h.backend.Register(ctx, api.RegisterRequest{
		Email:     form.Email,
		Password:  form.Password,
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Phone:     form.Phone,
	})
	if err != nil {
		writeBackendError(w, err)
		return
	}

	utils.WriteData(w, nil, http.StatusCreated)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := h.sessions.Clear(ctx); err != nil {
		h.logger.ErrorContext(ctx, "failed to clear session", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}
	utils.WriteData(w, nil, http.StatusOK)
}
