package handler

import (
	"errors"
	"net/http"

	"github.com/ANAVHEOBA/africgo-frontend/internal/api"
	"github.com/ANAVHEOBA/africgo-frontend/internal/entities"
	"github.com/ANAVHEOBA/africgo-frontend/pkg/utils"
)

// writeBackendError maps a failed backend call onto a gateway
// response, preserving the backend's message and status where they
// exist.
func writeBackendError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entities.ErrAuthRequired):
		utils.WriteError(w, "authentication required", http.StatusUnauthorized)
	case errors.Is(err, entities.ErrOrderNotFound):
		utils.WriteError(w, "order not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrStoreNotFound):
		utils.WriteError(w, "store not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrProductNotFound):
		utils.WriteError(w, "product not found", http.StatusNotFound)
	default:
		if status := api.StatusOf(err); status >= http.StatusBadRequest {
			utils.WriteError(w, err.Error(), status)
			return
		}
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}
