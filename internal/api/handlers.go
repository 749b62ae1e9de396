package api

import (
	"encoding/json"
	"net/http"

	"github.com/ignite/certificate-service/internal/config"
	"github.com/ignite/certificate-service/internal/issuer"
	"github.com/ignite/certificate-service/internal/validation"
)

// Handlers contains all HTTP handlers
type Handlers struct {
	validator validation.FormatValidator
	issuer    *issuer.Service
	config    *config.Config
}

// NewHandlers creates a new Handlers instance
func NewHandlers(validator validation.FormatValidator, issuerService *issuer.Service) *Handlers {
	return &Handlers{
		validator: validator,
		issuer:    issuerService,
	}
}

// SetConfig sets the application config
func (h *Handlers) SetConfig(cfg *config.Config) {
	h.config = cfg
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError writes a RequestError with its mapped status code.
func respondError(w http.ResponseWriter, apiErr RequestError) {
	respondJSON(w, apiErr.StatusCode(), apiErr)
}
