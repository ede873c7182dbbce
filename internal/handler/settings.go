package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/xilang-pos/api/internal/session"
	"github.com/xilang-pos/api/internal/settings"
)

// SettingsHandler handles the restaurant configuration endpoints.
type SettingsHandler struct {
	store    *settings.Store
	sessions *session.Manager
}

// NewSettingsHandler creates a new SettingsHandler. The session manager may
// be nil; when present, a rate change applies to carts opened afterwards.
func NewSettingsHandler(store *settings.Store, sessions *session.Manager) *SettingsHandler {
	return &SettingsHandler{store: store, sessions: sessions}
}

// RegisterRoutes registers settings endpoints on the given Chi router.
func (h *SettingsHandler) RegisterRoutes(r chi.Router) {
	r.Get("/settings", h.Get)
	r.Put("/settings", h.Update)
}

type settingsRequest struct {
	RestaurantName       string `json:"restaurant_name"`
	ServiceChargeRate    string `json:"service_charge_rate"`
	DefaultCustomerCount int    `json:"default_customer_count"`
}

// Get handles GET /settings.
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Get())
}

// Update handles PUT /settings.
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req settingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.RestaurantName == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "restaurant_name is required"})
		return
	}

	rate, err := decimal.NewFromString(req.ServiceChargeRate)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid service_charge_rate"})
		return
	}

	updated, err := h.store.Update(settings.Settings{
		RestaurantName:       req.RestaurantName,
		ServiceChargeRate:    rate,
		DefaultCustomerCount: req.DefaultCustomerCount,
	})
	if err != nil {
		if errors.Is(err, settings.ErrInvalidRate) || errors.Is(err, settings.ErrInvalidCustomerCount) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	if h.sessions != nil {
		h.sessions.SetRate(updated.ServiceChargeRate)
	}
	writeJSON(w, http.StatusOK, updated)
}
