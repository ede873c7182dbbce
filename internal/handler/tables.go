package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/xilang-pos/api/internal/service"
	"github.com/xilang-pos/api/internal/table"
)

// TableStore defines the floor board methods needed by table handlers.
// Satisfied by *table.Store; narrow interface for testability.
type TableStore interface {
	List(area string) []table.Table
	Areas() []string
	Get(number string) (table.Table, error)
	SetStatus(number, status string) (table.Table, error)
}

// TableHandler handles floor plan endpoints.
type TableHandler struct {
	store    TableStore
	notifier service.Notifier
}

// NewTableHandler creates a new TableHandler. The notifier may be nil.
func NewTableHandler(store TableStore, notifier service.Notifier) *TableHandler {
	return &TableHandler{store: store, notifier: notifier}
}

// RegisterRoutes registers table endpoints on the given Chi router.
func (h *TableHandler) RegisterRoutes(r chi.Router) {
	r.Get("/tables", h.List)
	r.Get("/tables/{number}", h.Get)
	r.Patch("/tables/{number}/status", h.UpdateStatus)
}

type tableListResponse struct {
	Areas  []string      `json:"areas"`
	Tables []table.Table `json:"tables"`
}

type updateTableStatusRequest struct {
	Status string `json:"status"`
}

// List handles GET /tables. Supports ?area= filtering.
func (h *TableHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, tableListResponse{
		Areas:  h.store.Areas(),
		Tables: h.store.List(r.URL.Query().Get("area")),
	})
}

// Get handles GET /tables/{number}.
func (h *TableHandler) Get(w http.ResponseWriter, r *http.Request) {
	t, err := h.store.Get(chi.URLParam(r, "number"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "table not found"})
		return
	}
	writeJSON(w, http.StatusOK, t)
}

// UpdateStatus handles PATCH /tables/{number}/status, used when a waiter
// seats guests or frees a table by hand.
func (h *TableHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req updateTableStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.Status == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "status is required"})
		return
	}

	t, err := h.store.SetStatus(chi.URLParam(r, "number"), req.Status)
	if err != nil {
		if errors.Is(err, table.ErrInvalidStatus) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid status"})
			return
		}
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "table not found"})
		return
	}

	if h.notifier != nil {
		h.notifier.Notify(service.EventTableUpdated, t)
	}
	writeJSON(w, http.StatusOK, t)
}
