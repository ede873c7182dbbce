package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/xilang-pos/api/internal/order"
	"github.com/xilang-pos/api/internal/service"
)

// OrderStore defines the order book methods needed by order read handlers.
// Satisfied by *order.Store; narrow interface for testability.
type OrderStore interface {
	Get(id uuid.UUID) (order.Order, error)
	List(f order.Filter) []order.Order
}

// OrderServicer defines the lifecycle methods needed by order handlers.
// Satisfied by *service.CheckoutService.
type OrderServicer interface {
	Pay(req service.PayRequest) (order.Order, error)
	Cancel(orderID uuid.UUID) (order.Order, error)
}

// OrderHandler handles order endpoints.
type OrderHandler struct {
	store OrderStore
	svc   OrderServicer
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(store OrderStore, svc OrderServicer) *OrderHandler {
	return &OrderHandler{store: store, svc: svc}
}

// RegisterRoutes registers order endpoints on the given Chi router.
func (h *OrderHandler) RegisterRoutes(r chi.Router) {
	r.Route("/orders", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/{id}", h.Get)
		r.Delete("/{id}", h.Cancel)
		r.Post("/{id}/payments", h.Pay)
	})
}

// --- Request / Response types ---

type orderListResponse struct {
	Orders []order.Order `json:"orders"`
	Limit  int           `json:"limit"`
	Offset int           `json:"offset"`
}

type payRequest struct {
	Method         string `json:"method"`
	AmountReceived string `json:"amount_received"`
}

// --- Handlers ---

// List handles GET /orders with ?status=, ?table=, ?start_date=, ?end_date=
// and pagination.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	f := order.Filter{
		Status:      r.URL.Query().Get("status"),
		TableNumber: r.URL.Query().Get("table"),
	}

	if s := r.URL.Query().Get("start_date"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid start_date format, use YYYY-MM-DD"})
			return
		}
		f.From = t
	}
	if s := r.URL.Query().Get("end_date"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid end_date format, use YYYY-MM-DD"})
			return
		}
		// end_date is inclusive
		f.To = t.AddDate(0, 0, 1)
	}

	f.Limit = 20
	if s := r.URL.Query().Get("limit"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 {
			f.Limit = v
		}
	}
	if f.Limit > 100 {
		f.Limit = 100
	}
	if s := r.URL.Query().Get("offset"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v >= 0 {
			f.Offset = v
		}
	}

	writeJSON(w, http.StatusOK, orderListResponse{
		Orders: h.store.List(f),
		Limit:  f.Limit,
		Offset: f.Offset,
	})
}

// Get handles GET /orders/{id}.
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid order ID"})
		return
	}

	o, err := h.store.Get(id)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "order not found"})
		return
	}
	writeJSON(w, http.StatusOK, o)
}

// Cancel handles DELETE /orders/{id}.
func (h *OrderHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid order ID"})
		return
	}

	cancelled, err := h.svc.Cancel(id)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrNotFound):
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "order not found"})
		case errors.Is(err, order.ErrOrderCompleted):
			writeJSON(w, http.StatusConflict, map[string]string{"error": "cannot cancel a completed order"})
		case errors.Is(err, order.ErrOrderCancelled):
			writeJSON(w, http.StatusConflict, map[string]string{"error": "order is already cancelled"})
		default:
			log.Printf("ERROR: cancel order: %v", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		}
		return
	}
	writeJSON(w, http.StatusOK, cancelled)
}

// Pay handles POST /orders/{id}/payments.
func (h *OrderHandler) Pay(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid order ID"})
		return
	}

	var req payRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.Method == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "method is required"})
		return
	}

	received := decimal.Zero
	if req.AmountReceived != "" {
		received, err = decimal.NewFromString(req.AmountReceived)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid amount_received"})
			return
		}
	}

	settled, err := h.svc.Pay(service.PayRequest{
		OrderID:        id,
		Method:         req.Method,
		AmountReceived: received,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidPaymentMethod):
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payment method"})
		case errors.Is(err, service.ErrInsufficientCash):
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "amount received is less than the total"})
		case errors.Is(err, order.ErrNotFound):
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "order not found"})
		case errors.Is(err, order.ErrAlreadyPaid):
			writeJSON(w, http.StatusConflict, map[string]string{"error": "order is already paid"})
		case errors.Is(err, order.ErrOrderCancelled):
			writeJSON(w, http.StatusConflict, map[string]string{"error": "order is cancelled"})
		default:
			log.Printf("ERROR: pay order: %v", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		}
		return
	}
	writeJSON(w, http.StatusOK, settled)
}
