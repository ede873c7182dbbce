package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/xilang-pos/api/internal/cart"
	"github.com/xilang-pos/api/internal/catalog"
	"github.com/xilang-pos/api/internal/order"
	"github.com/xilang-pos/api/internal/service"
	"github.com/xilang-pos/api/internal/session"
)

// CheckoutSubmitter defines the checkout method the cart handler needs.
// Satisfied by *service.CheckoutService.
type CheckoutSubmitter interface {
	Submit(tableNumber string, customerCount int) (order.Order, error)
}

// CartHandler handles the per-table cart endpoints. Every mutation returns
// the full cart so the tablet can re-render without a follow-up fetch.
type CartHandler struct {
	catalog  *catalog.Catalog
	sessions *session.Manager
	checkout CheckoutSubmitter
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(c *catalog.Catalog, sessions *session.Manager, checkout CheckoutSubmitter) *CartHandler {
	return &CartHandler{catalog: c, sessions: sessions, checkout: checkout}
}

// RegisterRoutes registers cart endpoints on the given Chi router.
func (h *CartHandler) RegisterRoutes(r chi.Router) {
	r.Route("/tables/{number}/cart", func(r chi.Router) {
		r.Get("/", h.Get)
		r.Delete("/", h.Clear)
		r.Post("/items", h.AddItem)
		r.Delete("/items", h.RemoveItem)
		r.Put("/items", h.SetQuantity)
	})
	r.Post("/tables/{number}/checkout", h.Checkout)
}

// --- Request / Response types ---

type cartItemRequest struct {
	ProductID string         `json:"product_id"`
	Selection cart.Selection `json:"selection"`
	Quantity  int            `json:"quantity"`
}

type cartResponse struct {
	TableNumber string      `json:"table_number"`
	Lines       []cart.Line `json:"lines"`
	Totals      cart.Totals `json:"totals"`
}

type checkoutRequest struct {
	CustomerCount int `json:"customer_count"`
}

// --- Handlers ---

// Get handles GET /tables/{number}/cart.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	tableNumber := chi.URLParam(r, "number")
	var resp cartResponse
	h.sessions.With(tableNumber, func(c *cart.Cart) error {
		resp = cartResponse{TableNumber: tableNumber, Lines: c.Lines(), Totals: c.Totals()}
		return nil
	})
	writeJSON(w, http.StatusOK, resp)
}

// Clear handles DELETE /tables/{number}/cart.
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	h.sessions.Clear(chi.URLParam(r, "number"))
	w.WriteHeader(http.StatusNoContent)
}

// AddItem handles POST /tables/{number}/cart/items. Identical
// configurations merge into an existing line; the full cart comes back so
// the tablet can re-render.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	tableNumber := chi.URLParam(r, "number")

	var req cartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.ProductID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "product_id is required"})
		return
	}

	p, ok := h.catalog.Product(req.ProductID)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "product not found"})
		return
	}

	var resp cartResponse
	err := h.sessions.With(tableNumber, func(c *cart.Cart) error {
		if _, err := c.AddItem(p, req.Selection, req.Quantity); err != nil {
			return err
		}
		resp = cartResponse{TableNumber: tableNumber, Lines: c.Lines(), Totals: c.Totals()}
		return nil
	})
	if err != nil {
		if errors.Is(err, cart.ErrIncompleteSelection) || errors.Is(err, cart.ErrInvalidSelection) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

// RemoveItem handles DELETE /tables/{number}/cart/items. Removes one unit
// of the matching line.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	tableNumber := chi.URLParam(r, "number")

	var req cartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	var resp cartResponse
	var matched bool
	h.sessions.With(tableNumber, func(c *cart.Cart) error {
		matched = c.RemoveOne(req.ProductID, req.Selection)
		resp = cartResponse{TableNumber: tableNumber, Lines: c.Lines(), Totals: c.Totals()}
		return nil
	})
	if !matched {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "line not found"})
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// SetQuantity handles PUT /tables/{number}/cart/items. A quantity of zero
// removes the line.
func (h *CartHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	tableNumber := chi.URLParam(r, "number")

	var req cartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	var resp cartResponse
	var matched bool
	h.sessions.With(tableNumber, func(c *cart.Cart) error {
		matched = c.SetQuantity(req.ProductID, req.Selection, req.Quantity)
		resp = cartResponse{TableNumber: tableNumber, Lines: c.Lines(), Totals: c.Totals()}
		return nil
	})
	if !matched {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "line not found"})
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Checkout handles POST /tables/{number}/checkout, turning the cart into a
// pending order.
func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	tableNumber := chi.URLParam(r, "number")

	// An empty body means "use the defaults".
	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	o, err := h.checkout.Submit(tableNumber, req.CustomerCount)
	if err != nil {
		if errors.Is(err, service.ErrEmptyCart) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "cart is empty"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	writeJSON(w, http.StatusCreated, o)
}
