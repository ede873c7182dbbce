package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/xilang-pos/api/internal/catalog"
)

// CatalogHandler serves the read-only menu.
type CatalogHandler struct {
	catalog *catalog.Catalog
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(c *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: c}
}

// RegisterRoutes registers menu endpoints on the given Chi router.
func (h *CatalogHandler) RegisterRoutes(r chi.Router) {
	r.Get("/categories", h.ListCategories)
	r.Get("/products", h.ListProducts)
	r.Get("/products/{id}", h.GetProduct)
}

type categoryListResponse struct {
	Categories []catalog.Category `json:"categories"`
}

type productListResponse struct {
	Products []*catalog.Product `json:"products"`
}

// ListCategories handles GET /categories.
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, categoryListResponse{Categories: h.catalog.Categories()})
}

// ListProducts handles GET /products. Supports ?category= and
// ?recommended=true filters.
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	var products []*catalog.Product
	if c := r.URL.Query().Get("category"); c != "" {
		products = h.catalog.ProductsByCategory(c)
	} else {
		products = h.catalog.Products()
	}

	if s := r.URL.Query().Get("recommended"); s != "" {
		want, err := strconv.ParseBool(s)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid recommended flag"})
			return
		}
		filtered := products[:0:0]
		for _, p := range products {
			if p.Recommended == want {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	if products == nil {
		products = []*catalog.Product{}
	}
	writeJSON(w, http.StatusOK, productListResponse{Products: products})
}

// GetProduct handles GET /products/{id}.
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	p, ok := h.catalog.Product(chi.URLParam(r, "id"))
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "product not found"})
		return
	}
	writeJSON(w, http.StatusOK, p)
}
