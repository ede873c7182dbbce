package router

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/xilang-pos/api/internal/auth"
	"github.com/xilang-pos/api/internal/catalog"
	"github.com/xilang-pos/api/internal/config"
	"github.com/xilang-pos/api/internal/enum"
	"github.com/xilang-pos/api/internal/handler"
	mw "github.com/xilang-pos/api/internal/middleware"
	"github.com/xilang-pos/api/internal/order"
	"github.com/xilang-pos/api/internal/service"
	"github.com/xilang-pos/api/internal/session"
	"github.com/xilang-pos/api/internal/settings"
	"github.com/xilang-pos/api/internal/table"
	"github.com/xilang-pos/api/internal/ws"
)

// Deps bundles the shared application state the routes operate on.
type Deps struct {
	Catalog  *catalog.Catalog
	Sessions *session.Manager
	Orders   *order.Store
	Tables   *table.Store
	Users    *auth.UserStore
	Settings *settings.Store
	Checkout *service.CheckoutService
	Hub      *ws.Hub
}

// New creates a Chi router with all application routes wired up.
// Applies authentication and role-based middleware as needed.
func New(cfg *config.Config, d Deps) chi.Router {
	r := chi.NewRouter()

	// Standard middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{
			"http://localhost:5173", // tablet app dev server
		},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300, // 5 minutes
	}))

	// Public routes
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok","version":"1.0.0"}`))
	})

	// Auth routes (public)
	authHandler := handler.NewAuthHandler(d.Users, cfg.JWTSecret)
	authHandler.RegisterRoutes(r)

	// WebSocket route (handles auth internally via query param)
	r.Get("/ws/orders", func(w http.ResponseWriter, r *http.Request) {
		ws.ServeWS(d.Hub, cfg.JWTSecret, w, r)
	})

	// Protected routes (require authentication)
	r.Group(func(r chi.Router) {
		r.Use(mw.Authenticate(cfg.JWTSecret))

		// Menu
		catalogHandler := handler.NewCatalogHandler(d.Catalog)
		catalogHandler.RegisterRoutes(r)

		// Floor plan
		tableHandler := handler.NewTableHandler(d.Tables, d.Hub)
		tableHandler.RegisterRoutes(r)

		// Carts and checkout
		cartHandler := handler.NewCartHandler(d.Catalog, d.Sessions, d.Checkout)
		cartHandler.RegisterRoutes(r)

		// Orders and payments
		orderHandler := handler.NewOrderHandler(d.Orders, d.Checkout)
		orderHandler.RegisterRoutes(r)

		// Manager-only routes
		r.Group(func(r chi.Router) {
			r.Use(mw.RequireRole(enum.UserRoleManager))

			reportHandler := handler.NewReportHandler(d.Orders)
			reportHandler.RegisterRoutes(r)

			settingsHandler := handler.NewSettingsHandler(d.Settings, d.Sessions)
			settingsHandler.RegisterRoutes(r)
		})
	})

	log.Println("Router initialized with all handlers")
	return r
}
