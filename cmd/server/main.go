package main

import (
	"log"
	"net/http"

	"github.com/xilang-pos/api/internal/auth"
	"github.com/xilang-pos/api/internal/catalog"
	"github.com/xilang-pos/api/internal/config"
	"github.com/xilang-pos/api/internal/order"
	"github.com/xilang-pos/api/internal/router"
	"github.com/xilang-pos/api/internal/service"
	"github.com/xilang-pos/api/internal/session"
	"github.com/xilang-pos/api/internal/settings"
	"github.com/xilang-pos/api/internal/table"
	"github.com/xilang-pos/api/internal/ws"
)

func main() {
	cfg := config.Load()

	menu := catalog.Seed()
	tables := table.NewStore(table.Seed())
	orders := order.NewStore()
	users := auth.SeedUsers()
	st := settings.NewStore(settings.Settings{
		RestaurantName:       "Xi Lang",
		ServiceChargeRate:    cfg.ServiceChargeRate,
		DefaultCustomerCount: 2,
	})
	sessions := session.NewManager(cfg.ServiceChargeRate)

	hub := ws.NewHub()
	go hub.Run()

	checkout := service.NewCheckoutService(sessions, orders, tables, st, service.LogPrinter{}, hub)

	r := router.New(cfg, router.Deps{
		Catalog:  menu,
		Sessions: sessions,
		Orders:   orders,
		Tables:   tables,
		Users:    users,
		Settings: st,
		Checkout: checkout,
		Hub:      hub,
	})

	log.Printf("Server starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
