package handler_test

import (
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/xilang-pos/api/internal/cart"
	"github.com/xilang-pos/api/internal/handler"
	"github.com/xilang-pos/api/internal/order"
	"github.com/xilang-pos/api/internal/service"
	"github.com/xilang-pos/api/internal/session"
	"github.com/xilang-pos/api/internal/settings"
	"github.com/xilang-pos/api/internal/table"
)

type orderEnv struct {
	router *chi.Mux
	book   *order.Store
	floor  *table.Store
	svc    *service.CheckoutService
}

func setupOrderRouter(t *testing.T) *orderEnv {
	t.Helper()
	rate := decimal.RequireFromString("0.15")
	env := &orderEnv{
		book:  order.NewStore(),
		floor: table.NewStore([]table.Table{{Number: "A01", Area: "Main Hall", Seats: 4}}),
	}
	st := settings.NewStore(settings.Settings{
		RestaurantName:       "Xi Lang",
		ServiceChargeRate:    rate,
		DefaultCustomerCount: 2,
	})
	env.svc = service.NewCheckoutService(session.NewManager(rate), env.book, env.floor, st, nil, nil)
	h := handler.NewOrderHandler(env.book, env.svc)
	env.router = chi.NewRouter()
	h.RegisterRoutes(env.router)
	return env
}

func (env *orderEnv) createOrder(total string) order.Order {
	return env.book.Create(cart.Snapshot{
		BillNumber:    "XL2505141507042",
		TableNumber:   "A01",
		CustomerCount: 2,
		Lines:         []cart.Line{{ProductID: "braised-pork", Name: "Braised Pork Belly", UnitPrice: decimal.RequireFromString(total), Quantity: 1}},
		TotalQuantity: 1,
		Subtotal:      decimal.RequireFromString(total),
		ServiceCharge: decimal.Zero,
		Total:         decimal.RequireFromString(total),
	})
}

// --- List / Get ---

func TestOrderList(t *testing.T) {
	env := setupOrderRouter(t)
	env.createOrder("100")
	env.createOrder("200")

	rr := doRequest(t, env.router, "GET", "/orders", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d; body: %s", rr.Code, rr.Body.String())
	}
	resp := decodeResponse(t, rr)
	if len(resp["orders"].([]interface{})) != 2 {
		t.Errorf("orders: got %d, want 2", len(resp["orders"].([]interface{})))
	}
}

func TestOrderList_StatusFilter(t *testing.T) {
	env := setupOrderRouter(t)
	a := env.createOrder("100")
	env.createOrder("200")
	env.book.Cancel(a.ID)

	rr := doRequest(t, env.router, "GET", "/orders?status=CANCELLED", nil)
	resp := decodeResponse(t, rr)
	orders := resp["orders"].([]interface{})
	if len(orders) != 1 {
		t.Fatalf("filtered orders: got %d, want 1", len(orders))
	}
	if orders[0].(map[string]interface{})["status"] != "CANCELLED" {
		t.Errorf("status: %v", orders[0])
	}
}

func TestOrderList_BadDate(t *testing.T) {
	env := setupOrderRouter(t)

	rr := doRequest(t, env.router, "GET", "/orders?start_date=14-05-2025", nil)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusBadRequest)
	}
}

func TestOrderGet(t *testing.T) {
	env := setupOrderRouter(t)
	o := env.createOrder("100")

	rr := doRequest(t, env.router, "GET", "/orders/"+o.ID.String(), nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d; body: %s", rr.Code, rr.Body.String())
	}
	resp := decodeResponse(t, rr)
	if resp["bill_number"] != "XL2505141507042" {
		t.Errorf("bill number: %v", resp["bill_number"])
	}
}

func TestOrderGet_NotFound(t *testing.T) {
	env := setupOrderRouter(t)

	rr := doRequest(t, env.router, "GET", "/orders/"+uuid.NewString(), nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusNotFound)
	}
}

func TestOrderGet_InvalidID(t *testing.T) {
	env := setupOrderRouter(t)

	rr := doRequest(t, env.router, "GET", "/orders/not-a-uuid", nil)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusBadRequest)
	}
}

// --- Cancel ---

func TestOrderCancel(t *testing.T) {
	env := setupOrderRouter(t)
	o := env.createOrder("100")

	rr := doRequest(t, env.router, "DELETE", "/orders/"+o.ID.String(), nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d; body: %s", rr.Code, rr.Body.String())
	}
	resp := decodeResponse(t, rr)
	if resp["status"] != "CANCELLED" {
		t.Errorf("status: %v", resp["status"])
	}

	// Cancelling again is a conflict.
	rr = doRequest(t, env.router, "DELETE", "/orders/"+o.ID.String(), nil)
	if rr.Code != http.StatusConflict {
		t.Fatalf("double cancel: got %d, want %d", rr.Code, http.StatusConflict)
	}
}

func TestOrderCancel_CompletedConflict(t *testing.T) {
	env := setupOrderRouter(t)
	o := env.createOrder("100")
	doRequest(t, env.router, "POST", "/orders/"+o.ID.String()+"/payments", map[string]string{
		"method": "CARD",
	})

	rr := doRequest(t, env.router, "DELETE", "/orders/"+o.ID.String(), nil)
	if rr.Code != http.StatusConflict {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusConflict)
	}
}

// --- Payments ---

func TestOrderPay_Cash(t *testing.T) {
	env := setupOrderRouter(t)
	o := env.createOrder("100")

	rr := doRequest(t, env.router, "POST", "/orders/"+o.ID.String()+"/payments", map[string]string{
		"method":          "CASH",
		"amount_received": "150",
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d; body: %s", rr.Code, rr.Body.String())
	}
	resp := decodeResponse(t, rr)
	if resp["status"] != "COMPLETED" {
		t.Errorf("status: %v", resp["status"])
	}
	payment := resp["payment"].(map[string]interface{})
	if payment["change"] != "50" {
		t.Errorf("change: got %v, want 50", payment["change"])
	}
}

func TestOrderPay_CashShort(t *testing.T) {
	env := setupOrderRouter(t)
	o := env.createOrder("100")

	rr := doRequest(t, env.router, "POST", "/orders/"+o.ID.String()+"/payments", map[string]string{
		"method":          "CASH",
		"amount_received": "80",
	})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusBadRequest)
	}
}

func TestOrderPay_InvalidMethod(t *testing.T) {
	env := setupOrderRouter(t)
	o := env.createOrder("100")

	rr := doRequest(t, env.router, "POST", "/orders/"+o.ID.String()+"/payments", map[string]string{
		"method": "CRYPTO",
	})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusBadRequest)
	}
}

func TestOrderPay_AlreadyPaidConflict(t *testing.T) {
	env := setupOrderRouter(t)
	o := env.createOrder("100")
	body := map[string]string{"method": "WECHAT"}

	if rr := doRequest(t, env.router, "POST", "/orders/"+o.ID.String()+"/payments", body); rr.Code != http.StatusOK {
		t.Fatalf("first payment: got %d; body: %s", rr.Code, rr.Body.String())
	}
	rr := doRequest(t, env.router, "POST", "/orders/"+o.ID.String()+"/payments", body)
	if rr.Code != http.StatusConflict {
		t.Fatalf("second payment: got %d, want %d", rr.Code, http.StatusConflict)
	}
}

func TestOrderPay_NotFound(t *testing.T) {
	env := setupOrderRouter(t)

	rr := doRequest(t, env.router, "POST", "/orders/"+uuid.NewString()+"/payments", map[string]string{
		"method": "CARD",
	})
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusNotFound)
	}
}
