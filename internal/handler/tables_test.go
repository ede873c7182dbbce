package handler_test

import (
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/xilang-pos/api/internal/enum"
	"github.com/xilang-pos/api/internal/handler"
	"github.com/xilang-pos/api/internal/table"
)

type tableNotifier struct {
	events []string
}

func (n *tableNotifier) Notify(event string, payload any) {
	n.events = append(n.events, event)
}

func setupTableRouter(t *testing.T) (*chi.Mux, *tableNotifier) {
	t.Helper()
	store := table.NewStore([]table.Table{
		{Number: "A01", Area: "Main Hall", Seats: 4},
		{Number: "B01", Area: "Terrace", Seats: 2},
	})
	n := &tableNotifier{}
	h := handler.NewTableHandler(store, n)
	r := chi.NewRouter()
	h.RegisterRoutes(r)
	return r, n
}

func TestTableList(t *testing.T) {
	router, _ := setupTableRouter(t)

	rr := doRequest(t, router, "GET", "/tables", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d; body: %s", rr.Code, rr.Body.String())
	}
	resp := decodeResponse(t, rr)
	if len(resp["tables"].([]interface{})) != 2 {
		t.Errorf("tables: %v", resp["tables"])
	}
	if len(resp["areas"].([]interface{})) != 2 {
		t.Errorf("areas: %v", resp["areas"])
	}
}

func TestTableList_AreaFilter(t *testing.T) {
	router, _ := setupTableRouter(t)

	rr := doRequest(t, router, "GET", "/tables?area=Terrace", nil)
	resp := decodeResponse(t, rr)
	tables := resp["tables"].([]interface{})
	if len(tables) != 1 {
		t.Fatalf("filtered tables: got %d, want 1", len(tables))
	}
	if tables[0].(map[string]interface{})["number"] != "B01" {
		t.Errorf("table: %v", tables[0])
	}
}

func TestTableGet(t *testing.T) {
	router, _ := setupTableRouter(t)

	rr := doRequest(t, router, "GET", "/tables/A01", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d; body: %s", rr.Code, rr.Body.String())
	}
	if decodeResponse(t, rr)["status"] != enum.TableStatusAvailable {
		t.Error("new table should be AVAILABLE")
	}

	rr = doRequest(t, router, "GET", "/tables/Z99", nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("unknown table: got %d, want %d", rr.Code, http.StatusNotFound)
	}
}

func TestTableUpdateStatus(t *testing.T) {
	router, n := setupTableRouter(t)

	rr := doRequest(t, router, "PATCH", "/tables/A01/status", map[string]string{
		"status": enum.TableStatusOccupied,
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d; body: %s", rr.Code, rr.Body.String())
	}
	if decodeResponse(t, rr)["status"] != enum.TableStatusOccupied {
		t.Error("status not updated")
	}
	if len(n.events) != 1 || n.events[0] != "table.updated" {
		t.Errorf("events: %v", n.events)
	}
}

func TestTableUpdateStatus_Invalid(t *testing.T) {
	router, n := setupTableRouter(t)

	rr := doRequest(t, router, "PATCH", "/tables/A01/status", map[string]string{
		"status": "BROKEN",
	})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusBadRequest)
	}
	if len(n.events) != 0 {
		t.Errorf("no event expected: %v", n.events)
	}
}
