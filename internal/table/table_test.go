package table

import (
	"errors"
	"testing"

	"github.com/xilang-pos/api/internal/enum"
)

func testStore() *Store {
	return NewStore([]Table{
		{Number: "A01", Area: "Main Hall", Seats: 4},
		{Number: "A02", Area: "Main Hall", Seats: 4},
		{Number: "B01", Area: "Terrace", Seats: 2},
	})
}

func TestStore_SeedDefaultsToAvailable(t *testing.T) {
	s := testStore()
	got, err := s.Get("A01")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Status != enum.TableStatusAvailable {
		t.Errorf("seeded status: got %s, want AVAILABLE", got.Status)
	}
}

func TestStore_ListByArea(t *testing.T) {
	s := testStore()

	if got := len(s.List("")); got != 3 {
		t.Errorf("unfiltered: got %d tables", got)
	}
	hall := s.List("Main Hall")
	if len(hall) != 2 || hall[0].Number != "A01" || hall[1].Number != "A02" {
		t.Errorf("area filter lost seed order: %+v", hall)
	}
	if got := len(s.List("Garden")); got != 0 {
		t.Errorf("unknown area: got %d tables", got)
	}
}

func TestStore_Areas(t *testing.T) {
	s := testStore()
	areas := s.Areas()
	if len(areas) != 2 || areas[0] != "Main Hall" || areas[1] != "Terrace" {
		t.Errorf("areas: got %v", areas)
	}
}

func TestStore_SetStatus(t *testing.T) {
	s := testStore()

	updated, err := s.SetStatus("A01", enum.TableStatusDining)
	if err != nil {
		t.Fatalf("SetStatus: %v", err)
	}
	if updated.Status != enum.TableStatusDining {
		t.Errorf("status: got %s", updated.Status)
	}

	got, _ := s.Get("A01")
	if got.Status != enum.TableStatusDining {
		t.Error("status change not persisted")
	}

	if _, err := s.SetStatus("A01", "BROKEN"); !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("invalid status: got %v, want ErrInvalidStatus", err)
	}
	if _, err := s.SetStatus("Z99", enum.TableStatusOccupied); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown table: got %v, want ErrNotFound", err)
	}
}

func TestSeed(t *testing.T) {
	tables := Seed()
	if len(tables) != 22 {
		t.Fatalf("seed size: got %d, want 22", len(tables))
	}
	s := NewStore(tables)
	if got := len(s.Areas()); got != 3 {
		t.Errorf("seeded areas: got %d, want 3", got)
	}
}
