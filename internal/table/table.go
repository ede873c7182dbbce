// Package table tracks the dining floor: which tables exist, where they
// are, and whether they are free, seated, or already ordering.
package table

import (
	"errors"
	"sync"

	"github.com/xilang-pos/api/internal/enum"
)

// Errors returned by the table store.
var (
	ErrNotFound      = errors.New("table not found")
	ErrInvalidStatus = errors.New("invalid table status")
)

// Table is one physical table on the floor.
type Table struct {
	Number string `json:"number"`
	Area   string `json:"area"`
	Seats  int    `json:"seats"`
	Status string `json:"status"`
}

// Store is an in-memory table roster keyed by table number.
type Store struct {
	mu     sync.RWMutex
	order  []string
	tables map[string]*Table
}

// NewStore creates a store seeded with the given tables. Seed order is
// preserved by List.
func NewStore(tables []Table) *Store {
	s := &Store{tables: make(map[string]*Table, len(tables))}
	for i := range tables {
		t := tables[i]
		if t.Status == "" {
			t.Status = enum.TableStatusAvailable
		}
		s.order = append(s.order, t.Number)
		s.tables[t.Number] = &t
	}
	return s
}

// Get returns the table with the given number.
func (s *Store) Get(number string) (Table, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tables[number]
	if !ok {
		return Table{}, ErrNotFound
	}
	return *t, nil
}

// List returns all tables, optionally narrowed to one area.
func (s *Store) List(area string) []Table {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Table, 0, len(s.order))
	for _, num := range s.order {
		t := s.tables[num]
		if area != "" && t.Area != area {
			continue
		}
		out = append(out, *t)
	}
	return out
}

// Areas returns the distinct area names in seed order.
func (s *Store) Areas() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool)
	var out []string
	for _, num := range s.order {
		a := s.tables[num].Area
		if !seen[a] {
			seen[a] = true
			out = append(out, a)
		}
	}
	return out
}

// SetStatus moves the table to the given status.
func (s *Store) SetStatus(number, status string) (Table, error) {
	switch status {
	case enum.TableStatusAvailable, enum.TableStatusOccupied, enum.TableStatusDining:
	default:
		return Table{}, ErrInvalidStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tables[number]
	if !ok {
		return Table{}, ErrNotFound
	}
	t.Status = status
	return *t, nil
}
