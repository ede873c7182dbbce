package order

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/xilang-pos/api/internal/cart"
	"github.com/xilang-pos/api/internal/enum"
)

// Errors returned by the order store.
var (
	ErrNotFound       = errors.New("order not found")
	ErrAlreadyPaid    = errors.New("order is already paid")
	ErrOrderCancelled = errors.New("order is cancelled")
	ErrOrderCompleted = errors.New("cannot cancel a completed order")
)

// Store is an in-memory order book. All state lives in process memory for
// the lifetime of the server; restart starts from an empty book.
type Store struct {
	mu     sync.RWMutex
	orders map[uuid.UUID]*Order
}

// NewStore creates an empty order store.
func NewStore() *Store {
	return &Store{orders: make(map[uuid.UUID]*Order)}
}

// Create registers the snapshot as a new PENDING order and returns it.
func (s *Store) Create(snap cart.Snapshot) Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	o := &Order{
		ID:        uuid.New(),
		Snapshot:  snap,
		Status:    enum.OrderStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.orders[o.ID] = o
	return o.clone()
}

// Get returns a copy of the order with the given ID.
func (s *Store) Get(id uuid.UUID) (Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.orders[id]
	if !ok {
		return Order{}, ErrNotFound
	}
	return o.clone(), nil
}

// Filter narrows a List call. Zero values mean "no constraint"; Limit of
// zero falls back to a default page size.
type Filter struct {
	Status      string
	TableNumber string
	From        time.Time
	To          time.Time
	Limit       int
	Offset      int
}

const defaultListLimit = 20

// List returns matching orders, newest first.
func (s *Store) List(f Filter) []Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]*Order, 0, len(s.orders))
	for _, o := range s.orders {
		if f.Status != "" && o.Status != f.Status {
			continue
		}
		if f.TableNumber != "" && o.TableNumber != f.TableNumber {
			continue
		}
		if !f.From.IsZero() && o.CreatedAt.Before(f.From) {
			continue
		}
		if !f.To.IsZero() && !o.CreatedAt.Before(f.To) {
			continue
		}
		matched = append(matched, o)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	limit := f.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	offset := f.Offset
	if offset < 0 {
		offset = 0
	}
	if offset >= len(matched) {
		return []Order{}
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}

	out := make([]Order, 0, end-offset)
	for _, o := range matched[offset:end] {
		out = append(out, o.clone())
	}
	return out
}

// Cancel moves a pending order to CANCELLED. Completed orders cannot be
// cancelled; cancelling twice is a conflict the caller must surface.
func (s *Store) Cancel(id uuid.UUID) (Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[id]
	if !ok {
		return Order{}, ErrNotFound
	}
	switch o.Status {
	case enum.OrderStatusCompleted:
		return Order{}, ErrOrderCompleted
	case enum.OrderStatusCancelled:
		return Order{}, ErrOrderCancelled
	}
	o.Status = enum.OrderStatusCancelled
	o.UpdatedAt = time.Now()
	return o.clone(), nil
}

// Settle attaches the payment to a pending order and marks it COMPLETED.
// Settling a cancelled or already paid order is a conflict.
func (s *Store) Settle(id uuid.UUID, p Payment) (Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[id]
	if !ok {
		return Order{}, ErrNotFound
	}
	switch o.Status {
	case enum.OrderStatusCompleted:
		return Order{}, ErrAlreadyPaid
	case enum.OrderStatusCancelled:
		return Order{}, ErrOrderCancelled
	}
	o.Payment = &p
	o.Status = enum.OrderStatusCompleted
	o.UpdatedAt = time.Now()
	return o.clone(), nil
}

// Summary aggregates settled business over a time window for the reports
// endpoints. Cancelled orders count toward CancelledCount only; revenue
// figures come from completed orders.
type Summary struct {
	OrderCount     int                        `json:"order_count"`
	CancelledCount int                        `json:"cancelled_count"`
	CustomerCount  int                        `json:"customer_count"`
	Subtotal       decimal.Decimal            `json:"subtotal"`
	ServiceCharge  decimal.Decimal            `json:"service_charge"`
	Total          decimal.Decimal            `json:"total"`
	ByMethod       map[string]decimal.Decimal `json:"by_method"`
}

// Summarize computes the sales summary for orders created in [from, to).
// Zero bounds mean unbounded on that side.
func (s *Store) Summarize(from, to time.Time) Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sum := Summary{
		Subtotal:      decimal.Zero,
		ServiceCharge: decimal.Zero,
		Total:         decimal.Zero,
		ByMethod:      make(map[string]decimal.Decimal),
	}
	for _, o := range s.orders {
		if !from.IsZero() && o.CreatedAt.Before(from) {
			continue
		}
		if !to.IsZero() && !o.CreatedAt.Before(to) {
			continue
		}
		switch o.Status {
		case enum.OrderStatusCancelled:
			sum.CancelledCount++
		case enum.OrderStatusCompleted:
			sum.OrderCount++
			sum.CustomerCount += o.CustomerCount
			sum.Subtotal = sum.Subtotal.Add(o.Subtotal)
			sum.ServiceCharge = sum.ServiceCharge.Add(o.ServiceCharge)
			sum.Total = sum.Total.Add(o.Total)
			if o.Payment != nil {
				cur, ok := sum.ByMethod[o.Payment.Method]
				if !ok {
					cur = decimal.Zero
				}
				sum.ByMethod[o.Payment.Method] = cur.Add(o.Payment.Amount)
			}
		}
	}
	return sum
}
