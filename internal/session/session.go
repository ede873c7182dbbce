// Package session keeps the in-progress cart for each table. A tablet that
// reconnects mid-order picks up exactly where the previous screen left off.
package session

import (
	"sync"

	"github.com/shopspring/decimal"
	"github.com/xilang-pos/api/internal/cart"
)

// Manager maps table numbers to their active carts. Carts are created
// lazily on first access and removed on Clear.
type Manager struct {
	mu    sync.Mutex
	rate  decimal.Decimal
	carts map[string]*cart.Cart
}

// NewManager creates a session manager that seeds new carts with the given
// service charge rate.
func NewManager(serviceChargeRate decimal.Decimal) *Manager {
	return &Manager{
		rate:  serviceChargeRate,
		carts: make(map[string]*cart.Cart),
	}
}

// With runs fn while holding the table's cart under the manager lock. All
// cart reads and mutations go through here so two tablets editing the same
// table never interleave mid-operation.
func (m *Manager) With(tableNumber string, fn func(c *cart.Cart) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.carts[tableNumber]
	if !ok {
		c = cart.New(m.rate)
		m.carts[tableNumber] = c
	}
	return fn(c)
}

// SetRate changes the service charge rate used for carts created from now
// on. Carts already in progress keep the rate they were opened with.
func (m *Manager) SetRate(rate decimal.Decimal) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rate = rate
}

// Attach replaces the table's cart wholesale, used when a client hands over
// a serialized cart from a previous screen.
func (m *Manager) Attach(tableNumber string, c *cart.Cart) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.carts[tableNumber] = c
}

// Clear drops the table's session entirely.
func (m *Manager) Clear(tableNumber string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.carts, tableNumber)
}

// Active returns the table numbers that currently have a non-empty cart.
func (m *Manager) Active() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []string
	for tn, c := range m.carts {
		if !c.Empty() {
			out = append(out, tn)
		}
	}
	return out
}
