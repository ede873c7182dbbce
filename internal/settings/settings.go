// Package settings holds the mutable restaurant configuration exposed to
// the manager screen.
package settings

import (
	"errors"
	"sync"

	"github.com/shopspring/decimal"
)

// Errors returned when validating updates.
var (
	ErrInvalidRate          = errors.New("service charge rate must be between 0 and 1")
	ErrInvalidCustomerCount = errors.New("default customer count must be at least 1")
)

// Settings is the current restaurant configuration.
type Settings struct {
	RestaurantName       string          `json:"restaurant_name"`
	ServiceChargeRate    decimal.Decimal `json:"service_charge_rate"`
	DefaultCustomerCount int             `json:"default_customer_count"`
}

// Store guards the settings behind a mutex so the manager screen and the
// checkout path can read and write concurrently.
type Store struct {
	mu      sync.RWMutex
	current Settings
}

// NewStore creates a store with the given initial settings.
func NewStore(initial Settings) *Store {
	return &Store{current: initial}
}

// Get returns the current settings.
func (s *Store) Get() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Update validates and replaces the settings, returning the stored value.
func (s *Store) Update(next Settings) (Settings, error) {
	if next.ServiceChargeRate.IsNegative() || next.ServiceChargeRate.GreaterThan(decimal.NewFromInt(1)) {
		return Settings{}, ErrInvalidRate
	}
	if next.DefaultCustomerCount < 1 {
		return Settings{}, ErrInvalidCustomerCount
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = next
	return s.current, nil
}
