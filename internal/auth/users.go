package auth

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/xilang-pos/api/internal/enum"
	"golang.org/x/crypto/bcrypt"
)

// Errors returned by the user store.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// User is a staff account allowed to sign in on the tablets.
type User struct {
	ID           uuid.UUID
	Username     string
	Name         string
	Role         string
	PasswordHash []byte
}

// UserStore is an in-memory staff roster keyed by username.
type UserStore struct {
	mu    sync.RWMutex
	users map[string]*User
	byID  map[uuid.UUID]*User
}

// NewUserStore creates an empty roster.
func NewUserStore() *UserStore {
	return &UserStore{
		users: make(map[string]*User),
		byID:  make(map[uuid.UUID]*User),
	}
}

// Add hashes the password and registers the user.
func (s *UserStore) Add(username, name, role, password string) (*User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	u := &User{
		ID:           uuid.New(),
		Username:     username,
		Name:         name,
		Role:         role,
		PasswordHash: hash,
	}
	s.users[username] = u
	s.byID[u.ID] = u
	return u, nil
}

// Authenticate checks the username and password. A missing user and a wrong
// password both return ErrInvalidCredentials so login probes cannot tell
// them apart.
func (s *UserStore) Authenticate(username, password string) (*User, error) {
	s.mu.RLock()
	u, ok := s.users[username]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// Get returns the user with the given ID.
func (s *UserStore) Get(id uuid.UUID) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.byID[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// SeedUsers registers the demo staff roster. Panics on a bcrypt failure,
// which only happens with an invalid cost.
func SeedUsers() *UserStore {
	s := NewUserStore()
	seed := []struct {
		username, name, role, password string
	}{
		{"manager", "Li Wei", enum.UserRoleManager, "manager123"},
		{"waiter1", "Chen Jing", enum.UserRoleWaiter, "waiter123"},
		{"waiter2", "Zhang Min", enum.UserRoleWaiter, "waiter123"},
	}
	for _, u := range seed {
		if _, err := s.Add(u.username, u.name, u.role, u.password); err != nil {
			panic(err)
		}
	}
	return s
}
