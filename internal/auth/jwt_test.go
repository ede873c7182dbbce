package auth_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/xilang-pos/api/internal/auth"
	"github.com/xilang-pos/api/internal/enum"
)

func TestGenerateAndValidateToken(t *testing.T) {
	secret := "test-secret"
	userID := uuid.New()

	token, err := auth.GenerateToken(secret, userID, "Chen Jing", enum.UserRoleWaiter)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	claims, err := auth.ValidateToken(secret, token)
	if err != nil {
		t.Fatalf("validate token: %v", err)
	}

	if claims.UserID != userID {
		t.Errorf("user ID: got %v, want %v", claims.UserID, userID)
	}
	if claims.Name != "Chen Jing" {
		t.Errorf("name: got %v", claims.Name)
	}
	if claims.Role != enum.UserRoleWaiter {
		t.Errorf("role: got %v, want %v", claims.Role, enum.UserRoleWaiter)
	}
}

func TestValidateTokenWithWrongSecret(t *testing.T) {
	token, err := auth.GenerateToken("secret-a", uuid.New(), "Li Wei", enum.UserRoleManager)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	_, err = auth.ValidateToken("secret-b", token)
	if err == nil {
		t.Fatal("expected error validating with wrong secret")
	}
}

func TestValidateTokenWithInvalidString(t *testing.T) {
	_, err := auth.ValidateToken("secret", "not-a-jwt")
	if err == nil {
		t.Fatal("expected error validating invalid token string")
	}
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	secret := "test-secret"
	userID := uuid.New()

	token, err := auth.GenerateRefreshToken(secret, userID)
	if err != nil {
		t.Fatalf("generate refresh token: %v", err)
	}

	got, err := auth.ValidateRefreshToken(secret, token)
	if err != nil {
		t.Fatalf("validate refresh token: %v", err)
	}
	if got != userID {
		t.Errorf("subject: got %v, want %v", got, userID)
	}

	if _, err := auth.ValidateRefreshToken("other", token); err == nil {
		t.Fatal("expected error validating with wrong secret")
	}
}

func TestUserStoreAuthenticate(t *testing.T) {
	s := auth.NewUserStore()
	u, err := s.Add("waiter1", "Chen Jing", enum.UserRoleWaiter, "waiter123")
	if err != nil {
		t.Fatalf("add user: %v", err)
	}

	got, err := s.Authenticate("waiter1", "waiter123")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if got.ID != u.ID {
		t.Errorf("user ID: got %v, want %v", got.ID, u.ID)
	}

	if _, err := s.Authenticate("waiter1", "wrong"); !errors.Is(err, auth.ErrInvalidCredentials) {
		t.Errorf("wrong password: got %v, want ErrInvalidCredentials", err)
	}
	if _, err := s.Authenticate("ghost", "waiter123"); !errors.Is(err, auth.ErrInvalidCredentials) {
		t.Errorf("unknown user: got %v, want ErrInvalidCredentials", err)
	}
}

func TestUserStoreGet(t *testing.T) {
	s := auth.NewUserStore()
	u, _ := s.Add("manager", "Li Wei", enum.UserRoleManager, "manager123")

	got, err := s.Get(u.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Username != "manager" {
		t.Errorf("username: got %v", got.Username)
	}

	if _, err := s.Get(uuid.New()); !errors.Is(err, auth.ErrUserNotFound) {
		t.Errorf("unknown ID: got %v, want ErrUserNotFound", err)
	}
}
