package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/retours-express/returns-platform/internal/core/domain"
)

type stubAuthRepo struct {
	users map[string]*domain.User
}

func newStubAuthRepo() *stubAuthRepo {
	return &stubAuthRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubAuthRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrUserExists
	}
	r.users[user.Email] = cloneUser(user)
	return cloneUser(user), nil
}

func (r *stubAuthRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	user, err := svc.Register(context.Background(), "Ahmed Bennani", "ahmed@example.com", "pass123", domain.RoleClient)
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user == nil {
		t.Fatalf("expected user, got nil")
	}
	if user.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.Role != domain.RoleClient {
		t.Fatalf("unexpected role: %s", user.Role)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	if _, err := svc.Register(context.Background(), "", "a@example.com", "pass", domain.RoleClient); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for empty name, got %v", err)
	}
	if _, err := svc.Register(context.Background(), "Alice", "a@example.com", "pass", "superuser"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown role, got %v", err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	if _, err := svc.Register(context.Background(), "Alice", "a@example.com", "pass", domain.RoleClient); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	if _, err := svc.Register(context.Background(), "Alice", "a@example.com", "pass", domain.RoleClient); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	if _, err := svc.Register(context.Background(), "Alice", "a@example.com", "pass123", domain.RoleAdmin); err != nil {
		t.Fatalf("Register: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "a@example.com", "pass123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user == nil || user.Email != "a@example.com" {
		t.Fatalf("unexpected user: %+v", user)
	}

	// The token must carry email, name and role, signed with our secret.
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token does not parse: %v", err)
	}
	if claims["email"] != "a@example.com" || claims["role"] != domain.RoleAdmin || claims["name"] != "Alice" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if _, ok := claims["exp"]; !ok {
		t.Fatalf("token must expire")
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	if _, err := svc.Register(context.Background(), "Alice", "a@example.com", "pass123", domain.RoleClient); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if _, _, err := svc.Login(context.Background(), "a@example.com", "nope"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	if _, _, err := svc.Login(context.Background(), "ghost@example.com", "pass"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
