package ports

import (
	"context"

	"github.com/lucamusic/event-platform/internal/core/domain"
)

// RegisterInput carries the fields accepted at registration.
type RegisterInput struct {
	Name     string
	LastName string
	Email    string
	Password string
	Role     string
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, error)
	GetUserByID(ctx context.Context, id string) (*domain.User, error)
}

// AccessGate decides whether a bearer token grants a role-restricted
// operation. On success it returns the current identity of the subject.
type AccessGate interface {
	Authorize(ctx context.Context, tokenString, requiredRole string) (*domain.User, error)
}

// PasswordHasher abstracts the one-way hashing scheme so the auth flow has
// no dependency on the hashing library choice.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

// TokenIssuer mints and validates signed bearer tokens.
type TokenIssuer interface {
	Issue(subject, role string) (string, error)
	Validate(tokenString string) (subject, role string, err error)
}
