package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/lucamusic/event-platform/internal/core/domain"
	"github.com/lucamusic/event-platform/internal/core/ports"
	"github.com/lucamusic/event-platform/internal/metrics"
)

// dummyHash is a bcrypt digest of a random throwaway value. When a login
// names an unknown email the password is still verified against this hash,
// keeping the unknown-email and wrong-password paths on comparable timing.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// AuthService implements registration, login, admin lookup, and the
// access-control gate for role-restricted operations.
type AuthService struct {
	users     ports.UserRepository
	passwords ports.PasswordHasher
	tokens    ports.TokenIssuer
	log       zerolog.Logger
}

func NewAuthService(users ports.UserRepository, passwords ports.PasswordHasher, tokens ports.TokenIssuer, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, passwords: passwords, tokens: tokens, log: log}
}

// Register creates a new account. The plaintext password is hashed before it
// crosses the repository boundary and is never retained.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if input.Email == "" || input.Password == "" || input.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	role := input.Role
	if role == "" {
		role = domain.RoleUser
	}
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidInput
	}

	hash, err := s.passwords.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         input.Name,
		LastName:     input.LastName,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         role,
		Enabled:      true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("email", created.Email).Str("role", created.Role).Msg("user registered")
	return created, nil
}

// Login verifies credentials and mints a bearer token bound to the account
// email and role. An unknown email and a wrong password both fail with
// ErrInvalidCredentials so callers cannot probe which emails are registered.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		metrics.LoginAttemptsTotal.WithLabelValues("invalid_input").Inc()
		return "", domain.ErrInvalidInput
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.passwords.Verify(password, dummyHash)
			metrics.LoginAttemptsTotal.WithLabelValues("invalid_credentials").Inc()
			return "", domain.ErrInvalidCredentials
		}
		metrics.LoginAttemptsTotal.WithLabelValues("error").Inc()
		return "", err
	}

	if !user.Enabled {
		metrics.LoginAttemptsTotal.WithLabelValues("disabled").Inc()
		return "", domain.ErrAccountDisabled
	}

	if !s.passwords.Verify(password, user.PasswordHash) {
		metrics.LoginAttemptsTotal.WithLabelValues("invalid_credentials").Inc()
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Email, user.Role)
	if err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("error").Inc()
		return "", err
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	metrics.TokensIssuedTotal.Inc()
	s.log.Info().Str("email", user.Email).Msg("login succeeded")
	return token, nil
}

// Authorize validates a bearer token and checks that its subject currently
// holds requiredRole. The subject is re-fetched from the store: a token
// remains cryptographically valid until expiry even if the account has been
// removed, so existence is re-verified here.
func (s *AuthService) Authorize(ctx context.Context, tokenString, requiredRole string) (*domain.User, error) {
	subject, _, err := s.tokens.Validate(tokenString)
	if err != nil {
		metrics.AuthzDecisionsTotal.WithLabelValues("unauthenticated").Inc()
		return nil, domain.ErrUnauthenticated
	}

	user, err := s.users.FindByEmail(ctx, subject)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.AuthzDecisionsTotal.WithLabelValues("unknown_subject").Inc()
		}
		return nil, err
	}

	if user.Role != requiredRole {
		metrics.AuthzDecisionsTotal.WithLabelValues("forbidden").Inc()
		return nil, domain.ErrForbidden
	}

	metrics.AuthzDecisionsTotal.WithLabelValues("granted").Inc()
	return user, nil
}

// GetUserByID returns the account with the given id.
func (s *AuthService) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	return s.users.FindByID(ctx, id)
}
