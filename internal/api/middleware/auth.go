package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/lucamusic/event-platform/internal/core/domain"
	"github.com/lucamusic/event-platform/internal/core/ports"
)

// Context keys set for downstream handlers after a successful authorization.
const (
	ContextKeyEmail = "email"
	ContextKeyRole  = "role"
)

// RequireRole guards a route behind the access-control gate: it extracts the
// bearer token, asks the gate whether the caller currently holds role, and
// injects the verified identity into the request context. Token failures
// surface as a single 401 regardless of whether the token was malformed,
// tampered with, or expired.
func RequireRole(gate ports.AccessGate, role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenString, err := bearerToken(c)
			if err != nil {
				return err
			}

			user, err := gate.Authorize(c.Request().Context(), tokenString, role)
			if err != nil {
				switch {
				case errors.Is(err, domain.ErrUnauthenticated):
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
				case errors.Is(err, domain.ErrForbidden):
					return echo.NewHTTPError(http.StatusForbidden, "access forbidden")
				}
				return err
			}

			c.Set(ContextKeyEmail, user.Email)
			c.Set(ContextKeyRole, user.Role)

			return next(c)
		}
	}
}

// bearerToken extracts the token from the Authorization header.
func bearerToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
	}
	return parts[1], nil
}
