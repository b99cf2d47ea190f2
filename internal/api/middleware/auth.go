package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/teamtrack/task-tracker/internal/core/domain"
)

// identityKey is the echo context key under which the authenticated
// identity is stored.
const identityKey = "identity"

// TokenVerifier validates a bearer token and returns the identity it
// asserts. Implemented by the auth service.
type TokenVerifier interface {
	Verify(token string) (*domain.Identity, error)
}

// Auth parses the bearer header, verifies the token, and injects the typed
// identity into the request context. Requests without a well-formed,
// verifiable token are rejected with 401.
func Auth(verifier TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			ident, err := verifier.Verify(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(identityKey, *ident)
			return next(c)
		}
	}
}

// IdentityFromContext returns the identity stored by Auth, or ok=false when
// the middleware did not run.
func IdentityFromContext(c echo.Context) (domain.Identity, bool) {
	ident, ok := c.Get(identityKey).(domain.Identity)
	return ident, ok
}
