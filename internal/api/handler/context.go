package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/teamtrack/task-tracker/internal/api/middleware"
	"github.com/teamtrack/task-tracker/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Auth middleware and
// fast-fails before any service call. Its presence proves the middleware
// ran; a route wired without Auth is a bug and answers 401, not 500.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	ident, ok := middleware.IdentityFromContext(c)
	if !ok {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return ident, nil
}
