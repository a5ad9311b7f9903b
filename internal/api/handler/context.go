package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/projectpulse/project-management/internal/api/middleware"
	"github.com/projectpulse/project-management/internal/core/domain"
)

// ctxUser extracts the authenticated user injected by the access guard. Its
// presence proves the guard ran; a protected handler reached without it is a
// wiring error and the request is rejected.
func ctxUser(c echo.Context) (*domain.User, error) {
	user, ok := c.Get(middleware.UserContextKey).(*domain.User)
	if !ok || user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return user, nil
}
