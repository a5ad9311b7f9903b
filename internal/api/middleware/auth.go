package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/projectpulse/project-management/internal/api/metrics"
	"github.com/projectpulse/project-management/internal/core/ports"
)

// UserContextKey is the echo context key under which the guard stores the
// authenticated user.
const UserContextKey = "user"

const accessTokenCookie = "accessToken"

// Auth is the access guard: it extracts the token from the accessToken
// cookie or the Authorization header, verifies it, loads the referenced
// user, and attaches the sanitized record to the request context. Every
// failure short-circuits with a 401.
func Auth(tokens ports.TokenIssuer, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := extractToken(c)
			if token == "" {
				metrics.AuthRejectionsTotal.WithLabelValues("missing_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "No access token found")
			}

			claims, err := tokens.VerifyAccessToken(token)
			if err != nil {
				metrics.AuthRejectionsTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
			}

			user, err := users.FindByID(c.Request().Context(), claims.UserID)
			if err != nil {
				metrics.AuthRejectionsTotal.WithLabelValues("unknown_user").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid Access Token")
			}

			c.Set(UserContextKey, user.Sanitized())
			return next(c)
		}
	}
}

// extractToken prefers the cookie and falls back to a Bearer header.
func extractToken(c echo.Context) string {
	if cookie, err := c.Cookie(accessTokenCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}
