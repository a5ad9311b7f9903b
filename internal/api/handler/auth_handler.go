package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/projectpulse/project-management/internal/api/metrics"
	"github.com/projectpulse/project-management/internal/core/ports"
)

// AuthHandler handles registration and login requests.
type AuthHandler struct {
	authService ports.AuthService
	accessTTL   time.Duration
	refreshTTL  time.Duration
}

func NewAuthHandler(authService ports.AuthService, accessTTL, refreshTTL time.Duration) *AuthHandler {
	return &AuthHandler{authService: authService, accessTTL: accessTTL, refreshTTL: refreshTTL}
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  registerResponse
// @Failure      400   {object}  map[string]any
// @Failure      409   {object}  map[string]any
// @Failure      500   {object}  map[string]any
// @Router       /api/v1/users/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	user, err := h.authService.Register(c.Request().Context(), req.FirstName, req.LastName, req.Email, req.Password)
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.Inc()
	return c.JSON(http.StatusCreated, registerResponse{
		Message: "User created successfully",
		User:    user,
	})
}

// Login authenticates a user, returns both tokens, and additionally sets
// them as httpOnly secure cookies.
//
// @Summary      Login
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]any
// @Failure      401   {object}  map[string]any
// @Router       /api/v1/users/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	result, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}

	setTokenCookie(c, "accessToken", result.AccessToken, h.accessTTL)
	setTokenCookie(c, "refreshToken", result.RefreshToken, h.refreshTTL)

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{
		Message:      "Logged in successfully",
		User:         result.User,
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
	})
}

func setTokenCookie(c echo.Context, name, value string, ttl time.Duration) {
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Expires:  time.Now().Add(ttl),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}
