package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/herovault/hero-api/internal/api/middleware"
	"github.com/herovault/hero-api/internal/core/domain"
	"github.com/herovault/hero-api/internal/core/ports"
)

// sessionTTL must cover the token expiry so the cookie does not outlive it.
const sessionTTL = 30 * 24 * time.Hour

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string       `json:"token,omitempty"`
	User  *domain.User `json:"user,omitempty"`
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Account details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.Register(c.Request().Context(), req.Username, req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, authResponse{User: user})
}

// Login authenticates a user, sets the session cookie and returns the token.
//
// @Summary      Login with credentials
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	c.SetCookie(sessionCookie(c, token, time.Now().Add(sessionTTL)))
	return c.JSON(http.StatusOK, authResponse{Token: token, User: user})
}

// Logout expires both session cookie variants.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  messageResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	expired := time.Unix(0, 0)
	c.SetCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "", Path: "/", HttpOnly: true, Expires: expired, MaxAge: -1})
	c.SetCookie(&http.Cookie{Name: middleware.SecureSessionCookie, Value: "", Path: "/", HttpOnly: true, Secure: true, Expires: expired, MaxAge: -1})
	return c.JSON(http.StatusOK, messageResponse{Message: "Signed out"})
}

// sessionCookie builds the session cookie for token. Over encrypted transport
// the __Secure- name and Secure flag are used.
func sessionCookie(c echo.Context, token string, expires time.Time) *http.Cookie {
	cookie := &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  expires,
	}
	if c.Scheme() == "https" {
		cookie.Name = middleware.SecureSessionCookie
		cookie.Secure = true
	}
	return cookie
}
