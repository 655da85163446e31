package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/herovault/hero-api/internal/core/ports"
)

// Cookie names the session resolver reads, in order. The __Secure- variant is
// the one set over encrypted transport.
const (
	SessionCookie       = "session_token"
	SecureSessionCookie = "__Secure-session_token"
)

// ContextOwnerID is the echo context key holding the resolved user identity.
const ContextOwnerID = "owner_id"

// Session resolves the caller's identity from the session cookie. The token
// is verified through the pluggable verifier; the subject claim is stored in
// the context as an opaque string. Every failure mode (no cookie, bad token,
// missing subject) collapses into a 401; resolution never reveals anything
// else to the client.
func Session(verifier ports.TokenVerifier, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := sessionToken(c)
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
			}

			subject, err := verifier.Verify(token)
			if err != nil || subject == "" {
				log.Debug().Err(err).Msg("session token rejected")
				return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
			}

			c.Set(ContextOwnerID, subject)
			return next(c)
		}
	}
}

// sessionToken returns the raw token from the first session cookie present.
func sessionToken(c echo.Context) string {
	for _, name := range []string{SessionCookie, SecureSessionCookie} {
		if cookie, err := c.Cookie(name); err == nil && cookie.Value != "" {
			return cookie.Value
		}
	}
	return ""
}
