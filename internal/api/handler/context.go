package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/herovault/hero-api/internal/api/middleware"
)

// ctxOwnerID extracts the identity injected by the Session middleware and
// fast-fails with a 401 when it is absent (i.e. the route was wired without
// the middleware or resolution produced an empty subject).
func ctxOwnerID(c echo.Context) (string, error) {
	ownerID, _ := c.Get(middleware.ContextOwnerID).(string)
	if ownerID == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
	}
	return ownerID, nil
}
