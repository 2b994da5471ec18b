package httpapi

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/dkovalev/todovault/internal/server/auth"
)

const userIDKey = "user_id"

// BearerAuth validates the bearer token and injects the authenticated user id
// into the request context. Handlers behind it trust that id without
// re-verifying identity.
func BearerAuth(jwtSecret []byte) echo.MiddlewareFunc {
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

			userID, err := auth.GetUserIDFromToken(parts[1], jwtSecret)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(userIDKey, userID)

			return next(c)
		}
	}
}

// ctxUserID extracts the user id injected by BearerAuth. An empty value means
// the middleware did not run for this route, which is a wiring error.
func ctxUserID(c echo.Context) (string, error) {
	id, _ := c.Get(userIDKey).(string)
	if id == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}
