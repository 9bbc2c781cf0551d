package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const userIDKey = "auth.user_id"

// Auth verifies the Bearer token and stores the verified user id in the
// request context. Handlers trust this value completely and never read an
// identity from the request body.
func Auth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(auth, "Bearer ") {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}

			tokenStr := strings.TrimSpace(auth[len("Bearer "):])
			claims := jwt.MapClaims{}
			tok, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
				return []byte(secret), nil
			})
			if err != nil || !tok.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			sub, _ := claims["sub"].(string)
			if sub == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid subject")
			}

			SetUserID(c, sub)
			return next(c)
		}
	}
}

// SetUserID stores the verified user id on the request context.
func SetUserID(c echo.Context, id string) {
	c.Set(userIDKey, id)
}

// UserID returns the verified user id set by Auth, or "" if absent.
func UserID(c echo.Context) string {
	id, _ := c.Get(userIDKey).(string)
	return id
}
