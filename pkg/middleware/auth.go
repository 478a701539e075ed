package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"kubeterra/pkg/respond"
	"kubeterra/pkg/token"
)

// BearerAuth verifies the Authorization header and stores the requester
// identity ("uid", "email", "role") on the echo context. Handlers past this
// middleware may assume a requester is present.
func BearerAuth(tokens *token.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(h, "Bearer ") {
				return respond.Fail(c, 401, "missing bearer token")
			}
			claims, err := tokens.Verify(strings.TrimPrefix(h, "Bearer "))
			if err != nil {
				return respond.Fail(c, 401, "invalid or expired token")
			}
			c.Set("uid", claims.UserID)
			c.Set("email", claims.Email)
			c.Set("role", claims.Role)
			return next(c)
		}
	}
}
