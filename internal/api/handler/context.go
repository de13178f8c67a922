package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/getready/ats-system/internal/core/ports"
)

// ctxActor extracts the auth claims injected by the Auth middleware and
// performs a fast-fail check before any service call: both the user id and
// the role must be present, otherwise the token is structurally valid but
// operationally unusable and the request is rejected with 401.
func ctxActor(c echo.Context) (ports.Actor, error) {
	role, _ := c.Get("role").(string)
	userID, _ := c.Get("user_id").(string)
	if role == "" || userID == "" {
		return ports.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	username, _ := c.Get("username").(string)
	email, _ := c.Get("email").(string)
	return ports.Actor{UserID: userID, Username: username, Email: email, Role: role}, nil
}

// ctxToken returns the raw session token the Auth middleware verified.
func ctxToken(c echo.Context) string {
	token, _ := c.Get("token").(string)
	return token
}
