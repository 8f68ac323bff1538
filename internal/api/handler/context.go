package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/storekit/catalog-api/internal/api/middleware"
	"github.com/storekit/catalog-api/internal/core/ports"
)

// ctxActor extracts the identity injected by the Auth middleware and performs
// a fast-fail check before any service call: both user id and role must be
// present, proving the middleware ran on this route.
func ctxActor(c echo.Context) (ports.Actor, error) {
	userID, _ := c.Get(middleware.CtxUserID).(string)
	role, _ := c.Get(middleware.CtxRole).(string)
	if userID == "" || role == "" {
		return ports.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return ports.Actor{UserID: userID, Role: role}, nil
}

// ctxToken returns the raw bearer token stored by the Auth middleware.
func ctxToken(c echo.Context) (string, error) {
	token, _ := c.Get(middleware.CtxToken).(string)
	if token == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return token, nil
}
