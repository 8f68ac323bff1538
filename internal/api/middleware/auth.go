package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/storekit/catalog-api/internal/api/metrics"
	"github.com/storekit/catalog-api/internal/core/domain"
	"github.com/storekit/catalog-api/internal/core/ports"
)

// Context keys populated by Auth for downstream handlers.
const (
	CtxUserID = "user_id"
	CtxRole   = "role"
	CtxToken  = "token"
)

// Auth extracts the bearer token, validates it through the auth service, and
// injects the resolved identity into the request context. Requests without a
// valid token are rejected with 401 before reaching the handler.
func Auth(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := bearerToken(c)
			if err != nil {
				return err
			}

			claims, err := auth.ValidateToken(c.Request().Context(), token)
			if err != nil {
				metrics.TokenValidationsTotal.WithLabelValues(validationResult(err)).Inc()
				// Only token errors are the caller's 401. Anything else, such
				// as a failing revocation store, goes to the central error
				// handler unwrapped.
				if !isTokenError(err) {
					return err
				}
				return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
			}
			metrics.TokenValidationsTotal.WithLabelValues("valid").Inc()

			c.Set(CtxUserID, claims.UserID)
			c.Set(CtxRole, claims.Role)
			c.Set(CtxToken, token)

			return next(c)
		}
	}
}

func bearerToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
	}
	return parts[1], nil
}

func isTokenError(err error) bool {
	return errors.Is(err, domain.ErrTokenInvalid) ||
		errors.Is(err, domain.ErrTokenExpired) ||
		errors.Is(err, domain.ErrTokenRevoked)
}

func validationResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrTokenExpired):
		return "expired"
	case errors.Is(err, domain.ErrTokenRevoked):
		return "revoked"
	case errors.Is(err, domain.ErrTokenInvalid):
		return "invalid"
	default:
		return "error"
	}
}
