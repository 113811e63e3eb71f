package auth

import (
	"errors"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	apperrors "studentboard/internal/errors"
)

// Gate returns the access-gate middleware for protected routes. It extracts
// the bearer token from the Authorization header and rejects the request
// before any handler runs when the token is absent, malformed or invalid.
func Gate(secret string) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(secret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(Claims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			code := "INVALID_TOKEN"
			msg := "invalid or expired token"
			if errors.Is(err, echojwt.ErrJWTMissing) {
				code = "AUTH_REQUIRED"
				msg = "authentication required"
			}
			return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
				Error: msg,
				Code:  code,
			})
		},
	})
}

// ClaimsFrom returns the decoded claims attached by the gate.
func ClaimsFrom(c echo.Context) (*Claims, bool) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return nil, false
	}
	claims, ok := token.Claims.(*Claims)
	return claims, ok
}

// RequireAdmin rejects requests whose token does not carry the admin role.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := ClaimsFrom(c)
		if !ok || claims.Role != "admin" {
			he := apperrors.MapErrorToHTTP(apperrors.ErrForbidden)
			return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
		}
		return next(c)
	}
}
