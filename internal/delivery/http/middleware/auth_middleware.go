package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	domainerrors "stundenplan/internal/domain/errors"
	"stundenplan/internal/domain/service"
	"stundenplan/internal/errors"
)

// ContextKeyClaims is the echo context key holding the verified token claims.
const ContextKeyClaims = "tokenClaims"

// AuthMiddleware guards routes with bearer tokens issued by the token service.
type AuthMiddleware struct {
	tokenService service.TokenService
}

func NewAuthMiddleware(tokenService service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenService: tokenService}
}

// Authenticate verifies the token carried in the Authorization header and
// stores its claims on the request context. The header value is the raw
// token itself, without a scheme prefix. A missing or malformed token yields
// 401, a token that fails verification yields 403.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		raw := c.Request().Header.Get(echo.HeaderAuthorization)
		if raw == "" {
			return domainerrors.ErrTokenMissing
		}

		claims, err := m.tokenService.Verify(raw)
		if err != nil {
			if errors.Is(err, service.ErrTokenMalformed) {
				return domainerrors.ErrTokenMissing
			}

			return domainerrors.ErrTokenInvalid
		}

		c.Set(ContextKeyClaims, claims)

		return next(c)
	}
}

// RequireOwner only lets the request through when the token subject matches
// the named route parameter, or when the token carries the admin claim.
// It must run after Authenticate.
func (m *AuthMiddleware) RequireOwner(paramName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get(ContextKeyClaims).(*service.Claims)
			if !ok {
				return domainerrors.ErrTokenMissing
			}

			if claims.Admin {
				return next(c)
			}

			target := strings.TrimSuffix(c.Param(paramName), "/")
			if target == "" || target != claims.Subject {
				return domainerrors.ErrNotOwner
			}

			return next(c)
		}
	}
}

// ClaimsFromContext returns the claims stored by Authenticate, or nil when
// the route is unguarded.
func ClaimsFromContext(c echo.Context) *service.Claims {
	claims, _ := c.Get(ContextKeyClaims).(*service.Claims)

	return claims
}
