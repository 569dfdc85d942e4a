package middleware

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/webshop/storefront-api/internal/api/metrics"
	"github.com/webshop/storefront-api/internal/core/domain"
	"github.com/webshop/storefront-api/internal/core/ports"
)

const principalKey = "principal"

// Auth resolves Basic credentials to a user and injects it into the context as
// the request principal. Missing or wrong credentials end the request with
// domain.ErrAuthenticationRequired; store failures are passed through.
func Auth(authenticator ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			creds, ok := BasicCredentials(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				metrics.AuthAttemptsTotal.WithLabelValues("missing").Inc()
				return domain.ErrAuthenticationRequired
			}

			user, err := authenticator.Authenticate(c.Request().Context(), creds.Email, creds.Password)
			if err != nil {
				if errors.Is(err, domain.ErrInvalidCredentials) {
					metrics.AuthAttemptsTotal.WithLabelValues("invalid").Inc()
					return domain.ErrAuthenticationRequired
				}
				metrics.AuthAttemptsTotal.WithLabelValues("error").Inc()
				return err
			}

			metrics.AuthAttemptsTotal.WithLabelValues("success").Inc()
			SetPrincipal(c, user)
			return next(c)
		}
	}
}

// SetPrincipal stores the authenticated user for the rest of the request.
func SetPrincipal(c echo.Context, user *domain.User) {
	c.Set(principalKey, user)
}

// Principal returns the authenticated user, or nil for anonymous requests.
func Principal(c echo.Context) *domain.User {
	user, _ := c.Get(principalKey).(*domain.User)
	return user
}
