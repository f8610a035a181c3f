package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/domain"
)

// CallerKey is the echo context key of the authenticated address.
const CallerKey = "address"

type AuthMiddleware struct {
	auth domain.AuthUsecase
}

func New(auth domain.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{
		auth: auth,
	}
}

// Auth requires a bearer token and exposes its address as the caller.
func (m *AuthMiddleware) Auth() echo.MiddlewareFunc {
	return middleware.KeyAuth(m.validateAuthToken)
}

func (m *AuthMiddleware) OptionalAuth() echo.MiddlewareFunc {
	return middleware.KeyAuthWithConfig(middleware.KeyAuthConfig{
		Skipper: func(c echo.Context) bool {
			auth := c.Request().Header.Get(echo.HeaderAuthorization)
			return len(auth) == 0
		},
		Validator: m.validateAuthToken,
	})
}

func (m *AuthMiddleware) validateAuthToken(key string, c echo.Context) (bool, error) {
	cont := c.Get("ctx").(ctx.Ctx)
	if ads, err := m.auth.ParseToken(cont, key); err != nil {
		cont.WithField("err", err).Warn("auth.ParseToken failed")
		return false, err
	} else {
		c.Set(CallerKey, domain.Address(ads))
		c.Set("ctx", ctx.WithCaller(cont, ads))
		return true, nil
	}
}

// Caller is the address Auth stored on c, empty without a token.
func Caller(c echo.Context) domain.Address {
	caller, _ := c.Get(CallerKey).(domain.Address)
	return caller
}
