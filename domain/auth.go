package domain

import (
	"github.com/golang-jwt/jwt"
	"github.com/x-xyz/goauction/base/ctx"
)

type JwtCustomClaims struct {
	Address string `json:"data"` // name data for backward compatibility
	jwt.StandardClaims
}

type AuthUsecase interface {
	// SignToken issues a token for address once signature proves ownership
	// of it over the signing message built from nonce.
	SignToken(ctx ctx.Ctx, address Address, nonce, signature string) (string, error)
	ParseToken(ctx ctx.Ctx, token string) (address string, err error)
}
