package usecase

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt"
	"golang.org/x/xerrors"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/ethereum"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/domain"
)

const (
	defaultTokenTtl    = 24 * time.Hour
	defaultNonceWindow = 10 * time.Minute
)

var timeNow = time.Now

type AuthUseCaseCfg struct {
	JwtSecret string
	// SigningMsgTemplate holds one %s, replaced by the nonce
	SigningMsgTemplate string
	TokenTtl           time.Duration
	// NonceWindow bounds how far the unix-seconds nonce may be from now
	NonceWindow time.Duration
}

type impl struct {
	jwtSecret   []byte
	template    string
	tokenTtl    time.Duration
	nonceWindow time.Duration
}

func New(cfg *AuthUseCaseCfg) domain.AuthUsecase {
	im := &impl{
		jwtSecret:   []byte(cfg.JwtSecret),
		template:    cfg.SigningMsgTemplate,
		tokenTtl:    cfg.TokenTtl,
		nonceWindow: cfg.NonceWindow,
	}
	if im.tokenTtl <= 0 {
		im.tokenTtl = defaultTokenTtl
	}
	if im.nonceWindow <= 0 {
		im.nonceWindow = defaultNonceWindow
	}
	return im
}

func (im *impl) SignToken(ctx ctx.Ctx, address domain.Address, nonce, signature string) (string, error) {
	if !address.IsValid() {
		return "", domain.ErrInvalidAddress
	}
	if err := im.checkNonce(nonce); err != nil {
		ctx.WithFields(log.Fields{"nonce": nonce, "err": err}).Warn("checkNonce failed")
		return "", err
	}

	msg := []byte(fmt.Sprintf(im.template, nonce))
	if valid, err := ethereum.ValidateMsgSignature(msg, signature, string(address)); err != nil {
		ctx.WithFields(log.Fields{"address": address, "err": err}).Warn("ethereum.ValidateMsgSignature failed")
		return "", xerrors.Errorf("%v: %w", err, domain.ErrInvalidSignature)
	} else if !valid {
		return "", domain.ErrInvalidSignature
	}

	claims := domain.JwtCustomClaims{
		Address: address.ToLowerStr(),
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  timeNow().Unix(),
			ExpiresAt: timeNow().Add(im.tokenTtl).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	if ss, err := token.SignedString(im.jwtSecret); err != nil {
		ctx.WithField("err", err).Error("token.SignedString failed")
		return "", err
	} else {
		return ss, nil
	}
}

func (im *impl) checkNonce(nonce string) error {
	sec, err := strconv.ParseInt(nonce, 10, 64)
	if err != nil {
		return domain.ErrInvalidSignature
	}
	d := timeNow().Sub(time.Unix(sec, 0))
	if d > im.nonceWindow || d < -im.nonceWindow {
		return domain.ErrInvalidSignature
	}
	return nil
}

func (im *impl) ParseToken(ctx ctx.Ctx, str string) (string, error) {
	token, err := jwt.ParseWithClaims(str, &domain.JwtCustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("Unexpected signing method: %v", token.Header["alg"])
		}
		return im.jwtSecret, nil
	})
	if err != nil {
		return "", err
	}

	if claims, ok := token.Claims.(*domain.JwtCustomClaims); ok && token.Valid {
		return claims.Address, nil
	}

	return "", domain.ErrInvalidSignature
}
