package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/goauction/base/ctx"
	customValidator "github.com/x-xyz/goauction/base/validator"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/stores/auth/delivery/http/middleware"
	"github.com/x-xyz/goauction/stores/auth/usecase"
)

const template = "Sign in to the auction house, nonce: %s"

func setup() *echo.Echo {
	e := echo.New()
	e.Validator = customValidator.NewCustomValidator(validator.New())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("ctx", ctx.Background())
			return next(c)
		}
	})

	auth := usecase.New(&usecase.AuthUseCaseCfg{JwtSecret: "jwt-secret", SigningMsgTemplate: template})
	New(e, auth, template)
	e.GET("/me", func(c echo.Context) error {
		return c.String(http.StatusOK, string(middleware.Caller(c)))
	}, middleware.New(auth).Auth())
	return e
}

func signBody(t *testing.T, nonce string) (domain.Address, string) {
	privateKey, err := crypto.GenerateKey()
	require.NoError(t, err)
	sig, err := crypto.Sign(accounts.TextHash([]byte(fmt.Sprintf(template, nonce))), privateKey)
	require.NoError(t, err)
	address := domain.Address(crypto.PubkeyToAddress(privateKey.PublicKey).Hex())
	return address, fmt.Sprintf(`{"address":"%s","nonce":"%s","signature":"%s"}`, address, nonce, hexutil.Encode(sig))
}

func post(e *echo.Echo, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/auth/sign", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestSignInAndCallProtectedRoute(t *testing.T) {
	e := setup()
	address, body := signBody(t, strconv.FormatInt(time.Now().Unix(), 10))

	rec := post(e, body)
	require.Equal(t, http.StatusCreated, rec.Code)
	res := struct {
		Data string `json:"data"`
	}{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+res.Data)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, string(address.ToLower()), rec.Body.String())
}

func TestSignInRejects(t *testing.T) {
	e := setup()

	_, stale := signBody(t, strconv.FormatInt(time.Now().Add(-time.Hour).Unix(), 10))
	assert.Equal(t, http.StatusForbidden, post(e, stale).Code)

	assert.Equal(t, http.StatusBadRequest, post(e, `{"address":"0x00000000000000000000000000000000000000aa"}`).Code)
}

func TestGetSigningMsgTemplate(t *testing.T) {
	e := setup()
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/auth/signingMsgTemplate", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "nonce: %s")
}
