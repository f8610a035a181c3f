package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/delivery"
	pricefomatter "github.com/x-xyz/goauction/base/price_fomatter"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/middleware"
	"github.com/x-xyz/goauction/service/assetregistry"
	"github.com/x-xyz/goauction/service/tokenledger"
	authMiddleware "github.com/x-xyz/goauction/stores/auth/delivery/http/middleware"
)

type handler struct {
	tokens    tokenledger.Ledger
	assets    assetregistry.Registry
	formatter pricefomatter.PriceFormatter
}

type balance struct {
	Address        domain.Address `json:"address"`
	Balance        domain.Amount  `json:"balance"`
	DisplayBalance string         `json:"displayBalance"`
	Spender        domain.Address `json:"spender,omitempty"`
	Allowance      *domain.Amount `json:"allowance,omitempty"`
}

func New(e *echo.Echo, tokens tokenledger.Ledger, assets assetregistry.Registry, formatter pricefomatter.PriceFormatter, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{tokens, assets, formatter}

	tg := e.Group("/ledger/tokens")

	tg.POST("/mint", h.mintTokens, authMiddleware.Auth())

	tg.POST("/approve", h.approveTokens, authMiddleware.Auth())

	tg.GET("/:address", h.getBalance, middleware.IsValidAddress("address"))

	ag := e.Group("/ledger/assets")

	ag.POST("/mint", h.mintAsset, authMiddleware.Auth())

	ag.POST("/:tokenId/approve", h.approveAsset, authMiddleware.Auth())

	ag.GET("/:tokenId", h.getAsset)
}

func (h *handler) parseAmount(amount, display string) (domain.Amount, error) {
	if amount != "" {
		return domain.ParseAmount(amount)
	}
	if display != "" {
		return h.formatter.Parse(display)
	}
	return domain.Amount{}, domain.ErrInvalidNumberFormat
}

func (h *handler) balanceOf(c ctx.Ctx, account, spender domain.Address) *balance {
	b := h.tokens.BalanceOf(c, account)
	res := &balance{
		Address:        account,
		Balance:        b,
		DisplayBalance: h.formatter.Format(b),
	}
	if !spender.IsEmpty() {
		a := h.tokens.Allowance(c, account, spender)
		res.Spender = spender
		res.Allowance = &a
	}
	return res
}

// mintTokens
//
//	@Summary		Mint payment tokens
//	@Description	Mints to the caller unless to is set
//	@Tags			ledger
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			params	body		http.mintTokens.params	true	"params"
//	@Success		201		{object}	object{data=http.balance}
//	@Router			/ledger/tokens/mint [post]
func (h *handler) mintTokens(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		To            domain.Address `json:"to"`
		Amount        string         `json:"amount"`
		DisplayAmount string         `json:"displayAmount"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	amount, err := h.parseAmount(p.Amount, p.DisplayAmount)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	to := p.To
	if to.IsEmpty() {
		to = authMiddleware.Caller(c)
	}
	to = to.ToLower()

	if err := h.tokens.Mint(ctx, to, amount); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, h.balanceOf(ctx, to, ""))
}

// approveTokens
//
//	@Summary		Approve a spender
//	@Tags			ledger
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			params	body		http.approveTokens.params	true	"params"
//	@Success		200		{object}	object{data=http.balance}
//	@Router			/ledger/tokens/approve [post]
func (h *handler) approveTokens(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Spender       domain.Address `json:"spender" validate:"required,address"`
		Amount        string         `json:"amount"`
		DisplayAmount string         `json:"displayAmount"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	amount, err := h.parseAmount(p.Amount, p.DisplayAmount)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	owner := authMiddleware.Caller(c)
	spender := p.Spender.ToLower()
	if err := h.tokens.Approve(ctx, owner, spender, amount); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, h.balanceOf(ctx, owner, spender))
}

// getBalance
//
//	@Summary		Token balance
//	@Tags			ledger
//	@Produce		json
//	@Param			address	path		string	true	"account"
//	@Param			spender	query		string	false	"also report the allowance for spender"
//	@Success		200		{object}	object{data=http.balance}
//	@Router			/ledger/tokens/{address} [get]
func (h *handler) getBalance(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	account := domain.Address(c.Param("address")).ToLower()
	spender := domain.Address(c.QueryParam("spender")).ToLower()
	if !spender.IsEmpty() && !spender.IsValid() {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid spender")
	}
	return delivery.MakeJsonResp(c, http.StatusOK, h.balanceOf(ctx, account, spender))
}

// mintAsset
//
//	@Summary		Mint an asset
//	@Description	The caller becomes owner and author
//	@Tags			ledger
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			params	body		http.mintAsset.params	true	"params"
//	@Success		201		{object}	object{data=assetregistry.Token}
//	@Failure		400		"EMPTY_METADATA"
//	@Router			/ledger/assets/mint [post]
func (h *handler) mintAsset(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		TokenURI string `json:"tokenUri"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	tokenId, err := h.assets.MintWithTokenURI(ctx, authMiddleware.Caller(c), p.TokenURI)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	res, err := h.assets.Get(ctx, tokenId)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, res)
}

// approveAsset
//
//	@Summary		Approve an operator for one asset or for all
//	@Description	With all set, spender becomes an operator for every asset of the caller
//	@Tags			ledger
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			tokenId	path		string						true	"token id"
//	@Param			params	body		http.approveAsset.params	true	"params"
//	@Success		200		{object}	object{data=assetregistry.Token}
//	@Router			/ledger/assets/{tokenId}/approve [post]
func (h *handler) approveAsset(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Spender domain.Address `json:"spender" validate:"required,address"`
		All     bool           `json:"all"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	caller := authMiddleware.Caller(c)
	spender := p.Spender.ToLower()
	tokenId := domain.TokenId(c.Param("tokenId"))

	var err error
	if p.All {
		err = h.assets.SetApprovalForAll(ctx, caller, spender, true)
	} else {
		err = h.assets.Approve(ctx, caller, spender, tokenId)
	}
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	res, err := h.assets.Get(ctx, tokenId)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// getAsset
//
//	@Summary		Get an asset
//	@Tags			ledger
//	@Produce		json
//	@Param			tokenId	path		string	true	"token id"
//	@Success		200		{object}	object{data=assetregistry.Token}
//	@Failure		404		"UNKNOWN_ASSET"
//	@Router			/ledger/assets/{tokenId} [get]
func (h *handler) getAsset(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.assets.Get(ctx, domain.TokenId(c.Param("tokenId")))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
