package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/delivery"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/auction"
	authMiddleware "github.com/x-xyz/goauction/stores/auth/delivery/http/middleware"
)

type setter func(c ctx.Ctx, caller domain.Address, value int64) (*auction.Config, error)

type handler struct {
	config  auction.ConfigUsecase
	setters map[auction.ConfigField]setter
}

func New(e *echo.Echo, config auction.ConfigUsecase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{
		config: config,
		setters: map[auction.ConfigField]setter{
			auction.FieldOvertimeWindow:         config.SetOvertimeWindow,
			auction.FieldAuctionDuration:        config.SetAuctionDuration,
			auction.FieldMinPriceStepNumerator:  config.SetMinPriceStepNumerator,
			auction.FieldAuthorRoyaltyNumerator: config.SetAuthorRoyaltyNumerator,
		},
	}

	g := e.Group("/config")

	g.GET("", h.get)

	g.PUT("/administrator", h.setAdministrator, authMiddleware.Auth())

	g.PUT("/:field", h.set, authMiddleware.Auth())
}

// get
//
//	@Summary		Get engine config
//	@Tags			config
//	@Produce		json
//	@Success		200	{object}	object{data=auction.Config}
//	@Failure		409	"not initialized"
//	@Router			/config [get]
func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.config.Get(ctx)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// set
//
//	@Summary		Set a numeric parameter
//	@Description	Administrator only. field is overtimeWindow, auctionDuration, minPriceStepNumerator or authorRoyaltyNumerator
//	@Tags			config
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			field	path		string			true	"parameter"
//	@Param			params	body		http.set.params	true	"params"
//	@Success		200		{object}	object{data=auction.Config}
//	@Failure		400
//	@Failure		403
//	@Router			/config/{field} [put]
func (h *handler) set(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Value *int64 `json:"value" validate:"required"`
	}

	f, ok := h.setters[auction.ConfigField(c.Param("field"))]
	if !ok {
		return delivery.MakeJsonResp(c, http.StatusNotFound, "unknown field")
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	res, err := f(ctx, authMiddleware.Caller(c), *p.Value)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// setAdministrator
//
//	@Summary		Hand over administration
//	@Tags			config
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			params	body		http.setAdministrator.params	true	"params"
//	@Success		200		{object}	object{data=auction.Config}
//	@Failure		400
//	@Failure		403
//	@Router			/config/administrator [put]
func (h *handler) setAdministrator(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Administrator domain.Address `json:"administrator"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	res, err := h.config.SetAdministrator(ctx, authMiddleware.Caller(c), p.Administrator)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
