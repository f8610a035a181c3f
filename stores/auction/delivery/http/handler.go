package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/delivery"
	pricefomatter "github.com/x-xyz/goauction/base/price_fomatter"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/auction"
	authMiddleware "github.com/x-xyz/goauction/stores/auth/delivery/http/middleware"
)

const defaultLimit = 100

type handler struct {
	auction   auction.Usecase
	formatter pricefomatter.PriceFormatter
}

func New(e *echo.Echo, auction auction.Usecase, formatter pricefomatter.PriceFormatter, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{auction, formatter}

	gs := e.Group("/auctions")

	gs.GET("", h.getAll)

	gs.POST("", h.create, authMiddleware.Auth())

	g := e.Group("/auctions/:contract/:tokenId")

	g.GET("", h.get)

	g.GET("/events", h.getEvents)

	g.PUT("/reservePrice", h.changeReservePrice, authMiddleware.Auth())

	g.DELETE("", h.cancel, authMiddleware.Auth())

	g.POST("/bids", h.bid, authMiddleware.Auth())

	g.POST("/claim", h.claim, authMiddleware.Auth())
}

// amountParams carries an amount either in base units or as a display amount.
type amountParams struct {
	Amount        string `json:"amount"`
	DisplayAmount string `json:"displayAmount"`
}

func (h *handler) amount(p amountParams) (domain.Amount, error) {
	switch {
	case p.Amount != "":
		return domain.ParseAmount(p.Amount)
	case p.DisplayAmount != "":
		return h.formatter.Parse(p.DisplayAmount)
	}
	return domain.Amount{}, domain.ErrInvalidNumberFormat
}

func auctionId(c echo.Context) auction.Id {
	return auction.Id{
		Contract: domain.Address(c.Param("contract")),
		TokenId:  domain.TokenId(c.Param("tokenId")),
	}
}

// getAll
//
//	@Summary		List auctions
//	@Description	List live auctions, newest first
//	@Tags			auctions
//	@Produce		json
//	@Param			contract	query		string	false	"asset contract"
//	@Param			seller		query		string	false	"seller address"
//	@Param			highBidder	query		string	false	"current high bidder"
//	@Param			started		query		bool	false	"only auctions with or without bids"
//	@Param			offset		query		int		false	"offset"
//	@Param			limit		query		int		false	"limit"
//	@Success		200			{object}	object{data=[]auction.AuctionView}
//	@Router			/auctions [get]
func (h *handler) getAll(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Contract   domain.Address `query:"contract"`
		Seller     domain.Address `query:"seller"`
		HighBidder domain.Address `query:"highBidder"`
		Started    string         `query:"started"`
		Offset     int            `query:"offset"`
		Limit      int            `query:"limit"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if p.Limit == 0 {
		p.Limit = defaultLimit
	}

	opts := []auction.FindAuctionOptions{auction.AuctionWithPagination(p.Offset, p.Limit)}
	if !p.Contract.IsEmpty() {
		opts = append(opts, auction.AuctionWithContract(p.Contract))
	}
	if !p.Seller.IsEmpty() {
		opts = append(opts, auction.AuctionWithSeller(p.Seller))
	}
	if !p.HighBidder.IsEmpty() {
		opts = append(opts, auction.AuctionWithHighBidder(p.HighBidder))
	}
	if p.Started != "" {
		started, err := strconv.ParseBool(p.Started)
		if err != nil {
			return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid started")
		}
		opts = append(opts, auction.AuctionWithStarted(started))
	}

	res, err := h.auction.FindAll(ctx, opts...)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// get
//
//	@Summary		Get auction
//	@Tags			auctions
//	@Produce		json
//	@Param			contract	path		string	true	"asset contract"
//	@Param			tokenId		path		string	true	"asset id"
//	@Success		200			{object}	object{data=auction.AuctionView}
//	@Failure		404
//	@Router			/auctions/{contract}/{tokenId} [get]
func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.auction.GetAuction(ctx, auctionId(c))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// getEvents
//
//	@Summary		List auction events
//	@Description	Events of one asset in the order they happened, across auctions
//	@Tags			auctions
//	@Produce		json
//	@Param			contract	path		string		true	"asset contract"
//	@Param			tokenId		path		string		true	"asset id"
//	@Param			kind		query		[]string	false	"event kinds"
//	@Param			since		query		int			false	"unix time lower bound"
//	@Param			offset		query		int			false	"offset"
//	@Param			limit		query		int			false	"limit"
//	@Success		200			{object}	object{data=[]auction.Event}
//	@Router			/auctions/{contract}/{tokenId}/events [get]
func (h *handler) getEvents(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Kinds  []auction.EventKind `query:"kind"`
		Since  int64               `query:"since"`
		Offset int                 `query:"offset"`
		Limit  int                 `query:"limit"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if p.Limit == 0 {
		p.Limit = defaultLimit
	}

	id := auctionId(c)
	if err := id.Validate(); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	opts := []auction.FindEventOptions{
		auction.EventWithAuction(id),
		auction.EventWithPagination(p.Offset, p.Limit),
	}
	if len(p.Kinds) > 0 {
		opts = append(opts, auction.EventWithKinds(p.Kinds...))
	}
	if p.Since > 0 {
		opts = append(opts, auction.EventWithTimeGTE(p.Since))
	}

	res, err := h.auction.FindEvents(ctx, opts...)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// create
//
//	@Summary		Create auction
//	@Description	Put an owned asset up for auction, the caller becomes the seller
//	@Tags			auctions
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			params	body		http.create.params	true	"params"
//	@Success		201		{object}	object{data=auction.AuctionView}
//	@Failure		400
//	@Failure		403
//	@Failure		409
//	@Router			/auctions [post]
func (h *handler) create(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Contract            domain.Address `json:"contract" validate:"required,address"`
		TokenId             domain.TokenId `json:"tokenId" validate:"required"`
		ReservePrice        string         `json:"reservePrice"`        // base units
		DisplayReservePrice string         `json:"displayReservePrice"` // token units, e.g. "1.5"
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}
	price, err := h.amount(amountParams{p.ReservePrice, p.DisplayReservePrice})
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	id := auction.Id{Contract: p.Contract, TokenId: p.TokenId}
	res, err := h.auction.CreateAuction(ctx, authMiddleware.Caller(c), id, price)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, res)
}

// changeReservePrice
//
//	@Summary		Change reserve price
//	@Description	Seller or administrator, only before the first bid
//	@Tags			auctions
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			contract	path		string					true	"asset contract"
//	@Param			tokenId		path		string					true	"asset id"
//	@Param			params		body		http.amountParams		true	"new reserve price"
//	@Success		200			{object}	object{data=auction.AuctionView}
//	@Failure		403
//	@Failure		409
//	@Router			/auctions/{contract}/{tokenId}/reservePrice [put]
func (h *handler) changeReservePrice(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := amountParams{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	price, err := h.amount(p)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.auction.ChangeReservePrice(ctx, authMiddleware.Caller(c), auctionId(c), price)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// cancel
//
//	@Summary		Cancel auction
//	@Description	Seller or administrator, only before the first bid
//	@Tags			auctions
//	@Security		ApiKeyAuth
//	@Param			contract	path	string	true	"asset contract"
//	@Param			tokenId		path	string	true	"asset id"
//	@Success		204
//	@Failure		403
//	@Failure		409
//	@Router			/auctions/{contract}/{tokenId} [delete]
func (h *handler) cancel(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	if err := h.auction.CancelAuction(ctx, authMiddleware.Caller(c), auctionId(c)); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// bid
//
//	@Summary		Bid
//	@Description	The amount is moved into escrow, the outbid bidder is refunded
//	@Tags			auctions
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			contract	path		string				true	"asset contract"
//	@Param			tokenId		path		string				true	"asset id"
//	@Param			params		body		http.amountParams	true	"bid amount"
//	@Success		201			{object}	object{data=auction.AuctionView}
//	@Failure		402
//	@Failure		409
//	@Failure		422
//	@Router			/auctions/{contract}/{tokenId}/bids [post]
func (h *handler) bid(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := amountParams{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	amount, err := h.amount(p)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.auction.Bid(ctx, authMiddleware.Caller(c), auctionId(c), amount)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, res)
}

// claim
//
//	@Summary		Settle auction
//	@Description	Anyone may settle a finished auction, the asset goes to the winner
//	@Tags			auctions
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			contract	path		string	true	"asset contract"
//	@Param			tokenId		path		string	true	"asset id"
//	@Success		200			{object}	object{data=settlement.Payout}
//	@Failure		402
//	@Failure		409
//	@Router			/auctions/{contract}/{tokenId}/claim [post]
func (h *handler) claim(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.auction.ClaimWonNFT(ctx, authMiddleware.Caller(c), auctionId(c))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
