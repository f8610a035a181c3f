package auction

import (
	"fmt"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/settlement"
)

// Denominator is the base of every numerator in the config.
const Denominator int64 = 10000

type Id struct {
	Contract domain.Address `json:"contract" bson:"contract"`
	TokenId  domain.TokenId `json:"tokenId" bson:"tokenId"`
}

func (id Id) ToLower() Id {
	return Id{Contract: id.Contract.ToLower(), TokenId: id.TokenId}
}

func (id Id) String() string {
	return fmt.Sprintf("%s:%s", id.Contract.ToLowerStr(), id.TokenId)
}

func (id Id) Validate() error {
	if !id.Contract.IsValid() || !id.TokenId.IsValid() {
		return domain.ErrBadParamInput
	}
	return nil
}

// Auction is the record of a running or pending auction. A record is removed
// on cancel or settlement, so at most one exists per Id.
type Auction struct {
	Contract     domain.Address `json:"contract" bson:"contract"`
	TokenId      domain.TokenId `json:"tokenId" bson:"tokenId"`
	Seller       domain.Address `json:"seller" bson:"seller"`
	ReservePrice domain.Amount  `json:"reservePrice" bson:"reservePrice"`
	HighBid      domain.Amount  `json:"highBid" bson:"highBid"`
	HighBidder   domain.Address `json:"highBidder" bson:"highBidder"`
	// EndTime is 0 until the first bid lands
	EndTime   int64 `json:"endTime" bson:"endTime"`
	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
}

func (a *Auction) ToId() Id {
	return Id{Contract: a.Contract, TokenId: a.TokenId}
}

func (a *Auction) Started() bool {
	return a.EndTime != 0
}

type Status string

const (
	StatusNotStarted Status = "notStarted"
	StatusRunning    Status = "running"
	StatusFinished   Status = "finished"
)

// StatusAt derives the status at unix time now. It is never stored.
func StatusAt(a *Auction, now int64) Status {
	switch {
	case a.EndTime == 0:
		return StatusNotStarted
	case now >= a.EndTime:
		return StatusFinished
	default:
		return StatusRunning
	}
}

// MinNextBid is the smallest amount the next bid must reach.
func MinNextBid(a *Auction, stepNumerator int64) domain.Amount {
	if !a.Started() {
		return a.ReservePrice
	}
	return a.HighBid.Add(a.HighBid.MulDivCeil(stepNumerator, Denominator))
}

// NextEndTime is the end time after a bid accepted at now. Later bids only
// move the end when they land inside the overtime window.
func NextEndTime(a *Auction, now int64, cfg *Config) int64 {
	if !a.Started() {
		return now + cfg.AuctionDuration
	}
	if extended := now + cfg.OvertimeWindow; extended > a.EndTime {
		return extended
	}
	return a.EndTime
}

// AuctionView is an auction with its derived figures at read time.
type AuctionView struct {
	*Auction
	Status            Status        `json:"status"`
	MinNextBid        domain.Amount `json:"minNextBid"`
	DisplayReserve    string        `json:"displayReservePrice"`
	DisplayHighBid    string        `json:"displayHighBid"`
	DisplayMinNextBid string        `json:"displayMinNextBid"`
}

type findAuctionOptions struct {
	Offset     *int
	Limit      *int
	Contract   *domain.Address
	Seller     *domain.Address
	HighBidder *domain.Address
	Started    *bool
}

type FindAuctionOptions func(*findAuctionOptions) error

func GetFindAuctionOptions(opts ...FindAuctionOptions) (*findAuctionOptions, error) {
	res := &findAuctionOptions{}
	for _, opt := range opts {
		if err := opt(res); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func AuctionWithPagination(offset, limit int) FindAuctionOptions {
	return func(opts *findAuctionOptions) error {
		if offset < 0 || limit < 0 {
			return domain.ErrBadParamInput
		}
		opts.Offset = &offset
		opts.Limit = &limit
		return nil
	}
}

func AuctionWithContract(contract domain.Address) FindAuctionOptions {
	return func(opts *findAuctionOptions) error {
		opts.Contract = contract.ToLowerPtr()
		return nil
	}
}

func AuctionWithSeller(seller domain.Address) FindAuctionOptions {
	return func(opts *findAuctionOptions) error {
		opts.Seller = seller.ToLowerPtr()
		return nil
	}
}

func AuctionWithHighBidder(bidder domain.Address) FindAuctionOptions {
	return func(opts *findAuctionOptions) error {
		opts.HighBidder = bidder.ToLowerPtr()
		return nil
	}
}

func AuctionWithStarted(started bool) FindAuctionOptions {
	return func(opts *findAuctionOptions) error {
		opts.Started = &started
		return nil
	}
}

type Repo interface {
	FindAll(c ctx.Ctx, opts ...FindAuctionOptions) ([]*Auction, error)
	// FindOne returns domain.ErrAuctionNotExists when there is no record
	FindOne(c ctx.Ctx, id Id) (*Auction, error)
	// Create returns domain.ErrAuctionExists when a record already holds id
	Create(c ctx.Ctx, a *Auction) error
	Update(c ctx.Ctx, a *Auction) error
	Delete(c ctx.Ctx, id Id) error
}

type Usecase interface {
	CreateAuction(c ctx.Ctx, caller domain.Address, id Id, reservePrice domain.Amount) (*AuctionView, error)
	ChangeReservePrice(c ctx.Ctx, caller domain.Address, id Id, newPrice domain.Amount) (*AuctionView, error)
	CancelAuction(c ctx.Ctx, caller domain.Address, id Id) error
	Bid(c ctx.Ctx, caller domain.Address, id Id, amount domain.Amount) (*AuctionView, error)
	ClaimWonNFT(c ctx.Ctx, caller domain.Address, id Id) (*settlement.Payout, error)
	GetAuction(c ctx.Ctx, id Id) (*AuctionView, error)
	FindAll(c ctx.Ctx, opts ...FindAuctionOptions) ([]*AuctionView, error)
	FindEvents(c ctx.Ctx, opts ...FindEventOptions) ([]*Event, error)
}
