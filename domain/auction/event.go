package auction

import (
	"github.com/google/uuid"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/settlement"
)

type EventKind string

const (
	EventAuctionCreated      EventKind = "AuctionCreated"
	EventReservePriceChanged EventKind = "ReservePriceChanged"
	EventAuctionCanceled     EventKind = "AuctionCanceled"
	EventBidSubmitted        EventKind = "BidSubmitted"
	EventAuctionSettled      EventKind = "AuctionSettled"

	EventOvertimeWindowSet         EventKind = "OvertimeWindowSet"
	EventAuctionDurationSet        EventKind = "AuctionDurationSet"
	EventMinPriceStepNumeratorSet  EventKind = "MinPriceStepNumeratorSet"
	EventAuthorRoyaltyNumeratorSet EventKind = "AuthorRoyaltyNumeratorSet"
	EventAdministratorSet          EventKind = "AdministratorSet"
)

var fieldEventKinds = map[ConfigField]EventKind{
	FieldOvertimeWindow:         EventOvertimeWindowSet,
	FieldAuctionDuration:        EventAuctionDurationSet,
	FieldMinPriceStepNumerator:  EventMinPriceStepNumeratorSet,
	FieldAuthorRoyaltyNumerator: EventAuthorRoyaltyNumeratorSet,
	FieldAdministrator:          EventAdministratorSet,
}

// Event is one entry of the append-only log. Only the fields of its kind
// are set.
type Event struct {
	Id        string    `json:"id" bson:"id"`
	Kind      EventKind `json:"kind" bson:"kind"`
	Timestamp int64     `json:"timestamp" bson:"timestamp"`

	Contract domain.Address `json:"contract,omitempty" bson:"contract,omitempty"`
	TokenId  domain.TokenId `json:"tokenId,omitempty" bson:"tokenId,omitempty"`
	Seller   domain.Address `json:"seller,omitempty" bson:"seller,omitempty"`
	Canceler domain.Address `json:"canceler,omitempty" bson:"canceler,omitempty"`
	Bidder   domain.Address `json:"bidder,omitempty" bson:"bidder,omitempty"`
	Winner   domain.Address `json:"winner,omitempty" bson:"winner,omitempty"`
	Author   domain.Address `json:"author,omitempty" bson:"author,omitempty"`

	ReservePrice   *domain.Amount `json:"reservePrice,omitempty" bson:"reservePrice,omitempty"`
	Amount         *domain.Amount `json:"amount,omitempty" bson:"amount,omitempty"`
	Royalty        *domain.Amount `json:"royalty,omitempty" bson:"royalty,omitempty"`
	SellerProceeds *domain.Amount `json:"sellerProceeds,omitempty" bson:"sellerProceeds,omitempty"`
	EndTime        int64          `json:"endTime,omitempty" bson:"endTime,omitempty"`

	Field         ConfigField    `json:"field,omitempty" bson:"field,omitempty"`
	Value         *int64         `json:"value,omitempty" bson:"value,omitempty"`
	Administrator domain.Address `json:"administrator,omitempty" bson:"administrator,omitempty"`
}

func newEvent(kind EventKind, now int64) *Event {
	return &Event{
		Id:        uuid.New().String(),
		Kind:      kind,
		Timestamp: now,
	}
}

func amountPtr(a domain.Amount) *domain.Amount {
	return &a
}

func NewAuctionCreated(a *Auction, now int64) *Event {
	e := newEvent(EventAuctionCreated, now)
	e.Contract = a.Contract
	e.TokenId = a.TokenId
	e.Seller = a.Seller
	e.ReservePrice = amountPtr(a.ReservePrice)
	return e
}

func NewReservePriceChanged(a *Auction, now int64) *Event {
	e := newEvent(EventReservePriceChanged, now)
	e.Contract = a.Contract
	e.TokenId = a.TokenId
	e.ReservePrice = amountPtr(a.ReservePrice)
	return e
}

func NewAuctionCanceled(id Id, canceler domain.Address, now int64) *Event {
	e := newEvent(EventAuctionCanceled, now)
	e.Contract = id.Contract
	e.TokenId = id.TokenId
	e.Canceler = canceler
	return e
}

// NewBidSubmitted is built from the record after the bid was applied.
func NewBidSubmitted(a *Auction, now int64) *Event {
	e := newEvent(EventBidSubmitted, now)
	e.Contract = a.Contract
	e.TokenId = a.TokenId
	e.Bidder = a.HighBidder
	e.Amount = amountPtr(a.HighBid)
	e.EndTime = a.EndTime
	return e
}

func NewAuctionSettled(id Id, p *settlement.Payout, now int64) *Event {
	e := newEvent(EventAuctionSettled, now)
	e.Contract = id.Contract
	e.TokenId = id.TokenId
	e.Seller = p.Seller
	e.Winner = p.Winner
	e.Author = p.Author
	e.Amount = amountPtr(p.Amount)
	e.Royalty = amountPtr(p.Royalty)
	e.SellerProceeds = amountPtr(p.SellerProceeds)
	return e
}

func NewConfigSet(field ConfigField, value int64, now int64) *Event {
	e := newEvent(fieldEventKinds[field], now)
	e.Field = field
	e.Value = &value
	return e
}

func NewAdministratorSet(admin domain.Address, now int64) *Event {
	e := newEvent(EventAdministratorSet, now)
	e.Field = FieldAdministrator
	e.Administrator = admin
	return e
}

type findEventOptions struct {
	Offset   *int
	Limit    *int
	Contract *domain.Address
	TokenId  *domain.TokenId
	Kinds    []EventKind
	TimeGTE  *int64
}

type FindEventOptions func(*findEventOptions) error

func GetFindEventOptions(opts ...FindEventOptions) (*findEventOptions, error) {
	res := &findEventOptions{}
	for _, opt := range opts {
		if err := opt(res); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func EventWithPagination(offset, limit int) FindEventOptions {
	return func(opts *findEventOptions) error {
		if offset < 0 || limit < 0 {
			return domain.ErrBadParamInput
		}
		opts.Offset = &offset
		opts.Limit = &limit
		return nil
	}
}

func EventWithAuction(id Id) FindEventOptions {
	return func(opts *findEventOptions) error {
		opts.Contract = id.Contract.ToLowerPtr()
		opts.TokenId = &id.TokenId
		return nil
	}
}

func EventWithKinds(kinds ...EventKind) FindEventOptions {
	return func(opts *findEventOptions) error {
		opts.Kinds = kinds
		return nil
	}
}

func EventWithTimeGTE(t int64) FindEventOptions {
	return func(opts *findEventOptions) error {
		opts.TimeGTE = &t
		return nil
	}
}

type EventRepo interface {
	Append(c ctx.Ctx, events ...*Event) error
	// FindAll returns events in the order they were appended
	FindAll(c ctx.Ctx, opts ...FindEventOptions) ([]*Event, error)
}

// Observer receives events after they were committed.
type Observer interface {
	Name() string
	Notify(c ctx.Ctx, e *Event) error
}

// Publisher hands committed events to observers without blocking the caller.
type Publisher interface {
	Publish(c ctx.Ctx, events ...*Event)
}
