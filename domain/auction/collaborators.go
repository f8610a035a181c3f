package auction

import (
	"time"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/domain"
)

// TokenLedger moves fungible tokens. A client is bound to the escrow account:
// Transfer pays out of escrow.
type TokenLedger interface {
	TransferFrom(c ctx.Ctx, payer, payee domain.Address, amount domain.Amount) error
	Transfer(c ctx.Ctx, payee domain.Address, amount domain.Amount) error
	// Revert books a reversing entry moving amount back from `from` to `to`.
	Revert(c ctx.Ctx, from, to domain.Address, amount domain.Amount) error
	// RevertFrom undoes TransferFrom(payer, payee, amount) and restores the
	// allowance payer granted the client's account.
	RevertFrom(c ctx.Ctx, payer, payee domain.Address, amount domain.Amount) error
}

// AssetRegistry owns custody of non-fungible assets.
type AssetRegistry interface {
	IsRegistry(asset domain.Address) bool
	OwnerOf(c ctx.Ctx, tokenId domain.TokenId) (domain.Address, error)
	// AuthorOf returns domain.ErrUnknownAsset when tokenId was never minted
	AuthorOf(c ctx.Ctx, tokenId domain.TokenId) (domain.Address, error)
	TransferCustody(c ctx.Ctx, asset domain.Address, tokenId domain.TokenId, from, to domain.Address) error
	// RevertCustody undoes the latest TransferCustody of tokenId, restoring its
	// approval, and needs none itself.
	RevertCustody(c ctx.Ctx, asset domain.Address, tokenId domain.TokenId, from, to domain.Address) error
}

// Clock is the ledger clock in unix seconds.
type Clock interface {
	Now() int64
}

type ClockFunc func() int64

func (f ClockFunc) Now() int64 {
	return f()
}

var SystemClock Clock = ClockFunc(func() int64 {
	return time.Now().Unix()
})
