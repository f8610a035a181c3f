package tokenledger

import (
	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/auction"
)

type Config struct {
	Address  domain.Address `mapstructure:"address"`
	Symbol   string         `mapstructure:"symbol"`
	Decimals int32          `mapstructure:"decimals"`
}

// Ledger is a fungible token with balances and allowances.
type Ledger interface {
	Address() domain.Address
	Symbol() string
	Decimals() int32
	Mint(c ctx.Ctx, to domain.Address, amount domain.Amount) error
	Approve(c ctx.Ctx, owner, spender domain.Address, amount domain.Amount) error
	BalanceOf(c ctx.Ctx, account domain.Address) domain.Amount
	Allowance(c ctx.Ctx, owner, spender domain.Address) domain.Amount
	// Client returns a TokenLedger acting as account
	Client(account domain.Address) auction.TokenLedger
}
