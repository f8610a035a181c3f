package assetregistry

import (
	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/auction"
)

type Config struct {
	Address domain.Address `mapstructure:"address"`
	Name    string         `mapstructure:"name"`
}

// Token is the public view of one minted asset.
type Token struct {
	TokenId  domain.TokenId `json:"tokenId"`
	Owner    domain.Address `json:"owner"`
	Author   domain.Address `json:"author"`
	Approved domain.Address `json:"approved,omitempty"`
	TokenURI string         `json:"tokenUri"`
}

// Registry is a non-fungible asset contract. The minter of a token stays its
// author for good.
type Registry interface {
	Address() domain.Address
	MintWithTokenURI(c ctx.Ctx, to domain.Address, tokenURI string) (domain.TokenId, error)
	// Approve lets spender move tokenId once. caller must own it.
	Approve(c ctx.Ctx, caller, spender domain.Address, tokenId domain.TokenId) error
	SetApprovalForAll(c ctx.Ctx, owner, operator domain.Address, approved bool) error
	Burn(c ctx.Ctx, caller domain.Address, tokenId domain.TokenId) error
	Get(c ctx.Ctx, tokenId domain.TokenId) (*Token, error)
	// Client returns an AssetRegistry acting as operator
	Client(operator domain.Address) auction.AssetRegistry
}
