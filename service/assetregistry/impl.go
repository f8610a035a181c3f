package assetregistry

import (
	"strconv"
	"sync"

	"golang.org/x/xerrors"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/auction"
)

type token struct {
	owner    domain.Address
	author   domain.Address
	approved domain.Address
	uri      string
	// approval cleared by the latest custody transfer
	prevApproved domain.Address
}

type impl struct {
	cfg       Config
	mu        sync.Mutex
	lastId    int64
	tokens    map[domain.TokenId]*token
	operators map[domain.Address]map[domain.Address]bool
}

// New returns an in-process registry. Token ids start at 1.
func New(cfg Config) Registry {
	cfg.Address = cfg.Address.ToLower()
	return &impl{
		cfg:       cfg,
		tokens:    map[domain.TokenId]*token{},
		operators: map[domain.Address]map[domain.Address]bool{},
	}
}

func (im *impl) Address() domain.Address {
	return im.cfg.Address
}

func (im *impl) MintWithTokenURI(c ctx.Ctx, to domain.Address, tokenURI string) (domain.TokenId, error) {
	if to.IsZero() {
		return "", domain.ErrZeroAddress
	}
	if tokenURI == "" {
		return "", domain.ErrEmptyMetadata
	}
	im.mu.Lock()
	defer im.mu.Unlock()

	im.lastId++
	id := domain.TokenId(strconv.FormatInt(im.lastId, 10))
	im.tokens[id] = &token{owner: to.ToLower(), author: to.ToLower(), uri: tokenURI}
	c.WithFields(log.Fields{"to": to, "tokenId": id}).Info("asset minted")
	return id, nil
}

func (im *impl) lookup(tokenId domain.TokenId) (*token, error) {
	t, ok := im.tokens[tokenId]
	if !ok {
		return nil, xerrors.Errorf("token %s: %w", tokenId, domain.ErrUnknownAsset)
	}
	return t, nil
}

func (im *impl) Approve(c ctx.Ctx, caller, spender domain.Address, tokenId domain.TokenId) error {
	im.mu.Lock()
	defer im.mu.Unlock()
	t, err := im.lookup(tokenId)
	if err != nil {
		return err
	}
	if !caller.Equals(t.owner) && !im.operators[t.owner][caller.ToLower()] {
		return domain.ErrNotAssetOwner
	}
	t.approved = spender.ToLower()
	return nil
}

func (im *impl) SetApprovalForAll(c ctx.Ctx, owner, operator domain.Address, approved bool) error {
	if owner.IsZero() || operator.IsZero() {
		return domain.ErrZeroAddress
	}
	im.mu.Lock()
	defer im.mu.Unlock()
	owner = owner.ToLower()
	if im.operators[owner] == nil {
		im.operators[owner] = map[domain.Address]bool{}
	}
	im.operators[owner][operator.ToLower()] = approved
	return nil
}

func (im *impl) Burn(c ctx.Ctx, caller domain.Address, tokenId domain.TokenId) error {
	im.mu.Lock()
	defer im.mu.Unlock()
	t, err := im.lookup(tokenId)
	if err != nil {
		return err
	}
	if !caller.Equals(t.owner) {
		return domain.ErrNotAssetOwner
	}
	delete(im.tokens, tokenId)
	return nil
}

func (im *impl) Get(c ctx.Ctx, tokenId domain.TokenId) (*Token, error) {
	im.mu.Lock()
	defer im.mu.Unlock()
	t, err := im.lookup(tokenId)
	if err != nil {
		return nil, err
	}
	return &Token{
		TokenId:  tokenId,
		Owner:    t.owner,
		Author:   t.author,
		Approved: t.approved,
		TokenURI: t.uri,
	}, nil
}

func (im *impl) Client(operator domain.Address) auction.AssetRegistry {
	return &client{registry: im, operator: operator.ToLower()}
}

type client struct {
	registry *impl
	operator domain.Address
}

func (cl *client) IsRegistry(asset domain.Address) bool {
	return asset.Equals(cl.registry.cfg.Address)
}

func (cl *client) OwnerOf(c ctx.Ctx, tokenId domain.TokenId) (domain.Address, error) {
	t, err := cl.registry.Get(c, tokenId)
	if err != nil {
		return "", err
	}
	return t.Owner, nil
}

func (cl *client) AuthorOf(c ctx.Ctx, tokenId domain.TokenId) (domain.Address, error) {
	t, err := cl.registry.Get(c, tokenId)
	if err != nil {
		return "", err
	}
	return t.Author, nil
}

func (cl *client) TransferCustody(c ctx.Ctx, asset domain.Address, tokenId domain.TokenId, from, to domain.Address) error {
	return cl.transfer(c, asset, tokenId, from, to, true)
}

func (cl *client) RevertCustody(c ctx.Ctx, asset domain.Address, tokenId domain.TokenId, from, to domain.Address) error {
	return cl.transfer(c, asset, tokenId, from, to, false)
}

func (cl *client) transfer(c ctx.Ctx, asset domain.Address, tokenId domain.TokenId, from, to domain.Address, checkApproval bool) error {
	if !cl.IsRegistry(asset) {
		return xerrors.Errorf("asset %s: %w", asset, domain.ErrUnknownAsset)
	}
	if to.IsZero() {
		return domain.ErrZeroAddress
	}
	im := cl.registry
	im.mu.Lock()
	defer im.mu.Unlock()

	t, err := im.lookup(tokenId)
	if err != nil {
		return err
	}
	if !from.Equals(t.owner) {
		return xerrors.Errorf("%s does not own %s: %w", from, tokenId, domain.ErrNotAssetOwner)
	}
	if checkApproval {
		approved := cl.operator.Equals(t.owner) || cl.operator.Equals(t.approved) || im.operators[t.owner][cl.operator]
		if !approved {
			return xerrors.Errorf("%s may not move %s: %w", cl.operator, tokenId, domain.ErrNotApproved)
		}
	}
	t.owner = to.ToLower()
	if checkApproval {
		t.prevApproved, t.approved = t.approved, ""
	} else {
		t.approved, t.prevApproved = t.prevApproved, ""
	}
	return nil
}
