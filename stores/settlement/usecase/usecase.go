package usecase

import (
	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/base/metrics"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/auction"
	"github.com/x-xyz/goauction/domain/keys"
	"github.com/x-xyz/goauction/domain/settlement"
	"github.com/x-xyz/goauction/service/cache"
)

var met = metrics.New("settlement")

type SettlementUseCaseCfg struct {
	TokenLedger   auction.TokenLedger
	AssetRegistry auction.AssetRegistry
	// Escrow is the account TokenLedger pays out of and AssetRegistry holds
	// listed assets for
	Escrow domain.Address
	// AuthorCache is optional. Authors of record never change, so a hit is
	// always valid.
	AuthorCache cache.Service
}

type impl struct {
	ledger   auction.TokenLedger
	registry auction.AssetRegistry
	escrow   domain.Address
	authors  cache.Service
}

func New(cfg *SettlementUseCaseCfg) settlement.Usecase {
	return &impl{
		ledger:   cfg.TokenLedger,
		registry: cfg.AssetRegistry,
		escrow:   cfg.Escrow.ToLower(),
		authors:  cfg.AuthorCache,
	}
}

func (im *impl) Deposit(c ctx.Ctx, o settlement.CustodyOrder) (*settlement.Journal, error) {
	defer met.BumpTime("deposit.time").End()
	return im.custody(c, o, o.Seller.ToLower(), im.escrow)
}

func (im *impl) Withdraw(c ctx.Ctx, o settlement.CustodyOrder) (*settlement.Journal, error) {
	defer met.BumpTime("withdraw.time").End()
	return im.custody(c, o, im.escrow, o.Seller.ToLower())
}

func (im *impl) custody(c ctx.Ctx, o settlement.CustodyOrder, from, to domain.Address) (*settlement.Journal, error) {
	j := &settlement.Journal{}
	if err := im.apply(c, j, settlement.Entry{
		Kind:     settlement.EntryCustody,
		From:     from,
		To:       to,
		Contract: o.Contract.ToLower(),
		TokenId:  o.TokenId,
	}); err != nil {
		return nil, err
	}
	return j, nil
}

func (im *impl) Escrow(c ctx.Ctx, t settlement.BidTransfer) (*settlement.Journal, error) {
	defer met.BumpTime("escrow.time").End()

	raise := t.Bidder.Equals(t.PrevBidder) && !t.PrevAmount.IsZero()
	debit := t.Amount
	if raise {
		debit = t.Amount.Sub(t.PrevAmount)
	}

	j := &settlement.Journal{}
	if !debit.IsZero() {
		if err := im.apply(c, j, settlement.Entry{
			Kind:   settlement.EntryDebit,
			From:   t.Bidder.ToLower(),
			To:     im.escrow,
			Amount: debit,
		}); err != nil {
			return nil, err
		}
	}

	if raise || t.PrevBidder.IsZero() || t.PrevAmount.IsZero() {
		return j, nil
	}
	if err := im.apply(c, j, settlement.Entry{
		Kind:   settlement.EntryCredit,
		From:   im.escrow,
		To:     t.PrevBidder.ToLower(),
		Amount: t.PrevAmount,
	}); err != nil {
		return nil, err
	}
	return j, nil
}

func (im *impl) Settle(c ctx.Ctx, o settlement.SettleOrder) (*settlement.Payout, *settlement.Journal, error) {
	defer met.BumpTime("settle.time").End()

	author, err := im.authorOf(c, o.Contract, o.TokenId)
	if err != nil {
		c.WithFields(log.Fields{
			"contract": o.Contract,
			"tokenId":  o.TokenId,
			"err":      err,
		}).Error("authorOf failed")
		return nil, nil, err
	}

	royalty, proceeds := settlement.Split(o.Amount, o.RoyaltyNumerator)
	payout := &settlement.Payout{
		Winner:         o.Winner.ToLower(),
		Seller:         o.Seller.ToLower(),
		Author:         author,
		Amount:         o.Amount,
		Royalty:        royalty,
		SellerProceeds: proceeds,
	}

	entries := []settlement.Entry{{
		Kind:     settlement.EntryCustody,
		From:     im.escrow,
		To:       payout.Winner,
		Contract: o.Contract.ToLower(),
		TokenId:  o.TokenId,
	}}
	if author.Equals(payout.Seller) {
		entries = append(entries, im.credit(payout.Seller, o.Amount)...)
	} else {
		entries = append(entries, im.credit(author, royalty)...)
		entries = append(entries, im.credit(payout.Seller, proceeds)...)
	}

	j := &settlement.Journal{}
	for _, e := range entries {
		if err := im.apply(c, j, e); err != nil {
			return nil, nil, err
		}
	}
	return payout, j, nil
}

func (im *impl) credit(to domain.Address, amount domain.Amount) []settlement.Entry {
	if amount.IsZero() {
		return nil
	}
	return []settlement.Entry{{
		Kind:   settlement.EntryCredit,
		From:   im.escrow,
		To:     to,
		Amount: amount,
	}}
}

func (im *impl) authorOf(c ctx.Ctx, contract domain.Address, tokenId domain.TokenId) (domain.Address, error) {
	getter := func() (interface{}, error) {
		author, err := im.registry.AuthorOf(c, tokenId)
		if err != nil {
			return nil, err
		}
		author = author.ToLower()
		return &author, nil
	}

	if im.authors == nil {
		v, err := getter()
		if err != nil {
			return "", err
		}
		return *v.(*domain.Address), nil
	}

	var author domain.Address
	key := keys.CustomKey(":", contract.ToLowerStr(), tokenId.String())
	if err := im.authors.GetByFunc(c, key, &author, getter); err != nil {
		return "", err
	}
	return author, nil
}

// apply performs e and records it in j. On failure everything already in j is
// reverted and a *settlement.TransferError is returned.
func (im *impl) apply(c ctx.Ctx, j *settlement.Journal, e settlement.Entry) error {
	var err error
	switch e.Kind {
	case settlement.EntryDebit:
		err = im.ledger.TransferFrom(c, e.From, e.To, e.Amount)
	case settlement.EntryCredit:
		err = im.ledger.Transfer(c, e.To, e.Amount)
	case settlement.EntryCustody:
		err = im.registry.TransferCustody(c, e.Contract, e.TokenId, e.From, e.To)
	default:
		err = domain.ErrBadParamInput
	}
	if err == nil {
		j.Append(e)
		return nil
	}

	met.BumpSum("movement.err", 1, "kind", string(e.Kind))
	c.WithFields(log.Fields{
		"kind":    e.Kind,
		"from":    e.From,
		"to":      e.To,
		"amount":  e.Amount.String(),
		"tokenId": e.TokenId,
		"err":     err,
	}).Warn("movement failed")

	if rerr := im.Revert(c, j); rerr != nil {
		c.WithField("err", rerr).Error("Revert failed")
	}
	return &settlement.TransferError{Entry: e, Cause: err}
}

func (im *impl) Revert(c ctx.Ctx, j *settlement.Journal) error {
	if j == nil {
		return nil
	}
	var firstErr error
	for i := len(j.Entries) - 1; i >= 0; i-- {
		e := j.Entries[i]
		var err error
		switch e.Kind {
		case settlement.EntryCustody:
			err = im.registry.RevertCustody(c, e.Contract, e.TokenId, e.To, e.From)
		case settlement.EntryDebit:
			err = im.ledger.RevertFrom(c, e.From, e.To, e.Amount)
		default:
			err = im.ledger.Revert(c, e.To, e.From, e.Amount)
		}
		if err != nil {
			met.BumpSum("revert.err", 1, "kind", string(e.Kind))
			c.WithFields(log.Fields{
				"kind": e.Kind,
				"from": e.To,
				"to":   e.From,
				"err":  err,
			}).Error("reverting entry failed")
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	// a journal is reverted at most once
	j.Entries = nil
	return firstErr
}
