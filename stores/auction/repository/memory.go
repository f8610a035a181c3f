package repository

import (
	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/database/memdb"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/auction"
)

type memAuctionRepo struct {
	db *memdb.DB
}

// NewMemoryAuctionRepo keeps auctions in db. Pair it with db as the
// domain.Transactor.
func NewMemoryAuctionRepo(db *memdb.DB) auction.Repo {
	return &memAuctionRepo{db}
}

func (im *memAuctionRepo) FindAll(c ctx.Ctx, opts ...auction.FindAuctionOptions) ([]*auction.Auction, error) {
	options, err := auction.GetFindAuctionOptions(opts...)
	if err != nil {
		c.WithField("err", err).Error("GetFindAuctionOptions failed")
		return nil, err
	}

	all := []*auction.Auction{}
	err = im.db.Scan(c, domain.TableAuctions, func(decode func(interface{}) error) (bool, error) {
		a := &auction.Auction{}
		if err := decode(a); err != nil {
			return false, err
		}
		if matchAuction(options.Contract, options.Seller, options.HighBidder, options.Started, a) {
			all = append(all, a)
		}
		return true, nil
	})
	if err != nil {
		c.WithField("err", err).Error("db.Scan failed")
		return nil, err
	}

	// newest first, like the mongo repo
	for i, j := 0, len(all)-1; i < j; i, j = i+1, j-1 {
		all[i], all[j] = all[j], all[i]
	}
	start, end := window(len(all), options.Offset, options.Limit)
	return all[start:end], nil
}

func matchAuction(contract, seller, bidder *domain.Address, started *bool, a *auction.Auction) bool {
	if contract != nil && *contract != a.Contract {
		return false
	}
	if seller != nil && *seller != a.Seller.ToLower() {
		return false
	}
	if bidder != nil && *bidder != a.HighBidder.ToLower() {
		return false
	}
	if started != nil && *started != a.Started() {
		return false
	}
	return true
}

func (im *memAuctionRepo) FindOne(c ctx.Ctx, id auction.Id) (*auction.Auction, error) {
	res := &auction.Auction{}
	if err := im.db.Get(c, domain.TableAuctions, id.String(), res); err == memdb.ErrNotFound {
		return nil, domain.ErrAuctionNotExists
	} else if err != nil {
		c.WithFields(log.Fields{"err": err, "id": id}).Error("db.Get failed")
		return nil, err
	}
	return res, nil
}

func (im *memAuctionRepo) Create(c ctx.Ctx, a *auction.Auction) error {
	a.Contract = a.Contract.ToLower()
	if err := im.db.Insert(c, domain.TableAuctions, a.ToId().String(), a); err == memdb.ErrDuplicateKey {
		return domain.ErrAuctionExists
	} else if err != nil {
		return err
	}
	return nil
}

func (im *memAuctionRepo) Update(c ctx.Ctx, a *auction.Auction) error {
	if err := im.db.Update(c, domain.TableAuctions, a.ToId().String(), a); err == memdb.ErrNotFound {
		return domain.ErrAuctionNotExists
	} else if err != nil {
		return err
	}
	return nil
}

func (im *memAuctionRepo) Delete(c ctx.Ctx, id auction.Id) error {
	if err := im.db.Delete(c, domain.TableAuctions, id.String()); err == memdb.ErrNotFound {
		return domain.ErrAuctionNotExists
	} else if err != nil {
		return err
	}
	return nil
}

type memEventRepo struct {
	db *memdb.DB
}

func NewMemoryEventRepo(db *memdb.DB) auction.EventRepo {
	return &memEventRepo{db}
}

func (im *memEventRepo) Append(c ctx.Ctx, events ...*auction.Event) error {
	for _, e := range events {
		if err := im.db.Insert(c, domain.TableAuctionEvents, e.Id, e); err != nil {
			c.WithFields(log.Fields{"err": err, "event": e.Id}).Error("db.Insert failed")
			return err
		}
	}
	return nil
}

func (im *memEventRepo) FindAll(c ctx.Ctx, opts ...auction.FindEventOptions) ([]*auction.Event, error) {
	options, err := auction.GetFindEventOptions(opts...)
	if err != nil {
		c.WithField("err", err).Error("GetFindEventOptions failed")
		return nil, err
	}

	kinds := map[auction.EventKind]bool{}
	for _, k := range options.Kinds {
		kinds[k] = true
	}

	res := []*auction.Event{}
	err = im.db.Scan(c, domain.TableAuctionEvents, func(decode func(interface{}) error) (bool, error) {
		e := &auction.Event{}
		if err := decode(e); err != nil {
			return false, err
		}
		switch {
		case options.Contract != nil && *options.Contract != e.Contract.ToLower():
		case options.TokenId != nil && *options.TokenId != e.TokenId:
		case len(kinds) > 0 && !kinds[e.Kind]:
		case options.TimeGTE != nil && e.Timestamp < *options.TimeGTE:
		default:
			res = append(res, e)
		}
		return true, nil
	})
	if err != nil {
		c.WithField("err", err).Error("db.Scan failed")
		return nil, err
	}
	start, end := window(len(res), options.Offset, options.Limit)
	return res[start:end], nil
}
