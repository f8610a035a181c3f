package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/auction"
	"github.com/x-xyz/goauction/service/query"
)

type auctionRepoImpl struct {
	q query.Mongo
}

func NewAuctionRepo(q query.Mongo) auction.Repo {
	return &auctionRepoImpl{q}
}

// EnsureIndexes creates the indexes the auction tables rely on. The unique
// index on the auction id backs ErrAuctionExists.
func EnsureIndexes(c ctx.Ctx, q query.Mongo) error {
	if err := q.EnsureIndexes(c, domain.TableAuctions,
		query.Index{Keys: []string{"contract", "tokenId"}, Unique: true},
		query.Index{Keys: []string{"seller", "-createdAt"}},
		query.Index{Keys: []string{"highBidder", "-createdAt"}},
		query.Index{Keys: []string{"-createdAt"}},
	); err != nil {
		return err
	}
	return q.EnsureIndexes(c, domain.TableAuctionEvents,
		query.Index{Keys: []string{"id"}, Unique: true},
		query.Index{Keys: []string{"contract", "tokenId", "timestamp"}},
		query.Index{Keys: []string{"kind", "timestamp"}},
		query.Index{Keys: []string{"timestamp"}},
	)
}

func idSelector(id auction.Id) bson.M {
	return bson.M{
		"contract": id.Contract.ToLower(),
		"tokenId":  id.TokenId,
	}
}

func (im *auctionRepoImpl) makeQuery(opts ...auction.FindAuctionOptions) (bson.M, int, int, error) {
	options, err := auction.GetFindAuctionOptions(opts...)
	if err != nil {
		return nil, 0, 0, err
	}
	query := bson.M{}

	if options.Contract != nil {
		query["contract"] = *options.Contract
	}

	if options.Seller != nil {
		query["seller"] = *options.Seller
	}

	if options.HighBidder != nil {
		query["highBidder"] = *options.HighBidder
	}

	if options.Started != nil {
		if *options.Started {
			query["endTime"] = bson.M{"$gt": 0}
		} else {
			query["endTime"] = 0
		}
	}

	offset, limit := 0, 0
	if options.Offset != nil {
		offset = *options.Offset
	}
	if options.Limit != nil {
		limit = *options.Limit
	}
	return query, offset, limit, nil
}

func (im *auctionRepoImpl) FindAll(c ctx.Ctx, opts ...auction.FindAuctionOptions) ([]*auction.Auction, error) {
	query, offset, limit, err := im.makeQuery(opts...)
	if err != nil {
		c.WithField("err", err).Error("makeQuery failed")
		return nil, err
	}

	res := []*auction.Auction{}
	if err := im.q.Search(c, domain.TableAuctions, offset, limit, "-createdAt", query, &res); err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"query": query,
		}).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}

func (im *auctionRepoImpl) FindOne(c ctx.Ctx, id auction.Id) (*auction.Auction, error) {
	res := &auction.Auction{}
	if err := im.q.FindOne(c, domain.TableAuctions, idSelector(id), res); err == query.ErrNotFound {
		return nil, domain.ErrAuctionNotExists
	} else if err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}

func (im *auctionRepoImpl) Create(c ctx.Ctx, a *auction.Auction) error {
	a.Contract = a.Contract.ToLower()
	if err := im.q.Insert(c, domain.TableAuctions, a); err == query.ErrDuplicateKey {
		return domain.ErrAuctionExists
	} else if err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"id":  a.ToId(),
		}).Error("q.Insert failed")
		return err
	}
	return nil
}

func (im *auctionRepoImpl) Update(c ctx.Ctx, a *auction.Auction) error {
	if err := im.q.Patch(c, domain.TableAuctions, idSelector(a.ToId()), a); err == query.ErrNotFound {
		return domain.ErrAuctionNotExists
	} else if err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"id":  a.ToId(),
		}).Error("q.Patch failed")
		return err
	}
	return nil
}

func (im *auctionRepoImpl) Delete(c ctx.Ctx, id auction.Id) error {
	if err := im.q.Remove(c, domain.TableAuctions, idSelector(id)); err == query.ErrNotFound {
		return domain.ErrAuctionNotExists
	} else if err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("q.Remove failed")
		return err
	}
	return nil
}
