package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/auction"
	"github.com/x-xyz/goauction/service/query"
)

type eventRepoImpl struct {
	q query.Mongo
}

func NewEventRepo(q query.Mongo) auction.EventRepo {
	return &eventRepoImpl{q}
}

func (im *eventRepoImpl) Append(c ctx.Ctx, events ...*auction.Event) error {
	for _, e := range events {
		if err := im.q.Insert(c, domain.TableAuctionEvents, e); err != nil {
			c.WithFields(log.Fields{
				"err":   err,
				"event": e.Id,
				"kind":  e.Kind,
			}).Error("q.Insert failed")
			return err
		}
	}
	return nil
}

func makeEventQuery(opts ...auction.FindEventOptions) (bson.M, int, int, error) {
	options, err := auction.GetFindEventOptions(opts...)
	if err != nil {
		return nil, 0, 0, err
	}
	query := bson.M{}

	if options.Contract != nil {
		query["contract"] = *options.Contract
	}

	if options.TokenId != nil {
		query["tokenId"] = *options.TokenId
	}

	if len(options.Kinds) > 0 {
		query["kind"] = bson.M{"$in": options.Kinds}
	}

	if options.TimeGTE != nil {
		query["timestamp"] = bson.M{"$gte": *options.TimeGTE}
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

func (im *eventRepoImpl) FindAll(c ctx.Ctx, opts ...auction.FindEventOptions) ([]*auction.Event, error) {
	query, offset, limit, err := makeEventQuery(opts...)
	if err != nil {
		c.WithField("err", err).Error("makeEventQuery failed")
		return nil, err
	}

	res := []*auction.Event{}
	// _id breaks ties inside one ledger second in insertion order
	if err := im.q.SearchNSorts(c, domain.TableAuctionEvents, offset, limit, []string{"timestamp", "_id"}, query, &res); err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"query": query,
		}).Error("q.SearchNSorts failed")
		return nil, err
	}
	return res, nil
}
