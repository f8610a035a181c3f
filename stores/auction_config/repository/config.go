package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/database/mongoclient"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/auction"
	"github.com/x-xyz/goauction/service/query"
)

// the configuration is a singleton document
const singletonKey = "auction"

type configDoc struct {
	Key            string `bson:"key"`
	auction.Config `bson:",inline"`
}

var selector = bson.M{"key": singletonKey}

type configRepoImpl struct {
	q query.Mongo
}

func NewConfigRepo(q query.Mongo) auction.ConfigRepo {
	return &configRepoImpl{q}
}

func EnsureIndexes(c ctx.Ctx, q query.Mongo) error {
	return q.EnsureIndexes(c, domain.TableAuctionConfig, query.Index{Keys: []string{"key"}, Unique: true})
}

func (im *configRepoImpl) Get(c ctx.Ctx) (*auction.Config, error) {
	doc := &configDoc{}
	if err := im.q.FindOne(c, domain.TableAuctionConfig, selector, doc); err == query.ErrNotFound {
		return nil, domain.ErrNotInitialized
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return &doc.Config, nil
}

func (im *configRepoImpl) Create(c ctx.Ctx, cfg *auction.Config) error {
	doc := &configDoc{Key: singletonKey, Config: *cfg}
	if err := im.q.Insert(c, domain.TableAuctionConfig, doc); err == query.ErrDuplicateKey {
		return domain.ErrAlreadyInitialized
	} else if err != nil {
		c.WithField("err", err).Error("q.Insert failed")
		return err
	}
	return nil
}

func (im *configRepoImpl) Patch(c ctx.Ctx, patch *auction.ConfigPatch) error {
	updater, err := mongoclient.MakeBsonM(patch)
	if err != nil {
		c.WithField("err", err).Error("MakeBsonM failed")
		return err
	}
	if len(updater) == 0 {
		return nil
	}
	if err := im.q.Patch(c, domain.TableAuctionConfig, selector, updater); err == query.ErrNotFound {
		return domain.ErrNotInitialized
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"updater": updater,
		}).Error("q.Patch failed")
		return err
	}
	return nil
}
