package repository

import (
	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/database/memdb"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/auction"
)

type memConfigRepo struct {
	db *memdb.DB
}

func NewMemoryConfigRepo(db *memdb.DB) auction.ConfigRepo {
	return &memConfigRepo{db}
}

func (im *memConfigRepo) Get(c ctx.Ctx) (*auction.Config, error) {
	cfg := &auction.Config{}
	if err := im.db.Get(c, domain.TableAuctionConfig, singletonKey, cfg); err == memdb.ErrNotFound {
		return nil, domain.ErrNotInitialized
	} else if err != nil {
		c.WithField("err", err).Error("db.Get failed")
		return nil, err
	}
	return cfg, nil
}

func (im *memConfigRepo) Create(c ctx.Ctx, cfg *auction.Config) error {
	if err := im.db.Insert(c, domain.TableAuctionConfig, singletonKey, cfg); err == memdb.ErrDuplicateKey {
		return domain.ErrAlreadyInitialized
	} else if err != nil {
		c.WithField("err", err).Error("db.Insert failed")
		return err
	}
	return nil
}

func (im *memConfigRepo) Patch(c ctx.Ctx, patch *auction.ConfigPatch) error {
	cfg, err := im.Get(c)
	if err != nil {
		return err
	}
	patch.Apply(cfg)
	return im.db.Update(c, domain.TableAuctionConfig, singletonKey, cfg)
}
