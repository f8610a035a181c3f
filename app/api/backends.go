package main

import (
	"time"

	"github.com/spf13/viper"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/database/memdb"
	"github.com/x-xyz/goauction/base/database/mongoclient"
	"github.com/x-xyz/goauction/base/database/redisclient"
	"github.com/x-xyz/goauction/base/metrics"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/auction"
	"github.com/x-xyz/goauction/domain/keys"
	"github.com/x-xyz/goauction/service/cache"
	"github.com/x-xyz/goauction/service/cache/provider"
	"github.com/x-xyz/goauction/service/cache/provider/compound"
	"github.com/x-xyz/goauction/service/cache/provider/primitive"
	redisprovider "github.com/x-xyz/goauction/service/cache/provider/redis"
	"github.com/x-xyz/goauction/service/lock"
	"github.com/x-xyz/goauction/service/query"
	"github.com/x-xyz/goauction/service/redis"
	auction_repository "github.com/x-xyz/goauction/stores/auction/repository"
	config_repository "github.com/x-xyz/goauction/stores/auction_config/repository"
)

const (
	storageMemory = "memory"
	storageMongo  = "mongo"
	lockRedis     = "redis"
)

type storage struct {
	mongo      *mongoclient.Client
	transactor domain.Transactor
	auctions   auction.Repo
	events     auction.EventRepo
	config     auction.ConfigRepo
}

// mustInitStorage builds the repositories for storage.type, memory or mongo.
func mustInitStorage(c ctx.Ctx) *storage {
	switch t := viper.GetString("storage.type"); t {
	case storageMongo:
		c.Info("init mongo")
		mongoCfg := mongoclient.Config{}
		if err := viper.UnmarshalKey("mongo", &mongoCfg); err != nil {
			c.WithField("err", err).Panic("viper.UnmarshalKey mongo failed")
		}
		client := mongoclient.MustConnectMongoClient(mongoCfg)
		q := query.New(client, viper.GetBool("mongo.checkIndex"))
		if err := auction_repository.EnsureIndexes(c, q); err != nil {
			c.WithField("err", err).Panic("auction_repository.EnsureIndexes failed")
		}
		if err := config_repository.EnsureIndexes(c, q); err != nil {
			c.WithField("err", err).Panic("config_repository.EnsureIndexes failed")
		}
		return &storage{
			mongo:      client,
			transactor: q,
			auctions:   auction_repository.NewAuctionRepo(q),
			events:     auction_repository.NewEventRepo(q),
			config:     config_repository.NewConfigRepo(q),
		}
	case storageMemory, "":
		c.Info("init memory storage")
		db := memdb.New()
		return &storage{
			transactor: db,
			auctions:   auction_repository.NewMemoryAuctionRepo(db),
			events:     auction_repository.NewMemoryEventRepo(db),
			config:     config_repository.NewMemoryConfigRepo(db),
		}
	default:
		c.WithField("type", t).Panic("unknown storage type")
	}
	return nil
}

// initRedis returns nil when redis.uri is not configured.
func initRedis(c ctx.Ctx) redis.Service {
	uri := viper.GetString("redis.uri")
	if uri == "" {
		return nil
	}
	c.Info("init redis")
	name := viper.GetString("redis.name")
	pool := redisclient.MustConnectRedis(uri, viper.GetString("redis.password"), redisclient.RedisParam{
		PoolMultiplier: viper.GetFloat64("redis.poolMultiplier"),
		Retry:          true,
	})
	return redis.New(name, metrics.New(name), &redis.Pools{
		Src: pool,
	})
}

func mustInitLocker(c ctx.Ctx, r redis.Service) lock.Locker {
	if viper.GetString("lock.type") != lockRedis {
		return lock.NewMemory()
	}
	if r == nil {
		c.Panic("lock.type is redis but redis.uri is empty")
	}
	return lock.NewRedis(r, viper.GetDuration("lock.ttl"))
}

// initAuthorCache keeps authors in process and, with redis, shares them
// across replicas.
func initAuthorCache(r redis.Service) cache.Service {
	layers := []provider.Provider{primitive.NewPrimitive("authorOf", viper.GetInt("cache.sizeMB"))}
	if r != nil {
		layers = append(layers, redisprovider.NewRedis(r))
	}
	ttl := viper.GetDuration("cache.ttl")
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return cache.New(cache.ServiceConfig{
		Ttl:   ttl,
		Pfx:   keys.PfxAuthorOf,
		Cache: compound.NewCompound(layers...),
	})
}
