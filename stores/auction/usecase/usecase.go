package usecase

import (
	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/base/metrics"
	pricefomatter "github.com/x-xyz/goauction/base/price_fomatter"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/auction"
	"github.com/x-xyz/goauction/domain/keys"
	"github.com/x-xyz/goauction/domain/settlement"
	"github.com/x-xyz/goauction/service/lock"
)

var met = metrics.New("auction")

type AuctionUseCaseCfg struct {
	Repo       auction.Repo
	EventRepo  auction.EventRepo
	ConfigRepo auction.ConfigRepo
	Settlement settlement.Usecase
	// Registry answers IsRegistry and OwnerOf for new auctions
	Registry   auction.AssetRegistry
	Transactor domain.Transactor
	Locker     lock.Locker
	Publisher  auction.Publisher
	Clock      auction.Clock
	// PriceFormatter is optional, views carry no display amounts without it
	PriceFormatter pricefomatter.PriceFormatter
}

type impl struct {
	repo       auction.Repo
	eventRepo  auction.EventRepo
	configRepo auction.ConfigRepo
	settlement settlement.Usecase
	registry   auction.AssetRegistry
	tx         domain.Transactor
	locker     lock.Locker
	publisher  auction.Publisher
	clock      auction.Clock
	formatter  pricefomatter.PriceFormatter
}

func New(cfg *AuctionUseCaseCfg) auction.Usecase {
	clock := cfg.Clock
	if clock == nil {
		clock = auction.SystemClock
	}
	return &impl{
		repo:       cfg.Repo,
		eventRepo:  cfg.EventRepo,
		configRepo: cfg.ConfigRepo,
		settlement: cfg.Settlement,
		registry:   cfg.Registry,
		tx:         cfg.Transactor,
		locker:     cfg.Locker,
		publisher:  cfg.Publisher,
		clock:      clock,
		formatter:  cfg.PriceFormatter,
	}
}

// mutation runs inside the unit of work with the current config and ledger
// time. The journal it returns is reverted when the unit of work fails.
type mutation func(c ctx.Ctx, cfg *auction.Config, now int64) (*settlement.Journal, *auction.Event, error)

func (im *impl) CreateAuction(c ctx.Ctx, caller domain.Address, id auction.Id, reservePrice domain.Amount) (*auction.AuctionView, error) {
	var created *auction.Auction
	id = id.ToLower()
	err := im.mutate(c, auction.OpCreateAuction, caller, id, func(c ctx.Ctx, cfg *auction.Config, now int64) (*settlement.Journal, *auction.Event, error) {
		if err := auction.Authorize(auction.OpCreateAuction, caller, cfg, nil); err != nil {
			return nil, nil, err
		}
		if !id.Contract.Equals(cfg.AssetRegistry) || !im.registry.IsRegistry(id.Contract) {
			return nil, nil, domain.ErrAssetNotAllowed
		}
		if reservePrice.Sign() <= 0 {
			return nil, nil, domain.ErrInvalidParams
		}
		if _, err := im.repo.FindOne(c, id); err == nil {
			return nil, nil, domain.ErrAuctionExists
		} else if err != domain.ErrAuctionNotExists {
			c.WithField("err", err).Error("repo.FindOne failed")
			return nil, nil, err
		}

		owner, err := im.registry.OwnerOf(c, id.TokenId)
		if err != nil {
			c.WithField("err", err).Warn("registry.OwnerOf failed")
			return nil, nil, err
		}
		if !owner.Equals(caller) {
			return nil, nil, domain.ErrNoRights
		}

		journal, err := im.settlement.Deposit(c, settlement.CustodyOrder{
			Contract: id.Contract,
			TokenId:  id.TokenId,
			Seller:   caller,
		})
		if err != nil {
			c.WithField("err", err).Warn("settlement.Deposit failed")
			return nil, nil, err
		}

		a := &auction.Auction{
			Contract:     id.Contract,
			TokenId:      id.TokenId,
			Seller:       caller.ToLower(),
			ReservePrice: reservePrice,
			CreatedAt:    now,
		}
		if err := im.repo.Create(c, a); err != nil {
			if err != domain.ErrAuctionExists {
				c.WithField("err", err).Error("repo.Create failed")
			}
			return journal, nil, err
		}
		created = a
		return journal, auction.NewAuctionCreated(a, now), nil
	})
	if err != nil {
		return nil, err
	}
	return im.currentView(c, created)
}

func (im *impl) ChangeReservePrice(c ctx.Ctx, caller domain.Address, id auction.Id, newPrice domain.Amount) (*auction.AuctionView, error) {
	var updated *auction.Auction
	id = id.ToLower()
	err := im.mutate(c, auction.OpChangeReservePrice, caller, id, func(c ctx.Ctx, cfg *auction.Config, now int64) (*settlement.Journal, *auction.Event, error) {
		a, err := im.findOne(c, id)
		if err != nil {
			return nil, nil, err
		}
		if err := auction.Authorize(auction.OpChangeReservePrice, caller, cfg, a); err != nil {
			return nil, nil, err
		}
		if a.Started() {
			return nil, nil, domain.ErrAuctionAlreadyStarted
		}
		if newPrice.Sign() <= 0 {
			return nil, nil, domain.ErrInvalidParams
		}

		a.ReservePrice = newPrice
		if err := im.repo.Update(c, a); err != nil {
			c.WithField("err", err).Error("repo.Update failed")
			return nil, nil, err
		}
		updated = a
		return nil, auction.NewReservePriceChanged(a, now), nil
	})
	if err != nil {
		return nil, err
	}
	return im.currentView(c, updated)
}

func (im *impl) CancelAuction(c ctx.Ctx, caller domain.Address, id auction.Id) error {
	id = id.ToLower()
	return im.mutate(c, auction.OpCancelAuction, caller, id, func(c ctx.Ctx, cfg *auction.Config, now int64) (*settlement.Journal, *auction.Event, error) {
		a, err := im.findOne(c, id)
		if err != nil {
			return nil, nil, err
		}
		if err := auction.Authorize(auction.OpCancelAuction, caller, cfg, a); err != nil {
			return nil, nil, err
		}
		if a.Started() {
			return nil, nil, domain.ErrAuctionAlreadyStarted
		}

		journal, err := im.settlement.Withdraw(c, settlement.CustodyOrder{
			Contract: a.Contract,
			TokenId:  a.TokenId,
			Seller:   a.Seller,
		})
		if err != nil {
			c.WithField("err", err).Error("settlement.Withdraw failed")
			return nil, nil, err
		}

		if err := im.repo.Delete(c, id); err != nil {
			c.WithField("err", err).Error("repo.Delete failed")
			return journal, nil, err
		}
		return journal, auction.NewAuctionCanceled(a.ToId(), caller.ToLower(), now), nil
	})
}

func (im *impl) Bid(c ctx.Ctx, caller domain.Address, id auction.Id, amount domain.Amount) (*auction.AuctionView, error) {
	var (
		updated *auction.Auction
		config  *auction.Config
		at      int64
	)
	id = id.ToLower()
	err := im.mutate(c, auction.OpBid, caller, id, func(c ctx.Ctx, cfg *auction.Config, now int64) (*settlement.Journal, *auction.Event, error) {
		a, err := im.findOne(c, id)
		if err != nil {
			return nil, nil, err
		}
		if err := auction.Authorize(auction.OpBid, caller, cfg, a); err != nil {
			return nil, nil, err
		}
		if auction.StatusAt(a, now) == auction.StatusFinished {
			return nil, nil, domain.ErrAuctionFinished
		}
		if amount.Cmp(auction.MinNextBid(a, cfg.MinPriceStepNumerator)) < 0 {
			return nil, nil, domain.ErrSmallBidAmount
		}

		journal, err := im.settlement.Escrow(c, settlement.BidTransfer{
			Bidder:     caller,
			Amount:     amount,
			PrevBidder: a.HighBidder,
			PrevAmount: a.HighBid,
		})
		if err != nil {
			c.WithField("err", err).Warn("settlement.Escrow failed")
			return nil, nil, err
		}

		a.EndTime = auction.NextEndTime(a, now, cfg)
		a.HighBid = amount
		a.HighBidder = caller.ToLower()
		if err := im.repo.Update(c, a); err != nil {
			c.WithField("err", err).Error("repo.Update failed")
			return journal, nil, err
		}
		updated, config, at = a, cfg, now
		return journal, auction.NewBidSubmitted(a, now), nil
	})
	if err != nil {
		return nil, err
	}
	return im.view(updated, config, at), nil
}

func (im *impl) ClaimWonNFT(c ctx.Ctx, caller domain.Address, id auction.Id) (*settlement.Payout, error) {
	var payout *settlement.Payout
	id = id.ToLower()
	err := im.mutate(c, auction.OpClaimWonNFT, caller, id, func(c ctx.Ctx, cfg *auction.Config, now int64) (*settlement.Journal, *auction.Event, error) {
		a, err := im.findOne(c, id)
		if err != nil {
			return nil, nil, err
		}
		if err := auction.Authorize(auction.OpClaimWonNFT, caller, cfg, a); err != nil {
			return nil, nil, err
		}
		switch auction.StatusAt(a, now) {
		case auction.StatusNotStarted:
			return nil, nil, domain.ErrEmptyWinner
		case auction.StatusRunning:
			return nil, nil, domain.ErrAuctionNotFinished
		}

		p, journal, err := im.settlement.Settle(c, settlement.SettleOrder{
			Contract:         a.Contract,
			TokenId:          a.TokenId,
			Seller:           a.Seller,
			Winner:           a.HighBidder,
			Amount:           a.HighBid,
			RoyaltyNumerator: cfg.AuthorRoyaltyNumerator,
		})
		if err != nil {
			c.WithField("err", err).Warn("settlement.Settle failed")
			return nil, nil, err
		}

		if err := im.repo.Delete(c, id); err != nil {
			c.WithField("err", err).Error("repo.Delete failed")
			return journal, nil, err
		}
		payout = p
		return journal, auction.NewAuctionSettled(a.ToId(), p, now), nil
	})
	if err != nil {
		return nil, err
	}
	return payout, nil
}

func (im *impl) GetAuction(c ctx.Ctx, id auction.Id) (*auction.AuctionView, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	a, err := im.findOne(c, id.ToLower())
	if err != nil {
		return nil, err
	}
	return im.currentView(c, a)
}

func (im *impl) FindAll(c ctx.Ctx, opts ...auction.FindAuctionOptions) ([]*auction.AuctionView, error) {
	cfg, err := im.getConfig(c)
	if err != nil {
		return nil, err
	}
	as, err := im.repo.FindAll(c, opts...)
	if err != nil {
		c.WithField("err", err).Error("repo.FindAll failed")
		return nil, err
	}

	now := im.clock.Now()
	res := make([]*auction.AuctionView, 0, len(as))
	for _, a := range as {
		res = append(res, im.view(a, cfg, now))
	}
	return res, nil
}

func (im *impl) FindEvents(c ctx.Ctx, opts ...auction.FindEventOptions) ([]*auction.Event, error) {
	res, err := im.eventRepo.FindAll(c, opts...)
	if err != nil {
		c.WithField("err", err).Error("eventRepo.FindAll failed")
		return nil, err
	}
	return res, nil
}

// mutate serializes m on the auction key and commits its record change and
// event as one unit of work. Movements m applied are reverted when anything
// after them fails, the event is published once committed.
func (im *impl) mutate(c ctx.Ctx, op auction.Operation, caller domain.Address, id auction.Id, m mutation) (err error) {
	defer met.BumpTime(string(op) + ".time").End()
	defer func() {
		if err != nil {
			met.BumpSum(string(op)+".err", 1, "class", domain.ClassOf(err).String())
		}
	}()

	if err := id.Validate(); err != nil {
		return err
	}
	if caller.IsZero() {
		return domain.ErrZeroAddress
	}
	if !caller.IsValid() {
		return domain.ErrInvalidAddress
	}
	id = id.ToLower()
	c = ctx.WithValues(c, map[string]interface{}{
		"op":      op,
		"auction": id.String(),
		"caller":  caller,
	})

	unlock, err := im.locker.Lock(c, keys.AuctionLockKey(string(id.Contract), string(id.TokenId)))
	if err != nil {
		c.WithField("err", err).Error("locker.Lock failed")
		return err
	}
	defer unlock()

	var (
		journal *settlement.Journal
		event   *auction.Event
	)
	err = im.tx.RunWithTransaction(c, func(c ctx.Ctx) error {
		// a retried transaction starts over without the movements of the last attempt
		if err := im.revert(c, journal); err != nil {
			return err
		}
		cfg, err := im.getConfig(c)
		if err != nil {
			return err
		}
		var e *auction.Event
		journal, e, err = m(c, cfg, im.clock.Now())
		if err != nil {
			return err
		}
		if err := im.eventRepo.Append(c, e); err != nil {
			c.WithField("err", err).Error("eventRepo.Append failed")
			return err
		}
		event = e
		return nil
	})
	if err != nil {
		if rerr := im.revert(c, journal); rerr != nil {
			// the record was not written but funds or the asset may have moved
			c.WithFields(log.Fields{"err": err, "revertErr": rerr}).Error("unit of work failed with an unreverted journal")
		}
		if domain.ClassOf(err) == domain.ErrorClassUnknown {
			c.WithField("err", err).Error("auction." + string(op) + " failed")
		}
		return err
	}

	c.WithField("event", event.Kind).Info("auction updated")
	im.publisher.Publish(c, event)
	return nil
}

func (im *impl) revert(c ctx.Ctx, j *settlement.Journal) error {
	if j.Len() == 0 {
		return nil
	}
	if err := im.settlement.Revert(c, j); err != nil {
		met.BumpSum("revert.err", 1)
		c.WithFields(log.Fields{"err": err, "journal": j}).Error("settlement.Revert failed")
		return err
	}
	return nil
}

func (im *impl) getConfig(c ctx.Ctx) (*auction.Config, error) {
	cfg, err := im.configRepo.Get(c)
	if err != nil {
		if err != domain.ErrNotInitialized {
			c.WithField("err", err).Error("configRepo.Get failed")
		}
		return nil, err
	}
	return cfg, nil
}

func (im *impl) findOne(c ctx.Ctx, id auction.Id) (*auction.Auction, error) {
	a, err := im.repo.FindOne(c, id)
	if err != nil {
		if err != domain.ErrAuctionNotExists {
			c.WithField("err", err).Error("repo.FindOne failed")
		}
		return nil, err
	}
	return a, nil
}

func (im *impl) currentView(c ctx.Ctx, a *auction.Auction) (*auction.AuctionView, error) {
	cfg, err := im.getConfig(c)
	if err != nil {
		return nil, err
	}
	return im.view(a, cfg, im.clock.Now()), nil
}

func (im *impl) view(a *auction.Auction, cfg *auction.Config, now int64) *auction.AuctionView {
	v := &auction.AuctionView{
		Auction:    a,
		Status:     auction.StatusAt(a, now),
		MinNextBid: auction.MinNextBid(a, cfg.MinPriceStepNumerator),
	}
	if im.formatter != nil {
		v.DisplayReserve = im.formatter.Format(a.ReservePrice)
		v.DisplayHighBid = im.formatter.Format(a.HighBid)
		v.DisplayMinNextBid = im.formatter.Format(v.MinNextBid)
	}
	return v
}
