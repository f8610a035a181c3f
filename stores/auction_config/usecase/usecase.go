package usecase

import (
	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/base/ptr"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/auction"
	"github.com/x-xyz/goauction/domain/keys"
	"github.com/x-xyz/goauction/service/lock"
)

type ConfigUseCaseCfg struct {
	ConfigRepo auction.ConfigRepo
	EventRepo  auction.EventRepo
	Transactor domain.Transactor
	Locker     lock.Locker
	Publisher  auction.Publisher
	Clock      auction.Clock
}

type impl struct {
	configRepo auction.ConfigRepo
	eventRepo  auction.EventRepo
	tx         domain.Transactor
	locker     lock.Locker
	publisher  auction.Publisher
	clock      auction.Clock
}

func New(cfg *ConfigUseCaseCfg) auction.ConfigUsecase {
	clock := cfg.Clock
	if clock == nil {
		clock = auction.SystemClock
	}
	return &impl{
		configRepo: cfg.ConfigRepo,
		eventRepo:  cfg.EventRepo,
		tx:         cfg.Transactor,
		locker:     cfg.Locker,
		publisher:  cfg.Publisher,
		clock:      clock,
	}
}

func (im *impl) Initialize(c ctx.Ctx, cfg auction.Config) (*auction.Config, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.ToLower()
	if err := im.configRepo.Create(c, &cfg); err != nil {
		if err != domain.ErrAlreadyInitialized {
			c.WithField("err", err).Error("configRepo.Create failed")
		}
		return nil, err
	}
	c.WithFields(log.Fields{
		"administrator": cfg.Administrator,
		"assetRegistry": cfg.AssetRegistry,
		"tokenLedger":   cfg.TokenLedger,
		"escrow":        cfg.Escrow,
	}).Info("auction config initialized")
	return &cfg, nil
}

func (im *impl) Get(c ctx.Ctx) (*auction.Config, error) {
	cfg, err := im.configRepo.Get(c)
	if err != nil {
		if err != domain.ErrNotInitialized {
			c.WithField("err", err).Error("configRepo.Get failed")
		}
		return nil, err
	}
	return cfg, nil
}

func (im *impl) SetOvertimeWindow(c ctx.Ctx, caller domain.Address, value int64) (*auction.Config, error) {
	return im.setNumeric(c, caller, auction.FieldOvertimeWindow, value, &auction.ConfigPatch{OvertimeWindow: ptr.Int64(value)})
}

func (im *impl) SetAuctionDuration(c ctx.Ctx, caller domain.Address, value int64) (*auction.Config, error) {
	return im.setNumeric(c, caller, auction.FieldAuctionDuration, value, &auction.ConfigPatch{AuctionDuration: ptr.Int64(value)})
}

func (im *impl) SetMinPriceStepNumerator(c ctx.Ctx, caller domain.Address, value int64) (*auction.Config, error) {
	return im.setNumeric(c, caller, auction.FieldMinPriceStepNumerator, value, &auction.ConfigPatch{MinPriceStepNumerator: ptr.Int64(value)})
}

func (im *impl) SetAuthorRoyaltyNumerator(c ctx.Ctx, caller domain.Address, value int64) (*auction.Config, error) {
	return im.setNumeric(c, caller, auction.FieldAuthorRoyaltyNumerator, value, &auction.ConfigPatch{AuthorRoyaltyNumerator: ptr.Int64(value)})
}

func (im *impl) setNumeric(c ctx.Ctx, caller domain.Address, field auction.ConfigField, value int64, patch *auction.ConfigPatch) (*auction.Config, error) {
	return im.set(c, caller, field, patch, func(cfg *auction.Config) (*auction.Event, error) {
		if err := auction.ValidateField(field, value); err != nil {
			return nil, err
		}
		return auction.NewConfigSet(field, value, im.clock.Now()), nil
	})
}

func (im *impl) SetAdministrator(c ctx.Ctx, caller domain.Address, admin domain.Address) (*auction.Config, error) {
	admin = admin.ToLower()
	patch := &auction.ConfigPatch{Administrator: &admin}
	return im.set(c, caller, auction.FieldAdministrator, patch, func(cfg *auction.Config) (*auction.Event, error) {
		if admin.IsZero() {
			return nil, domain.ErrZeroAddress
		}
		if !admin.IsValid() {
			return nil, domain.ErrInvalidAddress
		}
		return auction.NewAdministratorSet(admin, im.clock.Now()), nil
	})
}

// set authorizes caller, lets check validate and build the event, then commits
// the patch and the event together.
func (im *impl) set(c ctx.Ctx, caller domain.Address, field auction.ConfigField, patch *auction.ConfigPatch, check func(*auction.Config) (*auction.Event, error)) (*auction.Config, error) {
	c = ctx.WithValues(c, map[string]interface{}{
		"field":  field,
		"caller": caller,
	})

	unlock, err := im.locker.Lock(c, keys.ConfigLockKey())
	if err != nil {
		c.WithField("err", err).Error("locker.Lock failed")
		return nil, err
	}
	defer unlock()

	var (
		updated *auction.Config
		event   *auction.Event
	)
	err = im.tx.RunWithTransaction(c, func(c ctx.Ctx) error {
		cfg, err := im.configRepo.Get(c)
		if err != nil {
			return err
		}
		if err := auction.Authorize(auction.SetterOperation(field), caller, cfg, nil); err != nil {
			return err
		}
		if event, err = check(cfg); err != nil {
			return err
		}
		if err := im.configRepo.Patch(c, patch); err != nil {
			c.WithField("err", err).Error("configRepo.Patch failed")
			return err
		}
		if err := im.eventRepo.Append(c, event); err != nil {
			c.WithField("err", err).Error("eventRepo.Append failed")
			return err
		}
		patch.Apply(cfg)
		updated = cfg
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.WithField("event", event.Kind).Info("auction config updated")
	im.publisher.Publish(c, event)
	return updated, nil
}
