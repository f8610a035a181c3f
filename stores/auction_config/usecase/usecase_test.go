package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/database/memdb"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/auction"
	auctionrepo "github.com/x-xyz/goauction/stores/auction/repository"
	configrepo "github.com/x-xyz/goauction/stores/auction_config/repository"
	"github.com/x-xyz/goauction/service/lock"
)

const (
	admin    = domain.Address("0x0000000000000000000000000000000000000A11")
	stranger = domain.Address("0x00000000000000000000000000000000000000cd")
)

var bctx = ctx.Background()

type publisher struct {
	events []*auction.Event
}

func (p *publisher) Publish(c ctx.Ctx, events ...*auction.Event) {
	p.events = append(p.events, events...)
}

type failingEvents struct {
	auction.EventRepo
}

func (failingEvents) Append(c ctx.Ctx, events ...*auction.Event) error {
	return errors.New("disk full")
}

type ConfigTestSuite struct {
	suite.Suite
	db        *memdb.DB
	events    auction.EventRepo
	publisher *publisher
	im        auction.ConfigUsecase
}

func (s *ConfigTestSuite) SetupTest() {
	s.db = memdb.New()
	s.events = auctionrepo.NewMemoryEventRepo(s.db)
	s.publisher = &publisher{}
	s.im = s.newUsecase(s.events)

	_, err := s.im.Initialize(bctx, auction.Config{
		OvertimeWindow:         900,
		AuctionDuration:        86400,
		MinPriceStepNumerator:  500,
		AuthorRoyaltyNumerator: 100,
		Administrator:          admin,
		TokenLedger:            "0x0000000000000000000000000000000000000b22",
		AssetRegistry:          "0x0000000000000000000000000000000000000c33",
		Escrow:                 "0x0000000000000000000000000000000000000d44",
	})
	s.Require().NoError(err)
}

func (s *ConfigTestSuite) newUsecase(events auction.EventRepo) auction.ConfigUsecase {
	return New(&ConfigUseCaseCfg{
		ConfigRepo: configrepo.NewMemoryConfigRepo(s.db),
		EventRepo:  events,
		Transactor: s.db,
		Locker:     lock.NewMemory(),
		Publisher:  s.publisher,
		Clock:      auction.ClockFunc(func() int64 { return 42 }),
	})
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) TestInitializeOnlyOnce() {
	cfg, err := s.im.Get(bctx)
	s.Require().NoError(err)
	s.Equal(admin.ToLower(), cfg.Administrator)

	_, err = s.im.Initialize(bctx, *cfg)
	s.ErrorIs(err, domain.ErrAlreadyInitialized)
}

func (s *ConfigTestSuite) TestInitializeValidates() {
	im := New(&ConfigUseCaseCfg{
		ConfigRepo: configrepo.NewMemoryConfigRepo(memdb.New()),
		Locker:     lock.NewMemory(),
		Publisher:  s.publisher,
	})
	_, err := im.Get(bctx)
	s.ErrorIs(err, domain.ErrNotInitialized)

	_, err = im.Initialize(bctx, auction.Config{OvertimeWindow: 900, Administrator: admin})
	s.ErrorIs(err, domain.ErrZeroAddress)

	_, err = im.Initialize(bctx, auction.Config{
		OvertimeWindow:        10,
		AuctionDuration:       86400,
		MinPriceStepNumerator: 500,
		Administrator:         admin,
		TokenLedger:           "0x0000000000000000000000000000000000000b22",
		AssetRegistry:         "0x0000000000000000000000000000000000000c33",
		Escrow:                "0x0000000000000000000000000000000000000d44",
	})
	s.ErrorIs(err, domain.ErrInvalidParams)
}

func (s *ConfigTestSuite) TestSetters() {
	tests := []struct {
		name  string
		set   func(domain.Address, int64) (*auction.Config, error)
		value int64
		kind  auction.EventKind
		get   func(*auction.Config) int64
	}{
		{"overtime", s.setter(s.im.SetOvertimeWindow), 120, auction.EventOvertimeWindowSet, func(c *auction.Config) int64 { return c.OvertimeWindow }},
		{"duration", s.setter(s.im.SetAuctionDuration), 300, auction.EventAuctionDurationSet, func(c *auction.Config) int64 { return c.AuctionDuration }},
		{"step", s.setter(s.im.SetMinPriceStepNumerator), 10000, auction.EventMinPriceStepNumeratorSet, func(c *auction.Config) int64 { return c.MinPriceStepNumerator }},
		{"royalty", s.setter(s.im.SetAuthorRoyaltyNumerator), 0, auction.EventAuthorRoyaltyNumeratorSet, func(c *auction.Config) int64 { return c.AuthorRoyaltyNumerator }},
	}
	for _, tt := range tests {
		cfg, err := tt.set(admin, tt.value)
		s.Require().NoError(err, tt.name)
		s.Equal(tt.value, tt.get(cfg), tt.name)

		stored, err := s.im.Get(bctx)
		s.Require().NoError(err)
		s.Equal(tt.value, tt.get(stored), tt.name)

		last := s.publisher.events[len(s.publisher.events)-1]
		s.Equal(tt.kind, last.Kind, tt.name)
		s.Equal(tt.value, *last.Value, tt.name)
		s.Equal(int64(42), last.Timestamp)
	}

	logged, err := s.events.FindAll(bctx)
	s.Require().NoError(err)
	s.Len(logged, 4)
}

func (s *ConfigTestSuite) setter(f func(ctx.Ctx, domain.Address, int64) (*auction.Config, error)) func(domain.Address, int64) (*auction.Config, error) {
	return func(caller domain.Address, v int64) (*auction.Config, error) {
		return f(bctx, caller, v)
	}
}

func (s *ConfigTestSuite) TestSettersCheckBounds() {
	_, err := s.im.SetOvertimeWindow(bctx, admin, 59)
	s.ErrorIs(err, domain.ErrInvalidParams)
	_, err = s.im.SetAuctionDuration(bctx, admin, 365*24*3600+1)
	s.ErrorIs(err, domain.ErrInvalidParams)
	_, err = s.im.SetMinPriceStepNumerator(bctx, admin, 0)
	s.ErrorIs(err, domain.ErrInvalidParams)
	_, err = s.im.SetAuthorRoyaltyNumerator(bctx, admin, 10001)
	s.ErrorIs(err, domain.ErrInvalidParams)

	s.Empty(s.publisher.events)
	cfg, err := s.im.Get(bctx)
	s.Require().NoError(err)
	s.Equal(int64(900), cfg.OvertimeWindow)
}

func (s *ConfigTestSuite) TestSettersAreAdminOnly() {
	_, err := s.im.SetOvertimeWindow(bctx, stranger, 120)
	s.ErrorIs(err, domain.ErrNoRights)
	// authorization comes before validation
	_, err = s.im.SetAuthorRoyaltyNumerator(bctx, stranger, -1)
	s.ErrorIs(err, domain.ErrNoRights)
	_, err = s.im.SetAdministrator(bctx, stranger, stranger)
	s.ErrorIs(err, domain.ErrNoRights)
}

func (s *ConfigTestSuite) TestSetAdministrator() {
	_, err := s.im.SetAdministrator(bctx, admin, "")
	s.ErrorIs(err, domain.ErrZeroAddress)

	cfg, err := s.im.SetAdministrator(bctx, admin, stranger)
	s.Require().NoError(err)
	s.Equal(stranger, cfg.Administrator)

	_, err = s.im.SetOvertimeWindow(bctx, admin, 120)
	s.ErrorIs(err, domain.ErrNoRights, "the old administrator lost its rights")
	_, err = s.im.SetOvertimeWindow(bctx, stranger, 120)
	s.NoError(err)
}

func (s *ConfigTestSuite) TestFailedEventRollsBackPatch() {
	im := s.newUsecase(failingEvents{})
	_, err := im.SetOvertimeWindow(bctx, admin, 120)
	s.Error(err)

	cfg, err := s.im.Get(bctx)
	s.Require().NoError(err)
	s.Equal(int64(900), cfg.OvertimeWindow)
	s.Empty(s.publisher.events)
}
