package usecase

import (
	"errors"
	"math/big"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/database/memdb"
	pricefomatter "github.com/x-xyz/goauction/base/price_fomatter"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/auction"
	"github.com/x-xyz/goauction/domain/settlement"
	"github.com/x-xyz/goauction/service/assetregistry"
	"github.com/x-xyz/goauction/service/lock"
	"github.com/x-xyz/goauction/service/tokenledger"
	"github.com/x-xyz/goauction/stores/auction/repository"
	configrepo "github.com/x-xyz/goauction/stores/auction_config/repository"
	settlementuc "github.com/x-xyz/goauction/stores/settlement/usecase"
)

const (
	registryAddr = domain.Address("0x00000000000000000000000000000000000000aa")
	ledgerAddr   = domain.Address("0x00000000000000000000000000000000000000bb")
	escrow       = domain.Address("0x00000000000000000000000000000000000e5c00")
	admin        = domain.Address("0x0000000000000000000000000000000000000a11")
	author       = domain.Address("0x00000000000000000000000000000000000a0700")
	seller       = domain.Address("0x00000000000000000000000000000000005e11e5")
	bidder1      = domain.Address("0x0000000000000000000000000000000000b1dde1")
	bidder2      = domain.Address("0x0000000000000000000000000000000000b1dde2")
	stranger     = domain.Address("0x00000000000000000000000000000000000000cd")

	duration = int64(86400)
	overtime = int64(900)
	start    = int64(1600000000)
)

var bctx = ctx.Background()

// cents is n hundredths of a token with 18 decimals.
func cents(n int64) domain.Amount {
	v := new(big.Int).Mul(big.NewInt(n), new(big.Int).Exp(big.NewInt(10), big.NewInt(16), nil))
	return domain.NewAmount(v)
}

type publisher struct {
	mu     sync.Mutex
	events []*auction.Event
}

func (p *publisher) Publish(c ctx.Ctx, events ...*auction.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, events...)
}

func (p *publisher) kinds() []auction.EventKind {
	p.mu.Lock()
	defer p.mu.Unlock()
	res := []auction.EventKind{}
	for _, e := range p.events {
		res = append(res, e.Kind)
	}
	return res
}

func (p *publisher) last() *auction.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.events[len(p.events)-1]
}

type failingEvents struct {
	auction.EventRepo
}

func (failingEvents) Append(c ctx.Ctx, events ...*auction.Event) error {
	return errors.New("write conflict")
}

type AuctionTestSuite struct {
	suite.Suite
	db        *memdb.DB
	ledger    tokenledger.Ledger
	registry  assetregistry.Registry
	publisher *publisher
	now       int64
	tokenId   domain.TokenId
	id        auction.Id
	im        auction.Usecase
}

func TestAuctionTestSuite(t *testing.T) {
	suite.Run(t, new(AuctionTestSuite))
}

func (s *AuctionTestSuite) SetupTest() {
	s.db = memdb.New()
	s.now = start
	s.publisher = &publisher{}
	s.ledger = tokenledger.New(tokenledger.Config{Address: ledgerAddr, Symbol: "THR", Decimals: 18})
	s.registry = assetregistry.New(assetregistry.Config{Address: registryAddr, Name: "ThronNFT"})

	s.Require().NoError(configrepo.NewMemoryConfigRepo(s.db).Create(bctx, &auction.Config{
		OvertimeWindow:         overtime,
		AuctionDuration:        duration,
		MinPriceStepNumerator:  500,
		AuthorRoyaltyNumerator: 100,
		Administrator:          admin,
		TokenLedger:            ledgerAddr,
		AssetRegistry:          registryAddr,
		Escrow:                 escrow,
	}))

	// the author minted and sold the asset on, seller now auctions it
	tokenId, err := s.registry.MintWithTokenURI(bctx, author, "ipfs://artwork")
	s.Require().NoError(err)
	s.Require().NoError(s.registry.Client(author).TransferCustody(bctx, registryAddr, tokenId, author, seller))
	s.Require().NoError(s.registry.SetApprovalForAll(bctx, seller, escrow, true))
	s.tokenId = tokenId
	s.id = auction.Id{Contract: registryAddr, TokenId: tokenId}

	for _, b := range []domain.Address{bidder1, bidder2, seller} {
		s.Require().NoError(s.ledger.Mint(bctx, b, cents(1000)))
		s.Require().NoError(s.ledger.Approve(bctx, b, escrow, cents(1000)))
	}

	s.im = s.newUsecase(repository.NewMemoryEventRepo(s.db))
}

func (s *AuctionTestSuite) newUsecase(events auction.EventRepo) auction.Usecase {
	return New(&AuctionUseCaseCfg{
		Repo:       repository.NewMemoryAuctionRepo(s.db),
		EventRepo:  events,
		ConfigRepo: configrepo.NewMemoryConfigRepo(s.db),
		Settlement: settlementuc.New(&settlementuc.SettlementUseCaseCfg{
			TokenLedger:   s.ledger.Client(escrow),
			AssetRegistry: s.registry.Client(escrow),
			Escrow:        escrow,
		}),
		Registry:       s.registry.Client(escrow),
		Transactor:     s.db,
		Locker:         lock.NewMemory(),
		Publisher:      s.publisher,
		Clock:          auction.ClockFunc(func() int64 { return s.now }),
		PriceFormatter: pricefomatter.NewPriceFormatter(&pricefomatter.PriceFormatterCfg{Decimals: 18}),
	})
}

func (s *AuctionTestSuite) create(reserve domain.Amount) *auction.AuctionView {
	v, err := s.im.CreateAuction(bctx, seller, s.id, reserve)
	s.Require().NoError(err)
	return v
}

func (s *AuctionTestSuite) bid(bidder domain.Address, amount domain.Amount) *auction.AuctionView {
	v, err := s.im.Bid(bctx, bidder, s.id, amount)
	s.Require().NoError(err)
	return v
}

func (s *AuctionTestSuite) balance(a domain.Address) domain.Amount {
	return s.ledger.BalanceOf(bctx, a)
}

func (s *AuctionTestSuite) owner() domain.Address {
	owner, err := s.registry.Client(escrow).OwnerOf(bctx, s.tokenId)
	s.Require().NoError(err)
	return owner
}

func (s *AuctionTestSuite) allowance(a domain.Address) domain.Amount {
	return s.ledger.Allowance(bctx, a, escrow)
}

func (s *AuctionTestSuite) TestCreateAuction() {
	v := s.create(cents(100))
	s.Equal(auction.StatusNotStarted, v.Status)
	s.Equal(seller, v.Seller)
	s.Equal(0, cents(100).Cmp(v.MinNextBid))
	s.Equal("1", v.DisplayReserve)
	s.Equal("0", v.DisplayHighBid)
	s.Equal(start, v.CreatedAt)

	e := s.publisher.last()
	s.Equal(auction.EventAuctionCreated, e.Kind)
	s.Equal(seller, e.Seller)
	s.Equal("1000000000000000000", e.ReservePrice.String())
	s.Equal(escrow, s.owner(), "a listed asset is held in escrow")

	_, err := s.im.CreateAuction(bctx, seller, s.id, cents(100))
	s.ErrorIs(err, domain.ErrAuctionExists)
}

func (s *AuctionTestSuite) TestCreateAuctionNeedsApproval() {
	s.Require().NoError(s.registry.SetApprovalForAll(bctx, seller, escrow, false))

	_, err := s.im.CreateAuction(bctx, seller, s.id, cents(100))
	s.ErrorIs(err, domain.ErrTransferFailed)
	var terr *settlement.TransferError
	s.Require().ErrorAs(err, &terr)
	s.ErrorIs(terr.Cause, domain.ErrNotApproved)

	_, err = s.im.GetAuction(bctx, s.id)
	s.ErrorIs(err, domain.ErrAuctionNotExists)
	s.Equal(seller, s.owner())
	s.Empty(s.publisher.kinds())

	// a single-token approval is enough
	s.Require().NoError(s.registry.Approve(bctx, seller, escrow, s.tokenId))
	s.create(cents(100))
	s.Equal(escrow, s.owner())
}

func (s *AuctionTestSuite) TestFailedCreateReturnsAsset() {
	im := s.newUsecase(failingEvents{})
	_, err := im.CreateAuction(bctx, seller, s.id, cents(100))
	s.Error(err)

	_, err = s.im.GetAuction(bctx, s.id)
	s.ErrorIs(err, domain.ErrAuctionNotExists)
	s.Equal(seller, s.owner())
	s.create(cents(100))
}

func (s *AuctionTestSuite) TestCreateAuctionRejects() {
	other := auction.Id{Contract: "0x00000000000000000000000000000000000000ff", TokenId: s.tokenId}
	_, err := s.im.CreateAuction(bctx, seller, other, cents(100))
	s.ErrorIs(err, domain.ErrAssetNotAllowed)

	_, err = s.im.CreateAuction(bctx, seller, s.id, domain.AmountFromInt64(0))
	s.ErrorIs(err, domain.ErrInvalidParams)

	_, err = s.im.CreateAuction(bctx, stranger, s.id, cents(100))
	s.ErrorIs(err, domain.ErrNoRights)

	_, err = s.im.CreateAuction(bctx, seller, auction.Id{Contract: registryAddr, TokenId: "999"}, cents(100))
	s.ErrorIs(err, domain.ErrUnknownAsset)

	_, err = s.im.CreateAuction(bctx, seller, auction.Id{Contract: "nope", TokenId: s.tokenId}, cents(100))
	s.ErrorIs(err, domain.ErrBadParamInput)

	_, err = s.im.CreateAuction(bctx, "", s.id, cents(100))
	s.ErrorIs(err, domain.ErrZeroAddress)

	s.Empty(s.publisher.kinds())
}

func (s *AuctionTestSuite) TestCreateAuctionIgnoresContractCase() {
	upper := auction.Id{Contract: "0x00000000000000000000000000000000000000AA", TokenId: s.tokenId}
	s.create(cents(100))

	_, err := s.im.CreateAuction(bctx, seller, upper, cents(100))
	s.ErrorIs(err, domain.ErrAuctionExists)

	v, err := s.im.GetAuction(bctx, upper)
	s.Require().NoError(err)
	s.Equal(registryAddr, v.Contract)
}

// create at reserve 1.0, bid 1.0, claim after the end
func (s *AuctionTestSuite) TestFirstBidStartsTheAuction() {
	s.create(cents(100))

	s.now = start + 10
	v := s.bid(bidder1, cents(100))
	s.Equal(auction.StatusRunning, v.Status)
	s.Equal(start+10+duration, v.EndTime)
	s.Equal(bidder1, v.HighBidder)
	s.Equal("1.05", v.DisplayMinNextBid)

	e := s.publisher.last()
	s.Equal(auction.EventBidSubmitted, e.Kind)
	s.Equal(start+10+duration, e.EndTime)
	s.Equal(bidder1, e.Bidder)

	s.Equal(0, cents(900).Cmp(s.balance(bidder1)))
	s.Equal(0, cents(100).Cmp(s.balance(escrow)))

	s.now = v.EndTime
	p, err := s.im.ClaimWonNFT(bctx, stranger, s.id)
	s.Require().NoError(err)
	s.Equal(bidder1, p.Winner)
	s.Equal(bidder1, s.owner())

	_, err = s.im.GetAuction(bctx, s.id)
	s.ErrorIs(err, domain.ErrAuctionNotExists)
	s.Equal(auction.EventAuctionSettled, s.publisher.last().Kind)
}

// bid 1.0 then the exact 5% step, one unit below it is too small
func (s *AuctionTestSuite) TestMinimumStep() {
	s.create(cents(100))
	s.bid(bidder1, cents(100))

	_, err := s.im.Bid(bctx, bidder2, s.id, cents(105).Sub(domain.AmountFromInt64(1)))
	s.ErrorIs(err, domain.ErrSmallBidAmount)

	v := s.bid(bidder2, cents(105))
	s.Equal(bidder2, v.HighBidder)
	s.Equal(0, cents(105).Cmp(v.HighBid))

	// the outbid bidder got the escrow back
	s.Equal(0, cents(1000).Cmp(s.balance(bidder1)))
	s.Equal(0, cents(105).Cmp(s.balance(escrow)))
}

func (s *AuctionTestSuite) TestBidBelowReserve() {
	s.create(cents(100))
	_, err := s.im.Bid(bctx, bidder1, s.id, cents(99))
	s.ErrorIs(err, domain.ErrSmallBidAmount)
}

func (s *AuctionTestSuite) TestStepRoundsUp() {
	s.create(domain.AmountFromInt64(1))
	s.bid(bidder1, domain.AmountFromInt64(1))

	// ceil(1 * 500 / 10000) is 1
	_, err := s.im.Bid(bctx, bidder2, s.id, domain.AmountFromInt64(1))
	s.ErrorIs(err, domain.ErrSmallBidAmount)
	v := s.bid(bidder2, domain.AmountFromInt64(2))
	s.Equal("2", v.HighBid.String())
}

func (s *AuctionTestSuite) TestCancel() {
	s.create(cents(100))
	s.Require().NoError(s.im.CancelAuction(bctx, seller, s.id))

	e := s.publisher.last()
	s.Equal(auction.EventAuctionCanceled, e.Kind)
	s.Equal(seller, e.Canceler)

	_, err := s.im.GetAuction(bctx, s.id)
	s.ErrorIs(err, domain.ErrAuctionNotExists)
	s.Equal(seller, s.owner(), "cancel hands the asset back")

	// the slot is free again
	s.create(cents(100))
	s.NoError(s.im.CancelAuction(bctx, admin, s.id))
	s.Equal(seller, s.owner())
}

func (s *AuctionTestSuite) TestCancelAfterBid() {
	s.create(cents(100))
	s.bid(bidder1, cents(100))

	s.ErrorIs(s.im.CancelAuction(bctx, seller, s.id), domain.ErrAuctionAlreadyStarted)
	s.ErrorIs(s.im.CancelAuction(bctx, stranger, s.id), domain.ErrNoRights)
	s.Equal(escrow, s.owner())
}

// the seller can't take a listed asset away from the winner
func (s *AuctionTestSuite) TestSellerCannotRevokeOrBurnAfterBid() {
	s.create(cents(100))
	v := s.bid(bidder1, cents(100))

	s.Require().NoError(s.registry.SetApprovalForAll(bctx, seller, escrow, false))
	s.ErrorIs(s.registry.Burn(bctx, seller, s.tokenId), domain.ErrNotAssetOwner)
	err := s.registry.Client(seller).TransferCustody(bctx, registryAddr, s.tokenId, seller, stranger)
	s.ErrorIs(err, domain.ErrNotAssetOwner)

	s.now = v.EndTime
	p, err := s.im.ClaimWonNFT(bctx, bidder1, s.id)
	s.Require().NoError(err)
	s.Equal(bidder1, p.Winner)
	s.Equal(bidder1, s.owner())
	s.True(s.balance(escrow).IsZero())
	s.Equal(0, cents(1000+99).Cmp(s.balance(seller)))
}

func (s *AuctionTestSuite) TestCancelMissing() {
	s.ErrorIs(s.im.CancelAuction(bctx, seller, s.id), domain.ErrAuctionNotExists)
}

func (s *AuctionTestSuite) TestChangeReservePrice() {
	s.create(cents(100))

	v, err := s.im.ChangeReservePrice(bctx, seller, s.id, cents(200))
	s.Require().NoError(err)
	s.Equal(0, cents(200).Cmp(v.ReservePrice))
	s.Equal(auction.EventReservePriceChanged, s.publisher.last().Kind)

	_, err = s.im.ChangeReservePrice(bctx, admin, s.id, cents(150))
	s.Require().NoError(err)

	_, err = s.im.ChangeReservePrice(bctx, stranger, s.id, cents(10))
	s.ErrorIs(err, domain.ErrNoRights)

	_, err = s.im.ChangeReservePrice(bctx, seller, s.id, domain.AmountFromInt64(0))
	s.ErrorIs(err, domain.ErrInvalidParams)

	_, err = s.im.Bid(bctx, bidder1, s.id, cents(149))
	s.ErrorIs(err, domain.ErrSmallBidAmount)
	s.bid(bidder1, cents(150))

	_, err = s.im.ChangeReservePrice(bctx, seller, s.id, cents(10))
	s.ErrorIs(err, domain.ErrAuctionAlreadyStarted)
}

func (s *AuctionTestSuite) TestChangeReservePriceMissing() {
	_, err := s.im.ChangeReservePrice(bctx, seller, s.id, cents(10))
	s.ErrorIs(err, domain.ErrAuctionNotExists)
}

func (s *AuctionTestSuite) TestBidMissing() {
	for _, caller := range []domain.Address{bidder1, seller, admin} {
		_, err := s.im.Bid(bctx, caller, s.id, cents(1))
		s.ErrorIs(err, domain.ErrAuctionNotExists)
	}
}

func (s *AuctionTestSuite) TestAntiSniping() {
	s.create(cents(100))
	end := s.bid(bidder1, cents(100)).EndTime
	s.Equal(start+duration, end)

	// far from the end the close time stays
	s.now = end - overtime - 100
	v := s.bid(bidder2, cents(105))
	s.Equal(end, v.EndTime)

	// inside the window it moves to now + overtime
	s.now = end - 100
	v = s.bid(bidder1, cents(200))
	s.Equal(end-100+overtime, v.EndTime)
	s.Greater(v.EndTime, end)
}

func (s *AuctionTestSuite) TestBidAfterEnd() {
	s.create(cents(100))
	v := s.bid(bidder1, cents(100))

	s.now = v.EndTime
	_, err := s.im.Bid(bctx, bidder2, s.id, cents(500))
	s.ErrorIs(err, domain.ErrAuctionFinished)

	got, err := s.im.GetAuction(bctx, s.id)
	s.Require().NoError(err)
	s.Equal(auction.StatusFinished, got.Status)
}

func (s *AuctionTestSuite) TestClaimTooEarly() {
	s.create(cents(100))
	_, err := s.im.ClaimWonNFT(bctx, seller, s.id)
	s.ErrorIs(err, domain.ErrEmptyWinner)

	v := s.bid(bidder1, cents(100))
	s.now = v.EndTime - 1
	_, err = s.im.ClaimWonNFT(bctx, bidder1, s.id)
	s.ErrorIs(err, domain.ErrAuctionNotFinished)

	_, err = s.im.ClaimWonNFT(bctx, bidder1, auction.Id{Contract: registryAddr, TokenId: "999"})
	s.ErrorIs(err, domain.ErrAuctionNotExists)
}

// royalty numerator 100: settling 1.0 pays the author 0.01, the seller 0.99
func (s *AuctionTestSuite) TestRoyaltySplit() {
	s.create(cents(100))
	v := s.bid(bidder1, cents(100))
	s.now = v.EndTime + 1

	p, err := s.im.ClaimWonNFT(bctx, bidder1, s.id)
	s.Require().NoError(err)
	s.Equal(author, p.Author)
	s.Equal(seller, p.Seller)
	s.Equal(0, cents(1).Cmp(p.Royalty))
	s.Equal(0, cents(99).Cmp(p.SellerProceeds))
	s.Equal(0, p.Amount.Cmp(p.Royalty.Add(p.SellerProceeds)))

	s.Equal(0, cents(1).Cmp(s.balance(author)))
	s.Equal(0, cents(1000+99).Cmp(s.balance(seller)))
	s.True(s.balance(escrow).IsZero())
	s.Equal(bidder1, s.owner())

	e := s.publisher.last()
	s.Equal(auction.EventAuctionSettled, e.Kind)
	s.Equal(bidder1, e.Winner)
	s.Equal(0, cents(1).Cmp(*e.Royalty))
}

// raising your own bid inside the overtime window only needs the difference
// approved and still pushes the close time
func (s *AuctionTestSuite) TestSameBidderRaiseAfterOvertime() {
	s.create(cents(100))
	end := s.bid(bidder1, cents(100)).EndTime
	s.Require().NoError(s.ledger.Approve(bctx, bidder1, escrow, cents(5)))

	s.now = end - 10
	v := s.bid(bidder1, cents(105))
	s.Equal(bidder1, v.HighBidder)
	s.Equal(end-10+overtime, v.EndTime)

	s.Equal(0, cents(1000-105).Cmp(s.balance(bidder1)))
	s.Equal(0, cents(105).Cmp(s.balance(escrow)))
	s.True(s.allowance(bidder1).IsZero())

	_, err := s.im.Bid(bctx, bidder1, s.id, cents(120))
	s.ErrorIs(err, domain.ErrTransferFailed)
	s.Equal(0, cents(105).Cmp(s.balance(escrow)))
}

func (s *AuctionTestSuite) TestTenBidsFromTheSameUser() {
	s.create(cents(100))
	for i := int64(0); i < 10; i++ {
		v := s.bid(bidder1, cents(100+10*i))
		s.Equal(bidder1, v.HighBidder)
	}

	s.Equal(0, cents(190).Cmp(s.balance(escrow)))
	s.Equal(0, cents(1000-190).Cmp(s.balance(bidder1)))
	s.Equal(0, cents(1000-190).Cmp(s.allowance(bidder1)))

	events, err := s.im.FindEvents(bctx, auction.EventWithAuction(s.id), auction.EventWithKinds(auction.EventBidSubmitted))
	s.Require().NoError(err)
	s.Len(events, 10)
}

func (s *AuctionTestSuite) TestSelfBid() {
	s.create(cents(100))
	v := s.bid(seller, cents(100))
	s.Equal(seller, v.HighBidder)
}

func (s *AuctionTestSuite) TestTransferFailureKeepsState() {
	s.create(cents(100))
	s.bid(bidder1, cents(100))
	s.Require().NoError(s.ledger.Approve(bctx, bidder2, escrow, domain.AmountFromInt64(0)))

	_, err := s.im.Bid(bctx, bidder2, s.id, cents(200))
	s.ErrorIs(err, domain.ErrTransferFailed)
	s.Equal(domain.ErrorClassCollaborator, domain.ClassOf(err))

	v, err := s.im.GetAuction(bctx, s.id)
	s.Require().NoError(err)
	s.Equal(bidder1, v.HighBidder)
	s.Equal(0, cents(1000).Cmp(s.balance(bidder2)))
	s.Equal(0, cents(100).Cmp(s.balance(escrow)))
}

func (s *AuctionTestSuite) TestFailedCommitRevertsMovements() {
	s.create(cents(100))
	s.bid(bidder1, cents(100))

	im := s.newUsecase(failingEvents{})
	_, err := im.Bid(bctx, bidder2, s.id, cents(200))
	s.Error(err)

	// neither the record nor the balances moved
	v, err := s.im.GetAuction(bctx, s.id)
	s.Require().NoError(err)
	s.Equal(bidder1, v.HighBidder)
	s.Equal(0, cents(900).Cmp(s.balance(bidder1)))
	s.Equal(0, cents(1000).Cmp(s.balance(bidder2)))
	s.Equal(0, cents(100).Cmp(s.balance(escrow)))
	// the rolled back debit gave the allowance back
	s.Equal(0, cents(900).Cmp(s.allowance(bidder1)))
	s.Equal(0, cents(1000).Cmp(s.allowance(bidder2)))

	s.now = v.EndTime
	_, err = im.ClaimWonNFT(bctx, bidder1, s.id)
	s.Error(err)
	s.Equal(escrow, s.owner())
	s.Equal(0, cents(1000).Cmp(s.balance(seller)))
	s.Equal(0, cents(100).Cmp(s.balance(escrow)))
}

func (s *AuctionTestSuite) TestConcurrentBids() {
	s.create(cents(100))

	bidders := []domain.Address{bidder1, bidder2, seller}
	errs := make([]error, len(bidders))
	wg := sync.WaitGroup{}
	for i, b := range bidders {
		wg.Add(1)
		go func(i int, b domain.Address) {
			defer wg.Done()
			_, errs[i] = s.im.Bid(bctx, b, s.id, cents(100))
		}(i, b)
	}
	wg.Wait()

	won := 0
	for _, err := range errs {
		if err == nil {
			won++
			continue
		}
		s.ErrorIs(err, domain.ErrSmallBidAmount)
	}
	s.Equal(1, won)
	s.Equal(0, cents(100).Cmp(s.balance(escrow)))
}

func (s *AuctionTestSuite) TestFindAllAndEvents() {
	s.create(cents(100))
	s.bid(bidder1, cents(100))

	all, err := s.im.FindAll(bctx, auction.AuctionWithSeller(seller))
	s.Require().NoError(err)
	s.Require().Len(all, 1)
	s.Equal(auction.StatusRunning, all[0].Status)

	all, err = s.im.FindAll(bctx, auction.AuctionWithStarted(false))
	s.Require().NoError(err)
	s.Empty(all)

	events, err := s.im.FindEvents(bctx, auction.EventWithAuction(s.id))
	s.Require().NoError(err)
	s.Require().Len(events, 2)
	s.Equal(auction.EventAuctionCreated, events[0].Kind)
	s.Equal(auction.EventBidSubmitted, events[1].Kind)
	s.Equal([]auction.EventKind{auction.EventAuctionCreated, auction.EventBidSubmitted}, s.publisher.kinds())
}

func (s *AuctionTestSuite) TestPayoutMatchesJournal() {
	// author auctions their own asset, proceeds and royalty go to one account
	tokenId, err := s.registry.MintWithTokenURI(bctx, author, "ipfs://second")
	s.Require().NoError(err)
	s.Require().NoError(s.registry.SetApprovalForAll(bctx, author, escrow, true))
	id := auction.Id{Contract: registryAddr, TokenId: tokenId}

	_, err = s.im.CreateAuction(bctx, author, id, cents(100))
	s.Require().NoError(err)
	v, err := s.im.Bid(bctx, bidder1, id, cents(100))
	s.Require().NoError(err)

	s.now = v.EndTime
	p, err := s.im.ClaimWonNFT(bctx, bidder2, id)
	s.Require().NoError(err)
	s.Equal(p.Author, p.Seller)
	s.Equal(0, cents(100).Cmp(s.balance(author)))
	s.IsType(&settlement.Payout{}, p)
}
