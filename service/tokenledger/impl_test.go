package tokenledger

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/domain"
)

const (
	alice  = domain.Address("0x00000000000000000000000000000000000a11ce")
	bob    = domain.Address("0x0000000000000000000000000000000000000b0b")
	escrow = domain.Address("0x00000000000000000000000000000000000e5c00")
)

var bctx = ctx.Background()

type LedgerTestSuite struct {
	suite.Suite
	ledger Ledger
}

func (s *LedgerTestSuite) SetupTest() {
	s.ledger = New(Config{Address: "0x0000000000000000000000000000000000000070", Symbol: "THR", Decimals: 18})
	s.Require().NoError(s.ledger.Mint(bctx, alice, domain.AmountFromInt64(1000)))
}

func TestLedgerTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerTestSuite))
}

func (s *LedgerTestSuite) TestTransferFromNeedsAllowance() {
	cl := s.ledger.Client(escrow)
	err := cl.TransferFrom(bctx, alice, escrow, domain.AmountFromInt64(100))
	s.ErrorIs(err, domain.ErrInsufficientAllowed)

	s.Require().NoError(s.ledger.Approve(bctx, alice, escrow, domain.AmountFromInt64(150)))
	s.Require().NoError(cl.TransferFrom(bctx, alice, escrow, domain.AmountFromInt64(100)))

	s.Equal("900", s.ledger.BalanceOf(bctx, alice).String())
	s.Equal("100", s.ledger.BalanceOf(bctx, escrow).String())
	s.Equal("50", s.ledger.Allowance(bctx, alice, escrow).String())
}

func (s *LedgerTestSuite) TestTransferFromNeedsBalance() {
	s.Require().NoError(s.ledger.Approve(bctx, alice, escrow, domain.AmountFromInt64(5000)))
	err := s.ledger.Client(escrow).TransferFrom(bctx, alice, escrow, domain.AmountFromInt64(1001))
	s.ErrorIs(err, domain.ErrInsufficientBalance)
	s.Equal("5000", s.ledger.Allowance(bctx, alice, escrow).String(), "failed transfers keep the allowance")
}

func (s *LedgerTestSuite) TestTransferAndRevert() {
	alices := s.ledger.Client(alice)
	s.Require().NoError(alices.Transfer(bctx, bob, domain.AmountFromInt64(300)))
	s.Equal("300", s.ledger.BalanceOf(bctx, bob).String())

	s.Require().NoError(alices.Revert(bctx, bob, alice, domain.AmountFromInt64(300)))
	s.Equal("1000", s.ledger.BalanceOf(bctx, alice).String())
	s.True(s.ledger.BalanceOf(bctx, bob).IsZero())

	s.ErrorIs(alices.Revert(bctx, bob, alice, domain.AmountFromInt64(1)), domain.ErrInsufficientBalance)
}

func (s *LedgerTestSuite) TestAddressesAreCaseInsensitive() {
	s.Equal("1000", s.ledger.BalanceOf(bctx, "0x00000000000000000000000000000000000A11CE").String())
}

func (s *LedgerTestSuite) TestMintRejectsBadInput() {
	s.ErrorIs(s.ledger.Mint(bctx, "", domain.AmountFromInt64(1)), domain.ErrZeroAddress)
	s.ErrorIs(s.ledger.Mint(bctx, bob, domain.AmountFromInt64(0)), domain.ErrBadParamInput)
}

func (s *LedgerTestSuite) TestRevertFromRestoresAllowance() {
	cl := s.ledger.Client(escrow)
	s.Require().NoError(s.ledger.Approve(bctx, alice, escrow, domain.AmountFromInt64(500)))
	s.Require().NoError(cl.TransferFrom(bctx, alice, escrow, domain.AmountFromInt64(200)))
	s.Equal("300", s.ledger.Allowance(bctx, alice, escrow).String())

	s.Require().NoError(cl.RevertFrom(bctx, alice, escrow, domain.AmountFromInt64(200)))
	s.Equal("1000", s.ledger.BalanceOf(bctx, alice).String())
	s.True(s.ledger.BalanceOf(bctx, escrow).IsZero())
	s.Equal("500", s.ledger.Allowance(bctx, alice, escrow).String())

	s.ErrorIs(cl.RevertFrom(bctx, alice, escrow, domain.AmountFromInt64(1)), domain.ErrInsufficientBalance)
	s.Equal("500", s.ledger.Allowance(bctx, alice, escrow).String())
}
