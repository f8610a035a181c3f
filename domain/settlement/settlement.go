package settlement

import (
	"fmt"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/domain"
)

const royaltyDenominator int64 = 10000

type EntryKind string

const (
	// EntryDebit moves tokens from a payer into escrow
	EntryDebit EntryKind = "debit"
	// EntryCredit moves tokens out of escrow to a payee
	EntryCredit EntryKind = "credit"
	// EntryCustody moves an asset between owners
	EntryCustody EntryKind = "custody"
)

// Entry is one applied movement.
type Entry struct {
	Kind     EntryKind      `json:"kind"`
	From     domain.Address `json:"from"`
	To       domain.Address `json:"to"`
	Amount   domain.Amount  `json:"amount"`
	Contract domain.Address `json:"contract,omitempty"`
	TokenId  domain.TokenId `json:"tokenId,omitempty"`
}

// Journal records the movements of one operation in the order they were
// applied, so they can be reversed newest first.
type Journal struct {
	Entries []Entry `json:"entries"`
}

func (j *Journal) Append(e Entry) {
	j.Entries = append(j.Entries, e)
}

func (j *Journal) Len() int {
	if j == nil {
		return 0
	}
	return len(j.Entries)
}

// BidTransfer moves a new high bid into escrow and refunds the outbid one.
// When the high bidder raises their own bid only the difference is debited.
type BidTransfer struct {
	Bidder     domain.Address
	Amount     domain.Amount
	PrevBidder domain.Address
	PrevAmount domain.Amount
}

// CustodyOrder moves a listed asset between its seller and escrow.
type CustodyOrder struct {
	Contract domain.Address
	TokenId  domain.TokenId
	Seller   domain.Address
}

// SettleOrder finalizes a won auction.
type SettleOrder struct {
	Contract         domain.Address
	TokenId          domain.TokenId
	Seller           domain.Address
	Winner           domain.Address
	Amount           domain.Amount
	RoyaltyNumerator int64
}

// Payout is what a settlement paid to whom.
type Payout struct {
	Winner         domain.Address `json:"winner"`
	Seller         domain.Address `json:"seller"`
	Author         domain.Address `json:"author"`
	Amount         domain.Amount  `json:"amount"`
	Royalty        domain.Amount  `json:"royalty"`
	SellerProceeds domain.Amount  `json:"sellerProceeds"`
}

// Royalty is floor(amount * numerator / 10000).
func Royalty(amount domain.Amount, numerator int64) domain.Amount {
	return amount.MulDiv(numerator, royaltyDenominator)
}

// Split divides amount between author and seller. Rounding dust goes to the
// seller so the two parts always add up to amount.
func Split(amount domain.Amount, numerator int64) (royalty, proceeds domain.Amount) {
	royalty = Royalty(amount, numerator)
	return royalty, amount.Sub(royalty)
}

type Usecase interface {
	// Deposit takes the asset from the seller into escrow. The seller must
	// have approved the escrow account.
	Deposit(c ctx.Ctx, o CustodyOrder) (*Journal, error)
	// Withdraw hands an escrowed asset back to the seller
	Withdraw(c ctx.Ctx, o CustodyOrder) (*Journal, error)
	Escrow(c ctx.Ctx, t BidTransfer) (*Journal, error)
	Settle(c ctx.Ctx, o SettleOrder) (*Payout, *Journal, error)
	// Revert applies reversing entries for j newest first
	Revert(c ctx.Ctx, j *Journal) error
}

// TransferError is a failed movement. It matches domain.ErrTransferFailed and
// keeps the collaborator's error as Cause.
type TransferError struct {
	Entry Entry
	Cause error
}

func (e *TransferError) Error() string {
	return fmt.Sprintf("%s: %s %s -> %s: %v", domain.ErrTransferFailed, e.Entry.Kind, e.Entry.From, e.Entry.To, e.Cause)
}

func (e *TransferError) Is(target error) bool {
	return target == domain.ErrTransferFailed
}
