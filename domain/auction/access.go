package auction

import "github.com/x-xyz/goauction/domain"

type Capability int

const (
	CapAnyone Capability = iota
	CapAdmin
	CapSellerOrAdmin
)

type Operation string

const (
	OpCreateAuction             Operation = "createAuction"
	OpChangeReservePrice        Operation = "changeReservePrice"
	OpCancelAuction             Operation = "cancelAuction"
	OpBid                       Operation = "bid"
	OpClaimWonNFT               Operation = "claimWonNFT"
	OpSetOvertimeWindow         Operation = "setOvertimeWindow"
	OpSetAuctionDuration        Operation = "setAuctionDuration"
	OpSetMinPriceStepNumerator  Operation = "setMinPriceStepNumerator"
	OpSetAuthorRoyaltyNumerator Operation = "setAuthorRoyaltyNumerator"
	OpSetAdministrator          Operation = "setAdministrator"
)

// OperationCapabilities lists who may call each operation. Bid and claim are
// open to anyone, including the seller.
var OperationCapabilities = map[Operation]Capability{
	OpCreateAuction:             CapAnyone,
	OpChangeReservePrice:        CapSellerOrAdmin,
	OpCancelAuction:             CapSellerOrAdmin,
	OpBid:                       CapAnyone,
	OpClaimWonNFT:               CapAnyone,
	OpSetOvertimeWindow:         CapAdmin,
	OpSetAuctionDuration:        CapAdmin,
	OpSetMinPriceStepNumerator:  CapAdmin,
	OpSetAuthorRoyaltyNumerator: CapAdmin,
	OpSetAdministrator:          CapAdmin,
}

var setterOperations = map[ConfigField]Operation{
	FieldOvertimeWindow:         OpSetOvertimeWindow,
	FieldAuctionDuration:        OpSetAuctionDuration,
	FieldMinPriceStepNumerator:  OpSetMinPriceStepNumerator,
	FieldAuthorRoyaltyNumerator: OpSetAuthorRoyaltyNumerator,
	FieldAdministrator:          OpSetAdministrator,
}

// SetterOperation is the operation guarding the setter of field.
func SetterOperation(field ConfigField) Operation {
	return setterOperations[field]
}

func IsAdmin(caller domain.Address, cfg *Config) bool {
	return !caller.IsZero() && cfg != nil && caller.Equals(cfg.Administrator)
}

func IsSeller(caller domain.Address, a *Auction) bool {
	return !caller.IsZero() && a != nil && caller.Equals(a.Seller)
}

// Authorize returns domain.ErrNoRights when caller lacks the capability of op.
// a may be nil for operations not bound to a record.
func Authorize(op Operation, caller domain.Address, cfg *Config, a *Auction) error {
	capability, ok := OperationCapabilities[op]
	if !ok {
		return domain.ErrNoRights
	}
	switch capability {
	case CapAnyone:
		return nil
	case CapAdmin:
		if IsAdmin(caller, cfg) {
			return nil
		}
	case CapSellerOrAdmin:
		if IsAdmin(caller, cfg) || IsSeller(caller, a) {
			return nil
		}
	}
	return domain.ErrNoRights
}
