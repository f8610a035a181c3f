package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput       = errors.New("Given Param is not valid")
	ErrInvalidNumberFormat = errors.New("invalid number format")
	ErrInvalidAddress      = errors.New("Invalid address")
	ErrInvalidSignature    = errors.New("Invalid signature")
	ErrAlreadyInitialized  = errors.New("ALREADY_INITIALIZED")
	ErrNotInitialized      = errors.New("NOT_INITIALIZED")
)

// parameter validation
var (
	ErrInvalidParams   = errors.New("INVALID_AUCTION_PARAMS")
	ErrZeroAddress     = errors.New("ZERO_ADDRESS")
	ErrAssetNotAllowed = errors.New("NFT_CONTRACT_IS_NOT_ALLOWED")
)

// state machine violations
var (
	ErrAuctionExists         = errors.New("AUCTION_EXISTS")
	ErrAuctionNotExists      = errors.New("AUCTION_NOT_EXISTS")
	ErrAuctionAlreadyStarted = errors.New("AUCTION_ALREADY_STARTED")
	ErrAuctionFinished       = errors.New("AUCTION_FINISHED")
	ErrAuctionNotFinished    = errors.New("AUCTION_NOT_FINISHED")
	ErrEmptyWinner           = errors.New("EMPTY_WINNER")
)

// economic validation
var (
	ErrSmallBidAmount = errors.New("SMALL_BID_AMOUNT")
)

// authorization
var (
	ErrNoRights = errors.New("NO_RIGHTS")
)

// collaborator failures
var (
	ErrTransferFailed      = errors.New("TRANSFER_FAILED")
	ErrInsufficientBalance = errors.New("INSUFFICIENT_BALANCE")
	ErrInsufficientAllowed = errors.New("INSUFFICIENT_ALLOWANCE")
	ErrUnknownAsset        = errors.New("UNKNOWN_ASSET")
	ErrNotAssetOwner       = errors.New("NOT_ASSET_OWNER")
	ErrNotApproved         = errors.New("NOT_APPROVED")
	ErrEmptyMetadata       = errors.New("EMPTY_METADATA")
)

type ErrorClass int

const (
	ErrorClassUnknown ErrorClass = iota
	ErrorClassParameter
	ErrorClassState
	ErrorClassEconomic
	ErrorClassAuthorization
	ErrorClassCollaborator
	ErrorClassNotFound
)

var errorClasses = []struct {
	class ErrorClass
	errs  []error
}{
	{ErrorClassNotFound, []error{ErrNotFound, ErrAuctionNotExists, ErrUnknownAsset}},
	{ErrorClassParameter, []error{ErrInvalidParams, ErrZeroAddress, ErrAssetNotAllowed, ErrBadParamInput, ErrInvalidNumberFormat, ErrInvalidAddress, ErrEmptyMetadata}},
	{ErrorClassState, []error{ErrAuctionExists, ErrAuctionAlreadyStarted, ErrAuctionFinished, ErrAuctionNotFinished, ErrEmptyWinner, ErrAlreadyInitialized, ErrNotInitialized}},
	{ErrorClassEconomic, []error{ErrSmallBidAmount}},
	{ErrorClassAuthorization, []error{ErrNoRights, ErrInvalidSignature}},
	{ErrorClassCollaborator, []error{ErrTransferFailed, ErrInsufficientBalance, ErrInsufficientAllowed, ErrNotAssetOwner, ErrNotApproved}},
}

// ClassOf returns the retry class of err. Collaborator failures are checked
// last so a wrapped domain error keeps its own class.
func ClassOf(err error) ErrorClass {
	if err == nil {
		return ErrorClassUnknown
	}
	for _, c := range errorClasses {
		for _, e := range c.errs {
			if errors.Is(err, e) {
				return c.class
			}
		}
	}
	return ErrorClassUnknown
}

func (c ErrorClass) String() string {
	switch c {
	case ErrorClassParameter:
		return "parameter"
	case ErrorClassState:
		return "state"
	case ErrorClassEconomic:
		return "economic"
	case ErrorClassAuthorization:
		return "authorization"
	case ErrorClassCollaborator:
		return "collaborator"
	case ErrorClassNotFound:
		return "notFound"
	}
	return "unknown"
}
