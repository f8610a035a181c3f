package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/xerrors"
)

func TestClassOf(t *testing.T) {
	tests := []struct {
		err  error
		want ErrorClass
	}{
		{nil, ErrorClassUnknown},
		{errors.New("boom"), ErrorClassUnknown},
		{ErrInvalidParams, ErrorClassParameter},
		{ErrZeroAddress, ErrorClassParameter},
		{ErrAssetNotAllowed, ErrorClassParameter},
		{ErrAuctionExists, ErrorClassState},
		{ErrAuctionAlreadyStarted, ErrorClassState},
		{ErrEmptyWinner, ErrorClassState},
		{ErrSmallBidAmount, ErrorClassEconomic},
		{ErrNoRights, ErrorClassAuthorization},
		{ErrTransferFailed, ErrorClassCollaborator},
		{ErrAuctionNotExists, ErrorClassNotFound},
		{xerrors.Errorf("bid: %w", ErrSmallBidAmount), ErrorClassEconomic},
		{xerrors.Errorf("ledger: %w", ErrInsufficientBalance), ErrorClassCollaborator},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassOf(tt.err), "%v", tt.err)
	}
}

func TestErrorClassString(t *testing.T) {
	assert.Equal(t, "economic", ErrorClassEconomic.String())
	assert.Equal(t, "unknown", ErrorClass(99).String())
}
