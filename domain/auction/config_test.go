package auction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/goauction/base/ptr"
	"github.com/x-xyz/goauction/domain"
)

func validConfig() Config {
	return Config{
		OvertimeWindow:         900,
		AuctionDuration:        86400,
		MinPriceStepNumerator:  500,
		AuthorRoyaltyNumerator: 100,
		Administrator:          "0x0000000000000000000000000000000000000a11",
		TokenLedger:            "0x0000000000000000000000000000000000000b22",
		AssetRegistry:          "0x0000000000000000000000000000000000000c33",
		Escrow:                 "0x0000000000000000000000000000000000000d44",
	}
}

func TestValidateField(t *testing.T) {
	tests := []struct {
		field ConfigField
		value int64
		err   error
	}{
		{FieldOvertimeWindow, 59, domain.ErrInvalidParams},
		{FieldOvertimeWindow, 60, nil},
		{FieldOvertimeWindow, 31536000, nil},
		{FieldOvertimeWindow, 31536001, domain.ErrInvalidParams},
		{FieldAuctionDuration, 59, domain.ErrInvalidParams},
		{FieldAuctionDuration, 31536000, nil},
		{FieldMinPriceStepNumerator, 0, domain.ErrInvalidParams},
		{FieldMinPriceStepNumerator, 1, nil},
		{FieldMinPriceStepNumerator, 10000, nil},
		{FieldMinPriceStepNumerator, 10001, domain.ErrInvalidParams},
		{FieldAuthorRoyaltyNumerator, -1, domain.ErrInvalidParams},
		{FieldAuthorRoyaltyNumerator, 0, nil},
		{FieldAuthorRoyaltyNumerator, 10000, nil},
		{FieldAuthorRoyaltyNumerator, 10001, domain.ErrInvalidParams},
		{FieldAdministrator, 1, domain.ErrBadParamInput},
	}
	for _, tt := range tests {
		err := ValidateField(tt.field, tt.value)
		if tt.err == nil {
			assert.NoError(t, err, "%s=%d", tt.field, tt.value)
		} else {
			assert.ErrorIs(t, err, tt.err, "%s=%d", tt.field, tt.value)
		}
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := validConfig()
	require.NoError(t, cfg.Validate())

	for _, zero := range []func(*Config){
		func(c *Config) { c.Administrator = "" },
		func(c *Config) { c.TokenLedger = domain.EmptyAddress },
		func(c *Config) { c.AssetRegistry = "" },
		func(c *Config) { c.Escrow = "" },
	} {
		cfg := validConfig()
		zero(&cfg)
		require.ErrorIs(t, cfg.Validate(), domain.ErrZeroAddress)
	}

	cfg = validConfig()
	cfg.MinPriceStepNumerator = 0
	require.ErrorIs(t, cfg.Validate(), domain.ErrInvalidParams)

	// addresses are checked before bounds
	cfg.Escrow = ""
	require.ErrorIs(t, cfg.Validate(), domain.ErrZeroAddress)
}

func TestConfigPatchApply(t *testing.T) {
	cfg := validConfig()
	admin := domain.Address("0x0000000000000000000000000000000000000e55")
	p := &ConfigPatch{AuthorRoyaltyNumerator: ptr.Int64(0), Administrator: &admin}
	p.Apply(&cfg)

	require.Equal(t, int64(0), cfg.AuthorRoyaltyNumerator)
	require.Equal(t, admin, cfg.Administrator)
	require.Equal(t, int64(900), cfg.OvertimeWindow)
}
