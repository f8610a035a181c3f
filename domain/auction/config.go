package auction

import (
	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/domain"
)

const (
	MinTimeWindow    int64 = 60
	MaxTimeWindow    int64 = 365 * 24 * 3600
	MinStepNumerator int64 = 1
)

type ConfigField string

const (
	FieldOvertimeWindow         ConfigField = "overtimeWindow"
	FieldAuctionDuration        ConfigField = "auctionDuration"
	FieldMinPriceStepNumerator  ConfigField = "minPriceStepNumerator"
	FieldAuthorRoyaltyNumerator ConfigField = "authorRoyaltyNumerator"
	FieldAdministrator          ConfigField = "administrator"
)

var fieldBounds = map[ConfigField][2]int64{
	FieldOvertimeWindow:         {MinTimeWindow, MaxTimeWindow},
	FieldAuctionDuration:        {MinTimeWindow, MaxTimeWindow},
	FieldMinPriceStepNumerator:  {MinStepNumerator, Denominator},
	FieldAuthorRoyaltyNumerator: {0, Denominator},
}

// ValidateField checks value against the bounds of a numeric field.
func ValidateField(field ConfigField, value int64) error {
	b, ok := fieldBounds[field]
	if !ok {
		return domain.ErrBadParamInput
	}
	if value < b[0] || value > b[1] {
		return domain.ErrInvalidParams
	}
	return nil
}

// Config holds the engine parameters. Every ledger operation reads one copy
// of it and uses that copy throughout.
type Config struct {
	OvertimeWindow         int64          `json:"overtimeWindow" bson:"overtimeWindow" mapstructure:"overtime_window"`
	AuctionDuration        int64          `json:"auctionDuration" bson:"auctionDuration" mapstructure:"auction_duration"`
	MinPriceStepNumerator  int64          `json:"minPriceStepNumerator" bson:"minPriceStepNumerator" mapstructure:"min_price_step_numerator"`
	AuthorRoyaltyNumerator int64          `json:"authorRoyaltyNumerator" bson:"authorRoyaltyNumerator" mapstructure:"author_royalty_numerator"`
	Administrator          domain.Address `json:"administrator" bson:"administrator" mapstructure:"administrator"`
	TokenLedger            domain.Address `json:"tokenLedger" bson:"tokenLedger" mapstructure:"token_ledger"`
	AssetRegistry          domain.Address `json:"assetRegistry" bson:"assetRegistry" mapstructure:"asset_registry"`
	Escrow                 domain.Address `json:"escrow" bson:"escrow" mapstructure:"escrow"`
}

func (cfg *Config) ToLower() {
	cfg.Administrator = cfg.Administrator.ToLower()
	cfg.TokenLedger = cfg.TokenLedger.ToLower()
	cfg.AssetRegistry = cfg.AssetRegistry.ToLower()
	cfg.Escrow = cfg.Escrow.ToLower()
}

// Validate checks addresses first, then numeric bounds.
func (cfg *Config) Validate() error {
	for _, addr := range []domain.Address{cfg.TokenLedger, cfg.AssetRegistry, cfg.Administrator, cfg.Escrow} {
		if addr.IsZero() {
			return domain.ErrZeroAddress
		}
		if !addr.IsValid() {
			return domain.ErrInvalidAddress
		}
	}
	for field, value := range cfg.numerics() {
		if err := ValidateField(field, value); err != nil {
			return err
		}
	}
	return nil
}

func (cfg *Config) numerics() map[ConfigField]int64 {
	return map[ConfigField]int64{
		FieldOvertimeWindow:         cfg.OvertimeWindow,
		FieldAuctionDuration:        cfg.AuctionDuration,
		FieldMinPriceStepNumerator:  cfg.MinPriceStepNumerator,
		FieldAuthorRoyaltyNumerator: cfg.AuthorRoyaltyNumerator,
	}
}

// ConfigPatch carries the fields of one setter call. Nil fields are left as is.
type ConfigPatch struct {
	OvertimeWindow         *int64          `bson:"overtimeWindow"`
	AuctionDuration        *int64          `bson:"auctionDuration"`
	MinPriceStepNumerator  *int64          `bson:"minPriceStepNumerator"`
	AuthorRoyaltyNumerator *int64          `bson:"authorRoyaltyNumerator"`
	Administrator          *domain.Address `bson:"administrator"`
}

// Apply writes the set fields of p into cfg.
func (p *ConfigPatch) Apply(cfg *Config) {
	if p.OvertimeWindow != nil {
		cfg.OvertimeWindow = *p.OvertimeWindow
	}
	if p.AuctionDuration != nil {
		cfg.AuctionDuration = *p.AuctionDuration
	}
	if p.MinPriceStepNumerator != nil {
		cfg.MinPriceStepNumerator = *p.MinPriceStepNumerator
	}
	if p.AuthorRoyaltyNumerator != nil {
		cfg.AuthorRoyaltyNumerator = *p.AuthorRoyaltyNumerator
	}
	if p.Administrator != nil {
		cfg.Administrator = *p.Administrator
	}
}

type ConfigRepo interface {
	// Get returns domain.ErrNotInitialized before Create
	Get(c ctx.Ctx) (*Config, error)
	// Create returns domain.ErrAlreadyInitialized on a second call
	Create(c ctx.Ctx, cfg *Config) error
	Patch(c ctx.Ctx, patch *ConfigPatch) error
}

type ConfigUsecase interface {
	Initialize(c ctx.Ctx, cfg Config) (*Config, error)
	Get(c ctx.Ctx) (*Config, error)
	SetOvertimeWindow(c ctx.Ctx, caller domain.Address, value int64) (*Config, error)
	SetAuctionDuration(c ctx.Ctx, caller domain.Address, value int64) (*Config, error)
	SetMinPriceStepNumerator(c ctx.Ctx, caller domain.Address, value int64) (*Config, error)
	SetAuthorRoyaltyNumerator(c ctx.Ctx, caller domain.Address, value int64) (*Config, error)
	SetAdministrator(c ctx.Ctx, caller domain.Address, admin domain.Address) (*Config, error)
}
