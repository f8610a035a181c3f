package pricefomatter

import (
	"github.com/shopspring/decimal"

	"github.com/x-xyz/goauction/domain"
)

// PriceFormatter converts between base unit amounts and the display amounts
// shown to users.
type PriceFormatter interface {
	Decimals() int32
	// DisplayPrice renders amount with the token decimals, e.g. "1.05"
	DisplayPrice(amount domain.Amount) decimal.Decimal
	Format(amount domain.Amount) string
	// Parse reads a display amount back into base units. Precision beyond the
	// token decimals is rejected rather than rounded.
	Parse(display string) (domain.Amount, error)
}
