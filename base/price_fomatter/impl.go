package pricefomatter

import (
	"github.com/shopspring/decimal"

	"github.com/x-xyz/goauction/domain"
)

type PriceFormatterCfg struct {
	Decimals int32
}

type impl struct {
	decimals int32
}

func NewPriceFormatter(cfg *PriceFormatterCfg) PriceFormatter {
	return &impl{decimals: cfg.Decimals}
}

func (f *impl) Decimals() int32 {
	return f.decimals
}

func (f *impl) DisplayPrice(amount domain.Amount) decimal.Decimal {
	return decimal.NewFromBigInt(amount.Big(), -f.decimals)
}

func (f *impl) Format(amount domain.Amount) string {
	return f.DisplayPrice(amount).String()
}

func (f *impl) Parse(display string) (domain.Amount, error) {
	d, err := decimal.NewFromString(display)
	if err != nil {
		return domain.Amount{}, domain.ErrInvalidNumberFormat
	}
	shifted := d.Shift(f.decimals)
	if !shifted.Equal(shifted.Truncate(0)) {
		return domain.Amount{}, domain.ErrInvalidNumberFormat
	}
	return domain.NewAmount(shifted.BigInt()), nil
}
