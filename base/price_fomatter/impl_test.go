package pricefomatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/goauction/domain"
)

func TestFormat(t *testing.T) {
	f := NewPriceFormatter(&PriceFormatterCfg{Decimals: 18})

	tests := []struct {
		amount string
		want   string
	}{
		{"1000000000000000000", "1"},
		{"1050000000000000000", "1.05"},
		{"1", "0.000000000000000001"},
		{"0", "0"},
	}
	for _, tt := range tests {
		a, err := domain.ParseAmount(tt.amount)
		require.NoError(t, err)
		assert.Equal(t, tt.want, f.Format(a), tt.amount)
	}
}

func TestParse(t *testing.T) {
	f := NewPriceFormatter(&PriceFormatterCfg{Decimals: 18})

	a, err := f.Parse("1.05")
	require.NoError(t, err)
	assert.Equal(t, "1050000000000000000", a.String())

	a, err = f.Parse("0.000000000000000001")
	require.NoError(t, err)
	assert.Equal(t, "1", a.String())

	_, err = f.Parse("0.0000000000000000001")
	assert.ErrorIs(t, err, domain.ErrInvalidNumberFormat)

	_, err = f.Parse("one")
	assert.ErrorIs(t, err, domain.ErrInvalidNumberFormat)
}

func TestZeroDecimals(t *testing.T) {
	f := NewPriceFormatter(&PriceFormatterCfg{})
	a, err := f.Parse("42")
	require.NoError(t, err)
	assert.Equal(t, "42", f.Format(a))
	assert.Equal(t, int32(0), f.Decimals())
}
