package domain

import (
	"encoding/json"
	"math/big"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"golang.org/x/xerrors"
)

// Amount is an integer count of token base units. It is immutable, the zero
// value is 0, and it travels as a decimal string in json and bson.
type Amount struct {
	v *big.Int
}

func NewAmount(v *big.Int) Amount {
	if v == nil {
		return Amount{}
	}
	return Amount{new(big.Int).Set(v)}
}

func AmountFromInt64(v int64) Amount {
	return Amount{big.NewInt(v)}
}

// ParseAmount parses a base-unit integer amount such as "1000000000000000000".
func ParseAmount(s string) (Amount, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Amount{}, ErrInvalidNumberFormat
	}
	return Amount{v}, nil
}

// Big returns a copy of the underlying integer.
func (a Amount) Big() *big.Int {
	if a.v == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(a.v)
}

func (a Amount) String() string {
	if a.v == nil {
		return "0"
	}
	return a.v.String()
}

func (a Amount) Sign() int {
	if a.v == nil {
		return 0
	}
	return a.v.Sign()
}

func (a Amount) IsZero() bool {
	return a.Sign() == 0
}

func (a Amount) Cmp(b Amount) int {
	return a.Big().Cmp(b.Big())
}

func (a Amount) Add(b Amount) Amount {
	return Amount{new(big.Int).Add(a.Big(), b.Big())}
}

func (a Amount) Sub(b Amount) Amount {
	return Amount{new(big.Int).Sub(a.Big(), b.Big())}
}

// MulDiv returns floor(a * num / den) for non-negative operands.
func (a Amount) MulDiv(num, den int64) Amount {
	v := new(big.Int).Mul(a.Big(), big.NewInt(num))
	return Amount{v.Quo(v, big.NewInt(den))}
}

// MulDivCeil returns ceil(a * num / den) for non-negative operands.
func (a Amount) MulDivCeil(num, den int64) Amount {
	v := new(big.Int).Mul(a.Big(), big.NewInt(num))
	v.Add(v, big.NewInt(den-1))
	return Amount{v.Quo(v, big.NewInt(den))}
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return xerrors.Errorf("amount must be a decimal string: %w", ErrInvalidNumberFormat)
	}
	v, err := ParseAmount(s)
	if err != nil {
		return err
	}
	*a = v
	return nil
}

func (a Amount) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(a.String())
}

func (a *Amount) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	if t == bsontype.Null {
		*a = Amount{}
		return nil
	}
	s, ok := bson.RawValue{Type: t, Value: data}.StringValueOK()
	if !ok {
		return xerrors.Errorf("amount stored as %s: %w", t, ErrInvalidNumberFormat)
	}
	v, err := ParseAmount(s)
	if err != nil {
		return err
	}
	*a = v
	return nil
}
