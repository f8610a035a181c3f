package domain

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/xerrors"
)

type Address string

const EmptyAddress = Address("0x0000000000000000000000000000000000000000")

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerPtr() *Address {
	lower := a.ToLower()
	return &lower
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0
}

// IsZero reports whether the address is unset or the all-zero address.
func (a Address) IsZero() bool {
	return a.IsEmpty() || a.ToLower() == EmptyAddress
}

func (a Address) IsValid() bool {
	return common.IsHexAddress(string(a))
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

// Checksum returns the EIP-55 form of the address.
func (a Address) Checksum() string {
	return common.HexToAddress(string(a)).Hex()
}

type TokenId string

func (i TokenId) String() string {
	return string(i)
}

func (i TokenId) IsValid() bool {
	id, ok := new(big.Int).SetString(i.String(), 10)
	return ok && id.Sign() >= 0
}

func (i TokenId) ToHexString() (string, error) {
	id, ok := new(big.Int).SetString(i.String(), 10)
	if !ok {
		return "", xerrors.Errorf("invalid id %s", i)
	}
	return fmt.Sprintf("%064x", id), nil
}
