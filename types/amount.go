package types //nolint:revive,nolintlint // allow pkg name 'types'

import (
	"math/big"

	sdkerrors "github.com/smartcontractkit/ibt-bridge/sdk/errors"
)

// TransferAmount is a non-negative integer amount in a chain's smallest unit. The zero value
// is zero.
type TransferAmount struct {
	value *big.Int
}

// NewTransferAmount copies v. Negative values are rejected.
func NewTransferAmount(v *big.Int) (TransferAmount, error) {
	if v == nil {
		return TransferAmount{}, nil
	}
	if v.Sign() < 0 {
		return TransferAmount{}, sdkerrors.NewInvalidAmountError(v.String(), "must not be negative")
	}

	return TransferAmount{value: new(big.Int).Set(v)}, nil
}

func NewTransferAmountFromUint64(v uint64) TransferAmount {
	return TransferAmount{value: new(big.Int).SetUint64(v)}
}

// BigInt returns a copy of the amount.
func (a TransferAmount) BigInt() *big.Int {
	if a.value == nil {
		return new(big.Int)
	}

	return new(big.Int).Set(a.value)
}

// Uint64 returns the amount as a chain-native u64.
func (a TransferAmount) Uint64() (uint64, error) {
	if a.value == nil {
		return 0, nil
	}
	if !a.value.IsUint64() {
		return 0, sdkerrors.NewAmountOutOfRangeError(a.value.String())
	}

	return a.value.Uint64(), nil
}

func (a TransferAmount) IsZero() bool {
	return a.value == nil || a.value.Sign() == 0
}

func (a TransferAmount) Cmp(b TransferAmount) int {
	return a.BigInt().Cmp(b.BigInt())
}

func (a TransferAmount) String() string {
	if a.value == nil {
		return "0"
	}

	return a.value.String()
}
