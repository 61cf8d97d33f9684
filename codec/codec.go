// Package codec encodes addresses and amounts into the exact BCS layouts expected by the
// bridge programs on both chains, and decodes them back.
//
// All functions are pure: encoding identical input twice yields identical bytes.
package codec

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/aptos-labs/aptos-go-sdk/bcs"
	"github.com/shopspring/decimal"

	sdkerrors "github.com/smartcontractkit/ibt-bridge/sdk/errors"
	"github.com/smartcontractkit/ibt-bridge/types"
)

// Decimals selects the denomination an amount string is parsed in.
type Decimals uint8

const (
	// RawUnits parses the string as the integer amount itself. Used for the object chain,
	// whose 9 decimal token receives the entered number without rescaling.
	RawUnits Decimals = 0

	// WeiUnits scales the string by 10^18. Used for the account chain.
	WeiUnits Decimals = 18
)

var amountPattern = regexp.MustCompile(`^-?[0-9]*\.?[0-9]*$`)

// EncodeAccountAddress encodes an account-chain address as a BCS vector<u8>: the length byte
// 0x14 followed by the 20 raw address bytes.
func EncodeAccountAddress(text string) (types.EncodedField, error) {
	addr, err := types.AccountAddressFromHex(text)
	if err != nil {
		return types.EncodedField{}, err
	}

	return EncodeAccount(addr)
}

// EncodeAccount is EncodeAccountAddress for an already parsed address.
func EncodeAccount(addr types.AccountAddress) (types.EncodedField, error) {
	data, err := bcs.SerializeSingle(func(ser *bcs.Serializer) {
		ser.WriteBytes(addr[:])
	})
	if err != nil {
		return types.EncodedField{}, fmt.Errorf("serializing account address: %w", err)
	}

	return types.EncodedField{Kind: types.FieldKindLengthPrefixedAddress, Bytes: data}, nil
}

// EncodeObjectChainAddress encodes an object-chain address as its 32 raw bytes. Move addresses
// are fixed width and carry no length prefix.
func EncodeObjectChainAddress(text string) (types.EncodedField, error) {
	addr, err := types.ObjectChainAddressFromHex(text)
	if err != nil {
		return types.EncodedField{}, err
	}

	return EncodeObject(addr)
}

// EncodeObject is EncodeObjectChainAddress for an already parsed address.
func EncodeObject(addr types.ObjectChainAddress) (types.EncodedField, error) {
	data, err := bcs.SerializeSingle(func(ser *bcs.Serializer) {
		ser.FixedBytes(addr[:])
	})
	if err != nil {
		return types.EncodedField{}, fmt.Errorf("serializing object chain address: %w", err)
	}

	return types.EncodedField{Kind: types.FieldKindFixedAddress, Bytes: data}, nil
}

// EncodeAmount encodes the amount as a little-endian u64.
func EncodeAmount(amount types.TransferAmount) (types.EncodedField, error) {
	value, err := amount.Uint64()
	if err != nil {
		return types.EncodedField{}, err
	}

	data, err := bcs.SerializeSingle(func(ser *bcs.Serializer) {
		ser.U64(value)
	})
	if err != nil {
		return types.EncodedField{}, fmt.Errorf("serializing amount: %w", err)
	}

	return types.EncodedField{Kind: types.FieldKindU64Amount, Bytes: data}, nil
}

// EncodeByteVector encodes arbitrary bytes as a BCS vector<u8>.
func EncodeByteVector(data []byte) (types.EncodedField, error) {
	out, err := bcs.SerializeSingle(func(ser *bcs.Serializer) {
		ser.WriteBytes(data)
	})
	if err != nil {
		return types.EncodedField{}, fmt.Errorf("serializing byte vector: %w", err)
	}

	return types.EncodedField{Kind: types.FieldKindByteVector, Bytes: out}, nil
}

// ParseDenominatedAmount parses a decimal string into an integer amount in the smallest unit of
// the given denomination. Sub-unit digits beyond the denomination are truncated, never rounded.
// Empty, non-numeric, exponent notation and non-positive input is rejected. With RawUnits the
// input must be an integer.
func ParseDenominatedAmount(text string, decimals Decimals) (types.TransferAmount, error) {
	if decimals != RawUnits && decimals != WeiUnits {
		return types.TransferAmount{}, sdkerrors.NewInvalidAmountError(text, fmt.Sprintf("unsupported denomination with %d decimals", decimals))
	}
	if text == "" {
		return types.TransferAmount{}, sdkerrors.NewInvalidAmountError(text, "empty")
	}
	if !amountPattern.MatchString(text) || strings.Trim(text, "-.") == "" {
		return types.TransferAmount{}, sdkerrors.NewInvalidAmountError(text, "not a decimal number")
	}
	if decimals == RawUnits && strings.Contains(text, ".") {
		return types.TransferAmount{}, sdkerrors.NewInvalidAmountError(text, "must be an integer")
	}

	normalized := text
	if strings.HasSuffix(normalized, ".") {
		normalized += "0"
	}
	normalized = strings.Replace(normalized, "-.", "-0.", 1)
	if strings.HasPrefix(normalized, ".") {
		normalized = "0" + normalized
	}

	value, err := decimal.NewFromString(normalized)
	if err != nil {
		return types.TransferAmount{}, sdkerrors.NewInvalidAmountError(text, err.Error())
	}

	scaled := value.Shift(int32(decimals)).Truncate(0).BigInt()
	if scaled.Sign() <= 0 {
		return types.TransferAmount{}, sdkerrors.NewInvalidAmountError(text, "must be greater than zero")
	}

	return types.NewTransferAmount(scaled)
}
