package codec

import (
	"fmt"

	"github.com/aptos-labs/aptos-go-sdk/bcs"

	sdkerrors "github.com/smartcontractkit/ibt-bridge/sdk/errors"
	"github.com/smartcontractkit/ibt-bridge/types"
)

// DecodeAccountAddress reverses EncodeAccountAddress.
func DecodeAccountAddress(field types.EncodedField) (types.AccountAddress, error) {
	if err := expectKind(field, types.FieldKindLengthPrefixedAddress); err != nil {
		return types.AccountAddress{}, err
	}

	data, err := decodeVector(field.Bytes)
	if err != nil {
		return types.AccountAddress{}, err
	}
	if len(data) != types.AccountAddressLength {
		return types.AccountAddress{}, sdkerrors.NewInvalidAddressError(fmt.Sprintf("%x", data), types.AccountAddressLength, "wrong decoded length")
	}

	return types.AccountAddress(data), nil
}

// DecodeObjectChainAddress reverses EncodeObjectChainAddress.
func DecodeObjectChainAddress(field types.EncodedField) (types.ObjectChainAddress, error) {
	if err := expectKind(field, types.FieldKindFixedAddress); err != nil {
		return types.ObjectChainAddress{}, err
	}
	if len(field.Bytes) != types.ObjectChainAddressLength {
		return types.ObjectChainAddress{}, sdkerrors.NewInvalidAddressError(fmt.Sprintf("%x", field.Bytes), types.ObjectChainAddressLength, "wrong decoded length")
	}

	des := bcs.NewDeserializer(field.Bytes)
	data := des.ReadFixedBytes(types.ObjectChainAddressLength)
	if err := des.Error(); err != nil {
		return types.ObjectChainAddress{}, fmt.Errorf("deserializing object chain address: %w", err)
	}

	return types.ObjectChainAddress(data), nil
}

// DecodeAmount reverses EncodeAmount.
func DecodeAmount(field types.EncodedField) (uint64, error) {
	if err := expectKind(field, types.FieldKindU64Amount); err != nil {
		return 0, err
	}
	if err := field.Validate(); err != nil {
		return 0, err
	}

	des := bcs.NewDeserializer(field.Bytes)
	value := des.U64()
	if err := des.Error(); err != nil {
		return 0, fmt.Errorf("deserializing amount: %w", err)
	}

	return value, nil
}

// DecodeByteVector returns the payload of a BCS vector<u8>. It accepts byte-vector and
// length-prefixed-address fields.
func DecodeByteVector(field types.EncodedField) ([]byte, error) {
	if field.Kind != types.FieldKindByteVector && field.Kind != types.FieldKindLengthPrefixedAddress {
		return nil, fmt.Errorf("field kind %s is not a byte vector", field.Kind)
	}

	return decodeVector(field.Bytes)
}

func decodeVector(data []byte) ([]byte, error) {
	des := bcs.NewDeserializer(data)
	out := des.ReadBytes()
	if err := des.Error(); err != nil {
		return nil, fmt.Errorf("deserializing byte vector: %w", err)
	}
	if des.Remaining() != 0 {
		return nil, fmt.Errorf("byte vector has %d trailing bytes", des.Remaining())
	}

	return out, nil
}

func expectKind(field types.EncodedField, kind types.FieldKind) error {
	if field.Kind != kind {
		return fmt.Errorf("field kind %s, expected %s", field.Kind, kind)
	}

	return nil
}
