package types //nolint:revive,nolintlint // allow pkg name 'types'

import (
	"encoding/hex"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	sdkerrors "github.com/smartcontractkit/ibt-bridge/sdk/errors"
)

const (
	// AccountAddressLength is the raw length of an account-chain (EVM) address.
	AccountAddressLength = 20

	// ObjectChainAddressLength is the raw length of an object-chain (Sui) address or object ID.
	ObjectChainAddressLength = 32
)

// AccountAddress is a raw account-chain address.
type AccountAddress [AccountAddressLength]byte

// AccountAddressFromHex parses a 40 hex digit address with an optional 0x prefix. Mixed case
// input is accepted without enforcing the EIP-55 checksum.
func AccountAddressFromHex(s string) (AccountAddress, error) {
	data, err := decodeHexAddress(s, AccountAddressLength)
	if err != nil {
		return AccountAddress{}, err
	}

	return AccountAddress(data), nil
}

// Hex returns the EIP-55 checksummed form.
func (a AccountAddress) Hex() string {
	return common.Address(a).Hex()
}

func (a AccountAddress) String() string {
	return a.Hex()
}

// Common converts the address to its go-ethereum representation.
func (a AccountAddress) Common() common.Address {
	return common.Address(a)
}

// ObjectChainAddress is a raw object-chain address. Object IDs share the same layout.
type ObjectChainAddress [ObjectChainAddressLength]byte

// ObjectChainAddressFromHex parses a 64 hex digit address with an optional 0x prefix. Short
// forms such as 0x2 are rejected, the caller must supply the full width.
func ObjectChainAddressFromHex(s string) (ObjectChainAddress, error) {
	data, err := decodeHexAddress(s, ObjectChainAddressLength)
	if err != nil {
		return ObjectChainAddress{}, err
	}

	return ObjectChainAddress(data), nil
}

// Hex returns the lower case, 0x prefixed, full width form used by Sui RPC responses.
func (a ObjectChainAddress) Hex() string {
	return "0x" + hex.EncodeToString(a[:])
}

func (a ObjectChainAddress) String() string {
	return a.Hex()
}

func decodeHexAddress(s string, length int) ([]byte, error) {
	str := s
	if strings.HasPrefix(str, "0x") || strings.HasPrefix(str, "0X") {
		str = str[2:]
	}
	if len(str) != length*2 {
		return nil, sdkerrors.NewInvalidAddressError(s, length, "wrong number of hex digits")
	}

	data, err := hex.DecodeString(str)
	if err != nil {
		return nil, sdkerrors.NewInvalidAddressError(s, length, "not hex encoded")
	}

	return data, nil
}

// AddressKind tags the variant held by a ChainAddress.
type AddressKind uint8

const (
	AddressKindUnknown AddressKind = iota
	AddressKindAccount
	AddressKindObject
)

func (k AddressKind) String() string {
	switch k {
	case AddressKindAccount:
		return "account"
	case AddressKindObject:
		return "object"
	default:
		return "unknown"
	}
}

// ChainAddress holds either an AccountAddress or an ObjectChainAddress. The zero value holds
// neither and reports AddressKindUnknown.
type ChainAddress struct {
	kind    AddressKind
	account AccountAddress
	object  ObjectChainAddress
}

func NewAccountChainAddress(addr AccountAddress) ChainAddress {
	return ChainAddress{kind: AddressKindAccount, account: addr}
}

func NewObjectChainAddress(addr ObjectChainAddress) ChainAddress {
	return ChainAddress{kind: AddressKindObject, object: addr}
}

// ParseChainAddress parses s as an address of the given kind.
func ParseChainAddress(kind AddressKind, s string) (ChainAddress, error) {
	switch kind {
	case AddressKindAccount:
		addr, err := AccountAddressFromHex(s)
		if err != nil {
			return ChainAddress{}, err
		}

		return NewAccountChainAddress(addr), nil
	case AddressKindObject:
		addr, err := ObjectChainAddressFromHex(s)
		if err != nil {
			return ChainAddress{}, err
		}

		return NewObjectChainAddress(addr), nil
	default:
		return ChainAddress{}, sdkerrors.NewInvalidAddressError(s, 0, "unknown address kind")
	}
}

func (c ChainAddress) Kind() AddressKind {
	return c.kind
}

func (c ChainAddress) Account() (AccountAddress, bool) {
	return c.account, c.kind == AddressKindAccount
}

func (c ChainAddress) Object() (ObjectChainAddress, bool) {
	return c.object, c.kind == AddressKindObject
}

func (c ChainAddress) String() string {
	switch c.kind {
	case AddressKindAccount:
		return c.account.Hex()
	case AddressKindObject:
		return c.object.Hex()
	default:
		return ""
	}
}
