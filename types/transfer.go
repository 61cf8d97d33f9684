package types //nolint:revive,nolintlint // allow pkg name 'types'

import (
	"fmt"

	"github.com/google/uuid"
)

// Direction is the way value moves across the bridge.
type Direction uint8

const (
	DirectionUnknown Direction = iota
	// DirectionToObjectChain burns on the account chain and mints on the object chain.
	DirectionToObjectChain
	// DirectionToAccountChain burns on the object chain and mints on the account chain.
	DirectionToAccountChain
)

func (d Direction) String() string {
	switch d {
	case DirectionToObjectChain:
		return "to-object-chain"
	case DirectionToAccountChain:
		return "to-account-chain"
	default:
		return "unknown"
	}
}

func (d Direction) MarshalText() ([]byte, error) {
	if d != DirectionToObjectChain && d != DirectionToAccountChain {
		return nil, fmt.Errorf("invalid direction %d", d)
	}

	return []byte(d.String()), nil
}

func (d *Direction) UnmarshalText(text []byte) error {
	switch string(text) {
	case DirectionToObjectChain.String():
		*d = DirectionToObjectChain
	case DirectionToAccountChain.String():
		*d = DirectionToAccountChain
	default:
		return fmt.Errorf("invalid direction %q", string(text))
	}

	return nil
}

// SourceKind is the address kind of the participant whose tokens are burned.
func (d Direction) SourceKind() AddressKind {
	switch d {
	case DirectionToObjectChain:
		return AddressKindAccount
	case DirectionToAccountChain:
		return AddressKindObject
	default:
		return AddressKindUnknown
	}
}

// DestinationKind is the address kind of the participant receiving the minted tokens.
func (d Direction) DestinationKind() AddressKind {
	switch d {
	case DirectionToObjectChain:
		return AddressKindObject
	case DirectionToAccountChain:
		return AddressKindAccount
	default:
		return AddressKindUnknown
	}
}

// TransferIntent is one user requested transfer. It is consumed by a single Execute call and
// never persisted or retried automatically.
type TransferIntent struct {
	ID        string    `validate:"omitempty,uuid"`
	Direction Direction `validate:"required"`

	// Amount is the decimal string the user entered. It is parsed once per denomination: as an
	// 18 decimal value for the account chain and as a raw integer for the object chain.
	Amount string `validate:"required"`

	Source      ChainAddress
	Destination ChainAddress

	// Asset is the coin object to burn. Required for DirectionToAccountChain only.
	Asset *AssetReference
}

// NewTransferIntent builds an intent with a fresh ID.
func NewTransferIntent(direction Direction, amount string, source, destination ChainAddress, asset *AssetReference) TransferIntent {
	return TransferIntent{
		ID:          uuid.NewString(),
		Direction:   direction,
		Amount:      amount,
		Source:      source,
		Destination: destination,
		Asset:       asset,
	}
}

// LegReceipt is the confirmation returned by a chain collaborator for one leg.
type LegReceipt struct {
	Chain  string
	TxHash string
	Block  uint64

	// Raw is the chain specific receipt or effects object. Users must cast it.
	Raw any
}

// DestinationLeg is the fully derived second leg of a transfer whose source leg committed.
// It is everything needed to mint the already burned amount again.
type DestinationLeg struct {
	IntentID  string
	Direction Direction

	// ObjectChainAmount is the raw integer minted on the object chain.
	ObjectChainAmount TransferAmount
	// AccountChainAmount is the 18 decimal amount minted on the account chain.
	AccountChainAmount TransferAmount

	Recipient ChainAddress
}

func (l DestinationLeg) String() string {
	amount := l.ObjectChainAmount
	if l.Direction == DirectionToAccountChain {
		amount = l.AccountChainAmount
	}

	return fmt.Sprintf("intent %s: mint %s to %s (%s)", l.IntentID, amount, l.Recipient, l.Direction)
}
