package types //nolint:revive,nolintlint // allow pkg name 'types'

import (
	"fmt"
)

// FieldKind declares the logical Move type of an EncodedField.
type FieldKind string

const (
	FieldKindU64Amount             FieldKind = "u64-amount"
	FieldKindLengthPrefixedAddress FieldKind = "length-prefixed-address"
	FieldKindFixedAddress          FieldKind = "fixed-address"
	FieldKindByteVector            FieldKind = "byte-vector"
)

const (
	u64AmountLength             = 8
	lengthPrefixedAddressLength = 1 + AccountAddressLength
)

// EncodedField is a BCS encoded pure argument ready to be handed to an object-chain program.
type EncodedField struct {
	Kind  FieldKind
	Bytes []byte
}

// Validate checks the byte length against the contract of the field kind.
func (f EncodedField) Validate() error {
	switch f.Kind {
	case FieldKindU64Amount:
		return f.checkLength(u64AmountLength)
	case FieldKindLengthPrefixedAddress:
		if err := f.checkLength(lengthPrefixedAddressLength); err != nil {
			return err
		}
		if f.Bytes[0] != AccountAddressLength {
			return fmt.Errorf("field %s: length prefix is %d, expected %d", f.Kind, f.Bytes[0], AccountAddressLength)
		}

		return nil
	case FieldKindFixedAddress:
		return f.checkLength(ObjectChainAddressLength)
	case FieldKindByteVector:
		if len(f.Bytes) == 0 {
			return fmt.Errorf("field %s: missing length prefix", f.Kind)
		}

		return nil
	default:
		return fmt.Errorf("unknown field kind %q", f.Kind)
	}
}

func (f EncodedField) checkLength(want int) error {
	if len(f.Bytes) != want {
		return fmt.Errorf("field %s: got %d bytes, expected %d", f.Kind, len(f.Bytes), want)
	}

	return nil
}

// CallArg is a single argument of an object-chain program call: either a reference to an
// on-chain object or a pure value produced by the codec.
type CallArg struct {
	ObjectID string
	Pure     *EncodedField
}

func ObjectArg(objectID string) CallArg {
	return CallArg{ObjectID: objectID}
}

func PureArg(field EncodedField) CallArg {
	return CallArg{Pure: &field}
}

func (a CallArg) IsObject() bool {
	return a.Pure == nil
}

// MoveCall describes one entry function invocation on the object chain.
type MoveCall struct {
	PackageID string
	Module    string
	Function  string
	Args      []CallArg
	GasBudget uint64
}

// Target renders the fully qualified function name, package::module::function.
func (c MoveCall) Target() string {
	return fmt.Sprintf("%s::%s::%s", c.PackageID, c.Module, c.Function)
}

// Validate checks that every pure argument honours its field contract.
func (c MoveCall) Validate() error {
	if c.PackageID == "" || c.Module == "" || c.Function == "" {
		return fmt.Errorf("incomplete move call target %q", c.Target())
	}
	if c.GasBudget == 0 {
		return fmt.Errorf("move call %s: gas budget must be set", c.Target())
	}
	for i, arg := range c.Args {
		if arg.IsObject() {
			if arg.ObjectID == "" {
				return fmt.Errorf("move call %s: argument %d has an empty object ID", c.Target(), i)
			}

			continue
		}
		if err := arg.Pure.Validate(); err != nil {
			return fmt.Errorf("move call %s: argument %d: %w", c.Target(), i, err)
		}
	}

	return nil
}
