package sui

import (
	"fmt"
	"strconv"

	"github.com/smartcontractkit/ibt-bridge/codec"
	"github.com/smartcontractkit/ibt-bridge/types"
)

// callArguments converts encoded call arguments into the JSON values unsafe_moveCall expects:
// object IDs and addresses as hex strings, u64 as decimal strings and vector<u8> as arrays of
// numbers. The node serializes them again against the function signature, so every value is
// decoded from its canonical bytes first.
func callArguments(args []types.CallArg) ([]any, error) {
	out := make([]any, 0, len(args))
	for i, arg := range args {
		value, err := callArgument(arg)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		out = append(out, value)
	}

	return out, nil
}

func callArgument(arg types.CallArg) (any, error) {
	if arg.IsObject() {
		return arg.ObjectID, nil
	}

	field := *arg.Pure
	switch field.Kind {
	case types.FieldKindU64Amount:
		amount, err := codec.DecodeAmount(field)
		if err != nil {
			return nil, err
		}

		return strconv.FormatUint(amount, 10), nil
	case types.FieldKindFixedAddress:
		address, err := codec.DecodeObjectChainAddress(field)
		if err != nil {
			return nil, err
		}

		return address.Hex(), nil
	case types.FieldKindLengthPrefixedAddress:
		address, err := codec.DecodeAccountAddress(field)
		if err != nil {
			return nil, err
		}

		return byteArray(address[:]), nil
	case types.FieldKindByteVector:
		data, err := codec.DecodeByteVector(field)
		if err != nil {
			return nil, err
		}

		return byteArray(data), nil
	default:
		return nil, fmt.Errorf("unsupported field kind %q", field.Kind)
	}
}

// byteArray avoids the base64 encoding encoding/json applies to []byte.
func byteArray(data []byte) []int {
	out := make([]int, len(data))
	for i, b := range data {
		out[i] = int(b)
	}

	return out
}
