package sui

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"strings"

	"github.com/smartcontractkit/ibt-bridge/types"
)

// AddressFromHex parses an address as returned by the RPC, left padding short forms such as
// 0x2 to the full 32 bytes.
func AddressFromHex(str string) (types.ObjectChainAddress, error) {
	if strings.HasPrefix(str, "0x") || strings.HasPrefix(str, "0X") {
		str = str[2:]
	}
	if len(str)%2 != 0 {
		str = "0" + str
	}
	data, err := hex.DecodeString(str)
	if err != nil {
		return types.ObjectChainAddress{}, err
	}
	if len(data) > types.ObjectChainAddressLength {
		return types.ObjectChainAddress{}, errors.New("address length exceeds 32 bytes")
	}

	var address types.ObjectChainAddress
	copy(address[types.ObjectChainAddressLength-len(data):], data)

	return address, nil
}

// objectOwner is the JSON shape of an owner. Exactly one field is set; shared and immutable
// objects are reported differently and decode to the zero value.
type objectOwner struct {
	AddressOwner string `json:"AddressOwner"`
	ObjectOwner  string `json:"ObjectOwner"`
}

// addressOwner extracts the owning address from the owner field of an object response. It
// returns nil when the object is not owned by a single address.
func addressOwner(owner any) (*types.ObjectChainAddress, error) {
	if owner == nil {
		return nil, nil
	}

	raw, err := json.Marshal(owner)
	if err != nil {
		return nil, err
	}

	var decoded objectOwner
	if err := json.Unmarshal(raw, &decoded); err != nil {
		// "Immutable" is reported as a bare string.
		return nil, nil //nolint:nilerr
	}
	if decoded.AddressOwner == "" {
		return nil, nil
	}

	address, err := AddressFromHex(decoded.AddressOwner)
	if err != nil {
		return nil, err
	}

	return &address, nil
}
