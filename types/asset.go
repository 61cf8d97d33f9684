package types //nolint:revive,nolintlint // allow pkg name 'types'

import "fmt"

// CoinObjectType wraps a coin type into the runtime type of a coin object holding it,
// 0x2::coin::Coin<T>.
func CoinObjectType(coinType string) string {
	return fmt.Sprintf("0x2::coin::Coin<%s>", coinType)
}

// AssetReference points at a spendable coin object selected on the object chain. Only ObjectID
// is trusted; Type and Owner reflect what the caller saw at selection time and are re-fetched
// before the object is spent.
type AssetReference struct {
	ObjectID string `json:"objectId" validate:"required"`
	Type     string `json:"type,omitempty"`
	Owner    string `json:"owner,omitempty"`
}

// ObjectInfo is the fresh on-chain view of an object.
type ObjectInfo struct {
	ObjectID string
	Type     string

	// Owner is nil when the object is shared, immutable or owned by another object.
	Owner *ObjectChainAddress
}

// CoinRecord is one coin object returned by coin discovery.
type CoinRecord struct {
	ObjectID string `json:"coinObjectId"`
	CoinType string `json:"coinType"`
	Balance  uint64 `json:"balance"`
}

// AssetReference converts the record into a reference owned by owner.
func (c CoinRecord) AssetReference(owner ObjectChainAddress) AssetReference {
	return AssetReference{
		ObjectID: c.ObjectID,
		Type:     CoinObjectType(c.CoinType),
		Owner:    owner.Hex(),
	}
}
