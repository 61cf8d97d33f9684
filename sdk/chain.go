package sdk

import (
	"context"
	"math/big"

	"github.com/smartcontractkit/ibt-bridge/types"
)

// AccountChainSubmitter burns and mints the bridge token on the account-model chain.
//
// Both calls submit a transaction and block until it is final. A reverted transaction, a
// rejected signature or a confirmation timeout must all be reported as an error.
type AccountChainSubmitter interface {
	// Burn burns amount, in 18 decimal units, from the submitter's own account.
	Burn(ctx context.Context, amount *big.Int) (types.LegReceipt, error)

	// Mint mints amount, in 18 decimal units, to the given address.
	Mint(ctx context.Context, to types.AccountAddress, amount *big.Int) (types.LegReceipt, error)
}

// AccountChainReader reads token balances on the account-model chain.
type AccountChainReader interface {
	BalanceOf(ctx context.Context, owner types.AccountAddress) (*big.Int, error)
}

// ObjectChainSubmitter executes a single program call on the object-model chain and blocks
// until its effects are final. Effects reporting an aborted call must be returned as an error.
type ObjectChainSubmitter interface {
	Call(ctx context.Context, call types.MoveCall) (types.LegReceipt, error)
}

// ObjectChainReader is the read-only query surface of the object-model chain.
type ObjectChainReader interface {
	GetObject(ctx context.Context, objectID string) (types.ObjectInfo, error)

	// GetCoins lists the coin objects of owner. An empty coinType lists the native gas coin.
	GetCoins(ctx context.Context, owner types.ObjectChainAddress, coinType string) ([]types.CoinRecord, error)
}
