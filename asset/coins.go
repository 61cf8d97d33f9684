package asset

import (
	"context"
	"errors"
	"fmt"

	"github.com/smartcontractkit/ibt-bridge/sdk"
	"github.com/smartcontractkit/ibt-bridge/types"
)

// ErrNoCoins is returned when an owner holds no coin object of the bridged type.
var ErrNoCoins = errors.New("no coin objects available for bridging")

// Discover lists the coin objects of coinType owned by owner.
func Discover(ctx context.Context, reader sdk.ObjectChainReader, owner types.ObjectChainAddress, coinType string) ([]types.CoinRecord, error) {
	coins, err := reader.GetCoins(ctx, owner, coinType)
	if err != nil {
		return nil, fmt.Errorf("listing %s coins of %s: %w", coinType, owner, err)
	}

	return coins, nil
}

// SelectCoin returns the first coin whose balance covers amount. A zero amount selects the first
// coin.
func SelectCoin(coins []types.CoinRecord, amount uint64) (types.CoinRecord, error) {
	if len(coins) == 0 {
		return types.CoinRecord{}, ErrNoCoins
	}

	for _, coin := range coins {
		if coin.Balance >= amount {
			return coin, nil
		}
	}

	return types.CoinRecord{}, fmt.Errorf("no single coin object holds %d units", amount)
}

// TotalBalance sums the balances of coins. It fails instead of wrapping around.
func TotalBalance(coins []types.CoinRecord) (uint64, error) {
	var total uint64
	for _, coin := range coins {
		if total+coin.Balance < total {
			return 0, fmt.Errorf("total balance of %d coins overflows u64", len(coins))
		}
		total += coin.Balance
	}

	return total, nil
}
