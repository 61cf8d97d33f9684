package sui

import (
	"context"
	"errors"
	"fmt"

	"github.com/block-vision/sui-go-sdk/models"

	"github.com/smartcontractkit/ibt-bridge/internal/utils/safecast"
	"github.com/smartcontractkit/ibt-bridge/sdk"
	sdkerrors "github.com/smartcontractkit/ibt-bridge/sdk/errors"
	"github.com/smartcontractkit/ibt-bridge/types"
)

// coinsPageSize is the largest page the RPC serves for suix_getCoins.
const coinsPageSize = 50

var _ sdk.ObjectChainReader = (*Reader)(nil)

// ErrObjectNotFound is returned when the RPC has no data for an object.
var ErrObjectNotFound = errors.New("object not found")

// Reader reads objects and coins over the Sui JSON-RPC.
type Reader struct {
	client ReadAPI
}

func NewReader(client ReadAPI) *Reader {
	return &Reader{client: client}
}

// GetObject fetches the type and owner of an object.
func (r *Reader) GetObject(ctx context.Context, objectID string) (types.ObjectInfo, error) {
	resp, err := r.client.SuiGetObject(ctx, models.SuiGetObjectRequest{
		ObjectId: objectID,
		Options: models.SuiObjectDataOptions{
			ShowType:  true,
			ShowOwner: true,
		},
	})
	if err != nil {
		return types.ObjectInfo{}, sdkerrors.NewChainError(ChainName, "getObject", err)
	}
	if resp.Error != nil {
		return types.ObjectInfo{}, sdkerrors.NewChainError(ChainName, "getObject", fmt.Errorf("%w: %+v", ErrObjectNotFound, *resp.Error))
	}
	if resp.Data == nil {
		return types.ObjectInfo{}, sdkerrors.NewChainError(ChainName, "getObject", fmt.Errorf("%w: %s", ErrObjectNotFound, objectID))
	}

	owner, err := addressOwner(resp.Data.Owner)
	if err != nil {
		return types.ObjectInfo{}, sdkerrors.NewChainError(ChainName, "getObject", fmt.Errorf("decoding owner of %s: %w", objectID, err))
	}

	return types.ObjectInfo{
		ObjectID: resp.Data.ObjectId,
		Type:     resp.Data.Type,
		Owner:    owner,
	}, nil
}

// GetCoins lists every coin object of coinType owned by owner, following pagination.
func (r *Reader) GetCoins(ctx context.Context, owner types.ObjectChainAddress, coinType string) ([]types.CoinRecord, error) {
	var (
		coins  []types.CoinRecord
		cursor string
	)
	for {
		req := models.SuiXGetCoinsRequest{
			Owner:    owner.Hex(),
			CoinType: coinType,
			Limit:    coinsPageSize,
		}
		if cursor != "" {
			req.Cursor = cursor
		}

		page, err := r.client.SuiXGetCoins(ctx, req)
		if err != nil {
			return nil, sdkerrors.NewChainError(ChainName, "getCoins", err)
		}

		for _, coin := range page.Data {
			balance, err := safecast.StringToUint64(coin.Balance)
			if err != nil {
				return nil, sdkerrors.NewChainError(ChainName, "getCoins", fmt.Errorf("coin %s: %w", coin.CoinObjectId, err))
			}
			coins = append(coins, types.CoinRecord{
				ObjectID: coin.CoinObjectId,
				CoinType: coin.CoinType,
				Balance:  balance,
			})
		}

		if !page.HasNextPage || page.NextCursor == "" {
			return coins, nil
		}
		cursor = page.NextCursor
	}
}
