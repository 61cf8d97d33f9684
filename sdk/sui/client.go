package sui

import (
	"context"

	"github.com/block-vision/sui-go-sdk/models"
	"github.com/block-vision/sui-go-sdk/sui"
)

// ChainName labels receipts and errors produced by this package.
const ChainName = "sui"

// ReadAPI is the part of sui.ISuiAPI used by the Reader.
type ReadAPI interface {
	SuiGetObject(ctx context.Context, req models.SuiGetObjectRequest) (models.SuiObjectResponse, error)
	SuiXGetCoins(ctx context.Context, req models.SuiXGetCoinsRequest) (models.PaginatedCoinsResponse, error)
}

// TransactionAPI is the part of sui.ISuiAPI used by the Submitter.
type TransactionAPI interface {
	MoveCall(ctx context.Context, req models.MoveCallRequest) (models.TxnMetaData, error)
	SignAndExecuteTransactionBlock(ctx context.Context, req models.SignAndExecuteTransactionBlockRequest) (models.SuiTransactionBlockResponse, error)
}

var (
	_ ReadAPI        = (sui.ISuiAPI)(nil)
	_ TransactionAPI = (sui.ISuiAPI)(nil)
)
