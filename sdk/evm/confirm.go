package evm

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"

	"github.com/smartcontractkit/ibt-bridge/sdk"
)

const defaultPollInterval = time.Second

// ReceiptBackend is the part of bind.DeployBackend needed to await a transaction.
type ReceiptBackend interface {
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*gethtypes.Receipt, error)
}

// TxRevertedError is returned when a transaction was mined with a failed status.
type TxRevertedError struct {
	TxHash common.Hash
	Block  *big.Int
}

func (e *TxRevertedError) Error() string {
	return fmt.Sprintf("transaction %s reverted in block %v", e.TxHash.Hex(), e.Block)
}

func NewTxRevertedError(txHash common.Hash, block *big.Int) *TxRevertedError {
	return &TxRevertedError{TxHash: txHash, Block: block}
}

// waitReceipt polls for the receipt of txHash until it is available or ctx is done.
func waitReceipt(ctx context.Context, b ReceiptBackend, txHash common.Hash, interval time.Duration) (*gethtypes.Receipt, error) {
	queryTicker := time.NewTicker(interval)
	defer queryTicker.Stop()

	logger := sdk.LoggerFrom(ctx)
	for {
		receipt, err := b.TransactionReceipt(ctx, txHash)
		if err == nil {
			return receipt, nil
		}

		if !errors.Is(err, ethereum.NotFound) {
			logger.Warnf("receipt retrieval for %s failed: %v", txHash.Hex(), err)
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("waiting for %s: %w", txHash.Hex(), ctx.Err())
		case <-queryTicker.C:
		}
	}
}
