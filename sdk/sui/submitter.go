package sui

import (
	"context"
	"crypto/ed25519"
	"errors"
	"fmt"
	"strconv"

	"github.com/block-vision/sui-go-sdk/models"
	"github.com/block-vision/sui-go-sdk/signer"

	"github.com/smartcontractkit/ibt-bridge/internal/utils/safecast"
	"github.com/smartcontractkit/ibt-bridge/sdk"
	sdkerrors "github.com/smartcontractkit/ibt-bridge/sdk/errors"
	"github.com/smartcontractkit/ibt-bridge/types"
)

const (
	requestTypeWaitForLocalExecution = "WaitForLocalExecution"
	effectsStatusSuccess             = "success"
)

var _ sdk.ObjectChainSubmitter = (*Submitter)(nil)

// ErrEffectsFailure is wrapped by errors of transactions whose effects report a failure.
var ErrEffectsFailure = errors.New("transaction effects failure")

// Submitter builds, signs and executes Move calls, waiting for local execution.
type Submitter struct {
	client  TransactionAPI
	address string
	key     ed25519.PrivateKey
}

// NewSubmitter creates a Submitter signing with s.
func NewSubmitter(client TransactionAPI, s *signer.Signer) *Submitter {
	return &Submitter{
		client:  client,
		address: s.Address,
		key:     s.PriKey,
	}
}

// Address is the sender of every call.
func (s *Submitter) Address() string {
	return s.address
}

func (s *Submitter) Call(ctx context.Context, call types.MoveCall) (types.LegReceipt, error) {
	operation := call.Function

	if err := call.Validate(); err != nil {
		return types.LegReceipt{}, sdkerrors.NewChainError(ChainName, operation, err)
	}
	args, err := callArguments(call.Args)
	if err != nil {
		return types.LegReceipt{}, sdkerrors.NewChainError(ChainName, operation, err)
	}

	txn, err := s.client.MoveCall(ctx, models.MoveCallRequest{
		Signer:          s.address,
		PackageObjectId: call.PackageID,
		Module:          call.Module,
		Function:        call.Function,
		Arguments:       args,
		GasBudget:       strconv.FormatUint(call.GasBudget, 10),
	})
	if err != nil {
		return types.LegReceipt{}, sdkerrors.NewChainError(ChainName, operation, fmt.Errorf("building %s: %w", call.Target(), err))
	}

	resp, err := s.client.SignAndExecuteTransactionBlock(ctx, models.SignAndExecuteTransactionBlockRequest{
		TxnMetaData: txn,
		PriKey:      s.key,
		Options: models.SuiTransactionBlockOptions{
			ShowEffects: true,
		},
		RequestType: requestTypeWaitForLocalExecution,
	})
	if err != nil {
		return types.LegReceipt{}, sdkerrors.NewChainError(ChainName, operation, fmt.Errorf("executing %s: %w", call.Target(), err))
	}

	if status := resp.Effects.Status; status.Status != effectsStatusSuccess {
		return types.LegReceipt{}, sdkerrors.NewChainError(ChainName, operation,
			fmt.Errorf("%w: %s in %s: %s", ErrEffectsFailure, call.Target(), resp.Digest, status.Error))
	}

	var checkpoint uint64
	if resp.Checkpoint != "" {
		if checkpoint, err = safecast.StringToUint64(resp.Checkpoint); err != nil {
			sdk.LoggerFrom(ctx).Warnf("transaction %s: unreadable checkpoint: %v", resp.Digest, err)
		}
	}

	return types.LegReceipt{
		Chain:  ChainName,
		TxHash: resp.Digest,
		Block:  checkpoint,
		Raw:    resp,
	}, nil
}
