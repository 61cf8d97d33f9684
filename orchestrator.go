package bridge

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/smartcontractkit/ibt-bridge/asset"
	"github.com/smartcontractkit/ibt-bridge/codec"
	"github.com/smartcontractkit/ibt-bridge/sdk"
	"github.com/smartcontractkit/ibt-bridge/types"
)

const (
	chainAccount = "account-chain"
	chainObject  = "object-chain"

	legBurn          = "burn"
	legMint          = "mint"
	legBurnAndBridge = "burn_and_bridge"
)

// AssetValidator checks a coin object right before it is burned. *asset.Validator implements it.
type AssetValidator interface {
	Validate(ctx context.Context, ref types.AssetReference, expectedOwner types.ObjectChainAddress, expectedType string) error
}

// Recorder receives leg and outcome observations. The internal/metrics package provides a
// prometheus implementation.
type Recorder interface {
	RecordLeg(direction types.Direction, chain, leg string, success bool, duration time.Duration)
	RecordOutcome(direction types.Direction, kind types.OutcomeKind, duration time.Duration)
}

type noopRecorder struct{}

func (noopRecorder) RecordLeg(types.Direction, string, string, bool, time.Duration) {}

func (noopRecorder) RecordOutcome(types.Direction, types.OutcomeKind, time.Duration) {}

// Orchestrator drives the burn-then-mint sequence of a transfer across the two chains and
// classifies how it ended.
//
// An Orchestrator holds no per-transfer state. Execute may be called concurrently for
// independent intents.
type Orchestrator struct {
	cfg          Config
	accountChain sdk.AccountChainSubmitter
	objectChain  sdk.ObjectChainSubmitter
	validator    AssetValidator
	balances     sdk.AccountChainReader
	recorder     Recorder
}

type Option func(*Orchestrator)

// WithBalanceCheck makes Execute compare the account-chain balance with the amount before
// burning on the account chain.
func WithBalanceCheck(reader sdk.AccountChainReader) Option {
	return func(o *Orchestrator) {
		o.balances = reader
	}
}

func WithRecorder(recorder Recorder) Option {
	return func(o *Orchestrator) {
		o.recorder = recorder
	}
}

// WithAssetValidator replaces the default validator built on the object-chain reader.
func WithAssetValidator(validator AssetValidator) Option {
	return func(o *Orchestrator) {
		o.validator = validator
	}
}

// NewOrchestrator creates an Orchestrator. The object-chain reader backs the default asset
// validator.
func NewOrchestrator(
	cfg Config,
	accountChain sdk.AccountChainSubmitter,
	objectChain sdk.ObjectChainSubmitter,
	objectReader sdk.ObjectChainReader,
	opts ...Option,
) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if accountChain == nil || objectChain == nil {
		return nil, fmt.Errorf("both chain submitters are required")
	}

	o := &Orchestrator{
		cfg:          cfg,
		accountChain: accountChain,
		objectChain:  objectChain,
		recorder:     noopRecorder{},
	}
	if objectReader != nil {
		o.validator = asset.NewValidator(objectReader)
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.validator == nil {
		return nil, fmt.Errorf("an object chain reader or an asset validator is required")
	}

	return o, nil
}

// leg is one submission of a transfer, bound to its encoded arguments.
type leg struct {
	chain  string
	name   string
	submit func(ctx context.Context) (types.LegReceipt, error)
}

// Execute runs intent to a terminal outcome.
//
// A malformed intent is rejected with an *InvalidIntentError and a nil outcome. Otherwise the
// returned outcome is always set; its Err is also returned and is a *SourceLegError when
// nothing was spent or a *DestinationLegError when the source leg committed and the destination
// leg did not. The latter is never compensated automatically.
//
// ctx cancels the transfer only before a leg is submitted. A submitted leg runs to
// confirmation, bounded by the submitter's own timeout.
func (o *Orchestrator) Execute(ctx context.Context, intent types.TransferIntent) (*types.TransferOutcome, error) {
	if intent.ID == "" {
		intent.ID = uuid.NewString()
	}

	plan, err := planTransfer(intent)
	if err != nil {
		return nil, err
	}

	r := o.newRun(ctx, intent.ID, intent.Direction, types.StateIdle)
	r.logger.Infof("transfer %s: %s of %s from %s to %s", intent.ID, intent.Direction, intent.Amount, intent.Source, intent.Destination)

	if err := o.preflight(ctx, plan); err != nil {
		return r.failBeforeSourceCommit("preflight", err)
	}

	source, err := o.sourceLeg(plan)
	if err != nil {
		return r.failBeforeSourceCommit("encoding", err)
	}

	if err := ctx.Err(); err != nil {
		return r.failBeforeSourceCommit("cancelled", err)
	}
	if err := r.advance(types.StateSourceLegSubmitting); err != nil {
		return nil, err
	}

	receipt, err := r.submit(ctx, source)
	if err != nil {
		return r.failBeforeSourceCommit(source.name, err)
	}
	r.outcome.SourceReceipt = &receipt

	if err := r.advance(types.StateSourceLegConfirmed); err != nil {
		return nil, err
	}
	pending := plan.destinationLeg()
	r.outcome.PendingDestination = &pending
	r.logger.Warnf("transfer %s: source leg confirmed in %s, value is in flight until the destination leg confirms", intent.ID, receipt.TxHash)

	return o.finishDestination(ctx, r, pending)
}

// RetryDestinationLeg submits the destination leg of a transfer whose source leg already
// committed. It must only be called with the PendingDestination of an outcome, or of a
// DestinationLegError, once an operator decided to retry. Calling it for a leg that already
// confirmed mints twice.
func (o *Orchestrator) RetryDestinationLeg(ctx context.Context, pending types.DestinationLeg) (*types.TransferOutcome, error) {
	if err := validatePending(pending); err != nil {
		return nil, err
	}

	r := o.newRun(ctx, pending.IntentID, pending.Direction, types.StateSourceLegConfirmed)
	r.outcome.PendingDestination = &pending
	r.logger.Warnf("transfer %s: retrying destination leg only: %s", pending.IntentID, pending)

	return o.finishDestination(ctx, r, pending)
}

func (o *Orchestrator) finishDestination(ctx context.Context, r *run, pending types.DestinationLeg) (*types.TransferOutcome, error) {
	destination, err := o.destinationLeg(pending)
	if err != nil {
		return r.failAfterSourceCommit(pending, err)
	}

	if err := ctx.Err(); err != nil {
		return r.failAfterSourceCommit(pending, err)
	}
	if err := r.advance(types.StateDestinationLegSubmitting); err != nil {
		return nil, err
	}

	receipt, err := r.submit(ctx, destination)
	if err != nil {
		return r.failAfterSourceCommit(pending, err)
	}
	r.outcome.DestinationReceipt = &receipt

	if err := r.advance(types.StateCompleted); err != nil {
		return nil, err
	}

	return r.finish(nil)
}

// preflight runs the read-only checks that precede the source leg.
func (o *Orchestrator) preflight(ctx context.Context, plan transferPlan) error {
	intent := plan.intent

	switch intent.Direction {
	case types.DirectionToAccountChain:
		owner, _ := intent.Source.Object()

		return o.validator.Validate(ctx, *intent.Asset, owner, o.cfg.CoinObjectType())
	case types.DirectionToObjectChain:
		if o.balances == nil {
			return nil
		}

		owner, _ := intent.Source.Account()
		balance, err := o.balances.BalanceOf(ctx, owner)
		if err != nil {
			return fmt.Errorf("reading account chain balance: %w", err)
		}
		if balance.Cmp(plan.accountAmount.BigInt()) < 0 {
			return NewInsufficientBalanceError(owner, balance, plan.accountAmount.BigInt())
		}
	}

	return nil
}

func (o *Orchestrator) sourceLeg(plan transferPlan) (leg, error) {
	intent := plan.intent

	if intent.Direction == types.DirectionToObjectChain {
		amount := plan.accountAmount.BigInt()

		return leg{
			chain: chainAccount,
			name:  legBurn,
			submit: func(ctx context.Context) (types.LegReceipt, error) {
				return o.accountChain.Burn(ctx, amount)
			},
		}, nil
	}

	recipient, _ := intent.Destination.Account()
	recipientField, err := codec.EncodeAccount(recipient)
	if err != nil {
		return leg{}, err
	}
	amountField, err := codec.EncodeAmount(plan.objectAmount)
	if err != nil {
		return leg{}, err
	}

	call := types.MoveCall{
		PackageID: o.cfg.PackageID,
		Module:    o.cfg.Module,
		Function:  burnAndBridgeFunction,
		Args: []types.CallArg{
			types.ObjectArg(o.cfg.BridgeAuthID),
			types.ObjectArg(intent.Asset.ObjectID),
			types.PureArg(recipientField),
			types.PureArg(amountField),
		},
		GasBudget: o.cfg.BurnGasBudget,
	}
	if err := call.Validate(); err != nil {
		return leg{}, err
	}

	return leg{
		chain: chainObject,
		name:  legBurnAndBridge,
		submit: func(ctx context.Context) (types.LegReceipt, error) {
			return o.objectChain.Call(ctx, call)
		},
	}, nil
}

func (o *Orchestrator) destinationLeg(pending types.DestinationLeg) (leg, error) {
	if pending.Direction == types.DirectionToAccountChain {
		recipient, _ := pending.Recipient.Account()
		amount := pending.AccountChainAmount.BigInt()

		return leg{
			chain: chainAccount,
			name:  legMint,
			submit: func(ctx context.Context) (types.LegReceipt, error) {
				return o.accountChain.Mint(ctx, recipient, amount)
			},
		}, nil
	}

	recipient, _ := pending.Recipient.Object()
	amountField, err := codec.EncodeAmount(pending.ObjectChainAmount)
	if err != nil {
		return leg{}, err
	}
	recipientField, err := codec.EncodeObject(recipient)
	if err != nil {
		return leg{}, err
	}

	call := types.MoveCall{
		PackageID: o.cfg.PackageID,
		Module:    o.cfg.Module,
		Function:  mintFunction,
		Args: []types.CallArg{
			types.ObjectArg(o.cfg.BridgeAuthID),
			types.PureArg(amountField),
			types.PureArg(recipientField),
		},
		GasBudget: o.cfg.MintGasBudget,
	}
	if err := call.Validate(); err != nil {
		return leg{}, err
	}

	return leg{
		chain: chainObject,
		name:  legMint,
		submit: func(ctx context.Context) (types.LegReceipt, error) {
			return o.objectChain.Call(ctx, call)
		},
	}, nil
}

func validatePending(pending types.DestinationLeg) error {
	if pending.Recipient.Kind() != pending.Direction.DestinationKind() || pending.Direction.DestinationKind() == types.AddressKindUnknown {
		return fmt.Errorf("%w: recipient %q does not match direction %s", ErrNotRetryable, pending.Recipient, pending.Direction)
	}

	amount := pending.ObjectChainAmount
	if pending.Direction == types.DirectionToAccountChain {
		amount = pending.AccountChainAmount
	}
	if amount.IsZero() {
		return fmt.Errorf("%w: zero amount", ErrNotRetryable)
	}

	return nil
}
