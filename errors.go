package bridge

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/smartcontractkit/ibt-bridge/types"
)

var (
	// ErrFailedBeforeSourceCommit is matched by every SourceLegError. Nothing was spent.
	ErrFailedBeforeSourceCommit = errors.New("transfer failed before source commit")

	// ErrFailedAfterSourceCommit is matched by every DestinationLegError. Value was burned on the
	// source chain and not minted on the destination chain.
	ErrFailedAfterSourceCommit = errors.New("transfer failed after source commit, before destination commit")

	// ErrNotRetryable is returned when a destination leg cannot be retried as given.
	ErrNotRetryable = errors.New("destination leg is not retryable")
)

// InvalidIntentError is returned when a transfer intent is malformed. No chain was contacted.
type InvalidIntentError struct {
	IntentID string
	Reason   string
	Err      error
}

func (e *InvalidIntentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid transfer intent %s: %s: %v", e.IntentID, e.Reason, e.Err)
	}

	return fmt.Sprintf("invalid transfer intent %s: %s", e.IntentID, e.Reason)
}

func (e *InvalidIntentError) Unwrap() error {
	return e.Err
}

func NewInvalidIntentError(intentID, reason string, err error) *InvalidIntentError {
	return &InvalidIntentError{IntentID: intentID, Reason: reason, Err: err}
}

// SourceLegError is returned when a transfer failed before its source leg committed: a
// pre-flight check failed, the source transaction was rejected, reverted or never confirmed.
// The intent can be corrected and submitted again.
type SourceLegError struct {
	IntentID string
	Stage    string
	Err      error
}

func (e *SourceLegError) Error() string {
	return fmt.Sprintf("transfer %s failed before source commit (%s): %v", e.IntentID, e.Stage, e.Err)
}

func (e *SourceLegError) Unwrap() error {
	return e.Err
}

func (e *SourceLegError) Is(target error) bool {
	return target == ErrFailedBeforeSourceCommit
}

func NewSourceLegError(intentID, stage string, err error) *SourceLegError {
	return &SourceLegError{IntentID: intentID, Stage: stage, Err: err}
}

// DestinationLegError is returned when the source leg committed but the destination leg did
// not. Pending holds the leg to retry with RetryDestinationLeg, or to reconcile by hand.
type DestinationLegError struct {
	Pending types.DestinationLeg
	Err     error
}

func (e *DestinationLegError) Error() string {
	return fmt.Sprintf("transfer %s burned on the source chain but the destination leg failed, manual reconciliation required (%s): %v",
		e.Pending.IntentID, e.Pending, e.Err)
}

func (e *DestinationLegError) Unwrap() error {
	return e.Err
}

func (e *DestinationLegError) Is(target error) bool {
	return target == ErrFailedAfterSourceCommit
}

func NewDestinationLegError(pending types.DestinationLeg, err error) *DestinationLegError {
	return &DestinationLegError{Pending: pending, Err: err}
}

// InsufficientBalanceError is returned by the pre-flight balance check on the account chain.
type InsufficientBalanceError struct {
	Owner    types.AccountAddress
	Balance  *big.Int
	Required *big.Int
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance for %s: have %s, need %s", e.Owner, e.Balance, e.Required)
}

func NewInsufficientBalanceError(owner types.AccountAddress, balance, required *big.Int) *InsufficientBalanceError {
	return &InsufficientBalanceError{Owner: owner, Balance: balance, Required: required}
}

// IllegalTransitionError signals a bug: the orchestrator tried to leave a state along an edge
// the transfer state machine does not have.
type IllegalTransitionError struct {
	From types.TransferState
	To   types.TransferState
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("illegal transfer state transition from %s to %s", e.From, e.To)
}

func NewIllegalTransitionError(from, to types.TransferState) *IllegalTransitionError {
	return &IllegalTransitionError{From: from, To: to}
}
