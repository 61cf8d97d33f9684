package bridge

import (
	"context"
	"time"

	"github.com/smartcontractkit/ibt-bridge/sdk"
	"github.com/smartcontractkit/ibt-bridge/types"
)

// run carries one Execute or RetryDestinationLeg call from its first state to a terminal one.
type run struct {
	machine  *stateMachine
	outcome  *types.TransferOutcome
	logger   sdk.Logger
	recorder Recorder
	started  time.Time
}

func (o *Orchestrator) newRun(ctx context.Context, intentID string, direction types.Direction, initial types.TransferState) *run {
	return &run{
		machine: newStateMachine(initial),
		outcome: &types.TransferOutcome{
			IntentID:  intentID,
			Direction: direction,
			State:     initial,
		},
		logger:   sdk.LoggerFrom(ctx),
		recorder: o.recorder,
		started:  time.Now(),
	}
}

func (r *run) advance(to types.TransferState) error {
	if err := r.machine.transition(to); err != nil {
		r.logger.Errorf("transfer %s: %v", r.outcome.IntentID, err)
		return err
	}
	r.outcome.State = to

	return nil
}

// submit sends l and waits for its confirmation. Cancelling ctx after this point has no effect
// on the leg.
func (r *run) submit(ctx context.Context, l leg) (types.LegReceipt, error) {
	r.logger.Infof("transfer %s: submitting %s on %s", r.outcome.IntentID, l.name, l.chain)

	start := time.Now()
	receipt, err := l.submit(context.WithoutCancel(ctx))
	r.recorder.RecordLeg(r.outcome.Direction, l.chain, l.name, err == nil, time.Since(start))
	if err != nil {
		r.logger.Errorf("transfer %s: %s on %s failed: %v", r.outcome.IntentID, l.name, l.chain, err)
		return types.LegReceipt{}, err
	}

	r.logger.Infof("transfer %s: %s on %s confirmed in %s", r.outcome.IntentID, l.name, l.chain, receipt.TxHash)

	return receipt, nil
}

func (r *run) failBeforeSourceCommit(stage string, cause error) (*types.TransferOutcome, error) {
	if err := r.advance(types.StateFailedBeforeSourceCommit); err != nil {
		return nil, err
	}

	return r.finish(NewSourceLegError(r.outcome.IntentID, stage, cause))
}

func (r *run) failAfterSourceCommit(pending types.DestinationLeg, cause error) (*types.TransferOutcome, error) {
	if err := r.advance(types.StateFailedAfterSourceCommitBeforeDestinationCommit); err != nil {
		return nil, err
	}
	r.logger.Errorf("transfer %s: RECONCILIATION REQUIRED, source leg committed and destination leg did not: %s",
		r.outcome.IntentID, pending)

	return r.finish(NewDestinationLegError(pending, cause))
}

func (r *run) finish(err error) (*types.TransferOutcome, error) {
	kind, _ := types.OutcomeKindForState(r.machine.current())
	r.outcome.Kind = kind
	r.outcome.Err = err
	r.recorder.RecordOutcome(r.outcome.Direction, kind, time.Since(r.started))

	if err == nil {
		r.logger.Infof("transfer %s: completed", r.outcome.IntentID)
		return r.outcome, nil
	}
	if !r.machine.sourceCommitted() {
		r.logger.Warnf("transfer %s: failed before source commit, nothing was spent: %v", r.outcome.IntentID, err)
	}

	return r.outcome, err
}
