package bridge

import (
	"slices"

	"github.com/smartcontractkit/ibt-bridge/types"
)

// transitions lists every edge of the transfer state machine.
//
//	Idle -> SourceLegSubmitting -> SourceLegConfirmed -> DestinationLegSubmitting -> Completed
//
// Pre-flight failures leave Idle directly. Once SourceLegConfirmed is reached the only failure
// exit is FailedAfterSourceCommitBeforeDestinationCommit.
var transitions = map[types.TransferState][]types.TransferState{
	types.StateIdle: {
		types.StateSourceLegSubmitting,
		types.StateFailedBeforeSourceCommit,
	},
	types.StateSourceLegSubmitting: {
		types.StateSourceLegConfirmed,
		types.StateFailedBeforeSourceCommit,
	},
	types.StateSourceLegConfirmed: {
		types.StateDestinationLegSubmitting,
		types.StateFailedAfterSourceCommitBeforeDestinationCommit,
	},
	types.StateDestinationLegSubmitting: {
		types.StateCompleted,
		types.StateFailedAfterSourceCommitBeforeDestinationCommit,
	},
}

// stateMachine tracks a single transfer. It is owned by one goroutine.
type stateMachine struct {
	state   types.TransferState
	history []types.TransferState
}

func newStateMachine(initial types.TransferState) *stateMachine {
	return &stateMachine{
		state:   initial,
		history: []types.TransferState{initial},
	}
}

func (m *stateMachine) current() types.TransferState {
	return m.state
}

func (m *stateMachine) transition(to types.TransferState) error {
	if !slices.Contains(transitions[m.state], to) {
		return NewIllegalTransitionError(m.state, to)
	}

	m.state = to
	m.history = append(m.history, to)

	return nil
}

// sourceCommitted reports whether the source leg confirmed at some point of this run. A run
// that starts from SourceLegConfirmed counts as committed.
func (m *stateMachine) sourceCommitted() bool {
	return slices.Contains(m.history, types.StateSourceLegConfirmed)
}
