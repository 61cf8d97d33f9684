package types //nolint:revive,nolintlint // allow pkg name 'types'

// TransferState is a state of the two-leg transfer state machine.
type TransferState uint8

const (
	StateIdle TransferState = iota
	StateSourceLegSubmitting
	StateSourceLegConfirmed
	StateDestinationLegSubmitting
	StateCompleted
	StateFailedBeforeSourceCommit
	StateFailedAfterSourceCommitBeforeDestinationCommit
)

var stateNames = map[TransferState]string{
	StateIdle:                     "Idle",
	StateSourceLegSubmitting:      "SourceLegSubmitting",
	StateSourceLegConfirmed:       "SourceLegConfirmed",
	StateDestinationLegSubmitting: "DestinationLegSubmitting",
	StateCompleted:                "Completed",
	StateFailedBeforeSourceCommit: "FailedBeforeSourceCommit",
	StateFailedAfterSourceCommitBeforeDestinationCommit: "FailedAfterSourceCommitBeforeDestinationCommit",
}

func (s TransferState) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}

	return "Unknown"
}

// IsTerminal reports whether no further transition can leave the state.
func (s TransferState) IsTerminal() bool {
	return s == StateCompleted ||
		s == StateFailedBeforeSourceCommit ||
		s == StateFailedAfterSourceCommitBeforeDestinationCommit
}

// OutcomeKind classifies how a transfer ended.
type OutcomeKind uint8

const (
	// OutcomeCompleted means both legs confirmed. Anything failing after the destination leg
	// confirmed is reported as completed too.
	OutcomeCompleted OutcomeKind = iota + 1

	// OutcomeFailedBeforeSourceCommit means nothing was spent. Safe to retry with a new intent.
	OutcomeFailedBeforeSourceCommit

	// OutcomeFailedAfterSourceCommitBeforeDestinationCommit means value was burned on the
	// source chain but not minted on the destination chain. Requires a destination-only retry
	// or manual reconciliation.
	OutcomeFailedAfterSourceCommitBeforeDestinationCommit
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeCompleted:
		return "Completed"
	case OutcomeFailedBeforeSourceCommit:
		return "FailedBeforeSourceCommit"
	case OutcomeFailedAfterSourceCommitBeforeDestinationCommit:
		return "FailedAfterSourceCommitBeforeDestinationCommit"
	default:
		return "Unknown"
	}
}

// OutcomeKindForState maps a terminal state to its outcome kind. Non-terminal states report
// false.
func OutcomeKindForState(s TransferState) (OutcomeKind, bool) {
	switch s {
	case StateCompleted:
		return OutcomeCompleted, true
	case StateFailedBeforeSourceCommit:
		return OutcomeFailedBeforeSourceCommit, true
	case StateFailedAfterSourceCommitBeforeDestinationCommit:
		return OutcomeFailedAfterSourceCommitBeforeDestinationCommit, true
	default:
		return 0, false
	}
}

// TransferOutcome is the terminal record of one transfer.
type TransferOutcome struct {
	IntentID  string
	Direction Direction
	Kind      OutcomeKind
	State     TransferState

	SourceReceipt      *LegReceipt
	DestinationReceipt *LegReceipt

	// PendingDestination is set whenever the source leg committed. On
	// OutcomeFailedAfterSourceCommitBeforeDestinationCommit it is the leg to retry.
	PendingDestination *DestinationLeg

	// Err is the cause of a failed outcome.
	Err error
}

func (o TransferOutcome) Succeeded() bool {
	return o.Kind == OutcomeCompleted
}

// RequiresReconciliation reports whether value is in flight between the chains.
func (o TransferOutcome) RequiresReconciliation() bool {
	return o.Kind == OutcomeFailedAfterSourceCommitBeforeDestinationCommit
}
