package bridge

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcontractkit/ibt-bridge/types"
)

func TestErrorMessages(t *testing.T) {
	t.Parallel()

	owner, err := types.AccountAddressFromHex("0x0000000000000000000000000000000000000001")
	require.NoError(t, err)

	pending := types.DestinationLeg{
		IntentID:          "abc",
		Direction:         types.DirectionToObjectChain,
		ObjectChainAmount: types.NewTransferAmountFromUint64(3),
		Recipient:         types.NewAccountChainAddress(owner),
	}

	tests := []struct {
		err      error
		expected string
	}{
		{NewInvalidIntentError("abc", "zero amount", nil), "invalid transfer intent abc: zero amount"},
		{NewInvalidIntentError("abc", "amount", errors.New("bad")), "invalid transfer intent abc: amount: bad"},
		{NewSourceLegError("abc", "burn", errors.New("reverted")), "transfer abc failed before source commit (burn): reverted"},
		{
			NewDestinationLegError(pending, errors.New("timeout")),
			"transfer abc burned on the source chain but the destination leg failed, manual reconciliation required " +
				"(intent abc: mint 3 to 0x0000000000000000000000000000000000000001 (to-object-chain)): timeout",
		},
		{
			NewInsufficientBalanceError(owner, big.NewInt(1), big.NewInt(2)),
			"insufficient balance for 0x0000000000000000000000000000000000000001: have 1, need 2",
		},
		{
			NewIllegalTransitionError(types.StateIdle, types.StateCompleted),
			"illegal transfer state transition from Idle to Completed",
		},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.err.Error())
	}
}

func TestLegErrorsClassify(t *testing.T) {
	t.Parallel()

	cause := errors.New("cause")

	source := NewSourceLegError("id", "burn", cause)
	require.ErrorIs(t, source, ErrFailedBeforeSourceCommit)
	require.ErrorIs(t, source, cause)
	require.NotErrorIs(t, source, ErrFailedAfterSourceCommit)

	destination := NewDestinationLegError(types.DestinationLeg{IntentID: "id"}, cause)
	require.ErrorIs(t, destination, ErrFailedAfterSourceCommit)
	require.ErrorIs(t, destination, cause)
	require.NotErrorIs(t, destination, ErrFailedBeforeSourceCommit)

	assert.True(t, IsInvalidIntent(NewInvalidIntentError("id", "reason", nil)))
	assert.False(t, IsInvalidIntent(source))
}
