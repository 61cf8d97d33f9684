package bridge

import (
	"bytes"
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcontractkit/ibt-bridge/codec"
	"github.com/smartcontractkit/ibt-bridge/types"
)

var testSuiAddress = "0x" + strings.Repeat("aa", 32)

func TestPrintOutcome(t *testing.T) {
	t.Parallel()

	recipient, err := types.ParseChainAddress(types.AddressKindObject, testSuiAddress)
	require.NoError(t, err)

	tests := []struct {
		name         string
		outcome      *types.TransferOutcome
		wantContains []string
		wantAbsent   []string
	}{
		{
			name:    "nil outcome",
			outcome: nil,
		},
		{
			name: "completed",
			outcome: &types.TransferOutcome{
				IntentID:           "intent-1",
				Direction:          types.DirectionToObjectChain,
				Kind:               types.OutcomeCompleted,
				SourceReceipt:      &types.LegReceipt{Chain: "evm", TxHash: "0xburn", Block: 10},
				DestinationReceipt: &types.LegReceipt{Chain: "sui", TxHash: "digest", Block: 20},
			},
			wantContains: []string{
				"Transfer intent-1 (to-object-chain): Completed",
				"source      evm tx 0xburn block 10",
				"destination sui tx digest block 20",
			},
			wantAbsent: []string{"retry-mint"},
		},
		{
			name: "pending mint",
			outcome: &types.TransferOutcome{
				IntentID:      "intent-2",
				Direction:     types.DirectionToObjectChain,
				Kind:          types.OutcomeFailedAfterSourceCommitBeforeDestinationCommit,
				SourceReceipt: &types.LegReceipt{Chain: "evm", TxHash: "0xburn", Block: 10},
				PendingDestination: &types.DestinationLeg{
					IntentID:           "intent-2",
					Direction:          types.DirectionToObjectChain,
					ObjectChainAmount:  types.NewTransferAmountFromUint64(5),
					AccountChainAmount: types.NewTransferAmountFromUint64(5),
					Recipient:          recipient,
				},
			},
			wantContains: []string{
				"FailedAfterSourceCommitBeforeDestinationCommit",
				"bridge retry-mint --intent intent-2 --direction to-object-chain --amount 5 --recipient " + recipient.String(),
			},
			wantAbsent: []string{"destination sui"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			printOutcome(&out, tt.outcome)

			if tt.outcome == nil {
				assert.Empty(t, out.String())
			}
			for _, want := range tt.wantContains {
				assert.Contains(t, out.String(), want)
			}
			for _, absent := range tt.wantAbsent {
				assert.NotContains(t, out.String(), absent)
			}
		})
	}
}

func TestPrintCoins(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	require.NoError(t, printCoins(&out, nil))
	assert.Equal(t, "No IBT coin objects\n", out.String())

	out.Reset()
	require.NoError(t, printCoins(&out, []types.CoinRecord{
		{ObjectID: "0xc01", Balance: 3},
		{ObjectID: "0xc02", Balance: 40},
	}))
	assert.Contains(t, out.String(), "0xc01")
	assert.Contains(t, out.String(), "40")
}

func TestFormatUnits(t *testing.T) {
	t.Parallel()

	oneAndHalf, ok := new(big.Int).SetString("1500000000000000000", 10)
	require.True(t, ok)

	assert.Equal(t, "1.5", formatUnits(oneAndHalf, codec.WeiUnits))
	assert.Equal(t, "42", formatUnits(big.NewInt(42), codec.RawUnits))
	assert.Equal(t, "0", formatUnits(nil, codec.WeiUnits))
}

func TestBuildBridgeCmd(t *testing.T) {
	t.Parallel()

	cmd := BuildBridgeCmd()

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.ElementsMatch(t, []string{"to-sui", "to-eth", "retry-mint", "coins", "balances"}, names)

	envFlag := cmd.PersistentFlags().Lookup("env")
	require.NotNil(t, envFlag)
	assert.Equal(t, ".env", envFlag.DefValue)
}

func TestRetryMintCmd_RejectsBadInputBeforeConnecting(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{
			name:    "unknown direction",
			args:    []string{"--direction", "sideways", "--recipient", testSuiAddress},
			wantErr: "invalid direction",
		},
		{
			name:    "recipient on the source chain",
			args:    []string{"--direction", "to-account-chain", "--recipient", testSuiAddress},
			wantErr: "wrong number of hex digits",
		},
		{
			name:    "fractional amount",
			args:    []string{"--direction", "to-object-chain", "--recipient", testSuiAddress, "--amount", "1.5"},
			wantErr: "invalid transfer intent",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			envFile := "missing.env"
			cmd := buildRetryMintCmd(&envFile)
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetErr(&bytes.Buffer{})

			args := append([]string{"--intent", "intent-1", "--amount", "1"}, tt.args...)
			cmd.SetArgs(args)

			require.ErrorContains(t, cmd.Execute(), tt.wantErr)
		})
	}
}
