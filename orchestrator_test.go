package bridge

import (
	"context"
	"errors"
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/smartcontractkit/ibt-bridge/codec"
	"github.com/smartcontractkit/ibt-bridge/sdk"
	sdkerrors "github.com/smartcontractkit/ibt-bridge/sdk/errors"
	"github.com/smartcontractkit/ibt-bridge/sdk/mocks"
	"github.com/smartcontractkit/ibt-bridge/types"
)

const (
	testPackageID = "0xb1d9"
	testAuthID    = "0x00000000000000000000000000000000000000000000000000000000000a0717"
	testCoinID    = "0x5a1e000000000000000000000000000000000000000000000000000000000001"
	testEthHex    = "0x52908400098527886E0F7030069857D2E4169EE7"
	testSuiHex    = "0x00000000000000000000000000000000000000000000000000000000000000aa"
	testOtherSui  = "0x00000000000000000000000000000000000000000000000000000000000000bb"
)

var oneEther = new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)

type fixture struct {
	account  *mocks.AccountChainSubmitter
	object   *mocks.ObjectChainSubmitter
	reader   *mocks.ObjectChainReader
	recorder *fakeRecorder
	orch     *Orchestrator
}

func newFixture(t *testing.T, opts ...Option) *fixture {
	t.Helper()

	f := &fixture{
		account:  mocks.NewAccountChainSubmitter(t),
		object:   mocks.NewObjectChainSubmitter(t),
		reader:   mocks.NewObjectChainReader(t),
		recorder: &fakeRecorder{},
	}

	opts = append([]Option{WithRecorder(f.recorder)}, opts...)
	orch, err := NewOrchestrator(NewConfig(testPackageID, testAuthID), f.account, f.object, f.reader, opts...)
	require.NoError(t, err)
	f.orch = orch

	return f
}

func testContext(t *testing.T) context.Context {
	t.Helper()

	return sdk.WithLogger(context.Background(), zaptest.NewLogger(t).Sugar())
}

func ethAddress(t *testing.T) types.AccountAddress {
	t.Helper()

	addr, err := types.AccountAddressFromHex(testEthHex)
	require.NoError(t, err)

	return addr
}

func suiAddress(t *testing.T, s string) types.ObjectChainAddress {
	t.Helper()

	addr, err := types.ObjectChainAddressFromHex(s)
	require.NoError(t, err)

	return addr
}

func toObjectIntent(t *testing.T, amount string) types.TransferIntent {
	t.Helper()

	return types.NewTransferIntent(
		types.DirectionToObjectChain,
		amount,
		types.NewAccountChainAddress(ethAddress(t)),
		types.NewObjectChainAddress(suiAddress(t, testSuiHex)),
		nil,
	)
}

func toAccountIntent(t *testing.T, amount string) types.TransferIntent {
	t.Helper()

	return types.NewTransferIntent(
		types.DirectionToAccountChain,
		amount,
		types.NewObjectChainAddress(suiAddress(t, testSuiHex)),
		types.NewAccountChainAddress(ethAddress(t)),
		&types.AssetReference{ObjectID: testCoinID},
	)
}

func weis(n int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), oneEther)
}

func coinObjectType() string {
	return NewConfig(testPackageID, testAuthID).CoinObjectType()
}

func validCoin(t *testing.T, owner string) types.ObjectInfo {
	t.Helper()

	addr := suiAddress(t, owner)

	return types.ObjectInfo{ObjectID: testCoinID, Type: coinObjectType(), Owner: &addr}
}

func expectedMintCall(t *testing.T, amount uint64) types.MoveCall {
	t.Helper()

	amountField, err := codec.EncodeAmount(types.NewTransferAmountFromUint64(amount))
	require.NoError(t, err)
	recipientField, err := codec.EncodeObjectChainAddress(testSuiHex)
	require.NoError(t, err)

	return types.MoveCall{
		PackageID: testPackageID,
		Module:    DefaultModule,
		Function:  "mint",
		Args: []types.CallArg{
			types.ObjectArg(testAuthID),
			types.PureArg(amountField),
			types.PureArg(recipientField),
		},
		GasBudget: DefaultMintGasBudget,
	}
}

func expectedBurnAndBridgeCall(t *testing.T, amount uint64) types.MoveCall {
	t.Helper()

	recipientField, err := codec.EncodeAccountAddress(testEthHex)
	require.NoError(t, err)
	amountField, err := codec.EncodeAmount(types.NewTransferAmountFromUint64(amount))
	require.NoError(t, err)

	return types.MoveCall{
		PackageID: testPackageID,
		Module:    DefaultModule,
		Function:  "burn_and_bridge",
		Args: []types.CallArg{
			types.ObjectArg(testAuthID),
			types.ObjectArg(testCoinID),
			types.PureArg(recipientField),
			types.PureArg(amountField),
		},
		GasBudget: DefaultBurnGasBudget,
	}
}

func receipt(chain, hash string) types.LegReceipt {
	return types.LegReceipt{Chain: chain, TxHash: hash, Block: 7}
}

func TestNewOrchestrator(t *testing.T) {
	t.Parallel()

	account := mocks.NewAccountChainSubmitter(t)
	object := mocks.NewObjectChainSubmitter(t)
	reader := mocks.NewObjectChainReader(t)
	cfg := NewConfig(testPackageID, testAuthID)

	tests := []struct {
		name    string
		build   func() (*Orchestrator, error)
		wantErr string
	}{
		{
			name: "success",
			build: func() (*Orchestrator, error) {
				return NewOrchestrator(cfg, account, object, reader)
			},
		},
		{
			name: "success - custom validator without reader",
			build: func() (*Orchestrator, error) {
				return NewOrchestrator(cfg, account, object, nil, WithAssetValidator(NewMockAssetValidator(t)))
			},
		},
		{
			name: "failure - invalid config",
			build: func() (*Orchestrator, error) {
				return NewOrchestrator(Config{}, account, object, reader)
			},
			wantErr: "invalid bridge config",
		},
		{
			name: "failure - missing submitter",
			build: func() (*Orchestrator, error) {
				return NewOrchestrator(cfg, nil, object, reader)
			},
			wantErr: "both chain submitters are required",
		},
		{
			name: "failure - no way to validate assets",
			build: func() (*Orchestrator, error) {
				return NewOrchestrator(cfg, account, object, nil)
			},
			wantErr: "an object chain reader or an asset validator is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			orch, err := tt.build()
			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
				assert.Nil(t, orch)

				return
			}
			require.NoError(t, err)
			assert.NotNil(t, orch)
		})
	}
}

func TestOrchestrator_Execute_ToObjectChain(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := testContext(t)

	f.account.EXPECT().Burn(mock.Anything, weis(5)).Return(receipt("evm", "0xburn"), nil).Once()
	f.object.EXPECT().Call(mock.Anything, expectedMintCall(t, 5)).Return(receipt("sui", "mintDigest"), nil).Once()

	outcome, err := f.orch.Execute(ctx, toObjectIntent(t, "5"))
	require.NoError(t, err)

	assert.True(t, outcome.Succeeded())
	assert.Equal(t, types.StateCompleted, outcome.State)
	assert.Equal(t, "0xburn", outcome.SourceReceipt.TxHash)
	assert.Equal(t, "mintDigest", outcome.DestinationReceipt.TxHash)
	require.NotNil(t, outcome.PendingDestination)
	assert.Equal(t, "5", outcome.PendingDestination.ObjectChainAmount.String())
	assert.NoError(t, outcome.Err)

	assert.Equal(t, []legObservation{
		{types.DirectionToObjectChain, chainAccount, legBurn, true},
		{types.DirectionToObjectChain, chainObject, legMint, true},
	}, f.recorder.legObservations())
	assert.Equal(t, []types.OutcomeKind{types.OutcomeCompleted}, f.recorder.outcomeKinds())
}

func TestOrchestrator_Execute_ToAccountChain(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := testContext(t)

	f.reader.EXPECT().GetObject(ctx, testCoinID).Return(validCoin(t, testSuiHex), nil).Once()
	f.object.EXPECT().Call(mock.Anything, expectedBurnAndBridgeCall(t, 3)).Return(receipt("sui", "burnDigest"), nil).Once()
	f.account.EXPECT().Mint(mock.Anything, ethAddress(t), weis(3)).Return(receipt("evm", "0xmint"), nil).Once()

	outcome, err := f.orch.Execute(ctx, toAccountIntent(t, "3"))
	require.NoError(t, err)

	assert.Equal(t, types.OutcomeCompleted, outcome.Kind)
	assert.Equal(t, "burnDigest", outcome.SourceReceipt.TxHash)
	assert.Equal(t, "0xmint", outcome.DestinationReceipt.TxHash)
	assert.False(t, outcome.RequiresReconciliation())
}

func TestOrchestrator_Execute_FractionalAmountIsRejectedUpFront(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	outcome, err := f.orch.Execute(testContext(t), toObjectIntent(t, "1.5"))
	require.Error(t, err)
	assert.Nil(t, outcome)
	assert.True(t, IsInvalidIntent(err))
	require.ErrorIs(t, err, sdkerrors.ErrInvalidAmount)
}

func TestOrchestrator_Execute_InvalidIntent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		intent func(t *testing.T) types.TransferIntent
	}{
		{
			name: "zero amount",
			intent: func(t *testing.T) types.TransferIntent {
				t.Helper()
				return toObjectIntent(t, "0")
			},
		},
		{
			name: "non numeric amount",
			intent: func(t *testing.T) types.TransferIntent {
				t.Helper()
				return toObjectIntent(t, "ten")
			},
		},
		{
			name: "missing amount",
			intent: func(t *testing.T) types.TransferIntent {
				t.Helper()
				return toObjectIntent(t, "")
			},
		},
		{
			name: "raw amount above u64",
			intent: func(t *testing.T) types.TransferIntent {
				t.Helper()
				return toObjectIntent(t, "18446744073709551616")
			},
		},
		{
			name: "unknown direction",
			intent: func(t *testing.T) types.TransferIntent {
				t.Helper()
				intent := toObjectIntent(t, "1")
				intent.Direction = types.Direction(9)

				return intent
			},
		},
		{
			name: "source of the wrong kind",
			intent: func(t *testing.T) types.TransferIntent {
				t.Helper()
				intent := toObjectIntent(t, "1")
				intent.Source = intent.Destination

				return intent
			},
		},
		{
			name: "missing destination",
			intent: func(t *testing.T) types.TransferIntent {
				t.Helper()
				intent := toAccountIntent(t, "1")
				intent.Destination = types.ChainAddress{}

				return intent
			},
		},
		{
			name: "missing coin object",
			intent: func(t *testing.T) types.TransferIntent {
				t.Helper()
				intent := toAccountIntent(t, "1")
				intent.Asset = nil

				return intent
			},
		},
		{
			name: "coin object on an account chain source",
			intent: func(t *testing.T) types.TransferIntent {
				t.Helper()
				intent := toObjectIntent(t, "1")
				intent.Asset = &types.AssetReference{ObjectID: testCoinID}

				return intent
			},
		},
		{
			name: "malformed id",
			intent: func(t *testing.T) types.TransferIntent {
				t.Helper()
				intent := toObjectIntent(t, "1")
				intent.ID = "not-a-uuid"

				return intent
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// No expectations: any chain call fails the test.
			f := newFixture(t)

			outcome, err := f.orch.Execute(testContext(t), tt.intent(t))
			require.Error(t, err)
			assert.Nil(t, outcome)

			var target *InvalidIntentError
			require.ErrorAs(t, err, &target)
			assert.Empty(t, f.recorder.legObservations())
		})
	}
}

func TestOrchestrator_Execute_AssetRejected(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		object  func(t *testing.T) (types.ObjectInfo, error)
		wantErr func(t *testing.T, err error)
	}{
		{
			name: "wrong type",
			object: func(t *testing.T) (types.ObjectInfo, error) {
				t.Helper()
				info := validCoin(t, testSuiHex)
				info.Type = "0x2::coin::Coin<0x2::sui::SUI>"

				return info, nil
			},
			wantErr: func(t *testing.T, err error) {
				t.Helper()
				var target *sdkerrors.TypeMismatchError
				require.ErrorAs(t, err, &target)
				assert.Equal(t, "0x2::coin::Coin<0x2::sui::SUI>", target.Actual)
			},
		},
		{
			name: "wrong owner",
			object: func(t *testing.T) (types.ObjectInfo, error) {
				t.Helper()
				return validCoin(t, testOtherSui), nil
			},
			wantErr: func(t *testing.T, err error) {
				t.Helper()
				var target *sdkerrors.OwnershipMismatchError
				require.ErrorAs(t, err, &target)
			},
		},
		{
			name: "lookup failure",
			object: func(t *testing.T) (types.ObjectInfo, error) {
				t.Helper()
				return types.ObjectInfo{}, errors.New("object not found")
			},
			wantErr: func(t *testing.T, err error) {
				t.Helper()
				var target *sdkerrors.ObjectLookupFailedError
				require.ErrorAs(t, err, &target)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture(t)
			ctx := testContext(t)
			info, lookupErr := tt.object(t)
			f.reader.EXPECT().GetObject(ctx, testCoinID).Return(info, lookupErr).Once()

			outcome, err := f.orch.Execute(ctx, toAccountIntent(t, "2"))
			require.Error(t, err)
			require.ErrorIs(t, err, ErrFailedBeforeSourceCommit)
			tt.wantErr(t, err)

			require.NotNil(t, outcome)
			assert.Equal(t, types.OutcomeFailedBeforeSourceCommit, outcome.Kind)
			assert.Nil(t, outcome.SourceReceipt)
			assert.Nil(t, outcome.PendingDestination)
			assert.Empty(t, f.recorder.legObservations())
		})
	}
}

func TestOrchestrator_Execute_SourceLegFails(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := testContext(t)
	reverted := sdkerrors.NewChainError("evm", "burn", errors.New("execution reverted"))

	f.account.EXPECT().Burn(mock.Anything, weis(1)).Return(types.LegReceipt{}, reverted).Once()

	outcome, err := f.orch.Execute(ctx, toObjectIntent(t, "1"))
	require.ErrorIs(t, err, ErrFailedBeforeSourceCommit)
	require.ErrorIs(t, err, reverted)
	require.NotErrorIs(t, err, ErrFailedAfterSourceCommit)

	assert.Equal(t, types.OutcomeFailedBeforeSourceCommit, outcome.Kind)
	assert.Equal(t, types.StateFailedBeforeSourceCommit, outcome.State)
	assert.Nil(t, outcome.PendingDestination)
	assert.Equal(t, err, outcome.Err)
	assert.Equal(t, []legObservation{
		{types.DirectionToObjectChain, chainAccount, legBurn, false},
	}, f.recorder.legObservations())
}

func TestOrchestrator_Execute_DestinationLegFails(t *testing.T) {
	t.Parallel()

	t.Run("to object chain", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		f.account.EXPECT().Burn(mock.Anything, weis(4)).Return(receipt("evm", "0xburn"), nil).Once()
		f.object.EXPECT().Call(mock.Anything, expectedMintCall(t, 4)).
			Return(types.LegReceipt{}, errors.New("gas budget exceeded")).Once()

		outcome, err := f.orch.Execute(testContext(t), toObjectIntent(t, "4"))
		require.ErrorIs(t, err, ErrFailedAfterSourceCommit)

		var legErr *DestinationLegError
		require.ErrorAs(t, err, &legErr)
		assert.Equal(t, outcome.IntentID, legErr.Pending.IntentID)
		assert.Equal(t, "4", legErr.Pending.ObjectChainAmount.String())

		assert.True(t, outcome.RequiresReconciliation())
		assert.Equal(t, "0xburn", outcome.SourceReceipt.TxHash)
		assert.Nil(t, outcome.DestinationReceipt)
		require.NotNil(t, outcome.PendingDestination)
		assert.Equal(t, legErr.Pending, *outcome.PendingDestination)
		// Burn is expected exactly once and Mint never: no compensating call.
	})

	t.Run("to account chain", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		ctx := testContext(t)
		f.reader.EXPECT().GetObject(ctx, testCoinID).Return(validCoin(t, testSuiHex), nil).Once()
		f.object.EXPECT().Call(mock.Anything, expectedBurnAndBridgeCall(t, 2)).Return(receipt("sui", "burnDigest"), nil).Once()
		f.account.EXPECT().Mint(mock.Anything, ethAddress(t), weis(2)).
			Return(types.LegReceipt{}, errors.New("nonce too low")).Once()

		outcome, err := f.orch.Execute(ctx, toAccountIntent(t, "2"))
		require.ErrorIs(t, err, ErrFailedAfterSourceCommit)
		assert.Equal(t, types.OutcomeFailedAfterSourceCommitBeforeDestinationCommit, outcome.Kind)
		assert.Equal(t, 0, weis(2).Cmp(outcome.PendingDestination.AccountChainAmount.BigInt()))
	})
}

func TestOrchestrator_Execute_BalanceCheck(t *testing.T) {
	t.Parallel()

	t.Run("insufficient", func(t *testing.T) {
		t.Parallel()

		balances := mocks.NewAccountChainReader(t)
		f := newFixture(t, WithBalanceCheck(balances))
		ctx := testContext(t)
		balances.EXPECT().BalanceOf(ctx, ethAddress(t)).Return(weis(1), nil).Once()

		outcome, err := f.orch.Execute(ctx, toObjectIntent(t, "2"))
		require.ErrorIs(t, err, ErrFailedBeforeSourceCommit)

		var target *InsufficientBalanceError
		require.ErrorAs(t, err, &target)
		assert.Equal(t, 0, weis(2).Cmp(target.Required))
		assert.Equal(t, types.OutcomeFailedBeforeSourceCommit, outcome.Kind)
	})

	t.Run("sufficient", func(t *testing.T) {
		t.Parallel()

		balances := mocks.NewAccountChainReader(t)
		f := newFixture(t, WithBalanceCheck(balances))
		ctx := testContext(t)
		balances.EXPECT().BalanceOf(ctx, ethAddress(t)).Return(weis(2), nil).Once()
		f.account.EXPECT().Burn(mock.Anything, weis(2)).Return(receipt("evm", "0xburn"), nil).Once()
		f.object.EXPECT().Call(mock.Anything, expectedMintCall(t, 2)).Return(receipt("sui", "mintDigest"), nil).Once()

		outcome, err := f.orch.Execute(ctx, toObjectIntent(t, "2"))
		require.NoError(t, err)
		assert.True(t, outcome.Succeeded())
	})

	t.Run("read failure", func(t *testing.T) {
		t.Parallel()

		balances := mocks.NewAccountChainReader(t)
		f := newFixture(t, WithBalanceCheck(balances))
		ctx := testContext(t)
		balances.EXPECT().BalanceOf(ctx, ethAddress(t)).Return(nil, errors.New("rpc unavailable")).Once()

		_, err := f.orch.Execute(ctx, toObjectIntent(t, "2"))
		require.ErrorIs(t, err, ErrFailedBeforeSourceCommit)
		require.ErrorContains(t, err, "rpc unavailable")
	})
}

func TestOrchestrator_Execute_Cancellation(t *testing.T) {
	t.Parallel()

	t.Run("before the source leg", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		ctx, cancel := context.WithCancel(testContext(t))
		cancel()

		outcome, err := f.orch.Execute(ctx, toObjectIntent(t, "1"))
		require.ErrorIs(t, err, ErrFailedBeforeSourceCommit)
		require.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, types.OutcomeFailedBeforeSourceCommit, outcome.Kind)
		assert.Empty(t, f.recorder.legObservations())
	})

	t.Run("during the source leg", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		ctx, cancel := context.WithCancel(testContext(t))
		defer cancel()

		f.account.EXPECT().Burn(mock.Anything, weis(1)).
			RunAndReturn(func(legCtx context.Context, _ *big.Int) (types.LegReceipt, error) {
				cancel()
				// The submitted leg keeps running.
				assert.NoError(t, legCtx.Err())

				return receipt("evm", "0xburn"), nil
			}).Once()

		outcome, err := f.orch.Execute(ctx, toObjectIntent(t, "1"))
		require.ErrorIs(t, err, ErrFailedAfterSourceCommit)
		require.ErrorIs(t, err, context.Canceled)
		assert.True(t, outcome.RequiresReconciliation())
		assert.Equal(t, "0xburn", outcome.SourceReceipt.TxHash)
		require.NotNil(t, outcome.PendingDestination)
	})
}

func TestOrchestrator_RetryDestinationLeg(t *testing.T) {
	t.Parallel()

	t.Run("retries only the destination leg", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		f.account.EXPECT().Burn(mock.Anything, weis(6)).Return(receipt("evm", "0xburn"), nil).Once()
		f.object.EXPECT().Call(mock.Anything, expectedMintCall(t, 6)).
			Return(types.LegReceipt{}, errors.New("timeout")).Once()

		failed, err := f.orch.Execute(testContext(t), toObjectIntent(t, "6"))
		require.ErrorIs(t, err, ErrFailedAfterSourceCommit)

		f.object.EXPECT().Call(mock.Anything, expectedMintCall(t, 6)).Return(receipt("sui", "mintDigest"), nil).Once()

		outcome, err := f.orch.RetryDestinationLeg(testContext(t), *failed.PendingDestination)
		require.NoError(t, err)
		assert.True(t, outcome.Succeeded())
		assert.Equal(t, failed.IntentID, outcome.IntentID)
		assert.Nil(t, outcome.SourceReceipt)
		assert.Equal(t, "mintDigest", outcome.DestinationReceipt.TxHash)
	})

	t.Run("failure is still post-commit", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		pending := types.DestinationLeg{
			IntentID:           "retry",
			Direction:          types.DirectionToAccountChain,
			ObjectChainAmount:  types.NewTransferAmountFromUint64(1),
			AccountChainAmount: types.NewTransferAmountFromUint64(1),
			Recipient:          types.NewAccountChainAddress(ethAddress(t)),
		}
		f.account.EXPECT().Mint(mock.Anything, ethAddress(t), big.NewInt(1)).
			Return(types.LegReceipt{}, errors.New("reverted")).Once()

		outcome, err := f.orch.RetryDestinationLeg(testContext(t), pending)
		require.ErrorIs(t, err, ErrFailedAfterSourceCommit)
		assert.True(t, outcome.RequiresReconciliation())
	})

	t.Run("not retryable", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)

		_, err := f.orch.RetryDestinationLeg(testContext(t), types.DestinationLeg{
			IntentID:  "bad",
			Direction: types.DirectionToObjectChain,
			Recipient: types.NewAccountChainAddress(ethAddress(t)),
		})
		require.ErrorIs(t, err, ErrNotRetryable)

		_, err = f.orch.RetryDestinationLeg(testContext(t), types.DestinationLeg{
			IntentID:  "zero",
			Direction: types.DirectionToObjectChain,
			Recipient: types.NewObjectChainAddress(suiAddress(t, testSuiHex)),
		})
		require.ErrorIs(t, err, ErrNotRetryable)
	})
}

func TestOrchestrator_Execute_Concurrent(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.account.EXPECT().Burn(mock.Anything, mock.Anything).Return(receipt("evm", "0xburn"), nil).Times(8)
	f.object.EXPECT().Call(mock.Anything, mock.Anything).Return(receipt("sui", "mintDigest"), nil).Times(8)

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func(n int64) {
			defer wg.Done()

			outcome, err := f.orch.Execute(testContext(t), toObjectIntent(t, big.NewInt(n+1).String()))
			assert.NoError(t, err)
			assert.True(t, outcome.Succeeded())
		}(int64(i))
	}
	wg.Wait()

	assert.Len(t, f.recorder.outcomeKinds(), 8)
}

type legObservation struct {
	direction types.Direction
	chain     string
	leg       string
	success   bool
}

type fakeRecorder struct {
	mu       sync.Mutex
	legs     []legObservation
	outcomes []types.OutcomeKind
}

func (r *fakeRecorder) RecordLeg(direction types.Direction, chain, leg string, success bool, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.legs = append(r.legs, legObservation{direction, chain, leg, success})
}

func (r *fakeRecorder) RecordOutcome(_ types.Direction, kind types.OutcomeKind, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outcomes = append(r.outcomes, kind)
}

func (r *fakeRecorder) legObservations() []legObservation {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]legObservation(nil), r.legs...)
}

func (r *fakeRecorder) outcomeKinds() []types.OutcomeKind {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]types.OutcomeKind(nil), r.outcomes...)
}
