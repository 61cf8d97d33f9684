package evm

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"

	"github.com/smartcontractkit/ibt-bridge/sdk"
	sdkerrors "github.com/smartcontractkit/ibt-bridge/sdk/errors"
	"github.com/smartcontractkit/ibt-bridge/sdk/evm/bindings"
	"github.com/smartcontractkit/ibt-bridge/types"
)

// ChainName labels receipts and errors produced by this package.
const ChainName = "evm"

// DefaultConfirmTimeout bounds how long a submitted transaction is awaited.
const DefaultConfirmTimeout = 5 * time.Minute

var (
	_ sdk.AccountChainSubmitter = (*Submitter)(nil)
	_ sdk.AccountChainReader    = (*Submitter)(nil)
)

// TokenContract is the subset of bindings.IBTToken used by the Submitter.
type TokenContract interface {
	Burn(opts *bind.TransactOpts, amount *big.Int) (*gethtypes.Transaction, error)
	Mint(opts *bind.TransactOpts, to common.Address, amount *big.Int) (*gethtypes.Transaction, error)
	BalanceOf(opts *bind.CallOpts, account common.Address) (*big.Int, error)
}

// Submitter burns, mints and reads balances of the bridged token on an EVM chain. Every
// transaction is awaited until its receipt is available and checked for success.
type Submitter struct {
	token          TokenContract
	tokenABI       *abi.ABI
	backend        ReceiptBackend
	auth           *bind.TransactOpts
	confirmTimeout time.Duration
	pollInterval   time.Duration
}

type SubmitterOption func(*Submitter)

func WithConfirmTimeout(timeout time.Duration) SubmitterOption {
	return func(s *Submitter) {
		s.confirmTimeout = timeout
	}
}

func WithPollInterval(interval time.Duration) SubmitterOption {
	return func(s *Submitter) {
		s.pollInterval = interval
	}
}

// NewSubmitter creates a Submitter. auth signs burn and mint transactions; burn always burns from
// auth.From.
func NewSubmitter(token TokenContract, backend ReceiptBackend, auth *bind.TransactOpts, opts ...SubmitterOption) *Submitter {
	s := &Submitter{
		token:          token,
		backend:        backend,
		auth:           auth,
		confirmTimeout: DefaultConfirmTimeout,
		pollInterval:   defaultPollInterval,
	}
	if parsed, err := bindings.ParseIBTTokenABI(); err == nil {
		s.tokenABI = &parsed
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Submitter) Burn(ctx context.Context, amount *big.Int) (types.LegReceipt, error) {
	tx, err := s.token.Burn(s.transactOpts(ctx), amount)
	if err != nil {
		return types.LegReceipt{}, sdkerrors.NewChainError(ChainName, "burn", asRevertError(s.tokenABI, err))
	}

	return s.confirm(ctx, "burn", tx)
}

func (s *Submitter) Mint(ctx context.Context, to types.AccountAddress, amount *big.Int) (types.LegReceipt, error) {
	tx, err := s.token.Mint(s.transactOpts(ctx), to.Common(), amount)
	if err != nil {
		return types.LegReceipt{}, sdkerrors.NewChainError(ChainName, "mint", asRevertError(s.tokenABI, err))
	}

	return s.confirm(ctx, "mint", tx)
}

func (s *Submitter) BalanceOf(ctx context.Context, owner types.AccountAddress) (*big.Int, error) {
	balance, err := s.token.BalanceOf(&bind.CallOpts{Context: ctx}, owner.Common())
	if err != nil {
		return nil, sdkerrors.NewChainError(ChainName, "balanceOf", err)
	}

	return balance, nil
}

// Sender is the account whose tokens are burned.
func (s *Submitter) Sender() types.AccountAddress {
	return types.AccountAddress(s.auth.From)
}

func (s *Submitter) transactOpts(ctx context.Context) *bind.TransactOpts {
	opts := *s.auth
	opts.Context = ctx

	return &opts
}

func (s *Submitter) confirm(ctx context.Context, operation string, tx *gethtypes.Transaction) (types.LegReceipt, error) {
	ctx, cancel := context.WithTimeout(ctx, s.confirmTimeout)
	defer cancel()

	receipt, err := waitReceipt(ctx, s.backend, tx.Hash(), s.pollInterval)
	if err != nil {
		return types.LegReceipt{}, sdkerrors.NewChainError(ChainName, operation, err)
	}
	if receipt.Status != gethtypes.ReceiptStatusSuccessful {
		return types.LegReceipt{}, sdkerrors.NewChainError(ChainName, operation, NewTxRevertedError(tx.Hash(), receipt.BlockNumber))
	}

	var block uint64
	if receipt.BlockNumber != nil {
		block = receipt.BlockNumber.Uint64()
	}

	return types.LegReceipt{
		Chain:  ChainName,
		TxHash: tx.Hash().Hex(),
		Block:  block,
		Raw:    receipt,
	}, nil
}
