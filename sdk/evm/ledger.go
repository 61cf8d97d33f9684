package evm

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/accounts/usbwallet"
	"github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"
)

// DefaultDerivationPath is the first account of the standard Ethereum ledger path.
const DefaultDerivationPath = "m/44'/60'/0'/0/0"

// txSigner is the part of accounts.Wallet used to sign transactions.
type txSigner interface {
	SignTx(account accounts.Account, tx *gethtypes.Transaction, chainID *big.Int) (*gethtypes.Transaction, error)
}

// NewLedgerTransactor opens the first Ledger found and returns transact options signing with the
// account at path. The caller must close the returned wallet.
func NewLedgerTransactor(path accounts.DerivationPath, chainID *big.Int) (*bind.TransactOpts, accounts.Wallet, error) {
	hub, err := usbwallet.NewLedgerHub()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open ledger hub: %w", err)
	}

	wallets := hub.Wallets()
	if len(wallets) == 0 {
		return nil, nil, errors.New("no ledger found")
	}
	wallet := wallets[0]

	if err := wallet.Open(""); err != nil {
		return nil, nil, fmt.Errorf("failed to open ledger: %w", err)
	}

	account, err := wallet.Derive(path, true)
	if err != nil {
		wallet.Close()
		return nil, nil, fmt.Errorf("is the ledger ethereum app open? failed to derive account %s: %w", path, err)
	}

	return ledgerTransactOpts(wallet, account, chainID), wallet, nil
}

func ledgerTransactOpts(signer txSigner, account accounts.Account, chainID *big.Int) *bind.TransactOpts {
	return &bind.TransactOpts{
		From: account.Address,
		Signer: func(addr common.Address, tx *gethtypes.Transaction) (*gethtypes.Transaction, error) {
			if addr != account.Address {
				return nil, bind.ErrNotAuthorized
			}

			return signer.SignTx(account, tx, chainID)
		},
		Context: context.Background(),
	}
}
