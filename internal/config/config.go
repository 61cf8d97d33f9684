// Package config loads the operator configuration of the bridge CLI from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	chainsel "github.com/smartcontractkit/chain-selectors"

	bridge "github.com/smartcontractkit/ibt-bridge"
	"github.com/smartcontractkit/ibt-bridge/internal/utils/safecast"
)

// Prefix is prepended to every variable name, e.g. IBT_ETH_RPC_URL.
const Prefix = "IBT"

type Config struct {
	Eth     Eth
	Sui     Sui
	Metrics Metrics
}

type Eth struct {
	RPCURL         string        `envconfig:"RPC_URL" validate:"required,url"`
	PrivateKey     string        `envconfig:"PRIVATE_KEY" validate:"omitempty,hexadecimal,len=64"`
	// LedgerPath signs with the first connected Ledger at this derivation path instead of
	// PrivateKey, e.g. m/44'/60'/0'/0/0.
	LedgerPath     string        `envconfig:"LEDGER_PATH"`
	TokenAddress   string        `envconfig:"TOKEN_ADDRESS" validate:"required,eth_addr"`
	ChainSelector  uint64        `envconfig:"CHAIN_SELECTOR" validate:"required"`
	ConfirmTimeout time.Duration `envconfig:"CONFIRM_TIMEOUT" default:"5m" validate:"gt=0"`
}

type Sui struct {
	RPCURL        string `envconfig:"RPC_URL" validate:"required,url"`
	Mnemonic      string `envconfig:"MNEMONIC" validate:"required"`
	PackageID     string `envconfig:"PACKAGE_ID" validate:"required,startswith=0x"`
	BridgeAuthID  string `envconfig:"BRIDGE_AUTH_ID" validate:"required,startswith=0x"`
	Module        string `envconfig:"MODULE" default:"IBT" validate:"required"`
	MintGasBudget uint64 `envconfig:"MINT_GAS_BUDGET" default:"10000000000" validate:"gt=0"`
	BurnGasBudget uint64 `envconfig:"BURN_GAS_BUDGET" default:"1000000000" validate:"gt=0"`
}

type Metrics struct {
	// Addr serves /metrics when set, e.g. ":9090".
	Addr string `envconfig:"ADDR" validate:"omitempty,hostname_port"`
}

// Load reads the dotenv files, when present, and then the process environment. Variables
// already set in the environment win over the files.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to process env var: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if _, err := c.Eth.ChainID(); err != nil {
		return err
	}

	switch {
	case c.Eth.PrivateKey == "" && c.Eth.LedgerPath == "":
		return errors.New("invalid configuration: one of IBT_ETH_PRIVATE_KEY or IBT_ETH_LEDGER_PATH is required")
	case c.Eth.PrivateKey != "" && c.Eth.LedgerPath != "":
		return errors.New("invalid configuration: IBT_ETH_PRIVATE_KEY and IBT_ETH_LEDGER_PATH are exclusive")
	case c.Eth.LedgerPath != "":
		if _, err := accounts.ParseDerivationPath(c.Eth.LedgerPath); err != nil {
			return fmt.Errorf("invalid configuration: ledger path: %w", err)
		}
	}

	return nil
}

// ChainID resolves the EVM chain ID of the configured chain selector.
func (e Eth) ChainID() (*big.Int, error) {
	chain, exists := chainsel.ChainBySelector(e.ChainSelector)
	if !exists {
		return nil, fmt.Errorf("unknown chain selector %d", e.ChainSelector)
	}

	id, err := safecast.Uint64ToInt64(chain.EvmChainID)
	if err != nil {
		return nil, fmt.Errorf("chain selector %d: %w", e.ChainSelector, err)
	}

	return big.NewInt(id), nil
}

// Bridge returns the object-chain program configuration of the orchestrator.
func (s Sui) Bridge() bridge.Config {
	return bridge.Config{
		PackageID:     s.PackageID,
		Module:        s.Module,
		BridgeAuthID:  s.BridgeAuthID,
		MintGasBudget: s.MintGasBudget,
		BurnGasBudget: s.BurnGasBudget,
	}
}
