package bridge

import (
	"context"
	"fmt"
	"time"

	"github.com/block-vision/sui-go-sdk/signer"
	"github.com/block-vision/sui-go-sdk/sui"
	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"

	ibt "github.com/smartcontractkit/ibt-bridge"
	"github.com/smartcontractkit/ibt-bridge/internal/config"
	"github.com/smartcontractkit/ibt-bridge/internal/metrics"
	"github.com/smartcontractkit/ibt-bridge/sdk"
	"github.com/smartcontractkit/ibt-bridge/sdk/evm"
	"github.com/smartcontractkit/ibt-bridge/sdk/evm/bindings"
	suiadapter "github.com/smartcontractkit/ibt-bridge/sdk/sui"
	"github.com/smartcontractkit/ibt-bridge/types"
)

const metricsShutdownTimeout = 5 * time.Second

// environment holds the clients of both chains, built once per command.
type environment struct {
	cfg    config.Config
	logger *zap.SugaredLogger

	ethClient    *ethclient.Client
	ethSubmitter *evm.Submitter
	ledger       accounts.Wallet

	suiReader    *suiadapter.Reader
	suiSubmitter *suiadapter.Submitter
	suiAddress   types.ObjectChainAddress

	orchestrator  *ibt.Orchestrator
	metricsServer *metrics.Server
}

func loadEnvironment(ctx context.Context, envFile string) (*environment, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, err
	}

	zapLogger, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	env := &environment{cfg: cfg, logger: zapLogger.Sugar()}

	if err := env.connectEth(ctx); err != nil {
		env.Close()
		return nil, err
	}
	if err := env.connectSui(); err != nil {
		env.Close()
		return nil, err
	}

	registry := metrics.NewRegistry()
	recorder, err := metrics.NewBridgeMetrics(registry)
	if err != nil {
		env.Close()
		return nil, err
	}
	if cfg.Metrics.Addr != "" {
		env.metricsServer, err = metrics.StartServer(cfg.Metrics.Addr, registry, env.logger)
		if err != nil {
			env.Close()
			return nil, fmt.Errorf("failed to start metrics server: %w", err)
		}
	}

	env.orchestrator, err = ibt.NewOrchestrator(
		cfg.Sui.Bridge(),
		env.ethSubmitter,
		env.suiSubmitter,
		env.suiReader,
		ibt.WithBalanceCheck(env.ethSubmitter),
		ibt.WithRecorder(recorder),
	)
	if err != nil {
		env.Close()
		return nil, err
	}

	return env, nil
}

func (e *environment) connectEth(ctx context.Context) error {
	client, err := ethclient.DialContext(ctx, e.cfg.Eth.RPCURL)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", e.cfg.Eth.RPCURL, err)
	}
	e.ethClient = client

	auth, err := e.ethTransactor()
	if err != nil {
		return err
	}

	token, err := bindings.NewIBTToken(common.HexToAddress(e.cfg.Eth.TokenAddress), client)
	if err != nil {
		return err
	}
	e.ethSubmitter = evm.NewSubmitter(token, client, auth, evm.WithConfirmTimeout(e.cfg.Eth.ConfirmTimeout))

	return nil
}

func (e *environment) ethTransactor() (*bind.TransactOpts, error) {
	chainID, err := e.cfg.Eth.ChainID()
	if err != nil {
		return nil, err
	}

	if e.cfg.Eth.LedgerPath != "" {
		path, err := accounts.ParseDerivationPath(e.cfg.Eth.LedgerPath)
		if err != nil {
			return nil, err
		}
		auth, wallet, err := evm.NewLedgerTransactor(path, chainID)
		if err != nil {
			return nil, err
		}
		e.ledger = wallet

		return auth, nil
	}

	key, err := crypto.HexToECDSA(e.cfg.Eth.PrivateKey)
	if err != nil {
		return nil, fmt.Errorf("invalid ethereum private key: %w", err)
	}

	return bind.NewKeyedTransactorWithChainID(key, chainID)
}

func (e *environment) connectSui() error {
	client := sui.NewSuiClient(e.cfg.Sui.RPCURL)

	s, err := signer.NewSignertWithMnemonic(e.cfg.Sui.Mnemonic)
	if err != nil {
		return fmt.Errorf("invalid sui mnemonic: %w", err)
	}
	addr, err := suiadapter.AddressFromHex(s.Address)
	if err != nil {
		return err
	}

	e.suiReader = suiadapter.NewReader(client)
	e.suiSubmitter = suiadapter.NewSubmitter(client, s)
	e.suiAddress = addr

	return nil
}

// withLogger attaches the environment's logger to ctx.
func (e *environment) withLogger(ctx context.Context) context.Context {
	return sdk.WithLogger(ctx, e.logger)
}

func (e *environment) ethAddress() types.AccountAddress {
	return e.ethSubmitter.Sender()
}

func (e *environment) Close() {
	if e.metricsServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), metricsShutdownTimeout)
		defer cancel()
		if err := e.metricsServer.Stop(ctx); err != nil {
			e.logger.Errorf("failed to stop metrics server: %v", err)
		}
	}
	if e.ledger != nil {
		_ = e.ledger.Close()
	}
	if e.ethClient != nil {
		e.ethClient.Close()
	}
	_ = e.logger.Sync()
}
