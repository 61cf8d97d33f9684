package bridge

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/smartcontractkit/ibt-bridge/types"
)

const (
	// DefaultModule is the Move module of the bridged token.
	DefaultModule = "IBT"

	// CoinStructName is the struct name of the bridged coin type inside the module.
	CoinStructName = "IBT"

	// DefaultMintGasBudget is the gas budget attached to object-chain mint calls.
	DefaultMintGasBudget uint64 = 10_000_000_000

	// DefaultBurnGasBudget is the gas budget attached to object-chain burn_and_bridge calls.
	DefaultBurnGasBudget uint64 = 1_000_000_000

	mintFunction          = "mint"
	burnAndBridgeFunction = "burn_and_bridge"
)

// Config locates the bridge program on the object chain.
type Config struct {
	PackageID     string `validate:"required"`
	Module        string `validate:"required"`
	BridgeAuthID  string `validate:"required"`
	MintGasBudget uint64 `validate:"gt=0"`
	BurnGasBudget uint64 `validate:"gt=0"`
}

// NewConfig returns a Config with the default module and gas budgets.
func NewConfig(packageID, bridgeAuthID string) Config {
	return Config{
		PackageID:     packageID,
		Module:        DefaultModule,
		BridgeAuthID:  bridgeAuthID,
		MintGasBudget: DefaultMintGasBudget,
		BurnGasBudget: DefaultBurnGasBudget,
	}
}

func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid bridge config: %w", err)
	}

	return nil
}

// CoinType is the Move type of the bridged coin, package::module::IBT.
func (c Config) CoinType() string {
	return fmt.Sprintf("%s::%s::%s", c.PackageID, c.Module, CoinStructName)
}

// CoinObjectType is the runtime type a valid coin object must report.
func (c Config) CoinObjectType() string {
	return types.CoinObjectType(c.CoinType())
}
