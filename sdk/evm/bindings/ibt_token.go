package bindings

import (
	"errors"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// IBTTokenABI is the input ABI used to generate the binding from.
const IBTTokenABI = `[
	{"type":"function","name":"balanceOf","stateMutability":"view","inputs":[{"name":"account","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"decimals","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint8"}]},
	{"type":"function","name":"burn","stateMutability":"nonpayable","inputs":[{"name":"amount","type":"uint256"}],"outputs":[]},
	{"type":"function","name":"mint","stateMutability":"nonpayable","inputs":[{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[]},
	{"type":"event","name":"Transfer","anonymous":false,"inputs":[{"name":"from","type":"address","indexed":true},{"name":"to","type":"address","indexed":true},{"name":"value","type":"uint256","indexed":false}]},
	{"type":"error","name":"ERC20InsufficientBalance","inputs":[{"name":"sender","type":"address"},{"name":"balance","type":"uint256"},{"name":"needed","type":"uint256"}]},
	{"type":"error","name":"ERC20InvalidReceiver","inputs":[{"name":"receiver","type":"address"}]},
	{"type":"error","name":"OwnableUnauthorizedAccount","inputs":[{"name":"account","type":"address"}]}
]`

// IBTToken is a binding around the bridged ERC20 token contract.
type IBTToken struct {
	address  common.Address
	abi      abi.ABI
	contract *bind.BoundContract
}

// NewIBTToken creates a new instance of IBTToken, bound to a specific deployed contract.
func NewIBTToken(address common.Address, backend bind.ContractBackend) (*IBTToken, error) {
	parsed, err := ParseIBTTokenABI()
	if err != nil {
		return nil, err
	}

	return &IBTToken{
		address:  address,
		abi:      parsed,
		contract: bind.NewBoundContract(address, parsed, backend, backend, backend),
	}, nil
}

func ParseIBTTokenABI() (abi.ABI, error) {
	return abi.JSON(strings.NewReader(IBTTokenABI))
}

func (t *IBTToken) Address() common.Address {
	return t.address
}

// BalanceOf is a free data retrieval call binding the contract method 0x70a08231.
//
// Solidity: function balanceOf(address account) view returns(uint256)
func (t *IBTToken) BalanceOf(opts *bind.CallOpts, account common.Address) (*big.Int, error) {
	var out []any
	if err := t.contract.Call(opts, &out, "balanceOf", account); err != nil {
		return nil, err
	}
	if len(out) != 1 {
		return nil, errors.New("balanceOf: unexpected number of return values")
	}

	return *abi.ConvertType(out[0], new(*big.Int)).(**big.Int), nil
}

// Decimals is a free data retrieval call binding the contract method 0x313ce567.
//
// Solidity: function decimals() view returns(uint8)
func (t *IBTToken) Decimals(opts *bind.CallOpts) (uint8, error) {
	var out []any
	if err := t.contract.Call(opts, &out, "decimals"); err != nil {
		return 0, err
	}
	if len(out) != 1 {
		return 0, errors.New("decimals: unexpected number of return values")
	}

	return *abi.ConvertType(out[0], new(uint8)).(*uint8), nil
}

// Burn is a paid mutator transaction binding the contract method 0x42966c68.
//
// Solidity: function burn(uint256 amount) returns()
func (t *IBTToken) Burn(opts *bind.TransactOpts, amount *big.Int) (*types.Transaction, error) {
	return t.contract.Transact(opts, "burn", amount)
}

// Mint is a paid mutator transaction binding the contract method 0x40c10f19.
//
// Solidity: function mint(address to, uint256 amount) returns()
func (t *IBTToken) Mint(opts *bind.TransactOpts, to common.Address, amount *big.Int) (*types.Transaction, error) {
	return t.contract.Transact(opts, "mint", to, amount)
}

// PackBurn returns the calldata of a burn call.
func (t *IBTToken) PackBurn(amount *big.Int) ([]byte, error) {
	return t.abi.Pack("burn", amount)
}

// PackMint returns the calldata of a mint call.
func (t *IBTToken) PackMint(to common.Address, amount *big.Int) ([]byte, error) {
	return t.abi.Pack("mint", to, amount)
}
