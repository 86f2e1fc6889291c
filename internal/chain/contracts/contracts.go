// Package contracts binds the two fixed contract interfaces the module talks
// to: a minimal ERC-20 token and a Uniswap-V2 style router.
package contracts

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

const erc20JSON = `[
	{"type":"function","name":"transfer","stateMutability":"nonpayable",
	 "inputs":[{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],
	 "outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"balanceOf","stateMutability":"view",
	 "inputs":[{"name":"owner","type":"address"}],
	 "outputs":[{"name":"","type":"uint256"}]},
	{"type":"event","name":"Transfer","anonymous":false,
	 "inputs":[{"name":"from","type":"address","indexed":true},
	           {"name":"to","type":"address","indexed":true},
	           {"name":"value","type":"uint256","indexed":false}]}
]`

const routerJSON = `[
	{"type":"function","name":"swapExactTokensForTokens","stateMutability":"nonpayable",
	 "inputs":[{"name":"amountIn","type":"uint256"},{"name":"amountOutMin","type":"uint256"},
	           {"name":"path","type":"address[]"},{"name":"to","type":"address"},
	           {"name":"deadline","type":"uint256"}],
	 "outputs":[{"name":"amounts","type":"uint256[]"}]},
	{"type":"function","name":"getAmountsOut","stateMutability":"view",
	 "inputs":[{"name":"amountIn","type":"uint256"},{"name":"path","type":"address[]"}],
	 "outputs":[{"name":"amounts","type":"uint256[]"}]}
]`

// Method and event names.
const (
	MethodTransfer                 = "transfer"
	MethodBalanceOf                = "balanceOf"
	EventTransfer                  = "Transfer"
	MethodSwapExactTokensForTokens = "swapExactTokensForTokens"
	MethodGetAmountsOut            = "getAmountsOut"
)

var (
	// ERC20ABI is the token interface: transfer, balanceOf and the Transfer event.
	ERC20ABI = mustParse(erc20JSON)

	// RouterABI is the router interface: swapExactTokensForTokens and getAmountsOut.
	RouterABI = mustParse(routerJSON)
)

func mustParse(def string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(def))
	if err != nil {
		panic(err)
	}
	return parsed
}

// TransferLog is the decoded body of a Transfer event.
type TransferLog struct {
	From  common.Address
	To    common.Address
	Value *big.Int
}

// NewToken binds the token interface at address.
func NewToken(address common.Address, backend bind.ContractBackend) *bind.BoundContract {
	return bind.NewBoundContract(address, ERC20ABI, backend, backend, backend)
}

// NewRouter binds the router interface at address.
func NewRouter(address common.Address, backend bind.ContractBackend) *bind.BoundContract {
	return bind.NewBoundContract(address, RouterABI, backend, backend, backend)
}
