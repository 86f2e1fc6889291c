package swap

import (
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/gabapcia/web3lab/internal/chain"
	"github.com/gabapcia/web3lab/internal/units"

	"github.com/ethereum/go-ethereum/common"
)

// DefaultDecimals is used when a request leaves Decimals unset.
const DefaultDecimals = 18

// Decimals returns a pointer to n, for filling Request.Decimals.
func Decimals(n uint8) *uint8 {
	return &n
}

// Request describes a swap along Path through Router.
type Request struct {
	Router       string
	Path         []string
	AmountIn     string
	AmountOutMin string    // optional, defaults to 0
	Decimals     *uint8    // nil means DefaultDecimals; zero is a valid precision
	Deadline     time.Time // optional, defaults to now plus the service deadline
}

// ParsePath splits a comma separated list of addresses, dropping blanks.
func ParsePath(s string) []string {
	var path []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			path = append(path, item)
		}
	}
	return path
}

type swapArgs struct {
	router       common.Address
	path         []common.Address
	amountIn     *big.Int
	amountOutMin *big.Int
	decimals     uint8
}

// parse validates the request. The path length is checked first so a short
// path never reaches the network.
func (r Request) parse() (swapArgs, error) {
	if len(r.Path) < 2 {
		return swapArgs{}, ErrInvalidPath
	}

	router, err := chain.ParseAddress("router", r.Router)
	if err != nil {
		return swapArgs{}, err
	}

	path := make([]common.Address, len(r.Path))
	for i, hop := range r.Path {
		if path[i], err = chain.ParseAddress(fmt.Sprintf("path[%d]", i), hop); err != nil {
			return swapArgs{}, err
		}
	}

	decimals := uint8(DefaultDecimals)
	if r.Decimals != nil {
		decimals = *r.Decimals
	}

	amountIn, err := units.Parse(r.AmountIn, decimals)
	if err != nil {
		return swapArgs{}, err
	}

	amountOutMin := new(big.Int)
	if strings.TrimSpace(r.AmountOutMin) != "" {
		if amountOutMin, err = units.Parse(r.AmountOutMin, decimals); err != nil {
			return swapArgs{}, err
		}
	}

	return swapArgs{
		router:       router,
		path:         path,
		amountIn:     amountIn,
		amountOutMin: amountOutMin,
		decimals:     decimals,
	}, nil
}
