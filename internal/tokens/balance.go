package tokens

import (
	"context"
	"math/big"

	"github.com/gabapcia/web3lab/internal/chain"
	"github.com/gabapcia/web3lab/internal/chain/contracts"
	"github.com/gabapcia/web3lab/internal/units"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

// Balance is a token balance in base units and formatted with the token's
// decimals.
type Balance struct {
	Owner     common.Address
	Raw       *big.Int
	Formatted string
}

// BalanceOf implements Service.
func (s *service) BalanceOf(ctx context.Context, contract, owner string, decimals uint8) (Balance, error) {
	ctx, span := s.tracer.Start(ctx, "tokens.BalanceOf")
	defer span.End()

	contractAddr, err := chain.ParseAddress("contract", contract)
	if err != nil {
		return Balance{}, err
	}

	ownerAddr, err := chain.ParseAddress("owner", owner)
	if err != nil {
		return Balance{}, err
	}

	var out []any
	token := contracts.NewToken(contractAddr, s.backend)
	if err := token.Call(&bind.CallOpts{Context: ctx}, &out, contracts.MethodBalanceOf, ownerAddr); err != nil {
		span.RecordError(err)
		return Balance{}, chain.Classify(err, chain.ErrCallFailed)
	}

	raw := *abi.ConvertType(out[0], new(*big.Int)).(**big.Int)

	return Balance{
		Owner:     ownerAddr,
		Raw:       raw,
		Formatted: units.Format(raw, decimals),
	}, nil
}
