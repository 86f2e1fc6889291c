package swap

import (
	"context"
	"math/big"

	"github.com/gabapcia/web3lab/internal/chain"
	"github.com/gabapcia/web3lab/internal/chain/contracts"
	"github.com/gabapcia/web3lab/internal/pkg/logger"
	"github.com/gabapcia/web3lab/internal/units"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"go.opentelemetry.io/otel/codes"
)

// Quote is the router's estimate for each hop of a path. Amounts[0] is the
// input amount; the last element is the expected output.
type Quote struct {
	Amounts   []*big.Int
	Formatted []string
}

// Estimated returns the formatted expected output, or "" for an empty quote.
func (q Quote) Estimated() string {
	if len(q.Formatted) == 0 {
		return ""
	}
	return q.Formatted[len(q.Formatted)-1]
}

// Quote implements Service.
func (s *service) Quote(ctx context.Context, req Request) (Quote, error) {
	ctx, span := s.tracer.Start(ctx, "swap.Quote")
	defer span.End()

	args, err := req.parse()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Quote{}, err
	}

	var out []any
	router := contracts.NewRouter(args.router, s.backend)
	if err := router.Call(&bind.CallOpts{Context: ctx}, &out, contracts.MethodGetAmountsOut, args.amountIn, args.path); err != nil {
		err = chain.Classify(err, chain.ErrCallFailed)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.Warn(ctx, "swap quote failed", "router.address", args.router.Hex(), "error", err)
		return Quote{}, err
	}

	amounts := *abi.ConvertType(out[0], new([]*big.Int)).(*[]*big.Int)

	formatted := make([]string, len(amounts))
	for i, amount := range amounts {
		formatted[i] = units.Format(amount, args.decimals)
	}

	return Quote{Amounts: amounts, Formatted: formatted}, nil
}
