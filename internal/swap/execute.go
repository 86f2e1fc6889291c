package swap

import (
	"context"
	"math/big"

	"github.com/gabapcia/web3lab/internal/chain"
	"github.com/gabapcia/web3lab/internal/chain/contracts"
	"github.com/gabapcia/web3lab/internal/pkg/logger"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// Execute implements Service.
func (s *service) Execute(ctx context.Context, req Request, signer chain.Signer) (chain.Outcome, error) {
	ctx, span := s.tracer.Start(ctx, "swap.Execute")
	defer span.End()

	outcome, err := s.execute(ctx, req, signer)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return outcome, err
	}

	span.SetAttributes(attribute.String("tx.hash", outcome.TxHash.Hex()))
	return outcome, nil
}

func (s *service) execute(ctx context.Context, req Request, signer chain.Signer) (chain.Outcome, error) {
	args, err := req.parse()
	if err != nil {
		return chain.Outcome{}, err
	}

	if signer == nil {
		return chain.Outcome{}, chain.ErrNoSigner
	}

	deadline := req.Deadline
	if deadline.IsZero() {
		deadline = s.cfg.clock.Now().Add(s.cfg.deadline)
	}

	ctx = logger.WithFields(ctx,
		"router.address", args.router.Hex(),
		"swap.amount_in", args.amountIn.String(),
		"swap.amount_out_min", args.amountOutMin.String(),
		"wallet.address", signer.Address().Hex(),
	)

	router := contracts.NewRouter(args.router, s.backend)
	tx, err := router.Transact(
		signer.TransactOpts(ctx),
		contracts.MethodSwapExactTokensForTokens,
		args.amountIn,
		args.amountOutMin,
		args.path,
		signer.Address(),
		big.NewInt(deadline.Unix()),
	)
	if err != nil {
		logger.Warn(ctx, "swap not submitted", "error", err)
		return chain.Outcome{}, chain.Classify(err, chain.ErrTransactionFailed)
	}

	logger.Info(ctx, "swap submitted", "tx.hash", tx.Hash().Hex())

	outcome, err := chain.Confirm(ctx, s.backend, tx)
	if err != nil {
		logger.Warn(ctx, "swap failed", "tx.hash", tx.Hash().Hex(), "error", err)
		return outcome, err
	}

	logger.Info(ctx, "swap confirmed", "tx.hash", tx.Hash().Hex(), "block.number", outcome.BlockNumber)
	return outcome, nil
}
