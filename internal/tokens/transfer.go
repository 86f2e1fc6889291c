package tokens

import (
	"context"
	"fmt"
	"math/big"

	"github.com/gabapcia/web3lab/internal/chain"
	"github.com/gabapcia/web3lab/internal/chain/contracts"
	"github.com/gabapcia/web3lab/internal/pkg/logger"
	"github.com/gabapcia/web3lab/internal/pkg/validator"
	"github.com/gabapcia/web3lab/internal/units"

	"github.com/ethereum/go-ethereum/common"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// TransferRequest describes one token transfer.
type TransferRequest struct {
	Contract string `validate:"required,eth_addr"`
	To       string `validate:"required,eth_addr"`
	Amount   string // decimal string, e.g. "0.1"
	Decimals uint8
}

type transfer struct {
	contract common.Address
	to       common.Address
	amount   *big.Int
}

func (r TransferRequest) parse() (transfer, error) {
	if err := validator.Validate(r); err != nil {
		return transfer{}, fmt.Errorf("%w: %w", chain.ErrInvalidAddress, err)
	}

	amount, err := units.Parse(r.Amount, r.Decimals)
	if err != nil {
		return transfer{}, err
	}

	return transfer{
		contract: common.HexToAddress(r.Contract),
		to:       common.HexToAddress(r.To),
		amount:   amount,
	}, nil
}

// Transfer implements Service.
func (s *service) Transfer(ctx context.Context, req TransferRequest, signer chain.Signer) (chain.Outcome, error) {
	ctx, span := s.tracer.Start(ctx, "tokens.Transfer")
	defer span.End()

	outcome, err := s.transfer(ctx, req, signer)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return outcome, err
	}

	span.SetAttributes(attribute.String("tx.hash", outcome.TxHash.Hex()))
	return outcome, nil
}

func (s *service) transfer(ctx context.Context, req TransferRequest, signer chain.Signer) (chain.Outcome, error) {
	t, err := req.parse()
	if err != nil {
		return chain.Outcome{}, err
	}

	if signer == nil {
		return chain.Outcome{}, chain.ErrNoSigner
	}

	ctx = logger.WithFields(ctx,
		"token.address", t.contract.Hex(),
		"transfer.to", t.to.Hex(),
		"transfer.amount", t.amount.String(),
		"wallet.address", signer.Address().Hex(),
	)

	token := contracts.NewToken(t.contract, s.backend)

	tx, err := token.Transact(signer.TransactOpts(ctx), contracts.MethodTransfer, t.to, t.amount)
	if err != nil {
		logger.Warn(ctx, "transfer not submitted", "error", err)
		return chain.Outcome{}, chain.Classify(err, chain.ErrTransactionFailed)
	}

	logger.Info(ctx, "transfer submitted", "tx.hash", tx.Hash().Hex())

	outcome, err := chain.Confirm(ctx, s.backend, tx)
	if err != nil {
		logger.Warn(ctx, "transfer failed", "tx.hash", tx.Hash().Hex(), "error", err)
		return outcome, err
	}

	logger.Info(ctx, "transfer confirmed", "tx.hash", tx.Hash().Hex(), "block.number", outcome.BlockNumber)
	return outcome, nil
}
