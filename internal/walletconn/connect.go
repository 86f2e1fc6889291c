package walletconn

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/web3lab/internal/chain"
	"github.com/gabapcia/web3lab/internal/pkg/logger"

	"github.com/ethereum/go-ethereum/common"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// classify keeps the wallet error kinds and sorts everything else into
// network and generic failures.
func classify(err error) error {
	if errors.Is(err, ErrEnvironmentUnsupported) || errors.Is(err, ErrUserRejected) {
		return err
	}

	return chain.Classify(err, errConnectFailed)
}

var errConnectFailed = errors.New("wallet connection failed")

// Connect implements Provider.
func (s *service) Connect(ctx context.Context) (chain.Signer, error) {
	ctx, span := s.tracer.Start(ctx, "walletconn.Connect")
	defer span.End()

	signer, err := s.connect(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.Warn(ctx, "wallet connection failed", "error", err)
		return nil, err
	}

	span.SetAttributes(attribute.String("wallet.address", signer.Address().Hex()))
	logger.Info(ctx, "wallet connected", "wallet.address", signer.Address().Hex())

	return signer, nil
}

func (s *service) connect(ctx context.Context) (chain.Signer, error) {
	if s.wallet == nil {
		return nil, ErrEnvironmentUnsupported
	}

	account, err := s.wallet.RequestAccount(ctx)
	if err != nil {
		return nil, classify(err)
	}

	if account == (common.Address{}) {
		return nil, fmt.Errorf("%w: no account was approved", ErrUserRejected)
	}

	signer, err := s.wallet.Signer(ctx, account)
	if err != nil {
		return nil, classify(err)
	}

	if signer == nil || signer.Address() != account {
		return nil, fmt.Errorf("%w: wallet returned a signer for a different account", errConnectFailed)
	}

	return signer, nil
}
