// Package tokens submits ERC-20 transfers and reads balances.
package tokens

import (
	"context"

	"github.com/gabapcia/web3lab/internal/chain"
	"github.com/gabapcia/web3lab/internal/units"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// ErrInvalidAmount is units.ErrInvalidAmount, re-exported for callers of
// this package.
var ErrInvalidAmount = units.ErrInvalidAmount

// Service defines the token operations.
type Service interface {
	// Transfer sends one transfer(to, amount) transaction signed by signer
	// and waits for one confirmation. Inputs are validated before any
	// network call. There is no automatic retry.
	//
	// Parameters:
	//   - ctx: controls cancellation of the submission and the receipt wait.
	//   - req: token contract, recipient, decimal amount and token decimals.
	//   - signer: the sending account.
	//
	// Returns:
	//   - The mined outcome.
	//   - ErrInvalidAmount or chain.ErrInvalidAddress for bad input,
	//     chain.ErrNoSigner without a signer, or a chain error.
	Transfer(ctx context.Context, req TransferRequest, signer chain.Signer) (chain.Outcome, error)

	// BalanceOf reads the token balance of owner.
	BalanceOf(ctx context.Context, contract, owner string, decimals uint8) (Balance, error)
}

type service struct {
	backend chain.Backend
	tracer  trace.Tracer
}

var _ Service = (*service)(nil)

// New creates a token service over the given node backend.
func New(backend chain.Backend) *service {
	return &service{
		backend: backend,
		tracer:  otel.Tracer("github.com/gabapcia/web3lab/internal/tokens"),
	}
}
