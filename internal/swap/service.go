// Package swap quotes and executes token swaps through a Uniswap-V2 style
// router (getAmountsOut / swapExactTokensForTokens).
//
// A quote and a later execute are not atomic: the price can move in
// between. The slippage floor (AmountOutMin) is enforced by the router, so
// a swap that would pay out less reverts on-chain.
package swap

import (
	"context"
	"errors"
	"time"

	"github.com/gabapcia/web3lab/internal/chain"
	"github.com/gabapcia/web3lab/internal/units"

	"github.com/benbjohnson/clock"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var (
	// ErrInvalidPath is returned when a swap path has fewer than two tokens.
	ErrInvalidPath = errors.New("path must contain at least two token addresses")

	// ErrInvalidAmount is units.ErrInvalidAmount, re-exported for callers of
	// this package.
	ErrInvalidAmount = units.ErrInvalidAmount
)

// Service defines the swap operations.
type Service interface {
	// Quote reads the router's output estimate for every hop of the path.
	// It requires no signer.
	//
	// Parameters:
	//   - ctx: controls cancellation of the router call.
	//   - req: router, path of at least two tokens and input amount. A short
	//     path or a bad amount is rejected before any network call.
	//
	// Returns:
	//   - The raw and formatted amount for every hop, input first.
	//   - ErrInvalidPath, ErrInvalidAmount, chain.ErrInvalidAddress or a
	//     chain error.
	Quote(ctx context.Context, req Request) (Quote, error)

	// Execute submits swapExactTokensForTokens on behalf of signer, sending
	// the output to the signer's own address, and waits for one
	// confirmation.
	//
	// Parameters:
	//   - ctx: controls cancellation of the submission and the receipt wait.
	//   - req: the swap. AmountOutMin defaults to zero and a zero Deadline to
	//     now plus the configured deadline.
	//   - signer: the account paying for and receiving the swap.
	//
	// Returns:
	//   - The mined outcome.
	//   - A validation error, or chain.ErrTransactionFailed when the router
	//     rejected the swap (slippage floor, expired deadline).
	Execute(ctx context.Context, req Request, signer chain.Signer) (chain.Outcome, error)
}

type config struct {
	deadline time.Duration
	clock    clock.Clock
}

// Option configures the swap service.
type Option func(*config)

// WithDeadline sets how long a swap stays valid when the request carries
// no explicit deadline. Default: 20 minutes.
func WithDeadline(d time.Duration) Option {
	return func(c *config) {
		c.deadline = d
	}
}

// WithClock replaces the wall clock used to compute deadlines. Tests pass a
// clock.Mock to get a predictable deadline.
func WithClock(c clock.Clock) Option {
	return func(cfg *config) {
		cfg.clock = c
	}
}

type service struct {
	backend chain.Backend
	cfg     config
	tracer  trace.Tracer
}

var _ Service = (*service)(nil)

// New creates a swap service over the given node backend.
//
// Parameters:
//   - backend: the node connection used for quotes and submissions.
//   - opts: functional options for the default deadline and the clock.
//
// Returns:
//   - A ready to use swap service.
func New(backend chain.Backend, opts ...Option) *service {
	cfg := config{
		deadline: 20 * time.Minute,
		clock:    clock.New(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		backend: backend,
		cfg:     cfg,
		tracer:  otel.Tracer("github.com/gabapcia/web3lab/internal/swap"),
	}
}
