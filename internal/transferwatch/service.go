// Package transferwatch follows the Transfer events of an ERC-20 contract.
//
// A subscription is a stream: events arrive in the order the node delivers
// them, one at a time, until the subscription is cancelled or the node
// ends it. There is no reconnect; a new stream needs a new subscription.
package transferwatch

import (
	"context"
	"errors"

	"github.com/gabapcia/web3lab/internal/chain"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// ErrSubscriptionFailed is returned when the node refuses or ends a log
// subscription (plain HTTP endpoints cannot push logs).
var ErrSubscriptionFailed = errors.New("transfer subscription failed")

// Service opens Transfer event subscriptions.
type Service interface {
	// Subscribe starts streaming the Transfer events of contract. The
	// subscription lives until Cancel is called, ctx ends, or the node
	// reports an error.
	Subscribe(ctx context.Context, contract string) (*Subscription, error)

	// SubscribeFunc calls onEvent for every Transfer event of contract, one
	// call at a time, from a single goroutine.
	//
	// Parameters:
	//   - ctx: scope of the subscription; ending it stops delivery.
	//   - contract: hex address of the ERC-20 token to follow.
	//   - onEvent: handler invoked for each decoded event.
	//
	// Returns:
	//   - cancel: stops the subscription. Once it returns no new onEvent call
	//     starts. When no call is running it also waits for the delivery
	//     goroutine to exit; a running call is not waited for, so onEvent
	//     may call cancel itself. Safe to call any number of times.
	//   - err: chain.ErrInvalidAddress, chain.ErrNetwork or
	//     ErrSubscriptionFailed when the subscription cannot be opened.
	SubscribeFunc(ctx context.Context, contract string, onEvent func(TransferEvent)) (cancel func(), err error)
}

type service struct {
	backend chain.Backend
	tracer  trace.Tracer
}

var _ Service = (*service)(nil)

// New creates a subscription service over the given node backend. The
// backend must support log subscriptions (WebSocket or IPC).
func New(backend chain.Backend) *service {
	return &service{
		backend: backend,
		tracer:  otel.Tracer("github.com/gabapcia/web3lab/internal/transferwatch"),
	}
}
