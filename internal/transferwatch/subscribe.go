package transferwatch

import (
	"context"
	"sync"

	"github.com/gabapcia/web3lab/internal/chain"
	"github.com/gabapcia/web3lab/internal/chain/contracts"
	"github.com/gabapcia/web3lab/internal/pkg/logger"
	"github.com/gabapcia/web3lab/internal/pkg/x/chflow"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// Subscribe implements Service.
func (s *service) Subscribe(ctx context.Context, contract string) (*Subscription, error) {
	spanCtx, span := s.tracer.Start(ctx, "transferwatch.Subscribe")
	defer span.End()

	address, err := chain.ParseAddress("contract", contract)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.String("token.address", address.Hex()))

	subCtx, cancel := context.WithCancel(logger.WithFields(ctx, "token.address", address.Hex()))

	token := contracts.NewToken(address, s.backend)
	logs, sub, err := token.WatchLogs(&bind.WatchOpts{Context: subCtx}, contracts.EventTransfer)
	if err != nil {
		cancel()
		err = chain.Classify(err, ErrSubscriptionFailed)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.Warn(spanCtx, "transfer subscription refused", "token.address", address.Hex(), "error", err)
		return nil, err
	}

	subscription := newSubscription(address, cancel)
	go subscription.run(subCtx, token, logs, sub)

	logger.Info(subCtx, "transfer subscription started")
	return subscription, nil
}

// dispatcher runs a handler for every event of one subscription. A call is
// dispatched under mu, so once stop has marked the dispatcher stopped no new
// call starts.
type dispatcher struct {
	mu      sync.Mutex
	stopped bool
	calling bool

	exited chan struct{}
}

// next reports whether another call may start and marks it as running.
func (d *dispatcher) next() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return false
	}
	d.calling = true
	return true
}

func (d *dispatcher) finish() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.calling = false
}

// stop marks the dispatcher stopped and reports whether a call was running.
// That call may be the one asking to stop, so it is not waited for.
func (d *dispatcher) stop() (calling bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	return d.calling
}

// SubscribeFunc implements Service.
func (s *service) SubscribeFunc(ctx context.Context, contract string, onEvent func(TransferEvent)) (func(), error) {
	sub, err := s.Subscribe(ctx, contract)
	if err != nil {
		return nil, err
	}

	d := &dispatcher{exited: make(chan struct{})}
	go func() {
		defer close(d.exited)

		for ev := range sub.Events() {
			if !d.next() {
				return
			}
			onEvent(ev)
			d.finish()
		}

		if err, ok := chflow.Receive(ctx, sub.Err()); ok && err != nil {
			logger.Warn(ctx, "transfer handler stopped", "token.address", sub.Contract().Hex(), "error", err)
		}
	}()

	return func() {
		calling := d.stop()
		sub.Cancel()
		if !calling {
			<-d.exited
		}
	}, nil
}
