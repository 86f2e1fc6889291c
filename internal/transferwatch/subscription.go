package transferwatch

import (
	"context"
	"fmt"
	"math/big"
	"sync"

	"github.com/gabapcia/web3lab/internal/chain/contracts"
	"github.com/gabapcia/web3lab/internal/pkg/logger"
	"github.com/gabapcia/web3lab/internal/pkg/x/chflow"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/event"
)

// TransferEvent is one decoded Transfer log.
type TransferEvent struct {
	Contract    common.Address
	From        common.Address
	To          common.Address
	Value       *big.Int
	BlockNumber uint64
	TxHash      common.Hash
	LogIndex    uint
}

// Subscription is a live Transfer event stream.
type Subscription struct {
	contract common.Address

	events chan TransferEvent
	errc   chan error

	cancel     context.CancelFunc
	cancelOnce sync.Once
	done       chan struct{}
}

// Contract is the token whose events are streamed.
func (s *Subscription) Contract() common.Address {
	return s.contract
}

// Events delivers the decoded events. It is closed when the subscription
// ends.
func (s *Subscription) Events() <-chan TransferEvent {
	return s.events
}

// Err delivers at most one error, the reason the node ended the
// subscription. It is closed when the subscription ends.
func (s *Subscription) Err() <-chan error {
	return s.errc
}

// Done is closed once the subscription has stopped.
func (s *Subscription) Done() <-chan struct{} {
	return s.done
}

// Cancel stops the subscription and waits for delivery to stop. It is safe
// to call more than once and from any goroutine.
func (s *Subscription) Cancel() {
	s.cancelOnce.Do(s.cancel)
	<-s.done
}

func newSubscription(contract common.Address, cancel context.CancelFunc) *Subscription {
	return &Subscription{
		contract: contract,
		events:   make(chan TransferEvent),
		errc:     make(chan error, 1),
		cancel:   cancel,
		done:     make(chan struct{}),
	}
}

func decode(token *bind.BoundContract, log types.Log) (TransferEvent, error) {
	var body contracts.TransferLog
	if err := token.UnpackLog(&body, contracts.EventTransfer, log); err != nil {
		return TransferEvent{}, err
	}

	return TransferEvent{
		Contract:    log.Address,
		From:        body.From,
		To:          body.To,
		Value:       body.Value,
		BlockNumber: log.BlockNumber,
		TxHash:      log.TxHash,
		LogIndex:    log.Index,
	}, nil
}

// run forwards logs until ctx ends or the node subscription fails. It is
// the only sender on s.events, so delivery is never concurrent.
func (s *Subscription) run(ctx context.Context, token *bind.BoundContract, logs <-chan types.Log, sub event.Subscription) {
	defer close(s.done)
	defer close(s.events)
	defer close(s.errc)
	defer sub.Unsubscribe()

	for {
		select {
		case <-ctx.Done():
			logger.Debug(ctx, "transfer subscription cancelled")
			return

		case err, ok := <-sub.Err():
			if ok && err != nil {
				logger.Warn(ctx, "transfer subscription ended by node", "error", err)
				s.errc <- fmt.Errorf("%w: %w", ErrSubscriptionFailed, err)
			}
			return

		case log := <-logs:
			if log.Removed {
				logger.Debug(ctx, "skipping removed transfer log", "tx.hash", log.TxHash.Hex())
				continue
			}

			ev, err := decode(token, log)
			if err != nil {
				logger.Warn(ctx, "skipping undecodable transfer log", "tx.hash", log.TxHash.Hex(), "error", err)
				continue
			}

			if !chflow.Send(ctx, s.events, ev) {
				return
			}
		}
	}
}
