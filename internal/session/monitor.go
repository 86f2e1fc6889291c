package session

import (
	"context"
	"strings"

	"github.com/gabapcia/web3lab/internal/pkg/logger"
	"github.com/gabapcia/web3lab/internal/pkg/x/chflow"
	"github.com/gabapcia/web3lab/internal/transferwatch"
	"github.com/gabapcia/web3lab/internal/units"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

func (s *service) ToggleMonitor(ctx context.Context, contract string) (MonitorState, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return Idle, s.notifyError(ErrClosed)
	}

	// a toggle in flight owns the monitor until it finishes
	if s.monitorStarting || s.monitorStopping {
		s.mu.Unlock()
		return Idle, s.notifyError(ErrBusy)
	}

	if s.monitor != nil {
		sub, done := s.monitor, s.monitorDone
		s.monitor, s.monitorDone = nil, nil
		s.monitorStopping = true
		s.mu.Unlock()

		sub.Cancel()
		<-done
		s.log.Reset()

		s.mu.Lock()
		s.monitorStopping = false
		s.mu.Unlock()

		logger.Info(ctx, "transfer monitor stopped", "token.address", sub.Contract().Hex())
		return Idle, nil
	}

	if strings.TrimSpace(contract) == "" {
		s.mu.Unlock()
		return Idle, s.notifyError(ErrNoMonitorAddress)
	}
	s.monitorStarting = true
	s.mu.Unlock()

	// The monitor outlives the request that started it.
	sub, err := s.watcher.Subscribe(context.WithoutCancel(ctx), strings.TrimSpace(contract))

	s.mu.Lock()
	s.monitorStarting = false
	if err != nil {
		s.mu.Unlock()
		return Idle, s.notifyError(err)
	}
	if s.closed {
		s.mu.Unlock()
		sub.Cancel()
		return Idle, s.notifyError(ErrClosed)
	}

	done := make(chan struct{})
	s.monitor, s.monitorDone = sub, done
	s.mu.Unlock()

	go s.follow(context.WithoutCancel(ctx), sub, done)

	s.notifier.show(KindInfo, "开始监听 Transfer 事件")
	return Monitoring, nil
}

// follow moves events from sub into the log until the subscription ends.
func (s *service) follow(ctx context.Context, sub *transferwatch.Subscription, done chan struct{}) {
	defer close(done)

	for ev := range sub.Events() {
		s.record(ctx, ev)
	}

	err, ok := chflow.Receive(ctx, sub.Err())
	if !ok || err == nil {
		return
	}

	s.mu.Lock()
	if s.monitor == sub {
		s.monitor, s.monitorDone = nil, nil
	}
	s.mu.Unlock()

	logger.Warn(ctx, "transfer monitor stopped by subscription error", "error", err)
	s.notifyError(err)
}

func (s *service) record(ctx context.Context, ev transferwatch.TransferEvent) {
	entry := EventLogEntry{
		Contract:    ev.Contract,
		From:        ev.From,
		To:          ev.To,
		Value:       ev.Value,
		Formatted:   units.Format(ev.Value, s.displayDecimals),
		BlockNumber: ev.BlockNumber,
		TxHash:      ev.TxHash,
		ReceivedAt:  s.clock.Now(),
	}
	s.log.Add(entry)

	s.receivedEvents.Add(ctx, 1, metric.WithAttributes(attribute.String("token.address", ev.Contract.Hex())))

	if s.sink != nil {
		if err := s.sink.Publish(ctx, entry); err != nil {
			logger.Warn(ctx, "failed to publish transfer event", "tx.hash", ev.TxHash.Hex(), "error", err)
		}
	}

	if s.onEvent != nil {
		s.onEvent(entry)
	}
}
