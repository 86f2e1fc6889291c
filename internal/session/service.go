// Package session coordinates one interactive user session: the connected
// wallet, the generated key material, the coarse loading flag shared by all
// submissions, the Transfer monitor and the notification banner.
//
// Every failure is reported twice: returned to the caller and shown as an
// error notification. Successes show the success notification only.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gabapcia/web3lab/internal/chain"
	"github.com/gabapcia/web3lab/internal/keygen"
	"github.com/gabapcia/web3lab/internal/swap"
	"github.com/gabapcia/web3lab/internal/tokens"
	"github.com/gabapcia/web3lab/internal/transferwatch"
	"github.com/gabapcia/web3lab/internal/walletconn"

	"github.com/benbjohnson/clock"
	"github.com/ethereum/go-ethereum/common"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

var (
	// ErrBusy is returned when an operation starts while another one holds
	// the loading flag.
	ErrBusy = errors.New("another operation is in progress")

	// ErrNoMonitorAddress is returned when monitoring starts without a
	// contract address.
	ErrNoMonitorAddress = errors.New("请输入要监听的合约地址")

	// ErrConnectSuperseded is returned by a connect attempt that finished
	// after a newer attempt or a disconnect. Its signer is discarded.
	ErrConnectSuperseded = errors.New("connect attempt superseded")

	// ErrClosed is returned by every operation after Close.
	ErrClosed = errors.New("session closed")
)

// State is the wallet connection state.
type State int

const (
	// Disconnected means no signer is held. It is the initial state.
	Disconnected State = iota
	// Connecting means a wallet request is in flight.
	Connecting
	// Connected means the wallet granted an account and its signer is active.
	Connected
)

// String returns the lowercase name of the state.
func (s State) String() string {
	switch s {
	case Connecting:
		return "connecting"
	case Connected:
		return "connected"
	default:
		return "disconnected"
	}
}

// MonitorState tells whether Transfer events are being followed.
type MonitorState int

const (
	// Idle means no subscription is open.
	Idle MonitorState = iota
	// Monitoring means Transfer events of one contract feed the event log.
	Monitoring
)

// String returns the lowercase name of the state.
func (m MonitorState) String() string {
	if m == Monitoring {
		return "monitoring"
	}
	return "idle"
}

// EventSink receives every observed transfer, after it entered the log.
type EventSink interface {
	// Publish forwards entry. A failure is logged by the session and never
	// reaches the user.
	Publish(ctx context.Context, entry EventLogEntry) error
}

// Snapshot is a consistent read of the session state.
type Snapshot struct {
	State           State
	Account         common.Address
	Loading         bool
	Monitor         MonitorState
	MonitorContract common.Address
	Estimated       string
	Keys            keygen.KeyMaterial
	Notification    *Notification
	Logs            []EventLogEntry
}

// Service is the session coordinator.
//
// Submissions (Connect, Transfer, Estimate, Swap, Balance) share one loading
// flag: while one runs, the others fail fast with ErrBusy.
type Service interface {
	// Connect asks the wallet for an account. The returned address is the
	// active account.
	//
	// Parameters:
	//   - ctx: controls cancellation of the wallet request.
	//
	// Returns:
	//   - The active account.
	//   - ErrBusy while another submission runs, ErrConnectSuperseded when a
	//     newer attempt or a disconnect overtook this one, or the wallet error
	//     (walletconn.ErrEnvironmentUnsupported, walletconn.ErrUserRejected).
	Connect(ctx context.Context) (common.Address, error)

	// Disconnect drops the active signer. An in-flight connect attempt is
	// superseded.
	Disconnect()

	// RegenerateKeys replaces the generated key material.
	RegenerateKeys() (keygen.KeyMaterial, error)

	// Transfer sends tokens with the active signer, connecting first when
	// no wallet is connected.
	//
	// Parameters:
	//   - ctx: controls cancellation of the connect, the submission and the
	//     wait for the receipt.
	//   - req: token contract, recipient, decimal amount and token decimals.
	//
	// Returns:
	//   - The mined outcome (hash, block, gas used).
	//   - An error from the connect step, the request validation or the chain.
	Transfer(ctx context.Context, req tokens.TransferRequest) (chain.Outcome, error)

	// Estimate quotes a swap and remembers the estimated output. A failed
	// quote leaves the previous estimate in place.
	//
	// Parameters:
	//   - ctx: controls cancellation of the router call.
	//   - req: router, path and input amount. A signer is not required.
	//
	// Returns:
	//   - The quote with one amount per hop.
	//   - swap.ErrInvalidPath, swap.ErrInvalidAmount or a chain error.
	Estimate(ctx context.Context, req swap.Request) (swap.Quote, error)

	// Swap executes a swap with the active signer, connecting first when no
	// wallet is connected.
	//
	// Parameters:
	//   - ctx: controls cancellation of the connect, the submission and the
	//     wait for the receipt.
	//   - req: the swap; a zero Deadline is replaced by now plus the swap
	//     service deadline.
	//
	// Returns:
	//   - The mined outcome.
	//   - An error from the connect step, the request validation or the chain.
	Swap(ctx context.Context, req swap.Request) (chain.Outcome, error)

	// Balance reads a token balance. An empty owner means the active
	// account.
	Balance(ctx context.Context, contract, owner string, decimals uint8) (tokens.Balance, error)

	// ToggleMonitor starts following the Transfer events of contract, or
	// stops the running monitor and clears the log.
	//
	// Parameters:
	//   - ctx: bounds the subscribe call. The subscription itself outlives it
	//     and runs until the next toggle or Close.
	//   - contract: the token to follow. Ignored when stopping.
	//
	// Returns:
	//   - The monitor state after the toggle.
	//   - ErrNoMonitorAddress when starting without a contract, ErrBusy while
	//     another toggle is still starting or stopping the monitor, or the
	//     subscribe error.
	ToggleMonitor(ctx context.Context, contract string) (MonitorState, error)

	// Snapshot returns the current state.
	Snapshot() Snapshot

	// Close stops the monitor and the notification timers. The session
	// cannot be used afterwards.
	Close()
}

type service struct {
	mu sync.Mutex

	state      State
	connectSeq uint64
	signer     chain.Signer
	keys       keygen.KeyMaterial
	loading    bool
	estimated  string
	closed     bool

	monitor         *transferwatch.Subscription
	monitorDone     chan struct{}
	monitorStarting bool
	monitorStopping bool

	wallet   walletconn.Provider
	tokens   tokens.Service
	swap     swap.Service
	watcher  transferwatch.Service
	generate func() (keygen.KeyMaterial, error)

	log             *EventLog
	notifier        *notifier
	clock           clock.Clock
	sink            EventSink
	onEvent         func(EventLogEntry)
	displayDecimals uint8

	receivedEvents metric.Int64Counter
}

var _ Service = (*service)(nil)

type config struct {
	clock           clock.Clock
	notificationTTL time.Duration
	eventLogSize    int
	displayDecimals uint8
	sink            EventSink
	onNotification  func(Notification)
	onEvent         func(EventLogEntry)
	generate        func() (keygen.KeyMaterial, error)
}

// Option defines a functional option for configuring the session.
type Option func(*config)

// WithClock sets the clock driving the notification timers and the
// timestamps of log entries. Tests pass a clock.Mock.
func WithClock(c clock.Clock) Option {
	return func(cfg *config) {
		cfg.clock = c
	}
}

// WithNotificationTTL sets how long a notification stays visible. The
// default is DefaultNotificationTTL.
func WithNotificationTTL(ttl time.Duration) Option {
	return func(cfg *config) {
		cfg.notificationTTL = ttl
	}
}

// WithEventLogSize caps the event log. A non-positive size keeps
// DefaultEventLogSize.
func WithEventLogSize(size int) Option {
	return func(cfg *config) {
		cfg.eventLogSize = size
	}
}

// WithDisplayDecimals sets the decimals used to format monitored values.
func WithDisplayDecimals(decimals uint8) Option {
	return func(cfg *config) {
		cfg.displayDecimals = decimals
	}
}

// WithEventSink forwards observed transfers to sink.
func WithEventSink(sink EventSink) Option {
	return func(cfg *config) {
		cfg.sink = sink
	}
}

// WithNotificationHandler calls f every time a notification is shown.
func WithNotificationHandler(f func(Notification)) Option {
	return func(cfg *config) {
		cfg.onNotification = f
	}
}

// WithEventHandler calls f for every transfer added to the log. f runs on
// the monitor goroutine, so a slow handler delays the next event and the
// monitor stop.
func WithEventHandler(f func(EventLogEntry)) Option {
	return func(cfg *config) {
		cfg.onEvent = f
	}
}

// WithKeyGenerator replaces the key material source.
func WithKeyGenerator(f func() (keygen.KeyMaterial, error)) Option {
	return func(cfg *config) {
		cfg.generate = f
	}
}

// New creates a session and generates its first key material.
//
// Parameters:
//   - wallet: the wallet provider. A provider built on a nil Wallet makes
//     every connect fail with walletconn.ErrEnvironmentUnsupported.
//   - tokenService: reads balances and sends ERC20 transfers.
//   - swapService: quotes and executes router swaps.
//   - watcher: opens Transfer subscriptions for the monitor.
//   - opts: functional options overriding the clock, the notification TTL,
//     the log size and the callbacks.
//
// Returns:
//   - A disconnected, idle session holding fresh key material.
//   - An error if the key generator or the event counter fails.
func New(wallet walletconn.Provider, tokenService tokens.Service, swapService swap.Service, watcher transferwatch.Service, opts ...Option) (*service, error) {
	cfg := config{
		clock:           clock.New(),
		notificationTTL: DefaultNotificationTTL,
		eventLogSize:    DefaultEventLogSize,
		displayDecimals: 18,
		generate:        keygen.Generate,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	receivedEvents, err := otel.Meter("github.com/gabapcia/web3lab/internal/session").Int64Counter(
		"web3lab.transfer_events.received",
		metric.WithDescription("Transfer events added to the session log"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create event counter: %w", err)
	}

	keys, err := cfg.generate()
	if err != nil {
		return nil, err
	}

	return &service{
		state:           Disconnected,
		keys:            keys,
		wallet:          wallet,
		tokens:          tokenService,
		swap:            swapService,
		watcher:         watcher,
		generate:        cfg.generate,
		log:             NewEventLog(cfg.eventLogSize),
		notifier:        newNotifier(cfg.clock, cfg.notificationTTL, cfg.onNotification),
		clock:           cfg.clock,
		sink:            cfg.sink,
		onEvent:         cfg.onEvent,
		displayDecimals: cfg.displayDecimals,
		receivedEvents:  receivedEvents,
	}, nil
}

func (s *service) notifyError(err error) error {
	s.notifier.show(KindError, err.Error())
	return err
}

// begin takes the loading flag.
func (s *service) begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	if s.loading {
		return ErrBusy
	}
	s.loading = true
	return nil
}

func (s *service) end() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loading = false
}

// Snapshot implements Service.
func (s *service) Snapshot() Snapshot {
	s.mu.Lock()
	snap := Snapshot{
		State:     s.state,
		Loading:   s.loading,
		Estimated: s.estimated,
		Keys:      s.keys,
	}
	if s.signer != nil {
		snap.Account = s.signer.Address()
	}
	if s.monitor != nil {
		snap.Monitor = Monitoring
		snap.MonitorContract = s.monitor.Contract()
	}
	s.mu.Unlock()

	if note, ok := s.notifier.visible(); ok {
		snap.Notification = &note
	}
	snap.Logs = s.log.Entries()
	return snap
}

// Close implements Service. It is safe to call more than once.
func (s *service) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.connectSeq++
	s.state = Disconnected
	s.signer = nil
	sub, done := s.monitor, s.monitorDone
	s.monitor, s.monitorDone = nil, nil
	s.mu.Unlock()

	if sub != nil {
		sub.Cancel()
		<-done
	}
	s.notifier.stop()
}
