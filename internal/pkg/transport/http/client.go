// Package http builds the retryablehttp clients used by the JSON-RPC
// transports (external signer and the ledger endpoint when it is reached
// over plain HTTP).
//
// Clients never retry: a wallet prompt or a transaction broadcast must not be
// replayed behind the caller's back. retryablehttp is kept for its leveled
// request logging and its error reporting.
package http

import (
	"context"
	"time"

	"github.com/gabapcia/web3lab/internal/pkg/logger"

	"github.com/hashicorp/go-retryablehttp"
)

// DefaultTimeout bounds a single request when WithTimeout is not given.
const DefaultTimeout = 30 * time.Second

type config struct {
	timeout time.Duration
}

// Option defines a functional option for configuring the HTTP client.
type Option func(*config)

// leveledLogger forwards retryablehttp's request logs to the process logger.
type leveledLogger struct{}

var _ retryablehttp.LeveledLogger = leveledLogger{}

func (leveledLogger) Error(msg string, keysAndValues ...any) {
	logger.Error(context.Background(), msg, keysAndValues...)
}

func (leveledLogger) Info(msg string, keysAndValues ...any) {
	logger.Debug(context.Background(), msg, keysAndValues...)
}

func (leveledLogger) Debug(msg string, keysAndValues ...any) {
	logger.Debug(context.Background(), msg, keysAndValues...)
}

func (leveledLogger) Warn(msg string, keysAndValues ...any) {
	logger.Warn(context.Background(), msg, keysAndValues...)
}

// NewClient creates a retryablehttp.Client with retries disabled.
//
// Parameters:
//   - opts: functional options; without WithTimeout a request is bounded by
//     DefaultTimeout.
//
// Returns:
//   - A client whose StandardClient can be handed to libraries expecting a
//     *http.Client.
func NewClient(opts ...Option) *retryablehttp.Client {
	cfg := config{timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(&cfg)
	}

	client := retryablehttp.NewClient()
	client.Logger = leveledLogger{}
	client.HTTPClient.Timeout = cfg.timeout
	client.RetryMax = 0
	return client
}

// WithTimeout sets the maximum duration allowed for a single HTTP request.
// A zero duration disables the timeout, which suits endpoints that wait on
// a human (wallet approval).
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}
