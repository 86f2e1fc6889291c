package chain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/url"

	"github.com/ethereum/go-ethereum/rpc"
)

var (
	// ErrTransactionFailed is returned when a transaction could not be
	// submitted, reverted, or was dropped before inclusion.
	ErrTransactionFailed = errors.New("transaction failed")

	// ErrCallFailed is returned when a read-only contract call is rejected
	// by the node, e.g. no contract at the address or a reverted call.
	ErrCallFailed = errors.New("contract call failed")

	// ErrNetwork is returned when the ledger endpoint could not be reached.
	ErrNetwork = errors.New("network error")

	// ErrNoSigner is returned when a transaction is requested without a
	// connected wallet.
	ErrNoSigner = errors.New("no wallet connected")

	// ErrInvalidAddress is returned for a malformed account or contract address.
	ErrInvalidAddress = errors.New("invalid address")
)

// Classify wraps err as ErrNetwork when it comes from the transport and as
// fallback otherwise. Errors already carrying one of those kinds are
// returned unchanged.
func Classify(err, fallback error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, ErrNetwork) || errors.Is(err, fallback) {
		return err
	}

	if isTransportError(err) {
		return fmt.Errorf("%w: %w", ErrNetwork, err)
	}

	return fmt.Errorf("%w: %w", fallback, err)
}

func isTransportError(err error) bool {
	if errors.Is(err, rpc.ErrClientQuit) ||
		errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var (
		netErr  net.Error
		urlErr  *url.Error
		httpErr rpc.HTTPError
	)
	return errors.As(err, &netErr) || errors.As(err, &urlErr) || errors.As(err, &httpErr)
}
