// Package walletconn establishes the signing identity of a session. The
// wallet itself (a local keystore behind a terminal prompt, or an external
// signer) is a Wallet backend. This package checks what the backend returns
// and maps its failures onto ErrEnvironmentUnsupported, ErrUserRejected and
// chain.ErrNetwork.
package walletconn

import (
	"context"
	"errors"

	"github.com/gabapcia/web3lab/internal/chain"

	"github.com/ethereum/go-ethereum/common"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var (
	// ErrEnvironmentUnsupported is returned when no wallet backend is
	// available. It is reported before any prompt is shown.
	ErrEnvironmentUnsupported = errors.New("no wallet available in this environment")

	// ErrUserRejected is returned when the user declines account access or
	// a signature.
	ErrUserRejected = errors.New("user rejected the request")
)

// Wallet is a backend able to ask the user for account access and to sign
// for an approved account.
type Wallet interface {
	// RequestAccount prompts for account access and returns the approved
	// account.
	RequestAccount(ctx context.Context) (common.Address, error)

	// Signer returns a signer for an account returned by RequestAccount.
	Signer(ctx context.Context, account common.Address) (chain.Signer, error)
}

// Provider connects a wallet.
type Provider interface {
	// Connect asks for account access and returns a signer for the approved
	// account. Every call prompts again and returns a fresh signer.
	Connect(ctx context.Context) (chain.Signer, error)
}

type service struct {
	wallet Wallet
	tracer trace.Tracer
}

var _ Provider = (*service)(nil)

// New returns a Provider over wallet. A nil wallet means the environment
// has no wallet: every Connect fails with ErrEnvironmentUnsupported.
func New(wallet Wallet) *service {
	return &service{
		wallet: wallet,
		tracer: otel.Tracer("github.com/gabapcia/web3lab/internal/walletconn"),
	}
}
