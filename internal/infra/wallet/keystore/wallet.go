// Package keystore is a wallet backend over a go-ethereum keystore
// directory. Account access is approved at a terminal prompt and the
// account is unlocked with its passphrase before a signer is handed out.
package keystore

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/gabapcia/web3lab/internal/chain"
	"github.com/gabapcia/web3lab/internal/pkg/logger"
	"github.com/gabapcia/web3lab/internal/walletconn"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
)

const defaultPassphraseAttempts = 3

// Prompter asks the user questions. Implementations block until the user
// answers.
type Prompter interface {
	// Confirm asks a yes/no question and reports whether the user agreed.
	Confirm(ctx context.Context, question string) (bool, error)

	// Passphrase reads a secret answer without echoing it.
	Passphrase(ctx context.Context, prompt string) (string, error)
}

type wallet struct {
	ks       *keystore.KeyStore
	account  common.Address
	chainID  *big.Int
	prompter Prompter
	attempts int
}

var _ walletconn.Wallet = (*wallet)(nil)

// Option defines a functional option for configuring the keystore wallet.
type Option func(*wallet)

// WithAccount selects the keystore account to offer. By default the first
// account in the directory is used.
func WithAccount(account common.Address) Option {
	return func(w *wallet) {
		w.account = account
	}
}

// WithPassphraseAttempts sets how many wrong passphrases are accepted before
// the request counts as rejected.
func WithPassphraseAttempts(n int) Option {
	return func(w *wallet) {
		if n > 0 {
			w.attempts = n
		}
	}
}

// New opens the keystore in dir.
//
// Parameters:
//   - dir: the keystore directory. An empty dir yields a wallet without
//     accounts.
//   - chainID: the chain the unlocked signer signs for.
//   - prompter: asks for approval and the passphrase. A nil prompter means
//     there is no terminal to ask.
//   - opts: functional options for the account and the passphrase attempts.
//
// Returns:
//   - A walletconn.Wallet. Without accounts or a prompter every request
//     fails with walletconn.ErrEnvironmentUnsupported.
func New(dir string, chainID *big.Int, prompter Prompter, opts ...Option) *wallet {
	w := &wallet{
		chainID:  chainID,
		prompter: prompter,
		attempts: defaultPassphraseAttempts,
	}
	if dir != "" {
		w.ks = keystore.NewKeyStore(dir, keystore.StandardScryptN, keystore.StandardScryptP)
	}
	for _, opt := range opts {
		opt(w)
	}

	return w
}

func (w *wallet) find(address common.Address) (accounts.Account, error) {
	if w.ks == nil || len(w.ks.Accounts()) == 0 {
		return accounts.Account{}, fmt.Errorf("%w: keystore has no accounts", walletconn.ErrEnvironmentUnsupported)
	}

	if address == (common.Address{}) {
		return w.ks.Accounts()[0], nil
	}

	account, err := w.ks.Find(accounts.Account{Address: address})
	if err != nil {
		return accounts.Account{}, fmt.Errorf("%w: %w", walletconn.ErrEnvironmentUnsupported, err)
	}
	return account, nil
}

// RequestAccount implements walletconn.Wallet.
func (w *wallet) RequestAccount(ctx context.Context) (common.Address, error) {
	account, err := w.find(w.account)
	if err != nil {
		return common.Address{}, err
	}

	if w.prompter == nil {
		return common.Address{}, fmt.Errorf("%w: no terminal to approve the request", walletconn.ErrEnvironmentUnsupported)
	}

	ok, err := w.prompter.Confirm(ctx, fmt.Sprintf("Allow web3lab to use account %s?", account.Address.Hex()))
	if err != nil {
		return common.Address{}, err
	}
	if !ok {
		return common.Address{}, walletconn.ErrUserRejected
	}

	return account.Address, nil
}

func (w *wallet) Signer(ctx context.Context, address common.Address) (chain.Signer, error) {
	account, err := w.find(address)
	if err != nil {
		return nil, err
	}

	if err := w.unlock(ctx, account); err != nil {
		return nil, err
	}

	opts, err := bind.NewKeyStoreTransactorWithChainID(w.ks, account, w.chainID)
	if err != nil {
		return nil, err
	}

	return &signer{address: account.Address, opts: opts}, nil
}

func (w *wallet) unlock(ctx context.Context, account accounts.Account) error {
	if w.prompter == nil {
		return walletconn.ErrEnvironmentUnsupported
	}

	for attempt := 1; attempt <= w.attempts; attempt++ {
		passphrase, err := w.prompter.Passphrase(ctx, fmt.Sprintf("Passphrase for %s: ", account.Address.Hex()))
		if err != nil {
			return err
		}
		if passphrase == "" {
			return walletconn.ErrUserRejected
		}

		err = w.ks.Unlock(account, passphrase)
		if err == nil {
			return nil
		}
		if !errors.Is(err, keystore.ErrDecrypt) {
			return err
		}

		logger.Warn(ctx, "wrong keystore passphrase", "wallet.address", account.Address.Hex(), "attempt", attempt)
	}

	return fmt.Errorf("%w: too many wrong passphrases", walletconn.ErrUserRejected)
}

// signer signs with an unlocked keystore account.
type signer struct {
	address common.Address
	opts    *bind.TransactOpts
}

func (s *signer) Address() common.Address {
	return s.address
}

func (s *signer) TransactOpts(ctx context.Context) *bind.TransactOpts {
	opts := *s.opts
	opts.Context = ctx
	return &opts
}
