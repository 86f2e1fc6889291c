// Package rpcsigner is a wallet backend over an external signer reachable
// by JSON-RPC (Clef, or a bridge to a browser wallet). Account access uses
// eth_requestAccounts and every transaction is signed remotely with
// eth_signTransaction, so the key never enters this process.
package rpcsigner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"

	"github.com/gabapcia/web3lab/internal/chain"
	"github.com/gabapcia/web3lab/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/web3lab/internal/walletconn"

	"github.com/ethereum/go-ethereum/common"
)

const (
	// codeUserRejected is the EIP-1193 "User Rejected Request" code.
	codeUserRejected = 4001

	// codeMethodNotFound is the JSON-RPC "Method not found" code.
	codeMethodNotFound = -32601
)

type wallet struct {
	conn    jsonrpc.Client
	chainID *big.Int
}

var _ walletconn.Wallet = (*wallet)(nil)

// New returns a wallet over conn. A nil conn means no signer is configured.
func New(conn jsonrpc.Client, chainID *big.Int) *wallet {
	return &wallet{conn: conn, chainID: chainID}
}

// mapError turns provider rejections into walletconn.ErrUserRejected.
func mapError(err error) error {
	if code, ok := jsonrpc.ErrorCode(err); ok && code == codeUserRejected {
		return fmt.Errorf("%w: %w", walletconn.ErrUserRejected, err)
	}
	return err
}

func (w *wallet) accounts(ctx context.Context) ([]common.Address, error) {
	data, err := w.conn.Fetch(ctx, "eth_requestAccounts")
	if code, ok := jsonrpc.ErrorCode(err); ok && code == codeMethodNotFound {
		data, err = w.conn.Fetch(ctx, "eth_accounts")
	}
	if err != nil {
		return nil, mapError(err)
	}

	var accounts []common.Address
	if err := json.Unmarshal(data, &accounts); err != nil {
		return nil, fmt.Errorf("invalid account list: %w", err)
	}
	return accounts, nil
}

func (w *wallet) RequestAccount(ctx context.Context) (common.Address, error) {
	if w.conn == nil {
		return common.Address{}, fmt.Errorf("%w: no signer endpoint configured", walletconn.ErrEnvironmentUnsupported)
	}

	accounts, err := w.accounts(ctx)
	if err != nil {
		return common.Address{}, err
	}
	if len(accounts) == 0 {
		return common.Address{}, fmt.Errorf("%w: signer approved no account", walletconn.ErrUserRejected)
	}

	return accounts[0], nil
}

func (w *wallet) Signer(ctx context.Context, account common.Address) (chain.Signer, error) {
	if w.conn == nil {
		return nil, walletconn.ErrEnvironmentUnsupported
	}
	if w.chainID == nil {
		return nil, errors.New("chain id is required to sign transactions")
	}

	return &signer{conn: w.conn, address: account, chainID: w.chainID}, nil
}
