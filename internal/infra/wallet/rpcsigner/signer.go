package rpcsigner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"

	"github.com/gabapcia/web3lab/internal/pkg/transport/jsonrpc"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
)

var (
	// ErrSignerMismatch is returned when the signed transaction does not
	// come from the requested account.
	ErrSignerMismatch = errors.New("signed transaction has a different sender")

	// ErrNotAuthorized is returned when asked to sign for another account.
	ErrNotAuthorized = errors.New("not authorized to sign for this account")
)

// signTxArgs is the eth_signTransaction parameter object.
type signTxArgs struct {
	From                 common.Address  `json:"from"`
	To                   *common.Address `json:"to,omitempty"`
	Gas                  hexutil.Uint64  `json:"gas"`
	GasPrice             *hexutil.Big    `json:"gasPrice,omitempty"`
	MaxFeePerGas         *hexutil.Big    `json:"maxFeePerGas,omitempty"`
	MaxPriorityFeePerGas *hexutil.Big    `json:"maxPriorityFeePerGas,omitempty"`
	Value                *hexutil.Big    `json:"value"`
	Nonce                hexutil.Uint64  `json:"nonce"`
	Data                 hexutil.Bytes   `json:"data"`
	ChainID              *hexutil.Big    `json:"chainId"`
}

func newSignTxArgs(from common.Address, tx *types.Transaction, chainID *big.Int) signTxArgs {
	args := signTxArgs{
		From:    from,
		To:      tx.To(),
		Gas:     hexutil.Uint64(tx.Gas()),
		Value:   (*hexutil.Big)(tx.Value()),
		Nonce:   hexutil.Uint64(tx.Nonce()),
		Data:    tx.Data(),
		ChainID: (*hexutil.Big)(chainID),
	}

	if tx.Type() == types.DynamicFeeTxType {
		args.MaxFeePerGas = (*hexutil.Big)(tx.GasFeeCap())
		args.MaxPriorityFeePerGas = (*hexutil.Big)(tx.GasTipCap())
	} else {
		args.GasPrice = (*hexutil.Big)(tx.GasPrice())
	}

	return args
}

// decodeSigned accepts both the Clef result ({"raw": ..., "tx": ...}) and a
// bare raw transaction string.
func decodeSigned(data json.RawMessage) (*types.Transaction, error) {
	var raw hexutil.Bytes

	var result struct {
		Raw hexutil.Bytes `json:"raw"`
	}
	if err := json.Unmarshal(data, &result); err == nil && len(result.Raw) > 0 {
		raw = result.Raw
	} else if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid signed transaction: %w", err)
	}

	tx := new(types.Transaction)
	if err := tx.UnmarshalBinary(raw); err != nil {
		return nil, fmt.Errorf("invalid signed transaction: %w", err)
	}
	return tx, nil
}

// signer asks the remote signer to sign every transaction.
type signer struct {
	conn    jsonrpc.Client
	address common.Address
	chainID *big.Int
}

func (s *signer) Address() common.Address {
	return s.address
}

func (s *signer) sign(ctx context.Context, from common.Address, tx *types.Transaction) (*types.Transaction, error) {
	if from != s.address {
		return nil, ErrNotAuthorized
	}

	data, err := s.conn.Fetch(ctx, "eth_signTransaction", newSignTxArgs(from, tx, s.chainID))
	if err != nil {
		return nil, mapError(err)
	}

	signed, err := decodeSigned(data)
	if err != nil {
		return nil, err
	}

	sender, err := types.Sender(types.LatestSignerForChainID(s.chainID), signed)
	if err != nil {
		return nil, fmt.Errorf("invalid signed transaction: %w", err)
	}
	if sender != from {
		return nil, fmt.Errorf("%w: want %s, got %s", ErrSignerMismatch, from.Hex(), sender.Hex())
	}

	return signed, nil
}

func (s *signer) TransactOpts(ctx context.Context) *bind.TransactOpts {
	return &bind.TransactOpts{
		From:    s.address,
		Context: ctx,
		Signer: func(from common.Address, tx *types.Transaction) (*types.Transaction, error) {
			return s.sign(ctx, from, tx)
		},
	}
}
