// Package chaintest provides an in-memory chain.Backend and a key-backed
// chain.Signer for tests of contract operations.
package chaintest

import (
	"context"
	"crypto/ecdsa"
	"math/big"
	"net"
	"sync"
	"syscall"

	"github.com/gabapcia/web3lab/internal/chain"
	"github.com/gabapcia/web3lab/internal/chain/contracts"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/event"
)

// ChainID used by NewSigner.
var ChainID = big.NewInt(31337)

// Backend records submitted transactions and serves canned responses.
type Backend struct {
	mu sync.Mutex

	// CallFunc answers eth_call. Nil returns an empty result.
	CallFunc func(call ethereum.CallMsg) ([]byte, error)

	// SendErr, when set, is returned by SendTransaction.
	SendErr error

	// ReceiptStatus is the status of every receipt (default successful).
	ReceiptStatus *uint64

	// ReceiptErr, when set, is returned by TransactionReceipt.
	ReceiptErr error

	// SubscribeErr, when set, is returned by SubscribeFilterLogs.
	SubscribeErr error

	sent  []*types.Transaction
	calls int

	subs []*subscription
}

var _ chain.Backend = (*Backend)(nil)

type subscription struct {
	query ethereum.FilterQuery
	logs  chan<- types.Log
	errc  chan error
	sub   event.Subscription
}

// Sent returns the transactions submitted so far.
func (b *Backend) Sent() []*types.Transaction {
	b.mu.Lock()
	defer b.mu.Unlock()

	return append([]*types.Transaction(nil), b.sent...)
}

// Calls returns how many read calls reached the backend.
func (b *Backend) Calls() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.calls
}

// Subscriptions returns how many log subscriptions were opened.
func (b *Backend) Subscriptions() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.subs)
}

// LastQuery returns the filter of the latest log subscription.
func (b *Backend) LastQuery() ethereum.FilterQuery {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.subs) == 0 {
		return ethereum.FilterQuery{}
	}
	return b.subs[len(b.subs)-1].query
}

// Emit delivers log to the latest subscription. It blocks until the log is
// taken or the subscription ends, and reports whether it was taken.
func (b *Backend) Emit(log types.Log) bool {
	b.mu.Lock()
	if len(b.subs) == 0 {
		b.mu.Unlock()
		return false
	}
	s := b.subs[len(b.subs)-1]
	b.mu.Unlock()

	select {
	case s.logs <- log:
		return true
	case <-s.sub.Err():
		return false
	}
}

// Fail ends the latest subscription with err.
func (b *Backend) Fail(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.subs) == 0 {
		return
	}
	select {
	case b.subs[len(b.subs)-1].errc <- err:
	default:
	}
}

func (b *Backend) CodeAt(ctx context.Context, contract common.Address, blockNumber *big.Int) ([]byte, error) {
	return []byte{0x60, 0x80}, nil
}

func (b *Backend) CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	b.mu.Lock()
	b.calls++
	fn := b.CallFunc
	b.mu.Unlock()

	if fn == nil {
		return nil, nil
	}
	return fn(call)
}

func (b *Backend) HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error) {
	return &types.Header{Number: big.NewInt(1), BaseFee: big.NewInt(1_000_000_000)}, nil
}

func (b *Backend) PendingCodeAt(ctx context.Context, account common.Address) ([]byte, error) {
	return []byte{0x60, 0x80}, nil
}

func (b *Backend) PendingNonceAt(ctx context.Context, account common.Address) (uint64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return uint64(len(b.sent)), nil
}

func (b *Backend) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	return big.NewInt(2_000_000_000), nil
}

func (b *Backend) SuggestGasTipCap(ctx context.Context) (*big.Int, error) {
	return big.NewInt(1_000_000_000), nil
}

func (b *Backend) EstimateGas(ctx context.Context, call ethereum.CallMsg) (uint64, error) {
	return 60_000, nil
}

func (b *Backend) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.SendErr != nil {
		return b.SendErr
	}
	b.sent = append(b.sent, tx)
	return nil
}

func (b *Backend) FilterLogs(ctx context.Context, query ethereum.FilterQuery) ([]types.Log, error) {
	return nil, nil
}

func (b *Backend) SubscribeFilterLogs(ctx context.Context, query ethereum.FilterQuery, ch chan<- types.Log) (ethereum.Subscription, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.SubscribeErr != nil {
		return nil, b.SubscribeErr
	}

	s := &subscription{query: query, logs: ch, errc: make(chan error, 1)}
	s.sub = event.NewSubscription(func(quit <-chan struct{}) error {
		select {
		case <-quit:
			return nil
		case err := <-s.errc:
			return err
		}
	})
	b.subs = append(b.subs, s)

	return s.sub, nil
}

func (b *Backend) TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.ReceiptErr != nil {
		return nil, b.ReceiptErr
	}

	for i, tx := range b.sent {
		if tx.Hash() != txHash {
			continue
		}

		status := types.ReceiptStatusSuccessful
		if b.ReceiptStatus != nil {
			status = *b.ReceiptStatus
		}
		return &types.Receipt{
			Status:      status,
			TxHash:      txHash,
			GasUsed:     51_000,
			BlockNumber: big.NewInt(int64(100 + i)),
		}, nil
	}

	return nil, ethereum.NotFound
}

// Signer is a chain.Signer backed by an in-memory private key.
type Signer struct {
	key  *ecdsa.PrivateKey
	addr common.Address
}

var _ chain.Signer = (*Signer)(nil)

// NewSigner generates a fresh key for ChainID.
func NewSigner() *Signer {
	key, err := crypto.GenerateKey()
	if err != nil {
		panic(err)
	}
	return &Signer{key: key, addr: crypto.PubkeyToAddress(key.PublicKey)}
}

func (s *Signer) Address() common.Address {
	return s.addr
}

func (s *Signer) TransactOpts(ctx context.Context) *bind.TransactOpts {
	opts, err := bind.NewKeyedTransactorWithChainID(s.key, ChainID)
	if err != nil {
		panic(err)
	}
	opts.Context = ctx
	return opts
}

// ErrUnreachable mimics a refused connection to the node.
var ErrUnreachable error = &net.OpError{Op: "dial", Net: "tcp", Err: syscall.ECONNREFUSED}

// TransferLog builds the log a token emits for a Transfer of value.
func TransferLog(token, from, to common.Address, value *big.Int, block uint64) types.Log {
	event := contracts.ERC20ABI.Events[contracts.EventTransfer]

	data, err := event.Inputs.NonIndexed().Pack(value)
	if err != nil {
		panic(err)
	}

	return types.Log{
		Address: token,
		Topics: []common.Hash{
			event.ID,
			common.BytesToHash(from.Bytes()),
			common.BytesToHash(to.Bytes()),
		},
		Data:        data,
		BlockNumber: block,
		TxHash:      crypto.Keccak256Hash(token.Bytes(), data, new(big.Int).SetUint64(block).Bytes()),
	}
}
