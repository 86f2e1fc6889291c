// Package chain holds the capabilities shared by every ledger operation:
// the signer installed by a wallet connection, the node backend, the outcome
// of a mined transaction and the error kinds operations report.
package chain

import (
	"context"
	"fmt"

	"github.com/gabapcia/web3lab/internal/pkg/validator"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// Signer authorizes transactions for one account.
type Signer interface {
	// Address is the account the signer acts for.
	Address() common.Address

	// TransactOpts returns fresh options bound to ctx. Gas and nonce are left
	// for the backend to fill.
	TransactOpts(ctx context.Context) *bind.TransactOpts
}

// Backend is the node capability used by contract operations: calls,
// transaction submission, log subscriptions and receipt lookups.
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
}

// Outcome is the result of a transaction after one confirmation.
type Outcome struct {
	TxHash      common.Hash
	BlockNumber uint64
	GasUsed     uint64
	Status      uint64
}

func outcomeFromReceipt(r *types.Receipt) Outcome {
	o := Outcome{
		TxHash:  r.TxHash,
		GasUsed: r.GasUsed,
		Status:  r.Status,
	}
	if r.BlockNumber != nil {
		o.BlockNumber = r.BlockNumber.Uint64()
	}
	return o
}

// Confirm waits until tx is mined and returns its outcome. A reverted
// transaction is reported as ErrTransactionFailed along with the outcome.
func Confirm(ctx context.Context, backend bind.DeployBackend, tx *types.Transaction) (Outcome, error) {
	receipt, err := bind.WaitMined(ctx, backend, tx)
	if err != nil {
		return Outcome{TxHash: tx.Hash()}, Classify(err, ErrTransactionFailed)
	}

	outcome := outcomeFromReceipt(receipt)
	if receipt.Status != types.ReceiptStatusSuccessful {
		return outcome, fmt.Errorf("%w: transaction %s reverted", ErrTransactionFailed, tx.Hash().Hex())
	}

	return outcome, nil
}

// ParseAddress validates a hex account address. name identifies the value
// in the error message.
func ParseAddress(name, value string) (common.Address, error) {
	if err := validator.ValidateVar(name, value, "required,eth_addr"); err != nil {
		return common.Address{}, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	return common.HexToAddress(value), nil
}
