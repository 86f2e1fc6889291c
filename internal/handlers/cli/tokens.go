package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/gabapcia/web3lab/internal/chain"
	"github.com/gabapcia/web3lab/internal/tokens"

	"github.com/urfave/cli/v3"
)

func decimalsFlag(value int) cli.Flag {
	return &cli.IntFlag{
		Name:  "decimals",
		Usage: "Token decimals used to convert the amount",
		Value: value,
	}
}

func decimals(c *cli.Command) (uint8, error) {
	v := c.Int("decimals")
	if v < 0 || v > 255 {
		return 0, fmt.Errorf("--decimals must be between 0 and 255, got %d", v)
	}
	return uint8(v), nil
}

func outcomeRows(outcome chain.Outcome) [][]string {
	return [][]string{
		{"交易哈希", outcome.TxHash.Hex()},
		{"区块", strconv.FormatUint(outcome.BlockNumber, 10)},
		{"Gas", strconv.FormatUint(outcome.GasUsed, 10)},
	}
}

// transferCommand sends ERC-20 tokens with the connected wallet.
//
//	web3lab transfer --token 0x... --to 0x... --amount 0.1
func transferCommand(src *sessionSource, out *ui) *cli.Command {
	return &cli.Command{
		Name:  "transfer",
		Usage: "Transfers ERC-20 tokens and waits for one confirmation.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "token",
				Usage:    "Token contract address",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "to",
				Usage:    "Recipient address",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "amount",
				Usage: "Amount in token units (e.g. 0.1)",
				Value: "0.1",
			},
			decimalsFlag(18),
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			dec, err := decimals(c)
			if err != nil {
				return err
			}

			sess, err := src.get(ctx)
			if err != nil {
				return err
			}

			outcome, err := sess.Transfer(ctx, tokens.TransferRequest{
				Contract: c.String("token"),
				To:       c.String("to"),
				Amount:   c.String("amount"),
				Decimals: dec,
			})
			if err != nil {
				return err
			}

			return out.table(outcomeRows(outcome))
		},
	}
}

// balanceCommand reads a token balance.
//
//	web3lab balance --token 0x... [--owner 0x...]
func balanceCommand(src *sessionSource, out *ui) *cli.Command {
	return &cli.Command{
		Name:  "balance",
		Usage: "Reads an ERC-20 balance. Without --owner the connected account is used.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "token",
				Usage:    "Token contract address",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "owner",
				Usage: "Account to read (default: connected account)",
			},
			decimalsFlag(18),
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			dec, err := decimals(c)
			if err != nil {
				return err
			}

			sess, err := src.get(ctx)
			if err != nil {
				return err
			}

			owner := c.String("owner")
			if owner == "" {
				if _, err := sess.Connect(ctx); err != nil {
					return err
				}
			}

			balance, err := sess.Balance(ctx, c.String("token"), owner, dec)
			if err != nil {
				return err
			}

			return out.table([][]string{
				{"账户", balance.Owner.Hex()},
				{"余额", balance.Formatted},
				{"原始值", balance.Raw.String()},
			})
		},
	}
}
