package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gabapcia/web3lab/internal/swap"

	"github.com/urfave/cli/v3"
)

func swapFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "router",
			Usage:    "Uniswap V2 compatible router address",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "path",
			Usage:    "Comma separated token addresses, input token first",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "amount-in",
			Usage: "Input amount in token units",
			Value: "1",
		},
		decimalsFlag(int(swap.DefaultDecimals)),
	}
}

func swapRequest(c *cli.Command) (swap.Request, error) {
	dec, err := decimals(c)
	if err != nil {
		return swap.Request{}, err
	}

	return swap.Request{
		Router:   c.String("router"),
		Path:     swap.ParsePath(c.String("path")),
		AmountIn: c.String("amount-in"),
		Decimals: swap.Decimals(dec),
	}, nil
}

// swapCommand groups the router commands.
//
//	web3lab swap quote --router 0x... --path 0xA,0xB --amount-in 1
//	web3lab swap execute --router 0x... --path 0xA,0xB --amount-in 1 --min-out 1.9
func swapCommand(src *sessionSource, out *ui) *cli.Command {
	return &cli.Command{
		Name:  "swap",
		Usage: "Quotes and executes exact-input swaps on a Uniswap V2 style router.",
		Commands: []*cli.Command{
			{
				Name:  "quote",
				Usage: "Prints the expected output of every hop.",
				Flags: swapFlags(),
				Action: func(ctx context.Context, c *cli.Command) error {
					req, err := swapRequest(c)
					if err != nil {
						return err
					}

					sess, err := src.get(ctx)
					if err != nil {
						return err
					}

					quote, err := sess.Estimate(ctx, req)
					if err != nil {
						return err
					}

					rows := make([][]string, 0, len(quote.Formatted)+1)
					rows = append(rows, []string{"#", "代币", "数量"})
					for i, amount := range quote.Formatted {
						token := "-"
						if i < len(req.Path) {
							token = req.Path[i]
						}
						rows = append(rows, []string{strconv.Itoa(i), token, amount})
					}
					if err := out.table(rows); err != nil {
						return err
					}

					out.printf("预估获得: %s", quote.Estimated())
					return nil
				},
			},
			{
				Name:  "execute",
				Usage: "Submits swapExactTokensForTokens with the connected wallet.",
				Flags: append(swapFlags(),
					&cli.StringFlag{
						Name:  "min-out",
						Usage: "Minimum accepted output in token units (default 0)",
					},
					&cli.DurationFlag{
						Name:  "deadline",
						Usage: "How long the router may wait before rejecting the swap (default 20m)",
					},
				),
				Action: func(ctx context.Context, c *cli.Command) error {
					req, err := swapRequest(c)
					if err != nil {
						return err
					}

					req.AmountOutMin = strings.TrimSpace(c.String("min-out"))
					if d := c.Duration("deadline"); d < 0 {
						return fmt.Errorf("--deadline must not be negative, got %s", d)
					} else if d > 0 {
						req.Deadline = time.Now().Add(d)
					}

					sess, err := src.get(ctx)
					if err != nil {
						return err
					}

					outcome, err := sess.Swap(ctx, req)
					if err != nil {
						return err
					}

					return out.table(outcomeRows(outcome))
				},
			},
		},
	}
}
