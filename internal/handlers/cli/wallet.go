package cli

import (
	"context"

	"github.com/gabapcia/web3lab/internal/keygen"

	"github.com/urfave/cli/v3"
)

const demoWarning = "仅用于学习演示，请勿在生产环境使用这些密钥。"

func keyRows(keys keygen.KeyMaterial) [][]string {
	mnemonic := keys.Mnemonic
	if mnemonic == "" {
		mnemonic = "-"
	}

	return [][]string{
		{"地址", keys.Address},
		{"私钥", keys.PrivateKey},
		{"助记词", mnemonic},
	}
}

func showKeys(out *ui, keys keygen.KeyMaterial) error {
	out.warning(demoWarning)
	return out.table(keyRows(keys))
}

// walletCommand groups the offline key material commands.
//
//	web3lab wallet new
//	web3lab wallet derive --mnemonic "test test ... junk"
func walletCommand(out *ui) *cli.Command {
	return &cli.Command{
		Name:  "wallet",
		Usage: "Generates throwaway key material. Never use these keys for real funds.",
		Commands: []*cli.Command{
			{
				Name:  "new",
				Usage: "Generates a random 12-word mnemonic and its first Ethereum account (m/44'/60'/0'/0/0).",
				Action: func(ctx context.Context, c *cli.Command) error {
					keys, err := keygen.Generate()
					if err != nil {
						return err
					}
					return showKeys(out, keys)
				},
			},
			{
				Name:  "derive",
				Usage: "Derives the first Ethereum account of an existing mnemonic.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "mnemonic",
						Usage:    "BIP-39 mnemonic phrase",
						Required: true,
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					keys, err := keygen.FromMnemonic(c.String("mnemonic"))
					if err != nil {
						return err
					}
					return showKeys(out, keys)
				},
			},
		},
	}
}

// connectCommand asks the configured wallet for an account.
//
//	web3lab connect
func connectCommand(src *sessionSource, out *ui) *cli.Command {
	return &cli.Command{
		Name:  "connect",
		Usage: "Connects the configured wallet and prints the approved account.",
		Action: func(ctx context.Context, c *cli.Command) error {
			sess, err := src.get(ctx)
			if err != nil {
				return err
			}

			account, err := sess.Connect(ctx)
			if err != nil {
				return err
			}

			out.printf("已连接: %s", account.Hex())
			return nil
		},
	}
}
