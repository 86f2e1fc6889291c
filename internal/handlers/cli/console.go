package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gabapcia/web3lab/internal/session"

	"github.com/urfave/cli/v3"
)

var errUnterminatedQuote = errors.New("unterminated quote")

// consoleCommand opens an interactive session where wallet, monitor and
// notification state survive between commands.
//
//	web3lab console
func consoleCommand(src *sessionSource, out *ui, in *bufio.Reader) *cli.Command {
	return &cli.Command{
		Name:  "console",
		Usage: "Starts an interactive session. Type help for the command list and exit to leave.",
		Action: func(ctx context.Context, c *cli.Command) error {
			sess, err := src.get(ctx)
			if err != nil {
				return err
			}

			out.section("web3lab console")
			out.warning(demoWarning)
			if err := showKeys(out, sess.Snapshot().Keys); err != nil {
				return err
			}

			return runConsole(ctx, src, out, in)
		},
	}
}

func runConsole(ctx context.Context, src *sessionSource, out *ui, in *bufio.Reader) error {
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		out.prompt("web3lab> ")

		line, err := in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		eof := err != nil

		line = strings.TrimSpace(line)
		switch line {
		case "":
			if eof {
				return nil
			}
			continue
		case "exit", "quit":
			return nil
		}

		args, err := splitArgs(line)
		if err != nil {
			out.failure(err)
			continue
		}

		before := out.notifications.Load()
		if err := newConsoleApp(src, out).Run(ctx, append([]string{"web3lab"}, args...)); err != nil {
			// the session already reported it
			if out.notifications.Load() == before {
				out.failure(err)
			}
		}

		if eof {
			return nil
		}
	}
}

func newConsoleApp(src *sessionSource, out *ui) *cli.Command {
	return &cli.Command{
		Name:        "web3lab",
		Usage:       "interactive console",
		Writer:      out.out,
		ErrWriter:   out.out,
		HideVersion: true,
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Present() {
				out.warning("未知命令: " + c.Args().First())
				return nil
			}
			return cli.ShowAppHelp(c)
		},
		Commands: []*cli.Command{
			walletCommand(out),
			connectCommand(src, out),
			transferCommand(src, out),
			balanceCommand(src, out),
			swapCommand(src, out),
			toggleMonitorCommand(src, out),
			statusCommand(src, out),
			logsCommand(src, out),
			keysCommand(src, out),
			regenCommand(src, out),
			disconnectCommand(src, out),
		},
	}
}

func toggleMonitorCommand(src *sessionSource, out *ui) *cli.Command {
	return &cli.Command{
		Name:      "monitor",
		Usage:     "Starts following the Transfer events of a token, or stops the running monitor.",
		ArgsUsage: "[token]",
		Action: func(ctx context.Context, c *cli.Command) error {
			sess, err := src.get(ctx)
			if err != nil {
				return err
			}

			state, err := sess.ToggleMonitor(ctx, c.Args().First())
			if err != nil {
				return err
			}

			if state == session.Idle {
				out.printf("已停止监听")
			}
			return nil
		},
	}
}

func statusCommand(src *sessionSource, out *ui) *cli.Command {
	return &cli.Command{
		Name:  "status",
		Usage: "Shows the wallet, monitor and notification state.",
		Action: func(ctx context.Context, c *cli.Command) error {
			sess, err := src.get(ctx)
			if err != nil {
				return err
			}

			snap := sess.Snapshot()

			account, contract, notification := "-", "-", "-"
			if snap.State == session.Connected {
				account = snap.Account.Hex()
			}
			if snap.Monitor == session.Monitoring {
				contract = snap.MonitorContract.Hex()
			}
			if snap.Notification != nil {
				notification = fmt.Sprintf("[%s] %s", snap.Notification.Kind, snap.Notification.Text)
			}

			estimated := snap.Estimated
			if estimated == "" {
				estimated = "-"
			}

			return out.table([][]string{
				{"钱包", snap.State.String()},
				{"账户", account},
				{"处理中", fmt.Sprint(snap.Loading)},
				{"监听", snap.Monitor.String()},
				{"监听合约", contract},
				{"事件数", fmt.Sprint(len(snap.Logs))},
				{"预估兑换", estimated},
				{"通知", notification},
			})
		},
	}
}

func logsCommand(src *sessionSource, out *ui) *cli.Command {
	return &cli.Command{
		Name:  "logs",
		Usage: "Prints the observed Transfer events, newest first.",
		Action: func(ctx context.Context, c *cli.Command) error {
			sess, err := src.get(ctx)
			if err != nil {
				return err
			}

			logs := sess.Snapshot().Logs
			if len(logs) == 0 {
				out.printf("暂无事件")
				return nil
			}

			for _, entry := range logs {
				out.printf("#%d %s", entry.BlockNumber, entry)
			}
			return nil
		},
	}
}

func keysCommand(src *sessionSource, out *ui) *cli.Command {
	return &cli.Command{
		Name:  "keys",
		Usage: "Shows the generated demo key material.",
		Action: func(ctx context.Context, c *cli.Command) error {
			sess, err := src.get(ctx)
			if err != nil {
				return err
			}
			return showKeys(out, sess.Snapshot().Keys)
		},
	}
}

func regenCommand(src *sessionSource, out *ui) *cli.Command {
	return &cli.Command{
		Name:  "regen",
		Usage: "Replaces the demo key material with a fresh mnemonic.",
		Action: func(ctx context.Context, c *cli.Command) error {
			sess, err := src.get(ctx)
			if err != nil {
				return err
			}

			keys, err := sess.RegenerateKeys()
			if err != nil {
				return err
			}
			return showKeys(out, keys)
		},
	}
}

func disconnectCommand(src *sessionSource, out *ui) *cli.Command {
	return &cli.Command{
		Name:  "disconnect",
		Usage: "Forgets the connected account.",
		Action: func(ctx context.Context, c *cli.Command) error {
			sess, err := src.get(ctx)
			if err != nil {
				return err
			}

			sess.Disconnect()
			out.printf("已断开钱包")
			return nil
		},
	}
}

// splitArgs splits a console line on whitespace. Single and double quotes
// group words and are removed.
func splitArgs(line string) ([]string, error) {
	var (
		args    []string
		current strings.Builder
		quote   rune
		inWord  bool
	)

	for _, r := range line {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
				continue
			}
			current.WriteRune(r)
		case r == '"' || r == '\'':
			quote = r
			inWord = true
		case r == ' ' || r == '\t':
			if inWord {
				args = append(args, current.String())
				current.Reset()
				inWord = false
			}
		default:
			current.WriteRune(r)
			inWord = true
		}
	}

	if quote != 0 {
		return nil, fmt.Errorf("%w: %c", errUnterminatedQuote, quote)
	}
	if inWord {
		args = append(args, current.String())
	}
	return args, nil
}
