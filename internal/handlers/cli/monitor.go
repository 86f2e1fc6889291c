package cli

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/gabapcia/web3lab/internal/session"

	"github.com/urfave/cli/v3"
)

// monitorCommand follows the Transfer events of a token until interrupted.
//
//	web3lab monitor --token 0x...
func monitorCommand(src *sessionSource, out *ui) *cli.Command {
	return &cli.Command{
		Name:  "monitor",
		Usage: "Prints every Transfer event of a token until Ctrl+C.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "token",
				Usage:    "Token contract address",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			sess, err := src.get(ctx)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if _, err := sess.ToggleMonitor(ctx, c.String("token")); err != nil {
				return err
			}

			<-ctx.Done()

			if sess.Snapshot().Monitor == session.Monitoring {
				if _, err := sess.ToggleMonitor(context.WithoutCancel(ctx), ""); err != nil {
					return err
				}
			}

			out.printf("已停止监听")
			return nil
		},
	}
}
