package main

import (
	"bufio"
	"context"
	"os"

	"github.com/gabapcia/web3lab/internal/config"
	"github.com/gabapcia/web3lab/internal/handlers/cli"
	"github.com/gabapcia/web3lab/internal/infra/broker/redis"
	"github.com/gabapcia/web3lab/internal/infra/ethereum"
	"github.com/gabapcia/web3lab/internal/infra/wallet/keystore"
	"github.com/gabapcia/web3lab/internal/infra/wallet/rpcsigner"
	"github.com/gabapcia/web3lab/internal/pkg/logger"
	"github.com/gabapcia/web3lab/internal/pkg/telemetry"
	transporthttp "github.com/gabapcia/web3lab/internal/pkg/transport/http"
	"github.com/gabapcia/web3lab/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/web3lab/internal/session"
	"github.com/gabapcia/web3lab/internal/swap"
	"github.com/gabapcia/web3lab/internal/tokens"
	"github.com/gabapcia/web3lab/internal/transferwatch"
	"github.com/gabapcia/web3lab/internal/walletconn"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pterm/pterm"
)

func newWallet(cfg config.SessionConfig, conn *ethereum.Client, in *bufio.Reader) walletconn.Wallet {
	switch cfg.WalletBackend {
	case config.WalletBackendKeystore:
		prompter, err := keystore.NewTerminalPrompter(in, os.Stdout)
		if err != nil {
			// without a terminal the keystore cannot ask for approval
			return nil
		}

		var opts []keystore.Option
		if cfg.KeystoreAccount != "" {
			opts = append(opts, keystore.WithAccount(common.HexToAddress(cfg.KeystoreAccount)))
		}
		return keystore.New(cfg.KeystoreDir, conn.ChainID(), prompter, opts...)
	case config.WalletBackendRPC:
		httpClient := transporthttp.NewClient(transporthttp.WithTimeout(cfg.SignerTimeout))
		return rpcsigner.New(jsonrpc.NewClient(httpClient, cfg.SignerURL), conn.ChainID())
	default:
		return nil
	}
}

// sessionFactory loads the node and wallet settings on first use, so
// offline commands run without them.
func sessionFactory(in *bufio.Reader) cli.SessionFactory {
	return func(ctx context.Context, opts ...session.Option) (session.Service, func(), error) {
		cfg, err := config.LoadSession()
		if err != nil {
			return nil, nil, err
		}

		conn, err := ethereum.Dial(ctx, cfg.RPCURL, transporthttp.WithTimeout(cfg.RPCTimeout))
		if err != nil {
			return nil, nil, err
		}

		if !ethereum.SupportsSubscriptions(cfg.RPCURL) {
			logger.Warn(ctx, "rpc endpoint cannot push logs, transfer monitoring needs a ws or ipc endpoint", "url", cfg.RPCURL)
		}

		release := []func(){conn.Close}
		cleanup := func() {
			for i := len(release) - 1; i >= 0; i-- {
				release[i]()
			}
		}

		opts = append(opts,
			session.WithNotificationTTL(cfg.NotificationTTL),
			session.WithEventLogSize(cfg.EventLogSize),
			session.WithDisplayDecimals(cfg.DisplayDecimals),
		)

		if cfg.RedisEnabled() {
			broker, err := redis.NewClient(ctx, cfg.RedisAddr, cfg.RedisUsername, cfg.RedisPassword, cfg.RedisDB, cfg.RedisChannel)
			if err != nil {
				cleanup()
				return nil, nil, err
			}

			release = append(release, func() { _ = broker.Close() })
			opts = append(opts, session.WithEventSink(broker))
		}

		sess, err := session.New(
			walletconn.New(newWallet(cfg, conn, in)),
			tokens.New(conn),
			swap.New(conn, swap.WithDeadline(cfg.SwapDeadline)),
			transferwatch.New(conn),
			opts...,
		)
		if err != nil {
			cleanup()
			return nil, nil, err
		}

		return sess, cleanup, nil
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if cfg.TelemetryEnabled {
		shutdown, err := telemetry.Init(ctx, cfg.ServiceName)
		if err != nil {
			return err
		}
		defer func() { _ = shutdown(context.WithoutCancel(ctx)) }()
	}

	in := bufio.NewReader(os.Stdin)
	return cli.Run(ctx, in, sessionFactory(in))
}

func main() {
	if err := run(context.Background()); err != nil {
		pterm.Error.WithWriter(os.Stderr).Println(err.Error())
		os.Exit(1)
	}
}
