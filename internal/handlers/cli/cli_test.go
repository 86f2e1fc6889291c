package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"math/big"
	"strings"
	"testing"
	"time"

	"github.com/gabapcia/web3lab/internal/chain"
	"github.com/gabapcia/web3lab/internal/keygen"
	"github.com/gabapcia/web3lab/internal/session"
	sessiontest "github.com/gabapcia/web3lab/internal/session/mocks"
	"github.com/gabapcia/web3lab/internal/swap"
	"github.com/gabapcia/web3lab/internal/tokens"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

const (
	tokenAddress  = "0x5FbDB2315678afecb367f032d93F642f64180aa3"
	routerAddress = "0x7a250d5630B4cF539739dF2C5dAcb4c659F2488D"
	bobAddress    = "0x70997970C51812dc3A010C7d01b50e0d17dc79C8"
	testMnemonic  = "test test test test test test test test test test test junk"
)

var aliceAddress = common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")

// staticSource returns a source that always hands out sess and counts how
// many times the factory ran.
func staticSource(sess session.Service, builds *int) *sessionSource {
	return newSessionSource(func(ctx context.Context, opts ...session.Option) (session.Service, func(), error) {
		if builds != nil {
			*builds++
		}
		return sess, nil, nil
	})
}

func runCommand(t *testing.T, cmd *cli.Command, args ...string) error {
	t.Helper()

	app := &cli.Command{
		Commands: []*cli.Command{cmd},
	}
	return app.Run(t.Context(), append([]string{"test"}, args...))
}

func TestWalletCommand(t *testing.T) {
	t.Run("should create command with correct metadata", func(t *testing.T) {
		cmd := walletCommand(newUI(&bytes.Buffer{}))

		assert.Equal(t, "wallet", cmd.Name)
		require.Len(t, cmd.Commands, 2)
		assert.Equal(t, "new", cmd.Commands[0].Name)
		assert.Equal(t, "derive", cmd.Commands[1].Name)

		mnemonicFlag := cmd.Commands[1].Flags[0].(*cli.StringFlag)
		assert.Equal(t, "mnemonic", mnemonicFlag.Name)
		assert.True(t, mnemonicFlag.Required)
	})

	t.Run("should print fresh key material with the demo warning", func(t *testing.T) {
		var buf bytes.Buffer

		err := runCommand(t, walletCommand(newUI(&buf)), "wallet", "new")
		require.NoError(t, err)

		assert.Contains(t, buf.String(), demoWarning)
		assert.Contains(t, buf.String(), "0x")
		assert.Contains(t, buf.String(), "助记词")
	})

	t.Run("should derive the first account of a mnemonic", func(t *testing.T) {
		var buf bytes.Buffer

		err := runCommand(t, walletCommand(newUI(&buf)), "wallet", "derive", "--mnemonic", testMnemonic)
		require.NoError(t, err)

		assert.Contains(t, buf.String(), aliceAddress.Hex())
	})

	t.Run("should reject an invalid mnemonic", func(t *testing.T) {
		err := runCommand(t, walletCommand(newUI(&bytes.Buffer{})), "wallet", "derive", "--mnemonic", "not a mnemonic")
		assert.ErrorIs(t, err, keygen.ErrInvalidMnemonic)
	})
}

func TestConnectCommand(t *testing.T) {
	t.Run("should print the connected account", func(t *testing.T) {
		var buf bytes.Buffer
		mockService := sessiontest.NewService(t)
		mockService.EXPECT().Connect(mock.Anything).Return(aliceAddress, nil).Once()

		err := runCommand(t, connectCommand(staticSource(mockService, nil), newUI(&buf)), "connect")
		require.NoError(t, err)

		assert.Contains(t, buf.String(), aliceAddress.Hex())
	})

	t.Run("should return the wallet error", func(t *testing.T) {
		mockService := sessiontest.NewService(t)
		mockService.EXPECT().Connect(mock.Anything).Return(common.Address{}, errors.New("user rejected")).Once()

		err := runCommand(t, connectCommand(staticSource(mockService, nil), newUI(&bytes.Buffer{})), "connect")
		assert.EqualError(t, err, "user rejected")
	})
}

func TestTransferCommand(t *testing.T) {
	t.Run("should create command with correct metadata", func(t *testing.T) {
		cmd := transferCommand(staticSource(nil, nil), newUI(&bytes.Buffer{}))

		assert.Equal(t, "transfer", cmd.Name)
		require.Len(t, cmd.Flags, 4)

		amountFlag := cmd.Flags[2].(*cli.StringFlag)
		assert.Equal(t, "amount", amountFlag.Name)
		assert.Equal(t, "0.1", amountFlag.Value)

		decimalsFlag := cmd.Flags[3].(*cli.IntFlag)
		assert.Equal(t, 18, decimalsFlag.Value)
	})

	t.Run("should transfer with the default amount and print the outcome", func(t *testing.T) {
		var buf bytes.Buffer
		txHash := common.HexToHash("0x01")
		mockService := sessiontest.NewService(t)
		mockService.EXPECT().Transfer(mock.Anything, tokens.TransferRequest{
			Contract: tokenAddress,
			To:       bobAddress,
			Amount:   "0.1",
			Decimals: 18,
		}).Return(chain.Outcome{TxHash: txHash, BlockNumber: 7, GasUsed: 51_000}, nil).Once()

		err := runCommand(t, transferCommand(staticSource(mockService, nil), newUI(&buf)), "transfer", "--token", tokenAddress, "--to", bobAddress)
		require.NoError(t, err)

		assert.Contains(t, buf.String(), txHash.Hex())
		assert.Contains(t, buf.String(), "51000")
	})

	t.Run("should reject out of range decimals before building the session", func(t *testing.T) {
		builds := 0

		err := runCommand(t, transferCommand(staticSource(nil, &builds), newUI(&bytes.Buffer{})),
			"transfer", "--token", tokenAddress, "--to", bobAddress, "--decimals", "300")

		assert.ErrorContains(t, err, "--decimals")
		assert.Zero(t, builds)
	})

	t.Run("should require the token and recipient", func(t *testing.T) {
		builds := 0

		err := runCommand(t, transferCommand(staticSource(nil, &builds), newUI(&bytes.Buffer{})), "transfer", "--to", bobAddress)

		assert.Error(t, err)
		assert.Zero(t, builds)
	})
}

func TestBalanceCommand(t *testing.T) {
	t.Run("should connect when no owner is given", func(t *testing.T) {
		var buf bytes.Buffer
		mockService := sessiontest.NewService(t)
		mockService.EXPECT().Connect(mock.Anything).Return(aliceAddress, nil).Once()
		mockService.EXPECT().Balance(mock.Anything, tokenAddress, "", uint8(18)).
			Return(tokens.Balance{Owner: aliceAddress, Raw: mustBig("1500000000000000000"), Formatted: "1.5"}, nil).Once()

		err := runCommand(t, balanceCommand(staticSource(mockService, nil), newUI(&buf)), "balance", "--token", tokenAddress)
		require.NoError(t, err)

		assert.Contains(t, buf.String(), "1.5")
		assert.Contains(t, buf.String(), "1500000000000000000")
	})

	t.Run("should read another owner without connecting", func(t *testing.T) {
		mockService := sessiontest.NewService(t)
		mockService.EXPECT().Balance(mock.Anything, tokenAddress, bobAddress, uint8(6)).
			Return(tokens.Balance{Owner: common.HexToAddress(bobAddress), Raw: mustBig("0"), Formatted: "0.0"}, nil).Once()

		err := runCommand(t, balanceCommand(staticSource(mockService, nil), newUI(&bytes.Buffer{})),
			"balance", "--token", tokenAddress, "--owner", bobAddress, "--decimals", "6")
		assert.NoError(t, err)
	})
}

func TestSwapCommand(t *testing.T) {
	t.Run("should print one row per hop and the estimate", func(t *testing.T) {
		var buf bytes.Buffer
		mockService := sessiontest.NewService(t)
		mockService.EXPECT().Estimate(mock.Anything, swap.Request{
			Router:   routerAddress,
			Path:     []string{tokenAddress, bobAddress},
			AmountIn: "1",
			Decimals: swap.Decimals(18),
		}).Return(swap.Quote{Formatted: []string{"1.0", "1.994"}}, nil).Once()

		err := runCommand(t, swapCommand(staticSource(mockService, nil), newUI(&buf)),
			"swap", "quote", "--router", routerAddress, "--path", tokenAddress+", "+bobAddress)
		require.NoError(t, err)

		assert.Contains(t, buf.String(), "预估获得: 1.994")
	})

	t.Run("should pass zero decimals through", func(t *testing.T) {
		mockService := sessiontest.NewService(t)
		mockService.EXPECT().Estimate(mock.Anything, mock.MatchedBy(func(req swap.Request) bool {
			return req.Decimals != nil && *req.Decimals == 0
		})).Return(swap.Quote{Formatted: []string{"5.0", "10.0"}}, nil).Once()

		err := runCommand(t, swapCommand(staticSource(mockService, nil), newUI(&bytes.Buffer{})),
			"swap", "quote", "--router", routerAddress, "--path", tokenAddress+","+bobAddress,
			"--amount-in", "5", "--decimals", "0")
		assert.NoError(t, err)
	})

	t.Run("should execute with the floor and an absolute deadline", func(t *testing.T) {
		var buf bytes.Buffer
		txHash := common.HexToHash("0x02")
		started := time.Now()
		mockService := sessiontest.NewService(t)
		mockService.EXPECT().Swap(mock.Anything, mock.MatchedBy(func(req swap.Request) bool {
			return req.AmountIn == "2" &&
				req.AmountOutMin == "3.9" &&
				!req.Deadline.Before(started.Add(5*time.Minute))
		})).Return(chain.Outcome{TxHash: txHash}, nil).Once()

		err := runCommand(t, swapCommand(staticSource(mockService, nil), newUI(&buf)),
			"swap", "execute", "--router", routerAddress, "--path", tokenAddress+","+bobAddress,
			"--amount-in", "2", "--min-out", "3.9", "--deadline", "5m")
		require.NoError(t, err)

		assert.Contains(t, buf.String(), txHash.Hex())
	})

	t.Run("should leave the deadline to the service by default", func(t *testing.T) {
		mockService := sessiontest.NewService(t)
		mockService.EXPECT().Swap(mock.Anything, mock.MatchedBy(func(req swap.Request) bool {
			return req.Deadline.IsZero() && req.AmountOutMin == ""
		})).Return(chain.Outcome{}, nil).Once()

		err := runCommand(t, swapCommand(staticSource(mockService, nil), newUI(&bytes.Buffer{})),
			"swap", "execute", "--router", routerAddress, "--path", tokenAddress+","+bobAddress)
		assert.NoError(t, err)
	})

	t.Run("should reject a negative deadline", func(t *testing.T) {
		builds := 0

		err := runCommand(t, swapCommand(staticSource(nil, &builds), newUI(&bytes.Buffer{})),
			"swap", "execute", "--router", routerAddress, "--path", tokenAddress+","+bobAddress, "--deadline", "-1m")

		assert.ErrorContains(t, err, "--deadline")
		assert.Zero(t, builds)
	})
}

func TestSessionSource(t *testing.T) {
	t.Run("should build the session once and release it on close", func(t *testing.T) {
		builds, releases := 0, 0
		mockService := sessiontest.NewService(t)
		mockService.EXPECT().Close().Return().Once()

		src := newSessionSource(func(ctx context.Context, opts ...session.Option) (session.Service, func(), error) {
			builds++
			return mockService, func() { releases++ }, nil
		})

		first, err := src.get(t.Context())
		require.NoError(t, err)
		second, err := src.get(t.Context())
		require.NoError(t, err)

		assert.Same(t, first, second)
		assert.Equal(t, 1, builds)

		src.close()
		src.close()
		assert.Equal(t, 1, releases)
	})

	t.Run("should not build a session for offline commands", func(t *testing.T) {
		builds := 0
		src := staticSource(nil, &builds)

		err := newApp(src, newUI(&bytes.Buffer{}), nil, &bytes.Buffer{}).Run(t.Context(), []string{"web3lab", "wallet", "new"})
		require.NoError(t, err)

		assert.Zero(t, builds)
	})

	t.Run("should return the factory error", func(t *testing.T) {
		src := newSessionSource(func(ctx context.Context, opts ...session.Option) (session.Service, func(), error) {
			return nil, nil, chain.ErrNetwork
		})

		_, err := src.get(t.Context())
		assert.ErrorIs(t, err, chain.ErrNetwork)
	})

	t.Run("should close the session after the command", func(t *testing.T) {
		mockService := sessiontest.NewService(t)
		mockService.EXPECT().Connect(mock.Anything).Return(aliceAddress, nil).Once()
		mockService.EXPECT().Close().Return().Once()

		err := newApp(staticSource(mockService, nil), newUI(&bytes.Buffer{}), nil, &bytes.Buffer{}).
			Run(t.Context(), []string{"web3lab", "connect"})
		assert.NoError(t, err)
	})
}

func mustBig(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("invalid integer " + s)
	}
	return v
}

func TestMonitorCommand(t *testing.T) {
	t.Run("should stop the monitor once the context ends", func(t *testing.T) {
		var buf bytes.Buffer
		mockService := sessiontest.NewService(t)
		mockService.EXPECT().ToggleMonitor(mock.Anything, tokenAddress).Return(session.Monitoring, nil).Once()
		mockService.EXPECT().Snapshot().Return(session.Snapshot{Monitor: session.Monitoring}).Once()
		mockService.EXPECT().ToggleMonitor(mock.Anything, "").Return(session.Idle, nil).Once()

		ctx, cancel := context.WithTimeout(t.Context(), 50*time.Millisecond)
		defer cancel()

		app := &cli.Command{Commands: []*cli.Command{monitorCommand(staticSource(mockService, nil), newUI(&buf))}}
		err := app.Run(ctx, []string{"test", "monitor", "--token", tokenAddress})
		require.NoError(t, err)

		assert.Contains(t, buf.String(), "已停止监听")
	})

	t.Run("should return the start error", func(t *testing.T) {
		mockService := sessiontest.NewService(t)
		mockService.EXPECT().ToggleMonitor(mock.Anything, tokenAddress).Return(session.Idle, chain.ErrNetwork).Once()

		err := runCommand(t, monitorCommand(staticSource(mockService, nil), newUI(&bytes.Buffer{})), "monitor", "--token", tokenAddress)
		assert.ErrorIs(t, err, chain.ErrNetwork)
	})
}

func TestRunConsole(t *testing.T) {
	console := func(t *testing.T, sess session.Service, input string) (string, *ui) {
		t.Helper()

		var buf bytes.Buffer
		out := newUI(&buf)
		err := runConsole(t.Context(), staticSource(sess, nil), out, bufio.NewReader(strings.NewReader(input)))
		require.NoError(t, err)
		return buf.String(), out
	}

	t.Run("should toggle the monitor and list the logs", func(t *testing.T) {
		mockService := sessiontest.NewService(t)
		mockService.EXPECT().ToggleMonitor(mock.Anything, tokenAddress).Return(session.Monitoring, nil).Once()
		mockService.EXPECT().Snapshot().Return(session.Snapshot{
			Monitor: session.Monitoring,
			Logs: []session.EventLogEntry{
				{From: aliceAddress, To: common.HexToAddress(bobAddress), Formatted: "2.0", BlockNumber: 12},
				{From: aliceAddress, To: common.HexToAddress(bobAddress), Formatted: "1.0", BlockNumber: 11},
			},
		}).Once()
		mockService.EXPECT().ToggleMonitor(mock.Anything, "").Return(session.Idle, nil).Once()

		output, _ := console(t, mockService, "monitor "+tokenAddress+"\nlogs\nmonitor\nexit\n")

		assert.Contains(t, output, "#12")
		assert.Less(t, strings.Index(output, "2.0 代币"), strings.Index(output, "1.0 代币"))
		assert.Contains(t, output, "已停止监听")
	})

	t.Run("should stop at exit without reading further", func(t *testing.T) {
		mockService := sessiontest.NewService(t)

		output, _ := console(t, mockService, "\n  \nquit\nconnect\n")
		assert.Equal(t, 3, strings.Count(output, "web3lab> "))
	})

	t.Run("should stop at end of input", func(t *testing.T) {
		mockService := sessiontest.NewService(t)
		mockService.EXPECT().Disconnect().Return().Once()

		output, _ := console(t, mockService, "disconnect")
		assert.Contains(t, output, "已断开钱包")
	})

	t.Run("should print an error the session did not report", func(t *testing.T) {
		mockService := sessiontest.NewService(t)
		mockService.EXPECT().ToggleMonitor(mock.Anything, "").Return(session.Idle, session.ErrNoMonitorAddress).Once()

		output, _ := console(t, mockService, "monitor\n")
		assert.Contains(t, output, session.ErrNoMonitorAddress.Error())
	})

	t.Run("should not repeat an error already shown as a notification", func(t *testing.T) {
		var out *ui
		mockService := sessiontest.NewService(t)
		mockService.EXPECT().Connect(mock.Anything).
			Run(func(context.Context) {
				out.notify(session.Notification{Kind: session.KindError, Text: "user rejected"})
			}).
			Return(common.Address{}, errors.New("user rejected")).Once()

		var buf bytes.Buffer
		out = newUI(&buf)
		err := runConsole(t.Context(), staticSource(mockService, nil), out, bufio.NewReader(strings.NewReader("connect\n")))
		require.NoError(t, err)

		assert.Equal(t, 1, strings.Count(buf.String(), "user rejected"))
	})

	t.Run("should report unknown commands and bad quoting", func(t *testing.T) {
		mockService := sessiontest.NewService(t)

		output, _ := console(t, mockService, "frobnicate\nbalance --token \"0xabc\n")
		assert.Contains(t, output, "未知命令: frobnicate")
		assert.Contains(t, output, errUnterminatedQuote.Error())
	})

	t.Run("should show status and regenerated keys", func(t *testing.T) {
		keys := keygen.KeyMaterial{Address: aliceAddress.Hex(), PrivateKey: "0xac09", Mnemonic: testMnemonic}
		mockService := sessiontest.NewService(t)
		mockService.EXPECT().Snapshot().Return(session.Snapshot{
			State:        session.Connected,
			Account:      aliceAddress,
			Estimated:    "1.994",
			Notification: &session.Notification{Kind: session.KindSuccess, Text: "钱包连接成功"},
		}).Once()
		mockService.EXPECT().RegenerateKeys().Return(keys, nil).Once()

		output, _ := console(t, mockService, "status\nregen\n")
		assert.Contains(t, output, aliceAddress.Hex())
		assert.Contains(t, output, "1.994")
		assert.Contains(t, output, "钱包连接成功")
		assert.Contains(t, output, testMnemonic)
	})
}

func TestSplitArgs(t *testing.T) {
	for name, tc := range map[string]struct {
		line string
		want []string
	}{
		"plain words":     {"transfer --to 0x1", []string{"transfer", "--to", "0x1"}},
		"repeated blanks": {"  logs \t ", []string{"logs"}},
		"double quotes":   {`wallet derive --mnemonic "a b c"`, []string{"wallet", "derive", "--mnemonic", "a b c"}},
		"single quotes":   {"x 'a \"b\"'", []string{"x", `a "b"`}},
		"empty quotes":    {`x ""`, []string{"x", ""}},
		"empty line":      {"", nil},
	} {
		t.Run(name, func(t *testing.T) {
			got, err := splitArgs(tc.line)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	t.Run("should reject an unterminated quote", func(t *testing.T) {
		_, err := splitArgs(`say "hi`)
		assert.ErrorIs(t, err, errUnterminatedQuote)
	})
}
