// Package cli is the terminal surface of web3lab: one-shot commands and an
// interactive console, all driven through a session coordinator.
package cli

import (
	"bufio"
	"context"
	"io"
	"os"
	"sync"

	"github.com/gabapcia/web3lab/internal/session"

	"github.com/urfave/cli/v3"
)

// SessionFactory builds a coordinator and the resources behind it. release
// frees those resources once the session is closed.
type SessionFactory func(ctx context.Context, opts ...session.Option) (sess session.Service, release func(), err error)

// sessionSource builds the session on first use, so offline commands never
// dial the node.
type sessionSource struct {
	mu      sync.Mutex
	factory SessionFactory
	opts    []session.Option

	sess    session.Service
	release func()
}

func newSessionSource(factory SessionFactory, opts ...session.Option) *sessionSource {
	return &sessionSource{factory: factory, opts: opts}
}

func (s *sessionSource) get(ctx context.Context) (session.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sess != nil {
		return s.sess, nil
	}

	sess, release, err := s.factory(ctx, s.opts...)
	if err != nil {
		return nil, err
	}

	s.sess, s.release = sess, release
	return sess, nil
}

// close shuts the session down. Safe to call when it was never built.
func (s *sessionSource) close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sess == nil {
		return
	}

	s.sess.Close()
	if s.release != nil {
		s.release()
	}
	s.sess, s.release = nil, nil
}

func commands(src *sessionSource, out *ui, in *bufio.Reader) []*cli.Command {
	return []*cli.Command{
		walletCommand(out),
		connectCommand(src, out),
		transferCommand(src, out),
		balanceCommand(src, out),
		monitorCommand(src, out),
		swapCommand(src, out),
		consoleCommand(src, out, in),
	}
}

func newApp(src *sessionSource, out *ui, in *bufio.Reader, w io.Writer) *cli.Command {
	return &cli.Command{
		EnableShellCompletion: true,
		Name:                  "web3lab",
		Description:           "Learning tool for Ethereum: key generation, token transfers, Transfer event monitoring and DEX swaps. For demonstration only.",
		Usage:                 "web3lab [command] [flags]",
		Writer:                w,
		ErrWriter:             w,
		Commands:              commands(src, out, in),
		After: func(ctx context.Context, c *cli.Command) error {
			src.close()
			return nil
		},
	}
}

// Run executes the web3lab CLI with the process arguments. in is the shared
// stdin reader; wallet prompts read from the same reader.
func Run(ctx context.Context, in *bufio.Reader, newSession SessionFactory) error {
	out := newUI(os.Stdout)
	src := newSessionSource(newSession,
		session.WithNotificationHandler(out.notify),
		session.WithEventHandler(out.event),
	)
	defer src.close()

	return newApp(src, out, in, os.Stdout).Run(ctx, os.Args)
}
