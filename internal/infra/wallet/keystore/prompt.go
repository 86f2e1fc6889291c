package keystore

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gabapcia/web3lab/internal/walletconn"

	"golang.org/x/term"
)

// TerminalPrompter asks on the controlling terminal. Answers are read from
// a shared line reader so an interactive console can use the same input.
type TerminalPrompter struct {
	fd  int
	in  *bufio.Reader
	out io.Writer
}

var _ Prompter = (*TerminalPrompter)(nil)

// NewTerminalPrompter returns a prompter over stdin, or
// walletconn.ErrEnvironmentUnsupported when stdin is not a terminal.
func NewTerminalPrompter(in *bufio.Reader, out io.Writer) (*TerminalPrompter, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("%w: stdin is not a terminal", walletconn.ErrEnvironmentUnsupported)
	}

	return &TerminalPrompter{fd: fd, in: in, out: out}, nil
}

// Confirm prints question and reads one line. Only "y" or "yes" count as
// approval. An input error before any answer is a rejection.
func (p *TerminalPrompter) Confirm(ctx context.Context, question string) (bool, error) {
	fmt.Fprintf(p.out, "%s [y/N]: ", question)

	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return false, fmt.Errorf("%w: %w", walletconn.ErrUserRejected, err)
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// Passphrase prints prompt and reads a line with echo disabled.
func (p *TerminalPrompter) Passphrase(ctx context.Context, prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)

	raw, err := term.ReadPassword(p.fd)
	fmt.Fprintln(p.out)
	if err != nil {
		return "", fmt.Errorf("passphrase input failed: %w", err)
	}

	return string(raw), nil
}
