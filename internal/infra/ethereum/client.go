// Package ethereum connects to an Ethereum-compatible node with go-ethereum's
// ethclient. The returned Client is the chain.Backend of every contract
// operation.
package ethereum

import (
	"context"
	"errors"
	"math/big"
	"net/url"

	"github.com/gabapcia/web3lab/internal/chain"
	transporthttp "github.com/gabapcia/web3lab/internal/pkg/transport/http"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
)

// ErrDialFailed is returned when the node cannot be reached or does not
// answer eth_chainId.
var ErrDialFailed = errors.New("failed to connect to node")

// Client is a node connection with its chain id resolved.
type Client struct {
	*ethclient.Client

	chainID *big.Int
}

var _ chain.Backend = (*Client)(nil)

// ChainID returns the chain id read when the client was dialed.
func (c *Client) ChainID() *big.Int {
	return new(big.Int).Set(c.chainID)
}

// SupportsSubscriptions reports whether the endpoint can push logs.
func SupportsSubscriptions(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return u.Scheme != "http" && u.Scheme != "https"
}

func dialOptions(rawURL string, opts []transporthttp.Option) []rpc.ClientOption {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return nil
	}
	return []rpc.ClientOption{rpc.WithHTTPClient(transporthttp.NewClient(opts...).StandardClient())}
}

// Dial connects to rawURL (http, https, ws, wss or an IPC path) and reads
// the chain id. HTTP endpoints use the shared retryable HTTP client.
//
// Parameters:
//   - ctx: bounds the dial and the chain id request.
//   - rawURL: the node endpoint.
//   - opts: options for the HTTP transport, such as WithTimeout. They are
//     ignored for WebSocket and IPC endpoints.
//
// Returns:
//   - A connected client implementing chain.Backend.
//   - ErrDialFailed or chain.ErrNetwork when the node cannot be reached.
func Dial(ctx context.Context, rawURL string, opts ...transporthttp.Option) (*Client, error) {
	rpcClient, err := rpc.DialOptions(ctx, rawURL, dialOptions(rawURL, opts)...)
	if err != nil {
		return nil, chain.Classify(err, ErrDialFailed)
	}

	conn := ethclient.NewClient(rpcClient)

	chainID, err := conn.ChainID(ctx)
	if err != nil {
		conn.Close()
		return nil, chain.Classify(err, ErrDialFailed)
	}

	return &Client{Client: conn, chainID: chainID}, nil
}
