// Package redis publishes observed transfers on a Redis pub/sub channel so
// other processes can follow a monitor without their own node connection.
package redis

import (
	"context"
	"encoding/json"

	"github.com/gabapcia/web3lab/internal/session"

	redis "github.com/redis/go-redis/v9"
)

// publisher is the part of *redis.Client the broker needs.
type publisher interface {
	Publish(ctx context.Context, channel string, message any) *redis.IntCmd
	Close() error
}

type client struct {
	conn    publisher
	channel string
}

var _ session.EventSink = (*client)(nil)

// message is the JSON payload of one published transfer.
type message struct {
	Contract    string `json:"contract"`
	From        string `json:"from"`
	To          string `json:"to"`
	Value       string `json:"value"`
	Formatted   string `json:"formatted"`
	BlockNumber uint64 `json:"blockNumber"`
	TxHash      string `json:"txHash"`
	ReceivedAt  int64  `json:"receivedAt"`
}

func newMessage(entry session.EventLogEntry) message {
	value := "0"
	if entry.Value != nil {
		value = entry.Value.String()
	}

	return message{
		Contract:    entry.Contract.Hex(),
		From:        entry.From.Hex(),
		To:          entry.To.Hex(),
		Value:       value,
		Formatted:   entry.Formatted,
		BlockNumber: entry.BlockNumber,
		TxHash:      entry.TxHash.Hex(),
		ReceivedAt:  entry.ReceivedAt.UnixMilli(),
	}
}

// Publish implements session.EventSink.
func (c *client) Publish(ctx context.Context, entry session.EventLogEntry) error {
	payload, err := json.Marshal(newMessage(entry))
	if err != nil {
		return err
	}

	return c.conn.Publish(ctx, c.channel, payload).Err()
}

// Close closes the Redis connection.
func (c *client) Close() error {
	return c.conn.Close()
}

// NewClient connects to Redis and checks the connection with PING.
//
// Parameters:
//   - ctx: bounds the PING.
//   - addr, username, password, db: the Redis connection settings.
//   - channel: the pub/sub channel observed transfers are published on.
//
// Returns:
//   - A session.EventSink publishing JSON messages.
//   - An error if Redis does not answer the PING.
func NewClient(ctx context.Context, addr, username, password string, db int, channel string) (*client, error) {
	conn := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
		DB:       db,
	})

	if err := conn.Ping(ctx).Err(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return &client{
		conn:    conn,
		channel: channel,
	}, nil
}
