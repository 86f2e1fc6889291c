package redis

import (
	"context"
	"encoding/json"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/gabapcia/web3lab/internal/session"

	"github.com/ethereum/go-ethereum/common"
	redis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type published struct {
	channel string
	payload []byte
}

type fakeConn struct {
	sent   []published
	err    error
	closed bool
}

func (f *fakeConn) Publish(ctx context.Context, channel string, message any) *redis.IntCmd {
	cmd := redis.NewIntCmd(ctx)
	if f.err != nil {
		cmd.SetErr(f.err)
		return cmd
	}

	f.sent = append(f.sent, published{channel: channel, payload: message.([]byte)})
	cmd.SetVal(1)
	return cmd
}

func (f *fakeConn) Close() error {
	f.closed = true
	return nil
}

func TestClient_Publish(t *testing.T) {
	entry := session.EventLogEntry{
		Contract:    common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3"),
		From:        common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"),
		To:          common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8"),
		Value:       big.NewInt(1_500),
		Formatted:   "0.0000000000000015",
		BlockNumber: 42,
		TxHash:      common.HexToHash("0xabc"),
		ReceivedAt:  time.UnixMilli(1_700_000_000_000),
	}

	t.Run("should publish the entry as JSON on the channel", func(t *testing.T) {
		conn := &fakeConn{}
		c := &client{conn: conn, channel: "web3lab:transfers"}

		require.NoError(t, c.Publish(t.Context(), entry))

		require.Len(t, conn.sent, 1)
		assert.Equal(t, "web3lab:transfers", conn.sent[0].channel)

		var got message
		require.NoError(t, json.Unmarshal(conn.sent[0].payload, &got))
		assert.Equal(t, message{
			Contract:    entry.Contract.Hex(),
			From:        entry.From.Hex(),
			To:          entry.To.Hex(),
			Value:       "1500",
			Formatted:   "0.0000000000000015",
			BlockNumber: 42,
			TxHash:      entry.TxHash.Hex(),
			ReceivedAt:  1_700_000_000_000,
		}, got)
	})

	t.Run("should return the publish error", func(t *testing.T) {
		failure := errors.New("connection refused")
		c := &client{conn: &fakeConn{err: failure}, channel: "x"}

		assert.ErrorIs(t, c.Publish(t.Context(), entry), failure)
	})

	t.Run("should encode a missing value as zero", func(t *testing.T) {
		conn := &fakeConn{}
		c := &client{conn: conn, channel: "x"}

		require.NoError(t, c.Publish(t.Context(), session.EventLogEntry{}))

		var got message
		require.NoError(t, json.Unmarshal(conn.sent[0].payload, &got))
		assert.Equal(t, "0", got.Value)
	})
}

func TestClient_Close(t *testing.T) {
	conn := &fakeConn{}
	c := &client{conn: conn}

	require.NoError(t, c.Close())
	assert.True(t, conn.closed)
}

func TestNewClient(t *testing.T) {
	t.Run("should fail when redis is unreachable", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(t.Context(), 2*time.Second)
		defer cancel()

		_, err := NewClient(ctx, "127.0.0.1:1", "", "", 0, "x")

		assert.Error(t, err)
	})
}
