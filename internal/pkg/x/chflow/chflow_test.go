package chflow

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type transfer struct {
	From, To string
	Value    int64
}

func TestReceive(t *testing.T) {
	t.Run("returns the buffered value", func(t *testing.T) {
		ch := make(chan transfer, 1)
		ch <- transfer{From: "0xa", To: "0xb", Value: 7}

		value, ok := Receive(t.Context(), ch)

		assert.True(t, ok)
		assert.Equal(t, transfer{From: "0xa", To: "0xb", Value: 7}, value)
	})

	t.Run("gives up when the context is canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		value, ok := Receive(ctx, make(chan transfer))

		assert.False(t, ok)
		assert.Zero(t, value)
	})

	t.Run("reports a closed channel", func(t *testing.T) {
		ch := make(chan error)
		close(ch)

		value, ok := Receive(t.Context(), ch)

		assert.False(t, ok)
		assert.Nil(t, value)
	})
}

func TestSend(t *testing.T) {
	t.Run("delivers the value", func(t *testing.T) {
		ch := make(chan int, 1)

		assert.True(t, Send(t.Context(), ch, 42))
		assert.Equal(t, 42, <-ch)
	})

	t.Run("gives up when the context is canceled", func(t *testing.T) {
		ch := make(chan int)
		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		assert.False(t, Send(ctx, ch, 42))

		select {
		case <-ch:
			t.Fatal("no value should be sent")
		default:
		}
	})

	t.Run("unblocks a pending send on cancel", func(t *testing.T) {
		ch := make(chan int)
		ctx, cancel := context.WithCancel(t.Context())

		done := make(chan bool)
		go func() { done <- Send(ctx, ch, 1) }()

		cancel()

		select {
		case ok := <-done:
			assert.False(t, ok)
		case <-time.After(time.Second):
			t.Fatal("Send should return once the context is canceled")
		}
	})
}

func TestPipeline(t *testing.T) {
	in := make(chan int, 3)
	out := make(chan int, 3)
	in <- 1
	in <- 2
	in <- 3
	close(in)

	go func() {
		defer close(out)
		for {
			v, ok := Receive(t.Context(), in)
			if !ok || !Send(t.Context(), out, v*10) {
				return
			}
		}
	}()

	var got []int
	for v := range out {
		got = append(got, v)
	}
	assert.Equal(t, []int{10, 20, 30}, got)
}
