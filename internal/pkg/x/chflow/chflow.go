// Package chflow holds context-aware channel helpers: a send or receive
// that gives up as soon as the context is done.
package chflow

import "context"

// Receive returns the next value from ch. ok is false when ctx ended first
// or ch was closed.
func Receive[T any](ctx context.Context, ch <-chan T) (value T, ok bool) {
	select {
	case <-ctx.Done():
		return value, false
	case value, ok = <-ch:
		return value, ok
	}
}

// Send delivers value on ch and reports false when ctx ended first.
func Send[T any](ctx context.Context, ch chan<- T, value T) bool {
	select {
	case <-ctx.Done():
		return false
	case ch <- value:
		return true
	}
}
