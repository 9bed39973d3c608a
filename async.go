package glint

import (
	"context"

	"github.com/tobyauld/glint/internal"
)

// Task is the asynchronous half of an async derivation. It runs on its own
// goroutine; signal reads inside it are never tracked.
type Task[T any] func() (T, error)

type AsyncComputed[T any] struct {
	async *internal.AsyncComputed
}

// NewAsyncComputed creates a derivation whose value resolves asynchronously.
//
// The compute closure runs on the graph goroutine under tracking — read
// your dependencies there — and returns the task to run in the background.
// When a dependency changes before the task completes, the task's context
// is cancelled and its result discarded; only the latest run may deliver.
//
//	user := glint.NewAsyncComputed(func(ctx context.Context) glint.Task[User] {
//		id := userID.Read() // tracked
//		return func() (User, error) {
//			return fetchUser(ctx, id) // not tracked
//		}
//	})
func NewAsyncComputed[T any](compute func(ctx context.Context) Task[T]) *AsyncComputed[T] {
	return &AsyncComputed[T]{
		internal.GetRuntime().NewAsyncComputed(func(ctx context.Context) func() (any, error) {
			task := compute(ctx)
			return func() (any, error) {
				return task()
			}
		}),
	}
}

// NewStreamComputed creates a derivation fed by a channel. The compute
// closure runs tracked on the graph goroutine and returns the channel to
// subscribe to; each received value becomes a Data transition. The
// subscription is renewed on every dependency change and torn down on Stop.
func NewStreamComputed[T any](compute func(ctx context.Context) <-chan T) *AsyncComputed[T] {
	return &AsyncComputed[T]{
		internal.GetRuntime().NewStreamComputed(func(ctx context.Context) <-chan any {
			ch := compute(ctx)
			out := make(chan any)

			go func() {
				defer close(out)
				for v := range ch {
					select {
					case out <- v:
					case <-ctx.Done():
						return
					}
				}
			}()

			return out
		}),
	}
}

// Read the current AsyncValue, tracking the dependency if within a reactive
// context. The first read starts the first run.
func (c *AsyncComputed[T]) Read() AsyncValue[T] {
	return AsyncValue[T]{c.async.Read()}
}

// Peek reads the current AsyncValue without tracking a dependency.
func (c *AsyncComputed[T]) Peek() AsyncValue[T] {
	return AsyncValue[T]{c.async.Peek()}
}

// Stop cancels any in-flight task and detaches the derivation.
func (c *AsyncComputed[T]) Stop() {
	c.async.Stop()
}
