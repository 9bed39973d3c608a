package glint

import "github.com/tobyauld/glint/internal"

type Computed[T any] struct {
	computed *internal.Computed
}

// NewComputed creates a lazy derivation of other signals. The compute
// function receives the previously cached value (the zero value on the
// first run) and is re-run only when a dependency actually changed.
func NewComputed[T any](compute func(prev T) T) *Computed[T] {
	return NewComputedWithOptions(compute, Options[T]{})
}

// NewComputedWithOptions creates a derivation with a custom equality
// predicate deciding whether a recomputed value propagates downstream.
func NewComputedWithOptions[T any](compute func(prev T) T, opts Options[T]) *Computed[T] {
	return &Computed[T]{
		internal.GetRuntime().NewComputed(func(prev any) any {
			return compute(as[T](prev))
		}, opts.equals()),
	}
}

// Read refreshes the derivation if needed and returns its value, tracking
// the dependency if within a reactive context.
func (c *Computed[T]) Read() T {
	return as[T](c.computed.Read())
}

// Peek refreshes and returns the value without tracking a dependency.
func (c *Computed[T]) Peek() T {
	return as[T](c.computed.Peek())
}
