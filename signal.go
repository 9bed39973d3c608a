package glint

import "github.com/tobyauld/glint/internal"

type Signal[T any] struct {
	signal *internal.Signal
}

// NewSignal creates your typical read/write signal.
func NewSignal[T any](initial T) *Signal[T] {
	return NewSignalWithOptions(initial, Options[T]{})
}

// NewSignalWithOptions creates a signal with a custom equality predicate.
// Writes that compare equal to the current value do not propagate.
func NewSignalWithOptions[T any](initial T, opts Options[T]) *Signal[T] {
	return &Signal[T]{
		internal.GetRuntime().NewSignal(initial, opts.equals()),
	}
}

// Read the current value of the signal, tracking the dependency if within a
// reactive context.
func (s *Signal[T]) Read() T {
	return as[T](s.signal.Read())
}

// Peek reads the current value without tracking a dependency.
func (s *Signal[T]) Peek() T {
	return as[T](s.signal.Peek())
}

// Write a new value to the signal, triggering updates to any dependents.
func (s *Signal[T]) Write(v T) {
	s.signal.Write(v)
}

// Update writes the result of fn applied to the current value.
func (s *Signal[T]) Update(fn func(T) T) {
	s.signal.Update(func(v any) any {
		return fn(as[T](v))
	})
}
