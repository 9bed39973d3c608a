// Package glint is a fine-grained reactivity engine: writable signals,
// lazily recomputed derivations and side-effecting subscribers wired into a
// dependency graph that recomputes the minimum on every change.
package glint

import "github.com/tobyauld/glint/internal"

func as[T any](v any) T {
	if v == nil {
		var zero T
		return zero
	}

	return v.(T)
}

// Options tunes a signal or computed. Equals overrides the change check;
// the default is structural equality, so values holding collections should
// be replaced, not mutated, for changes to be observed.
type Options[T any] struct {
	Equals func(a, b T) bool
}

func (o Options[T]) equals() internal.EqualFunc {
	if o.Equals == nil {
		return nil
	}
	return func(a, b any) bool {
		return o.Equals(as[T](a), as[T](b))
	}
}

// NewBatch batches multiple signal writes into a single update cycle,
// instead of triggering effects after each write.
func NewBatch(fn func()) {
	internal.GetRuntime().NewBatch(fn)
}

// Untrack runs the given function without tracking any reactive dependencies.
func Untrack[T any](fn func() T) T {
	var result T
	internal.GetRuntime().Untrack(func() { result = fn() })
	return result
}

// OnCleanup registers a function to run before the current effect re-runs,
// or when its owning scope is stopped.
func OnCleanup(fn func()) {
	internal.GetRuntime().OnCleanup(fn)
}

// OnSettled registers a one-shot callback for when the next flush fully
// settles, including effects chained off other effects' writes.
func OnSettled(fn func()) {
	internal.GetRuntime().OnSettled(fn)
}

// ErrCycleDetected is raised when a derivation reads itself, directly or
// transitively, during its own execution.
var ErrCycleDetected = internal.ErrCycleDetected

// NodeError wraps the panic value recorded as a derivation's error state.
type NodeError = internal.NodeError

// ErrorHandler is the process-wide sink for panics recovered from effects
// and derivations.
type ErrorHandler = internal.ErrorHandler

// SetErrorHandler installs the process-wide error sink. Passing nil
// restores the default, which logs through slog.
func SetErrorHandler(fn ErrorHandler) {
	internal.SetErrorHandler(fn)
}

// Observer receives node lifecycle and value-change events from the
// current goroutine's reactive graph.
type Observer = internal.Observer

// SetObserver registers an observer on the current goroutine's runtime.
func SetObserver(o Observer) {
	internal.GetRuntime().SetObserver(o)
}
