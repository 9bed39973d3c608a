package glint

import "github.com/tobyauld/glint/internal"

// AsyncValue is the value observed through an async derivation: Loading,
// Data or Error, where the loading and error states carry the previous data
// when a successful run came before them.
type AsyncValue[T any] struct {
	raw internal.AsyncResult
}

// When pattern-matches the state. Exactly one of the three callbacks runs;
// nil callbacks are skipped.
func (v AsyncValue[T]) When(loading func(), data func(T), err func(error)) {
	switch v.raw.State {
	case internal.AsyncLoading:
		if loading != nil {
			loading()
		}
	case internal.AsyncData:
		if data != nil {
			data(as[T](v.raw.Value))
		}
	case internal.AsyncError:
		if err != nil {
			err(v.raw.Err)
		}
	}
}

// IsLoading reports whether a run is in flight.
func (v AsyncValue[T]) IsLoading() bool {
	return v.raw.State == internal.AsyncLoading
}

// Value returns the current data and whether any is present. During loading
// or after an error this is the previous run's data, if there was one.
func (v AsyncValue[T]) Value() (T, bool) {
	return as[T](v.raw.Value), v.raw.HasValue
}

// Err returns the error of the last failed run, or nil.
func (v AsyncValue[T]) Err() error {
	return v.raw.Err
}
