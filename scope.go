package glint

import "github.com/tobyauld/glint/internal"

type Scope struct {
	scope *internal.Scope
}

// NewScope creates a reactive scope. A scope groups the lifecycle of the
// effects and child scopes created within it: stopping the scope stops all
// of its descendants, newest first.
func NewScope() *Scope {
	return &Scope{
		internal.GetRuntime().NewScope(),
	}
}

// Run a function within this scope. Each effect or scope created inside is
// a child of this scope and is stopped when Stop is called.
func (s *Scope) Run(fn func() error) error { return s.scope.Run(fn) }

// Stop this scope and all its children. Stopping twice is a no-op.
func (s *Scope) Stop() { s.scope.Dispose() }

// OnCleanup adds a function called ONCE when the scope is stopped.
func (s *Scope) OnCleanup(fn func()) { s.scope.OnCleanup(fn) }

// OnDispose adds a function called each time Stop is called.
func (s *Scope) OnDispose(fn func()) { s.scope.OnDispose(fn) }

// OnError adds a function called when a panic occurs within this scope.
// If no error listener is registered, the panic propagates as usual.
func (s *Scope) OnError(fn func(any)) { s.scope.OnError(fn) }
