package glint

import "github.com/tobyauld/glint/internal"

type Context[T any] struct {
	ctx *internal.Context
}

// NewContext creates a reactive context with a default value.
func NewContext[T any](initial T) *Context[T] {
	return &Context[T]{
		internal.GetRuntime().NewContext(initial),
	}
}

// Value retrieves the current value of the context, inheriting from parent
// scopes if not set in the current one.
func (c *Context[T]) Value() T {
	return as[T](c.ctx.Value())
}

// Set a new value for the context in the current scope.
func (c *Context[T]) Set(value T) {
	c.ctx.Set(value)
}
