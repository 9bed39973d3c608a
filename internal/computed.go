package internal

import "runtime/debug"

// Computed is a lazily recomputed derivation. It is created stale and gets
// its first value on first read; afterwards its cache is invalidated by
// propagation and re-validated by refresh.
type Computed struct {
	Signal

	compute func(prev any) any
	scope   *Scope

	initialized bool

	// error state of the last recompute; the cached value survives it
	err   any
	stack []byte
}

func (r *Runtime) NewComputed(compute func(prev any) any, equals EqualFunc) *Computed {
	if equals == nil {
		equals = defaultEquals
	}

	c := &Computed{
		compute: compute,
		scope:   r.NewScope(),
	}
	c.nd = node{id: r.nextID(), kind: kindDerived, flags: flagWatching | flagDirty}
	c.rt = r
	c.equals = equals
	r.observeCreated(&c.nd)

	// when the owning scope goes away, release the links and fall back to
	// recomputing from scratch on the next read
	c.scope.OnDispose(func() {
		if c.nd.deps != nil {
			r.clearDeps(c)
			c.nd.flags.replace(flagStale, flagDirty)
		}
	})

	return c
}

// Read refreshes the derivation, attaches it as a dependency of the active
// subscriber, then returns the cached value. Reading a derivation that is
// currently executing panics: that is a cycle.
func (c *Computed) Read() any {
	if c.nd.flags.has(flagTracking) {
		panic(ErrCycleDetected)
	}

	r := c.rt
	r.refresh(c)

	if sub := r.tracker.active(); sub != nil {
		r.attach(c, sub)
	}

	if c.err != nil {
		panic(&NodeError{Value: c.err, Stack: c.stack})
	}
	return c.value
}

// Peek refreshes and returns the value without dependency capture.
func (c *Computed) Peek() any {
	r := c.rt
	r.refresh(c)

	if c.err != nil {
		panic(&NodeError{Value: c.err, Stack: c.stack})
	}
	return c.value
}

// recompute runs the compute closure under tracking with the previous value
// as input. A changed result bumps the version and propagates with this
// node as root. A panicking closure becomes the node's error state: the
// cached value is retained, and consumers observe the error on their own
// refresh.
func (c *Computed) recompute() {
	r := c.rt

	// children created by the previous run are torn down first
	c.scope.reset()

	prevSub, prevGen := r.startTracking(c)
	prevScope := r.tracker.activeScope
	r.tracker.activeScope = c.scope

	prev := c.value
	var next any
	panicked := false

	func() {
		defer func() {
			if rec := recover(); rec != nil {
				panicked = true
				c.err = rec
				c.stack = debug.Stack()
			}
		}()

		next = c.compute(prev)
	}()

	r.tracker.activeScope = prevScope
	r.endTracking(c, prevSub, prevGen)

	if panicked {
		ReportError(c.err, c.stack)
		c.nd.version++
		if c.nd.subs != nil {
			r.propagate(c.nd.subs)
		}
		return
	}

	hadErr := c.err != nil
	c.err, c.stack = nil, nil

	// leaving the error state is a change even when the value is equal
	if c.initialized && !hadErr && c.equals(prev, next) {
		return
	}
	c.initialized = true

	c.value = next
	c.nd.version++
	r.observeValue(&c.nd, next)

	if c.nd.subs != nil {
		r.propagate(c.nd.subs)
	}
}
