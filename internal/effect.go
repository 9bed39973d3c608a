package internal

import "runtime/debug"

// Effect is a side-effecting subscriber. It runs once at creation to
// capture its initial deps and again whenever the runner drains it.
type Effect struct {
	nd node
	rt *Runtime

	fn    func()
	scope *Scope
}

func (r *Runtime) NewEffect(fn func(), recursive bool) *Effect {
	e := &Effect{
		nd:    node{id: r.nextID(), kind: kindEffect, flags: flagWatching},
		rt:    r,
		fn:    fn,
		scope: r.NewScope(),
	}
	if recursive {
		e.nd.flags.set(flagRecursiveEffect)
	}
	r.observeCreated(&e.nd)

	// stopping the owning scope stops the effect
	e.scope.OnDispose(e.Stop)

	// the initial run is bracketed so that writes inside it flush after the
	// run completes instead of re-entering it
	r.batcher.Batch(e.run, r.Flush)

	return e
}

func (e *Effect) node() *node { return &e.nd }

func (e *Effect) run() {
	r := e.rt

	// tear down the previous run: nested effects first, then cleanups
	e.scope.reset()

	prevSub, prevGen := r.startTracking(e)
	prevScope := r.tracker.activeScope
	r.tracker.activeScope = e.scope

	defer func() {
		r.tracker.activeScope = prevScope
		r.endTracking(e, prevSub, prevGen)

		if rec := recover(); rec != nil {
			// the effect stays subscribed; the panic goes to the scope's
			// catchers, falling back to the process-wide hook
			if !e.scope.catch(rec) {
				ReportError(rec, debug.Stack())
			}
		}
	}()

	e.fn()
}

// Stop detaches the effect from every producer and tears down its scope.
// Stopping twice is a no-op.
func (e *Effect) Stop() {
	if e.nd.flags.has(flagStopped) {
		return
	}
	e.nd.flags.set(flagStopped)

	e.scope.Dispose()
	e.rt.clearDeps(e)
	e.nd.flags.clear(flagStale | flagNotified)

	e.rt.observeStopped(&e.nd)
}
