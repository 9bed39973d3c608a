package internal

// refresh brings a producer up to date before its value is handed out.
//
// Fresh nodes return immediately. A node that is only pending first walks
// its deps in read order, refreshing each producer and comparing the
// version captured on the link against the producer's current version; the
// first mismatch escalates to dirty. Dirty nodes recompute.
func (r *Runtime) refresh(p reactiveNode) {
	n := p.node()

	if !n.flags.has(flagStale) {
		return
	}

	if !n.flags.has(flagDirty) && r.checkDeps(p) {
		n.flags.set(flagDirty)
	}

	if n.flags.has(flagDirty) {
		if c, ok := p.(*Computed); ok {
			c.recompute()
		}
	}

	n.flags.clear(flagStale)
}

// checkDeps reports whether any dependency produced a new value since sub
// last captured it.
func (r *Runtime) checkDeps(sub reactiveNode) bool {
	for l := sub.node().deps; l != nil; l = l.nextDep {
		r.refresh(l.dep)
		if l.version != l.dep.node().version {
			return true
		}
	}
	return false
}

// runEffect pops one queued effect. Dirty effects run unconditionally;
// pending effects run only if a dependency actually changed. A run consumes
// the staleness and notified bits as it starts, so marks a recursive effect
// puts on itself during the run survive and re-queue it.
func (r *Runtime) runEffect(e *Effect) {
	n := &e.nd

	if n.flags.has(flagStopped) {
		return
	}

	if n.flags.has(flagDirty) || (n.flags.has(flagPending) && r.checkDeps(e)) {
		e.run()
		return
	}

	n.flags.clear(flagStale | flagNotified)
}
