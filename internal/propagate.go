package internal

// propagate marks every consumer reachable from head stale. Direct
// subscribers of the changed producer become dirty; deeper layers only
// become pending, so they re-check their inputs before recomputing.
func (r *Runtime) propagate(head *link) {
	for l := head; l != nil; l = l.nextSub {
		r.mark(l.sub, flagDirty)
	}
}

func (r *Runtime) mark(sub reactiveNode, bit flags) {
	n := sub.node()

	if n.flags.has(flagStopped) {
		return
	}

	// a subscriber in the middle of its own execution must not be
	// re-marked: it is still establishing its deps. Effects opt back in
	// with the recursive flag.
	if n.flags.has(flagTracking) {
		if n.kind != kindEffect || !n.flags.has(flagRecursiveEffect) {
			return
		}
	}

	if n.flags.has(flagDirty) {
		return
	}
	if bit == flagPending && n.flags.has(flagPending) {
		return
	}

	first := !n.flags.has(flagStale)
	n.flags.set(bit)

	if !first {
		return
	}

	for l := n.subs; l != nil; l = l.nextSub {
		r.mark(l.sub, flagPending)
	}

	if n.kind == kindEffect && !n.flags.has(flagNotified) {
		n.flags.set(flagNotified)
		r.queue.Enqueue(sub.(*Effect))
	}
}
