package internal

// link is a producer→consumer edge. It is present in two lists at once:
// the producer's subs list (walked by propagate) and the consumer's deps
// list (walked by refresh).
type link struct {
	dep reactiveNode
	sub reactiveNode

	// the producer's version at capture time
	version uint64

	prevDep *link
	nextDep *link

	prevSub *link
	nextSub *link
}

// linkPool recycles link records through a free list. Links are the hot
// allocation of the graph; detached links are zeroed and reused.
type linkPool struct {
	free *link
}

func (p *linkPool) get() *link {
	if l := p.free; l != nil {
		p.free = l.nextDep
		l.nextDep = nil
		return l
	}
	return &link{}
}

func (p *linkPool) put(l *link) {
	*l = link{nextDep: p.free}
	p.free = l
}

// attach records that sub read dep during its current execution.
//
// While a node re-executes, depsTail is the reuse cursor: the link right
// after it is reused when it already targets dep, so unchanged read
// prefixes keep their links across runs. A fresh link is spliced into the
// consumer's deps at the cursor and pushed onto the head of the producer's
// subs, so propagation visits the newest subscribers first.
func (r *Runtime) attach(dep, sub reactiveNode) {
	sn := sub.node()
	dn := dep.node()

	// reuse the next positional link if it targets the same producer
	var next *link
	if sn.depsTail != nil {
		next = sn.depsTail.nextDep
	} else {
		next = sn.deps
	}
	if next != nil && next.dep == dep {
		next.version = dn.version
		sn.depsTail = next
		dn.seenGen = r.tracker.curGen
		return
	}

	// a producer already read during this execution keeps its single link
	if dn.seenGen == r.tracker.curGen {
		return
	}
	// a newer stamp was left by an execution nested in this one; look for
	// the link among the deps this execution has visited so far
	if dn.seenGen > r.tracker.curGen {
		for v := sn.deps; v != nil && v != next; v = v.nextDep {
			if v.dep == dep {
				dn.seenGen = r.tracker.curGen
				return
			}
		}
	}
	dn.seenGen = r.tracker.curGen

	l := r.pool.get()
	l.dep = dep
	l.sub = sub
	l.version = dn.version

	// splice into the consumer's deps at the cursor
	l.prevDep = sn.depsTail
	l.nextDep = next
	if sn.depsTail != nil {
		sn.depsTail.nextDep = l
	} else {
		sn.deps = l
	}
	if next != nil {
		next.prevDep = l
	}
	sn.depsTail = l

	// newest subscriber goes to the head of the producer's subs
	l.nextSub = dn.subs
	if dn.subs != nil {
		dn.subs.prevSub = l
	} else {
		dn.subsTail = l
	}
	dn.subs = l

	r.observeLinkAttached(sn.id, dn.id)
}

// truncate detaches the suffix of sub's deps that was not re-visited during
// the execution that just ended, returning the links to the pool.
func (r *Runtime) truncate(sub reactiveNode) {
	sn := sub.node()

	var l *link
	if sn.depsTail != nil {
		l = sn.depsTail.nextDep
		sn.depsTail.nextDep = nil
	} else {
		l = sn.deps
		sn.deps = nil
	}

	for l != nil {
		next := l.nextDep
		r.unlink(l)
		l = next
	}
}

// clearDeps detaches every dependency of sub. Used by stop and dispose.
func (r *Runtime) clearDeps(sub reactiveNode) {
	sub.node().depsTail = nil
	r.truncate(sub)
}

// unlink removes l from its producer's subs list and recycles it.
// The caller owns the deps-side bookkeeping.
func (r *Runtime) unlink(l *link) {
	dn := l.dep.node()

	if l.nextSub != nil {
		l.nextSub.prevSub = l.prevSub
	} else {
		dn.subsTail = l.prevSub
	}
	if l.prevSub != nil {
		l.prevSub.nextSub = l.nextSub
	} else {
		dn.subs = l.nextSub
	}

	r.observeLinkDetached(l.sub.node().id, dn.id)
	r.pool.put(l)
}
