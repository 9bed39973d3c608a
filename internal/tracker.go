package internal

// Tracker holds the ambient execution state of a runtime: the subscriber
// currently capturing dependencies, the scope owning newly created nodes,
// and the tracking toggle flipped by Untrack.
type Tracker struct {
	tracking bool

	executingGID int64 // to prevent cross-goroutine tracking issues
	activeScope  *Scope
	activeSub    reactiveNode

	// generation of the current execution; each startTracking gets a fresh
	// one, restored on exit
	curGen  uint64
	genSeed uint64
}

func NewTracker() *Tracker {
	return &Tracker{
		tracking: true,
	}
}

// active returns the subscriber reads should attach to, or nil when reads
// are untracked. Reads from a goroutine other than the one executing the
// subscriber are never captured.
func (t *Tracker) active() reactiveNode {
	if t.activeSub != nil && t.tracking && getGID() == t.executingGID {
		return t.activeSub
	}
	return nil
}

func (t *Tracker) RunUntracked(fn func()) {
	prev := t.tracking
	t.tracking = false
	defer func() { t.tracking = prev }()

	fn()
}

// startTracking enters the execution of sub: the reuse cursor is reset to
// the head of its deps, staleness bits are consumed, and subsequent tracked
// reads attach to sub. Returns the previous active subscriber.
func (r *Runtime) startTracking(sub reactiveNode) (reactiveNode, uint64) {
	prev := r.tracker.activeSub
	prevGen := r.tracker.curGen
	r.tracker.activeSub = sub
	r.tracker.executingGID = getGID()
	r.tracker.genSeed++
	r.tracker.curGen = r.tracker.genSeed

	n := sub.node()
	n.depsTail = nil
	n.flags.clear(flagNotified | flagDirty | flagPending)
	n.flags.set(flagTracking)

	return prev, prevGen
}

// endTracking exits the execution of sub: links not re-visited are
// truncated and the previous active subscriber is restored.
func (r *Runtime) endTracking(sub, prev reactiveNode, prevGen uint64) {
	r.truncate(sub)

	sub.node().flags.clear(flagTracking)
	r.tracker.activeSub = prev
	r.tracker.curGen = prevGen
}

func (r *Runtime) Untrack(fn func()) {
	r.tracker.RunUntracked(fn)
}
