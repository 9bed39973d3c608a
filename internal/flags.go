package internal

// flags represents the state of a reactive node
type flags uint16

const (
	flagNone    flags = 0
	flagMutable flags = 1 << iota // node accepts writes (signals)
	flagWatching                  // node pulls: runs a compute or a side effect
	flagRecursiveEffect           // effect may re-enqueue itself during its own run
	flagTracking                  // currently inside its own execution
	flagNotified                  // queued in the effect runner
	flagDirty                     // an input definitely changed, recompute on pull
	flagPending                   // an ancestor may have changed, check deps on pull
	flagStopped                   // stopped, never runs again
)

// flagStale covers both staleness bits
const flagStale = flagDirty | flagPending

func (f flags) has(flag flags) bool {
	return f&flag != 0
}

func (f *flags) set(flag flags) {
	*f |= flag
}

func (f *flags) clear(flag flags) {
	*f &^= flag
}

func (f *flags) replace(old, new flags) {
	*f = (*f &^ old) | new
}
