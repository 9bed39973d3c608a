package internal

import (
	"runtime/debug"
	"sync"
)

// Runtime owns one reactive graph: its link pool, tracker, batcher, effect
// queue and scheduler. All graph mutations happen on the runtime's logical
// thread; the mutex only serializes result delivery from async tasks.
type Runtime struct {
	mu sync.Mutex

	ids uint64

	pool      linkPool
	tracker   *Tracker
	batcher   *Batcher
	scheduler *Scheduler
	queue     *EffectQueue

	settled  []func()
	observer Observer
}

func NewRuntime() *Runtime {
	return &Runtime{
		tracker:   NewTracker(),
		batcher:   NewBatcher(),
		scheduler: NewScheduler(),
		queue:     NewEffectQueue(),
	}
}

func (r *Runtime) nextID() uint64 {
	r.ids++
	return r.ids
}

// Schedule requests a flush, running it immediately unless a batch is open.
func (r *Runtime) Schedule() {
	r.scheduler.Schedule()

	if !r.batcher.IsBatching() {
		r.Flush()
	}
}

// Flush drains the effect queue until the graph settles.
func (r *Runtime) Flush() {
	ran, err := r.scheduler.Run(func() {
		r.queue.Drain(r.runEffect)
	})
	if err != nil {
		ReportError(err, debug.Stack())
	}

	if ran && r.queue.IsEmpty() && len(r.settled) > 0 {
		settled := r.settled
		r.settled = nil

		for _, fn := range settled {
			fn()
		}
	}
}

// OnSettled registers a one-shot callback for the end of the next flush,
// after every queued and chained effect has run.
func (r *Runtime) OnSettled(fn func()) {
	r.settled = append(r.settled, fn)
}
