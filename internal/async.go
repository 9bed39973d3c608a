package internal

import "context"

type AsyncState uint8

const (
	AsyncLoading AsyncState = iota
	AsyncData
	AsyncError
)

// AsyncResult is the value held by an async derivation. HasValue marries
// the loading and error states with the previous data when there is one.
type AsyncResult struct {
	State    AsyncState
	Value    any
	HasValue bool
	Err      error
}

// AsyncComputed layers a Loading/Data/Error state machine over a regular
// derivation. The prefix closure runs on the graph goroutine under
// tracking, so dependency reads inside it are captured; the task it returns
// runs on its own goroutine, where reads are never captured.
//
// Any dependency change re-runs the prefix, cancelling the in-flight task:
// a cancelled task's result is discarded without touching state.
type AsyncComputed struct {
	c  *Computed
	rt *Runtime

	prefix func(ctx context.Context) func() (any, error)
	stream func(ctx context.Context) <-chan any

	cancel  context.CancelFunc
	gen     uint64
	stopped bool
}

func (r *Runtime) NewAsyncComputed(prefix func(ctx context.Context) func() (any, error)) *AsyncComputed {
	a := &AsyncComputed{rt: r, prefix: prefix}
	a.c = r.NewComputed(a.recompute, neverEqual)
	return a
}

func (r *Runtime) NewStreamComputed(stream func(ctx context.Context) <-chan any) *AsyncComputed {
	a := &AsyncComputed{rt: r, stream: stream}
	a.c = r.NewComputed(a.recompute, neverEqual)
	return a
}

// every recompute is a state transition that must propagate
func neverEqual(a, b any) bool { return false }

// Read returns the current AsyncResult, tracking like any derivation.
// The first read starts the first run.
func (a *AsyncComputed) Read() AsyncResult {
	v, _ := a.c.Read().(AsyncResult)
	return v
}

func (a *AsyncComputed) Peek() AsyncResult {
	v, _ := a.c.Peek().(AsyncResult)
	return v
}

// Stop cancels the in-flight task and detaches the derivation.
func (a *AsyncComputed) Stop() {
	if a.stopped {
		return
	}
	a.stopped = true
	a.gen++

	if a.cancel != nil {
		a.cancel()
		a.cancel = nil
	}

	a.c.scope.Dispose()
	a.rt.clearDeps(a.c)
	a.c.nd.flags.clear(flagStale)
	a.c.nd.flags.set(flagStopped)
	a.rt.observeStopped(&a.c.nd)
}

// recompute is the compute closure of the backing derivation: cancel the
// previous run, re-capture deps through the prefix, start the new task, and
// hold Loading until it delivers.
func (a *AsyncComputed) recompute(prev any) any {
	if a.stopped {
		return prev
	}

	if a.cancel != nil {
		a.cancel()
	}

	ctx, cancel := context.WithCancel(context.Background())
	a.cancel = cancel
	a.gen++
	gen := a.gen

	if a.stream != nil {
		ch := a.stream(ctx)
		go a.forward(ctx, gen, ch)
	} else {
		task := a.prefix(ctx)
		go a.await(ctx, gen, task)
	}

	res := AsyncResult{State: AsyncLoading}
	if p, ok := prev.(AsyncResult); ok && p.HasValue {
		res.Value = p.Value
		res.HasValue = true
	}
	return res
}

func (a *AsyncComputed) await(ctx context.Context, gen uint64, task func() (any, error)) {
	v, err := task()

	// a cancelled run never completed as far as the graph is concerned
	if ctx.Err() != nil {
		return
	}
	a.deliver(gen, v, err)
}

func (a *AsyncComputed) forward(ctx context.Context, gen uint64, ch <-chan any) {
	for {
		select {
		case <-ctx.Done():
			return
		case v, ok := <-ch:
			if !ok || ctx.Err() != nil {
				return
			}
			a.deliver(gen, v, nil)
		}
	}
}

// deliver applies a completed result on the graph. It runs on the task
// goroutine; the runtime mutex serializes it against other deliveries.
func (a *AsyncComputed) deliver(gen uint64, v any, err error) {
	r := a.rt

	r.mu.Lock()
	defer r.mu.Unlock()

	if gen != a.gen || a.stopped {
		return
	}

	cur, _ := a.c.value.(AsyncResult)

	var res AsyncResult
	if err != nil {
		res = AsyncResult{State: AsyncError, Err: err, Value: cur.Value, HasValue: cur.HasValue}
	} else {
		res = AsyncResult{State: AsyncData, Value: v, HasValue: true}
	}

	a.c.value = res
	a.c.nd.version++
	r.observeValue(&a.c.nd, res)

	if a.c.nd.subs != nil {
		r.propagate(a.c.nd.subs)
	}
	r.Schedule()
}
