package internal

// Signal is a writable source cell. It has no deps; writes that pass the
// equality check bump its version and propagate.
type Signal struct {
	nd node
	rt *Runtime

	value  any
	equals EqualFunc
}

func (r *Runtime) NewSignal(initial any, equals EqualFunc) *Signal {
	if equals == nil {
		equals = defaultEquals
	}

	s := &Signal{
		nd:     node{id: r.nextID(), kind: kindSource, flags: flagMutable},
		rt:     r,
		value:  initial,
		equals: equals,
	}
	r.observeCreated(&s.nd)

	return s
}

func (s *Signal) node() *node { return &s.nd }

// Read the current value, attaching a dependency link when a subscriber is
// executing on this goroutine.
func (s *Signal) Read() any {
	if sub := s.rt.tracker.active(); sub != nil {
		s.rt.attach(s, sub)
	}

	return s.value
}

// Peek reads the current value without dependency capture.
func (s *Signal) Peek() any {
	return s.value
}

func (s *Signal) Write(v any) {
	r := s.rt

	if s.equals(s.value, v) {
		return
	}

	s.value = v
	s.nd.version++
	r.observeValue(&s.nd, v)

	if s.nd.subs != nil {
		r.propagate(s.nd.subs)
	}
	r.Schedule()
}

func (s *Signal) Update(fn func(any) any) {
	s.Write(fn(s.value))
}
