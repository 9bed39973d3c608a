package internal

// Observer receives node lifecycle and value-change events. Hosts register
// one to layer inspection tooling over the kernel; the kernel itself never
// depends on it.
type Observer interface {
	NodeCreated(id uint64, kind string)
	ValueChanged(id uint64, value any)
	LinkAttached(sub, dep uint64)
	LinkDetached(sub, dep uint64)
	NodeStopped(id uint64)
}

func (r *Runtime) SetObserver(o Observer) {
	r.observer = o
}

func (r *Runtime) observeCreated(n *node) {
	if r.observer != nil {
		r.observer.NodeCreated(n.id, n.kind.String())
	}
}

func (r *Runtime) observeValue(n *node, v any) {
	if r.observer != nil {
		r.observer.ValueChanged(n.id, v)
	}
}

func (r *Runtime) observeLinkAttached(sub, dep uint64) {
	if r.observer != nil {
		r.observer.LinkAttached(sub, dep)
	}
}

func (r *Runtime) observeLinkDetached(sub, dep uint64) {
	if r.observer != nil {
		r.observer.LinkDetached(sub, dep)
	}
}

func (r *Runtime) observeStopped(n *node) {
	if r.observer != nil {
		r.observer.NodeStopped(n.id)
	}
}
